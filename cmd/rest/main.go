package main

import (
	"log"

	"ai-legal-assistant-be/internal/bootstrap"
	"ai-legal-assistant-be/internal/config"
	"ai-legal-assistant-be/internal/repository/file"
	"ai-legal-assistant-be/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Load static data (read once, immutable afterwards)
	catalog, err := file.LoadCatalog(cfg.Data.CatalogPath)
	if err != nil {
		log.Panicf("Unable to load document catalog: %v", err)
	}
	if len(catalog) == 0 {
		log.Println("Warning: document catalog is empty, reference lookups will always miss")
	}

	corpus, err := file.LoadCorpus(cfg.Data.CorpusTextsPath, cfg.Data.EmbeddingsPath)
	if err != nil {
		log.Panicf("Unable to load article corpus: %v", err)
	}
	log.Printf("Loaded %d catalog records, %d corpus articles", len(catalog), len(corpus))

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg, catalog, corpus)
	defer container.Logger.Sync() //nolint:errcheck

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
