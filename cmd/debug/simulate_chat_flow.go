// Offline harness: drives the full turn pipeline with stub collaborators
// so the routing behavior can be inspected without an encoder, an LLM or
// an extractor running.
package main

import (
	"context"
	"fmt"
	"log"

	"ai-legal-assistant-be/internal/entity"
	"ai-legal-assistant-be/internal/pkg/logger"
	"ai-legal-assistant-be/internal/repository/memory"
	"ai-legal-assistant-be/internal/service"
	"ai-legal-assistant-be/pkg/ai/router"
	"ai-legal-assistant-be/pkg/llm"
	"ai-legal-assistant-be/pkg/rag"
	"ai-legal-assistant-be/pkg/rag/response"
	"ai-legal-assistant-be/pkg/rag/search"
)

type stubEmbedder struct{}

func (stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{1, 0, 0}, nil
}

type stubLLM struct{}

func (stubLLM) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	return fmt.Sprintf("(réponse simulée à partir de %d messages)", len(messages)), nil
}

type stubExtractor struct{}

func (stubExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	return "Article 1 : texte simulé du document " + path, nil
}

func main() {
	catalog := []entity.LegalDocumentRecord{
		{LegalType: "Loi", ReferenceLabel: "LOI_45-2020_portant_reglementation", PdfLink: "/pdfs/loi_45_2020.pdf"},
	}
	corpus := []entity.CorpusArticle{
		{Text: "LOI 045-2020 article 1 La présente loi régit ...", Embedding: []float32{1, 0, 0}},
		{Text: "DECRET 123-2019 article 4 Les modalités ...", Embedding: []float32{0, 1, 0}},
	}

	generator := response.NewGenerator(stubLLM{})
	composer := rag.NewComposer(stubEmbedder{}, generator, search.NewSearcher(corpus))

	svc := service.NewChatService(
		memory.NewConversationRepository(),
		router.NewReferenceResolver(catalog),
		composer,
		generator,
		stubExtractor{},
		"static/pdfs",
		logger.NewZapLogger("debug_chat_flow.log", false),
	)

	turns := []string{
		"bonjour",
		"cherche la loi 45-2020",
		"oui",
		"Quelle est la procédure de création d'entreprise ?",
		"merci",
	}

	ctx := context.Background()
	for _, message := range turns {
		envelope, err := svc.ProcessTurn(ctx, "simulation", message)
		if err != nil {
			log.Fatalf("turn %q failed: %v", message, err)
		}
		fmt.Printf(">>> %s\n[%s] %s\n", message, envelope.ResponseType, envelope.Content)
		for _, src := range envelope.Sources {
			fmt.Printf("    source: %+v\n", src)
		}
		fmt.Println()
	}
}
