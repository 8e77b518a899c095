package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App  AppConfig
	Data DataConfig
	Ai   AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	Debug              bool
	LogFilePath        string
	CorsAllowedOrigins string
	StreamChunkDelayMs int
}

type DataConfig struct {
	CatalogPath     string
	CorpusTextsPath string
	EmbeddingsPath  string
	PdfDir          string
	StaticDir       string
}

type AIConfig struct {
	EncoderBaseURL   string
	ExtractorBaseURL string
	MistralBaseURL   string
	MistralAPIKey    string
	MistralModel     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			Debug:              getEnvAsBool("APP_DEBUG", false),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			StreamChunkDelayMs: getEnvAsInt("STREAM_CHUNK_DELAY_MS", 100),
		},
		Data: DataConfig{
			CatalogPath:     getEnv("CATALOG_PATH", "data/metadatas.json"),
			CorpusTextsPath: getEnv("CORPUS_TEXTS_PATH", "data/fichier.csv"),
			EmbeddingsPath:  getEnv("EMBEDDINGS_PATH", "data/embeddings.bin"),
			PdfDir:          getEnv("PDF_DIR", "static/pdfs"),
			StaticDir:       getEnv("STATIC_DIR", "static"),
		},
		Ai: AIConfig{
			EncoderBaseURL:   getEnv("ENCODER_BASE_URL", "http://localhost:8088"),
			ExtractorBaseURL: getEnv("EXTRACTOR_BASE_URL", "http://localhost:8090"),
			MistralBaseURL:   getEnv("MISTRAL_BASE_URL", "https://api.mistral.ai"),
			MistralAPIKey:    getEnv("MISTRAL_API_KEY", ""),
			MistralModel:     getEnv("MISTRAL_MODEL", "mistral-small-latest"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
