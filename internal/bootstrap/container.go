package bootstrap

import (
	"ai-legal-assistant-be/internal/config"
	"ai-legal-assistant-be/internal/controller"
	"ai-legal-assistant-be/internal/entity"
	"ai-legal-assistant-be/internal/pkg/logger"
	"ai-legal-assistant-be/internal/repository/memory"
	"ai-legal-assistant-be/internal/service"
	"ai-legal-assistant-be/pkg/ai/router"
	"ai-legal-assistant-be/pkg/embedding"
	"ai-legal-assistant-be/pkg/extract"
	"ai-legal-assistant-be/pkg/llm/mistral"
	"ai-legal-assistant-be/pkg/rag"
	"ai-legal-assistant-be/pkg/rag/response"
	"ai-legal-assistant-be/pkg/rag/search"
)

// Container wires every component of the assistant together.
type Container struct {
	Logger         logger.ILogger
	ChatController controller.IChatController
}

// NewContainer builds the dependency graph from the startup-loaded catalog
// and corpus.
func NewContainer(
	cfg *config.Config,
	catalog []entity.LegalDocumentRecord,
	corpus []entity.CorpusArticle,
) *Container {
	log := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	embedder := embedding.NewHTTPProvider(cfg.Ai.EncoderBaseURL)
	llmProvider := mistral.NewProvider(cfg.Ai.MistralBaseURL, cfg.Ai.MistralAPIKey, cfg.Ai.MistralModel)
	extractor := extract.NewHTTPExtractor(cfg.Ai.ExtractorBaseURL)

	generator := response.NewGenerator(llmProvider)
	searcher := search.NewSearcher(corpus)
	composer := rag.NewComposer(embedder, generator, searcher)
	resolver := router.NewReferenceResolver(catalog)

	conversations := memory.NewConversationRepository()

	chatService := service.NewChatService(
		conversations,
		resolver,
		composer,
		generator,
		extractor,
		cfg.Data.PdfDir,
		log,
	)

	return &Container{
		Logger:         log,
		ChatController: controller.NewChatController(chatService, cfg.App.StreamChunkDelayMs),
	}
}
