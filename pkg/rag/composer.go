package rag

import (
	"context"
	"fmt"

	"ai-legal-assistant-be/pkg/embedding"
	"ai-legal-assistant-be/pkg/llm"
	"ai-legal-assistant-be/pkg/rag/prompt"
	"ai-legal-assistant-be/pkg/rag/response"
	"ai-legal-assistant-be/pkg/rag/search"
)

// Composer produces retrieval-augmented answers: embed the question, score
// the corpus, build the grounded prompt with conversation history, run one
// completion.
type Composer struct {
	embedder  embedding.EmbeddingProvider
	generator *response.Generator
	searcher  *search.Searcher
	config    search.Config
}

func NewComposer(embedder embedding.EmbeddingProvider, generator *response.Generator, searcher *search.Searcher) *Composer {
	return &Composer{
		embedder:  embedder,
		generator: generator,
		searcher:  searcher,
		config:    search.DefaultConfig(),
	}
}

// Answer returns the grounded answer text and its document-level sources
// with raw 0-1 relevance scores. History must contain only replayed
// user/assistant messages.
func (c *Composer) Answer(ctx context.Context, question string, history []llm.Message) (string, []search.SourceRef, error) {
	questionVector, err := c.embedder.Embed(ctx, question)
	if err != nil {
		return "", nil, fmt.Errorf("embed question: %w", err)
	}

	selected := c.searcher.TopArticles(questionVector, c.config.TopK)
	sources := search.DeduplicateSources(selected, c.config.MaxSources)

	// The completion context keeps all selected articles, deduplicated or
	// not; only the surfaced source list is collapsed per document.
	articles := make([]string, len(selected))
	for i, article := range selected {
		articles[i] = article.Text
	}

	messages := prompt.BuildLegalAnswerMessages(history, articles, question)

	answer, err := c.generator.Generate(ctx, messages)
	if err != nil {
		return "", nil, fmt.Errorf("generate answer: %w", err)
	}

	return answer, sources, nil
}
