package search

import (
	"math"
	"sort"
	"strings"

	"ai-legal-assistant-be/internal/entity"
)

// Config encapsulates retrieval parameters.
type Config struct {
	TopK       int
	MaxSources int
}

// DefaultConfig returns the retrieval configuration used in production.
func DefaultConfig() Config {
	return Config{
		TopK:       10,
		MaxSources: 5,
	}
}

// ScoredArticle is one corpus article with its similarity to the question.
type ScoredArticle struct {
	Index int
	Text  string
	Score float64 // raw cosine similarity, 0-1 for normalized vectors
}

// SourceRef is one deduplicated document-level source attached to an
// answer. Relevance carries the raw similarity of the best-ranked article
// belonging to that document.
type SourceRef struct {
	Document  string
	Relevance float64
}

// fallbackDocumentLabel is used when an article text carries no
// "<document> article <n>" prefix to derive a label from.
const fallbackDocumentLabel = "Document juridique"

// documentLabelMarker separates the document name from the article number
// in corpus texts ("LOI 025-2018 article 4 ...").
const documentLabelMarker = " article "

// Searcher scores the preloaded corpus against question vectors.
type Searcher struct {
	corpus []entity.CorpusArticle
}

func NewSearcher(corpus []entity.CorpusArticle) *Searcher {
	return &Searcher{corpus: corpus}
}

// TopArticles returns the topK most similar articles by descending cosine
// similarity. Ties keep corpus order (stable sort).
func (s *Searcher) TopArticles(questionVector []float32, topK int) []ScoredArticle {
	scored := make([]ScoredArticle, len(s.corpus))
	for i, article := range s.corpus {
		scored[i] = ScoredArticle{
			Index: i,
			Text:  article.Text,
			Score: cosineSimilarity(questionVector, article.Embedding),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}

// DeduplicateSources collapses selected articles to document granularity:
// first occurrence of each document label wins, truncated to maxSources.
func DeduplicateSources(articles []ScoredArticle, maxSources int) []SourceRef {
	var sources []SourceRef
	seen := make(map[string]bool)

	for _, article := range articles {
		label := DocumentLabel(article.Text)
		if seen[label] {
			continue
		}
		seen[label] = true

		sources = append(sources, SourceRef{
			Document:  label,
			Relevance: article.Score,
		})
		if len(sources) == maxSources {
			break
		}
	}

	return sources
}

// DocumentLabel derives the document name from an article text: everything
// before the literal " article " marker, or a generic label when absent.
func DocumentLabel(text string) string {
	if idx := strings.Index(text, documentLabelMarker); idx > 0 {
		return strings.TrimSpace(text[:idx])
	}
	return fallbackDocumentLabel
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
