package embedding

import "context"

// EmbeddingProvider turns a text into a fixed-length sentence vector.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
