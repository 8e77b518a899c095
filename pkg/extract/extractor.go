package extract

import "context"

// TextExtractor turns a stored document into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}
