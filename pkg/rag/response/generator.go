package response

import (
	"context"
	"regexp"

	"ai-legal-assistant-be/pkg/llm"
)

// Generator runs a completion request and post-processes the raw text for
// plain-text display.
type Generator struct {
	llmProvider llm.Provider
}

func NewGenerator(llmProvider llm.Provider) *Generator {
	return &Generator{llmProvider: llmProvider}
}

func (g *Generator) Generate(ctx context.Context, messages []llm.Message) (string, error) {
	text, err := g.llmProvider.Chat(ctx, messages)
	if err != nil {
		return "", err
	}
	return CleanMarkdownHeadings(text), nil
}

var markdownHeadingPattern = regexp.MustCompile(`(?m)^#+[ \t]*`)

// CleanMarkdownHeadings strips leading "#" runs (and the whitespace that
// follows them) at line starts. Completion models emit markdown headings
// even when asked for plain paragraphs.
func CleanMarkdownHeadings(text string) string {
	return markdownHeadingPattern.ReplaceAllString(text, "")
}
