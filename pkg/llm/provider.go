package llm

import "context"

// Message is one turn of a chat-completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is the hosted chat-completion service. A single call returns the
// full completion text; no retry, no streaming.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}
