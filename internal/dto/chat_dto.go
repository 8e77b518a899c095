package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	ConversationId string `json:"conversation_id" validate:"required"`
	Message        string `json:"message" validate:"required,max=5000"`
}

// StreamRequest is the legacy /stream payload.
type StreamRequest struct {
	Question string `json:"question" validate:"required"`
}

// SourceDTO is one entry of a response's source list. Document/Relevance
// are set for retrieval answers; Type/Numero/Lien for document lookups and
// summaries.
type SourceDTO struct {
	Document  string   `json:"document,omitempty"`
	Type      string   `json:"type,omitempty"`
	Numero    string   `json:"numero,omitempty"`
	Lien      string   `json:"lien,omitempty"`
	Relevance *float64 `json:"relevance,omitempty"`
}

// ResponseEnvelope is the per-turn reply. Sources is null unless the turn
// produced at least one source record.
type ResponseEnvelope struct {
	Id             uuid.UUID   `json:"id"`
	ConversationId string      `json:"conversation_id"`
	Content        string      `json:"content"`
	Role           string      `json:"role"`
	Timestamp      time.Time   `json:"timestamp"`
	ResponseType   string      `json:"response_type"`
	Sources        []SourceDTO `json:"sources"`
}
