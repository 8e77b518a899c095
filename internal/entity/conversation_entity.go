package entity

import "time"

// TurnEventKind tags the variants stored in a conversation history.
type TurnEventKind string

const (
	TurnEventUserMessage       TurnEventKind = "user_message"
	TurnEventAssistantMessage  TurnEventKind = "assistant_message"
	TurnEventDocumentReference TurnEventKind = "document_reference"
)

// DocumentReference records a successfully resolved legal document so later
// turns can answer "oui, résume-moi" without the user repeating the number.
type DocumentReference struct {
	LegalType string
	Number    string
	Link      string
}

// TurnEvent is one append-only entry in a conversation history. Content is
// set for message events, Reference for document reference events.
type TurnEvent struct {
	Kind      TurnEventKind
	Content   string
	Reference *DocumentReference
	CreatedAt time.Time
}
