package contract

import "ai-legal-assistant-be/internal/entity"

// IConversationRepository is the append-only per-conversation event store.
// Unseen conversation ids behave as empty histories.
type IConversationRepository interface {
	Append(conversationId string, event entity.TurnEvent)
	History(conversationId string) []entity.TurnEvent
	LastReference(conversationId string) *entity.DocumentReference
}
