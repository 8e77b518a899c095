package memory

import (
	"ai-legal-assistant-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// ConversationRepository keeps conversation histories in process memory.
// Histories live for the process lifetime: no eviction, no persistence.
// Concurrent appends on the same conversation are not serialized, so their
// order can interleave; appends on different conversations are independent.
type ConversationRepository struct {
	cache *cache.Cache
}

func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *ConversationRepository) Append(conversationId string, event entity.TurnEvent) {
	history := r.History(conversationId)
	history = append(history, event)
	r.cache.Set(conversationId, history, cache.NoExpiration)
}

func (r *ConversationRepository) History(conversationId string) []entity.TurnEvent {
	if x, found := r.cache.Get(conversationId); found {
		return x.([]entity.TurnEvent)
	}
	return []entity.TurnEvent{}
}

// LastReference scans the history newest-first and returns the most recent
// document reference, or nil when the conversation never resolved one.
func (r *ConversationRepository) LastReference(conversationId string) *entity.DocumentReference {
	history := r.History(conversationId)
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Kind == entity.TurnEventDocumentReference {
			return history[i].Reference
		}
	}
	return nil
}
