package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"ai-legal-assistant-be/internal/constant"
	"ai-legal-assistant-be/internal/dto"
	"ai-legal-assistant-be/internal/entity"
	"ai-legal-assistant-be/internal/pkg/logger"
	"ai-legal-assistant-be/internal/repository/contract"
	"ai-legal-assistant-be/pkg/ai/router"
	"ai-legal-assistant-be/pkg/extract"
	"ai-legal-assistant-be/pkg/llm"
	"ai-legal-assistant-be/pkg/rag"
	"ai-legal-assistant-be/pkg/rag/prompt"
	"ai-legal-assistant-be/pkg/rag/response"

	"github.com/google/uuid"
)

// IChatService processes one conversation turn.
type IChatService interface {
	ProcessTurn(ctx context.Context, conversationId, message string) (*dto.ResponseEnvelope, error)
}

// turnResult is what a routing branch produces before envelope assembly.
type turnResult struct {
	content      string
	responseType string
	sources      []dto.SourceDTO
}

// chatService is the per-message state machine: conversational short-circuit,
// summary confirmation, explicit document search, then the default
// retrieval-augmented answer.
type chatService struct {
	conversations contract.IConversationRepository
	resolver      *router.ReferenceResolver
	composer      *rag.Composer
	generator     *response.Generator
	extractor     extract.TextExtractor
	pdfDir        string
	log           logger.ILogger
}

func NewChatService(
	conversations contract.IConversationRepository,
	resolver *router.ReferenceResolver,
	composer *rag.Composer,
	generator *response.Generator,
	extractor extract.TextExtractor,
	pdfDir string,
	log logger.ILogger,
) IChatService {
	return &chatService{
		conversations: conversations,
		resolver:      resolver,
		composer:      composer,
		generator:     generator,
		extractor:     extractor,
		pdfDir:        pdfDir,
		log:           log,
	}
}

// ProcessTurn runs the routing state machine for one incoming message and
// assembles the response envelope. The user message is recorded before
// routing; the replay history handed to the composer is snapshotted first
// so the current message is not duplicated into it. Every produced content
// string is recorded as an assistant message, whatever the response type.
func (cs *chatService) ProcessTurn(ctx context.Context, conversationId, message string) (*dto.ResponseEnvelope, error) {
	now := time.Now().UTC()
	replay := cs.replayHistory(conversationId)

	cs.conversations.Append(conversationId, entity.TurnEvent{
		Kind:      entity.TurnEventUserMessage,
		Content:   message,
		CreatedAt: now,
	})

	result, err := cs.route(ctx, conversationId, message, replay)
	if err != nil {
		return nil, err
	}

	cs.conversations.Append(conversationId, entity.TurnEvent{
		Kind:      entity.TurnEventAssistantMessage,
		Content:   result.content,
		CreatedAt: time.Now().UTC(),
	})

	sources := result.sources
	if len(sources) == 0 {
		sources = nil
	}

	return &dto.ResponseEnvelope{
		Id:             uuid.New(),
		ConversationId: conversationId,
		Content:        result.content,
		Role:           constant.ChatMessageRoleAssistant,
		Timestamp:      time.Now().UTC(),
		ResponseType:   result.responseType,
		Sources:        sources,
	}, nil
}

func (cs *chatService) route(ctx context.Context, conversationId, message string, replay []llm.Message) (*turnResult, error) {
	trimmed := strings.TrimSpace(message)

	// 1. Small talk never touches the encoder or the completion service.
	if category, ok := router.ClassifyConversational(trimmed); ok {
		return &turnResult{
			content:      pickTemplate(string(category)),
			responseType: constant.ResponseTypeConversational,
		}, nil
	}

	// 2. A bare affirmative refers to the pending summary offer. Without a
	// prior document reference it falls through to the retrieval answer.
	if router.IsSummaryConfirmation(trimmed) {
		if ref := cs.conversations.LastReference(conversationId); ref != nil {
			return cs.summarize(ctx, ref), nil
		}
	}

	// 3. Explicit document search.
	if router.DetectQuestionType(trimmed) == router.QuestionTypeSearch {
		return cs.search(conversationId, trimmed), nil
	}

	// 4. Default: retrieval-augmented legal answer.
	return cs.legalAnswer(ctx, trimmed, replay)
}

func (cs *chatService) search(conversationId, message string) *turnResult {
	var legalType, number string
	if ref := router.ExtractLegalReference(message); ref != nil {
		legalType = ref.LegalType
		number = ref.Number
	}

	link := cs.resolver.FindDocumentLink(legalType, number)
	if link == "" {
		return &turnResult{
			content:      constant.ReferenceNotFoundMessage,
			responseType: constant.ResponseTypeNotFound,
		}
	}

	cs.conversations.Append(conversationId, entity.TurnEvent{
		Kind: entity.TurnEventDocumentReference,
		Reference: &entity.DocumentReference{
			LegalType: legalType,
			Number:    number,
			Link:      link,
		},
		CreatedAt: time.Now().UTC(),
	})

	return &turnResult{
		content:      fmt.Sprintf(constant.DocumentLinkTemplate, link),
		responseType: constant.ResponseTypeDocumentLink,
		sources: []dto.SourceDTO{
			{Type: legalType, Numero: number, Lien: link},
		},
	}
}

// summarize extracts the referenced document's text and asks the completion
// service for a structured summary. Failures become error-tagged responses
// rather than aborting the turn.
func (cs *chatService) summarize(ctx context.Context, ref *entity.DocumentReference) *turnResult {
	pdfPath := filepath.Join(cs.pdfDir, filepath.Base(ref.Link))

	text, err := cs.extractor.ExtractText(ctx, pdfPath)
	if err != nil {
		cs.log.Error("chat", "document extraction failed", map[string]interface{}{
			"error": err.Error(),
			"link":  ref.Link,
		})
		return summaryError(err)
	}

	summary, err := cs.generator.Generate(ctx, prompt.BuildSummaryMessages(text))
	if err != nil {
		cs.log.Error("chat", "summary generation failed", map[string]interface{}{
			"error": err.Error(),
			"link":  ref.Link,
		})
		return summaryError(err)
	}

	return &turnResult{
		content:      summary,
		responseType: constant.ResponseTypeDocumentSummary,
		sources: []dto.SourceDTO{
			{Type: ref.LegalType, Numero: ref.Number, Lien: ref.Link},
		},
	}
}

func (cs *chatService) legalAnswer(ctx context.Context, question string, replay []llm.Message) (*turnResult, error) {
	answer, sourceRefs, err := cs.composer.Answer(ctx, question, replay)
	if err != nil {
		return nil, err
	}

	sources := make([]dto.SourceDTO, 0, len(sourceRefs))
	for _, src := range sourceRefs {
		// Raw cosine scores become percentages at this boundary only.
		relevance := roundToOneDecimal(src.Relevance * 100)
		sources = append(sources, dto.SourceDTO{
			Document:  src.Document,
			Relevance: &relevance,
		})
	}

	return &turnResult{
		content:      answer,
		responseType: constant.ResponseTypeLegalAnswer,
		sources:      sources,
	}, nil
}

// replayHistory rebuilds the role-tagged message history for the composer.
// Document reference events are bookkeeping, not chat turns, and are
// skipped.
func (cs *chatService) replayHistory(conversationId string) []llm.Message {
	events := cs.conversations.History(conversationId)

	var history []llm.Message
	for _, event := range events {
		switch event.Kind {
		case entity.TurnEventUserMessage:
			history = append(history, llm.Message{Role: constant.ChatMessageRoleUser, Content: event.Content})
		case entity.TurnEventAssistantMessage:
			history = append(history, llm.Message{Role: constant.ChatMessageRoleAssistant, Content: event.Content})
		}
	}
	return history
}

func summaryError(err error) *turnResult {
	return &turnResult{
		content:      fmt.Sprintf(constant.SummaryErrorTemplate, err.Error()),
		responseType: constant.ResponseTypeError,
	}
}

func pickTemplate(category string) string {
	pool, ok := constant.ConversationalTemplates[category]
	if !ok || len(pool) == 0 {
		pool = constant.ConversationalTemplates["default"]
	}
	return pool[rand.Intn(len(pool))]
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
