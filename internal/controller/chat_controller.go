package controller

import (
	"bufio"
	"time"

	"ai-legal-assistant-be/internal/constant"
	"ai-legal-assistant-be/internal/dto"
	"ai-legal-assistant-be/internal/pkg/serverutils"
	"ai-legal-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// streamChunkSize is the legacy client-side re-chunking width, in
// characters.
const streamChunkSize = 50

type IChatController interface {
	RegisterRoutes(app *fiber.App)
	Chat(ctx *fiber.Ctx) error
	Stream(ctx *fiber.Ctx) error
}

type chatController struct {
	service    service.IChatService
	chunkDelay time.Duration
}

func NewChatController(svc service.IChatService, chunkDelayMs int) IChatController {
	return &chatController{
		service:    svc,
		chunkDelay: time.Duration(chunkDelayMs) * time.Millisecond,
	}
}

func (c *chatController) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Post("/chat", c.Chat)

	// Legacy streaming surface kept for the original web client.
	app.Post("/stream", c.Stream)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return &serverutils.ValidationError{Message: "corps de requête invalide"}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	envelope, err := c.service.ProcessTurn(ctx.Context(), req.ConversationId, req.Message)
	if err != nil {
		return err
	}

	return ctx.JSON(envelope)
}

// Stream replays the stateful pipeline for the legacy client: answers and
// summaries are re-chunked into 50-character slices with a terminal
// "[DONE]", while small-talk and search replies go out in one piece.
func (c *chatController) Stream(ctx *fiber.Ctx) error {
	var req dto.StreamRequest
	if err := ctx.BodyParser(&req); err != nil {
		return &serverutils.ValidationError{Message: "corps de requête invalide"}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// The legacy endpoint is stateless: each request gets a throwaway
	// conversation.
	envelope, err := c.service.ProcessTurn(ctx.Context(), "stream-"+uuid.NewString(), req.Question)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")

	chunked := envelope.ResponseType == constant.ResponseTypeLegalAnswer ||
		envelope.ResponseType == constant.ResponseTypeDocumentSummary

	content := envelope.Content
	delay := c.chunkDelay

	ctx.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		if !chunked {
			w.WriteString(content) //nolint:errcheck
			return
		}
		for _, chunk := range chunkByRunes(content, streamChunkSize) {
			w.WriteString(chunk) //nolint:errcheck
			if err := w.Flush(); err != nil {
				return
			}
			time.Sleep(delay)
		}
		w.WriteString("[DONE]") //nolint:errcheck
	})

	return nil
}

func chunkByRunes(text string, size int) []string {
	runes := []rune(text)
	var chunks []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
