package prompt

import (
	"fmt"
	"strings"

	"ai-legal-assistant-be/internal/constant"
	"ai-legal-assistant-be/pkg/llm"
)

// BuildLegalAnswerMessages assembles the completion request for a
// retrieval-augmented answer: grounding system instruction, replayed
// conversation history in original order, then a final user turn carrying
// the retrieved context and the question.
func BuildLegalAnswerMessages(history []llm.Message, articles []string, question string) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+2)

	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: constant.LegalAnswerSystemPrompt,
	})

	messages = append(messages, history...)

	contexte := strings.Join(articles, "\n\n")
	userContent := fmt.Sprintf("Contexte juridique :\n%s\n\nQUESTION : %s", contexte, question)

	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: userContent,
	})

	return messages
}

// BuildSummaryMessages assembles the completion request for a document
// summary: a single user turn wrapping the extracted full text.
func BuildSummaryMessages(documentText string) []llm.Message {
	return []llm.Message{
		{
			Role:    constant.ChatMessageRoleUser,
			Content: fmt.Sprintf(constant.SummaryPromptTemplate, documentText),
		},
	}
}
