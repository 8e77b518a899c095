package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-legal-assistant-be/pkg/llm"
)

const chatCompletionsEndpoint = "/v1/chat/completions"

// Provider calls the Mistral chat-completions API.
type Provider struct {
	BaseURL string
	APIKey  string
	Model   string
	client  *http.Client
}

func NewProvider(baseURL, apiKey, model string) *Provider {
	if baseURL == "" {
		baseURL = "https://api.mistral.ai"
	}
	if model == "" {
		model = "mistral-small-latest"
	}
	return &Provider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		// Completions over large legal contexts can be slow.
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []llm.Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message llm.Message `json:"message"`
	} `json:"choices"`
}

func (p *Provider) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	payload := chatRequest{
		Model:    p.Model,
		Messages: messages,
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := p.BaseURL + chatCompletionsEndpoint
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJSON))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	res, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("mistral request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mistral error: status %d, body: %s", res.StatusCode, string(resBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(resBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("mistral response contained no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
