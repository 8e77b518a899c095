package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// minDirectTextLength is the threshold under which a direct extraction pass
// is considered a scanned document and the OCR pipeline takes over.
const minDirectTextLength = 100

// HTTPExtractor calls the external document-to-text service. The service
// exposes a fast direct-extraction endpoint and a slower OCR endpoint; the
// OCR pass runs when the direct pass fails or returns too little text.
type HTTPExtractor struct {
	BaseURL string
	client  *http.Client
}

func NewHTTPExtractor(baseURL string) *HTTPExtractor {
	return &HTTPExtractor{
		BaseURL: baseURL,
		// OCR over a full scanned document takes a while.
		client: &http.Client{Timeout: 300 * time.Second},
	}
}

type extractRequest struct {
	Path string `json:"path"`
}

type extractResponse struct {
	Text string `json:"text"`
}

func (e *HTTPExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	text, err := e.call(ctx, "/extract/text", path)
	if err == nil && len(strings.TrimSpace(text)) >= minDirectTextLength {
		return text, nil
	}

	ocrText, ocrErr := e.call(ctx, "/extract/ocr", path)
	if ocrErr != nil {
		if err != nil {
			return "", fmt.Errorf("direct extraction failed (%v), ocr fallback failed: %w", err, ocrErr)
		}
		return "", fmt.Errorf("ocr fallback failed: %w", ocrErr)
	}

	return ocrText, nil
}

func (e *HTTPExtractor) call(ctx context.Context, endpoint, path string) (string, error) {
	jsonBody, err := json.Marshal(extractRequest{Path: path})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", e.BaseURL+endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("extractor request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extractor error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed extractResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	return parsed.Text, nil
}
