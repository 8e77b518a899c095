package mistral

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-legal-assistant-be/pkg/llm"
)

func TestChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != chatCompletionsEndpoint {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer cle-de-test" {
			t.Errorf("Authorization = %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != "mistral-small-latest" {
			t.Errorf("model = %q", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("messages = %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Réponse du modèle."}},
			},
		})
	}))
	defer server.Close()

	provider := NewProvider(server.URL, "cle-de-test", "")
	got, err := provider.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "instruction"},
		{Role: "user", Content: "question"},
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if got != "Réponse du modèle." {
		t.Errorf("Chat = %q", got)
	}
}

func TestChatNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	provider := NewProvider(server.URL, "cle", "")
	if _, err := provider.Chat(context.Background(), nil); err == nil {
		t.Fatal("Chat succeeded on empty choices, want error")
	}
}

func TestChatAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Unauthorized"}`))
	}))
	defer server.Close()

	provider := NewProvider(server.URL, "mauvaise-cle", "")
	_, err := provider.Chat(context.Background(), nil)
	if err == nil {
		t.Fatal("Chat succeeded on a 401, want error")
	}
	if !strings.Contains(err.Error(), "status 401") {
		t.Errorf("error = %v, want status in message", err)
	}
}
