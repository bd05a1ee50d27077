package llmprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/revision-generator/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.LLMProvider{
		APIURL:     srv.URL,
		APIKey:     "test-key",
		Model:      "gpt-4o-mini",
		TimeoutLLM: 5 * time.Second,
	})
}

func TestComplete_Success(t *testing.T) {
	var gotReq ChatCompletionRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "# Fiche"}},
			},
		})
	})

	content, err := client.Complete(context.Background(), "system prompt", "user text", "")
	require.NoError(t, err)
	assert.Equal(t, "# Fiche", content)

	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "system prompt", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "user text", gotReq.Messages[1].Content)
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
}

func TestComplete_WithImageSendsContentParts(t *testing.T) {
	var raw map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "ok"}},
			},
		})
	})

	_, err := client.Complete(context.Background(), "sys", "texte", "aGVsbG8=")
	require.NoError(t, err)

	messages := raw["messages"].([]any)
	userMsg := messages[1].(map[string]any)
	parts := userMsg["content"].([]any)
	require.Len(t, parts, 2)

	textPart := parts[0].(map[string]any)
	assert.Equal(t, "text", textPart["type"])
	assert.Equal(t, "texte", textPart["text"])

	imagePart := parts[1].(map[string]any)
	assert.Equal(t, "image_url", imagePart["type"])
	imageURL := imagePart["image_url"].(map[string]any)
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", imageURL["url"])
}

func TestComplete_ProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "invalid api key", "type": "auth_error"},
		})
	})

	_, err := client.Complete(context.Background(), "sys", "texte", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
	// Ключ не должен утечь в текст ошибки
	assert.NotContains(t, err.Error(), "test-key")
}

func TestComplete_UnexpectedStatusWithoutBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Complete(context.Background(), "sys", "texte", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestComplete_EmptyChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := client.Complete(context.Background(), "sys", "texte", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
