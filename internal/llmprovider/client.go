// Package llmprovider реализует HTTP-клиент для OpenAI-совместимого
// chat completions API. Один вызов — один запрос к провайдеру: без ретраев,
// без стриминга, без кеширования одинаковых промптов.
package llmprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/magabrotheeeer/revision-generator/internal/config"
)

type Client struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient создаёт новый клиент LLM-провайдера.
func NewClient(cfg config.LLMProvider) *Client {
	return &Client{
		apiURL:     cfg.APIURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.TimeoutLLM},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	url := c.apiURL + path
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Complete отправляет диалог из системной инструкции и одного пользовательского
// сообщения, опционально с изображением в base64, и возвращает текст ответа.
func (c *Client) Complete(ctx context.Context, systemPrompt, userText, imageBase64 string) (string, error) {
	var userContent any = userText
	if imageBase64 != "" {
		userContent = []ContentPart{
			{Type: "text", Text: userText},
			{Type: "image_url", ImageURL: &ImageURL{
				URL: "data:image/jpeg;base64," + imageBase64,
			}},
		}
	}

	reqParams := ChatCompletionRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
	}

	req, err := c.newRequest(ctx, "POST", "/chat/completions", reqParams)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiResp ChatCompletionResponse
		if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&apiResp); decodeErr == nil && apiResp.Error != nil {
			return "", fmt.Errorf("provider error: %s", apiResp.Error.Message)
		}
		return "", errors.New("unexpected status: " + resp.Status)
	}

	var apiResp ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", err
	}
	if apiResp.Error != nil {
		return "", fmt.Errorf("provider error: %s", apiResp.Error.Message)
	}
	if len(apiResp.Choices) == 0 {
		return "", errors.New("provider returned no choices")
	}
	return apiResp.Choices[0].Message.Content, nil
}
