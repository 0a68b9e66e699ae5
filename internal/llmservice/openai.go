package llmservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"healthcube/internal/config"

	"github.com/rs/zerolog"
)

const providerOpenAI = "openai"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// OpenAIClient talks to any OpenAI-compatible /chat/completions endpoint.
type OpenAIClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewOpenAIClient(cfg config.LLM, httpClient *http.Client) *OpenAIClient {
	return &OpenAIClient{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: httpClient,
	}
}

func (c *OpenAIClient) Invoke(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	log := zerolog.Ctx(ctx)
	start := time.Now()

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", &GatewayError{Provider: providerOpenAI, Err: fmt.Errorf("failed to marshal payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payloadBytes))
	if err != nil {
		return "", &GatewayError{Provider: providerOpenAI, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	log.Debug().Str("model", c.model).Int("system_len", len(systemPrompt)).Int("user_len", len(userPrompt)).Msg("Calling chat completion")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &GatewayError{Provider: providerOpenAI, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GatewayError{Provider: providerOpenAI, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &GatewayError{Provider: providerOpenAI, StatusCode: resp.StatusCode, Err: fmt.Errorf("API returned %s: %s", resp.Status, snippet(body))}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", &GatewayError{Provider: providerOpenAI, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if chatResp.Error != nil {
		return "", &GatewayError{Provider: providerOpenAI, StatusCode: resp.StatusCode, Err: fmt.Errorf("API error: %s", chatResp.Error.Message)}
	}
	if len(chatResp.Choices) == 0 {
		return "", &GatewayError{Provider: providerOpenAI, StatusCode: resp.StatusCode, Err: errEmptyReply}
	}

	content := chatResp.Choices[0].Message.Content
	log.Info().Str("model", c.model).Dur("latency", time.Since(start)).Int("reply_len", len(content)).Msg("Chat completion finished")
	return content, nil
}
