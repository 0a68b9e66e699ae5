package llmservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"healthcube/internal/config"

	"github.com/rs/zerolog"
)

const (
	providerGemini     = "gemini"
	structuredMimeType = "application/json"
)

// --- Structs for Gemini API Request/Response ---

type geminiPayload struct {
	Contents          []geminiContent   `json:"contents"`
	SystemInstruction *geminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	Temperature      float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeminiClient calls the generateContent endpoint of the Gemini API.
// The system prompt travels as systemInstruction and JSON output is requested
// through the response MIME type.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewGeminiClient(cfg config.LLM, httpClient *http.Client) *GeminiClient {
	return &GeminiClient{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: httpClient,
	}
}

// endpoint carries no credentials: transport errors quote the URL verbatim.
func (c *GeminiClient) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
}

func (c *GeminiClient) Invoke(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	log := zerolog.Ctx(ctx)
	start := time.Now()

	payload := geminiPayload{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: userPrompt}}},
		},
		GenerationConfig: &generationConfig{
			ResponseMimeType: structuredMimeType,
			Temperature:      temperature,
		},
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", &GatewayError{Provider: providerGemini, Err: fmt.Errorf("failed to marshal payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payloadBytes))
	if err != nil {
		return "", &GatewayError{Provider: providerGemini, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	log.Debug().Str("model", c.model).Int("system_len", len(systemPrompt)).Int("user_len", len(userPrompt)).Msg("Calling Gemini API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &GatewayError{Provider: providerGemini, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GatewayError{Provider: providerGemini, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &GatewayError{Provider: providerGemini, StatusCode: resp.StatusCode, Err: fmt.Errorf("API returned non-200 status: %s, Body: %s", resp.Status, snippet(body))}
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", &GatewayError{Provider: providerGemini, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", &GatewayError{Provider: providerGemini, StatusCode: resp.StatusCode, Err: errEmptyReply}
	}

	text := geminiResp.Candidates[0].Content.Parts[0].Text
	log.Info().Str("model", c.model).Dur("latency", time.Since(start)).Int("reply_len", len(text)).Msg("Gemini call finished")
	return text, nil
}
