package openai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	"autopolicy/internal/config"
	"autopolicy/internal/domain"
	"autopolicy/internal/llm"
)

const (
	apiURL       = "https://api.openai.com/v1/chat/completions"
	providerName = "openai"
	defaultModel = "gpt-4o-mini"
)

// Completer implements port.Completer using the OpenAI Chat Completions API.
type Completer struct {
	apiKey      string
	model       string
	endpoint    string
	temperature float64
	maxTokens   int
	client      *http.Client
}

// NewCompleter creates an OpenAI-backed completer from the LLM config.
func NewCompleter(cfg *config.LLMConfig) *Completer {
	return newCompleter(cfg, apiURL)
}

// NewCompleterWithEndpoint creates a completer pointing at a custom API endpoint (for testing).
func NewCompleterWithEndpoint(cfg *config.LLMConfig, endpoint string) *Completer {
	return newCompleter(cfg, endpoint)
}

func newCompleter(cfg *config.LLMConfig, endpoint string) *Completer {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Completer{
		apiKey:      cfg.APIKey,
		model:       model,
		endpoint:    endpoint,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		client:      &http.Client{Timeout: cfg.Timeout()},
	}
}

func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model":       c.model,
		"temperature": c.temperature,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": prompt,
			},
		},
	}
	if c.maxTokens > 0 {
		reqBody["max_completion_tokens"] = c.maxTokens
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", llm.TransportError(providerName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", llm.TransportError(providerName, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", llm.NewStatusError(providerName, resp, respBody)
	}

	return parseResponse(respBody)
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func parseResponse(body []byte) (string, error) {
	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: unmarshaling openai response: %v", domain.ErrAIService, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai returned no choices", domain.ErrEmptyResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
