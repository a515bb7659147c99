package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"autopolicy/internal/config"
	"autopolicy/internal/domain"
	"autopolicy/internal/llm"
)

const (
	apiBaseURL   = "https://generativelanguage.googleapis.com/v1beta/models"
	providerName = "gemini"
	defaultModel = "gemini-2.0-flash"
)

// Completer implements port.Completer using Google's Gemini generateContent API.
type Completer struct {
	apiKey      string
	model       string
	endpoint    string
	temperature float64
	maxTokens   int
	client      *http.Client
}

// NewCompleter creates a Gemini-backed completer.
func NewCompleter(cfg *config.LLMConfig) *Completer {
	return newCompleter(cfg, "")
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
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
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

// Model returns the model name requests are sent to.
func (c *Completer) Model() string {
	return c.model
}

func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	generation := map[string]interface{}{
		"temperature": c.temperature,
	}
	if c.maxTokens > 0 {
		generation["maxOutputTokens"] = c.maxTokens
	}
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": generation,
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
	req.Header.Set("x-goog-api-key", c.apiKey)

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

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// parseResponse concatenates the text parts of the first candidate.
func parseResponse(body []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: unmarshaling gemini response: %v", domain.ErrAIService, err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: gemini returned no candidates", domain.ErrEmptyResponse)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
