package claude

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"autopolicy/internal/config"
	"autopolicy/internal/domain"
	"autopolicy/internal/llm"
)

const (
	providerName = "claude"
	defaultModel = "claude-3-5-haiku-latest"
)

// Messager is the slice of the Anthropic client used here.
type Messager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Completer implements port.Completer using the Anthropic Messages API.
type Completer struct {
	messages    Messager
	model       string
	temperature float64
	maxTokens   int64
}

// NewCompleter creates a Claude-backed completer. Retries are left to llm.RetryCompleter.
func NewCompleter(cfg *config.LLMConfig) *Completer {
	c := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.Timeout()),
	)
	return NewCompleterWithMessager(cfg, &c.Messages)
}

// NewCompleterWithMessager creates a completer around an existing messages client (for testing).
func NewCompleterWithMessager(cfg *config.LLMConfig, messages Messager) *Completer {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := int64(cfg.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 2000
	}
	return &Completer{
		messages:    messages,
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   maxTokens,
	}
}

func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.maxTokens,
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(c.temperature),
	})
	if err != nil {
		return "", classify(err)
	}
	if resp == nil || len(resp.Content) == 0 {
		return "", fmt.Errorf("%w: claude returned no content", domain.ErrEmptyResponse)
	}

	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}

// classify maps SDK errors onto the shared provider error types.
func classify(err error) error {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return llm.TransportError(providerName, err)
	}
	resp := apiErr.Response
	if resp == nil {
		resp = &http.Response{StatusCode: apiErr.StatusCode, Header: http.Header{}}
	}
	body := http.StatusText(apiErr.StatusCode)
	if apiErr.Request != nil && apiErr.Response != nil {
		body = apiErr.Error()
	}
	return llm.NewStatusError(providerName, resp, []byte(body))
}
