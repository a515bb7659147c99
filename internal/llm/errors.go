package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"autopolicy/internal/domain"
)

// StatusError is a non-success HTTP status returned by a provider API.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Body)
}

// Unwrap makes every provider status error an AI service failure.
func (e *StatusError) Unwrap() error {
	return domain.ErrAIService
}

// RateLimitError indicates a provider returned HTTP 429.
type RateLimitError struct {
	Err        error
	RetryAfter time.Duration
	Provider   string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError creates a RateLimitError. If retryAfterSecs is 0, defaults to 60s.
func NewRateLimitError(provider string, err error, retryAfterSecs int) *RateLimitError {
	if retryAfterSecs <= 0 {
		retryAfterSecs = 60
	}
	return &RateLimitError{
		Err:        err,
		RetryAfter: time.Duration(retryAfterSecs) * time.Second,
		Provider:   provider,
	}
}

// ParseRetryAfterHeader parses a Retry-After header value into seconds.
// Returns 0 if the value is empty or not a valid integer.
func ParseRetryAfterHeader(val string) int {
	if val == "" {
		return 0
	}
	secs, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return secs
}

// NewStatusError builds the error for a non-200 provider response, promoting 429
// to a RateLimitError.
func NewStatusError(provider string, resp *http.Response, body []byte) error {
	base := &StatusError{Provider: provider, StatusCode: resp.StatusCode, Body: truncate(string(body), 500)}
	if resp.StatusCode == http.StatusTooManyRequests {
		return NewRateLimitError(provider, base, ParseRetryAfterHeader(resp.Header.Get("Retry-After")))
	}
	return base
}

// TransportError wraps a failed round trip to a provider.
func TransportError(provider string, err error) error {
	return fmt.Errorf("%w: calling %s API: %w", domain.ErrAIService, provider, err)
}

// IsTransient reports whether an identical request is worth sending again:
// rate limits, 5xx responses and client-side timeouts. Parse failures never are.
func IsTransient(err error) bool {
	if err == nil || !errors.Is(err, domain.ErrAIService) {
		return false
	}
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= 500
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// truncate shortens s to at most maxLen bytes without splitting a rune.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
