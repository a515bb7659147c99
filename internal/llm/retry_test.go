package llm_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"autopolicy/internal/domain"
	"autopolicy/internal/llm"
)

type scriptedCompleter struct {
	errs  []error
	text  string
	calls int
}

func (s *scriptedCompleter) Complete(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.calls <= len(s.errs) {
		return "", s.errs[s.calls-1]
	}
	return s.text, nil
}

func unavailable() error {
	return llm.NewStatusError("gemini", &http.Response{StatusCode: http.StatusServiceUnavailable, Header: http.Header{}}, nil)
}

func TestRetryCompleter_RetriesTransientOnce(t *testing.T) {
	next := &scriptedCompleter{errs: []error{unavailable()}, text: "ok"}
	rc := llm.NewRetryCompleter(next, 1, zap.NewNop()).WithBackoff(time.Millisecond)

	text, err := rc.Complete(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 2, next.calls)
}

func TestRetryCompleter_GivesUpAfterMaxRetries(t *testing.T) {
	next := &scriptedCompleter{errs: []error{unavailable(), unavailable(), unavailable()}}
	rc := llm.NewRetryCompleter(next, 1, zap.NewNop()).WithBackoff(time.Millisecond)

	_, err := rc.Complete(context.Background(), "prompt")

	assert.ErrorIs(t, err, domain.ErrAIService)
	assert.Equal(t, 2, next.calls)
}

func TestRetryCompleter_DoesNotRetryPermanentFailure(t *testing.T) {
	next := &scriptedCompleter{errs: []error{domain.ErrEmptyResponse}}
	rc := llm.NewRetryCompleter(next, 3, zap.NewNop()).WithBackoff(time.Millisecond)

	_, err := rc.Complete(context.Background(), "prompt")

	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
	assert.Equal(t, 1, next.calls)
}

func TestRetryCompleter_ZeroRetries(t *testing.T) {
	next := &scriptedCompleter{errs: []error{unavailable()}}
	rc := llm.NewRetryCompleter(next, 0, zap.NewNop())

	_, err := rc.Complete(context.Background(), "prompt")

	assert.Error(t, err)
	assert.Equal(t, 1, next.calls)
}

func TestRetryCompleter_StopsWhenContextDone(t *testing.T) {
	next := &scriptedCompleter{errs: []error{unavailable()}, text: "late"}
	rc := llm.NewRetryCompleter(next, 1, zap.NewNop()).WithBackoff(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rc.Complete(ctx, "prompt")

	assert.ErrorIs(t, err, domain.ErrAIService)
	assert.Equal(t, 1, next.calls)
}

func TestMeteredCompleter_PassesThrough(t *testing.T) {
	next := &scriptedCompleter{text: "hello"}
	mc := llm.NewMeteredCompleter(next, "gemini")

	text, err := mc.Complete(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}
