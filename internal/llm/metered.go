package llm

import (
	"context"
	"time"

	"autopolicy/internal/metrics"
	"autopolicy/internal/port"
)

// MeteredCompleter records call durations per provider and outcome.
type MeteredCompleter struct {
	next     port.Completer
	provider string
}

// NewMeteredCompleter wraps next with duration metrics.
func NewMeteredCompleter(next port.Completer, provider string) *MeteredCompleter {
	return &MeteredCompleter{next: next, provider: provider}
}

func (m *MeteredCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := m.next.Complete(ctx, prompt)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.LLMRequestDuration.WithLabelValues(m.provider, outcome).Observe(time.Since(start).Seconds())
	return text, err
}
