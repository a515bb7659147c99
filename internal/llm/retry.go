package llm

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"autopolicy/internal/port"
)

// maxBackoff caps the wait between attempts, whatever Retry-After says.
const maxBackoff = 5 * time.Second

// RetryCompleter re-sends the same prompt after transient transport failures.
// Each retry is logged.
type RetryCompleter struct {
	next       port.Completer
	maxRetries int
	backoff    time.Duration
	logger     *zap.Logger
}

// NewRetryCompleter wraps next with up to maxRetries extra attempts.
func NewRetryCompleter(next port.Completer, maxRetries int, logger *zap.Logger) *RetryCompleter {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &RetryCompleter{next: next, maxRetries: maxRetries, backoff: time.Second, logger: logger}
}

// WithBackoff overrides the base wait between attempts.
func (r *RetryCompleter) WithBackoff(d time.Duration) *RetryCompleter {
	r.backoff = d
	return r
}

func (r *RetryCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			wait := r.delay(attempt, lastErr)
			r.logger.Warn("retrying completion after transient failure",
				zap.Int("attempt", attempt+1),
				zap.Duration("wait", wait),
				zap.Error(lastErr))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return "", lastErr
			}
		}

		text, err := r.next.Complete(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !IsTransient(err) {
			return "", err
		}
	}
	return "", lastErr
}

func (r *RetryCompleter) delay(attempt int, err error) time.Duration {
	wait := r.backoff * time.Duration(attempt)
	var rl *RateLimitError
	if errors.As(err, &rl) && rl.RetryAfter > wait {
		wait = rl.RetryAfter
	}
	if wait > maxBackoff {
		wait = maxBackoff
	}
	return wait
}
