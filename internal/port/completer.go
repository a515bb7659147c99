package port

import "context"

// Completer sends one free-text prompt to a hosted LLM and returns its free-text reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
