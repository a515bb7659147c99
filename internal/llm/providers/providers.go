// Package providers registers every built-in completion provider.
package providers

import (
	"autopolicy/internal/config"
	"autopolicy/internal/llm"
	"autopolicy/internal/llm/claude"
	"autopolicy/internal/llm/gemini"
	"autopolicy/internal/llm/openai"
	"autopolicy/internal/port"
)

// RegisterAll makes gemini, openai and claude available to llm.NewCompleter.
func RegisterAll() {
	llm.RegisterProvider("gemini", func(cfg *config.LLMConfig) (port.Completer, error) {
		return gemini.NewCompleter(cfg), nil
	})
	llm.RegisterProvider("openai", func(cfg *config.LLMConfig) (port.Completer, error) {
		return openai.NewCompleter(cfg), nil
	})
	llm.RegisterProvider("claude", func(cfg *config.LLMConfig) (port.Completer, error) {
		return claude.NewCompleter(cfg), nil
	})
}
