package llm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autopolicy/internal/config"
	"autopolicy/internal/llm"
	"autopolicy/internal/port"
)

func TestNewCompleter_UnknownProvider(t *testing.T) {
	_, err := llm.NewCompleter(&config.LLMConfig{Provider: "nonexistent"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown llm provider")
}

func TestRegisterProvider(t *testing.T) {
	llm.RegisterProvider("fake", func(cfg *config.LLMConfig) (port.Completer, error) {
		return &scriptedCompleter{text: cfg.Model}, nil
	})

	assert.True(t, llm.Registered("fake"))
	assert.Contains(t, llm.ProviderNames(), "fake")

	c, err := llm.NewCompleter(&config.LLMConfig{Provider: "fake", Model: "m1"})
	require.NoError(t, err)
	text, err := c.Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "m1", text)
}
