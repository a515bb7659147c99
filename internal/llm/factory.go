package llm

import (
	"fmt"
	"sort"

	"autopolicy/internal/config"
	"autopolicy/internal/port"
)

// ProviderFactory creates a Completer from the LLM config.
type ProviderFactory func(cfg *config.LLMConfig) (port.Completer, error)

// registry of provider factories, populated explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// Registered reports whether a provider name has a factory.
func Registered(name string) bool {
	_, ok := providers[name]
	return ok
}

// ProviderNames lists registered provider names, sorted.
func ProviderNames() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewCompleter creates the configured provider's Completer.
func NewCompleter(cfg *config.LLMConfig) (port.Completer, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
