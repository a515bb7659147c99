// Command doctor checks that the analyzer is configured to run: the API key, the
// reference tables and optionally a live provider call and a sample extraction.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"autopolicy/internal/config"
	"autopolicy/internal/domain"
	"autopolicy/internal/extractor"
	"autopolicy/internal/llm"
	"autopolicy/internal/llm/providers"
	"autopolicy/internal/reference"
)

func main() {
	ping := flag.Bool("ping", false, "send a short prompt to the configured AI provider")
	sample := flag.String("sample", "", "extract text from a policy document and print a preview")
	flag.Parse()

	if !run(*ping, *sample) {
		os.Exit(1)
	}
}

func run(ping bool, sample string) bool {
	ok := true
	report := func(name string, err error) {
		if err != nil {
			ok = false
			fmt.Printf("FAIL  %s: %v\n", name, err)
			return
		}
		fmt.Printf("ok    %s\n", name)
	}

	if _, err := os.Stat(".env"); err != nil {
		fmt.Println("info  no .env file in working directory; using environment only")
	}

	cfg, err := config.Load()
	if err != nil {
		report("config", err)
		return false
	}
	report("config", cfg.Validate())

	providers.RegisterAll()
	if !llm.Registered(cfg.LLM.Provider) {
		report("provider", fmt.Errorf("unknown provider %q (available: %s)", cfg.LLM.Provider, strings.Join(llm.ProviderNames(), ", ")))
	} else {
		report("provider "+cfg.LLM.Provider, nil)
	}

	report("reference US average", reference.Validate(reference.USAverage()))
	for _, state := range reference.States() {
		profile, err := reference.ForState(state)
		if err == nil {
			err = reference.Validate(profile)
		}
		report("reference "+state, err)
	}

	if ping && ok {
		report("provider ping", pingProvider(&cfg.LLM))
	}
	if sample != "" {
		report("sample extraction", extractSample(sample))
	}
	return ok
}

func pingProvider(cfg *config.LLMConfig) error {
	completer, err := llm.NewCompleter(cfg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()
	start := time.Now()
	reply, err := completer.Complete(ctx, "Hello")
	if err != nil {
		return err
	}
	if strings.TrimSpace(reply) == "" {
		return domain.ErrEmptyResponse
	}
	fmt.Printf("      replied in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func extractSample(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	mediaType := extractor.ResolveMediaType("", filepath.Base(path), head)
	ext, err := extractor.New(zap.NewNop()).Extract(context.Background(), data, mediaType)
	if err != nil {
		return err
	}
	preview := []rune(ext.Text)
	if len(preview) > 200 {
		preview = preview[:200]
	}
	fmt.Printf("      %s via %s, %d chars\n      %s\n", mediaType, ext.Method, len(ext.Text), strings.ReplaceAll(string(preview), "\n", " "))
	return nil
}
