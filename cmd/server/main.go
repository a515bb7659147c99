package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"autopolicy/internal/assessment"
	"autopolicy/internal/config"
	"autopolicy/internal/extractor"
	"autopolicy/internal/handler"
	"autopolicy/internal/llm"
	"autopolicy/internal/llm/providers"
	"autopolicy/internal/logger"
	"autopolicy/internal/router"
	"autopolicy/internal/service"
)

// @title Auto Policy Analyzer API
// @version 1.0
// @description Compares auto insurance policies with US averages and returns AI assessments.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	// Initialize the AI provider
	providers.RegisterAll()
	completer, err := llm.NewCompleter(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize llm provider: %w", err)
	}
	completer = llm.NewRetryCompleter(llm.NewMeteredCompleter(completer, cfg.LLM.Provider), cfg.LLM.MaxRetries, zl)

	// Initialize services
	ext := extractor.New(zl)
	assessor := assessment.NewClient(completer, zl)
	analysisSvc := service.NewAnalysisService(ext, assessor, zl)

	// Initialize handlers
	maxUpload := cfg.Upload.MaxBytes()
	analysisTimeout := cfg.Server.AnalysisTimeout()
	healthH := handler.NewHealthHandler(cfg.LLM.Provider)
	r := router.Setup(zl, cfg.CORS.AllowedOrigins, router.Handlers{
		Analysis:   handler.NewAnalysisHandler(analysisSvc, maxUpload, analysisTimeout),
		Comparison: handler.NewComparisonHandler(analysisSvc),
		Reference:  handler.NewReferenceHandler(),
		Page:       handler.NewPageHandler(analysisSvc, maxUpload, analysisTimeout),
		Health:     healthH,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server starting",
			zap.String("addr", cfg.Server.Port),
			zap.String("llm_provider", cfg.LLM.Provider),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	healthH.SetDraining()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
