package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"autopolicy/internal/assessment"
	"autopolicy/internal/comparison"
	"autopolicy/internal/domain"
	"autopolicy/internal/extractor"
	"autopolicy/internal/metrics"
	"autopolicy/internal/normalizer"
	"autopolicy/internal/reference"
)

// DocumentInput is the DTO for analyzing an uploaded policy document.
type DocumentInput struct {
	Data      []byte
	MediaType domain.MediaType // resolved from FileName and Data when empty
	FileName  string
	State     string // optional; selects state premium averages
}

// ManualEntryInput is the DTO for analyzing form-entered policy values.
type ManualEntryInput struct {
	Entry domain.ManualEntry
	State string
}

// AnalysisOutcome is everything one pipeline run produced.
type AnalysisOutcome struct {
	ID               uuid.UUID                   `json:"id"`
	Mode             domain.InputMode            `json:"mode"`
	Result           *domain.AssessmentResult    `json:"result"`
	Degraded         bool                        `json:"degraded"`
	PrimaryError     string                      `json:"primary_error,omitempty"`
	Comparison       *domain.ComparisonChartData `json:"comparison,omitempty"`
	Policy           *domain.UserPolicy          `json:"policy,omitempty"`
	PolicyText       domain.PolicyText           `json:"-"`
	ExtractionMethod string                      `json:"extraction_method,omitempty"`
	State            string                      `json:"state,omitempty"`
	Reference        domain.ReferenceProfile     `json:"reference"`
	CreatedAt        time.Time                   `json:"created_at"`
}

// AnalysisService defines the policy analysis contract.
type AnalysisService interface {
	AnalyzeDocument(ctx context.Context, input *DocumentInput) (*AnalysisOutcome, error)
	AnalyzeManualEntry(ctx context.Context, input *ManualEntryInput) (*AnalysisOutcome, error)
	CompareManualEntry(input *ManualEntryInput) (*domain.ComparisonChartData, error)
}

type analysisService struct {
	extractor *extractor.Extractor
	assessor  *assessment.Client
	logger    *zap.Logger
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(ext *extractor.Extractor, assessor *assessment.Client, logger *zap.Logger) AnalysisService {
	return &analysisService{extractor: ext, assessor: assessor, logger: logger}
}

func (s *analysisService) AnalyzeDocument(ctx context.Context, input *DocumentInput) (*AnalysisOutcome, error) {
	if len(input.Data) == 0 && input.FileName == "" {
		return nil, domain.ErrMissingFile
	}
	ref, err := reference.ForState(input.State)
	if err != nil {
		return nil, err
	}

	mediaType := input.MediaType
	if mediaType == "" {
		mediaType = extractor.ResolveMediaType("", input.FileName, input.Data)
	}

	ext, err := s.extractor.Extract(ctx, input.Data, mediaType)
	if err != nil {
		metrics.AnalysisFailures.WithLabelValues("extraction", reason(err)).Inc()
		s.logger.Warn("document extraction failed",
			zap.String("file_name", input.FileName),
			zap.String("media_type", string(mediaType)),
			zap.Error(err))
		return nil, fmt.Errorf("extracting %s: %w", input.FileName, err)
	}

	outcome := newOutcome(domain.InputDocument, input.State, ref)
	outcome.PolicyText = normalizer.FromText(ext.Text)
	outcome.ExtractionMethod = ext.Method

	if err := s.assess(ctx, outcome); err != nil {
		return nil, err
	}
	return outcome, nil
}

func (s *analysisService) AnalyzeManualEntry(ctx context.Context, input *ManualEntryInput) (*AnalysisOutcome, error) {
	if err := input.Entry.Validate(); err != nil {
		return nil, err
	}
	ref, err := reference.ForState(input.State)
	if err != nil {
		return nil, err
	}

	policy := domain.NewUserPolicy(input.Entry)
	outcome := newOutcome(domain.InputManual, input.State, ref)
	outcome.Policy = &policy
	outcome.PolicyText = normalizer.FromPolicy(policy)

	if err := s.assess(ctx, outcome); err != nil {
		return nil, err
	}
	chart := comparison.Compare(policy, ref)
	chart.ReferenceLabel = referenceLabel(input.State)
	outcome.Comparison = &chart
	return outcome, nil
}

func (s *analysisService) CompareManualEntry(input *ManualEntryInput) (*domain.ComparisonChartData, error) {
	if err := input.Entry.Validate(); err != nil {
		return nil, err
	}
	ref, err := reference.ForState(input.State)
	if err != nil {
		return nil, err
	}
	chart := comparison.Compare(domain.NewUserPolicy(input.Entry), ref)
	chart.ReferenceLabel = referenceLabel(input.State)
	return &chart, nil
}

// assess runs the structured assessment and, if it fails for any reason, the prose
// fallback. A fallback failure is terminal.
func (s *analysisService) assess(ctx context.Context, outcome *AnalysisOutcome) error {
	result, err := s.assessor.Assess(ctx, outcome.PolicyText, outcome.Reference, reference.Region(outcome.State))
	if err == nil {
		s.record(outcome, result)
		return nil
	}

	metrics.AnalysisFailures.WithLabelValues("assessment", reason(err)).Inc()
	s.logger.Warn("structured assessment failed, trying simple analysis",
		zap.String("analysis_id", outcome.ID.String()),
		zap.Error(err))
	outcome.PrimaryError = err.Error()

	result, fallbackErr := s.assessor.AssessDegraded(ctx, outcome.PolicyText)
	if fallbackErr != nil {
		metrics.AnalysisFailures.WithLabelValues("fallback", reason(fallbackErr)).Inc()
		s.logger.Error("fallback assessment failed",
			zap.String("analysis_id", outcome.ID.String()),
			zap.NamedError("primary_error", err),
			zap.Error(fallbackErr))
		return fmt.Errorf("fallback analysis also failed: %w", fallbackErr)
	}
	s.record(outcome, result)
	return nil
}

func (s *analysisService) record(outcome *AnalysisOutcome, result *domain.AssessmentResult) {
	outcome.Result = result
	outcome.Degraded = result.IsDegraded()
	metrics.AnalysesTotal.WithLabelValues(string(outcome.Mode), string(result.Source)).Inc()
	s.logger.Info("policy analyzed",
		zap.String("analysis_id", outcome.ID.String()),
		zap.String("mode", string(outcome.Mode)),
		zap.String("source", string(result.Source)),
		zap.Int("overall_score", result.OverallScore))
}

func newOutcome(mode domain.InputMode, state string, ref domain.ReferenceProfile) *AnalysisOutcome {
	return &AnalysisOutcome{
		ID:        uuid.New(),
		Mode:      mode,
		State:     state,
		Reference: ref,
		CreatedAt: time.Now().UTC(),
	}
}

// referenceLabel names the reference series of a chart, e.g. "Texas Average".
func referenceLabel(state string) string {
	return reference.Region(state) + " Average"
}

// reason is the metric label for a pipeline error.
func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnreadable):
		return "unreadable"
	case errors.Is(err, domain.ErrUndecodable):
		return "undecodable"
	case errors.Is(err, domain.ErrUnsupported):
		return "unsupported"
	case errors.Is(err, domain.ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, domain.ErrNoJSONFound):
		return "no_json"
	case errors.Is(err, domain.ErrMalformedJSON):
		return "malformed_json"
	case errors.Is(err, domain.ErrAIService):
		return "ai_service"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "other"
	}
}
