// Package assessment asks the completion service to rate a policy and turns the
// reply into an AssessmentResult.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"autopolicy/internal/domain"
	"autopolicy/internal/port"
)

// DegradedScore is the overall score given to every degraded result.
const DegradedScore = 6

// Placeholder texts used by degraded results.
var (
	degradedAnalysis = domain.PolicyAnalysis{
		CoverageAdequacy:  "Analysis provided by AI",
		CostEffectiveness: "Cost analysis completed",
		RiskLevel:         "Risk assessment provided",
	}
	degradedComparison = domain.ComparisonNotes{
		LiabilityAdequacy:  "Compared with US averages",
		DeductibleAnalysis: "Deductible analysis completed",
		PremiumAnalysis:    "Premium comparison done",
	}
	degradedRecommendations = []string{
		"Review your policy with an insurance agent",
		"Consider increasing coverage if needed",
		"Shop around for better rates",
	}
)

// Client sends assessment prompts through a Completer. It never falls back on its own.
type Client struct {
	completer port.Completer
	logger    *zap.Logger
}

// NewClient creates an assessment client.
func NewClient(completer port.Completer, logger *zap.Logger) *Client {
	return &Client{completer: completer, logger: logger}
}

// Assess requests a structured JSON assessment of text against ref, the averages for region.
func (c *Client) Assess(ctx context.Context, text domain.PolicyText, ref domain.ReferenceProfile, region string) (*domain.AssessmentResult, error) {
	reply, err := c.completer.Complete(ctx, BuildStructuredPrompt(text, ref, region))
	if err != nil {
		return nil, serviceError(err)
	}

	result, err := ParseStructured(reply)
	if err != nil {
		c.logger.Debug("structured reply rejected",
			zap.Int("reply_chars", len(reply)), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// AssessDegraded requests a prose assessment and wraps it in fixed placeholders.
func (c *Client) AssessDegraded(ctx context.Context, text domain.PolicyText) (*domain.AssessmentResult, error) {
	reply, err := c.completer.Complete(ctx, BuildDegradedPrompt(text))
	if err != nil {
		return nil, serviceError(err)
	}
	if strings.TrimSpace(reply) == "" {
		return nil, domain.ErrEmptyResponse
	}

	recs := make([]string, len(degradedRecommendations))
	copy(recs, degradedRecommendations)
	return &domain.AssessmentResult{
		PolicyAnalysis:  degradedAnalysis,
		Comparison:      degradedComparison,
		Recommendations: recs,
		RiskAssessment:  reply,
		OverallScore:    DegradedScore,
		Source:          domain.SourceDegraded,
	}, nil
}

// serviceError keeps provider classifications and files everything else under ErrAIService.
func serviceError(err error) error {
	if errors.Is(err, domain.ErrAIService) || errors.Is(err, domain.ErrEmptyResponse) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrAIService, err)
}
