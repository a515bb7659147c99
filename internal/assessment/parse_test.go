package assessment_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autopolicy/internal/assessment"
	"autopolicy/internal/domain"
)

const validJSON = `{
  "policy_analysis": {"coverage_adequacy": "Adequate", "cost_effectiveness": "Fair", "risk_level": "Medium"},
  "comparison": {"liability_adequacy": "At average", "deductible_analysis": "Typical", "premium_analysis": "On par"},
  "recommendations": ["Raise liability limits", "Bundle policies"],
  "risk_assessment": "Moderate exposure.",
  "overall_score": 7
}`

func TestParseStructured_SurroundingProse(t *testing.T) {
	result, err := assessment.ParseStructured("Sure! " + validJSON + " Thanks.")

	require.NoError(t, err)
	assert.Equal(t, 7, result.OverallScore)
	assert.Equal(t, "Medium", result.PolicyAnalysis.RiskLevel)
	assert.Equal(t, "Typical", result.Comparison.DeductibleAnalysis)
	assert.Equal(t, []string{"Raise liability limits", "Bundle policies"}, result.Recommendations)
	assert.Equal(t, "Moderate exposure.", result.RiskAssessment)
	assert.Equal(t, domain.SourceStructured, result.Source)
	assert.False(t, result.IsDegraded())
}

func TestParseStructured_CodeFence(t *testing.T) {
	result, err := assessment.ParseStructured("```json\n" + validJSON + "\n```")

	require.NoError(t, err)
	assert.Equal(t, 7, result.OverallScore)
}

func TestParseStructured_Empty(t *testing.T) {
	_, err := assessment.ParseStructured("  \n ")

	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
}

func TestParseStructured_NoBraces(t *testing.T) {
	_, err := assessment.ParseStructured("I cannot help with that.")

	assert.ErrorIs(t, err, domain.ErrNoJSONFound)
}

func TestParseStructured_InvertedBraces(t *testing.T) {
	_, err := assessment.ParseStructured("} nothing here {")

	assert.ErrorIs(t, err, domain.ErrNoJSONFound)
}

func TestParseStructured_Malformed(t *testing.T) {
	_, err := assessment.ParseStructured(`{"policy_analysis": {"coverage_adequacy": "ok",}`)

	assert.ErrorIs(t, err, domain.ErrMalformedJSON)
	assert.Contains(t, err.Error(), "attempted to parse")
}

func TestParseStructured_WrongFieldType(t *testing.T) {
	reply := `{"policy_analysis": {}, "comparison": {}, "recommendations": "none", "risk_assessment": "x", "overall_score": 5}`

	_, err := assessment.ParseStructured(reply)

	assert.ErrorIs(t, err, domain.ErrMalformedJSON)
}

func TestParseStructured_MissingField(t *testing.T) {
	_, err := assessment.ParseStructured(`{"risk_assessment": "x", "overall_score": 5}`)

	assert.ErrorIs(t, err, domain.ErrMalformedJSON)
}

func TestParseStructured_ScoreForms(t *testing.T) {
	base := `{"policy_analysis": {}, "comparison": {}, "recommendations": [], "risk_assessment": "", "overall_score": %s}`
	tests := []struct {
		raw  string
		want int
	}{
		{"8", 8},
		{"7.6", 8},
		{`"9"`, 9},
		{`" 4 "`, 4},
		{"0", 0},
		{"15", 15},
		{"-2", -2},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			result, err := assessment.ParseStructured(fmt.Sprintf(base, tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.OverallScore)
		})
	}
}

func TestParseStructured_ScoreNotNumeric(t *testing.T) {
	reply := `{"policy_analysis": {}, "comparison": {}, "recommendations": [], "risk_assessment": "", "overall_score": "high"}`

	_, err := assessment.ParseStructured(reply)

	assert.ErrorIs(t, err, domain.ErrMalformedJSON)
}

func TestParseStructured_EmptyRecommendations(t *testing.T) {
	reply := `{"policy_analysis": {}, "comparison": {}, "recommendations": [], "risk_assessment": "", "overall_score": 5}`

	result, err := assessment.ParseStructured(reply)

	require.NoError(t, err)
	assert.NotNil(t, result.Recommendations)
	assert.Empty(t, result.Recommendations)
}

func TestExtractJSON(t *testing.T) {
	got, err := assessment.ExtractJSON(`a {"x": {"y": 1}} b }`)

	require.NoError(t, err)
	assert.Equal(t, `{"x": {"y": 1}} b }`, got)
}

func TestParseStructured_OnlyAnalysisAndScoreRequired(t *testing.T) {
	result, err := assessment.ParseStructured(`{"policy_analysis": {"risk_level": "Low"}, "overall_score": 8}`)

	require.NoError(t, err)
	assert.Equal(t, 8, result.OverallScore)
	assert.Equal(t, "Low", result.PolicyAnalysis.RiskLevel)
	assert.Empty(t, result.Comparison.PremiumAnalysis)
	assert.Equal(t, []string{}, result.Recommendations)
	assert.Empty(t, result.RiskAssessment)
	assert.Equal(t, domain.SourceStructured, result.Source)
}

func TestParseStructured_MissingScore(t *testing.T) {
	_, err := assessment.ParseStructured(`{"policy_analysis": {}, "recommendations": ["x"]}`)

	assert.ErrorIs(t, err, domain.ErrMalformedJSON)
}

func TestParseStructured_ExcerptIsValidUTF8(t *testing.T) {
	reply := `{"policy_analysis": "` + strings.Repeat("é", 60) + `"}`

	_, err := assessment.ParseStructured(reply)

	require.ErrorIs(t, err, domain.ErrMalformedJSON)
	assert.True(t, utf8.ValidString(err.Error()))
}
