package assessment

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"

	"autopolicy/internal/domain"
)

const resultSchema = `{
  "type": "object",
  "required": ["policy_analysis", "overall_score"],
  "properties": {
    "policy_analysis": {
      "type": "object",
      "properties": {
        "coverage_adequacy": {"type": "string"},
        "cost_effectiveness": {"type": "string"},
        "risk_level": {"type": "string"}
      }
    },
    "comparison": {
      "type": "object",
      "properties": {
        "liability_adequacy": {"type": "string"},
        "deductible_analysis": {"type": "string"},
        "premium_analysis": {"type": "string"}
      }
    },
    "recommendations": {"type": "array", "items": {"type": "string"}},
    "risk_assessment": {"type": "string"},
    "overall_score": {"type": ["integer", "number", "string"]}
  }
}`

var compiledSchema = mustCompileSchema(resultSchema)

func mustCompileSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("assessment: compiling result schema: %v", err))
	}
	return schema
}

// excerptLen bounds how much of a bad reply is quoted in errors.
const excerptLen = 100

// wireResult mirrors domain.AssessmentResult with a lenient overall_score.
type wireResult struct {
	PolicyAnalysis  domain.PolicyAnalysis  `json:"policy_analysis"`
	Comparison      domain.ComparisonNotes `json:"comparison"`
	Recommendations []string               `json:"recommendations"`
	RiskAssessment  string                 `json:"risk_assessment"`
	OverallScore    json.RawMessage        `json:"overall_score"`
}

// ExtractJSON returns the substring from the first '{' to the last '}', inclusive.
func ExtractJSON(reply string) (string, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return "", domain.ErrNoJSONFound
	}
	return reply[start : end+1], nil
}

// ParseStructured turns a model reply into a well-formed AssessmentResult.
func ParseStructured(reply string) (*domain.AssessmentResult, error) {
	if strings.TrimSpace(reply) == "" {
		return nil, domain.ErrEmptyResponse
	}

	candidate, err := ExtractJSON(reply)
	if err != nil {
		return nil, err
	}

	validation, err := compiledSchema.Validate(gojsonschema.NewStringLoader(candidate))
	if err != nil {
		return nil, malformed(candidate, err.Error())
	}
	if !validation.Valid() {
		msgs := make([]string, 0, len(validation.Errors()))
		for _, e := range validation.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, malformed(candidate, strings.Join(msgs, "; "))
	}

	var wire wireResult
	if err := json.Unmarshal([]byte(candidate), &wire); err != nil {
		return nil, malformed(candidate, err.Error())
	}

	score, err := parseScore(wire.OverallScore)
	if err != nil {
		return nil, malformed(candidate, err.Error())
	}

	recs := wire.Recommendations
	if recs == nil {
		recs = []string{}
	}
	return &domain.AssessmentResult{
		PolicyAnalysis:  wire.PolicyAnalysis,
		Comparison:      wire.Comparison,
		Recommendations: recs,
		RiskAssessment:  wire.RiskAssessment,
		OverallScore:    score,
		Source:          domain.SourceStructured,
	}, nil
}

// parseScore accepts 7, 7.4 (rounded) or "7". Range is not checked.
func parseScore(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		raw = []byte(strings.TrimSpace(s))
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("overall_score %q is not a number", string(raw))
	}
	return int(math.Round(f)), nil
}

func malformed(candidate, cause string) error {
	excerpt := candidate
	if len(excerpt) > excerptLen {
		cut := excerptLen
		for cut > 0 && !utf8.RuneStart(excerpt[cut]) {
			cut--
		}
		excerpt = excerpt[:cut] + "..."
	}
	return fmt.Errorf("%w: %s (attempted to parse: %s)", domain.ErrMalformedJSON, cause, excerpt)
}
