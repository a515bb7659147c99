package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"autopolicy/internal/domain"
	"autopolicy/internal/handler"
	"autopolicy/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	testMaxUpload       = 1 << 20
	testAnalysisTimeout = 5 * time.Second
)

func multipartRequest(t *testing.T, path, filename, contentType string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if filename != "" {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
		h["Content-Type"] = []string{contentType}
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, path string, payload interface{}) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeResponse(t *testing.T, body []byte) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func structuredOutcome() *service.AnalysisOutcome {
	return &service.AnalysisOutcome{
		Mode: domain.InputManual,
		Result: &domain.AssessmentResult{
			PolicyAnalysis:  domain.PolicyAnalysis{CoverageAdequacy: "Adequate", CostEffectiveness: "Fair", RiskLevel: "Low"},
			Comparison:      domain.ComparisonNotes{LiabilityAdequacy: "Average", DeductibleAnalysis: "Standard", PremiumAnalysis: "Below average"},
			Recommendations: []string{"Add roadside assistance"},
			RiskAssessment:  "**Low** overall risk.\n\n<script>alert(1)</script>",
			OverallScore:    12,
			Source:          domain.SourceStructured,
		},
	}
}
