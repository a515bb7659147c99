package handler

import (
	"bytes"
	"embed"
	"html/template"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"

	"autopolicy/internal/domain"
	"autopolicy/internal/middleware"
	"autopolicy/internal/normalizer"
	"autopolicy/internal/reference"
	"autopolicy/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("pages").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html"))
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"currency":  normalizer.Currency,
		"thousands": func(v float64) string { return normalizer.Currency(math.Round(v / 1000)) },
		"percent":   func(score int) int { return score * 10 },
		"seriesOf": func(d domain.ComparisonChartData) []domain.ChartSeries {
			return append([]domain.ChartSeries{d.Premium}, d.Coverage...)
		},
		"sign": func(v float64) string {
			switch {
			case v < 0:
				return "neg"
			case v > 0:
				return "pos"
			}
			return ""
		},
		"signed": func(v float64) string {
			switch {
			case v < 0:
				return "-$" + normalizer.Currency(-v)
			case v > 0:
				return "+$" + normalizer.Currency(v)
			}
			return "$0"
		},
		"markdown": renderMarkdown,
	}
}

// renderMarkdown converts AI prose to HTML. Raw HTML in the input is not passed through.
func renderMarkdown(s string) template.HTML {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(buf.String()) //nolint:gosec // goldmark escapes raw HTML without WithUnsafe
}

type indexView struct {
	Defaults    domain.ManualEntry
	States      []string
	Reference   domain.ReferenceProfile
	MaxUploadMB int64
}

type resultView struct {
	Outcome *service.AnalysisOutcome
}

type errorView struct {
	Code      string
	Message   string
	Reference domain.ReferenceProfile
}

// PageHandler serves the browser form and result pages.
type PageHandler struct {
	analysisService service.AnalysisService
	maxUploadBytes  int64
	analysisTimeout time.Duration
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(analysisService service.AnalysisService, maxUploadBytes int64, analysisTimeout time.Duration) *PageHandler {
	return &PageHandler{analysisService: analysisService, maxUploadBytes: maxUploadBytes, analysisTimeout: analysisTimeout}
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", indexView{
		Defaults:    domain.DefaultManualEntry(),
		States:      reference.States(),
		Reference:   reference.USAverage(),
		MaxUploadMB: h.maxUploadBytes >> 20,
	})
}

// AnalyzeDocument handles POST /analyze/document
func (h *PageHandler) AnalyzeDocument(c *gin.Context) {
	limitBody(c, h.maxUploadBytes)
	input, err := readUpload(c, h.maxUploadBytes)
	if err != nil {
		h.renderError(c, err)
		return
	}
	ctx, cancel := analysisContext(c, h.analysisTimeout)
	defer cancel()
	outcome, err := h.analysisService.AnalyzeDocument(ctx, input)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "result", resultView{Outcome: outcome})
}

// AnalyzeManual handles POST /analyze/manual
func (h *PageHandler) AnalyzeManual(c *gin.Context) {
	outcome, ok := h.analyzeForm(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "result", resultView{Outcome: outcome})
}

// ExportManual handles POST /analyze/manual/export: the same analysis as AnalyzeManual,
// downloaded as a workbook with the comparison and the assessment.
func (h *PageHandler) ExportManual(c *gin.Context) {
	outcome, ok := h.analyzeForm(c)
	if !ok {
		return
	}
	writeExport(c, "xlsx", "policy-analysis", outcome.Comparison, outcome.Result)
}

func (h *PageHandler) analyzeForm(c *gin.Context) (*service.AnalysisOutcome, bool) {
	req := newManualAnalysisRequest()
	// Unchecked checkboxes are not submitted.
	req.RoadsideAssistance = false
	if err := c.ShouldBind(&req); err != nil {
		h.renderError(c, domain.ErrInvalidPolicy)
		return nil, false
	}
	ctx, cancel := analysisContext(c, h.analysisTimeout)
	defer cancel()
	outcome, err := h.analysisService.AnalyzeManualEntry(ctx, req.input())
	if err != nil {
		h.renderError(c, err)
		return nil, false
	}
	return outcome, true
}

func (h *PageHandler) renderError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		middleware.GetLogger(c).Error("page request failed", zap.String("code", code), zap.Error(err))
	}
	c.HTML(status, "error", errorView{Code: code, Message: msg, Reference: reference.USAverage()})
}
