package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"autopolicy/internal/service"
)

// AnalysisHandler handles the JSON analysis endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	maxUploadBytes  int64
	analysisTimeout time.Duration
}

// NewAnalysisHandler creates a new AnalysisHandler. analysisTimeout bounds each
// analysis; zero leaves it to the request context.
func NewAnalysisHandler(analysisService service.AnalysisService, maxUploadBytes int64, analysisTimeout time.Duration) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, maxUploadBytes: maxUploadBytes, analysisTimeout: analysisTimeout}
}

// analysisContext derives the pipeline context from the request so the AI calls end
// in time for the response to be written.
func analysisContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

// AnalyzeDocument handles POST /api/v1/analyses/document
// @Summary Analyze an uploaded policy document
// @Description Extracts text from a PDF or text file and asks the AI for an assessment against reference averages
// @Tags analyses
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Policy document (PDF, TXT, DOC, DOCX)"
// @Param state formData string false "State for premium averages (California, Texas, Florida, New York)"
// @Success 200 {object} AnalysisResponseBody "Assessment result"
// @Failure 400 {object} ErrorResponseBody "Missing file or unknown state"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "Document text could not be extracted"
// @Failure 502 {object} ErrorResponseBody "AI service failure"
// @Failure 504 {object} ErrorResponseBody "AI service too slow"
// @Router /analyses/document [post]
func (h *AnalysisHandler) AnalyzeDocument(c *gin.Context) {
	limitBody(c, h.maxUploadBytes)
	input, err := readUpload(c, h.maxUploadBytes)
	if err != nil {
		HandleError(c, err)
		return
	}

	ctx, cancel := analysisContext(c, h.analysisTimeout)
	defer cancel()
	outcome, err := h.analysisService.AnalyzeDocument(ctx, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, outcome)
}

// AnalyzeManual handles POST /api/v1/analyses/manual
// @Summary Analyze manually entered policy values
// @Description Builds the policy from form values (annual premium = monthly * 12), asks the AI for an assessment and returns comparison chart data
// @Tags analyses
// @Accept json
// @Produce json
// @Param request body ManualAnalysisRequest true "Policy values; omitted fields default to US averages"
// @Success 200 {object} AnalysisResponseBody "Assessment result with comparison"
// @Failure 400 {object} ErrorResponseBody "Invalid values"
// @Failure 502 {object} ErrorResponseBody "AI service failure"
// @Failure 504 {object} ErrorResponseBody "AI service too slow"
// @Router /analyses/manual [post]
func (h *AnalysisHandler) AnalyzeManual(c *gin.Context) {
	req := newManualAnalysisRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	ctx, cancel := analysisContext(c, h.analysisTimeout)
	defer cancel()
	outcome, err := h.analysisService.AnalyzeManualEntry(ctx, req.input())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, outcome)
}

// ExportManual handles POST /api/v1/analyses/manual/export
// @Summary Analyze manually entered policy values and download the result
// @Description Runs the manual analysis and returns the comparison with the assessment; xlsx adds an Assessment sheet, csv holds the comparison only
// @Tags analyses
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,text/csv
// @Param format query string false "xlsx (default) or csv"
// @Param request body ManualAnalysisRequest true "Policy values; omitted fields default to US averages"
// @Success 200 {file} file "Analysis export"
// @Failure 400 {object} ErrorResponseBody "Invalid values or format"
// @Failure 502 {object} ErrorResponseBody "AI service failure"
// @Failure 504 {object} ErrorResponseBody "AI service too slow"
// @Router /analyses/manual/export [post]
func (h *AnalysisHandler) ExportManual(c *gin.Context) {
	format, ok := exportFormat(c)
	if !ok {
		return
	}
	req := newManualAnalysisRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	ctx, cancel := analysisContext(c, h.analysisTimeout)
	defer cancel()
	outcome, err := h.analysisService.AnalyzeManualEntry(ctx, req.input())
	if err != nil {
		HandleError(c, err)
		return
	}
	writeExport(c, format, "policy-analysis", outcome.Comparison, outcome.Result)
}
