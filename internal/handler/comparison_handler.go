package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autopolicy/internal/domain"
	"autopolicy/internal/report"
	"autopolicy/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ComparisonHandler serves comparison data without calling the AI.
type ComparisonHandler struct {
	analysisService service.AnalysisService
}

// NewComparisonHandler creates a new ComparisonHandler.
func NewComparisonHandler(analysisService service.AnalysisService) *ComparisonHandler {
	return &ComparisonHandler{analysisService: analysisService}
}

// Compare handles POST /api/v1/comparisons
// @Summary Compare policy values with reference averages
// @Tags comparisons
// @Accept json
// @Produce json
// @Param request body ManualAnalysisRequest true "Policy values"
// @Success 200 {object} ComparisonResponseBody "Chart series"
// @Failure 400 {object} ErrorResponseBody "Invalid values"
// @Router /comparisons [post]
func (h *ComparisonHandler) Compare(c *gin.Context) {
	req := newManualAnalysisRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	chart, err := h.analysisService.CompareManualEntry(req.input())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, chart)
}

// Export handles POST /api/v1/comparisons/export
// @Summary Download the comparison as a workbook or CSV
// @Description xlsx includes one bar chart per series; csv is UTF-8 with BOM
// @Tags comparisons
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,text/csv
// @Param format query string false "xlsx (default) or csv"
// @Param request body ManualAnalysisRequest true "Policy values"
// @Success 200 {file} file "Comparison export"
// @Failure 400 {object} ErrorResponseBody "Invalid values or format"
// @Router /comparisons/export [post]
func (h *ComparisonHandler) Export(c *gin.Context) {
	format, ok := exportFormat(c)
	if !ok {
		return
	}

	req := newManualAnalysisRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	chart, err := h.analysisService.CompareManualEntry(req.input())
	if err != nil {
		HandleError(c, err)
		return
	}
	writeExport(c, format, "policy-comparison", chart, nil)
}

// exportFormat reads ?format (xlsx by default) and rejects anything else.
func exportFormat(c *gin.Context) (string, bool) {
	format := c.DefaultQuery("format", "xlsx")
	if format != "xlsx" && format != "csv" {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be xlsx or csv")
		return "", false
	}
	return format, true
}

// writeExport sends chart, and result when given, as an attachment named base.format.
func writeExport(c *gin.Context, format, base string, chart *domain.ComparisonChartData, result *domain.AssessmentResult) {
	if chart == nil {
		HandleError(c, errors.New("no comparison data to export"))
		return
	}

	var buf bytes.Buffer
	var err error
	contentType := xlsxContentType
	if format == "csv" {
		contentType = "text/csv; charset=utf-8"
		err = report.WriteCSV(&buf, *chart)
	} else {
		err = report.WriteWorkbook(&buf, *chart, result)
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+base+"."+format+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
