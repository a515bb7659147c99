package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"autopolicy/internal/domain"
)

// Sheet names.
const (
	ComparisonSheet = "Comparison"
	AssessmentSheet = "Assessment"
)

// chartRowSpan is the vertical space reserved for each chart.
const chartRowSpan = 16

// WriteWorkbook writes an .xlsx with the comparison table, one clustered bar chart per
// series and, when result is non-nil, an assessment sheet.
func WriteWorkbook(w io.Writer, data domain.ComparisonChartData, result *domain.AssessmentResult) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", ComparisonSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if err := writeComparison(f, data); err != nil {
		return err
	}
	if result != nil {
		if err := writeAssessment(f, result); err != nil {
			return err
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeComparison(f *excelize.File, data domain.ComparisonChartData) error {
	header := []interface{}{columns[0], columns[1], labelOr(data.UserLabel, columns[2]), labelOr(data.ReferenceLabel, columns[3]), columns[4]}
	if err := f.SetSheetRow(ComparisonSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := 2
	for i, series := range allSeries(data) {
		first := row
		for _, p := range series.Points {
			values := []interface{}{series.Title, p.Label, p.User, p.Reference, p.Difference()}
			if err := f.SetSheetRow(ComparisonSheet, "A"+strconv.Itoa(row), &values); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
			row++
		}
		if len(series.Points) == 0 {
			continue
		}
		anchor := "G" + strconv.Itoa(1+i*chartRowSpan)
		if err := f.AddChart(ComparisonSheet, anchor, seriesChart(series.Title, first, row-1)); err != nil {
			return fmt.Errorf("adding chart %q: %w", series.Title, err)
		}
	}
	return f.SetColWidth(ComparisonSheet, "A", "B", 26)
}

// seriesChart plots user and reference columns for rows first..last.
func seriesChart(title string, first, last int) *excelize.Chart {
	ref := func(col string) string {
		return fmt.Sprintf("%s!$%s$%d:$%s$%d", ComparisonSheet, col, first, col, last)
	}
	return &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{Name: ComparisonSheet + "!$C$1", Categories: ref("B"), Values: ref("C")},
			{Name: ComparisonSheet + "!$D$1", Categories: ref("B"), Values: ref("D")},
		},
		Title:     []excelize.RichTextRun{{Text: title}},
		Legend:    excelize.ChartLegend{Position: "bottom"},
		PlotArea:  excelize.ChartPlotArea{ShowVal: true},
		Dimension: excelize.ChartDimension{Width: 480, Height: 290},
	}
}

func writeAssessment(f *excelize.File, r *domain.AssessmentResult) error {
	if _, err := f.NewSheet(AssessmentSheet); err != nil {
		return fmt.Errorf("creating assessment sheet: %w", err)
	}
	rows := [][]interface{}{
		{"Field", "Value"},
		{"Source", string(r.Source)},
		{"Overall Score", r.OverallScore},
		{"Coverage Adequacy", r.PolicyAnalysis.CoverageAdequacy},
		{"Cost Effectiveness", r.PolicyAnalysis.CostEffectiveness},
		{"Risk Level", r.PolicyAnalysis.RiskLevel},
		{"Liability Adequacy", r.Comparison.LiabilityAdequacy},
		{"Deductible Analysis", r.Comparison.DeductibleAnalysis},
		{"Premium Analysis", r.Comparison.PremiumAnalysis},
	}
	for i, rec := range r.Recommendations {
		rows = append(rows, []interface{}{fmt.Sprintf("Recommendation %d", i+1), rec})
	}
	rows = append(rows, []interface{}{"Risk Assessment", r.RiskAssessment})

	for i := range rows {
		if err := f.SetSheetRow(AssessmentSheet, "A"+strconv.Itoa(i+1), &rows[i]); err != nil {
			return fmt.Errorf("writing assessment row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(AssessmentSheet, "A", "A", 22); err != nil {
		return err
	}
	return f.SetColWidth(AssessmentSheet, "B", "B", 90)
}
