package report_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"autopolicy/internal/comparison"
	"autopolicy/internal/domain"
	"autopolicy/internal/reference"
	"autopolicy/internal/report"
)

func sampleData() domain.ComparisonChartData {
	entry := domain.DefaultManualEntry()
	entry.MonthlyPremium = 120
	return comparison.Compare(domain.NewUserPolicy(entry), reference.USAverage())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, report.WriteCSV(&buf, sampleData()))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, report.BOM))
	records, err := csv.NewReader(bytes.NewReader(raw[len(report.BOM):])).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Category", "Item", "Your Policy", "US Average", "Difference"}, records[0])
	// 2 premium + 2 BI + 1 PD + 2 UM + 1 medical
	assert.Len(t, records, 1+8)
	assert.Equal(t, []string{"Premium Comparison", "Monthly Premium", "120.00", "150.00", "-30.00"}, records[1])
	assert.Equal(t, []string{"Medical Payments", "Limit", "1000.00", "1000.00", "0.00"}, records[8])
}

func TestWriteWorkbook(t *testing.T) {
	result := &domain.AssessmentResult{
		OverallScore:    8,
		Recommendations: []string{"Raise limits", "Compare quotes"},
		RiskAssessment:  "Low risk.",
		Source:          domain.SourceStructured,
	}
	var buf bytes.Buffer

	require.NoError(t, report.WriteWorkbook(&buf, sampleData(), result))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{report.ComparisonSheet, report.AssessmentSheet}, f.GetSheetList())

	rows, err := f.GetRows(report.ComparisonSheet)
	require.NoError(t, err)
	assert.Equal(t, "Your Policy", rows[0][2])
	assert.Equal(t, "Annual Premium", rows[2][1])
	assert.Equal(t, "1440", rows[2][2])

	score, err := f.GetCellValue(report.AssessmentSheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "8", score)
	rec, err := f.GetCellValue(report.AssessmentSheet, "B11")
	require.NoError(t, err)
	assert.Equal(t, "Compare quotes", rec)
}

func TestWriteWorkbook_WithoutAssessment(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, report.WriteWorkbook(&buf, sampleData(), nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, []string{report.ComparisonSheet}, f.GetSheetList())
}
