// Package report exports comparison data as CSV or as an Excel workbook with charts.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"autopolicy/internal/domain"
)

// BOM is the UTF-8 byte order mark written first so Excel on Windows detects UTF-8.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var columns = []string{"Category", "Item", "Your Policy", "US Average", "Difference"}

// WriteCSV writes one row per comparison point, preceded by the BOM and a header.
func WriteCSV(w io.Writer, data domain.ComparisonChartData) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	header := append([]string(nil), columns...)
	header[2], header[3] = labelOr(data.UserLabel, header[2]), labelOr(data.ReferenceLabel, header[3])
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, series := range allSeries(data) {
		for _, p := range series.Points {
			row := []string{series.Title, p.Label, formatAmount(p.User), formatAmount(p.Reference), formatAmount(p.Difference())}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func allSeries(data domain.ComparisonChartData) []domain.ChartSeries {
	return append([]domain.ChartSeries{data.Premium}, data.Coverage...)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
