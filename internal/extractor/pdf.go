package extractor

import (
	"bytes"
	"math"
	"sort"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
	rscpdf "rsc.io/pdf"
)

// layoutText rebuilds each page row by row, top to bottom, left to right.
func layoutText(r *bytes.Reader) (string, error) {
	doc, err := lpdf.NewReader(r, r.Size())
	if err != nil {
		return "", err
	}

	pages := make([]string, 0, doc.NumPage())
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", err
		}
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			words := row.Content
			sort.SliceStable(words, func(a, b int) bool { return words[a].X < words[b].X })
			parts := make([]string, 0, len(words))
			for _, w := range words {
				if s := strings.TrimSpace(w.S); s != "" {
					parts = append(parts, s)
				}
			}
			if len(parts) > 0 {
				lines = append(lines, strings.Join(parts, " "))
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return strings.Join(pages, "\n"), nil
}

// lineTolerance is how far glyph baselines may drift and still share a line.
const lineTolerance = 2.0

// wordGap is the horizontal gap, as a fraction of the font size, between the end of
// one glyph and the start of the next that counts as a space. Space glyphs are not
// reported by the content reader, only the advance they leave behind.
const wordGap = 0.15

// simpleText concatenates the glyphs of each page in content-stream order, breaking
// lines on baseline changes and inserting spaces at horizontal gaps.
func simpleText(r *bytes.Reader) (string, error) {
	doc, err := rscpdf.NewReader(r, r.Size())
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		var prev rscpdf.Text
		started := false
		for _, t := range page.Content().Text {
			if started {
				switch {
				case math.Abs(t.Y-prev.Y) > lineTolerance:
					sb.WriteByte('\n')
				case t.X-(prev.X+prev.W) > wordGap*t.FontSize:
					sb.WriteByte(' ')
				}
			}
			sb.WriteString(t.S)
			prev = t
			started = true
		}
	}
	return sb.String(), nil
}
