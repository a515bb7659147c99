// Package extractor turns uploaded policy documents into plain text.
package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"autopolicy/internal/domain"
	"autopolicy/internal/metrics"
)

// Extraction is the text recovered from a document and the method that produced it.
type Extraction struct {
	Text   string
	Method string
}

// Method names reported in Extraction.Method.
const (
	MethodPDFLayout = "pdf-layout"
	MethodPDFSimple = "pdf-simple"
	MethodPlainText = "plain-text"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// pdfMethod reads text from a PDF held in memory.
type pdfMethod struct {
	name string
	run  func(r *bytes.Reader) (string, error)
}

// Extractor runs the PDF method chain or plain-text decoding.
type Extractor struct {
	pdfMethods []pdfMethod
	logger     *zap.Logger
}

// New returns an Extractor using the layout-preserving PDF method first and the
// simple page-by-page method as fallback.
func New(logger *zap.Logger) *Extractor {
	return &Extractor{
		pdfMethods: []pdfMethod{
			{name: MethodPDFLayout, run: layoutText},
			{name: MethodPDFSimple, run: simpleText},
		},
		logger: logger,
	}
}

// Extract returns the trimmed, non-empty text of data interpreted as mediaType.
func (e *Extractor) Extract(ctx context.Context, data []byte, mediaType domain.MediaType) (*Extraction, error) {
	var (
		ext *Extraction
		err error
	)
	switch mediaType {
	case domain.MediaTypePDF:
		ext, err = e.extractPDF(ctx, data)
	case domain.MediaTypeImage:
		err = fmt.Errorf("%w: image text recognition is not available", domain.ErrUnsupported)
	default:
		ext, err = extractPlainText(data)
	}
	if err != nil {
		return nil, err
	}
	metrics.ExtractionsTotal.WithLabelValues(string(mediaType), ext.Method).Inc()
	return ext, nil
}

func (e *Extractor) extractPDF(ctx context.Context, data []byte) (*Extraction, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty pdf", domain.ErrUnreadable)
	}

	for _, m := range e.pdfMethods {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := runSafely(m, data)
		if err != nil {
			e.logger.Warn("pdf extraction method failed",
				zap.String("method", m.name), zap.Error(err))
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			e.logger.Warn("pdf extraction method returned no text", zap.String("method", m.name))
			continue
		}
		return &Extraction{Text: text, Method: m.name}, nil
	}
	return nil, fmt.Errorf("%w: no text could be extracted from the pdf", domain.ErrUnreadable)
}

// runSafely gives each method a fresh reader over the untouched input and turns
// parser panics into errors.
func runSafely(m pdfMethod, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("panic: %v", r)
		}
	}()
	return m.run(bytes.NewReader(data))
}

func extractPlainText(data []byte) (*Extraction, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: text is not valid UTF-8", domain.ErrUndecodable)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, fmt.Errorf("%w: text document is empty", domain.ErrUnreadable)
	}
	return &Extraction{Text: text, Method: MethodPlainText}, nil
}
