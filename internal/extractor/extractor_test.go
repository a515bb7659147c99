package extractor

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"autopolicy/internal/domain"
)

func withMethods(methods ...pdfMethod) *Extractor {
	e := New(zap.NewNop())
	e.pdfMethods = methods
	return e
}

func fixed(name, text string, err error) pdfMethod {
	return pdfMethod{name: name, run: func(_ *bytes.Reader) (string, error) { return text, err }}
}

func TestExtract_ZeroBytePDF(t *testing.T) {
	_, err := New(zap.NewNop()).Extract(context.Background(), []byte{}, domain.MediaTypePDF)

	assert.ErrorIs(t, err, domain.ErrUnreadable)
}

func TestExtract_GarbagePDF(t *testing.T) {
	_, err := New(zap.NewNop()).Extract(context.Background(), []byte("definitely not a pdf"), domain.MediaTypePDF)

	assert.ErrorIs(t, err, domain.ErrUnreadable)
}

func TestExtract_PDFFirstMethodWins(t *testing.T) {
	e := withMethods(
		fixed("first", "  Bodily Injury 100/300  ", nil),
		fixed("second", "unused", nil),
	)

	ext, err := e.Extract(context.Background(), []byte("%PDF-1.4"), domain.MediaTypePDF)

	require.NoError(t, err)
	assert.Equal(t, "Bodily Injury 100/300", ext.Text)
	assert.Equal(t, "first", ext.Method)
}

func TestExtract_PDFFallsBackOnBlank(t *testing.T) {
	e := withMethods(
		fixed("first", " \n\t", nil),
		fixed("second", "Premium $150", nil),
	)

	ext, err := e.Extract(context.Background(), []byte("%PDF-1.4"), domain.MediaTypePDF)

	require.NoError(t, err)
	assert.Equal(t, "Premium $150", ext.Text)
	assert.Equal(t, "second", ext.Method)
}

func TestExtract_PDFFallsBackOnError(t *testing.T) {
	e := withMethods(
		fixed("first", "", errors.New("malformed xref")),
		fixed("second", "Collision $500", nil),
	)

	ext, err := e.Extract(context.Background(), []byte("%PDF-1.4"), domain.MediaTypePDF)

	require.NoError(t, err)
	assert.Equal(t, "second", ext.Method)
}

func TestExtract_PDFFallsBackOnPanic(t *testing.T) {
	e := withMethods(
		pdfMethod{name: "first", run: func(_ *bytes.Reader) (string, error) { panic("bad stream") }},
		fixed("second", "Medical $5,000", nil),
	)

	ext, err := e.Extract(context.Background(), []byte("%PDF-1.4"), domain.MediaTypePDF)

	require.NoError(t, err)
	assert.Equal(t, "Medical $5,000", ext.Text)
}

func TestExtract_PDFEachMethodReadsFromStart(t *testing.T) {
	input := []byte("%PDF-1.4 body")
	var seen [][]byte
	read := func(r *bytes.Reader) (string, error) {
		b, _ := io.ReadAll(r)
		seen = append(seen, b)
		return "", nil
	}
	e := withMethods(pdfMethod{name: "a", run: read}, pdfMethod{name: "b", run: read})

	_, err := e.Extract(context.Background(), input, domain.MediaTypePDF)

	assert.ErrorIs(t, err, domain.ErrUnreadable)
	require.Len(t, seen, 2)
	assert.Equal(t, input, seen[0])
	assert.Equal(t, input, seen[1])
}

func TestExtract_PDFBothMethodsFail(t *testing.T) {
	e := withMethods(fixed("a", "", errors.New("x")), fixed("b", "", nil))

	_, err := e.Extract(context.Background(), []byte("%PDF-1.4"), domain.MediaTypePDF)

	assert.ErrorIs(t, err, domain.ErrUnreadable)
}

func TestExtract_PDFCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := withMethods(fixed("a", "text", nil)).Extract(ctx, []byte("%PDF"), domain.MediaTypePDF)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtract_PlainText(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("\n Liability: 100/300/50 \n")...)

	ext, err := New(zap.NewNop()).Extract(context.Background(), data, domain.MediaTypeText)

	require.NoError(t, err)
	assert.Equal(t, "Liability: 100/300/50", ext.Text)
	assert.Equal(t, MethodPlainText, ext.Method)
}

func TestExtract_InvalidUTF8(t *testing.T) {
	_, err := New(zap.NewNop()).Extract(context.Background(), []byte{0xff, 0xfe, 0xfd}, domain.MediaTypeText)

	assert.ErrorIs(t, err, domain.ErrUndecodable)
}

func TestExtract_BlankText(t *testing.T) {
	_, err := New(zap.NewNop()).Extract(context.Background(), []byte("   \n"), domain.MediaTypeText)

	assert.ErrorIs(t, err, domain.ErrUnreadable)
}

func TestExtract_ImageUnsupported(t *testing.T) {
	_, err := New(zap.NewNop()).Extract(context.Background(), []byte{0x89, 'P', 'N', 'G'}, domain.MediaTypeImage)

	assert.ErrorIs(t, err, domain.ErrUnsupported)
}

func TestExtract_UnknownTypeUsesTextPath(t *testing.T) {
	ext, err := New(zap.NewNop()).Extract(context.Background(), []byte("policy"), domain.MediaType("docx"))

	require.NoError(t, err)
	assert.Equal(t, "policy", ext.Text)
}
