package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"autopolicy/internal/domain"
	"autopolicy/internal/extractor"
	"autopolicy/internal/service"
)

// sniffLen is how much of an upload is inspected for content sniffing.
const sniffLen = 512

// readUpload reads the multipart "file" field into a DocumentInput, enforcing maxBytes.
func readUpload(c *gin.Context, maxBytes int64) (*service.DocumentInput, error) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, domain.ErrMissingFile
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domain.ErrFileTooLarge
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrMissingFile, err)
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	return &service.DocumentInput{
		Data:      data,
		MediaType: extractor.ResolveMediaType(header.Header.Get("Content-Type"), header.Filename, head),
		FileName:  header.Filename,
		State:     c.PostForm("state"),
	}, nil
}

// limitBody caps the request body slightly above the file limit to leave room for
// multipart framing and form fields.
func limitBody(c *gin.Context, maxBytes int64) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+1<<20)
}
