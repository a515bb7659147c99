package extractor

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"autopolicy/internal/domain"
)

// ResolveMediaType decides how an upload is extracted: the declared MIME type
// first, then the file extension, then content sniffing of head.
func ResolveMediaType(declared, filename string, head []byte) domain.MediaType {
	if mt, ok := fromMIME(declared); ok {
		return mt
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if mt, ok := domain.AllowedExtensions[ext]; ok {
		return mt
	}
	if len(head) > 0 {
		if mt, ok := fromMIME(mimetype.Detect(head).String()); ok {
			return mt
		}
	}
	return domain.MediaTypeText
}

func fromMIME(contentType string) (domain.MediaType, bool) {
	if contentType == "" {
		return "", false
	}
	base, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	switch {
	case base == "application/pdf":
		return domain.MediaTypePDF, true
	case strings.HasPrefix(base, "image/"):
		return domain.MediaTypeImage, true
	case strings.HasPrefix(base, "text/"),
		base == "application/msword",
		base == "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return domain.MediaTypeText, true
	}
	return "", false
}
