package domain

// MediaType is the caller-declared kind of an uploaded policy document.
type MediaType string

const (
	MediaTypePDF   MediaType = "pdf"
	MediaTypeText  MediaType = "text"
	MediaTypeImage MediaType = "image"
)

// AllowedExtensions maps upload file extensions (without dot) to the media type
// the extractor treats them as. doc/docx go down the plain-text path.
var AllowedExtensions = map[string]MediaType{
	"pdf":  MediaTypePDF,
	"txt":  MediaTypeText,
	"doc":  MediaTypeText,
	"docx": MediaTypeText,
	"png":  MediaTypeImage,
	"jpg":  MediaTypeImage,
	"jpeg": MediaTypeImage,
}

// ResultSource tells a well-formed assessment apart from a degraded one.
type ResultSource string

const (
	// SourceStructured marks a result parsed from the AI's JSON reply.
	SourceStructured ResultSource = "structured"
	// SourceDegraded marks a result built by the prose fallback with placeholder fields.
	SourceDegraded ResultSource = "degraded"
)

// InputMode identifies how the policy reached the pipeline.
type InputMode string

const (
	InputDocument InputMode = "document"
	InputManual   InputMode = "manual"
)
