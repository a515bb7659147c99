package domain

import "errors"

// Extraction failures.
var (
	ErrUnreadable  = errors.New("document text could not be extracted")
	ErrUndecodable = errors.New("document is not valid UTF-8 text")
	ErrUnsupported = errors.New("document type is not supported for text extraction")
)

// Assessment failures.
var (
	ErrEmptyResponse = errors.New("empty response from AI")
	ErrNoJSONFound   = errors.New("no JSON structure found in AI response")
	ErrMalformedJSON = errors.New("AI response JSON could not be decoded")
	ErrAIService     = errors.New("AI service call failed")
)

// Request failures.
var (
	ErrMissingFile   = errors.New("policy document is required")
	ErrFileTooLarge  = errors.New("file exceeds maximum allowed size")
	ErrInvalidPolicy = errors.New("policy values are invalid")
	ErrUnknownState  = errors.New("no reference averages for state")
)
