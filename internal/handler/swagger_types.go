package handler

import (
	"autopolicy/internal/domain"
	"autopolicy/internal/service"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// ManualAnalysisRequest is the manual-entry body. Omitted amounts keep the US-average defaults.
type ManualAnalysisRequest struct {
	domain.ManualEntry
	State string `json:"state" form:"state" example:"California"`
}

func newManualAnalysisRequest() ManualAnalysisRequest {
	return ManualAnalysisRequest{ManualEntry: domain.DefaultManualEntry()}
}

func (r *ManualAnalysisRequest) input() *service.ManualEntryInput {
	return &service.ManualEntryInput{Entry: r.ManualEntry, State: r.State}
}

// AnalysisResponseBody is the success envelope of the analysis endpoints.
type AnalysisResponseBody struct {
	Success bool                     `json:"success" example:"true"`
	Data    *service.AnalysisOutcome `json:"data"`
}

// ComparisonResponseBody is the success envelope of POST /comparisons.
type ComparisonResponseBody struct {
	Success bool                        `json:"success" example:"true"`
	Data    *domain.ComparisonChartData `json:"data"`
}

// ReferenceResponseBody is the success envelope of GET /reference.
type ReferenceResponseBody struct {
	Success bool                    `json:"success" example:"true"`
	Data    domain.ReferenceProfile `json:"data"`
}

// StatesResponseBody is the success envelope of GET /reference/states.
type StatesResponseBody struct {
	Success bool     `json:"success" example:"true"`
	Data    []string `json:"data"`
}

// ErrorResponseBody is the error envelope.
type ErrorResponseBody struct {
	Success bool     `json:"success" example:"false"`
	Error   APIError `json:"error"`
}
