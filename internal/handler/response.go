package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autopolicy/internal/domain"
	"autopolicy/internal/llm"
	"autopolicy/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes, error codes and a
// message that says what failed and what to do next.
func MapDomainError(err error) (status int, code, msg string) {
	var rl *llm.RateLimitError
	switch {
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "MISSING_FILE", "a policy document is required; upload a file or use manual entry"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size; upload a smaller file or use manual entry"
	case errors.Is(err, domain.ErrUnsupported):
		return http.StatusUnprocessableEntity, "UNSUPPORTED_DOCUMENT", "text cannot be read from images yet; upload a PDF or text file, or use manual entry"
	case errors.Is(err, domain.ErrUnreadable):
		return http.StatusUnprocessableEntity, "UNREADABLE_DOCUMENT", "no text could be extracted from the document; try manual entry instead"
	case errors.Is(err, domain.ErrUndecodable):
		return http.StatusUnprocessableEntity, "UNDECODABLE_DOCUMENT", "the file is not valid UTF-8 text; save it as UTF-8 or use manual entry"
	case errors.Is(err, domain.ErrInvalidPolicy):
		return http.StatusBadRequest, "INVALID_POLICY", err.Error()
	case errors.Is(err, domain.ErrUnknownState):
		return http.StatusBadRequest, "UNKNOWN_STATE", "no averages for that state; leave it empty to compare with US averages"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "AI_TIMEOUT", "the AI service took too long to answer; retry in a moment"
	case errors.As(err, &rl):
		return http.StatusServiceUnavailable, "AI_RATE_LIMITED", "the AI service is rate limiting requests; retry in a minute"
	case errors.Is(err, domain.ErrEmptyResponse):
		return http.StatusBadGateway, "AI_EMPTY_RESPONSE", "the AI service returned no analysis; please retry"
	case errors.Is(err, domain.ErrAIService):
		return http.StatusBadGateway, "AI_SERVICE_ERROR", "the AI service could not be reached; check the API key configuration and retry"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	logger := middleware.GetLogger(c)
	if status >= 500 {
		logger.Error("request failed", zap.String("code", code), zap.Error(err))
	} else {
		logger.Info("request rejected", zap.String("code", code), zap.Error(err))
	}
	RespondError(c, status, code, msg)
}
