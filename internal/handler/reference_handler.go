package handler

import (
	"github.com/gin-gonic/gin"

	"autopolicy/internal/reference"
)

// ReferenceHandler serves the reference averages.
type ReferenceHandler struct{}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// Get handles GET /api/v1/reference
// @Summary Get reference averages
// @Description Returns US-average policy terms, with state premium averages applied when state is given
// @Tags reference
// @Produce json
// @Param state query string false "State name"
// @Success 200 {object} ReferenceResponseBody "Reference profile"
// @Failure 400 {object} ErrorResponseBody "Unknown state"
// @Router /reference [get]
func (h *ReferenceHandler) Get(c *gin.Context) {
	profile, err := reference.ForState(c.Query("state"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, profile)
}

// States handles GET /api/v1/reference/states
// @Summary List states with premium averages
// @Tags reference
// @Produce json
// @Success 200 {object} StatesResponseBody "State names"
// @Router /reference/states [get]
func (h *ReferenceHandler) States(c *gin.Context) {
	RespondOK(c, reference.States())
}
