package handler

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	provider string
	draining atomic.Bool
}

// NewHealthHandler creates a new HealthHandler for a server using the named AI provider.
func NewHealthHandler(provider string) *HealthHandler {
	return &HealthHandler{provider: provider}
}

// SetDraining marks the server as shutting down; readiness fails from then on so load
// balancers stop sending new analyses while in-flight ones finish.
func (h *HealthHandler) SetDraining() {
	h.draining.Store(true)
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.draining.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "draining"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "llm_provider": h.provider})
}
