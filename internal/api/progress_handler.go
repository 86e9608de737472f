package api

import (
	"net/http"

	"alcyxob/deskbreak/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgressHandler holds the progress service dependency.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// GetProgress returns the daily/weekly/monthly dashboard payload. The domain
// progress types already carry JSON tags, so no extra DTO layer is needed.
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	data, err := h.progressService.GetProgress(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute progress.")
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetInsights returns the human-readable progress observations.
func (h *ProgressHandler) GetInsights(c *gin.Context) {
	insights, err := h.progressService.GetInsights(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute insights.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}
