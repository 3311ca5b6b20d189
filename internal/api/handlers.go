package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/logger"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/models"
)

// Transform handles POST /api/v1/transform.
// The pipeline itself never fails; the only error surface here is a
// malformed request body.
func (r *Router) Transform(c *gin.Context) {
	var tc models.TransformationContext
	if err := c.ShouldBindJSON(&tc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if tc.OwnerID == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id is required"})
		return
	}
	if !models.ValidKind(tc.SourceKind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidKind.Error()})
		return
	}

	result := r.transformer.Transform(c.Request.Context(), tc)
	c.JSON(http.StatusOK, result)
}

// ListFilters handles GET /api/v1/filters
func (r *Router) ListFilters(c *gin.Context) {
	list := r.registry.List()
	c.JSON(http.StatusOK, gin.H{
		"filters": list,
		"count":   len(list),
	})
}

// GetStats handles GET /api/v1/stats
func (r *Router) GetStats(c *gin.Context) {
	stats, err := r.stats.GetStats(c.Request.Context())
	if err != nil {
		r.logger.Error("Failed to get stats",
			logger.Error(err),
			logger.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Health handles GET /health
func (r *Router) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "social-publisher",
		"version": serviceVersion,
	})
}
