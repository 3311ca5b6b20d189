package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/logger"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/models"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/transformer"
)

// CreateTemplate handles POST /api/v1/templates
func (r *Router) CreateTemplate(c *gin.Context) {
	var req models.TemplateCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		handleValidationError(c, err)
		return
	}
	// Nested blocks would mis-render; reject them when the template is
	// saved rather than surprising the author at publish time.
	if err := transformer.ValidateBody(req.Body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template body: " + err.Error()})
		return
	}

	tmpl, err := r.repo.CreateTemplate(c.Request.Context(), &req)
	if err != nil {
		r.logger.Error("Failed to create template", logger.Error(err))
		handleRepositoryError(c, err, "template", "create")
		return
	}

	c.JSON(http.StatusCreated, tmpl)
}

// GetTemplate handles GET /api/v1/templates/:id
func (r *Router) GetTemplate(c *gin.Context) {
	id, ok := parseUUID(c, "id", "template")
	if !ok {
		return
	}

	tmpl, err := r.repo.GetTemplateByID(c.Request.Context(), id)
	if err != nil {
		handleRepositoryError(c, err, "template", "get")
		return
	}

	c.JSON(http.StatusOK, tmpl)
}

// ListTemplates handles GET /api/v1/templates?owner_id=...
func (r *Router) ListTemplates(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Query("owner_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing owner_id"})
		return
	}

	templates, err := r.repo.ListTemplates(c.Request.Context(), ownerID)
	if err != nil {
		r.logger.Error("Failed to list templates",
			logger.Error(err),
			logger.String("owner_id", ownerID.String()),
		)
		handleRepositoryError(c, err, "template", "list")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"templates": templates,
		"count":     len(templates),
	})
}

// UpdateTemplate handles PUT /api/v1/templates/:id
func (r *Router) UpdateTemplate(c *gin.Context) {
	id, ok := parseUUID(c, "id", "template")
	if !ok {
		return
	}

	var req models.TemplateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		handleValidationError(c, err)
		return
	}
	if req.Body != nil {
		if err := transformer.ValidateBody(*req.Body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template body: " + err.Error()})
			return
		}
	}

	tmpl, err := r.repo.UpdateTemplate(c.Request.Context(), id, &req)
	if err != nil {
		handleRepositoryError(c, err, "template", "update")
		return
	}

	c.JSON(http.StatusOK, tmpl)
}

// DeleteTemplate handles DELETE /api/v1/templates/:id
func (r *Router) DeleteTemplate(c *gin.Context) {
	id, ok := parseUUID(c, "id", "template")
	if !ok {
		return
	}

	if err := r.repo.DeleteTemplate(c.Request.Context(), id); err != nil {
		handleRepositoryError(c, err, "template", "delete")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "template deleted"})
}
