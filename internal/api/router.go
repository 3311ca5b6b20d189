// Package api exposes the transformation engine and template CRUD over
// HTTP.
package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/filters"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/logger"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/metrics"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/models"
)

const serviceVersion = "1.0.0"

// TemplateRepository is the template store surface the API needs.
type TemplateRepository interface {
	CreateTemplate(ctx context.Context, req *models.TemplateCreateRequest) (*models.ContentTemplate, error)
	GetTemplateByID(ctx context.Context, id uuid.UUID) (*models.ContentTemplate, error)
	ListTemplates(ctx context.Context, ownerID uuid.UUID) ([]models.ContentTemplate, error)
	UpdateTemplate(ctx context.Context, id uuid.UUID, req *models.TemplateUpdateRequest) (*models.ContentTemplate, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
}

// Transformer runs the content transformation pipeline.
type Transformer interface {
	Transform(ctx context.Context, tc models.TransformationContext) models.TransformationResult
}

// StatsProvider reads back transformation counters.
type StatsProvider interface {
	GetStats(ctx context.Context) (*metrics.Stats, error)
}

// Router holds the API dependencies
type Router struct {
	repo        TemplateRepository
	transformer Transformer
	stats       StatsProvider
	registry    *filters.Registry
	logger      logger.Logger
}

// NewRouter creates a new API router
func NewRouter(repo TemplateRepository, transformer Transformer, stats StatsProvider, registry *filters.Registry, log logger.Logger) *Router {
	return &Router{
		repo:        repo,
		transformer: transformer,
		stats:       stats,
		registry:    registry,
		logger:      log,
	}
}

// SetupRoutes configures the gin engine with all API routes
func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.Default()
	router.Use(corsMiddleware())

	router.GET("/health", r.Health)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/transform", r.Transform)
		v1.GET("/filters", r.ListFilters)
		v1.GET("/stats", r.GetStats)

		templates := v1.Group("/templates")
		{
			templates.POST("", r.CreateTemplate)
			templates.GET("", r.ListTemplates)
			templates.GET("/:id", r.GetTemplate)
			templates.PUT("/:id", r.UpdateTemplate)
			templates.DELETE("/:id", r.DeleteTemplate)
		}
	}

	return router
}
