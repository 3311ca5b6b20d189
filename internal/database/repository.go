package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/models"
	"github.com/lib/pq"
)

const templateColumns = "id, owner_id, name, kind, platform, body, variables, active, created_at, updated_at"

// Repository provides database operations for content templates
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new repository instance
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Ping verifies the database connection
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// CreateTemplate creates a new content template
func (r *Repository) CreateTemplate(ctx context.Context, req *models.TemplateCreateRequest) (*models.ContentTemplate, error) {
	tmpl := &models.ContentTemplate{
		ID:        uuid.New(),
		OwnerID:   req.OwnerID,
		Name:      req.Name,
		Kind:      req.Kind,
		Platform:  req.Platform,
		Body:      req.Body,
		Variables: pq.StringArray(req.Variables),
		Active:    true, // Default to true
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if tmpl.Platform == "" {
		tmpl.Platform = models.PlatformAll
	}
	if req.Active != nil {
		tmpl.Active = *req.Active
	}

	query := `
		INSERT INTO content_templates (id, owner_id, name, kind, platform, body, variables, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + templateColumns

	err := r.db.QueryRowxContext(
		ctx, query,
		tmpl.ID, tmpl.OwnerID, tmpl.Name, tmpl.Kind, tmpl.Platform,
		tmpl.Body, tmpl.Variables, tmpl.Active, tmpl.CreatedAt, tmpl.UpdatedAt,
	).StructScan(tmpl)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return nil, models.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	return tmpl, nil
}

// GetTemplateByID retrieves a template by ID
func (r *Repository) GetTemplateByID(ctx context.Context, id uuid.UUID) (*models.ContentTemplate, error) {
	tmpl := &models.ContentTemplate{}
	query := `SELECT ` + templateColumns + ` FROM content_templates WHERE id = $1`

	err := r.db.GetContext(ctx, tmpl, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	return tmpl, nil
}

// ListTemplates retrieves all templates for an owner, newest first
func (r *Repository) ListTemplates(ctx context.Context, ownerID uuid.UUID) ([]models.ContentTemplate, error) {
	templates := []models.ContentTemplate{}
	query := `
		SELECT ` + templateColumns + `
		FROM content_templates
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &templates, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	return templates, nil
}

// FindActiveTemplates retrieves active templates matching an owner,
// kind and platform, newest first with platform-specific matches ahead
// of wildcard ones. An empty platform queries wildcard templates only.
// Selection relies on this ordering: the head of the result is the
// template that wins.
func (r *Repository) FindActiveTemplates(ctx context.Context, ownerID uuid.UUID, kind, platform string) ([]models.ContentTemplate, error) {
	templates := []models.ContentTemplate{}

	if platform == "" {
		query := `
			SELECT ` + templateColumns + `
			FROM content_templates
			WHERE owner_id = $1 AND kind = $2 AND platform = 'all' AND active = true
			ORDER BY created_at DESC`
		if err := r.db.SelectContext(ctx, &templates, query, ownerID, kind); err != nil {
			return nil, fmt.Errorf("failed to find wildcard templates: %w", err)
		}
		return templates, nil
	}

	query := `
		SELECT ` + templateColumns + `
		FROM content_templates
		WHERE owner_id = $1 AND kind = $2 AND (platform = $3 OR platform = 'all') AND active = true
		ORDER BY (platform = $3) DESC, created_at DESC`
	if err := r.db.SelectContext(ctx, &templates, query, ownerID, kind, platform); err != nil {
		return nil, fmt.Errorf("failed to find templates: %w", err)
	}

	return templates, nil
}

// UpdateTemplate updates a template's mutable fields
func (r *Repository) UpdateTemplate(ctx context.Context, id uuid.UUID, req *models.TemplateUpdateRequest) (*models.ContentTemplate, error) {
	tmpl, err := r.GetTemplateByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tmpl.Name = *req.Name
	}
	if req.Platform != nil {
		tmpl.Platform = *req.Platform
	}
	if req.Body != nil {
		tmpl.Body = *req.Body
	}
	if req.Variables != nil {
		tmpl.Variables = pq.StringArray(req.Variables)
	}
	if req.Active != nil {
		tmpl.Active = *req.Active
	}
	tmpl.UpdatedAt = time.Now()

	query := `
		UPDATE content_templates
		SET name = $2, platform = $3, body = $4, variables = $5, active = $6, updated_at = $7
		WHERE id = $1
		RETURNING ` + templateColumns

	err = r.db.QueryRowxContext(
		ctx, query,
		tmpl.ID, tmpl.Name, tmpl.Platform, tmpl.Body, tmpl.Variables, tmpl.Active, tmpl.UpdatedAt,
	).StructScan(tmpl)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	return tmpl, nil
}

// DeleteTemplate deletes a template by ID
func (r *Repository) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM content_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if rows == 0 {
		return models.ErrNotFound
	}

	return nil
}
