package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Source kinds a template can target.
const (
	SourceKindBlogger     = "blogger"
	SourceKindAIGenerated = "ai-generated"
	SourceKindManual      = "manual"
)

// PlatformAll is the wildcard platform scope. A template with this
// platform matches any target platform absent a more specific match.
const PlatformAll = "all"

// FilterSentinel is the declared-variable name that enables the filter
// pipeline for a template. The filter list itself comes from the
// rendered "filters" variable value.
const FilterSentinel = "filters"

// ContentTemplate represents a user-authored content template.
// (owner_id, kind, platform) is not unique; selection breaks ties by
// picking the most recently created active template.
type ContentTemplate struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	OwnerID   uuid.UUID      `json:"owner_id" db:"owner_id"`
	Name      string         `json:"name" db:"name"`
	Kind      string         `json:"kind" db:"kind"`
	Platform  string         `json:"platform" db:"platform"` // specific platform or "all"
	Body      string         `json:"body" db:"body"`
	Variables pq.StringArray `json:"variables" db:"variables"` // declared variable names
	Active    bool           `json:"active" db:"active"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}

// DeclaresFilters reports whether the template opts into the filter
// pipeline via the "filters" declared variable.
func (t *ContentTemplate) DeclaresFilters() bool {
	for _, v := range t.Variables {
		if v == FilterSentinel {
			return true
		}
	}
	return false
}

// TemplateCreateRequest represents the request payload for creating a template
type TemplateCreateRequest struct {
	OwnerID   uuid.UUID `json:"owner_id" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	Kind      string    `json:"kind" binding:"required"`
	Platform  string    `json:"platform"` // defaults to "all"
	Body      string    `json:"body" binding:"required"`
	Variables []string  `json:"variables"`
	Active    *bool     `json:"active"` // defaults to true
}

// TemplateUpdateRequest represents the request payload for updating a template
type TemplateUpdateRequest struct {
	Name      *string  `json:"name"`
	Platform  *string  `json:"platform"`
	Body      *string  `json:"body"`
	Variables []string `json:"variables"`
	Active    *bool    `json:"active"`
}

// ValidKind reports whether kind is a known source kind.
func ValidKind(kind string) bool {
	switch kind {
	case SourceKindBlogger, SourceKindAIGenerated, SourceKindManual:
		return true
	}
	return false
}

// Validate validates the template create request
func (r *TemplateCreateRequest) Validate() error {
	if !ValidKind(r.Kind) {
		return ErrInvalidKind
	}
	return nil
}

// Validate validates the template update request
func (r *TemplateUpdateRequest) Validate() error {
	if r.Name == nil && r.Platform == nil && r.Body == nil && r.Variables == nil && r.Active == nil {
		return ErrNoFieldsToUpdate
	}
	return nil
}
