package transformer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/models"
)

// TemplateStore is the read capability the engine consumes. Results
// are ordered newest-first; an empty platform means wildcard-only.
type TemplateStore interface {
	FindActiveTemplates(ctx context.Context, ownerID uuid.UUID, kind, platform string) ([]models.ContentTemplate, error)
}

// SelectTemplate picks the best-matching active template for an owner,
// source kind and platform. Two tiers, in a fixed order template
// authors rely on:
//
//  1. exact platform match or wildcard, newest first
//  2. wildcard only, newest first
//
// Returns nil when nothing matches, which sends the orchestrator down
// the default path.
func SelectTemplate(ctx context.Context, store TemplateStore, ownerID uuid.UUID, kind, platform string) (*models.ContentTemplate, error) {
	if platform != "" && platform != models.PlatformAll {
		templates, err := store.FindActiveTemplates(ctx, ownerID, kind, platform)
		if err != nil {
			return nil, fmt.Errorf("find templates for platform %q: %w", platform, err)
		}
		if len(templates) > 0 {
			return &templates[0], nil
		}
	}

	templates, err := store.FindActiveTemplates(ctx, ownerID, kind, "")
	if err != nil {
		return nil, fmt.Errorf("find wildcard templates: %w", err)
	}
	if len(templates) > 0 {
		return &templates[0], nil
	}
	return nil, nil
}
