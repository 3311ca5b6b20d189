package models

import (
	"time"

	"github.com/google/uuid"
)

// SourceContent is the tagged source payload a transformation starts
// from. Which fields are populated depends on the source kind: blog
// posts carry categories and an excerpt, AI drafts carry SEO
// suggestions and social text, manual input carries only the basics.
type SourceContent struct {
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	URL           string    `json:"url"`
	Author        string    `json:"author"`
	PublishedDate time.Time `json:"published_date"`

	// Blog-sourced fields
	Categories []string `json:"categories,omitempty"`
	Excerpt    string   `json:"excerpt,omitempty"`

	// AI-generated fields
	SEOSuggestions []string `json:"seo_suggestions,omitempty"`
	SocialText     string   `json:"social_text,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	Images         []string `json:"images,omitempty"`
}

// TransformationContext carries everything one transform call needs.
type TransformationContext struct {
	OwnerID    uuid.UUID         `json:"owner_id"`
	Platform   string            `json:"platform"`
	SourceKind string            `json:"source_kind"`
	Source     SourceContent     `json:"source"`
	Overrides  map[string]string `json:"variables,omitempty"` // highest precedence
}

// ResultMetadata records the provenance of a transformation result.
type ResultMetadata struct {
	TemplateID            *uuid.UUID `json:"template_id,omitempty"`
	TemplateName          string     `json:"template_name,omitempty"`
	DefaultTransformation bool       `json:"default_transformation"`
	VariablesUsed         []string   `json:"variables_used"`
}

// TransformationResult is the platform-ready output of a transform call.
type TransformationResult struct {
	Content  string         `json:"content"`
	Hashtags []string       `json:"hashtags"`
	Images   []string       `json:"images"`
	Metadata ResultMetadata `json:"metadata"`
}
