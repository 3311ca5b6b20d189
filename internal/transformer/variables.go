package transformer

import (
	"strings"
	"time"

	"github.com/jonesrussell/north-cloud/social-publisher/internal/models"
)

const (
	// maxFieldLength is the ceiling applied to extracted text fields.
	maxFieldLength = 300

	// boundaryWindow is the fraction of the budget in which a word
	// boundary must fall for boundary truncation to apply.
	boundaryWindow = 5 // last 1/5th (20%)

	ellipsis = "..."
)

// ExtractVariables maps a source payload into the flat variable set the
// renderer consumes. Unknown or missing fields become empty strings so
// the renderer never has to deal with absent keys. now supplies the
// current_date/current_time values; inject a fixed clock in tests.
func ExtractVariables(src models.SourceContent, sourceKind string, now time.Time) map[string]string {
	vars := map[string]string{
		"title":   clampField(src.Title),
		"content": clampField(src.Content),
		"url":     src.URL,
		"author":  clampField(src.Author),
		"date":    "",

		"current_date": now.Format("January 2, 2006"),
		"current_time": now.Format("3:04 PM"),
	}

	if !src.PublishedDate.IsZero() {
		vars["date"] = src.PublishedDate.Format("January 2, 2006")
	}

	switch sourceKind {
	case models.SourceKindBlogger:
		vars["categories"] = strings.Join(src.Categories, ", ")
		vars["excerpt"] = clampField(src.Excerpt)
	case models.SourceKindAIGenerated:
		vars["seo_suggestions"] = strings.Join(src.SEOSuggestions, ", ")
		vars["social_text"] = clampField(src.SocialText)
		vars["keywords"] = strings.Join(src.Keywords, ", ")
	}

	return vars
}

// MergeOverrides applies caller-supplied variables on top of extracted
// ones. Overrides win; keys are lowercased to match the renderer's
// case-insensitive lookup.
func MergeOverrides(vars map[string]string, overrides map[string]string) map[string]string {
	for k, v := range overrides {
		vars[strings.ToLower(k)] = v
	}
	return vars
}

// clampField truncates a field to maxFieldLength at the nearest
// preceding word boundary, falling back to a hard cut when no boundary
// exists within the last 20% of the budget.
func clampField(s string) string {
	return truncateAtWord(s, maxFieldLength)
}

func truncateAtWord(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	if idx := strings.LastIndexAny(cut, " \t\n"); idx >= limit-limit/boundaryWindow {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " \t\n") + ellipsis
}
