// Package transformer implements the content transformation and
// templating engine: template selection, variable extraction,
// rendering, the filter pipeline, platform length adaptation and
// hashtag/image derivation.
package transformer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonesrussell/north-cloud/social-publisher/internal/filters"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/logger"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/models"
)

// Recorder counts transformation outcomes. Implementations must be
// safe for concurrent use; failures are the recorder's problem, not
// the transform call's.
type Recorder interface {
	RecordTransformation(ctx context.Context, platform string, defaultPath bool)
}

type nopRecorder struct{}

func (nopRecorder) RecordTransformation(context.Context, string, bool) {}

// Service orchestrates the transformation pipeline. All dependencies
// are explicit so tests can inject an isolated filter registry and a
// fixed clock.
type Service struct {
	store   TemplateStore
	filters *filters.Registry
	clock   func() time.Time
	logger  logger.Logger
	metrics Recorder
}

// Deps contains the collaborators a Service needs. Clock and Metrics
// are optional and default to time.Now and a no-op recorder.
type Deps struct {
	Store    TemplateStore
	Registry *filters.Registry
	Logger   logger.Logger
	Clock    func() time.Time
	Metrics  Recorder
}

// NewService creates a transformation service.
func NewService(deps Deps) *Service {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Metrics == nil {
		deps.Metrics = nopRecorder{}
	}
	if deps.Registry == nil {
		deps.Registry = filters.NewRegistry()
	}
	return &Service{
		store:   deps.Store,
		filters: deps.Registry,
		clock:   deps.Clock,
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}
}

// Transform runs the full pipeline for one context. It never returns
// an error: selection failures, rendering anomalies and anything
// unexpected degrade to the default (template-less) path so a broken
// template can never block a post from being composed. Every
// degradation is logged so silent fallback stays diagnosable.
func (s *Service) Transform(ctx context.Context, tc models.TransformationContext) models.TransformationResult {
	// Hashtags and images are independent of the rendering path and
	// are carried on default-path results too.
	result := models.TransformationResult{
		Hashtags: DeriveHashtags(tc.Source, tc.SourceKind),
		Images:   DeriveImages(tc.Source, tc.SourceKind),
	}

	vars := MergeOverrides(ExtractVariables(tc.Source, tc.SourceKind, s.clock()), tc.Overrides)

	content, meta := s.renderContent(ctx, tc, vars)
	result.Content = content
	result.Metadata = meta

	s.metrics.RecordTransformation(ctx, tc.Platform, meta.DefaultTransformation)
	return result
}

// renderContent produces the platform-adapted text, falling back to
// the default path on any failure.
func (s *Service) renderContent(ctx context.Context, tc models.TransformationContext, vars map[string]string) (content string, meta models.ResultMetadata) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Transformation pipeline panicked, using default content",
				logger.String("owner_id", tc.OwnerID.String()),
				logger.String("platform", tc.Platform),
				logger.NamedError("panic", fmt.Errorf("%v", r)),
			)
			content, meta = s.defaultContent(tc, vars)
		}
	}()

	tmpl, err := SelectTemplate(ctx, s.store, tc.OwnerID, tc.SourceKind, tc.Platform)
	if err != nil {
		s.logger.Warn("Template selection failed, using default content",
			logger.String("owner_id", tc.OwnerID.String()),
			logger.String("source_kind", tc.SourceKind),
			logger.String("platform", tc.Platform),
			logger.Error(err),
		)
		return s.defaultContent(tc, vars)
	}
	if tmpl == nil {
		return s.defaultContent(tc, vars)
	}

	rendered := Render(tmpl.Body, vars)
	if tmpl.DeclaresFilters() {
		rendered = s.filters.Apply(rendered, vars[models.FilterSentinel])
	}

	meta = models.ResultMetadata{
		TemplateID:    &tmpl.ID,
		TemplateName:  tmpl.Name,
		VariablesUsed: usedVariables(tmpl.Body, vars),
	}
	return AdaptForPlatform(rendered, tc.Platform), meta
}

// defaultContent builds the template-less fallback: a title line, the
// content, then a read-more line, adapted for the target platform.
func (s *Service) defaultContent(tc models.TransformationContext, vars map[string]string) (string, models.ResultMetadata) {
	var lines []string
	var used []string
	if vars["title"] != "" {
		lines = append(lines, vars["title"])
		used = append(used, "title")
	}
	if vars["content"] != "" {
		lines = append(lines, vars["content"])
		used = append(used, "content")
	}
	if vars["url"] != "" {
		lines = append(lines, "Read more: "+vars["url"])
		used = append(used, "url")
	}

	meta := models.ResultMetadata{
		DefaultTransformation: true,
		VariablesUsed:         used,
	}
	return AdaptForPlatform(strings.Join(lines, "\n"), tc.Platform), meta
}

// usedVariables lists the variable names a template body references
// that carried a value for this call.
func usedVariables(body string, vars map[string]string) []string {
	var used []string
	for _, name := range ReferencedVariables(body) {
		if _, ok := vars[name]; ok {
			used = append(used, name)
		}
	}
	return used
}
