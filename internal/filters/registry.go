// Package filters provides the named text-transform registry applied to
// rendered content. Filters are pure string functions; the registry is
// append-only: registrations add new names but never mutate or remove
// existing ones, so concurrent reads during rendering are safe.
package filters

import (
	"strings"
	"sync"
)

// Options carries optional per-invocation settings for a filter.
type Options struct {
	Length int // truncate: maximum output length
}

// Filter is a named, pure text transformation.
type Filter struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Apply       func(text string, opts *Options) string `json:"-"`
}

// Registry holds named filters. Construct one per process with
// NewRegistry and pass it to the transformer; tests can build isolated
// registries without cross-test pollution.
type Registry struct {
	mu      sync.RWMutex
	filters map[string]Filter
	order   []string // registration order, for stable listing
}

// NewRegistry creates a registry seeded with the built-in filters.
func NewRegistry() *Registry {
	r := &Registry{filters: make(map[string]Filter)}
	for _, f := range builtins() {
		r.Register(f)
	}
	return r
}

// Register adds a filter to the registry. Registering an existing name
// replaces its entry but keeps its position in the listing order.
func (r *Registry) Register(f Filter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.filters[f.Name]; !exists {
		r.order = append(r.order, f.Name)
	}
	r.filters[f.Name] = f
}

// Get returns the named filter, if registered.
func (r *Registry) Get(name string) (Filter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.filters[name]
	return f, ok
}

// List returns all registered filters in registration order.
func (r *Registry) List() []Filter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Filter, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.filters[name])
	}
	return out
}

// Apply runs a comma-separated filter list over text, left to right.
// Unknown filter names are skipped rather than failing the pipeline: a
// typo in a template must not block a post from being composed.
func (r *Registry) Apply(text, namesCSV string) string {
	for _, name := range strings.Split(namesCSV, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, ok := r.Get(name)
		if !ok {
			continue
		}
		text = f.Apply(text, nil)
	}
	return text
}
