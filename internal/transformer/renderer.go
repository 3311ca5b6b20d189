package transformer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Template markup grammar, preserved for compatibility with existing
// authored templates:
//
//	variable:    {{ name }}          (whitespace optional, case-insensitive)
//	conditional: {{#if name}} ... {{/if}}
//	loop:        {{#each name}} ... {{this}} ... {{/each}}
//
// Blocks do not nest. ValidateBody rejects nested blocks at save time;
// Render assumes a valid body and mis-pairs markers on a nested one.
var (
	variablePattern    = regexp.MustCompile(`\{\{\s*([A-Za-z][A-Za-z0-9_]*)\s*\}\}`)
	conditionalPattern = regexp.MustCompile(`(?is)\{\{#if\s+([A-Za-z][A-Za-z0-9_]*)\s*\}\}(.*?)\{\{/if\s*\}\}`)
	loopPattern        = regexp.MustCompile(`(?is)\{\{#each\s+([A-Za-z][A-Za-z0-9_]*)\s*\}\}(.*?)\{\{/each\s*\}\}`)
	thisPattern        = regexp.MustCompile(`(?i)\{\{\s*this\s*\}\}`)
	leftoverPattern    = regexp.MustCompile(`\{\{[^{}]*\}\}`)
	blockMarkerPattern = regexp.MustCompile(`(?i)\{\{(#if|#each|/if|/each)[^{}]*\}\}`)
)

// Render substitutes variables into a template body and evaluates its
// conditional and loop blocks. Pure and deterministic: same body and
// variables always yield the same output. Missing variables render as
// empty strings and any leftover markers are stripped, never echoed.
//
// Substitution runs before the structural passes so block conditions
// are evaluated against raw variable values, not substituted text.
func Render(body string, vars map[string]string) string {
	out := substituteVariables(body, vars)
	out = evaluateConditionals(out, vars)
	out = expandLoops(out, vars)
	out = leftoverPattern.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// substituteVariables replaces {{ name }} markers whose name is known.
// Unknown names (including the loop-local "this") are left for the
// structural passes and the final leftover strip.
func substituteVariables(body string, vars map[string]string) string {
	return variablePattern.ReplaceAllStringFunc(body, func(marker string) string {
		name := strings.ToLower(variablePattern.FindStringSubmatch(marker)[1])
		if name == "this" {
			return marker
		}
		if val, ok := vars[name]; ok {
			return val
		}
		return marker
	})
}

// evaluateConditionals keeps each {{#if name}}...{{/if}} block iff the
// named variable is non-empty after trimming, stripping the markers.
func evaluateConditionals(body string, vars map[string]string) string {
	return conditionalPattern.ReplaceAllStringFunc(body, func(block string) string {
		m := conditionalPattern.FindStringSubmatch(block)
		if strings.TrimSpace(vars[strings.ToLower(m[1])]) != "" {
			return m[2]
		}
		return ""
	})
}

// expandLoops expands each {{#each name}}...{{/each}} block once per
// comma-separated item in the named variable, joined with a space.
func expandLoops(body string, vars map[string]string) string {
	return loopPattern.ReplaceAllStringFunc(body, func(block string) string {
		m := loopPattern.FindStringSubmatch(block)
		items := splitItems(vars[strings.ToLower(m[1])])
		if len(items) == 0 {
			return ""
		}
		expanded := make([]string, 0, len(items))
		for _, item := range items {
			expanded = append(expanded, thisPattern.ReplaceAllString(m[2], item))
		}
		return strings.Join(expanded, " ")
	})
}

func splitItems(csv string) []string {
	parts := strings.Split(csv, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// ReferencedVariables returns the distinct variable names a body refers
// to (markers plus block conditions), in order of first appearance.
func ReferencedVariables(body string) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		name = strings.ToLower(name)
		if name == "this" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	for _, m := range variablePattern.FindAllStringSubmatch(body, -1) {
		add(m[1])
	}
	for _, m := range conditionalPattern.FindAllStringSubmatch(body, -1) {
		add(m[1])
	}
	for _, m := range loopPattern.FindAllStringSubmatch(body, -1) {
		add(m[1])
	}
	return names
}

// ErrNestedBlocks is returned by ValidateBody when conditional or loop
// blocks nest. The grammar is flat; regex matching would mis-pair
// nested markers, so nesting is rejected when a template is saved.
var ErrNestedBlocks = errors.New("template blocks must not nest")

// ValidateBody checks a template body against the markup grammar:
// flat (non-nested) blocks with every opener matched by a closer.
func ValidateBody(body string) error {
	depth := 0
	for _, m := range blockMarkerPattern.FindAllStringSubmatch(body, -1) {
		switch strings.ToLower(m[1]) {
		case "#if", "#each":
			depth++
			if depth > 1 {
				return ErrNestedBlocks
			}
		case "/if", "/each":
			depth--
			if depth < 0 {
				return fmt.Errorf("unmatched closing marker %q", m[0])
			}
		}
	}
	if depth != 0 {
		return errors.New("unclosed template block")
	}
	return nil
}
