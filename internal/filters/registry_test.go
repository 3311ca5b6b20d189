package filters_test

import (
	"strings"
	"testing"

	"github.com/jonesrussell/north-cloud/social-publisher/internal/filters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Builtins(t *testing.T) {
	t.Helper()

	reg := filters.NewRegistry()

	tests := []struct {
		name     string
		filter   string
		input    string
		expected string
	}{
		{
			name:     "uppercase converts all letters",
			filter:   "uppercase",
			input:    "hello world",
			expected: "HELLO WORLD",
		},
		{
			name:     "lowercase converts all letters",
			filter:   "lowercase",
			input:    "Hello WORLD",
			expected: "hello world",
		},
		{
			name:     "titlecase capitalizes each word",
			filter:   "titlecase",
			input:    "hello BIG world",
			expected: "Hello Big World",
		},
		{
			name:     "strip_html removes tags",
			filter:   "strip_html",
			input:    "<p>hello <b>world</b></p>",
			expected: "hello world",
		},
		{
			name:     "add_emoji prefixes on keyword match",
			filter:   "add_emoji",
			input:    "launch day is here",
			expected: "🚀 launch day is here",
		},
		{
			name:     "add_emoji leaves text without keywords alone",
			filter:   "add_emoji",
			input:    "nothing to see",
			expected: "nothing to see",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, ok := reg.Get(tc.filter)
			require.True(t, ok, "builtin %q must be registered", tc.filter)
			assert.Equal(t, tc.expected, f.Apply(tc.input, nil))
		})
	}
}

func TestRegistry_TruncateFilter(t *testing.T) {
	t.Helper()

	reg := filters.NewRegistry()
	f, ok := reg.Get("truncate")
	require.True(t, ok)

	long := strings.Repeat("a", 150)
	assert.Equal(t, strings.Repeat("a", 100)+"...", f.Apply(long, nil))
	assert.Equal(t, "short", f.Apply("short", nil))
	assert.Equal(t, "aaaaa...", f.Apply("aaaaaaaaaa", &filters.Options{Length: 5}))
}

func TestRegistry_Apply(t *testing.T) {
	t.Helper()

	reg := filters.NewRegistry()

	tests := []struct {
		name     string
		csv      string
		input    string
		expected string
	}{
		{
			name:     "filters run left to right",
			csv:      "strip_html, uppercase",
			input:    "<b>go live</b>",
			expected: "GO LIVE",
		},
		{
			name:     "unknown filter names are skipped",
			csv:      "nope, uppercase, alsonope",
			input:    "abc",
			expected: "ABC",
		},
		{
			name:     "empty list is a no-op",
			csv:      "",
			input:    "abc",
			expected: "abc",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, reg.Apply(tc.input, tc.csv))
		})
	}
}

func TestRegistry_RegisterCustomFilter(t *testing.T) {
	t.Helper()

	reg := filters.NewRegistry()
	before := len(reg.List())

	reg.Register(filters.Filter{
		Name:        "reverse",
		Description: "Reverses the text",
		Apply: func(text string, _ *filters.Options) string {
			runes := []rune(text)
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			return string(runes)
		},
	})

	assert.Len(t, reg.List(), before+1)
	assert.Equal(t, "cba", reg.Apply("abc", "reverse"))

	// Later registrations are visible to subsequent pipelines.
	f, ok := reg.Get("reverse")
	require.True(t, ok)
	assert.Equal(t, "reverse", f.Name)
}
