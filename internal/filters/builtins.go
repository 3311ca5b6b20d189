package filters

import (
	"regexp"
	"strings"
)

const defaultTruncateLength = 100

var markupPattern = regexp.MustCompile(`<[^>]*>`)

// emojiKeyword pairs a lowercase keyword with the emoji prefixed when
// the keyword appears in the text. Ordered: the first match wins.
type emojiKeyword struct {
	keyword string
	emoji   string
}

var emojiKeywords = []emojiKeyword{
	{"launch", "🚀"},
	{"new", "✨"},
	{"update", "🔄"},
	{"tip", "💡"},
	{"news", "📰"},
	{"video", "🎬"},
	{"photo", "📷"},
	{"sale", "🏷️"},
	{"win", "🏆"},
	{"love", "❤️"},
}

// builtins returns the filters every registry is seeded with.
func builtins() []Filter {
	return []Filter{
		{
			Name:        "uppercase",
			Description: "Converts text to uppercase",
			Apply: func(text string, _ *Options) string {
				return strings.ToUpper(text)
			},
		},
		{
			Name:        "lowercase",
			Description: "Converts text to lowercase",
			Apply: func(text string, _ *Options) string {
				return strings.ToLower(text)
			},
		},
		{
			Name:        "titlecase",
			Description: "Capitalizes the first letter of each word",
			Apply: func(text string, _ *Options) string {
				words := strings.Fields(text)
				for i, w := range words {
					words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
				}
				return strings.Join(words, " ")
			},
		},
		{
			Name:        "truncate",
			Description: "Truncates text to a maximum length, appending an ellipsis",
			Apply: func(text string, opts *Options) string {
				length := defaultTruncateLength
				if opts != nil && opts.Length > 0 {
					length = opts.Length
				}
				if len(text) <= length {
					return text
				}
				return text[:length] + "..."
			},
		},
		{
			Name:        "strip_html",
			Description: "Removes HTML tags from text",
			Apply: func(text string, _ *Options) string {
				return markupPattern.ReplaceAllString(text, "")
			},
		},
		{
			Name:        "add_emoji",
			Description: "Prefixes an emoji matching the first recognized keyword",
			Apply: func(text string, _ *Options) string {
				lower := strings.ToLower(text)
				for _, ek := range emojiKeywords {
					if strings.Contains(lower, ek.keyword) {
						return ek.emoji + " " + text
					}
				}
				return text
			},
		},
	}
}
