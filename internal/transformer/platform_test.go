package transformer_test

import (
	"strings"
	"testing"

	"github.com/jonesrussell/north-cloud/social-publisher/internal/transformer"
	"github.com/stretchr/testify/assert"
)

func TestAdaptForPlatform_Twitter(t *testing.T) {
	t.Helper()

	t.Run("short text passes through", func(t *testing.T) {
		assert.Equal(t, "hello", transformer.AdaptForPlatform("hello", transformer.PlatformTwitter))
	})

	t.Run("long text is capped at 280", func(t *testing.T) {
		long := strings.Repeat("This is a sentence. ", 30)
		out := transformer.AdaptForPlatform(long, transformer.PlatformTwitter)
		assert.LessOrEqual(t, len(out), 280)
		assert.True(t, strings.HasSuffix(out, "..."))
	})

	t.Run("truncates at a sentence boundary when one fits", func(t *testing.T) {
		text := "First sentence here. " + strings.Repeat("Second sentence is much longer and keeps going. ", 10)
		out := transformer.AdaptForPlatform(text, transformer.PlatformTwitter)
		assert.True(t, strings.HasPrefix(out, "First sentence here."))
		assert.True(t, strings.HasSuffix(out, "..."))
		assert.LessOrEqual(t, len(out), 280)
	})

	t.Run("falls back to word boundary when no sentence fits", func(t *testing.T) {
		words := strings.Repeat("word ", 100) // no terminators at all
		out := transformer.AdaptForPlatform(strings.TrimSpace(words), transformer.PlatformTwitter)
		assert.LessOrEqual(t, len(out), 280)
		assert.True(t, strings.HasSuffix(out, "word..."))
	})

	t.Run("single unbreakable token is hard cut", func(t *testing.T) {
		out := transformer.AdaptForPlatform(strings.Repeat("a", 400), transformer.PlatformTwitter)
		assert.LessOrEqual(t, len(out), 280)
		assert.True(t, strings.HasSuffix(out, "..."))
	})
}

func TestAdaptForPlatform_HardLimits(t *testing.T) {
	t.Helper()

	tests := []struct {
		name     string
		platform string
		limit    int
	}{
		{name: "instagram caps at 2200", platform: transformer.PlatformInstagram, limit: 2200},
		{name: "pinterest caps at 500", platform: transformer.PlatformPinterest, limit: 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			long := strings.Repeat("x", tc.limit*2)
			out := transformer.AdaptForPlatform(long, tc.platform)
			assert.Len(t, out, tc.limit)
			assert.True(t, strings.HasSuffix(out, "..."))

			short := strings.Repeat("x", tc.limit)
			assert.Equal(t, short, transformer.AdaptForPlatform(short, tc.platform))
		})
	}
}

func TestAdaptForPlatform_Facebook(t *testing.T) {
	t.Helper()

	t.Run("under optimal length passes through", func(t *testing.T) {
		text := strings.Repeat("x", 500)
		assert.Equal(t, text, transformer.AdaptForPlatform(text, transformer.PlatformFacebook))
	})

	t.Run("over optimal length gets continued marker at word boundary", func(t *testing.T) {
		long := strings.TrimSpace(strings.Repeat("word ", 200))
		out := transformer.AdaptForPlatform(long, transformer.PlatformFacebook)
		assert.True(t, strings.HasSuffix(out, "... (continued)"))
		assert.LessOrEqual(t, len(out), 500)
		assert.NotContains(t, out, "wor ", "must not cut mid-word at a boundary")
	})

	t.Run("no boundary in window falls back to hard cut", func(t *testing.T) {
		long := strings.Repeat("y", 1000)
		out := transformer.AdaptForPlatform(long, transformer.PlatformFacebook)
		assert.True(t, strings.HasSuffix(out, "... (continued)"))
		assert.LessOrEqual(t, len(out), 500)
	})
}

func TestAdaptForPlatform_UnknownPlatformPassesThrough(t *testing.T) {
	t.Helper()

	long := strings.Repeat("z", 5000)
	assert.Equal(t, long, transformer.AdaptForPlatform(long, "mastodon"))
}

func TestAdaptForPlatform_Idempotent(t *testing.T) {
	t.Helper()

	platforms := []string{
		transformer.PlatformTwitter,
		transformer.PlatformInstagram,
		transformer.PlatformFacebook,
		transformer.PlatformPinterest,
		"unknown",
	}
	inputs := []string{
		"short text",
		strings.TrimSpace(strings.Repeat("A full sentence right here. ", 50)),
		strings.Repeat("nospacetext", 300),
		strings.TrimSpace(strings.Repeat("word ", 600)),
	}

	for _, platform := range platforms {
		for _, input := range inputs {
			once := transformer.AdaptForPlatform(input, platform)
			twice := transformer.AdaptForPlatform(once, platform)
			assert.Equal(t, once, twice, "platform %s must be idempotent", platform)
		}
	}
}
