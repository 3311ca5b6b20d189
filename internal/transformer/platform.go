package transformer

import (
	"regexp"
	"strings"
)

// Platform identifiers the adapter knows length policies for.
const (
	PlatformTwitter   = "twitter"
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformPinterest = "pinterest"
)

const (
	twitterLimit    = 280
	instagramLimit  = 2200
	facebookOptimal = 500
	pinterestLimit  = 500

	continuedMarker = "... (continued)"
)

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]`)

// AdaptForPlatform applies a platform's length policy to text. Pure:
// same input always yields the same output, and re-adapting an already
// adapted text is a no-op. Unrecognized platforms pass through.
func AdaptForPlatform(text, platform string) string {
	switch platform {
	case PlatformTwitter:
		return adaptTwitter(text)
	case PlatformInstagram:
		return hardTruncate(text, instagramLimit)
	case PlatformFacebook:
		return adaptFacebook(text)
	case PlatformPinterest:
		return hardTruncate(text, pinterestLimit)
	default:
		return text
	}
}

// adaptTwitter truncates at a sentence boundary when one fits, falling
// back to dropping trailing words until the text fits the limit.
func adaptTwitter(text string) string {
	if len(text) <= twitterLimit {
		return text
	}
	budget := twitterLimit - len(ellipsis)

	var b strings.Builder
	for _, sentence := range sentencePattern.FindAllString(text, -1) {
		if b.Len()+len(sentence) > budget {
			break
		}
		b.WriteString(sentence)
	}
	if b.Len() > 0 {
		return b.String() + ellipsis
	}

	// No complete sentence fits; drop words from the end instead.
	cut := text
	for len(cut) > budget {
		idx := strings.LastIndexAny(cut, " \t\n")
		if idx < 0 {
			cut = cut[:budget]
			break
		}
		cut = strings.TrimRight(cut[:idx], " \t\n")
	}
	return cut + ellipsis
}

// adaptFacebook trims to the optimal feed length with a continuation
// marker. There is no hard cap; the marker is budgeted inside the
// optimal length so re-adaptation leaves the result untouched.
func adaptFacebook(text string) string {
	if len(text) <= facebookOptimal {
		return text
	}
	budget := facebookOptimal - len(continuedMarker)
	cut := text[:budget]
	if idx := strings.LastIndexAny(cut, " \t\n"); idx >= budget-budget/boundaryWindow {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " \t\n") + continuedMarker
}

func hardTruncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit-len(ellipsis)] + ellipsis
}
