package transformer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/models"
)

const (
	maxHashtags    = 15
	maxMinedTags   = 5
	minTokenLength = 4
)

var (
	hashtagStrip = regexp.MustCompile(`[^a-z0-9]`)
	wordPattern  = regexp.MustCompile(`^[a-z]+$`)
)

// DeriveHashtags derives hashtags from a source payload. Entries are
// lowercase alphanumeric with a # prefix, deduplicated, capped at 15.
func DeriveHashtags(src models.SourceContent, sourceKind string) []string {
	var candidates []string

	switch sourceKind {
	case models.SourceKindBlogger:
		candidates = append(candidates, src.Categories...)
		candidates = append(candidates, mineBodyTags(src.Content)...)
	case models.SourceKindAIGenerated:
		for _, phrase := range src.SEOSuggestions {
			for _, word := range strings.Fields(phrase) {
				if len(word) >= minTokenLength {
					candidates = append(candidates, word)
				}
			}
		}
	default:
		return []string{}
	}

	seen := make(map[string]bool)
	tags := make([]string, 0, len(candidates))
	for _, c := range candidates {
		tag := sanitizeHashtag(c)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
		if len(tags) == maxHashtags {
			break
		}
	}
	return tags
}

// mineBodyTags pulls up to five tag candidates out of body text: plain
// lowercase words longer than three characters, markup stripped first.
func mineBodyTags(content string) []string {
	text := stripMarkup(content)

	seen := make(map[string]bool)
	var words []string
	for _, token := range strings.Fields(strings.ToLower(text)) {
		if len(token) < minTokenLength || !wordPattern.MatchString(token) || seen[token] {
			continue
		}
		seen[token] = true
		words = append(words, token)
		if len(words) == maxMinedTags {
			break
		}
	}
	return words
}

func sanitizeHashtag(s string) string {
	cleaned := hashtagStrip.ReplaceAllString(strings.ToLower(s), "")
	if cleaned == "" {
		return ""
	}
	return "#" + cleaned
}

// DeriveImages derives image references from a source payload, in
// document order. Downstream consumers apply their own per-platform
// image-count limits.
func DeriveImages(src models.SourceContent, sourceKind string) []string {
	switch sourceKind {
	case models.SourceKindBlogger:
		return scanImageSources(src.Content)
	case models.SourceKindAIGenerated:
		if src.Images == nil {
			return []string{}
		}
		return src.Images
	default:
		return []string{}
	}
}

// scanImageSources extracts img src attributes from HTML content.
func scanImageSources(content string) []string {
	images := []string{}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return images
	}
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok && src != "" {
			images = append(images, src)
		}
	})
	return images
}

// stripMarkup returns the text content of an HTML fragment. Falls back
// to the raw input when the fragment cannot be parsed.
func stripMarkup(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}
	return doc.Text()
}
