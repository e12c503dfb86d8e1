package models

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9_\s-]`)
	slugCollapse = regexp.MustCompile(`[-\s]+`)
)

// Slugify folds name to ASCII, lower-cases it and joins words with hyphens:
// "Main Store" -> "main-store", "Café  Nord" -> "cafe-nord".
func Slugify(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn))), name)
	if err != nil {
		folded = name
	}
	ascii := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, folded)

	slug := slugStrip.ReplaceAllString(strings.ToLower(ascii), "")
	slug = slugCollapse.ReplaceAllString(strings.TrimSpace(slug), "-")
	return strings.Trim(slug, "-_")
}
