package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphen  = regexp.MustCompile(`-+`)
)

// GenerateSlug turns a display name into its URL/filename key.
// "Jane Doe" → "jane-doe". Author files on disk are keyed by this slug.
func GenerateSlug(input string) string {
	// Step 1: Strip diacritics so accented names fold to ASCII
	// "Scott Wlaschin" stays, "José" → "Jose"
	ascii := RemoveDiacritics(input)

	// Step 2: Lowercase
	lower := strings.ToLower(ascii)

	// Step 3: Replace spaces with hyphens
	hyphenated := strings.ReplaceAll(lower, " ", "-")

	// Step 4: Remove everything outside a-z, 0-9, hyphens
	cleaned := nonSlugChars.ReplaceAllString(hyphenated, "")

	// Step 5: Collapse consecutive hyphens
	normalized := multiHyphen.ReplaceAllString(cleaned, "-")

	// Step 6: Trim leading/trailing hyphens
	return strings.Trim(normalized, "-")
}

// RemoveDiacritics decomposes the string (NFD) and drops combining marks.
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	return out
}
