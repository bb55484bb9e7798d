// backend/src/security/validation/sanitizers.go
package validation

import (
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// Definition of strict sanitization policy
	strictHTMLPolicy *bluemonday.Policy
)

func init() {
	// Initialize strict policy once at startup
	strictHTMLPolicy = bluemonday.StrictPolicy() // Removes all HTML tags
}

// SanitizeText removes all HTML tags and attributes from an input string,
// preventing XSS before saving to the database. Applied to every
// free-text field accepted by the record endpoints (client names, notes,
// expense descriptions).
func SanitizeText(s string) string {
	return strictHTMLPolicy.Sanitize(s)
}

// StripUnprintable removes non-printable characters, allowing common whitespace
// like space, tab, newline, and carriage return.
func StripUnprintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		return -1 // Drop the rune
	}, s)
}

// CleanField is the standard treatment for free-text record fields:
// strip control characters, drop any markup, trim the edges.
func CleanField(s string) string {
	return strings.TrimSpace(SanitizeText(StripUnprintable(s)))
}
