// Package slug derives URL-safe identifiers from track names.
package slug

import (
	"strings"
	"unicode/utf8"
)

// Make turns a display name into its slug: non-ASCII runes are dropped (not
// transliterated), the rest is lowercased, and runs of whitespace collapse
// into single hyphens.
func Make(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(strings.ToLower(b.String())), "-")
}
