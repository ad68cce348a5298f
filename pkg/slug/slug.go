// Package slug derives URL-safe identifiers from display names.
//
// Slugs are deterministic: the same input always yields the same slug,
// containing only lowercase ASCII letters, digits, and single hyphens,
// with no leading or trailing hyphen.
package slug

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// turkishFolder maps the Turkish letters that service titles carry onto
// their ASCII slug form. Applied before lowercasing so both cases fold.
var turkishFolder = strings.NewReplacer(
	"Ç", "c", "ç", "c",
	"Ğ", "g", "ğ", "g",
	"I", "i", "ı", "i", "İ", "i",
	"Ö", "o", "ö", "o",
	"Ş", "s", "ş", "s",
	"Ü", "u", "ü", "u",
)

// Make derives a slug from s: lowercase, whitespace collapsed to single
// hyphens, every remaining non-alphanumeric rune dropped.
func Make(s string) string {
	return build(s)
}

// MakeFolded is Make with Turkish character folding applied first.
// Used for Turkish-language names (service titles, category names).
func MakeFolded(s string) string {
	return build(turkishFolder.Replace(s))
}

// OrFallback returns s unless it is empty, in which case a synthetic slug
// combining prefix and the current Unix timestamp is returned. Used when a
// title slugs down to nothing (e.g. all-symbol input).
func OrFallback(s, prefix string) string {
	if s != "" {
		return s
	}
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

func build(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		default:
			// non-ASCII letters and punctuation are dropped
		}
	}

	return strings.TrimRight(b.String(), "-")
}
