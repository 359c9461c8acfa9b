package service

import (
	"strings"

	"github.com/gosimple/unidecode"
	"golang.org/x/text/unicode/norm"
)

const slugSeparator = '-'

// Slugify turns a display name into a URL-safe identifier: letters are
// transliterated to ASCII ("ß" becomes "ss", "Æ" becomes "ae"), "@" reads as
// "at", and every run of characters outside [a-z0-9] collapses into a single
// separator with none left at either end.
func Slugify(name string) string {
	folded := unidecode.Unidecode(norm.NFKC.String(name))
	folded = strings.ToLower(strings.ReplaceAll(folded, "@", " at "))

	var b strings.Builder
	b.Grow(len(folded))
	pending := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteRune(slugSeparator)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
