package utils

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

// Slugify turns a salon name into a lowercase hyphenated URL slug. Han
// characters are transliterated with pinyin so Chinese salon names still get
// readable slugs; anything else non-alphanumeric becomes a separator.
func Slugify(name string) string {
	words := []string{}
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			cur.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			cur.WriteRune(unicode.ToLower(r))
		case unicode.Is(unicode.Han, r):
			flush()
			if syllables := pinyin.LazyConvert(string(r), nil); len(syllables) > 0 {
				words = append(words, syllables[0])
			}
		default:
			flush()
		}
	}
	flush()

	return strings.Join(words, "-")
}
