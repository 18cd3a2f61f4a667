package identity

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxInitials = 2

var upper = cases.Upper(language.Und)

// InitialsFor returns up to two uppercase initials, one per whitespace
// separated word of name. Runs of whitespace never produce empty words.
func InitialsFor(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		if n == maxInitials {
			break
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
		n++
	}
	if n == 0 {
		return ""
	}

	// Uppercasing can expand a rune ("ß" -> "SS"), so truncate afterwards.
	out := []rune(upper.String(b.String()))
	if len(out) > maxInitials {
		out = out[:maxInitials]
	}
	return string(out)
}
