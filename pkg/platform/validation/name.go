package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const MinNameLength = 3

// IsValidName reports whether s, without surrounding whitespace, has at least
// MinNameLength characters.
func IsValidName(s string) bool {
	return utf8.RuneCountInString(TrimName(s)) >= MinNameLength
}

// TrimName strips surrounding whitespace the way browsers trim form input:
// Unicode white space and the BOM, but not NEL (U+0085).
func TrimName(s string) string {
	return strings.TrimFunc(s, isFormSpace)
}

func isFormSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\uFEFF' || unicode.IsSpace(r)
}
