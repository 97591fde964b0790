package email

import "strings"

// Normalize trims surrounding whitespace and lower-cases the address so that
// comparisons and storage use one canonical spelling.
func Normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// Domain returns the part after the last "@", or "" when there is none.
func Domain(address string) string {
	at := strings.LastIndexByte(address, '@')
	if at < 0 || at == len(address)-1 {
		return ""
	}
	return address[at+1:]
}

// Equal reports whether a and b are the same address once normalized.
// Empty addresses never match.
func Equal(a, b string) bool {
	a, b = Normalize(a), Normalize(b)
	return a != "" && a == b
}
