package validation

import "regexp"

// emailPattern is a shape check only: local part, "@", a domain with at least
// one dot. Deliverability is not our concern.
//
// None of the three parts may hold "@" or whitespace. RE2's \s covers ASCII
// only, so the class also names \v, NEL, every Unicode separator and the BOM.
var emailPattern = regexp.MustCompile(
	`^[^\s\v\x{85}\p{Z}\x{FEFF}@]+@[^\s\v\x{85}\p{Z}\x{FEFF}@]+\.[^\s\v\x{85}\p{Z}\x{FEFF}@]+$`,
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
