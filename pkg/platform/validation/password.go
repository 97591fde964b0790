package validation

import "unicode/utf8"

const (
	MinPasswordLength       = 6
	StrongPasswordMinLength = 8
)

// PasswordStrength grades a password for the sign-up strength meter.
// It is advisory and independent of IsValidPassword.
type PasswordStrength string

const (
	PasswordWeak   PasswordStrength = "weak"
	PasswordMedium PasswordStrength = "medium"
	PasswordStrong PasswordStrength = "strong"
)

func (p PasswordStrength) String() string {
	return string(p)
}

// IsValidPassword reports whether s is long enough to be accepted.
// No character classes are required.
func IsValidPassword(s string) bool {
	return utf8.RuneCountInString(s) >= MinPasswordLength
}

// PasswordStrengthOf grades s. A password is strong only when it has at least
// StrongPasswordMinLength characters, an upper-case letter and a digit.
func PasswordStrengthOf(s string) PasswordStrength {
	n := utf8.RuneCountInString(s)
	switch {
	case n < MinPasswordLength:
		return PasswordWeak
	case n < StrongPasswordMinLength:
		return PasswordMedium
	case hasUpper(s) && hasDigit(s):
		return PasswordStrong
	default:
		return PasswordMedium
	}
}

func hasUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			return true
		}
	}
	return false
}
