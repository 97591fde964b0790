package validation

// Brazilian numbers carry a two-digit area code followed by an 8-digit
// landline or a 9-digit mobile number.
const (
	LandlinePhoneDigits = 10
	MobilePhoneDigits   = 11
)

// IsValidPhone reports whether s holds a Brazilian phone number, ignoring
// any punctuation or spacing.
func IsValidPhone(s string) bool {
	n := len(StripNonDigits(s))
	return n == LandlinePhoneDigits || n == MobilePhoneDigits
}

// FormatPhone renders s as "(DD) DDDDD-DDDD" or "(DD) DDDD-DDDD".
// Input with any other digit count is returned unchanged.
func FormatPhone(s string) string {
	d := StripNonDigits(s)
	switch len(d) {
	case MobilePhoneDigits:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	case LandlinePhoneDigits:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return s
	}
}
