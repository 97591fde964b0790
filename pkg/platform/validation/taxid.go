package validation

// TaxIDDigits is the length of a CNPJ, the Brazilian company registry number.
// Check digits are not verified.
const TaxIDDigits = 14

// IsValidTaxID reports whether s holds exactly TaxIDDigits digits once
// punctuation is removed.
func IsValidTaxID(s string) bool {
	return len(StripNonDigits(s)) == TaxIDDigits
}

// FormatTaxID renders s as "DD.DDD.DDD/DDDD-DD". Input with any other digit
// count is returned unchanged.
func FormatTaxID(s string) string {
	d := StripNonDigits(s)
	if len(d) != TaxIDDigits {
		return s
	}
	return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
}
