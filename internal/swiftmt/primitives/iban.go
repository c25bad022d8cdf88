package primitives

// ValidateIBAN performs the structural-only IBAN check the original
// implementation also limits itself to: overall length 15-34, the
// first two characters are uppercase letters (country code), and the
// next two are digits (check digits). A full mod-97 checksum is an
// explicit non-goal.
func ValidateIBAN(s string) error {
	if len(s) < 15 || len(s) > 34 {
		return newFormatError("T29", "", "iban", "15-34 characters", s,
			"IBAN must be between 15 and 34 characters")
	}
	if !isAllUpperAlpha(s[0:2]) {
		return newFormatError("T29", "", "iban", "2 letter country code", s,
			"IBAN must start with a 2 letter country code")
	}
	if !isAllDigits(s[2:4]) {
		return newFormatError("T29", "", "iban", "2 digit check digits", s,
			"IBAN must carry 2 digit check digits after the country code")
	}
	return nil
}
