package primitives

// commodityCurrencies lists the currency codes forbidden in payment
// amount fields (C08): the precious-metal "currencies".
var commodityCurrencies = map[string]bool{
	"XAU": true,
	"XAG": true,
	"XPD": true,
	"XPT": true,
}

// decimals0 holds ISO 4217 currencies with zero minor units.
var decimals0 = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true, "ISK": true,
	"JPY": true, "KMF": true, "KRW": true, "PYG": true, "RWF": true,
	"UGX": true, "UYI": true, "VND": true, "VUV": true, "XAF": true,
	"XOF": true, "XPF": true,
}

// decimals3 holds ISO 4217 currencies with three minor units.
var decimals3 = map[string]bool{
	"BHD": true, "IQD": true, "JOD": true, "KWD": true, "LYD": true,
	"OMR": true, "TND": true,
}

// decimals4 holds ISO 4217 currencies with four minor units.
var decimals4 = map[string]bool{
	"CLF": true, "UYW": true,
}

// ParseCurrency validates a 3 letter uppercase ISO 4217 currency code
// (T52). It does not check the code against a known-currency list,
// matching the original's own permissive structural-only validation.
func ParseCurrency(s string) (string, error) {
	if len(s) != 3 || !isAllUpperAlpha(s) {
		return "", newFormatError("T52", "", "currency", "3 uppercase letters", s,
			"Currency code must be exactly 3 uppercase letters")
	}
	return s, nil
}

// ParseCurrencyNonCommodity validates a currency code and additionally
// rejects the commodity currencies XAU/XAG/XPD/XPT (C08), used by
// payment amount fields such as 32A/33B.
func ParseCurrencyNonCommodity(s string) (string, error) {
	cur, err := ParseCurrency(s)
	if err != nil {
		return "", err
	}
	if commodityCurrencies[cur] {
		return "", &SwiftError{
			Kind:    KindSwiftValidation,
			Code:    "C08",
			Message: "Commodity currency code " + cur + " is not allowed in a payment amount field",
		}
	}
	return cur, nil
}

// ISO4217Decimals returns the number of minor units the given currency
// code uses for decimal amounts, defaulting to 2 for any currency not
// in the 0/3/4 decimal exception tables.
func ISO4217Decimals(currency string) int {
	switch {
	case decimals0[currency]:
		return 0
	case decimals3[currency]:
		return 3
	case decimals4[currency]:
		return 4
	default:
		return 2
	}
}
