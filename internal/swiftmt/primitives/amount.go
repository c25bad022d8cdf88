package primitives

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a SWIFT numeric amount: digits with at most one
// fractional separator (comma or dot), no thousands grouping and no
// sign, and at least one integer digit. The wire form always uses a
// comma on output; a dot is accepted on input for leniency since some
// upstream systems emit dot-decimal amounts.
func ParseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, newFormatError("T40", "", "amount", "numeric amount", s,
			"Amount must not be empty")
	}

	normalized := s
	commaCount := strings.Count(s, ",")
	dotCount := strings.Count(s, ".")
	if commaCount+dotCount > 1 {
		return decimal.Decimal{}, newFormatError("T40", "", "amount", "one fractional separator", s,
			"Amount must contain at most one fractional separator")
	}
	if commaCount == 1 {
		normalized = strings.Replace(s, ",", ".", 1)
	}

	for i, r := range normalized {
		if r == '.' {
			continue
		}
		if r < '0' || r > '9' {
			if i == 0 && r == '-' {
				return decimal.Decimal{}, newFormatError("T40", "", "amount", "unsigned numeric amount", s,
					"Amount must not carry a sign")
			}
			return decimal.Decimal{}, newFormatError("T40", "", "amount", "digits and one separator", s,
				"Amount contains an invalid character")
		}
	}

	intPart := normalized
	if idx := strings.IndexByte(normalized, '.'); idx >= 0 {
		intPart = normalized[:idx]
	}
	if intPart == "" {
		return decimal.Decimal{}, newFormatError("T40", "", "amount", "at least one integer digit", s,
			"Amount must have at least one integer digit")
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, newFormatError("T40", "", "amount", "numeric amount", s, err.Error())
	}
	return d, nil
}

// FormatAmount renders a decimal using SWIFT's comma-decimal, no
// thousands-grouping convention, trimming trailing fractional zeros
// but always keeping at least the integer part (e.g. 1000.00 -> "1000",
// 1000.50 -> "1000,5", 1234567.89 -> "1234567,89").
func FormatAmount(amount decimal.Decimal) string {
	s := amount.String()
	idx := strings.IndexByte(s, '.')
	if idx < 0 {
		return s
	}
	intPart := s[:idx]
	fracPart := strings.TrimRight(s[idx+1:], "0")
	if fracPart == "" {
		return intPart
	}
	return intPart + "," + fracPart
}

// ValidateAmountDecimals checks that the number of fractional digits in
// the amount's textual form does not exceed the ISO 4217 precision for
// the given currency (C03). The scale is computed lexically from the
// emitted form, not from the decimal library's internal exponent, so
// that trailing-zero trimming is accounted for the same way the
// original implementation computes it.
func ValidateAmountDecimals(amount decimal.Decimal, currency string) error {
	wire := FormatAmount(amount)
	scale := 0
	if idx := strings.IndexByte(wire, ','); idx >= 0 {
		scale = len(wire) - idx - 1
	}
	max := ISO4217Decimals(currency)
	if scale > max {
		return &SwiftError{
			Kind:    KindSwiftValidation,
			Code:    "C03",
			Message: "Amount has more fractional digits than currency " + currency + " allows",
		}
	}
	return nil
}
