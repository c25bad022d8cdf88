package mt202

import (
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
	"github.com/deltran/swiftmt/internal/swiftmt/validate"
)

func contentError(code, tag, message string) primitives.SwiftError {
	return primitives.SwiftError{Kind: primitives.KindSwiftValidation, Code: code, Tag: tag, Message: message}
}

// Rules is the ordered set of MT202 network validation rules, grounded
// on mt205.rs's cover-detection and cross-currency helper logic
// (is_cover_message_from_fields, is_cross_currency) rather than a
// JSON-logic rule table, since MT205's Rust source expresses these as
// plain predicate methods.
var Rules = []validate.Rule[MT202]{
	{Name: "c03_amount_decimals", Check: validateC03AmountDecimals},
	{Name: "c1_cover_instructed_amount_requires_currency_difference", Check: validateC1CoverCrossCurrency},
	{Name: "c2_cover_beneficiary_without_ordering_customer", Check: validateC2CoverCompleteness},
}

// C03: field 32A's amount, and the cover sequence's instructed amount
// when present, must not carry more fractional digits than their
// currency's ISO 4217 precision allows. Checked at validation time so
// an over-precise amount still parses.
func validateC03AmountDecimals(m MT202) []primitives.SwiftError {
	var errs []primitives.SwiftError
	if err := primitives.ValidateAmountDecimals(m.Field32A.Amount, m.Field32A.Currency); err != nil {
		se := err.(*primitives.SwiftError)
		se.Tag = "32A"
		errs = append(errs, *se)
	}
	if m.CoverInstructedAmount != nil {
		if err := primitives.ValidateAmountDecimals(m.CoverInstructedAmount.Amount, m.CoverInstructedAmount.Currency); err != nil {
			se := err.(*primitives.SwiftError)
			se.Tag = "33B"
			errs = append(errs, *se)
		}
	}
	return errs
}

// ValidateNetworkRules runs every MT202 network validation rule.
func (m MT202) ValidateNetworkRules(stopOnFirstError bool) []primitives.SwiftError {
	return validate.Run(m, Rules, stopOnFirstError)
}

// IsCrossCurrency reports whether the cover's instructed amount
// currency differs from the settlement currency in field 32A.
func (m MT202) IsCrossCurrency() bool {
	return m.CoverInstructedAmount != nil && m.CoverInstructedAmount.Currency != m.Field32A.Currency
}

// C1: field 33B, when present in the cover sequence, is only
// meaningful when its currency differs from field 32A's settlement
// currency.
func validateC1CoverCrossCurrency(m MT202) []primitives.SwiftError {
	if m.CoverInstructedAmount != nil && m.CoverInstructedAmount.Currency == m.Field32A.Currency {
		return []primitives.SwiftError{contentError("C1", "33B", "field 33B currency must differ from field 32A when present in a cover message")}
	}
	return nil
}

// C2: a cover sequence naming the beneficiary customer must also name
// the ordering customer, since a cover message exists to link both
// ends of the underlying customer transfer.
func validateC2CoverCompleteness(m MT202) []primitives.SwiftError {
	if m.CoverBeneficiary != nil && m.CoverOrderingCustomer == nil {
		return []primitives.SwiftError{contentError("C2", "50a", "field 50a is mandatory in the cover sequence when field 59a is present")}
	}
	return nil
}
