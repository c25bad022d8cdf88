package mt101

import (
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
	"github.com/deltran/swiftmt/internal/swiftmt/validate"
)

func contentError(code, tag, message string) primitives.SwiftError {
	return primitives.SwiftError{Kind: primitives.KindSwiftValidation, Code: code, Tag: tag, Message: message}
}

// Rules is the full ordered set of MT101 network validation rules,
// grounded on mt101.rs's MT101_VALIDATION_RULES JSON-logic rule set
// (C1-C9).
var Rules = []validate.Rule[MT101]{
	{Name: "c03_amount_decimals", Check: validateC03AmountDecimals},
	{Name: "c1_exchange_rate_requires_21f", Check: validateC1ExchangeRateRequires21F},
	{Name: "c2_currency_conversion", Check: validateC2CurrencyConversion},
	{Name: "c3_ordering_customer_placement", Check: validateC3OrderingCustomerPlacement},
	{Name: "c4_instructing_party_placement", Check: validateC4InstructingPartyPlacement},
	{Name: "c5_currency_differs", Check: validateC5CurrencyDiffers},
	{Name: "c6_account_servicing_placement", Check: validateC6AccountServicingPlacement},
	{Name: "c7_intermediary_requires_account_with", Check: validateC7IntermediaryRequiresAccountWith},
	{Name: "c8_chained_currency_consistency", Check: validateC8ChainedCurrencyConsistency},
	{Name: "c9_zero_amount_equivalent_dependency", Check: validateC9ZeroAmountEquivalentDependency},
}

// ValidateNetworkRules runs every MT101 network validation rule.
func (m MT101) ValidateNetworkRules(stopOnFirstError bool) []primitives.SwiftError {
	return validate.Run(m, Rules, stopOnFirstError)
}

// C03: every transaction's field 32B amount, and field 33B when
// present, must not carry more fractional digits than its currency's
// ISO 4217 precision allows. Checked at validation time so an
// over-precise amount still parses.
func validateC03AmountDecimals(m MT101) []primitives.SwiftError {
	var errs []primitives.SwiftError
	for _, tx := range m.Transactions {
		if err := primitives.ValidateAmountDecimals(tx.Field32B.Amount, tx.Field32B.Currency); err != nil {
			se := err.(*primitives.SwiftError)
			se.Tag = "32B"
			errs = append(errs, *se)
		}
		if tx.Field33B != nil {
			if err := primitives.ValidateAmountDecimals(tx.Field33B.Amount, tx.Field33B.Currency); err != nil {
				se := err.(*primitives.SwiftError)
				se.Tag = "33B"
				errs = append(errs, *se)
			}
		}
	}
	return errs
}

// C1: field 36 present on a transaction requires field 21F on the
// same transaction.
func validateC1ExchangeRateRequires21F(m MT101) []primitives.SwiftError {
	var errs []primitives.SwiftError
	for _, tx := range m.Transactions {
		if tx.Field36 != nil && tx.Field21F == nil {
			errs = append(errs, contentError("C1", "21F", "field 21F is mandatory when field 36 is present"))
		}
	}
	return errs
}

// C2: field 33B present with a non-zero field 32B amount requires
// field 36; a zero amount forbids it; 33B absent forbids it outright.
func validateC2CurrencyConversion(m MT101) []primitives.SwiftError {
	var errs []primitives.SwiftError
	for _, tx := range m.Transactions {
		if tx.Field33B == nil {
			if tx.Field36 != nil {
				errs = append(errs, contentError("C2", "36", "field 36 is not allowed when field 33B is not present"))
			}
			continue
		}
		if tx.Field32B.Amount.IsZero() {
			if tx.Field36 != nil {
				errs = append(errs, contentError("C2", "36", "field 36 is not allowed when field 32B amount is zero"))
			}
		} else if tx.Field36 == nil {
			errs = append(errs, contentError("C2", "36", "field 36 is mandatory when field 33B is present and field 32B amount is non-zero"))
		}
	}
	return errs
}

// C3: field 50a (F/G/H, ordering customer) must appear either once in
// sequence A or in every sequence B occurrence, never a mix.
func validateC3OrderingCustomerPlacement(m MT101) []primitives.SwiftError {
	hasA := m.OrderingCustomer != nil
	allB, anyB := true, false
	for _, tx := range m.Transactions {
		if tx.OrderingCustomer != nil {
			anyB = true
		} else {
			allB = false
		}
	}
	if len(m.Transactions) == 0 {
		allB = false
	}
	if hasA && anyB {
		return []primitives.SwiftError{contentError("C3", "50a", "field 50a (ordering customer) must not be present in both Sequence A and Sequence B")}
	}
	if !hasA && !allB {
		return []primitives.SwiftError{contentError("C3", "50a", "field 50a (ordering customer) must be present either in Sequence A or in every Sequence B occurrence")}
	}
	return nil
}

// C4: field 50a (C/L, instructing party) may be in sequence A or in
// one or more sequence B occurrences, but not both.
func validateC4InstructingPartyPlacement(m MT101) []primitives.SwiftError {
	if m.InstructingParty == nil {
		return nil
	}
	for _, tx := range m.Transactions {
		if tx.InstructingParty != nil {
			return []primitives.SwiftError{contentError("C4", "50a", "field 50a (instructing party) must not be present in both Sequence A and Sequence B")}
		}
	}
	return nil
}

// C5: when present on a transaction, field 33B's currency must differ
// from field 32B's.
func validateC5CurrencyDiffers(m MT101) []primitives.SwiftError {
	var errs []primitives.SwiftError
	for _, tx := range m.Transactions {
		if tx.Field33B != nil && tx.Field33B.Currency == tx.Field32B.Currency {
			errs = append(errs, contentError("C5", "33B", "currency code in field 33B must differ from field 32B"))
		}
	}
	return errs
}

// C6: field 52a may be in sequence A or one or more sequence B
// occurrences, but not both.
func validateC6AccountServicingPlacement(m MT101) []primitives.SwiftError {
	if m.Field52A == nil {
		return nil
	}
	for _, tx := range m.Transactions {
		if tx.Field52 != nil {
			return []primitives.SwiftError{contentError("C6", "52a", "field 52a must not be present in both Sequence A and Sequence B")}
		}
	}
	return nil
}

// C7: field 56a present on a transaction requires field 57a present.
func validateC7IntermediaryRequiresAccountWith(m MT101) []primitives.SwiftError {
	var errs []primitives.SwiftError
	for _, tx := range m.Transactions {
		if tx.Field56 != nil && tx.Field57 == nil {
			errs = append(errs, contentError("C7", "57a", "field 57a is mandatory when field 56a is present"))
		}
	}
	return errs
}

// C9: in each transaction, the presence of fields 33B and 21F depends
// on field 32B's amount and whether any field 23E carries code EQUI.
// A zero amount with an EQUI code requires 33B; a zero amount without
// one forbids both 33B and 21F. A non-zero amount imposes no
// constraint from this rule.
func validateC9ZeroAmountEquivalentDependency(m MT101) []primitives.SwiftError {
	var errs []primitives.SwiftError
	for _, tx := range m.Transactions {
		if !tx.Field32B.Amount.IsZero() {
			continue
		}
		hasEqui := false
		for _, e := range tx.Field23E {
			if e.InstructionCode == "EQUI" {
				hasEqui = true
				break
			}
		}
		if hasEqui {
			if tx.Field33B == nil {
				errs = append(errs, contentError("C9", "33B", "field 33B is mandatory when field 32B amount is zero and field 23E carries code EQUI"))
			}
		} else {
			if tx.Field33B != nil {
				errs = append(errs, contentError("C9", "33B", "field 33B is not allowed when field 32B amount is zero and no field 23E carries code EQUI"))
			}
			if tx.Field21F != nil {
				errs = append(errs, contentError("C9", "21F", "field 21F is not allowed when field 32B amount is zero and no field 23E carries code EQUI"))
			}
		}
	}
	return errs
}

// C8: when field 21R (customer-specified reference) is present in
// sequence A, every transaction's field 32B currency must match.
func validateC8ChainedCurrencyConsistency(m MT101) []primitives.SwiftError {
	if m.Field21R == nil || len(m.Transactions) < 2 {
		return nil
	}
	ref := m.Transactions[0].Field32B.Currency
	for _, tx := range m.Transactions[1:] {
		if tx.Field32B.Currency != ref {
			return []primitives.SwiftError{contentError("C8", "32B", "currency code in field 32B must be the same across all transactions when field 21R is present")}
		}
	}
	return nil
}
