package mt104

import (
	"github.com/shopspring/decimal"

	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
	"github.com/deltran/swiftmt/internal/swiftmt/validate"
)

func contentError(code, tag, message string) primitives.SwiftError {
	return primitives.SwiftError{Kind: primitives.KindSwiftValidation, Code: code, Tag: tag, Message: message}
}

// Rules is the full ordered set of MT104 network validation rules,
// grounded on mt104.rs's MT104_VALIDATION_RULES JSON-logic rule set
// (C1-C10 and C12, plus C03; C11 is not implemented, and C13 requires
// user header context not modeled here).
var Rules = []validate.Rule[MT104]{
	{Name: "c03_amount_decimals", Check: validateC03AmountDecimals},
	{Name: "c1_23e_rfdd_placement", Check: validateC1RFDDPlacement},
	{Name: "c2_creditor_placement", Check: validateC2CreditorPlacement},
	{Name: "c3_seq_a_b_mutual_exclusivity", Check: validateC3SeqAExclusivity},
	{Name: "c4_21e_requires_creditor", Check: validateC4RequiresCreditor},
	{Name: "c5_rtnd_field_72_dependency", Check: validateC5RTNDField72},
	{Name: "c6_71fg_seq_b_c_consistency", Check: validateC6SeqBCConsistency},
	{Name: "c7_field_33b_32b_comparison", Check: validateC7Field33BComparison},
	{Name: "c8_currency_difference_requires_36", Check: validateC8CurrencyRequires36},
	{Name: "c9_seq_c_sum_absent_19", Check: validateC9SeqCSumAbsent19},
	{Name: "c10_field_19_sum_of_amounts", Check: validateC10Field19Sum},
	{Name: "c12_rfdd_restrictions", Check: validateC12RFDDRestrictions},
}

// ValidateNetworkRules runs every MT104 network validation rule.
func (m MT104) ValidateNetworkRules(stopOnFirstError bool) []primitives.SwiftError {
	return validate.Run(m, Rules, stopOnFirstError)
}

// C03: every amount (Sequence C field 32B when present, and each
// Sequence B transaction's 32B and 33B) must not carry more
// fractional digits than its currency's ISO 4217 precision allows.
// Checked at validation time so an over-precise amount still parses.
func validateC03AmountDecimals(m MT104) []primitives.SwiftError {
	var errs []primitives.SwiftError
	if m.Field32B != nil {
		if err := primitives.ValidateAmountDecimals(m.Field32B.Amount, m.Field32B.Currency); err != nil {
			se := err.(*primitives.SwiftError)
			se.Tag = "32B"
			errs = append(errs, *se)
		}
	}
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

func (m MT104) is23ERFDD() bool {
	return m.Field23E != nil && m.Field23E.InstructionCode == "RFDD"
}

// C1: field 23E in sequence A, if present, governs whether field 23E
// must appear in every sequence B occurrence (RFDD), must appear in
// none (other codes), or must appear in all (absent from sequence A).
func validateC1RFDDPlacement(m MT104) []primitives.SwiftError {
	requireAll := m.Field23E == nil || m.is23ERFDD()
	for _, tx := range m.Transactions {
		if requireAll && tx.Field23E == nil {
			return []primitives.SwiftError{contentError("C1", "23E", "field 23E is mandatory in every Sequence B occurrence")}
		}
		if !requireAll && tx.Field23E != nil {
			return []primitives.SwiftError{contentError("C1", "23E", "field 23E must not be present in Sequence B when Sequence A's 23E is present without code RFDD")}
		}
	}
	return nil
}

// C2: field 50a (A/K, creditor) must be present either once in
// sequence A or in every sequence B occurrence, never a mix.
func validateC2CreditorPlacement(m MT104) []primitives.SwiftError {
	hasA := m.Creditor != nil
	allB := len(m.Transactions) > 0
	anyB := false
	for _, tx := range m.Transactions {
		if tx.Creditor != nil {
			anyB = true
		} else {
			allB = false
		}
	}
	if hasA && anyB {
		return []primitives.SwiftError{contentError("C2", "50a", "field 50a (creditor) must not be present in both Sequence A and Sequence B")}
	}
	if !hasA && !allB {
		return []primitives.SwiftError{contentError("C2", "50a", "field 50a (creditor) must be present either in Sequence A or in every Sequence B occurrence")}
	}
	return nil
}

// C3: when present in sequence A, fields 21E, 26T, 52a, 71A, 77B and
// 50a (C/L instructing party) must not recur in any sequence B
// occurrence.
func validateC3SeqAExclusivity(m MT104) []primitives.SwiftError {
	for _, tx := range m.Transactions {
		if m.Field21E != nil && tx.Field21E != nil {
			return []primitives.SwiftError{contentError("C3", "21E", "field 21E must not be present in Sequence B when also present in Sequence A")}
		}
		if m.Field26T != nil && tx.Field26T != nil {
			return []primitives.SwiftError{contentError("C3", "26T", "field 26T must not be present in Sequence B when also present in Sequence A")}
		}
		if m.Field52 != nil && tx.Field52 != nil {
			return []primitives.SwiftError{contentError("C3", "52a", "field 52a must not be present in Sequence B when also present in Sequence A")}
		}
		if m.Field71A != nil && tx.Field71A != nil {
			return []primitives.SwiftError{contentError("C3", "71A", "field 71A must not be present in Sequence B when also present in Sequence A")}
		}
		if m.Field77B != nil && tx.Field77B != nil {
			return []primitives.SwiftError{contentError("C3", "77B", "field 77B must not be present in Sequence B when also present in Sequence A")}
		}
		if m.InstructingParty != nil && tx.InstructingParty != nil {
			return []primitives.SwiftError{contentError("C3", "50a", "field 50a (instructing party) must not be present in Sequence B when also present in Sequence A")}
		}
	}
	return nil
}

// C4: field 21E present in sequence A or a sequence B occurrence
// requires field 50a (A/K creditor) present in that same sequence.
func validateC4RequiresCreditor(m MT104) []primitives.SwiftError {
	if m.Field21E != nil && m.Creditor == nil {
		return []primitives.SwiftError{contentError("C4", "50a", "field 50a (creditor) is mandatory in Sequence A when field 21E is present")}
	}
	for _, tx := range m.Transactions {
		if tx.Field21E != nil && tx.Creditor == nil {
			return []primitives.SwiftError{contentError("C4", "50a", "field 50a (creditor) is mandatory in Sequence B when field 21E is present")}
		}
	}
	return nil
}

// C5: field 23E containing code RTND requires field 72 present.
func validateC5RTNDField72(m MT104) []primitives.SwiftError {
	isRTND := m.Field23E != nil && m.Field23E.InstructionCode == "RTND"
	if isRTND && m.Field72 == nil {
		return []primitives.SwiftError{contentError("C5", "72", "field 72 is mandatory when field 23E carries code RTND")}
	}
	if !isRTND && m.Field23E != nil && m.Field72 != nil {
		return []primitives.SwiftError{contentError("C5", "72", "field 72 is not allowed when field 23E does not carry code RTND")}
	}
	return nil
}

// C6: field 71F present in any sequence B occurrence requires field
// 71F in sequence C and vice versa; same for field 71G.
func validateC6SeqBCConsistency(m MT104) []primitives.SwiftError {
	var errs []primitives.SwiftError
	anyB71F, anyB71G := false, false
	for _, tx := range m.Transactions {
		if tx.Field71F != nil {
			anyB71F = true
		}
		if tx.Field71G != nil {
			anyB71G = true
		}
	}
	if anyB71F != (m.Field71F != nil) {
		errs = append(errs, contentError("C6", "71F", "field 71F in Sequence C must be present if and only if it is present in some Sequence B occurrence"))
	}
	if anyB71G != (m.Field71G != nil) {
		errs = append(errs, contentError("C6", "71G", "field 71G in Sequence C must be present if and only if it is present in some Sequence B occurrence"))
	}
	return errs
}

// C7: when present on a transaction, field 33B's currency or amount
// must differ from field 32B's.
func validateC7Field33BComparison(m MT104) []primitives.SwiftError {
	var errs []primitives.SwiftError
	for _, tx := range m.Transactions {
		if tx.Field33B == nil {
			continue
		}
		if tx.Field33B.Currency == tx.Field32B.Currency && tx.Field33B.Amount.Equal(tx.Field32B.Amount) {
			errs = append(errs, contentError("C7", "33B", "fields 33B and 32B must differ in currency or amount"))
		}
	}
	return errs
}

// C8: when field 33B's currency differs from field 32B's, field 36
// becomes mandatory; when the currencies match, field 36 is forbidden.
func validateC8CurrencyRequires36(m MT104) []primitives.SwiftError {
	var errs []primitives.SwiftError
	for _, tx := range m.Transactions {
		if tx.Field33B == nil {
			continue
		}
		if tx.Field33B.Currency != tx.Field32B.Currency {
			if tx.Field36 == nil {
				errs = append(errs, contentError("C8", "36", "field 36 is mandatory when fields 33B and 32B currencies differ"))
			}
		} else if tx.Field36 != nil {
			errs = append(errs, contentError("C8", "36", "field 36 is not allowed when fields 33B and 32B currencies match"))
		}
	}
	return errs
}

func (m MT104) sumOfTransactionAmounts() decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range m.Transactions {
		sum = sum.Add(tx.Field32B.Amount)
	}
	return sum
}

// C9: sequence C's field 32B amount equal to the sum of sequence B's
// 32B amounts forbids field 19; otherwise field 19 is mandatory.
func validateC9SeqCSumAbsent19(m MT104) []primitives.SwiftError {
	if m.Field32B == nil {
		return nil
	}
	sum := m.sumOfTransactionAmounts()
	if sum.Equal(m.Field32B.Amount) {
		if m.Field19 != nil {
			return []primitives.SwiftError{contentError("C9", "19", "field 19 is not allowed when Sequence C's field 32B equals the sum of Sequence B's amounts")}
		}
	} else if m.Field19 == nil {
		return []primitives.SwiftError{contentError("C9", "19", "field 19 is mandatory when Sequence C's field 32B differs from the sum of Sequence B's amounts")}
	}
	return nil
}

// C10: field 19, when present, must equal the sum of sequence B's
// field 32B amounts.
func validateC10Field19Sum(m MT104) []primitives.SwiftError {
	if m.Field19 == nil {
		return nil
	}
	sum := m.sumOfTransactionAmounts()
	if !sum.Equal(m.Field19.Amount) {
		return []primitives.SwiftError{contentError("C10", "19", "field 19 amount must equal the sum of Sequence B's field 32B amounts")}
	}
	return nil
}

// C12: field 23E containing code RFDD restricts sequence B (no 21E,
// 50a A/K, 52a, 71F, 71G) and forbids sequence C entirely; absent RFDD,
// field 21R must be absent whenever sequence C is present.
func validateC12RFDDRestrictions(m MT104) []primitives.SwiftError {
	if m.is23ERFDD() {
		for _, tx := range m.Transactions {
			if tx.Field21E != nil || tx.Creditor != nil || tx.Field52 != nil || tx.Field71F != nil || tx.Field71G != nil {
				return []primitives.SwiftError{contentError("C12", "21E", "Sequence B fields 21E, 50a (A/K), 52a, 71F and 71G are not allowed when field 23E carries code RFDD")}
			}
		}
		if m.Field32B != nil || m.Field19 != nil || m.Field71F != nil || m.Field71G != nil || m.Field53 != nil {
			return []primitives.SwiftError{contentError("C12", "32B", "Sequence C is not allowed when field 23E carries code RFDD")}
		}
		return nil
	}
	seqCPresent := m.Field32B != nil || m.Field19 != nil || m.Field71F != nil || m.Field71G != nil || m.Field53 != nil
	if seqCPresent && m.Field21R != nil {
		return []primitives.SwiftError{contentError("C12", "21R", "field 21R is not allowed when Sequence C is present")}
	}
	return nil
}
