package mt107

import (
	"github.com/shopspring/decimal"

	"github.com/deltran/swiftmt/internal/swiftmt/fields"
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
	"github.com/deltran/swiftmt/internal/swiftmt/validate"
)

// valid23ECodes are the legal field 23E instruction codes for MT107.
var valid23ECodes = map[string]bool{"AUTH": true, "NAUT": true, "OTHR": true, "RTND": true}

func contentError(code, tag, message string) primitives.SwiftError {
	return primitives.SwiftError{Kind: primitives.KindSwiftValidation, Code: code, Tag: tag, Message: message}
}

func formatError(code, tag, message string) primitives.SwiftError {
	return primitives.SwiftError{Kind: primitives.KindInvalidFormat, Code: code, Tag: tag, Message: message}
}

// Rules is the full ordered set of MT107 network validation rules,
// grounded on mt107.rs's validate_network_rules dispatch order.
var Rules = []validate.Rule[MT107]{
	{Name: "c1_23e_and_creditor_placement", Check: validateC1TwentyThreeEAndCreditorPlacement},
	{Name: "c03_amount_decimals", Check: validateC03AmountDecimals},
	{Name: "c2_seq_a_b_mutual_exclusivity", Check: validateC2SeqABMutualExclusivity},
	{Name: "c3_registration_creditor_dependency", Check: validateC3RegistrationCreditorDependency},
	{Name: "c4_rtnd_field_72_dependency", Check: validateC4RtndField72Dependency},
	{Name: "c5_charges_fields_consistency", Check: validateC5ChargesFieldsConsistency},
	{Name: "c6_field_33b_32b_comparison", Check: validateC6Field33B32BComparison},
	{Name: "c7_exchange_rate_dependency", Check: validateC7ExchangeRateDependency},
	{Name: "c8_sum_of_amounts", Check: validateC8SumOfAmounts},
	{Name: "c9_currency_consistency", Check: validateC9CurrencyConsistency},
	{Name: "field_23e", Check: validateField23E},
}

// ValidateNetworkRules runs every MT107 network validation rule.
func (m MT107) ValidateNetworkRules(stopOnFirstError bool) []primitives.SwiftError {
	return validate.Run(m, Rules, stopOnFirstError)
}

func (m MT107) has23EInAllSeqB() bool {
	if len(m.Transactions) == 0 {
		return false
	}
	for _, tx := range m.Transactions {
		if tx.Field23E == nil {
			return false
		}
	}
	return true
}

func (m MT107) has23EInAnySeqB() bool {
	for _, tx := range m.Transactions {
		if tx.Field23E != nil {
			return true
		}
	}
	return false
}

func (m MT107) hasCreditorInAllSeqB() bool {
	if len(m.Transactions) == 0 {
		return false
	}
	for _, tx := range m.Transactions {
		if tx.Creditor == nil {
			return false
		}
	}
	return true
}

func (m MT107) hasCreditorInAnySeqB() bool {
	for _, tx := range m.Transactions {
		if tx.Creditor != nil {
			return true
		}
	}
	return false
}

func (m MT107) hasInstructingPartyInAnySeqB() bool {
	for _, tx := range m.Transactions {
		if tx.InstructingParty != nil {
			return true
		}
	}
	return false
}

func (m MT107) has21EInAnySeqB() bool {
	for _, tx := range m.Transactions {
		if tx.Field21E != nil {
			return true
		}
	}
	return false
}

func (m MT107) has26TInAnySeqB() bool {
	for _, tx := range m.Transactions {
		if tx.Field26T != nil {
			return true
		}
	}
	return false
}

func (m MT107) has77BInAnySeqB() bool {
	for _, tx := range m.Transactions {
		if tx.Field77B != nil {
			return true
		}
	}
	return false
}

func (m MT107) has71AInAnySeqB() bool {
	for _, tx := range m.Transactions {
		if tx.Field71A != nil {
			return true
		}
	}
	return false
}

func (m MT107) has52InAnySeqB() bool {
	for _, tx := range m.Transactions {
		if tx.Field52 != nil {
			return true
		}
	}
	return false
}

func (m MT107) has71FInSeqB() bool {
	for _, tx := range m.Transactions {
		if tx.Field71F != nil {
			return true
		}
	}
	return false
}

func (m MT107) has71GInSeqB() bool {
	for _, tx := range m.Transactions {
		if tx.Field71G != nil {
			return true
		}
	}
	return false
}

// C1/D86: field 23E and the creditor slot of field 50 (A/K) must each
// appear either once in sequence A or in every sequence B occurrence,
// never a mix of both.
func validateC1TwentyThreeEAndCreditorPlacement(m MT107) []primitives.SwiftError {
	var errs []primitives.SwiftError

	hasA, allB, anyB := m.Field23E != nil, m.has23EInAllSeqB(), m.has23EInAnySeqB()
	switch {
	case hasA && anyB:
		errs = append(errs, contentError("D86", "23E", "field 23E must not be present in both Sequence A and Sequence B"))
	case !hasA && !allB:
		errs = append(errs, contentError("D86", "23E", "field 23E must be present either in Sequence A or in every Sequence B transaction"))
	}

	credA, credAllB, credAnyB := m.Creditor != nil, m.hasCreditorInAllSeqB(), m.hasCreditorInAnySeqB()
	switch {
	case credA && credAnyB:
		errs = append(errs, contentError("D86", "50a", "field 50a (Creditor A/K) must not be present in both Sequence A and Sequence B"))
	case !credA && !credAllB:
		errs = append(errs, contentError("D86", "50a", "field 50a (Creditor A/K) must be present either in Sequence A or in every Sequence B transaction"))
	}

	return errs
}

// C03: every amount (Sequence C field 32B, and each Sequence B
// transaction's 32B and 33B when present) must not carry more
// fractional digits than its currency's ISO 4217 precision allows.
// Checked at validation time so an over-precise amount still parses.
func validateC03AmountDecimals(m MT107) []primitives.SwiftError {
	var errs []primitives.SwiftError
	if err := primitives.ValidateAmountDecimals(m.Field32B.Amount, m.Field32B.Currency); err != nil {
		se := err.(*primitives.SwiftError)
		se.Tag = "32B"
		errs = append(errs, *se)
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

// C2/D73: fields 21E, 26T, 77B, 71A, 52a and field 50a (C/L) are
// mutually exclusive between sequence A and sequence B.
func validateC2SeqABMutualExclusivity(m MT107) []primitives.SwiftError {
	var errs []primitives.SwiftError
	if m.Field21E != nil && m.has21EInAnySeqB() {
		errs = append(errs, contentError("D73", "21E", "field 21E must not be present in both Sequence A and Sequence B"))
	}
	if m.Field26T != nil && m.has26TInAnySeqB() {
		errs = append(errs, contentError("D73", "26T", "field 26T must not be present in both Sequence A and Sequence B"))
	}
	if m.Field77B != nil && m.has77BInAnySeqB() {
		errs = append(errs, contentError("D73", "77B", "field 77B must not be present in both Sequence A and Sequence B"))
	}
	if m.Field71A != nil && m.has71AInAnySeqB() {
		errs = append(errs, contentError("D73", "71A", "field 71A must not be present in both Sequence A and Sequence B"))
	}
	if m.Field52 != nil && m.has52InAnySeqB() {
		errs = append(errs, contentError("D73", "52a", "field 52a must not be present in both Sequence A and Sequence B"))
	}
	if m.InstructingParty != nil && m.hasInstructingPartyInAnySeqB() {
		errs = append(errs, contentError("D73", "50a", "field 50a (Instructing Party C/L) must not be present in both Sequence A and Sequence B"))
	}
	return errs
}

// C3/D77: field 21E present implies field 50a (Creditor A/K) present
// in the same sequence.
func validateC3RegistrationCreditorDependency(m MT107) []primitives.SwiftError {
	var errs []primitives.SwiftError
	if m.Field21E != nil && m.Creditor == nil {
		errs = append(errs, contentError("D77", "50a", "field 50a (Creditor A/K) is mandatory in Sequence A when field 21E is present"))
	}
	for _, tx := range m.Transactions {
		if tx.Field21E != nil && tx.Creditor == nil {
			errs = append(errs, contentError("D77", "50a", "field 50a (Creditor A/K) is mandatory in a transaction when field 21E is present"))
		}
	}
	return errs
}

// C4/C82: field 23E RTND in sequence A requires field 72; any other
// case forbids field 72.
func validateC4RtndField72Dependency(m MT107) []primitives.SwiftError {
	if m.Field23E != nil {
		isRTND := m.Field23E.InstructionCode == "RTND"
		if isRTND && m.Field72 == nil {
			return []primitives.SwiftError{contentError("C82", "72", "field 72 is mandatory when field 23E contains code RTND")}
		}
		if !isRTND && m.Field72 != nil {
			return []primitives.SwiftError{contentError("C82", "72", "field 72 is not allowed when field 23E does not contain code RTND")}
		}
	} else if m.Field72 != nil {
		return []primitives.SwiftError{contentError("C82", "72", "field 72 is not allowed when field 23E is not present in Sequence A")}
	}
	return nil
}

// C5/D79: fields 71F and 71G present in sequence B require presence
// in sequence C, and vice versa.
func validateC5ChargesFieldsConsistency(m MT107) []primitives.SwiftError {
	var errs []primitives.SwiftError
	has71FB, has71FC := m.has71FInSeqB(), m.Field71F != nil
	if has71FB && !has71FC {
		errs = append(errs, contentError("D79", "71F", "field 71F is mandatory in Sequence C when present in Sequence B"))
	}
	if has71FC && !has71FB {
		errs = append(errs, contentError("D79", "71F", "field 71F is not allowed in Sequence C when not present in Sequence B"))
	}
	has71GB, has71GC := m.has71GInSeqB(), m.Field71G != nil
	if has71GB && !has71GC {
		errs = append(errs, contentError("D79", "71G", "field 71G is mandatory in Sequence C when present in Sequence B"))
	}
	if has71GC && !has71GB {
		errs = append(errs, contentError("D79", "71G", "field 71G is not allowed in Sequence C when not present in Sequence B"))
	}
	return errs
}

// C6/D21: if 33B is present, currency or amount must differ from 32B.
func validateC6Field33B32BComparison(m MT107) []primitives.SwiftError {
	var errs []primitives.SwiftError
	for _, tx := range m.Transactions {
		if tx.Field33B == nil {
			continue
		}
		if tx.Field33B.Currency == tx.Field32B.Currency && tx.Field33B.Amount.Equal(tx.Field32B.Amount) {
			errs = append(errs, contentError("D21", "33B", "field 33B must have different currency code or amount from field 32B"))
		}
	}
	return errs
}

// C7/D75: differing 32B/33B currencies require field 36; matching
// currencies forbid it.
func validateC7ExchangeRateDependency(m MT107) []primitives.SwiftError {
	var errs []primitives.SwiftError
	for _, tx := range m.Transactions {
		if tx.Field33B == nil {
			if tx.Field36 != nil {
				errs = append(errs, contentError("D75", "36", "field 36 is not allowed when field 33B is not present"))
			}
			continue
		}
		if tx.Field33B.Currency != tx.Field32B.Currency {
			if tx.Field36 == nil {
				errs = append(errs, contentError("D75", "36", "field 36 is mandatory when field 33B currency differs from field 32B"))
			}
		} else if tx.Field36 != nil {
			errs = append(errs, contentError("D75", "36", "field 36 is not allowed when field 33B currency equals field 32B"))
		}
	}
	return errs
}

// C8/D80/C01: the sum of sequence B amounts must land in sequence C's
// field 19 (when charges are present) or field 32B (when they aren't).
func validateC8SumOfAmounts(m MT107) []primitives.SwiftError {
	if len(m.Transactions) == 0 {
		return nil
	}
	sum := decimal.Zero
	for _, tx := range m.Transactions {
		sum = sum.Add(tx.Field32B.Amount)
	}
	hasCharges := m.has71FInSeqB() || m.has71GInSeqB()

	if hasCharges {
		if m.Field19 == nil {
			return []primitives.SwiftError{contentError("D80", "19", "field 19 is mandatory when charges are present in Sequence B")}
		}
		if !m.Field19.Amount.Equal(sum) {
			return []primitives.SwiftError{contentError("C01", "19", "field 19 must equal the sum of amounts in field 32B of Sequence B")}
		}
		return nil
	}

	var errs []primitives.SwiftError
	if !m.Field32B.Amount.Equal(sum) {
		errs = append(errs, contentError("D80", "32B", "Sequence C field 32B amount must equal the sum of amounts in Sequence B field 32B when no charges are included"))
	}
	if m.Field19 != nil {
		errs = append(errs, contentError("D80", "19", "field 19 must not be present when no charges are included in Sequence B"))
	}
	return errs
}

// C9/C02: 32B/71F/71G currencies must agree across sequences B and C.
func validateC9CurrencyConsistency(m MT107) []primitives.SwiftError {
	if len(m.Transactions) == 0 {
		return nil
	}
	var errs []primitives.SwiftError
	settlementCurrency := m.Field32B.Currency
	var ref71F, ref71G string
	if m.Field71F != nil {
		ref71F = m.Field71F.Currency
	}
	if m.Field71G != nil {
		ref71G = m.Field71G.Currency
	}

	for _, tx := range m.Transactions {
		if tx.Field32B.Currency != settlementCurrency {
			errs = append(errs, contentError("C02", "32B", "currency code in field 32B must be the same for all occurrences in Sequences B and C"))
		}
		if tx.Field71F != nil && ref71F != "" && tx.Field71F.Currency != ref71F {
			errs = append(errs, contentError("C02", "71F", "currency code in field 71F must be the same for all occurrences in Sequences B and C"))
		}
		if tx.Field71G != nil {
			if tx.Field71G.Currency != settlementCurrency {
				errs = append(errs, contentError("C02", "71G", "currency code in field 71G must be the same as in Sequence C"))
			}
			if ref71G != "" && tx.Field71G.Currency != ref71G {
				errs = append(errs, contentError("C02", "71G", "currency code in field 71G must be the same for all occurrences in Sequences B and C"))
			}
		}
	}
	return errs
}

// T47/D81: instruction code validity and the OTHR-only additional
// information restriction, checked in both sequence A and sequence B.
func validateField23E(m MT107) []primitives.SwiftError {
	var errs []primitives.SwiftError
	check := func(e *fields.Field23E) {
		if e == nil {
			return
		}
		if !valid23ECodes[e.InstructionCode] {
			errs = append(errs, formatError("T47", "23E", "instruction code '"+e.InstructionCode+"' is not valid for MT107"))
		}
		if e.HasAdditional && e.InstructionCode != "OTHR" {
			errs = append(errs, contentError("D81", "23E", "additional information is only allowed for code OTHR"))
		}
	}
	check(m.Field23E)
	for _, tx := range m.Transactions {
		check(tx.Field23E)
	}
	return errs
}
