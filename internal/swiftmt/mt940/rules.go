package mt940

import (
	"github.com/deltran/swiftmt/internal/swiftmt/fields"
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
	"github.com/deltran/swiftmt/internal/swiftmt/validate"
)

func contentError(code, tag, message string) primitives.SwiftError {
	return primitives.SwiftError{Kind: primitives.KindSwiftValidation, Code: code, Tag: tag, Message: message}
}

// Rules is the ordered set of MT940 network validation rules. No
// original-source reference exists for this message type, so these
// rules are grounded on the general balance-arithmetic invariants the
// SWIFT category 9 statement family describes: a statement's opening
// and closing balances must share a currency, and every intervening
// statement line's currency must match that currency.
var Rules = []validate.Rule[MT940]{
	{Name: "c03_amount_decimals", Check: validateC03AmountDecimals},
	{Name: "c1_balance_currency_consistency", Check: validateC1BalanceCurrencyConsistency},
	{Name: "c2_statement_number_present", Check: validateC2StatementNumberNonNegative},
}

// C03: every balance field's amount must not carry more fractional
// digits than its currency's ISO 4217 precision allows. Checked at
// validation time so an over-precise amount still parses.
func validateC03AmountDecimals(m MT940) []primitives.SwiftError {
	var errs []primitives.SwiftError
	check := func(b *fields.BalanceField, tag string) {
		if b == nil {
			return
		}
		if err := primitives.ValidateAmountDecimals(b.Amount, b.Currency); err != nil {
			se := err.(*primitives.SwiftError)
			se.Tag = tag
			errs = append(errs, *se)
		}
	}
	check(m.openingBalance(), "60a")
	check(m.closingBalance(), "62a")
	if m.Field64 != nil {
		check(&m.Field64.BalanceField, "64")
	}
	for i := range m.Field65 {
		check(&m.Field65[i].BalanceField, "65")
	}
	return errs
}

// ValidateNetworkRules runs every MT940 network validation rule.
func (m MT940) ValidateNetworkRules(stopOnFirstError bool) []primitives.SwiftError {
	return validate.Run(m, Rules, stopOnFirstError)
}

func (m MT940) openingBalance() *fields.BalanceField {
	switch {
	case m.OpeningF != nil:
		return &m.OpeningF.BalanceField
	case m.OpeningM != nil:
		return &m.OpeningM.BalanceField
	}
	return nil
}

func (m MT940) closingBalance() *fields.BalanceField {
	switch {
	case m.ClosingF != nil:
		return &m.ClosingF.BalanceField
	case m.ClosingM != nil:
		return &m.ClosingM.BalanceField
	}
	return nil
}

// C1: the opening and closing balance currencies must match, and every
// statement line must carry an amount in that same currency context
// (statement lines do not carry their own currency code, so this rule
// only enforces the balance pair).
func validateC1BalanceCurrencyConsistency(m MT940) []primitives.SwiftError {
	opening, closing := m.openingBalance(), m.closingBalance()
	if opening == nil || closing == nil {
		return nil
	}
	if opening.Currency != closing.Currency {
		return []primitives.SwiftError{contentError("C1", "62a", "closing balance currency must match opening balance currency")}
	}
	return nil
}

// C2: the statement number in field 28C must be positive.
func validateC2StatementNumberNonNegative(m MT940) []primitives.SwiftError {
	if m.Field28C.Statement <= 0 {
		return []primitives.SwiftError{contentError("C2", "28C", "statement number must be positive")}
	}
	return nil
}
