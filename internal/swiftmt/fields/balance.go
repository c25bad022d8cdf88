package fields

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/deltran/swiftmt/internal/swiftmt/format"
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// balanceFieldSpec is the shared 60F/60M/62F/62M/64/65 format spec:
// debit/credit mark, date, currency, amount.
var balanceFieldSpec = format.MustCompile("1!a6!n3!a15d")

// BalanceField is the shared shape of the MT940 balance fields
// (60F/60M opening balance, 62F/62M closing balance, 64 closing
// available balance, 65 forward available balance): `1!a6!n3!a15d`
// (debit/credit mark, date, currency, amount).
type BalanceField struct {
	Mark      byte // 'D' or 'C'
	Date      time.Time
	Currency  string
	Amount    decimal.Decimal
	RawAmount string
}

// parseBalanceField matches value against the shared balance format
// spec and parses the amount structurally. Currency-decimal precision
// (C03) is a network-validation concern and is not checked here.
func parseBalanceField(value, tag string) (BalanceField, error) {
	comps, ok := balanceFieldSpec.Match(value)
	if !ok {
		return BalanceField{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T50", Tag: tag,
			Message: "balance field does not match format 1!a6!n3!a15d",
		}
	}
	mark := comps[0][0]
	if mark != 'D' && mark != 'C' {
		return BalanceField{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidValue, Code: "T51", Tag: tag,
			Message: "debit/credit mark must be D or C",
		}
	}
	date, err := primitives.ParseDateYYMMDD(comps[1])
	if err != nil {
		return BalanceField{}, err
	}
	currency, err := primitives.ParseCurrency(comps[2])
	if err != nil {
		return BalanceField{}, err
	}
	rawAmount := comps[3]
	amount, err := primitives.ParseAmount(rawAmount)
	if err != nil {
		return BalanceField{}, err
	}
	return BalanceField{Mark: mark, Date: date, Currency: currency, Amount: amount, RawAmount: rawAmount}, nil
}

func (f BalanceField) ToWire() string {
	amountWire := f.RawAmount
	if reparsed, err := primitives.ParseAmount(f.RawAmount); err != nil || !reparsed.Equal(f.Amount) {
		amountWire = primitives.FormatAmount(f.Amount)
	}
	return string(f.Mark) + f.Date.Format("060102") + f.Currency + amountWire
}

// Field60F / Field60M are the opening-balance slots (final vs.
// intermediate statement opening), identical shape.
type Field60F struct{ BalanceField }
type Field60M struct{ BalanceField }

func ParseField60F(value string) (Field60F, error) {
	b, err := parseBalanceField(value, "60F")
	return Field60F{b}, err
}

func ParseField60M(value string) (Field60M, error) {
	b, err := parseBalanceField(value, "60M")
	return Field60M{b}, err
}

// Field62F / Field62M are the closing-balance slots.
type Field62F struct{ BalanceField }
type Field62M struct{ BalanceField }

func ParseField62F(value string) (Field62F, error) {
	b, err := parseBalanceField(value, "62F")
	return Field62F{b}, err
}

func ParseField62M(value string) (Field62M, error) {
	b, err := parseBalanceField(value, "62M")
	return Field62M{b}, err
}

// Field64 is the closing available balance.
type Field64 struct{ BalanceField }

func ParseField64(value string) (Field64, error) {
	b, err := parseBalanceField(value, "64")
	return Field64{b}, err
}

// Field65 is a forward available balance, repeatable.
type Field65 struct{ BalanceField }

func ParseField65(value string) (Field65, error) {
	b, err := parseBalanceField(value, "65")
	return Field65{b}, err
}
