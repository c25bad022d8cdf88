package fields

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/deltran/swiftmt/internal/swiftmt/format"
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// field32ASpec is 32A's compact format spec: value date, currency,
// amount. Compiled once so ParseField32A/Field32A.ToWire never
// hand-slice fixed offsets.
var field32ASpec = format.MustCompile("6!n3!a15d")

// Field32A is value date, currency and amount: `6!n3!a15d`. Grounded on
// original_source/swift-mt-message/src/fields/field32a.rs and the
// teacher's own parseField32A in internal/swift/parser.go. Stores both
// the parsed Decimal and the original wire text of the amount so
// ToWire can reproduce it byte-for-byte when unchanged.
type Field32A struct {
	ValueDate time.Time
	Currency  string
	Amount    decimal.Decimal
	RawAmount string
}

// ParseField32A matches the value against the 32A format spec only;
// it never checks the amount's decimal precision against the
// currency. That is a network-validation concern (C03), not a
// structural one, so a JPY amount with two decimals parses here and
// is only flagged when ValidateNetworkRules runs.
func ParseField32A(value string) (Field32A, error) {
	comps, ok := field32ASpec.Match(value)
	if !ok {
		return Field32A{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T50", Tag: "32A",
			Message: "Field 32A does not match format 6!n3!a15d",
		}
	}
	date, err := primitives.ParseDateYYMMDD(comps[0])
	if err != nil {
		return Field32A{}, err
	}
	currency, err := primitives.ParseCurrencyNonCommodity(comps[1])
	if err != nil {
		return Field32A{}, err
	}
	rawAmount := comps[2]
	amount, err := primitives.ParseAmount(rawAmount)
	if err != nil {
		return Field32A{}, err
	}
	return Field32A{ValueDate: date, Currency: currency, Amount: amount, RawAmount: rawAmount}, nil
}

func (f Field32A) ToWire() string {
	amountWire := f.RawAmount
	if reparsed, err := primitives.ParseAmount(f.RawAmount); err != nil || !reparsed.Equal(f.Amount) {
		amountWire = primitives.FormatAmount(f.Amount)
	}
	return f.ValueDate.Format("060102") + f.Currency + amountWire
}

// field32BSpec is 32B/33B/71F/71G's shared format spec: currency then
// amount, no date.
var field32BSpec = format.MustCompile("3!a15d")

// Field32B is settlement currency and amount (no date): `3!a15d`, used
// by MT107/MT104 sequence C and per-transaction amounts.
type Field32B struct {
	Currency  string
	Amount    decimal.Decimal
	RawAmount string
}

// ParseField32B matches the value against the 3!a15d format spec and
// parses the amount structurally; currency-decimal precision (C03) is
// checked only at network-validation time, not here.
func ParseField32B(value string) (Field32B, error) {
	comps, ok := field32BSpec.Match(value)
	if !ok {
		return Field32B{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T50", Tag: "32B",
			Message: "Field 32B does not match format 3!a15d",
		}
	}
	currency, err := primitives.ParseCurrencyNonCommodity(comps[0])
	if err != nil {
		return Field32B{}, err
	}
	rawAmount := comps[1]
	amount, err := primitives.ParseAmount(rawAmount)
	if err != nil {
		return Field32B{}, err
	}
	return Field32B{Currency: currency, Amount: amount, RawAmount: rawAmount}, nil
}

func (f Field32B) ToWire() string {
	amountWire := f.RawAmount
	if reparsed, err := primitives.ParseAmount(f.RawAmount); err != nil || !reparsed.Equal(f.Amount) {
		amountWire = primitives.FormatAmount(f.Amount)
	}
	return f.Currency + amountWire
}

// Field33B is instructed currency and amount (`3!a15d`), network-
// validated against 32A's currency by rule C1/D75.
type Field33B struct {
	Currency  string
	Amount    decimal.Decimal
	RawAmount string
}

func ParseField33B(value string) (Field33B, error) {
	b, err := ParseField32B(value)
	if err != nil {
		return Field33B{}, err
	}
	return Field33B(b), nil
}

func (f Field33B) ToWire() string { return Field32B(f).ToWire() }

// Field36 is an exchange rate (`12d`).
type Field36 struct {
	Rate decimal.Decimal
	Raw  string
}

func ParseField36(value string) (Field36, error) {
	rate, err := primitives.ParseAmount(value)
	if err != nil {
		return Field36{}, err
	}
	return Field36{Rate: rate, Raw: value}, nil
}

func (f Field36) ToWire() string {
	if reparsed, err := primitives.ParseAmount(f.Raw); err == nil && reparsed.Equal(f.Rate) {
		return f.Raw
	}
	return primitives.FormatAmount(f.Rate)
}

// Field71A is the details-of-charges code (`3!a`): OUR, SHA or BEN.
type Field71A struct {
	Code string
}

func ParseField71A(value string) (Field71A, error) {
	if len(value) != 3 || !primitives.ClassA(value) {
		return Field71A{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T36", Tag: "71A",
			Message: "Details of charges code must be exactly 3 letters",
		}
	}
	return Field71A{Code: value}, nil
}

func (f Field71A) ToWire() string { return f.Code }

// Field71F is the sender's charges amount (`3!a15d`), repeatable.
type Field71F struct {
	Currency  string
	Amount    decimal.Decimal
	RawAmount string
}

func ParseField71F(value string) (Field71F, error) {
	b, err := ParseField32B(value)
	if err != nil {
		return Field71F{}, err
	}
	return Field71F(b), nil
}

func (f Field71F) ToWire() string { return Field32B(f).ToWire() }

// Field71G is the receiver's charges amount (`3!a15d`).
type Field71G struct {
	Currency  string
	Amount    decimal.Decimal
	RawAmount string
}

func ParseField71G(value string) (Field71G, error) {
	b, err := ParseField32B(value)
	if err != nil {
		return Field71G{}, err
	}
	return Field71G(b), nil
}

func (f Field71G) ToWire() string { return Field32B(f).ToWire() }

// Field19 is the sum-of-amounts field used by MT107/MT104 sequence C
// (`17d`, no currency — the currency is implied by sequence C's 32B).
type Field19 struct {
	Amount    decimal.Decimal
	RawAmount string
}

func ParseField19(value string) (Field19, error) {
	amount, err := primitives.ParseAmount(value)
	if err != nil {
		return Field19{}, err
	}
	return Field19{Amount: amount, RawAmount: value}, nil
}

func (f Field19) ToWire() string {
	if reparsed, err := primitives.ParseAmount(f.RawAmount); err == nil && reparsed.Equal(f.Amount) {
		return f.RawAmount
	}
	return primitives.FormatAmount(f.Amount)
}
