package fields

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// Field28C is the statement/sequence number: `5n[/5n]`.
type Field28C struct {
	Statement int
	Sequence  int // zero when absent
	HasSeq    bool
}

func ParseField28C(value string) (Field28C, error) {
	parts := strings.SplitN(value, "/", 2)
	stmt, err := strconv.Atoi(parts[0])
	if err != nil {
		return Field28C{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T50", Tag: "28C",
			Message: "statement number must be numeric",
		}
	}
	f := Field28C{Statement: stmt}
	if len(parts) == 2 {
		seq, err := strconv.Atoi(parts[1])
		if err != nil {
			return Field28C{}, &primitives.SwiftError{
				Kind: primitives.KindInvalidFormat, Code: "T50", Tag: "28C",
				Message: "sequence number must be numeric",
			}
		}
		f.Sequence, f.HasSeq = seq, true
	}
	return f, nil
}

func (f Field28C) ToWire() string {
	s := strconv.Itoa(f.Statement)
	if f.HasSeq {
		s += "/" + strconv.Itoa(f.Sequence)
	}
	return s
}

// Field86 is information to account owner: up to 6 lines of 65x,
// attached to a preceding Field61 statement line or trailing a
// statement's closing balance.
type Field86 struct {
	Lines []string
}

func ParseField86(value string) (Field86, error) {
	lines, err := parseNarrativeLines(value, 6, 65, "86")
	if err != nil {
		return Field86{}, err
	}
	return Field86{Lines: lines}, nil
}

func (f Field86) ToWire() string { return strings.Join(f.Lines, "\n") }

// Field61 is a statement line: value date, optional entry date, D/C
// mark, amount, transaction type plus identification code, the
// account owner's reference and an optional supplementary /34x/.
// Grounded on the SWIFT category 9 statement-line shape described
// structurally alongside the BalanceField codec.
type Field61 struct {
	ValueDate       time.Time
	EntryDate        time.Time // zero when absent
	HasEntryDate     bool
	Mark             byte // 'D', 'C', 'RD' or 'RC' collapsed to base mark with Reversal set
	Reversal         bool
	Amount           decimal.Decimal
	RawAmount        string
	TransactionType  string // e.g. "NMSC", "NTRF"
	Reference        string // customer reference
	BankReference    string // empty when absent
	HasBankRef       bool
	Supplementary    string // empty when absent
	HasSupplementary bool
}

func ParseField61(value string) (Field61, error) {
	if len(value) < 6 {
		return Field61{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T50", Tag: "61",
			Message: "field 61 is too short",
		}
	}
	rest := value
	valueDate, err := primitives.ParseDateYYMMDD(rest[0:6])
	if err != nil {
		return Field61{}, err
	}
	rest = rest[6:]

	f := Field61{ValueDate: valueDate}
	if len(rest) >= 4 && primitives.ClassN(rest[0:4]) {
		entryDate, err := primitives.ParseDateMMDD(rest[0:4], valueDate.Year())
		if err == nil {
			f.EntryDate, f.HasEntryDate = entryDate, true
			rest = rest[4:]
		}
	}

	if len(rest) == 0 {
		return Field61{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T51", Tag: "61",
			Message: "missing debit/credit mark",
		}
	}
	switch {
	case strings.HasPrefix(rest, "RD"):
		f.Mark, f.Reversal, rest = 'D', true, rest[2:]
	case strings.HasPrefix(rest, "RC"):
		f.Mark, f.Reversal, rest = 'C', true, rest[2:]
	case rest[0] == 'D' || rest[0] == 'C':
		f.Mark, rest = rest[0], rest[1:]
	default:
		return Field61{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidValue, Code: "T51", Tag: "61",
			Message: "debit/credit mark must be D, C, RD or RC",
		}
	}

	// The amount runs until the first non-digit, non-comma character
	// (the transaction type's leading letter); field 61 never carries
	// a distinct funds-code character between mark and amount.
	amountEnd := 0
	for amountEnd < len(rest) && (rest[amountEnd] == ',' || (rest[amountEnd] >= '0' && rest[amountEnd] <= '9')) {
		amountEnd++
	}
	if amountEnd == 0 {
		return Field61{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T51", Tag: "61",
			Message: "missing amount",
		}
	}
	f.RawAmount = rest[:amountEnd]
	f.Amount, err = primitives.ParseAmount(f.RawAmount)
	if err != nil {
		return Field61{}, err
	}
	rest = rest[amountEnd:]

	if len(rest) < 4 {
		return Field61{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T51", Tag: "61",
			Message: "missing transaction type code",
		}
	}
	f.TransactionType = rest[:4]
	rest = rest[4:]

	parts := strings.SplitN(rest, "//", 2)
	f.Reference = parts[0]
	if len(parts) == 2 {
		bankAndSupp := strings.SplitN(parts[1], "\n", 2)
		f.BankReference, f.HasBankRef = bankAndSupp[0], true
		if len(bankAndSupp) == 2 {
			f.Supplementary, f.HasSupplementary = bankAndSupp[1], true
		}
	}
	return f, nil
}

func (f Field61) ToWire() string {
	var b strings.Builder
	b.WriteString(f.ValueDate.Format("060102"))
	if f.HasEntryDate {
		b.WriteString(f.EntryDate.Format("0102"))
	}
	if f.Reversal {
		b.WriteByte('R')
	}
	b.WriteByte(f.Mark)
	amountWire := f.RawAmount
	if reparsed, err := primitives.ParseAmount(f.RawAmount); err != nil || !reparsed.Equal(f.Amount) {
		amountWire = primitives.FormatAmount(f.Amount)
	}
	b.WriteString(amountWire)
	b.WriteString(f.TransactionType)
	b.WriteString(f.Reference)
	if f.HasBankRef {
		b.WriteString("//")
		b.WriteString(f.BankReference)
	}
	if f.HasSupplementary {
		b.WriteString("\n")
		b.WriteString(f.Supplementary)
	}
	return b.String()
}

// Field23RateChange is MT935's "further identification" slot,
// free-format text naming the market or reference rate being
// announced (used when no specific account is being notified).
type Field23RateChange struct {
	Content string
}

func ParseField23RateChange(value string) (Field23RateChange, error) {
	if len(value) == 0 || len(value) > 30 {
		return Field23RateChange{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T33", Tag: "23",
			Message: "field 23 must be 1-30 characters",
		}
	}
	return Field23RateChange{Content: value}, nil
}

func (f Field23RateChange) ToWire() string { return f.Content }

// Field37H is the new interest rate: `1!a[n]12d` (D/C mark then rate).
// The optional N (negative) indicator is not accepted: the rate must
// follow the mark directly.
type Field37H struct {
	Mark byte
	Rate decimal.Decimal
	Raw  string
}

func ParseField37H(value string) (Field37H, error) {
	if len(value) == 0 {
		return Field37H{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T50", Tag: "37H",
			Message: "field 37H is empty",
		}
	}
	mark := value[0]
	if mark != 'D' && mark != 'C' {
		return Field37H{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidValue, Code: "T51", Tag: "37H",
			Message: "rate mark must be D or C",
		}
	}
	raw := value[1:]
	rate, err := primitives.ParseAmount(raw)
	if err != nil {
		return Field37H{}, err
	}
	return Field37H{Mark: mark, Rate: rate, Raw: raw}, nil
}

func (f Field37H) ToWire() string {
	raw := f.Raw
	if reparsed, err := primitives.ParseAmount(f.Raw); err != nil || !reparsed.Equal(f.Rate) {
		raw = primitives.FormatAmount(f.Rate)
	}
	return string(f.Mark) + raw
}
