package fields

import (
	"strings"

	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// PartyIdentifierParty is field 50 option F's structured shape: a set
// of numbered narrative lines ("1/name", "2/address line", ...) used
// when a full postal/identification breakdown is required instead of
// a bare account and BIC.
type PartyIdentifierParty struct {
	PartyIdentifier string // unprefixed account/identifier, from a first line starting with "/"
	Lines           []string
}

func parsePartyIdentifier(value string) (PartyIdentifierParty, error) {
	lines := strings.Split(value, "\n")
	if len(lines) == 0 {
		return PartyIdentifierParty{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T33",
			Message: "Field 50F requires at least one line",
		}
	}
	p := PartyIdentifierParty{}
	first := lines[0]
	if strings.HasPrefix(first, "/") {
		p.PartyIdentifier = strings.TrimPrefix(first, "/")
		lines = lines[1:]
	}
	p.Lines = lines
	return p, nil
}

func (p PartyIdentifierParty) ToWire() string {
	var b strings.Builder
	if p.PartyIdentifier != "" {
		b.WriteString("/")
		b.WriteString(p.PartyIdentifier)
		if len(p.Lines) > 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString(strings.Join(p.Lines, "\n"))
	return b.String()
}

// Field50OrderingCustomerAFK is the ordering-customer slot, a tagged
// union over options A (account+BIC), F (structured party identifier)
// and K (account + name/address). Grounded on the institution-field
// pattern in field58a.rs and the distilled spec's description of
// Field50 as a tagged union.
type Field50OrderingCustomerAFK struct {
	Opt     Option
	BIC     BICParty
	PartyID PartyIdentifierParty
	NameAdr NameAddressParty
}

func (f Field50OrderingCustomerAFK) ToWire() string {
	switch f.Opt {
	case OptionA:
		return f.BIC.ToWire()
	case OptionF:
		return f.PartyID.ToWire()
	case OptionK:
		return f.NameAdr.ToWire()
	default:
		return ""
	}
}

// ParseField50OrderingCustomerWithVariant parses an ordering-customer
// value for the given option letter (A, F or K).
func ParseField50OrderingCustomerWithVariant(value string, variant byte) (Field50OrderingCustomerAFK, error) {
	switch Option(variant) {
	case OptionA:
		p, err := ParseBICParty(value)
		if err != nil {
			return Field50OrderingCustomerAFK{}, err
		}
		return Field50OrderingCustomerAFK{Opt: OptionA, BIC: p}, nil
	case OptionF:
		p, err := parsePartyIdentifier(value)
		if err != nil {
			return Field50OrderingCustomerAFK{}, err
		}
		return Field50OrderingCustomerAFK{Opt: OptionF, PartyID: p}, nil
	case OptionK:
		p, err := ParseNameAddressParty(value)
		if err != nil {
			return Field50OrderingCustomerAFK{}, err
		}
		return Field50OrderingCustomerAFK{Opt: OptionK, NameAdr: p}, nil
	default:
		return Field50OrderingCustomerAFK{}, &primitives.SwiftError{
			Kind:    primitives.KindUnknownVariant,
			Message: "unsupported field 50 ordering customer option " + string(variant),
		}
	}
}

// Field50Creditor is the MT107/MT104 creditor slot, restricted to
// options A and K (no free-text option F in the direct-debit family).
type Field50Creditor struct {
	Opt     Option
	BIC     BICParty
	NameAdr NameAddressParty
}

func (f Field50Creditor) ToWire() string {
	if f.Opt == OptionA {
		return f.BIC.ToWire()
	}
	return f.NameAdr.ToWire()
}

func ParseField50CreditorWithVariant(value string, variant byte) (Field50Creditor, error) {
	switch Option(variant) {
	case OptionA:
		p, err := ParseBICParty(value)
		if err != nil {
			return Field50Creditor{}, err
		}
		return Field50Creditor{Opt: OptionA, BIC: p}, nil
	case OptionK:
		p, err := ParseNameAddressParty(value)
		if err != nil {
			return Field50Creditor{}, err
		}
		return Field50Creditor{Opt: OptionK, NameAdr: p}, nil
	default:
		return Field50Creditor{}, &primitives.SwiftError{
			Kind:    primitives.KindUnknownVariant,
			Message: "unsupported field 50 creditor option " + string(variant),
		}
	}
}

// Field50InstructingParty is the MT107/MT104 instructing-party slot,
// restricted to options C (BIC only) and L (account only).
type Field50InstructingParty struct {
	Opt     Option
	BIC     primitives.BIC
	Account string
}

func (f Field50InstructingParty) ToWire() string {
	if f.Opt == OptionC {
		return f.BIC.String()
	}
	return f.Account
}

func ParseField50InstructingPartyWithVariant(value string, variant byte) (Field50InstructingParty, error) {
	switch Option(variant) {
	case OptionC:
		bic, err := primitives.ParseBIC(value)
		if err != nil {
			return Field50InstructingParty{}, err
		}
		return Field50InstructingParty{Opt: OptionC, BIC: bic}, nil
	case OptionL:
		return Field50InstructingParty{Opt: OptionL, Account: value}, nil
	default:
		return Field50InstructingParty{}, &primitives.SwiftError{
			Kind:    primitives.KindUnknownVariant,
			Message: "unsupported field 50 instructing party option " + string(variant),
		}
	}
}
