package fields

import (
	"strconv"
	"strings"

	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// Field21R is the customer-specified reference shared by every
// transaction in an MT101 (16x), same shape as Field21.
type Field21R struct {
	Reference string
}

func ParseField21R(value string) (Field21R, error) {
	r, err := ParseField21(value)
	if err != nil {
		return Field21R{}, err
	}
	return Field21R(r), nil
}

func (f Field21R) ToWire() string { return f.Reference }

// Field21F is the foreign-exchange deal reference (16x), mandatory on
// a transaction whenever field 36 is present (MT101 rule C1).
type Field21F struct {
	Reference string
}

func ParseField21F(value string) (Field21F, error) {
	r, err := ParseField21(value)
	if err != nil {
		return Field21F{}, err
	}
	return Field21F(r), nil
}

func (f Field21F) ToWire() string { return f.Reference }

// Field28D is the message index/total for a chained MT101 set:
// `5n/5n`.
type Field28D struct {
	Index int
	Total int
}

func ParseField28D(value string) (Field28D, error) {
	parts := strings.SplitN(value, "/", 2)
	if len(parts) != 2 {
		return Field28D{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T50", Tag: "28D",
			Message: "Field 28D requires index/total",
		}
	}
	idx, err := strconv.Atoi(parts[0])
	if err != nil {
		return Field28D{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T50", Tag: "28D",
			Message: "Field 28D index must be numeric",
		}
	}
	total, err := strconv.Atoi(parts[1])
	if err != nil {
		return Field28D{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T50", Tag: "28D",
			Message: "Field 28D total must be numeric",
		}
	}
	return Field28D{Index: idx, Total: total}, nil
}

func (f Field28D) ToWire() string {
	return strconv.Itoa(f.Index) + "/" + strconv.Itoa(f.Total)
}

// Field25NoOption is the account-identification line (35x) used by
// MT101's sequence A.
type Field25NoOption struct {
	Account string
}

func ParseField25NoOption(value string) (Field25NoOption, error) {
	if len(value) == 0 || len(value) > 35 {
		return Field25NoOption{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T50", Tag: "25",
			Message: "Field 25 must be 1-35 characters",
		}
	}
	return Field25NoOption{Account: value}, nil
}

func (f Field25NoOption) ToWire() string { return f.Account }

// Field25A is the charges account line (`/34x`).
type Field25A struct {
	Account string
}

func ParseField25A(value string) (Field25A, error) {
	if !strings.HasPrefix(value, "/") {
		return Field25A{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T50", Tag: "25A",
			Message: "Field 25A must start with /",
		}
	}
	return Field25A{Account: strings.TrimPrefix(value, "/")}, nil
}

func (f Field25A) ToWire() string { return "/" + f.Account }

// Field50OrderingCustomerFGH is MT101's ordering-customer slot, a
// tagged union over options F (structured party identifier), G
// (account + BIC) and H (account + name/address). Same shapes as the
// MT103 A/F/K ordering-customer union, relettered per MT101's schema.
type Field50OrderingCustomerFGH struct {
	Opt     Option
	PartyID PartyIdentifierParty
	BIC     BICParty
	NameAdr NameAddressParty
}

func (f Field50OrderingCustomerFGH) ToWire() string {
	switch f.Opt {
	case OptionF:
		return f.PartyID.ToWire()
	case OptionG:
		return f.BIC.ToWire()
	case OptionH:
		return f.NameAdr.ToWire()
	default:
		return ""
	}
}

func ParseField50OrderingCustomerFGHWithVariant(value string, variant byte) (Field50OrderingCustomerFGH, error) {
	switch Option(variant) {
	case OptionF:
		p, err := parsePartyIdentifier(value)
		if err != nil {
			return Field50OrderingCustomerFGH{}, err
		}
		return Field50OrderingCustomerFGH{Opt: OptionF, PartyID: p}, nil
	case OptionG:
		p, err := ParseBICParty(value)
		if err != nil {
			return Field50OrderingCustomerFGH{}, err
		}
		return Field50OrderingCustomerFGH{Opt: OptionG, BIC: p}, nil
	case OptionH:
		p, err := ParseNameAddressParty(value)
		if err != nil {
			return Field50OrderingCustomerFGH{}, err
		}
		return Field50OrderingCustomerFGH{Opt: OptionH, NameAdr: p}, nil
	default:
		return Field50OrderingCustomerFGH{}, &primitives.SwiftError{
			Kind:    primitives.KindUnknownVariant,
			Message: "unsupported field 50 ordering customer option " + string(variant),
		}
	}
}
