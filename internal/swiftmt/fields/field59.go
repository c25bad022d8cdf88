package fields

import "github.com/deltran/swiftmt/internal/swiftmt/primitives"

// Field59 is the beneficiary customer slot: a tagged union over the
// bare tag "59" (account + name/address, no BIC), option A
// (account + BIC) and option F (structured party identifier).
// Grounded on the distilled spec's explicit description of Field59 as
// NoOption/A/F, mirrored from the Field50/institution pattern above.
type Field59 struct {
	Opt     Option // OptionNone, OptionA or OptionF
	NoOpt   NameAddressParty
	BIC     BICParty
	PartyID PartyIdentifierParty
}

func (f Field59) ToWire() string {
	switch f.Opt {
	case OptionA:
		return f.BIC.ToWire()
	case OptionF:
		return f.PartyID.ToWire()
	default:
		return f.NoOpt.ToWire()
	}
}

// HasAccount reports whether this beneficiary carries an explicit
// account subfield, used by the CHQB (E18) network validation rule.
// Option F never carries an account subfield.
func (f Field59) HasAccount() bool {
	switch f.Opt {
	case OptionA:
		return f.BIC.Account != ""
	case OptionF:
		return false
	default:
		return f.NoOpt.Account != ""
	}
}

// ParseField59WithVariant parses a beneficiary-customer value. variant
// is 0 for the bare tag, 'A' or 'F' for the lettered options.
func ParseField59WithVariant(value string, variant byte) (Field59, error) {
	switch variant {
	case 0:
		p, err := ParseNameAddressParty(value)
		if err != nil {
			return Field59{}, err
		}
		return Field59{Opt: OptionNone, NoOpt: p}, nil
	case 'A':
		p, err := ParseBICParty(value)
		if err != nil {
			return Field59{}, err
		}
		return Field59{Opt: OptionA, BIC: p}, nil
	case 'F':
		p, err := parsePartyIdentifier(value)
		if err != nil {
			return Field59{}, err
		}
		return Field59{Opt: OptionF, PartyID: p}, nil
	default:
		return Field59{}, &primitives.SwiftError{
			Kind:    primitives.KindUnknownVariant,
			Message: "unsupported field 59 option " + string(variant),
		}
	}
}
