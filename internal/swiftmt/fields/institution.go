package fields

import "github.com/deltran/swiftmt/internal/swiftmt/primitives"

// Option identifies which lettered option of a tagged-union field
// slot was actually present on the wire.
type Option byte

const (
	OptionNone Option = 0
	OptionA    Option = 'A'
	OptionB    Option = 'B'
	OptionC    Option = 'C'
	OptionD    Option = 'D'
	OptionF    Option = 'F'
	OptionG    Option = 'G'
	OptionH    Option = 'H'
	OptionK    Option = 'K'
	OptionL    Option = 'L'
)

// InstitutionField is the shared tagged-union shape of every
// correspondent/institution slot (52, 53, 54, 55, 56, 57, 58): option
// A/C carries a BICParty, option B carries a LocationParty, option D
// carries a NameAddressParty. Grounded on field58a.rs generalized
// across the whole institution-field family the header doc there
// enumerates.
type InstitutionField struct {
	Opt     Option
	BIC     BICParty
	Loc     LocationParty
	NameAdr NameAddressParty
}

// ToWire renders whichever option is populated.
func (f InstitutionField) ToWire() string {
	switch f.Opt {
	case OptionA, OptionC:
		return f.BIC.ToWire()
	case OptionB:
		return f.Loc.ToWire()
	case OptionD:
		return f.NameAdr.ToWire()
	default:
		return ""
	}
}

// parseInstitutionWithVariant parses value according to the given
// option letter, rejecting any letter outside allowed.
func parseInstitutionWithVariant(value string, variant byte, allowed string) (InstitutionField, error) {
	found := false
	for i := 0; i < len(allowed); i++ {
		if allowed[i] == variant {
			found = true
			break
		}
	}
	if !found {
		return InstitutionField{}, &primitives.SwiftError{
			Kind:    primitives.KindUnknownVariant,
			Message: "unsupported institution field option " + string(variant),
		}
	}

	switch Option(variant) {
	case OptionA, OptionC:
		p, err := ParseBICParty(value)
		if err != nil {
			return InstitutionField{}, err
		}
		return InstitutionField{Opt: Option(variant), BIC: p}, nil
	case OptionB:
		p, err := ParseLocationParty(value)
		if err != nil {
			return InstitutionField{}, err
		}
		return InstitutionField{Opt: OptionB, Loc: p}, nil
	case OptionD:
		p, err := ParseNameAddressParty(value)
		if err != nil {
			return InstitutionField{}, err
		}
		return InstitutionField{Opt: OptionD, NameAdr: p}, nil
	default:
		return InstitutionField{}, &primitives.SwiftError{
			Kind:    primitives.KindUnknownVariant,
			Message: "unsupported institution field option " + string(variant),
		}
	}
}

// Field51A is the instructing institution: option A only.
type Field51A struct{ InstitutionField }

func ParseField51A(value string) (Field51A, error) {
	f, err := parseInstitutionWithVariant(value, 'A', "A")
	return Field51A{f}, err
}

// Field52OrderingInstitution carries options A or D.
type Field52OrderingInstitution struct{ InstitutionField }

func ParseField52WithVariant(value string, variant byte) (Field52OrderingInstitution, error) {
	f, err := parseInstitutionWithVariant(value, variant, "AD")
	return Field52OrderingInstitution{f}, err
}

// Field52AccountServicingInstitution carries options A or C, used by
// MT101's sequence A/B account-servicing-institution slot.
type Field52AccountServicingInstitution struct{ InstitutionField }

func ParseField52AccountServicingWithVariant(value string, variant byte) (Field52AccountServicingInstitution, error) {
	f, err := parseInstitutionWithVariant(value, variant, "AC")
	return Field52AccountServicingInstitution{f}, err
}

// Field53SenderCorrespondent carries options A, B or D.
type Field53SenderCorrespondent struct{ InstitutionField }

func ParseField53WithVariant(value string, variant byte) (Field53SenderCorrespondent, error) {
	f, err := parseInstitutionWithVariant(value, variant, "ABD")
	return Field53SenderCorrespondent{f}, err
}

// Field54ReceiverCorrespondent carries options A, B or D.
type Field54ReceiverCorrespondent struct{ InstitutionField }

func ParseField54WithVariant(value string, variant byte) (Field54ReceiverCorrespondent, error) {
	f, err := parseInstitutionWithVariant(value, variant, "ABD")
	return Field54ReceiverCorrespondent{f}, err
}

// Field55ThirdReimbursementInstitution carries options A, B or D.
type Field55ThirdReimbursementInstitution struct{ InstitutionField }

func ParseField55WithVariant(value string, variant byte) (Field55ThirdReimbursementInstitution, error) {
	f, err := parseInstitutionWithVariant(value, variant, "ABD")
	return Field55ThirdReimbursementInstitution{f}, err
}

// Field56Intermediary carries options A, C or D.
type Field56Intermediary struct{ InstitutionField }

func ParseField56WithVariant(value string, variant byte) (Field56Intermediary, error) {
	f, err := parseInstitutionWithVariant(value, variant, "ACD")
	return Field56Intermediary{f}, err
}

// Field57AccountWithInstitution carries options A, B, C or D.
type Field57AccountWithInstitution struct{ InstitutionField }

func ParseField57WithVariant(value string, variant byte) (Field57AccountWithInstitution, error) {
	f, err := parseInstitutionWithVariant(value, variant, "ABCD")
	return Field57AccountWithInstitution{f}, err
}

// Field58BeneficiaryInstitution carries options A or D.
type Field58BeneficiaryInstitution struct{ InstitutionField }

func ParseField58WithVariant(value string, variant byte) (Field58BeneficiaryInstitution, error) {
	f, err := parseInstitutionWithVariant(value, variant, "AD")
	return Field58BeneficiaryInstitution{f}, err
}
