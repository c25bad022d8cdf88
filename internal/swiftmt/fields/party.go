package fields

import (
	"strings"

	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// BICParty is the shared shape of every institution field option that
// carries an optional account line followed by a BIC: `[/34x]` then
// `4!a2!a2!c[3!c]`. Grounded on
// original_source/swift-mt-message/src/fields/field58a.rs, generalized
// from Field58A specifically to every field in the 50/52/53/54/55/56/
// 57/58 family that uses option A.
type BICParty struct {
	Account string // without the leading slash; empty if absent
	BIC     primitives.BIC
}

// ParseBICParty parses an option-A institution value: an optional
// "/account" line followed by a BIC on its own line.
func ParseBICParty(value string) (BICParty, error) {
	lines := strings.SplitN(value, "\n", 2)
	var account string
	bicLine := lines[0]
	if len(lines) == 2 {
		if !strings.HasPrefix(lines[0], "/") {
			return BICParty{}, &primitives.SwiftError{
				Kind: primitives.KindInvalidFormat, Code: "T15",
				Message: "Account line must start with /",
			}
		}
		account = strings.TrimPrefix(lines[0], "/")
		bicLine = lines[1]
	}
	bic, err := primitives.ParseBIC(bicLine)
	if err != nil {
		return BICParty{}, err
	}
	return BICParty{Account: account, BIC: bic}, nil
}

// ToWire renders the party back to its option-A wire form.
func (p BICParty) ToWire() string {
	if p.Account == "" {
		return p.BIC.String()
	}
	return "/" + p.Account + "\n" + p.BIC.String()
}

// NameAddressParty is the shared shape of option D/B-style fields that
// carry an optional account followed by up to 4 lines of free-form
// name and address text (35 characters each).
type NameAddressParty struct {
	Account        string
	NameAndAddress []string
}

// ParseNameAddressParty parses an option-D value: optional "/account"
// line followed by up to 4 lines of 35x narrative text.
func ParseNameAddressParty(value string) (NameAddressParty, error) {
	lines := strings.Split(value, "\n")
	var account string
	rest := lines
	if len(lines) > 0 && strings.HasPrefix(lines[0], "/") {
		account = strings.TrimPrefix(lines[0], "/")
		rest = lines[1:]
	}
	if len(rest) > 4 {
		return NameAddressParty{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T33",
			Message: "Name and address may not exceed 4 lines",
		}
	}
	for _, l := range rest {
		if len(l) > 35 || !primitives.ClassX(l) {
			return NameAddressParty{}, &primitives.SwiftError{
				Kind: primitives.KindInvalidFormat, Code: "T33",
				Message: "Name and address line must be at most 35 valid characters",
			}
		}
	}
	return NameAddressParty{Account: account, NameAndAddress: rest}, nil
}

// ToWire renders the party back to its option-D wire form.
func (p NameAddressParty) ToWire() string {
	var b strings.Builder
	if p.Account != "" {
		b.WriteString("/")
		b.WriteString(p.Account)
		if len(p.NameAndAddress) > 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString(strings.Join(p.NameAndAddress, "\n"))
	return b.String()
}

// LocationParty is the shared shape of option B fields: an optional
// account followed by a single location/narrative line (no BIC).
type LocationParty struct {
	Account  string
	Location string
}

// ParseLocationParty parses an option-B value.
func ParseLocationParty(value string) (LocationParty, error) {
	lines := strings.SplitN(value, "\n", 2)
	if len(lines) == 1 {
		if strings.HasPrefix(lines[0], "/") {
			return LocationParty{Account: strings.TrimPrefix(lines[0], "/")}, nil
		}
		return LocationParty{Location: lines[0]}, nil
	}
	return LocationParty{Account: strings.TrimPrefix(lines[0], "/"), Location: lines[1]}, nil
}

// ToWire renders the party back to its option-B wire form.
func (p LocationParty) ToWire() string {
	if p.Account == "" {
		return p.Location
	}
	if p.Location == "" {
		return "/" + p.Account
	}
	return "/" + p.Account + "\n" + p.Location
}
