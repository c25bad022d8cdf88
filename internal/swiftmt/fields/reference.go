package fields

import (
	"github.com/deltran/swiftmt/internal/swiftmt/format"
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// referenceSpec is the shared 16x format spec for 20/21/21E: up to 16
// characters of SWIFT general text, non-empty.
var referenceSpec = format.MustCompile("16x")

func parseReference(value, tag, message string) (string, error) {
	comps, ok := referenceSpec.Match(value)
	if !ok || comps[0] == "" {
		return "", &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T45", Tag: tag,
			Message: message,
		}
	}
	return comps[0], nil
}

// Field20 is the transaction reference number (16x, mandatory on
// almost every message type). Grounded on swift_utils.rs's
// parse_reference (max 16 chars, SWIFT x charset).
type Field20 struct {
	Reference string
}

func ParseField20(value string) (Field20, error) {
	ref, err := parseReference(value, "20", "Transaction reference must be 1-16 valid characters")
	if err != nil {
		return Field20{}, err
	}
	return Field20{Reference: ref}, nil
}

func (f Field20) ToWire() string { return f.Reference }

// Field21 is a related/transaction reference (16x), used as the
// sequence-B lead field in MT101/MT107/MT104.
type Field21 struct {
	Reference string
}

func ParseField21(value string) (Field21, error) {
	ref, err := parseReference(value, "21", "Reference must be 1-16 valid characters")
	if err != nil {
		return Field21{}, err
	}
	return Field21{Reference: ref}, nil
}

func (f Field21) ToWire() string { return f.Reference }

// Field21E is a registration/transaction reference (16x) used by
// MT107's creditor-placement rule (D86/D77).
type Field21E struct {
	Reference string
}

func ParseField21E(value string) (Field21E, error) {
	ref, err := parseReference(value, "21E", "Reference must be 1-16 valid characters")
	if err != nil {
		return Field21E{}, err
	}
	return Field21E{Reference: ref}, nil
}

func (f Field21E) ToWire() string { return f.Reference }
