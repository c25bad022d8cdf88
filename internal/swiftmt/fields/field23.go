package fields

import (
	"fmt"
	"strings"

	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// Field23B is the bank operation code (4!a). The set of legal codes is
// message-type specific (T36 for MT103) and is therefore checked by
// the network-rule engine, not here; this codec only enforces the
// wire-level shape.
type Field23B struct {
	InstructionCode string
}

func ParseField23B(value string) (Field23B, error) {
	if len(value) != 4 || !primitives.ClassA(value) {
		return Field23B{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T36", Tag: "23B",
			Message: "Bank operation code must be exactly 4 letters",
		}
	}
	return Field23B{InstructionCode: value}, nil
}

func (f Field23B) ToWire() string { return f.InstructionCode }

// Field23E is an instruction code (3 or 4 uppercase alphanumeric
// characters) with an optional additional information component
// (`/30x`). Code-set and combination rules live in each message type's
// rules.go; this codec only splits the wire shape.
type Field23E struct {
	InstructionCode string
	AdditionalInfo  string // empty when absent
	HasAdditional   bool
}

func ParseField23E(value string) (Field23E, error) {
	parts := strings.SplitN(value, "/", 2)
	code := parts[0]
	if len(code) < 3 || len(code) > 4 || !primitives.ClassC(code) {
		return Field23E{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T47", Tag: "23E",
			Message: "Instruction code must be 3-4 uppercase alphanumeric characters",
		}
	}
	f := Field23E{InstructionCode: code}
	if len(parts) == 2 {
		if len(parts[1]) > 30 || !primitives.ClassX(parts[1]) {
			return Field23E{}, &primitives.SwiftError{
				Kind: primitives.KindInvalidFormat, Code: "T47", Tag: "23E",
				Message: "Additional information must be at most 30 valid characters",
			}
		}
		f.AdditionalInfo = parts[1]
		f.HasAdditional = true
	}
	return f, nil
}

func (f Field23E) ToWire() string {
	if f.HasAdditional {
		return f.InstructionCode + "/" + f.AdditionalInfo
	}
	return f.InstructionCode
}

// Field26T is the transaction type code (3!c).
type Field26T struct {
	Code string
}

func ParseField26T(value string) (Field26T, error) {
	if len(value) != 3 || !primitives.ClassC(value) {
		return Field26T{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T35", Tag: "26T",
			Message: "Transaction type code must be exactly 3 uppercase alphanumeric characters",
		}
	}
	return Field26T{Code: value}, nil
}

func (f Field26T) ToWire() string { return f.Code }

// Field13C is a time indication: `/8c/4!n1!x4!n` (code, time, sign,
// UTC offset), parsed into those four components.
type Field13C struct {
	Code      string
	Time      primitives.TimeOfDay
	Sign      byte // '+' or '-'
	OffsetHHMM string
}

func ParseField13C(value string) (Field13C, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 4 || parts[0] != "" {
		return Field13C{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T38", Tag: "13C",
			Message: "Field 13C must have the form /code/HHMM+/-HHMM",
		}
	}
	code := parts[1]
	timePart := parts[2]
	if len(timePart) != 4 {
		return Field13C{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T38", Tag: "13C",
			Message: "Field 13C time must be 4 digits",
		}
	}
	tod, err := primitives.ParseTimeHHMM(timePart)
	if err != nil {
		return Field13C{}, err
	}
	signOffset := parts[3]
	if len(signOffset) != 5 || (signOffset[0] != '+' && signOffset[0] != '-') {
		return Field13C{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T38", Tag: "13C",
			Message: "Field 13C offset must be +/-HHMM",
		}
	}
	return Field13C{Code: code, Time: tod, Sign: signOffset[0], OffsetHHMM: signOffset[1:]}, nil
}

func (f Field13C) ToWire() string {
	return fmt.Sprintf("/%s/%02d%02d%s%s", f.Code, f.Time.Hour, f.Time.Minute, string(f.Sign), f.OffsetHHMM)
}
