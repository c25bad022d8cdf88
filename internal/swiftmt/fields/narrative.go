package fields

import (
	"strings"

	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

func parseNarrativeLines(value string, maxLines, maxLineLen int, tag string) ([]string, error) {
	lines := strings.Split(value, "\n")
	if len(lines) > maxLines {
		return nil, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T33", Tag: tag,
			Message: "too many lines",
		}
	}
	for _, l := range lines {
		if len(l) > maxLineLen || !primitives.ClassX(l) {
			return nil, &primitives.SwiftError{
				Kind: primitives.KindInvalidFormat, Code: "T33", Tag: tag,
				Message: "line exceeds maximum length or contains invalid characters",
			}
		}
	}
	return lines, nil
}

// Field70 is remittance information: up to 4 lines of 35x.
type Field70 struct {
	Lines []string
}

func ParseField70(value string) (Field70, error) {
	lines, err := parseNarrativeLines(value, 4, 35, "70")
	if err != nil {
		return Field70{}, err
	}
	return Field70{Lines: lines}, nil
}

func (f Field70) ToWire() string { return strings.Join(f.Lines, "\n") }

// Field72 is sender-to-receiver information: up to 6 lines of 35x.
// Each line conventionally starts with a "/CODE/" structured prefix;
// the lines are kept as-is and those codes are not inspected.
type Field72 struct {
	Lines []string
}

func ParseField72(value string) (Field72, error) {
	lines, err := parseNarrativeLines(value, 6, 35, "72")
	if err != nil {
		return Field72{}, err
	}
	return Field72{Lines: lines}, nil
}

func (f Field72) ToWire() string { return strings.Join(f.Lines, "\n") }

// Field77B is regulatory reporting: up to 3 lines of 35x.
type Field77B struct {
	Lines []string
}

func ParseField77B(value string) (Field77B, error) {
	lines, err := parseNarrativeLines(value, 3, 35, "77B")
	if err != nil {
		return Field77B{}, err
	}
	return Field77B{Lines: lines}, nil
}

func (f Field77B) ToWire() string { return strings.Join(f.Lines, "\n") }

// Field77T is envelope contents: a single block of up to 9000 of the z
// charset (free narrative text), used to carry an embedded ISO 20022
// document fragment per the SWIFT MT-to-MX coexistence profile.
type Field77T struct {
	Content string
}

func ParseField77T(value string) (Field77T, error) {
	if len(value) > 9000 {
		return Field77T{}, &primitives.SwiftError{
			Kind: primitives.KindInvalidFormat, Code: "T33", Tag: "77T",
			Message: "field 77T content exceeds 9000 characters",
		}
	}
	return Field77T{Content: value}, nil
}

func (f Field77T) ToWire() string { return f.Content }
