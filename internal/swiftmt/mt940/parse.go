package mt940

import (
	"github.com/deltran/swiftmt/internal/swiftmt/block"
	"github.com/deltran/swiftmt/internal/swiftmt/fields"
	"github.com/deltran/swiftmt/internal/swiftmt/message"
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// Parse assembles an MT940 from block 4's tokenized fields: reference,
// account, statement number, opening balance, a repeating run of
// statement lines, closing balance and trailing balance/narrative
// fields.
func Parse(block4 string) (MT940, error) {
	tokens, err := block.TokenizeBlock4(block4)
	if err != nil {
		return MT940{}, err
	}
	tr := message.NewTracker(tokens)
	var m MT940

	tok, ok := tr.Next("20")
	if !ok {
		return MT940{}, missingField("20")
	}
	if m.Field20, err = fields.ParseField20(tok.Value); err != nil {
		return MT940{}, err
	}

	if tok, ok := tr.Next("21"); ok {
		f, err := fields.ParseField21NoOption(tok.Value)
		if err != nil {
			return MT940{}, err
		}
		m.Field21 = &f
	}

	tok, ok = tr.Next("25")
	if !ok {
		return MT940{}, missingField("25")
	}
	if m.Field25, err = fields.ParseField25NoOption(tok.Value); err != nil {
		return MT940{}, err
	}

	tok, ok = tr.Next("28C")
	if !ok {
		return MT940{}, missingField("28C")
	}
	if m.Field28C, err = fields.ParseField28C(tok.Value); err != nil {
		return MT940{}, err
	}

	if tok, ok := tr.Next("60F"); ok {
		f, err := fields.ParseField60F(tok.Value)
		if err != nil {
			return MT940{}, err
		}
		m.OpeningF = &f
	} else if tok, ok := tr.Next("60M"); ok {
		f, err := fields.ParseField60M(tok.Value)
		if err != nil {
			return MT940{}, err
		}
		m.OpeningM = &f
	} else {
		return MT940{}, missingField("60a")
	}

	for {
		tok, ok := tr.Next("61")
		if !ok {
			break
		}
		var line StatementLine
		if line.Field61, err = fields.ParseField61(tok.Value); err != nil {
			return MT940{}, err
		}
		if tok, ok := tr.Next("86"); ok {
			f, err := fields.ParseField86(tok.Value)
			if err != nil {
				return MT940{}, err
			}
			line.Field86 = &f
		}
		m.Lines = append(m.Lines, line)
	}

	if tok, ok := tr.Next("62F"); ok {
		f, err := fields.ParseField62F(tok.Value)
		if err != nil {
			return MT940{}, err
		}
		m.ClosingF = &f
	} else if tok, ok := tr.Next("62M"); ok {
		f, err := fields.ParseField62M(tok.Value)
		if err != nil {
			return MT940{}, err
		}
		m.ClosingM = &f
	} else {
		return MT940{}, missingField("62a")
	}

	if tok, ok := tr.Next("64"); ok {
		f, err := fields.ParseField64(tok.Value)
		if err != nil {
			return MT940{}, err
		}
		m.Field64 = &f
	}
	for {
		tok, ok := tr.Next("65")
		if !ok {
			break
		}
		f, err := fields.ParseField65(tok.Value)
		if err != nil {
			return MT940{}, err
		}
		m.Field65 = append(m.Field65, f)
	}
	if tok, ok := tr.Next("86"); ok {
		f, err := fields.ParseField86(tok.Value)
		if err != nil {
			return MT940{}, err
		}
		m.Field86Final = &f
	}

	if rem := tr.Remaining(); len(rem) > 0 {
		return MT940{}, unexpectedField(rem[0].Tag)
	}

	return m, nil
}

func missingField(tag string) error {
	return &primitives.SwiftError{
		Kind: primitives.KindMissingRequiredField, Code: "T10", Tag: tag,
		Message: "mandatory field is missing",
	}
}

func unexpectedField(tag string) error {
	return &primitives.SwiftError{
		Kind: primitives.KindInvalidFormat, Code: "T10", Tag: tag,
		Message: "unexpected field for MT940",
	}
}
