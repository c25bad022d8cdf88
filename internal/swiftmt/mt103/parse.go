package mt103

import (
	"github.com/deltran/swiftmt/internal/swiftmt/block"
	"github.com/deltran/swiftmt/internal/swiftmt/fields"
	"github.com/deltran/swiftmt/internal/swiftmt/message"
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// Parse assembles an MT103 from block 4's tokenized fields, grounded
// on MT103::parse_from_block4's sequential field-by-field consumption
// order.
func Parse(block4 string) (MT103, error) {
	tokens, err := block.TokenizeBlock4(block4)
	if err != nil {
		return MT103{}, err
	}
	tr := message.NewTracker(tokens)
	var m MT103

	tok, ok := tr.Next("20")
	if !ok {
		return MT103{}, missingField("20")
	}
	if m.Field20, err = fields.ParseField20(tok.Value); err != nil {
		return MT103{}, err
	}

	for {
		tok, ok := tr.Next("13C")
		if !ok {
			break
		}
		f, err := fields.ParseField13C(tok.Value)
		if err != nil {
			return MT103{}, err
		}
		m.Field13C = append(m.Field13C, f)
	}

	tok, ok = tr.Next("23B")
	if !ok {
		return MT103{}, missingField("23B")
	}
	if m.Field23B, err = fields.ParseField23B(tok.Value); err != nil {
		return MT103{}, err
	}

	for {
		tok, ok := tr.Next("23E")
		if !ok {
			break
		}
		f, err := fields.ParseField23E(tok.Value)
		if err != nil {
			return MT103{}, err
		}
		m.Field23E = append(m.Field23E, f)
	}

	if tok, ok := tr.Next("26T"); ok {
		f, err := fields.ParseField26T(tok.Value)
		if err != nil {
			return MT103{}, err
		}
		m.Field26T = &f
	}

	tok, ok = tr.Next("32A")
	if !ok {
		return MT103{}, missingField("32A")
	}
	if m.Field32A, err = fields.ParseField32A(tok.Value); err != nil {
		return MT103{}, err
	}

	if tok, ok := tr.Next("33B"); ok {
		f, err := fields.ParseField33B(tok.Value)
		if err != nil {
			return MT103{}, err
		}
		m.Field33B = &f
	}
	if tok, ok := tr.Next("36"); ok {
		f, err := fields.ParseField36(tok.Value)
		if err != nil {
			return MT103{}, err
		}
		m.Field36 = &f
	}

	tok, variant, ok := tr.NextVariant("50", "AFK", false)
	if !ok {
		return MT103{}, missingField("50")
	}
	if m.Field50, err = fields.ParseField50OrderingCustomerWithVariant(tok.Value, variant); err != nil {
		return MT103{}, err
	}

	if tok, ok := tr.Next("51A"); ok {
		f, err := fields.ParseField51A(tok.Value)
		if err != nil {
			return MT103{}, err
		}
		m.Field51A = &f
	}
	if tok, variant, ok := tr.NextVariant("52", "AD", false); ok {
		f, err := fields.ParseField52WithVariant(tok.Value, variant)
		if err != nil {
			return MT103{}, err
		}
		m.Field52 = &f
	}
	if tok, variant, ok := tr.NextVariant("53", "ABD", false); ok {
		f, err := fields.ParseField53WithVariant(tok.Value, variant)
		if err != nil {
			return MT103{}, err
		}
		m.Field53 = &f
	}
	if tok, variant, ok := tr.NextVariant("54", "ABD", false); ok {
		f, err := fields.ParseField54WithVariant(tok.Value, variant)
		if err != nil {
			return MT103{}, err
		}
		m.Field54 = &f
	}
	if tok, variant, ok := tr.NextVariant("55", "ABD", false); ok {
		f, err := fields.ParseField55WithVariant(tok.Value, variant)
		if err != nil {
			return MT103{}, err
		}
		m.Field55 = &f
	}
	if tok, variant, ok := tr.NextVariant("56", "ACD", false); ok {
		f, err := fields.ParseField56WithVariant(tok.Value, variant)
		if err != nil {
			return MT103{}, err
		}
		m.Field56 = &f
	}
	if tok, variant, ok := tr.NextVariant("57", "ABCD", false); ok {
		f, err := fields.ParseField57WithVariant(tok.Value, variant)
		if err != nil {
			return MT103{}, err
		}
		m.Field57 = &f
	}

	tok, variant, ok = tr.NextVariant("59", "AF", true)
	if !ok {
		return MT103{}, missingField("59")
	}
	if m.Field59, err = fields.ParseField59WithVariant(tok.Value, variant); err != nil {
		return MT103{}, err
	}

	if tok, ok := tr.Next("70"); ok {
		f, err := fields.ParseField70(tok.Value)
		if err != nil {
			return MT103{}, err
		}
		m.Field70 = &f
	}

	tok, ok = tr.Next("71A")
	if !ok {
		return MT103{}, missingField("71A")
	}
	if m.Field71A, err = fields.ParseField71A(tok.Value); err != nil {
		return MT103{}, err
	}

	for {
		tok, ok := tr.Next("71F")
		if !ok {
			break
		}
		f, err := fields.ParseField71F(tok.Value)
		if err != nil {
			return MT103{}, err
		}
		m.Field71F = append(m.Field71F, f)
	}

	if tok, ok := tr.Next("71G"); ok {
		f, err := fields.ParseField71G(tok.Value)
		if err != nil {
			return MT103{}, err
		}
		m.Field71G = &f
	}
	if tok, ok := tr.Next("72"); ok {
		f, err := fields.ParseField72(tok.Value)
		if err != nil {
			return MT103{}, err
		}
		m.Field72 = &f
	}
	if tok, ok := tr.Next("77B"); ok {
		f, err := fields.ParseField77B(tok.Value)
		if err != nil {
			return MT103{}, err
		}
		m.Field77B = &f
	}
	if tok, ok := tr.Next("77T"); ok {
		f, err := fields.ParseField77T(tok.Value)
		if err != nil {
			return MT103{}, err
		}
		m.Field77T = &f
	}

	if rem := tr.Remaining(); len(rem) > 0 {
		return MT103{}, unexpectedField(rem[0].Tag)
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
		Message: "unexpected field for MT103",
	}
}
