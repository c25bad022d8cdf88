package mt202

import (
	"github.com/deltran/swiftmt/internal/swiftmt/block"
	"github.com/deltran/swiftmt/internal/swiftmt/fields"
	"github.com/deltran/swiftmt/internal/swiftmt/message"
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// Parse assembles an MT202 from block 4's tokenized fields, grounded
// on mt205.rs's field order: the core institution-transfer sequence
// followed by an optional cover sequence carrying the underlying
// customer credit transfer.
func Parse(block4 string) (MT202, error) {
	tokens, err := block.TokenizeBlock4(block4)
	if err != nil {
		return MT202{}, err
	}
	tr := message.NewTracker(tokens)
	var m MT202

	tok, ok := tr.Next("20")
	if !ok {
		return MT202{}, missingField("20")
	}
	if m.Field20, err = fields.ParseField20(tok.Value); err != nil {
		return MT202{}, err
	}

	tok, ok = tr.Next("21")
	if !ok {
		return MT202{}, missingField("21")
	}
	if m.Field21, err = fields.ParseField21NoOption(tok.Value); err != nil {
		return MT202{}, err
	}

	for {
		tok, ok := tr.Next("13C")
		if !ok {
			break
		}
		f, err := fields.ParseField13C(tok.Value)
		if err != nil {
			return MT202{}, err
		}
		m.Field13C = append(m.Field13C, f)
	}

	tok, ok = tr.Next("32A")
	if !ok {
		return MT202{}, missingField("32A")
	}
	if m.Field32A, err = fields.ParseField32A(tok.Value); err != nil {
		return MT202{}, err
	}

	tok, variant, ok := tr.NextVariant("52", "AD", false)
	if !ok {
		return MT202{}, missingField("52a")
	}
	if m.Field52, err = fields.ParseField52WithVariant(tok.Value, variant); err != nil {
		return MT202{}, err
	}

	if tok, variant, ok := tr.NextVariant("53", "ABD", false); ok {
		f, err := fields.ParseField53WithVariant(tok.Value, variant)
		if err != nil {
			return MT202{}, err
		}
		m.Field53 = &f
	}
	if tok, variant, ok := tr.NextVariant("56", "ACD", false); ok {
		f, err := fields.ParseField56WithVariant(tok.Value, variant)
		if err != nil {
			return MT202{}, err
		}
		m.Field56 = &f
	}
	if tok, variant, ok := tr.NextVariant("57", "ABCD", false); ok {
		f, err := fields.ParseField57WithVariant(tok.Value, variant)
		if err != nil {
			return MT202{}, err
		}
		m.Field57 = &f
	}

	tok, variant, ok = tr.NextVariant("58", "AD", false)
	if !ok {
		return MT202{}, missingField("58a")
	}
	if m.Field58, err = fields.ParseField58WithVariant(tok.Value, variant); err != nil {
		return MT202{}, err
	}

	if tok, ok := tr.Next("72"); ok {
		f, err := fields.ParseField72(tok.Value)
		if err != nil {
			return MT202{}, err
		}
		m.Field72 = &f
	}

	if tok, variant, ok := tr.NextVariant("50", "AFK", false); ok {
		f, err := fields.ParseField50OrderingCustomerWithVariant(tok.Value, variant)
		if err != nil {
			return MT202{}, err
		}
		m.CoverOrderingCustomer = &f
	}
	if tok, variant, ok := tr.NextVariant("52", "AD", false); ok {
		f, err := fields.ParseField52WithVariant(tok.Value, variant)
		if err != nil {
			return MT202{}, err
		}
		m.CoverOrderingInst = &f
	}
	if tok, variant, ok := tr.NextVariant("56", "ACD", false); ok {
		f, err := fields.ParseField56WithVariant(tok.Value, variant)
		if err != nil {
			return MT202{}, err
		}
		m.CoverIntermediary = &f
	}
	if tok, variant, ok := tr.NextVariant("57", "ABCD", false); ok {
		f, err := fields.ParseField57WithVariant(tok.Value, variant)
		if err != nil {
			return MT202{}, err
		}
		m.CoverAccountWith = &f
	}
	if tok, variant, ok := tr.NextVariant("59", "AF", true); ok {
		f, err := fields.ParseField59WithVariant(tok.Value, variant)
		if err != nil {
			return MT202{}, err
		}
		m.CoverBeneficiary = &f
	}
	if tok, ok := tr.Next("70"); ok {
		f, err := fields.ParseField70(tok.Value)
		if err != nil {
			return MT202{}, err
		}
		m.CoverRemittance = &f
	}
	if tok, ok := tr.Next("33B"); ok {
		f, err := fields.ParseField33B(tok.Value)
		if err != nil {
			return MT202{}, err
		}
		m.CoverInstructedAmount = &f
	}
	if tok, ok := tr.Next("72"); ok {
		f, err := fields.ParseField72(tok.Value)
		if err != nil {
			return MT202{}, err
		}
		m.CoverSenderToReceiver = &f
	}

	if rem := tr.Remaining(); len(rem) > 0 {
		return MT202{}, unexpectedField(rem[0].Tag)
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
		Message: "unexpected field for MT202",
	}
}
