package mt101

import (
	"github.com/deltran/swiftmt/internal/swiftmt/block"
	"github.com/deltran/swiftmt/internal/swiftmt/fields"
	"github.com/deltran/swiftmt/internal/swiftmt/message"
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// parseField50 resolves field 50's dual role in MT101: options C/L
// name the instructing party, options F/G/H name the ordering
// customer.
func parseField50(tr *message.Tracker) (*fields.Field50InstructingParty, *fields.Field50OrderingCustomerFGH, error) {
	tok, variant, ok := tr.NextVariant("50", "CLFGH", false)
	if !ok {
		return nil, nil, nil
	}
	switch variant {
	case 'C', 'L':
		f, err := fields.ParseField50InstructingPartyWithVariant(tok.Value, variant)
		if err != nil {
			return nil, nil, err
		}
		return &f, nil, nil
	default:
		f, err := fields.ParseField50OrderingCustomerFGHWithVariant(tok.Value, variant)
		if err != nil {
			return nil, nil, err
		}
		return nil, &f, nil
	}
}

// Parse assembles an MT101 from block 4's tokenized fields, grounded
// on mt101.rs's sequence A / repeated sequence B field order.
func Parse(block4 string) (MT101, error) {
	tokens, err := block.TokenizeBlock4(block4)
	if err != nil {
		return MT101{}, err
	}
	tr := message.NewTracker(tokens)
	var m MT101

	tok, ok := tr.Next("20")
	if !ok {
		return MT101{}, missingField("20")
	}
	if m.Field20, err = fields.ParseField20(tok.Value); err != nil {
		return MT101{}, err
	}

	if tok, ok := tr.Next("21R"); ok {
		f, err := fields.ParseField21R(tok.Value)
		if err != nil {
			return MT101{}, err
		}
		m.Field21R = &f
	}

	tok, ok = tr.Next("28D")
	if !ok {
		return MT101{}, missingField("28D")
	}
	if m.Field28D, err = fields.ParseField28D(tok.Value); err != nil {
		return MT101{}, err
	}

	if m.InstructingParty, m.OrderingCustomer, err = parseField50(tr); err != nil {
		return MT101{}, err
	}

	if tok, variant, ok := tr.NextVariant("52", "AC", false); ok {
		f, err := fields.ParseField52AccountServicingWithVariant(tok.Value, variant)
		if err != nil {
			return MT101{}, err
		}
		m.Field52A = &f
	}
	if tok, ok := tr.Next("51A"); ok {
		f, err := fields.ParseField51A(tok.Value)
		if err != nil {
			return MT101{}, err
		}
		m.Field51A = &f
	}

	tok, ok = tr.Next("30")
	if !ok {
		return MT101{}, missingField("30")
	}
	if m.Field30, err = fields.ParseField30(tok.Value); err != nil {
		return MT101{}, err
	}

	if tok, ok := tr.Next("25"); ok {
		f, err := fields.ParseField25NoOption(tok.Value)
		if err != nil {
			return MT101{}, err
		}
		m.Field25 = &f
	}

	for {
		tok, ok := tr.Next("21")
		if !ok {
			break
		}
		var txn Transaction
		if txn.Field21, err = fields.ParseField21NoOption(tok.Value); err != nil {
			return MT101{}, err
		}
		if tok, ok := tr.Next("21F"); ok {
			f, err := fields.ParseField21F(tok.Value)
			if err != nil {
				return MT101{}, err
			}
			txn.Field21F = &f
		}
		for {
			tok, ok := tr.Next("23E")
			if !ok {
				break
			}
			f, err := fields.ParseField23E(tok.Value)
			if err != nil {
				return MT101{}, err
			}
			txn.Field23E = append(txn.Field23E, f)
		}

		tok, ok = tr.Next("32B")
		if !ok {
			return MT101{}, missingField("32B")
		}
		if txn.Field32B, err = fields.ParseField32B(tok.Value); err != nil {
			return MT101{}, err
		}

		if txn.InstructingParty, txn.OrderingCustomer, err = parseField50(tr); err != nil {
			return MT101{}, err
		}

		if tok, variant, ok := tr.NextVariant("52", "AC", false); ok {
			f, err := fields.ParseField52AccountServicingWithVariant(tok.Value, variant)
			if err != nil {
				return MT101{}, err
			}
			txn.Field52 = &f
		}
		if tok, variant, ok := tr.NextVariant("56", "ACD", false); ok {
			f, err := fields.ParseField56WithVariant(tok.Value, variant)
			if err != nil {
				return MT101{}, err
			}
			txn.Field56 = &f
		}
		if tok, variant, ok := tr.NextVariant("57", "ABCD", false); ok {
			f, err := fields.ParseField57WithVariant(tok.Value, variant)
			if err != nil {
				return MT101{}, err
			}
			txn.Field57 = &f
		}

		tok, variant, ok := tr.NextVariant("59", "AF", true)
		if !ok {
			return MT101{}, missingField("59")
		}
		if txn.Field59, err = fields.ParseField59WithVariant(tok.Value, variant); err != nil {
			return MT101{}, err
		}

		if tok, ok := tr.Next("70"); ok {
			f, err := fields.ParseField70(tok.Value)
			if err != nil {
				return MT101{}, err
			}
			txn.Field70 = &f
		}
		if tok, ok := tr.Next("77B"); ok {
			f, err := fields.ParseField77B(tok.Value)
			if err != nil {
				return MT101{}, err
			}
			txn.Field77B = &f
		}
		if tok, ok := tr.Next("33B"); ok {
			f, err := fields.ParseField33B(tok.Value)
			if err != nil {
				return MT101{}, err
			}
			txn.Field33B = &f
		}

		tok, ok = tr.Next("71A")
		if !ok {
			return MT101{}, missingField("71A")
		}
		if txn.Field71A, err = fields.ParseField71A(tok.Value); err != nil {
			return MT101{}, err
		}

		if tok, ok := tr.Next("25A"); ok {
			f, err := fields.ParseField25A(tok.Value)
			if err != nil {
				return MT101{}, err
			}
			txn.Field25A = &f
		}
		if tok, ok := tr.Next("36"); ok {
			f, err := fields.ParseField36(tok.Value)
			if err != nil {
				return MT101{}, err
			}
			txn.Field36 = &f
		}

		m.Transactions = append(m.Transactions, txn)
	}

	if len(m.Transactions) == 0 {
		return MT101{}, missingField("21")
	}

	if rem := tr.Remaining(); len(rem) > 0 {
		return MT101{}, unexpectedField(rem[0].Tag)
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
		Message: "unexpected field for MT101",
	}
}
