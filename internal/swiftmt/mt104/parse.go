package mt104

import (
	"github.com/deltran/swiftmt/internal/swiftmt/block"
	"github.com/deltran/swiftmt/internal/swiftmt/fields"
	"github.com/deltran/swiftmt/internal/swiftmt/message"
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// parseField50Pair consumes field 50's two independently-tagged
// occurrences: options C/L name the instructing party, options A/K
// name the creditor. Unlike MT107, both may be present at once, so
// they are read with two separate lookups rather than one dispatch.
func parseField50Pair(tr *message.Tracker) (*fields.Field50InstructingParty, *fields.Field50Creditor, error) {
	var ip *fields.Field50InstructingParty
	var cr *fields.Field50Creditor

	if tok, variant, ok := tr.NextVariant("50", "CL", false); ok {
		f, err := fields.ParseField50InstructingPartyWithVariant(tok.Value, variant)
		if err != nil {
			return nil, nil, err
		}
		ip = &f
	}
	if tok, variant, ok := tr.NextVariant("50", "AK", false); ok {
		f, err := fields.ParseField50CreditorWithVariant(tok.Value, variant)
		if err != nil {
			return nil, nil, err
		}
		cr = &f
	}
	return ip, cr, nil
}

// Parse assembles an MT104 from block 4's tokenized fields, grounded
// on mt104.rs's sequence A / repeated sequence B / optional sequence C
// field order.
func Parse(block4 string) (MT104, error) {
	tokens, err := block.TokenizeBlock4(block4)
	if err != nil {
		return MT104{}, err
	}
	tr := message.NewTracker(tokens)
	var m MT104

	tok, ok := tr.Next("20")
	if !ok {
		return MT104{}, missingField("20")
	}
	if m.Field20, err = fields.ParseField20(tok.Value); err != nil {
		return MT104{}, err
	}

	if tok, ok := tr.Next("21R"); ok {
		f, err := fields.ParseField21R(tok.Value)
		if err != nil {
			return MT104{}, err
		}
		m.Field21R = &f
	}
	if tok, ok := tr.Next("23E"); ok {
		f, err := fields.ParseField23E(tok.Value)
		if err != nil {
			return MT104{}, err
		}
		m.Field23E = &f
	}
	if tok, ok := tr.Next("21E"); ok {
		f, err := fields.ParseField21E(tok.Value)
		if err != nil {
			return MT104{}, err
		}
		m.Field21E = &f
	}

	tok, ok = tr.Next("30")
	if !ok {
		return MT104{}, missingField("30")
	}
	if m.Field30, err = fields.ParseField30(tok.Value); err != nil {
		return MT104{}, err
	}

	if tok, ok := tr.Next("51A"); ok {
		f, err := fields.ParseField51A(tok.Value)
		if err != nil {
			return MT104{}, err
		}
		m.Field51A = &f
	}

	if m.InstructingParty, m.Creditor, err = parseField50Pair(tr); err != nil {
		return MT104{}, err
	}

	if tok, variant, ok := tr.NextVariant("52", "AD", false); ok {
		f, err := fields.ParseField52WithVariant(tok.Value, variant)
		if err != nil {
			return MT104{}, err
		}
		m.Field52 = &f
	}
	if tok, ok := tr.Next("26T"); ok {
		f, err := fields.ParseField26T(tok.Value)
		if err != nil {
			return MT104{}, err
		}
		m.Field26T = &f
	}
	if tok, ok := tr.Next("77B"); ok {
		f, err := fields.ParseField77B(tok.Value)
		if err != nil {
			return MT104{}, err
		}
		m.Field77B = &f
	}
	if tok, ok := tr.Next("71A"); ok {
		f, err := fields.ParseField71A(tok.Value)
		if err != nil {
			return MT104{}, err
		}
		m.Field71A = &f
	}
	if tok, ok := tr.Next("72"); ok {
		f, err := fields.ParseField72(tok.Value)
		if err != nil {
			return MT104{}, err
		}
		m.Field72 = &f
	}

	for {
		tok, ok := tr.Next("21")
		if !ok {
			break
		}
		var txn Transaction
		if txn.Field21, err = fields.ParseField21NoOption(tok.Value); err != nil {
			return MT104{}, err
		}
		if tok, ok := tr.Next("23E"); ok {
			f, err := fields.ParseField23E(tok.Value)
			if err != nil {
				return MT104{}, err
			}
			txn.Field23E = &f
		}
		if tok, ok := tr.Next("21C"); ok {
			f, err := fields.ParseField21C(tok.Value)
			if err != nil {
				return MT104{}, err
			}
			txn.Field21C = &f
		}
		if tok, ok := tr.Next("21D"); ok {
			f, err := fields.ParseField21D(tok.Value)
			if err != nil {
				return MT104{}, err
			}
			txn.Field21D = &f
		}
		if tok, ok := tr.Next("21E"); ok {
			f, err := fields.ParseField21E(tok.Value)
			if err != nil {
				return MT104{}, err
			}
			txn.Field21E = &f
		}

		tok, ok = tr.Next("32B")
		if !ok {
			return MT104{}, missingField("32B")
		}
		if txn.Field32B, err = fields.ParseField32B(tok.Value); err != nil {
			return MT104{}, err
		}

		if txn.InstructingParty, txn.Creditor, err = parseField50Pair(tr); err != nil {
			return MT104{}, err
		}

		if tok, variant, ok := tr.NextVariant("52", "AD", false); ok {
			f, err := fields.ParseField52WithVariant(tok.Value, variant)
			if err != nil {
				return MT104{}, err
			}
			txn.Field52 = &f
		}
		if tok, variant, ok := tr.NextVariant("57", "ABCD", false); ok {
			f, err := fields.ParseField57WithVariant(tok.Value, variant)
			if err != nil {
				return MT104{}, err
			}
			txn.Field57 = &f
		}

		tok, variant, ok := tr.NextVariant("59", "AF", true)
		if !ok {
			return MT104{}, missingField("59")
		}
		if txn.Field59, err = fields.ParseField59WithVariant(tok.Value, variant); err != nil {
			return MT104{}, err
		}

		if tok, ok := tr.Next("70"); ok {
			f, err := fields.ParseField70(tok.Value)
			if err != nil {
				return MT104{}, err
			}
			txn.Field70 = &f
		}
		if tok, ok := tr.Next("26T"); ok {
			f, err := fields.ParseField26T(tok.Value)
			if err != nil {
				return MT104{}, err
			}
			txn.Field26T = &f
		}
		if tok, ok := tr.Next("77B"); ok {
			f, err := fields.ParseField77B(tok.Value)
			if err != nil {
				return MT104{}, err
			}
			txn.Field77B = &f
		}
		if tok, ok := tr.Next("33B"); ok {
			f, err := fields.ParseField33B(tok.Value)
			if err != nil {
				return MT104{}, err
			}
			txn.Field33B = &f
		}
		if tok, ok := tr.Next("71A"); ok {
			f, err := fields.ParseField71A(tok.Value)
			if err != nil {
				return MT104{}, err
			}
			txn.Field71A = &f
		}
		if tok, ok := tr.Next("71F"); ok {
			f, err := fields.ParseField71F(tok.Value)
			if err != nil {
				return MT104{}, err
			}
			txn.Field71F = &f
		}
		if tok, ok := tr.Next("71G"); ok {
			f, err := fields.ParseField71G(tok.Value)
			if err != nil {
				return MT104{}, err
			}
			txn.Field71G = &f
		}
		if tok, ok := tr.Next("36"); ok {
			f, err := fields.ParseField36(tok.Value)
			if err != nil {
				return MT104{}, err
			}
			txn.Field36 = &f
		}

		m.Transactions = append(m.Transactions, txn)
	}

	if len(m.Transactions) == 0 {
		return MT104{}, missingField("21")
	}

	if tok, ok := tr.Next("32B"); ok {
		f, err := fields.ParseField32B(tok.Value)
		if err != nil {
			return MT104{}, err
		}
		m.Field32B = &f
		if tok, ok := tr.Next("19"); ok {
			f, err := fields.ParseField19(tok.Value)
			if err != nil {
				return MT104{}, err
			}
			m.Field19 = &f
		}
		if tok, ok := tr.Next("71F"); ok {
			f, err := fields.ParseField71F(tok.Value)
			if err != nil {
				return MT104{}, err
			}
			m.Field71F = &f
		}
		if tok, ok := tr.Next("71G"); ok {
			f, err := fields.ParseField71G(tok.Value)
			if err != nil {
				return MT104{}, err
			}
			m.Field71G = &f
		}
		if tok, variant, ok := tr.NextVariant("53", "ABD", false); ok {
			f, err := fields.ParseField53WithVariant(tok.Value, variant)
			if err != nil {
				return MT104{}, err
			}
			m.Field53 = &f
		}
	}

	if rem := tr.Remaining(); len(rem) > 0 {
		return MT104{}, unexpectedField(rem[0].Tag)
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
		Message: "unexpected field for MT104",
	}
}
