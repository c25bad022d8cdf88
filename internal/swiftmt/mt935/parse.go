package mt935

import (
	"github.com/deltran/swiftmt/internal/swiftmt/block"
	"github.com/deltran/swiftmt/internal/swiftmt/fields"
	"github.com/deltran/swiftmt/internal/swiftmt/message"
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// Parse assembles an MT935 from block 4's tokenized fields: a
// reference followed by one or more rate-change occurrences, each
// identified by account (25) or market (23), then a mandatory
// effective date (30) and new rate (37H).
func Parse(block4 string) (MT935, error) {
	tokens, err := block.TokenizeBlock4(block4)
	if err != nil {
		return MT935{}, err
	}
	tr := message.NewTracker(tokens)
	var m MT935

	tok, ok := tr.Next("20")
	if !ok {
		return MT935{}, missingField("20")
	}
	if m.Field20, err = fields.ParseField20(tok.Value); err != nil {
		return MT935{}, err
	}

	for {
		var change RateChange
		posAccount, hasAccount := tr.PeekPosition("25")
		posMarket, hasMarket := tr.PeekPosition("23")
		if !hasAccount && !hasMarket {
			break
		}
		useAccount := hasAccount && (!hasMarket || posAccount < posMarket)

		if useAccount {
			tok, _ := tr.Next("25")
			f, err := fields.ParseField25NoOption(tok.Value)
			if err != nil {
				return MT935{}, err
			}
			change.Account = &f
		} else {
			tok, _ := tr.Next("23")
			f, err := fields.ParseField23RateChange(tok.Value)
			if err != nil {
				return MT935{}, err
			}
			change.Market = &f
		}

		tok, ok := tr.Next("30")
		if !ok {
			return MT935{}, missingField("30")
		}
		if change.Date, err = fields.ParseField30(tok.Value); err != nil {
			return MT935{}, err
		}

		tok, ok = tr.Next("37H")
		if !ok {
			return MT935{}, missingField("37H")
		}
		if change.Rate, err = fields.ParseField37H(tok.Value); err != nil {
			return MT935{}, err
		}

		m.Changes = append(m.Changes, change)
	}

	if len(m.Changes) == 0 {
		return MT935{}, missingField("25/23")
	}

	if tok, ok := tr.Next("72"); ok {
		f, err := fields.ParseField72(tok.Value)
		if err != nil {
			return MT935{}, err
		}
		m.Field72 = &f
	}

	if rem := tr.Remaining(); len(rem) > 0 {
		return MT935{}, unexpectedField(rem[0].Tag)
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
		Message: "unexpected field for MT935",
	}
}
