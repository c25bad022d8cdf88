package mt935

import (
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
	"github.com/deltran/swiftmt/internal/swiftmt/validate"
)

func contentError(code, tag, message string) primitives.SwiftError {
	return primitives.SwiftError{Kind: primitives.KindSwiftValidation, Code: code, Tag: tag, Message: message}
}

// Rules is the ordered set of MT935 network validation rules. No
// original-source reference exists for this message type; the rule
// below enforces the structural invariant the message exists to
// carry — a rate change always has exactly one identifying field.
var Rules = []validate.Rule[MT935]{
	{Name: "c1_identifier_exclusivity", Check: validateC1IdentifierExclusivity},
}

// ValidateNetworkRules runs every MT935 network validation rule.
func (m MT935) ValidateNetworkRules(stopOnFirstError bool) []primitives.SwiftError {
	return validate.Run(m, Rules, stopOnFirstError)
}

// C1: each rate change names exactly one of account (25) or market (23).
func validateC1IdentifierExclusivity(m MT935) []primitives.SwiftError {
	for _, c := range m.Changes {
		if (c.Account == nil) == (c.Market == nil) {
			return []primitives.SwiftError{contentError("C1", "25", "each rate change must name exactly one of field 25 or field 23")}
		}
	}
	return nil
}
