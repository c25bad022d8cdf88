// Package mt940 implements the customer statement message (MT940):
// an account's opening balance, a repeating run of statement lines
// (each optionally annotated with information to account owner), and
// a closing balance. No original-source reference implementation was
// retrieved for this message type; its shape follows the general
// repeating sub-sequence mechanism shared with mt107/mt101/mt104 plus
// the balance-field codec.
package mt940

import "github.com/deltran/swiftmt/internal/swiftmt/fields"

// StatementLine is one :61:/:86: pair.
type StatementLine struct {
	Field61 fields.Field61
	Field86 *fields.Field86
}

// MT940 is a customer account statement.
type MT940 struct {
	Field20      fields.Field20
	Field21      *fields.Field21NoOption
	Field25      fields.Field25NoOption
	Field28C     fields.Field28C
	OpeningF     *fields.Field60F
	OpeningM     *fields.Field60M
	Lines        []StatementLine
	ClosingF     *fields.Field62F
	ClosingM     *fields.Field62M
	Field64      *fields.Field64
	Field65      []fields.Field65
	Field86Final *fields.Field86
}
