// Package mt107 implements the general direct debit message (MT107):
// parsing, emission and network validation rules. Grounded on
// original_source/src/messages/mt107.rs.
package mt107

import "github.com/deltran/swiftmt/internal/swiftmt/fields"

// Transaction is one sequence B occurrence.
type Transaction struct {
	Field21  fields.Field21NoOption
	Field23E *fields.Field23E
	Field21C *fields.Field21C
	Field21D *fields.Field21D
	Field21E *fields.Field21E
	Field32B fields.Field32B

	InstructingParty *fields.Field50InstructingParty
	Creditor         *fields.Field50Creditor

	Field52 *fields.Field52OrderingInstitution
	Field57 *fields.Field57AccountWithInstitution
	Field59 fields.Field59

	Field70  *fields.Field70
	Field26T *fields.Field26T
	Field77B *fields.Field77B
	Field33B *fields.Field33B
	Field71A *fields.Field71A
	Field71F *fields.Field71F
	Field71G *fields.Field71G
	Field36  *fields.Field36
}

// MT107 is a general direct debit instruction.
type MT107 struct {
	// Sequence A - general information
	Field20  fields.Field20
	Field23E *fields.Field23E
	Field21E *fields.Field21E
	Field30  fields.Field30
	Field51A *fields.Field51A

	InstructingParty *fields.Field50InstructingParty
	Creditor         *fields.Field50Creditor

	Field52  *fields.Field52OrderingInstitution
	Field26T *fields.Field26T
	Field77B *fields.Field77B
	Field71A *fields.Field71A
	Field72  *fields.Field72

	// Sequence B, repeated
	Transactions []Transaction

	// Sequence C - settlement details
	Field32B fields.Field32B
	Field19  *fields.Field19
	Field71F *fields.Field71F
	Field71G *fields.Field71G
	Field53  *fields.Field53SenderCorrespondent
}
