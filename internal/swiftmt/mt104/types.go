// Package mt104 implements the customer direct debit and request for
// debit transfer message (MT104): parsing, emission and network
// validation rules. Grounded on
// swift-mt-message/src/messages/mt104.rs.
package mt104

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

// MT104 is a customer direct debit / request for debit transfer,
// optionally a request-for-debit (RFDD) variant in which sequence C
// is absent entirely.
type MT104 struct {
	Field20  fields.Field20
	Field21R *fields.Field21R
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

	Transactions []Transaction

	// Sequence C - absent for the RFDD (request only) variant.
	Field32B *fields.Field32B
	Field19  *fields.Field19
	Field71F *fields.Field71F
	Field71G *fields.Field71G
	Field53  *fields.Field53SenderCorrespondent
}
