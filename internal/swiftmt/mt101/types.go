// Package mt101 implements the request-for-transfer message (MT101):
// parsing, emission and network validation rules. Grounded on
// swift-mt-message/src/messages/mt101.rs.
package mt101

import "github.com/deltran/swiftmt/internal/swiftmt/fields"

// Transaction is one sequence B occurrence.
type Transaction struct {
	Field21  fields.Field21NoOption
	Field21F *fields.Field21F
	Field23E []fields.Field23E
	Field32B fields.Field32B

	InstructingParty *fields.Field50InstructingParty
	OrderingCustomer *fields.Field50OrderingCustomerFGH

	Field52 *fields.Field52AccountServicingInstitution
	Field56 *fields.Field56Intermediary
	Field57 *fields.Field57AccountWithInstitution
	Field59 fields.Field59

	Field70  *fields.Field70
	Field77B *fields.Field77B
	Field33B *fields.Field33B
	Field71A fields.Field71A
	Field25A *fields.Field25A
	Field36  *fields.Field36
}

// MT101 is a request for transfer, potentially one of a chained set
// (Field28D).
type MT101 struct {
	Field20  fields.Field20
	Field21R *fields.Field21R
	Field28D fields.Field28D

	InstructingParty *fields.Field50InstructingParty
	OrderingCustomer *fields.Field50OrderingCustomerFGH

	Field52A *fields.Field52AccountServicingInstitution
	Field51A *fields.Field51A
	Field30  fields.Field30
	Field25  *fields.Field25NoOption

	Transactions []Transaction
}
