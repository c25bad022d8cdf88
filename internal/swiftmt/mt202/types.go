// Package mt202 implements the general financial institution transfer
// message (MT202), including its COV variant carrying an underlying
// customer-credit-transfer cover sequence. Grounded on
// swift-mt-message/src/messages/mt205.rs.
package mt202

import "github.com/deltran/swiftmt/internal/swiftmt/fields"

// MT202 is a single-sequence institution transfer, optionally carrying
// a cover sub-sequence (fields 50/52/56/57/59/70/72 of the underlying
// customer credit transfer) when used as an MT202.COV.
type MT202 struct {
	Field20  fields.Field20
	Field21  fields.Field21NoOption
	Field13C []fields.Field13C
	Field32A fields.Field32A
	Field52  fields.Field52OrderingInstitution
	Field53  *fields.Field53SenderCorrespondent
	Field56  *fields.Field56Intermediary
	Field57  *fields.Field57AccountWithInstitution
	Field58  fields.Field58BeneficiaryInstitution
	Field72  *fields.Field72

	// Cover sequence - present only for MT202.COV.
	CoverOrderingCustomer *fields.Field50OrderingCustomerAFK
	CoverOrderingInst     *fields.Field52OrderingInstitution
	CoverIntermediary     *fields.Field56Intermediary
	CoverAccountWith      *fields.Field57AccountWithInstitution
	CoverBeneficiary      *fields.Field59
	CoverRemittance       *fields.Field70
	CoverInstructedAmount *fields.Field33B
	CoverSenderToReceiver *fields.Field72
}

// IsCover reports whether this message carries a cover sequence.
func (m MT202) IsCover() bool {
	return m.CoverOrderingCustomer != nil || m.CoverBeneficiary != nil || m.CoverRemittance != nil
}
