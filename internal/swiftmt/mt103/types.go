// Package mt103 implements the single customer credit transfer message
// (MT103): parsing, emission and network validation rules. Grounded on
// original_source/src/messages/mt103.rs.
package mt103

import "github.com/deltran/swiftmt/internal/swiftmt/fields"

// MT103 is a single customer credit transfer.
type MT103 struct {
	Field20  fields.Field20
	Field23B fields.Field23B
	Field32A fields.Field32A
	Field50  fields.Field50OrderingCustomerAFK
	Field59  fields.Field59
	Field71A fields.Field71A

	Field13C []fields.Field13C
	Field23E []fields.Field23E

	Field26T *fields.Field26T
	Field33B *fields.Field33B
	Field36  *fields.Field36
	Field51A *fields.Field51A
	Field52  *fields.Field52OrderingInstitution
	Field53  *fields.Field53SenderCorrespondent
	Field54  *fields.Field54ReceiverCorrespondent
	Field55  *fields.Field55ThirdReimbursementInstitution
	Field56  *fields.Field56Intermediary
	Field57  *fields.Field57AccountWithInstitution
	Field70  *fields.Field70
	Field71F []fields.Field71F
	Field71G *fields.Field71G
	Field72  *fields.Field72
	Field77B *fields.Field77B
	Field77T *fields.Field77T
}

// codesWithAdditionalInfo lists 23E codes that conventionally carry
// additional free-text information, per rule D97.
var codesWithAdditionalInfo = map[string]bool{
	"PHON": true, "PHOB": true, "PHOI": true,
	"TELE": true, "TELB": true, "TELI": true,
	"HOLD": true, "REPA": true,
}

// HasField56 reports whether field 56 is present.
func (m MT103) HasField56() bool { return m.Field56 != nil }

// HasField57 reports whether field 57 is present.
func (m MT103) HasField57() bool { return m.Field57 != nil }

// HasField53 reports whether field 53 is present.
func (m MT103) HasField53() bool { return m.Field53 != nil }

// HasField54 reports whether field 54 is present.
func (m MT103) HasField54() bool { return m.Field54 != nil }

// HasField55 reports whether field 55 is present.
func (m MT103) HasField55() bool { return m.Field55 != nil }

// HasField71F reports whether any field 71F occurrence is present.
func (m MT103) HasField71F() bool { return len(m.Field71F) > 0 }

// HasField71G reports whether field 71G is present.
func (m MT103) HasField71G() bool { return m.Field71G != nil }

// Has23ECode reports whether the given instruction code appears among
// the message's field 23E occurrences.
func (m MT103) Has23ECode(code string) bool {
	for _, e := range m.Field23E {
		if e.InstructionCode == code {
			return true
		}
	}
	return false
}

// IsSTPCompliant reports whether the message is compatible with
// straight-through processing: bank operation code SPRI and no field
// 56 (intermediary institution), mirroring the original's
// is_stp_compliant.
func (m MT103) IsSTPCompliant() bool {
	return m.Field23B.InstructionCode == "SPRI" && !m.HasField56()
}

// HasRejectCodes reports whether field 72 carries a /REJT/ structured
// code, signalling this message rejects an earlier payment.
func (m MT103) HasRejectCodes() bool {
	return m.field72ContainsCode("REJT")
}

// HasReturnCodes reports whether field 72 carries a /RETN/ structured
// code, signalling this message returns an earlier payment.
func (m MT103) HasReturnCodes() bool {
	return m.field72ContainsCode("RETN")
}

func (m MT103) field72ContainsCode(code string) bool {
	if m.Field72 == nil {
		return false
	}
	needle := "/" + code + "/"
	for _, l := range m.Field72.Lines {
		if len(l) >= len(needle) && l[:len(needle)] == needle {
			return true
		}
	}
	return false
}
