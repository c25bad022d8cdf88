package header

import "fmt"

// Trailer is block 5: security and control information. Grounded on
// original_source/src/headers/mod.rs Trailer.
type Trailer struct {
	Checksum                 string
	TestAndTraining          bool
	PossibleDuplicateEmission *PDEPDM
	DelayedMessage            bool
	MessageReference          *MessageReferenceMRF
	PossibleDuplicateMessage  *PDEPDM
	SystemOriginatedMessage   *PDEPDM
	MAC                       string
}

// PDEPDM is the shared shape of PDE/PDM/SYS: an optional time plus an
// optional embedded message reference.
type PDEPDM struct {
	Time      string
	Reference *MessageInputReference106
}

// MessageReferenceMRF is the MRF tag's payload: date + full time + an
// embedded message reference.
type MessageReferenceMRF struct {
	Date      string
	FullTime  string
	Reference MessageInputReference106
}

func parsePDEPDM(value string) *PDEPDM {
	p := &PDEPDM{}
	if len(value) >= 4 {
		p.Time = value[0:4]
	}
	if len(value) > 4 {
		rest := value[4:]
		if len(rest) >= 28 {
			p.Reference = &MessageInputReference106{
				Date:           rest[0:6],
				LTIdentifier:   rest[6:18],
				BranchCode:     rest[18:21],
				SessionNumber:  rest[21:25],
				SequenceNumber: rest[25:],
			}
		}
	}
	return p
}

// ParseTrailer parses block 5's raw `{tag:value}...` content.
func ParseTrailer(block5 string) Trailer {
	var t Trailer
	if v, ok := extractTag(block5, "CHK"); ok {
		t.Checksum = v
	}
	t.TestAndTraining = hasEmptyTag(block5, "TNG")
	if v, ok := extractTag(block5, "PDE"); ok {
		t.PossibleDuplicateEmission = parsePDEPDM(v)
	}
	t.DelayedMessage = hasEmptyTag(block5, "DLM")
	if v, ok := extractTag(block5, "MRF"); ok && len(v) >= 10+28 {
		t.MessageReference = &MessageReferenceMRF{
			Date:     v[0:6],
			FullTime: v[6:10],
			Reference: MessageInputReference106{
				Date:           v[10:16],
				LTIdentifier:   v[16:28],
				BranchCode:     v[28:31],
				SessionNumber:  v[31:35],
				SequenceNumber: v[35:],
			},
		}
	}
	if v, ok := extractTag(block5, "PDM"); ok {
		t.PossibleDuplicateMessage = parsePDEPDM(v)
	}
	if v, ok := extractTag(block5, "SYS"); ok {
		t.SystemOriginatedMessage = parsePDEPDM(v)
	}
	if v, ok := extractTag(block5, "MAC"); ok {
		t.MAC = v
	}
	return t
}

func (p PDEPDM) wire() string {
	s := p.Time
	if p.Reference != nil {
		r := p.Reference
		s += r.Date + r.LTIdentifier + r.BranchCode + r.SessionNumber + r.SequenceNumber
	}
	return s
}

// ToWire renders block 5 back to its `{tag:value}...` form.
func (t Trailer) ToWire() string {
	var b []byte
	add := func(tag, value string) {
		b = append(b, []byte(fmt.Sprintf("{%s:%s}", tag, value))...)
	}
	if t.Checksum != "" {
		add("CHK", t.Checksum)
	}
	if t.TestAndTraining {
		b = append(b, []byte("{TNG}")...)
	}
	if t.PossibleDuplicateEmission != nil {
		add("PDE", t.PossibleDuplicateEmission.wire())
	}
	if t.DelayedMessage {
		b = append(b, []byte("{DLM}")...)
	}
	if t.MessageReference != nil {
		m := t.MessageReference
		add("MRF", m.Date+m.FullTime+m.Reference.Date+m.Reference.LTIdentifier+m.Reference.BranchCode+m.Reference.SessionNumber+m.Reference.SequenceNumber)
	}
	if t.PossibleDuplicateMessage != nil {
		add("PDM", t.PossibleDuplicateMessage.wire())
	}
	if t.SystemOriginatedMessage != nil {
		add("SYS", t.SystemOriginatedMessage.wire())
	}
	if t.MAC != "" {
		add("MAC", t.MAC)
	}
	return string(b)
}
