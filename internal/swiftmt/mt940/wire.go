package mt940

import "strings"

// ToWire renders the MT940 back to its block 4 text.
func (m MT940) ToWire() string {
	var b strings.Builder
	line := func(tag, value string) {
		b.WriteString(":")
		b.WriteString(tag)
		b.WriteString(":")
		b.WriteString(value)
		b.WriteString("\n")
	}

	line("20", m.Field20.ToWire())
	if m.Field21 != nil {
		line("21", m.Field21.ToWire())
	}
	line("25", m.Field25.ToWire())
	line("28C", m.Field28C.ToWire())
	if m.OpeningF != nil {
		line("60F", m.OpeningF.ToWire())
	} else if m.OpeningM != nil {
		line("60M", m.OpeningM.ToWire())
	}

	for _, l := range m.Lines {
		line("61", l.Field61.ToWire())
		if l.Field86 != nil {
			line("86", l.Field86.ToWire())
		}
	}

	if m.ClosingF != nil {
		line("62F", m.ClosingF.ToWire())
	} else if m.ClosingM != nil {
		line("62M", m.ClosingM.ToWire())
	}
	if m.Field64 != nil {
		line("64", m.Field64.ToWire())
	}
	for _, f := range m.Field65 {
		line("65", f.ToWire())
	}
	if m.Field86Final != nil {
		line("86", m.Field86Final.ToWire())
	}

	b.WriteString("-")
	return b.String()
}
