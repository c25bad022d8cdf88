package mt935

import "strings"

// ToWire renders the MT935 back to its block 4 text.
func (m MT935) ToWire() string {
	var b strings.Builder
	line := func(tag, value string) {
		b.WriteString(":")
		b.WriteString(tag)
		b.WriteString(":")
		b.WriteString(value)
		b.WriteString("\n")
	}

	line("20", m.Field20.ToWire())
	for _, c := range m.Changes {
		if c.Account != nil {
			line("25", c.Account.ToWire())
		} else if c.Market != nil {
			line("23", c.Market.ToWire())
		}
		line("30", c.Date.ToWire())
		line("37H", c.Rate.ToWire())
	}
	if m.Field72 != nil {
		line("72", m.Field72.ToWire())
	}

	b.WriteString("-")
	return b.String()
}
