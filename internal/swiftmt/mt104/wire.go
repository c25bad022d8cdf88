package mt104

import (
	"strings"

	"github.com/deltran/swiftmt/internal/swiftmt/fields"
)

func variantTag(base string, opt fields.Option) string {
	if opt == fields.OptionNone {
		return base
	}
	return base + string(byte(opt))
}

func field50PairLines(line func(tag, value string), ip *fields.Field50InstructingParty, cr *fields.Field50Creditor) {
	if ip != nil {
		line(variantTag("50", ip.Opt), ip.ToWire())
	}
	if cr != nil {
		line(variantTag("50", cr.Opt), cr.ToWire())
	}
}

// ToWire renders the MT104 back to its block 4 text.
func (m MT104) ToWire() string {
	var b strings.Builder
	line := func(tag, value string) {
		b.WriteString(":")
		b.WriteString(tag)
		b.WriteString(":")
		b.WriteString(value)
		b.WriteString("\n")
	}

	line("20", m.Field20.ToWire())
	if m.Field21R != nil {
		line("21R", m.Field21R.ToWire())
	}
	if m.Field23E != nil {
		line("23E", m.Field23E.ToWire())
	}
	if m.Field21E != nil {
		line("21E", m.Field21E.ToWire())
	}
	line("30", m.Field30.ToWire())
	if m.Field51A != nil {
		line("51A", m.Field51A.ToWire())
	}
	field50PairLines(line, m.InstructingParty, m.Creditor)
	if m.Field52 != nil {
		line(variantTag("52", m.Field52.Opt), m.Field52.ToWire())
	}
	if m.Field26T != nil {
		line("26T", m.Field26T.ToWire())
	}
	if m.Field77B != nil {
		line("77B", m.Field77B.ToWire())
	}
	if m.Field71A != nil {
		line("71A", m.Field71A.ToWire())
	}
	if m.Field72 != nil {
		line("72", m.Field72.ToWire())
	}

	for _, txn := range m.Transactions {
		line("21", txn.Field21.ToWire())
		if txn.Field23E != nil {
			line("23E", txn.Field23E.ToWire())
		}
		if txn.Field21C != nil {
			line("21C", txn.Field21C.ToWire())
		}
		if txn.Field21D != nil {
			line("21D", txn.Field21D.ToWire())
		}
		if txn.Field21E != nil {
			line("21E", txn.Field21E.ToWire())
		}
		line("32B", txn.Field32B.ToWire())
		field50PairLines(line, txn.InstructingParty, txn.Creditor)
		if txn.Field52 != nil {
			line(variantTag("52", txn.Field52.Opt), txn.Field52.ToWire())
		}
		if txn.Field57 != nil {
			line(variantTag("57", txn.Field57.Opt), txn.Field57.ToWire())
		}
		line(variantTag("59", txn.Field59.Opt), txn.Field59.ToWire())
		if txn.Field70 != nil {
			line("70", txn.Field70.ToWire())
		}
		if txn.Field26T != nil {
			line("26T", txn.Field26T.ToWire())
		}
		if txn.Field77B != nil {
			line("77B", txn.Field77B.ToWire())
		}
		if txn.Field33B != nil {
			line("33B", txn.Field33B.ToWire())
		}
		if txn.Field71A != nil {
			line("71A", txn.Field71A.ToWire())
		}
		if txn.Field71F != nil {
			line("71F", txn.Field71F.ToWire())
		}
		if txn.Field71G != nil {
			line("71G", txn.Field71G.ToWire())
		}
		if txn.Field36 != nil {
			line("36", txn.Field36.ToWire())
		}
	}

	if m.Field32B != nil {
		line("32B", m.Field32B.ToWire())
		if m.Field19 != nil {
			line("19", m.Field19.ToWire())
		}
		if m.Field71F != nil {
			line("71F", m.Field71F.ToWire())
		}
		if m.Field71G != nil {
			line("71G", m.Field71G.ToWire())
		}
		if m.Field53 != nil {
			line(variantTag("53", m.Field53.Opt), m.Field53.ToWire())
		}
	}

	b.WriteString("-")
	return b.String()
}
