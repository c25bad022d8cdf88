package mt101

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

func field50Tag(ip *fields.Field50InstructingParty, oc *fields.Field50OrderingCustomerFGH) (string, string) {
	if ip != nil {
		return variantTag("50", ip.Opt), ip.ToWire()
	}
	if oc != nil {
		return variantTag("50", oc.Opt), oc.ToWire()
	}
	return "", ""
}

// ToWire renders the MT101 back to its block 4 text.
func (m MT101) ToWire() string {
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
	line("28D", m.Field28D.ToWire())
	if tag, value := field50Tag(m.InstructingParty, m.OrderingCustomer); tag != "" {
		line(tag, value)
	}
	if m.Field52A != nil {
		line(variantTag("52", m.Field52A.Opt), m.Field52A.ToWire())
	}
	if m.Field51A != nil {
		line("51A", m.Field51A.ToWire())
	}
	line("30", m.Field30.ToWire())
	if m.Field25 != nil {
		line("25", m.Field25.ToWire())
	}

	for _, txn := range m.Transactions {
		line("21", txn.Field21.ToWire())
		if txn.Field21F != nil {
			line("21F", txn.Field21F.ToWire())
		}
		for _, e := range txn.Field23E {
			line("23E", e.ToWire())
		}
		line("32B", txn.Field32B.ToWire())
		if tag, value := field50Tag(txn.InstructingParty, txn.OrderingCustomer); tag != "" {
			line(tag, value)
		}
		if txn.Field52 != nil {
			line(variantTag("52", txn.Field52.Opt), txn.Field52.ToWire())
		}
		if txn.Field56 != nil {
			line(variantTag("56", txn.Field56.Opt), txn.Field56.ToWire())
		}
		if txn.Field57 != nil {
			line(variantTag("57", txn.Field57.Opt), txn.Field57.ToWire())
		}
		line(variantTag("59", txn.Field59.Opt), txn.Field59.ToWire())
		if txn.Field70 != nil {
			line("70", txn.Field70.ToWire())
		}
		if txn.Field77B != nil {
			line("77B", txn.Field77B.ToWire())
		}
		if txn.Field33B != nil {
			line("33B", txn.Field33B.ToWire())
		}
		line("71A", txn.Field71A.ToWire())
		if txn.Field25A != nil {
			line("25A", txn.Field25A.ToWire())
		}
		if txn.Field36 != nil {
			line("36", txn.Field36.ToWire())
		}
	}

	b.WriteString("-")
	return b.String()
}
