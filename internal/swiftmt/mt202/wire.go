package mt202

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

// ToWire renders the MT202 back to its block 4 text.
func (m MT202) ToWire() string {
	var b strings.Builder
	line := func(tag, value string) {
		b.WriteString(":")
		b.WriteString(tag)
		b.WriteString(":")
		b.WriteString(value)
		b.WriteString("\n")
	}

	line("20", m.Field20.ToWire())
	line("21", m.Field21.ToWire())
	for _, t := range m.Field13C {
		line("13C", t.ToWire())
	}
	line("32A", m.Field32A.ToWire())
	line(variantTag("52", m.Field52.Opt), m.Field52.ToWire())
	if m.Field53 != nil {
		line(variantTag("53", m.Field53.Opt), m.Field53.ToWire())
	}
	if m.Field56 != nil {
		line(variantTag("56", m.Field56.Opt), m.Field56.ToWire())
	}
	if m.Field57 != nil {
		line(variantTag("57", m.Field57.Opt), m.Field57.ToWire())
	}
	line(variantTag("58", m.Field58.Opt), m.Field58.ToWire())
	if m.Field72 != nil {
		line("72", m.Field72.ToWire())
	}

	if m.CoverOrderingCustomer != nil {
		line(variantTag("50", m.CoverOrderingCustomer.Opt), m.CoverOrderingCustomer.ToWire())
	}
	if m.CoverOrderingInst != nil {
		line(variantTag("52", m.CoverOrderingInst.Opt), m.CoverOrderingInst.ToWire())
	}
	if m.CoverIntermediary != nil {
		line(variantTag("56", m.CoverIntermediary.Opt), m.CoverIntermediary.ToWire())
	}
	if m.CoverAccountWith != nil {
		line(variantTag("57", m.CoverAccountWith.Opt), m.CoverAccountWith.ToWire())
	}
	if m.CoverBeneficiary != nil {
		line(variantTag("59", m.CoverBeneficiary.Opt), m.CoverBeneficiary.ToWire())
	}
	if m.CoverRemittance != nil {
		line("70", m.CoverRemittance.ToWire())
	}
	if m.CoverInstructedAmount != nil {
		line("33B", m.CoverInstructedAmount.ToWire())
	}
	if m.CoverSenderToReceiver != nil {
		line("72", m.CoverSenderToReceiver.ToWire())
	}

	b.WriteString("-")
	return b.String()
}
