package mt103

import (
	"strings"

	"github.com/deltran/swiftmt/internal/swiftmt/fields"
)

// ToWire renders the MT103 back to its block 4 text, in the same
// field order as to_mt_string, terminated by a lone "-" line.
func (m MT103) ToWire() string {
	var b strings.Builder
	line := func(tag, value string) {
		b.WriteString(":")
		b.WriteString(tag)
		b.WriteString(":")
		b.WriteString(value)
		b.WriteString("\n")
	}

	line("20", m.Field20.ToWire())
	for _, f := range m.Field13C {
		line("13C", f.ToWire())
	}
	line("23B", m.Field23B.ToWire())
	for _, f := range m.Field23E {
		line("23E", f.ToWire())
	}
	if m.Field26T != nil {
		line("26T", m.Field26T.ToWire())
	}
	line("32A", m.Field32A.ToWire())
	if m.Field33B != nil {
		line("33B", m.Field33B.ToWire())
	}
	if m.Field36 != nil {
		line("36", m.Field36.ToWire())
	}
	line(variantTag("50", m.Field50.Opt), m.Field50.ToWire())
	if m.Field51A != nil {
		line("51A", m.Field51A.ToWire())
	}
	if m.Field52 != nil {
		line(variantTag("52", m.Field52.Opt), m.Field52.ToWire())
	}
	if m.Field53 != nil {
		line(variantTag("53", m.Field53.Opt), m.Field53.ToWire())
	}
	if m.Field54 != nil {
		line(variantTag("54", m.Field54.Opt), m.Field54.ToWire())
	}
	if m.Field55 != nil {
		line(variantTag("55", m.Field55.Opt), m.Field55.ToWire())
	}
	if m.Field56 != nil {
		line(variantTag("56", m.Field56.Opt), m.Field56.ToWire())
	}
	if m.Field57 != nil {
		line(variantTag("57", m.Field57.Opt), m.Field57.ToWire())
	}
	line(variantTag59(m.Field59.Opt), m.Field59.ToWire())
	if m.Field70 != nil {
		line("70", m.Field70.ToWire())
	}
	line("71A", m.Field71A.ToWire())
	for _, f := range m.Field71F {
		line("71F", f.ToWire())
	}
	if m.Field71G != nil {
		line("71G", m.Field71G.ToWire())
	}
	if m.Field72 != nil {
		line("72", m.Field72.ToWire())
	}
	if m.Field77B != nil {
		line("77B", m.Field77B.ToWire())
	}
	if m.Field77T != nil {
		line("77T", m.Field77T.ToWire())
	}

	b.WriteString("-")
	return b.String()
}

func variantTag(base string, opt fields.Option) string {
	if opt == fields.OptionNone {
		return base
	}
	return base + string(byte(opt))
}

func variantTag59(opt fields.Option) string {
	return variantTag("59", opt)
}
