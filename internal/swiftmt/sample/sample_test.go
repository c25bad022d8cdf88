package sample

import "testing"

func TestSamplesParseAndEmit(t *testing.T) {
	cases := []struct {
		name  string
		build func() interface{ ToWire() string }
	}{
		{"MT103", func() interface{ ToWire() string } { m := SampleMT103(); return m }},
		{"MT107", func() interface{ ToWire() string } { m := SampleMT107(); return m }},
		{"MT101", func() interface{ ToWire() string } { m := SampleMT101(); return m }},
		{"MT104", func() interface{ ToWire() string } { m := SampleMT104(); return m }},
		{"MT202", func() interface{ ToWire() string } { m := SampleMT202(); return m }},
		{"MT940", func() interface{ ToWire() string } { m := SampleMT940(); return m }},
		{"MT935", func() interface{ ToWire() string } { m := SampleMT935(); return m }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.build()
			if m.ToWire() == "" {
				t.Fatalf("%s: ToWire produced empty text", tc.name)
			}
		})
	}
}
