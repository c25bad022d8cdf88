// Package sample builds deterministic fixture messages for every
// supported MT type, used by tests and the CLI's generate subcommand.
// The field codec package exposes no per-field Sample* constructors
// (the retrieval pack's Rust source has none to ground them on), so
// fixtures here are built the other way around: a canonical, known-
// valid block 4 literal per message type, fed through that type's own
// Parse — the same parser exercised by every other test in this
// module, so a fixture can never silently drift out of sync with the
// grammar it is supposed to exemplify.
package sample

import (
	"github.com/deltran/swiftmt/internal/swiftmt/mt101"
	"github.com/deltran/swiftmt/internal/swiftmt/mt103"
	"github.com/deltran/swiftmt/internal/swiftmt/mt104"
	"github.com/deltran/swiftmt/internal/swiftmt/mt107"
	"github.com/deltran/swiftmt/internal/swiftmt/mt202"
	"github.com/deltran/swiftmt/internal/swiftmt/mt935"
	"github.com/deltran/swiftmt/internal/swiftmt/mt940"
)

const mt103Block4 = ":20:REF123456789\n:23B:CRED\n:32A:250731USD1000,00\n:50K:/12345678\n" +
	"JOHN DOE\n123 MAIN ST\n:59:/98765432\nJANE SMITH\n:71A:OUR\n-"

const mt107Block4 = ":20:REF1\n:23E:AUTH\n:30:250731\n:50A:DEUTDEFF\n:21:TXNREF1\n" +
	":32B:EUR100,00\n:59:/12345678\nJOHN DOE\n:32B:EUR100,00\n-"

const mt101Block4 = ":20:REF1\n:28D:1/1\n:50H:/11112222\nJOHN DOE\n123 MAIN ST\n" +
	":30:250731\n:21:TX1\n:32B:EUR100,00\n:59:/123456\nJANE SMITH\n:71A:OUR\n-"

const mt104Block4 = ":20:REF1\n:30:250731\n:50A:DEUTDEFF\n:21:TX1\n:23E:AUTH\n" +
	":32B:EUR50,00\n:59:/12345678\nJOHN DOE\n:32B:EUR100,00\n:19:50,00\n-"

const mt202Block4 = ":20:REF1\n:21:RELREF1\n:32A:250731EUR1000,00\n:52A:DEUTDEFF\n:58A:BNPAFRPP\n-"

const mt940Block4 = ":20:STMT1\n:25:12345678\n:28C:1\n:60F:C250731EUR1000,00\n" +
	":61:2507310731C100,00NTRFREF1//BANKREF1\n:86:PAYMENT DETAILS\n:62F:C250731EUR1100,00\n-"

const mt935Block4 = ":20:REF1\n:25:12345678\n:30:250731\n:37H:C1,25\n-"

// SampleMT103 returns a deterministic single customer credit transfer.
func SampleMT103() mt103.MT103 {
	m, err := mt103.Parse(mt103Block4)
	if err != nil {
		panic("sample: invalid MT103 fixture: " + err.Error())
	}
	return m
}

// SampleMT107 returns a deterministic general direct debit message
// with one transaction.
func SampleMT107() mt107.MT107 {
	m, err := mt107.Parse(mt107Block4)
	if err != nil {
		panic("sample: invalid MT107 fixture: " + err.Error())
	}
	return m
}

// SampleMT101 returns a deterministic request for transfer message
// with one transaction.
func SampleMT101() mt101.MT101 {
	m, err := mt101.Parse(mt101Block4)
	if err != nil {
		panic("sample: invalid MT101 fixture: " + err.Error())
	}
	return m
}

// SampleMT104 returns a deterministic customer direct debit message
// with one transaction and an optional sequence C settlement total.
func SampleMT104() mt104.MT104 {
	m, err := mt104.Parse(mt104Block4)
	if err != nil {
		panic("sample: invalid MT104 fixture: " + err.Error())
	}
	return m
}

// SampleMT202 returns a deterministic general financial institution
// transfer (non-cover).
func SampleMT202() mt202.MT202 {
	m, err := mt202.Parse(mt202Block4)
	if err != nil {
		panic("sample: invalid MT202 fixture: " + err.Error())
	}
	return m
}

// SampleMT940 returns a deterministic customer statement with one
// statement line.
func SampleMT940() mt940.MT940 {
	m, err := mt940.Parse(mt940Block4)
	if err != nil {
		panic("sample: invalid MT940 fixture: " + err.Error())
	}
	return m
}

// SampleMT935 returns a deterministic rate change advice with one
// account-identified rate change.
func SampleMT935() mt935.MT935 {
	m, err := mt935.Parse(mt935Block4)
	if err != nil {
		panic("sample: invalid MT935 fixture: " + err.Error())
	}
	return m
}
