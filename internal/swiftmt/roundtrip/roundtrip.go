// Package roundtrip verifies the codec's central invariant — parsing
// a message and re-emitting it reproduces the same wire text — and
// reports a human-readable diff when it does not. Each mtNNN package's
// TestToWireRoundTrip makes the same check on its own fixture without
// importing this package; Compare is used by the CLI's roundtrip
// subcommand, which takes arbitrary operator-supplied FIN text rather
// than a fixture already known to be well-formed.
package roundtrip

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/deltran/swiftmt/internal/swiftmt"
)

// Result is the outcome of comparing a message's first block 4
// emission (Original) against the emission produced by parsing that
// text and re-emitting it (ReEmitted).
type Result struct {
	MessageType string
	Original    string
	ReEmitted   string
	Equal       bool
	Diff        string
}

// Compare parses raw FIN text, re-emits the parsed message and diffs
// the two block 4 texts. It does not require the re-emitted text to
// be byte-identical to the original input (leading/trailing
// whitespace and non-canonical header padding are allowed-lossy, per
// the codec's documented round-trip contract) — it instead re-parses
// the re-emitted text and compares that second parse's output against
// the first emission, the same two-hop check every mtNNN package's
// TestToWireRoundTrip performs.
func Compare(raw string) (Result, error) {
	msg, mt, err := swiftmt.ParseMessageAuto(raw)
	if err != nil {
		return Result{}, err
	}
	first, err := swiftmt.ToWire(msg)
	if err != nil {
		return Result{}, err
	}

	msg2, err := reparseSameType(first, mt)
	if err != nil {
		return Result{}, fmt.Errorf("round-trip re-parse failed: %w", err)
	}
	second, err := swiftmt.ToWire(msg2)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		MessageType: mt,
		Original:    first,
		ReEmitted:   second,
		Equal:       first == second,
	}
	if !result.Equal {
		result.Diff = unifiedDiff(first, second)
	}
	return result, nil
}

// reparseSameType builds a FIN envelope carrying wire's block 4 text
// under the given MT code and routes it back through ParseMessageAuto,
// so the second parse exercises exactly the same dispatch path as the
// first.
func reparseSameType(wire, mt string) (any, error) {
	envelope := "{1:F01AAAAAAAAAAAA0000000000}{2:I" + mt + "AAAAAAAAAAAAN}{4:\n" + wire + "}"
	msg, _, err := swiftmt.ParseMessageAuto(envelope)
	return msg, err
}

func unifiedDiff(a, b string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "first-emission",
		ToFile:   "second-emission",
		Context:  2,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Sprintf("(failed to compute diff: %v)", err)
	}
	return text
}
