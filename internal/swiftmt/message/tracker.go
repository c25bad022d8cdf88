// Package message provides the field-consumption Tracker that each
// message-type package's Parse uses to assemble block 4 tokens into its
// typed message body; emission lives in each type's own ToWire.
// Grounded on
// original_source/swift-mt-message/src/parser/parser_impl.rs
// (FieldConsumptionTracker, MessageParser) and the teacher's own
// hand-rolled parseBlock4MT103 switch in internal/swift/parser.go,
// generalized into a reusable sequential field-consumption helper so
// every message type (not just MT103) can walk its schema the same
// way.
package message

import (
	"sort"

	"github.com/deltran/swiftmt/internal/swiftmt/block"
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// Tracker consumes tokens for a given tag in ascending wire-position
// order, so that a message with repeated or sub-sequence-scoped
// occurrences of the same tag (e.g. field 50 appearing once in
// sequence A and once per sequence B occurrence in MT107) hands each
// caller the next not-yet-claimed occurrence rather than always the
// first.
type Tracker struct {
	byTag    map[string][]block.Token
	consumed map[string]map[int]bool
}

// NewTracker groups tokens by tag, preserving wire order within a tag.
func NewTracker(tokens []block.Token) *Tracker {
	byTag := make(map[string][]block.Token)
	for _, t := range tokens {
		byTag[t.Tag] = append(byTag[t.Tag], t)
	}
	return &Tracker{byTag: byTag, consumed: make(map[string]map[int]bool)}
}

// Next returns the next unconsumed token for tag, in wire order.
func (t *Tracker) Next(tag string) (block.Token, bool) {
	for _, tok := range t.byTag[tag] {
		if !t.isConsumed(tag, tok.Position) {
			t.markConsumed(tag, tok.Position)
			return tok, true
		}
	}
	return block.Token{}, false
}

// NextVariant tries each option letter in order (as tag+letter, e.g.
// "50A", "50F", "50K") and, if allowBare is true, the bare tag itself,
// returning the first unconsumed match found at the lowest wire
// position across all candidate spellings. This mirrors
// parse_variant_field's behavior of picking whichever lettered option
// is actually present, not a fixed preference order.
func (t *Tracker) NextVariant(tag, options string, allowBare bool) (block.Token, byte, bool) {
	best := block.Token{Position: -1}
	var bestVariant byte
	found := false

	consider := func(fullTag string, variant byte) {
		for _, tok := range t.byTag[fullTag] {
			if t.isConsumed(fullTag, tok.Position) {
				continue
			}
			if !found || tok.Position < best.Position {
				best = tok
				bestVariant = variant
				found = true
			}
			break
		}
	}

	if allowBare {
		consider(tag, 0)
	}
	for i := 0; i < len(options); i++ {
		consider(tag+string(options[i]), options[i])
	}

	if !found {
		return block.Token{}, 0, false
	}
	fullTag := tag
	if bestVariant != 0 {
		fullTag = tag + string(bestVariant)
	}
	t.markConsumed(fullTag, best.Position)
	return best, bestVariant, true
}

// PeekPosition returns the wire position of the next unconsumed token
// for tag without consuming it, used when a caller must choose among
// several entirely distinct candidate tags (rather than lettered
// variants of one tag) by wire order.
func (t *Tracker) PeekPosition(tag string) (int, bool) {
	for _, tok := range t.byTag[tag] {
		if !t.isConsumed(tag, tok.Position) {
			return tok.Position, true
		}
	}
	return 0, false
}

// Remaining returns every token across every tag still unconsumed, in
// wire order, used to verify full consumption once a message's schema
// has been walked to completion.
func (t *Tracker) Remaining() []block.Token {
	var out []block.Token
	for tag, toks := range t.byTag {
		for _, tok := range toks {
			if !t.isConsumed(tag, tok.Position) {
				out = append(out, tok)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

func (t *Tracker) isConsumed(tag string, pos int) bool {
	m, ok := t.consumed[tag]
	if !ok {
		return false
	}
	return m[pos]
}

func (t *Tracker) markConsumed(tag string, pos int) {
	m, ok := t.consumed[tag]
	if !ok {
		m = make(map[int]bool)
		t.consumed[tag] = m
	}
	m[pos] = true
}

// ErrIncompleteConsumption is returned when a message type's schema
// walk finishes but unconsumed tokens remain, indicating an unknown or
// misplaced field.
func ErrIncompleteConsumption(tag string, position int) error {
	return &primitives.SwiftError{
		Kind:    primitives.KindInvalidFormat,
		Code:    "T10",
		Tag:     tag,
		Message: "unexpected or misplaced field in block 4",
	}
}
