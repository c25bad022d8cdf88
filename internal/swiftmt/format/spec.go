// Package format implements the small format-spec grammar shared by
// every field codec: a compact AST over SWIFT's "<len>[!]<class>"
// atoms, composed into concatenations, optional groups, slash
// compounds and line repetitions, interpreted by one matcher and one
// emitter rather than a per-field regular expression.
package format

import (
	"strings"

	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// Class identifies one of the SWIFT character classes an atom is
// restricted to.
type Class byte

const (
	ClassN Class = 'n' // digits
	ClassA Class = 'a' // uppercase letters
	ClassC Class = 'c' // uppercase alphanumeric
	ClassX Class = 'x' // general text
	ClassD Class = 'd' // numeric with decimal separator
	ClassY Class = 'y' // level A charset (treated as X, no field in scope needs the distinction)
	ClassT Class = 't' // time digits
)

// Node is one element of a format spec's AST.
type Node interface {
	node()
}

// Atom is a single "<len>[!]<class>" component: Exact means the
// component must be exactly Len characters; otherwise it may be up to
// Len characters.
type Atom struct {
	Len   int
	Exact bool
	Class Class
}

func (Atom) node() {}

// Concat is a fixed sequence of atoms with no separators between them.
// Every atom but the last must be Exact, since the matcher is
// anchored and non-backtracking: only the final atom may consume a
// variable-length run.
type Concat struct {
	Atoms []Atom
}

func (Concat) node() {}

// Optional wraps a node that may be entirely absent from the input.
type Optional struct {
	Inner Node
}

func (Optional) node() {}

// Slash wraps a node whose wire form is prefixed with a literal "/"
// and, for the compound form, suffixed with another "/" separating it
// from a following component.
type Slash struct {
	Inner      Node
	Trailing   bool // true if a trailing slash also delimits this component
}

func (Slash) node() {}

// Repeat matches up to N lines of Inner, each line separated by \n.
type Repeat struct {
	N     int
	Inner Node
}

func (Repeat) node() {}

func classMatches(c Class, s string) bool {
	switch c {
	case ClassN, ClassT:
		return primitives.ClassN(s)
	case ClassA:
		return primitives.ClassA(s)
	case ClassC:
		return primitives.ClassC(s)
	case ClassX, ClassY:
		return primitives.ClassX(s)
	case ClassD:
		return primitives.ClassD(s)
	default:
		return false
	}
}

// matchAtom consumes this atom's characters from the front of s,
// returning the captured component and the remaining input.
func matchAtom(a Atom, s string, isLast bool) (component, rest string, ok bool) {
	if a.Exact || !isLast {
		n := a.Len
		if len(s) < n {
			n = len(s)
		}
		if a.Exact && len(s) < a.Len {
			return "", s, false
		}
		candidate := s[:n]
		if !classMatches(a.Class, candidate) {
			return "", s, false
		}
		return candidate, s[n:], true
	}
	// Final, non-exact atom: take the first min(Len, len(s))
	// characters; the match fails unless all of them are class-valid.
	max := a.Len
	if len(s) < max {
		max = len(s)
	}
	candidate := s[:max]
	if !classMatches(a.Class, candidate) {
		return "", s, false
	}
	return candidate, s[max:], true
}

// MatchConcat matches a Concat node against s, returning its captured
// components in order and any unconsumed remainder.
func MatchConcat(c Concat, s string) (components []string, rest string, ok bool) {
	rest = s
	for i, a := range c.Atoms {
		isLast := i == len(c.Atoms)-1
		comp, r, matched := matchAtom(a, rest, isLast)
		if !matched {
			return nil, s, false
		}
		components = append(components, comp)
		rest = r
	}
	return components, rest, true
}

// EmitConcat renders a Concat's components back to wire form. len(parts)
// must equal len(c.Atoms).
func EmitConcat(c Concat, parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p)
	}
	return b.String()
}
