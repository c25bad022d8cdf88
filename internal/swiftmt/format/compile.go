package format

import "fmt"

// Spec pairs a format-spec label (the literal documentation string
// from the relevant SWIFT field doc comment, e.g. "6!n3!a15d") with
// its compiled Concat, so a field codec matches/emits through one
// value built once at package init instead of a raw Concat with no
// record of the string it came from. The label is exported purely for
// documentation and tests, per the interpreter's contract: Match
// composed with Emit must be the identity on previously matched input.
type Spec struct {
	Label  string
	Concat Concat
}

// Match runs the full-consumption matcher (see Match) against s.
func (sp Spec) Match(s string) ([]string, bool) {
	return Match(sp.Concat, s)
}

// Emit renders components back to wire form for sp.
func (sp Spec) Emit(parts []string) string {
	return Emit(sp.Concat, parts)
}

// Compile parses a SWIFT format-spec string such as "6!n3!a15d" into a
// Spec, so field codecs can hand Match/Emit a value built from the
// same textual spec their doc comments already cite instead of
// hand-slicing fixed offsets. The grammar is a run of
// "<len>[!]<class>" groups with no separators: digits giving the
// atom's length, an optional '!' marking it exact-length, and one
// class letter (n, a, c, x, d, y or t).
func Compile(label string) (Spec, error) {
	c, err := compileConcat(label)
	if err != nil {
		return Spec{}, err
	}
	return Spec{Label: label, Concat: c}, nil
}

// MustCompile is Compile for the package-level specs field codecs
// build once at init time; it panics on a malformed literal, which is
// this package's own bug rather than caller-supplied bad input.
func MustCompile(label string) Spec {
	sp, err := Compile(label)
	if err != nil {
		panic(err)
	}
	return sp
}

func compileConcat(spec string) (Concat, error) {
	var atoms []Atom
	i := 0
	for i < len(spec) {
		start := i
		for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
			i++
		}
		if i == start {
			return Concat{}, fmt.Errorf("format: %q: expected a length at position %d", spec, start)
		}
		length := 0
		for _, r := range spec[start:i] {
			length = length*10 + int(r-'0')
		}

		exact := false
		if i < len(spec) && spec[i] == '!' {
			exact = true
			i++
		}

		if i >= len(spec) {
			return Concat{}, fmt.Errorf("format: %q: expected a class letter at position %d", spec, i)
		}
		class := Class(spec[i])
		switch class {
		case ClassN, ClassA, ClassC, ClassX, ClassD, ClassY, ClassT:
		default:
			return Concat{}, fmt.Errorf("format: %q: unknown class %q at position %d", spec, spec[i], i)
		}
		i++

		atoms = append(atoms, Atom{Len: length, Exact: exact, Class: class})
	}
	if len(atoms) == 0 {
		return Concat{}, fmt.Errorf("format: %q: empty spec", spec)
	}
	for idx, a := range atoms[:len(atoms)-1] {
		if !a.Exact {
			return Concat{}, fmt.Errorf("format: %q: atom %d (%dc) is not the final atom and must be exact-length (\"!\")", spec, idx, a.Len)
		}
	}
	return Concat{Atoms: atoms}, nil
}
