package format

import "strings"

// Match interprets any Node against the full input string s, requiring
// the entire input to be consumed. It returns the flattened list of
// captured leaf components in the order atoms/lines were matched.
func Match(n Node, s string) ([]string, bool) {
	switch v := n.(type) {
	case Concat:
		comps, rest, ok := MatchConcat(v, s)
		if !ok || rest != "" {
			return nil, false
		}
		return comps, true

	case Optional:
		if s == "" {
			return nil, true
		}
		return Match(v.Inner, s)

	case Slash:
		rest := s
		if !strings.HasPrefix(rest, "/") {
			return nil, false
		}
		rest = rest[1:]
		if v.Trailing {
			idx := strings.IndexByte(rest, '/')
			if idx < 0 {
				return nil, false
			}
			return Match(v.Inner, rest[:idx]+"\x00"+rest[idx+1:])
		}
		return Match(v.Inner, rest)

	case Repeat:
		lines := strings.Split(s, "\n")
		if len(lines) > v.N {
			return nil, false
		}
		var all []string
		for _, line := range lines {
			comps, ok := Match(v.Inner, line)
			if !ok {
				return nil, false
			}
			all = append(all, comps...)
		}
		return all, true

	default:
		return nil, false
	}
}

// Emit renders components back into wire form for n, the inverse of
// Match. Callers must supply components in the same shape Match would
// have produced.
func Emit(n Node, parts []string) string {
	switch v := n.(type) {
	case Concat:
		return EmitConcat(v, parts)
	case Optional:
		if len(parts) == 0 {
			return ""
		}
		return Emit(v.Inner, parts)
	case Slash:
		return "/" + Emit(v.Inner, parts)
	default:
		return strings.Join(parts, "")
	}
}
