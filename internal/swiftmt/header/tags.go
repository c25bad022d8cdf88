package header

import "strings"

// extractTag returns the value of the first `{tag:value}` occurrence
// in s, and whether it was present. Shared by block 3 and block 5,
// both of which are flat sequences of braced sub-tags rather than the
// positional fixed layout blocks 1/2 use.
func extractTag(s, tag string) (string, bool) {
	needle := "{" + tag + ":"
	start := strings.Index(s, needle)
	if start < 0 {
		return "", false
	}
	rest := s[start+len(needle):]
	end := strings.IndexByte(rest, '}')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

func hasEmptyTag(s, tag string) bool {
	return strings.Contains(s, "{"+tag+"}") || strings.Contains(s, "{"+tag+":}")
}
