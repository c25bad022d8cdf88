package primitives

import "strings"

// swiftSpecial is the literal set of extra characters the SWIFT "x"
// charset permits beyond alphanumerics and space.
const swiftSpecial = "/-?:().,'+{}\r\n%&*;<=>@[]_$!\"#|"

// ClassN reports whether s consists only of digits.
func ClassN(s string) bool {
	return isAllDigits(s)
}

// ClassA reports whether s consists only of uppercase letters.
func ClassA(s string) bool {
	return isAllUpperAlpha(s)
}

// ClassC reports whether s consists only of uppercase letters and
// digits.
func ClassC(s string) bool {
	return isAllAlphanumericUpper(s)
}

// ClassX reports whether s is a valid SWIFT general-text ("x")
// string: alphanumeric (either case), space, or one of the
// swiftSpecial punctuation characters.
func ClassX(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == ' ':
		case strings.ContainsRune(swiftSpecial, r):
		default:
			return false
		}
	}
	return true
}

// ClassD reports whether s is a valid numeric-with-decimal ("d") atom:
// digits with at most one fractional separator (comma or dot), no
// sign and no thousands grouping.
func ClassD(s string) bool {
	if s == "" {
		return false
	}
	seps := 0
	for _, r := range s {
		if r == ',' || r == '.' {
			seps++
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return seps <= 1
}
