package block

import (
	"strings"

	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// Token is one `:TAG:VALUE` field occurrence from block 4, in document
// order. Position is its 0-based index among all tokens, used by the
// message assembler to track consumption order for repeated/optional
// slots.
type Token struct {
	Tag      string
	Value    string
	Position int
}

// TokenizeBlock4 splits block 4's text into an ordered list of field
// tokens. Each field starts at column 0 with `:TAG:`; any subsequent
// line that does not itself start a new field is a continuation line
// of the current field's value and is joined with a newline, mirroring
// how multi-line fields (50K's narrative lines, 72's structured
// narrative, etc.) are encoded on the wire. A final bare "-" line (the
// block 4 terminator) is dropped rather than joined to the last value.
// Generalizes the teacher's single-pass extractFields regex, which
// could not distinguish a continuation line from an embedded ":"
// inside a value.
func TokenizeBlock4(block4 string) ([]Token, error) {
	content := strings.TrimPrefix(block4, "\r\n")
	content = strings.TrimPrefix(content, "\n")
	lines := strings.Split(content, "\r\n")
	if len(lines) == 1 {
		lines = strings.Split(content, "\n")
	}
	if n := len(lines); n > 0 && lines[n-1] == "-" {
		lines = lines[:n-1]
	}

	var tokens []Token
	var curTag string
	var curValue []string
	flush := func() {
		if curTag != "" {
			tokens = append(tokens, Token{Tag: curTag, Value: strings.Join(curValue, "\n"), Position: len(tokens)})
		}
	}

	for _, line := range lines {
		tag, value, isField := splitFieldLine(line)
		if isField {
			flush()
			curTag = tag
			curValue = []string{value}
		} else {
			if curTag == "" {
				if strings.TrimSpace(line) == "" {
					continue
				}
				return nil, &primitives.SwiftError{
					Kind:      primitives.KindBlockStructure,
					Code:      "T01",
					Component: "4",
					Message:   "text block content before first field tag",
				}
			}
			curValue = append(curValue, line)
		}
	}
	flush()
	return tokens, nil
}

// splitFieldLine reports whether line opens a new field (`:TAG:value`)
// and, if so, returns the tag and the remainder as its first value
// line. A tag is 2 digits optionally followed by one uppercase letter.
func splitFieldLine(line string) (tag, value string, isField bool) {
	if len(line) < 2 || line[0] != ':' {
		return "", "", false
	}
	i := 1
	digits := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' && digits < 2 {
		i++
		digits++
	}
	if digits != 2 {
		return "", "", false
	}
	if i < len(line) && line[i] >= 'A' && line[i] <= 'Z' {
		i++
	}
	if i >= len(line) || line[i] != ':' {
		return "", "", false
	}
	return line[1:i], line[i+1:], true
}
