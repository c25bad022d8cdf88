// Package block splits a raw FIN message into its five blocks and
// tokenizes block 4's text into tag/value pairs. Grounded on the
// teacher's splitBlocks/extractFields in internal/swift/parser.go,
// generalized from a flat non-nesting regex into a brace-depth scanner
// so blocks 3 and 5 (which nest sub-tags in braces) and block 4
// (terminated by a lone "-" line, not a brace) are each handled
// correctly rather than by a single one-size-fits-all pattern.
package block

import (
	"strings"

	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// Blocks holds the raw (un-trimmed-of-braces) content of each present
// block, keyed by block number. Block 4 maps to its text between `{4:`
// and the terminating `-}`.
type Blocks struct {
	Block1 string
	Block2 string
	Block3 string
	Block4 string
	Block5 string

	HasBlock1 bool
	HasBlock2 bool
	HasBlock3 bool
	HasBlock4 bool
	HasBlock5 bool
}

// ExtractBlocks scans a raw FIN message and splits it into blocks 1-5.
// Blocks 1, 2 and 4 never nest braces internally and are closed by the
// first matching brace (block 4's text instead ends at a line
// consisting of a single '-', immediately followed by '}'). Blocks 3
// and 5 nest `{tag:value}` sub-structures and require depth tracking.
func ExtractBlocks(message string) (Blocks, error) {
	var out Blocks
	i := 0
	n := len(message)
	for i < n {
		if message[i] != '{' {
			i++
			continue
		}
		// Expect "{N:" where N is 1-5.
		if i+2 >= n || message[i+2] != ':' {
			i++
			continue
		}
		blockNum := message[i+1]
		if blockNum < '1' || blockNum > '5' {
			if blockNum >= '0' && blockNum <= '9' {
				return Blocks{}, blockStructureError(string(blockNum), "block index out of range")
			}
			i++
			continue
		}
		contentStart := i + 3
		switch blockNum {
		case '1', '2':
			end := strings.IndexByte(message[contentStart:], '}')
			if end < 0 {
				return Blocks{}, blockStructureError(string(blockNum), "unterminated block")
			}
			content := message[contentStart : contentStart+end]
			assignBlock(&out, blockNum, content)
			i = contentStart + end + 1
		case '4':
			terminator := "\n-}"
			end := strings.Index(message[contentStart:], terminator)
			if end < 0 {
				// Tolerate a message with no trailing newline before "-}".
				altEnd := strings.Index(message[contentStart:], "-}")
				if altEnd < 0 {
					return Blocks{}, blockStructureError("4", "unterminated text block")
				}
				content := message[contentStart : contentStart+altEnd]
				content = strings.TrimSuffix(content, "-")
				assignBlock(&out, blockNum, content)
				i = contentStart + altEnd + 2
				continue
			}
			content := message[contentStart : contentStart+end]
			assignBlock(&out, blockNum, content)
			i = contentStart + end + len(terminator)
		case '3', '5':
			depth := 1
			j := contentStart
			for j < n && depth > 0 {
				switch message[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
				j++
			}
			if depth != 0 {
				return Blocks{}, blockStructureError(string(blockNum), "unterminated nested block")
			}
			content := message[contentStart : j-1]
			assignBlock(&out, blockNum, content)
			i = j
		}
	}

	if !out.HasBlock1 || !out.HasBlock2 || !out.HasBlock4 {
		return Blocks{}, blockStructureError("", "message must contain blocks 1, 2 and 4")
	}
	return out, nil
}

func assignBlock(out *Blocks, num byte, content string) {
	switch num {
	case '1':
		out.Block1, out.HasBlock1 = content, true
	case '2':
		out.Block2, out.HasBlock2 = content, true
	case '3':
		out.Block3, out.HasBlock3 = content, true
	case '4':
		out.Block4, out.HasBlock4 = content, true
	case '5':
		out.Block5, out.HasBlock5 = content, true
	}
}

func blockStructureError(block, msg string) *primitives.SwiftError {
	return &primitives.SwiftError{
		Kind:      primitives.KindBlockStructure,
		Code:      "T01",
		Component: block,
		Message:   msg,
	}
}
