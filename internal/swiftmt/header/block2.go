package header

import (
	"fmt"

	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// InputApplicationHeader is block 2 in the "I" (input, outgoing)
// direction: `I103DDDDDDDDDDDDP[M][OOO]`.
type InputApplicationHeader struct {
	MessageType         string
	DestinationAddress  string
	Priority            string
	DeliveryMonitoring  string // empty if absent
	ObsolescencePeriod  string // empty if absent
}

func (h InputApplicationHeader) CandidateDestinations() []primitives.BIC {
	return candidateBICs(h.DestinationAddress)
}

// MessageInputReference is the 28-character MIR embedded in an output
// application header: date(6) + logical terminal(12) + session(4) +
// sequence(6).
type MessageInputReference struct {
	Date            string
	LogicalTerminal string
	SessionNumber   string
	SequenceNumber  string
}

func (m MessageInputReference) ToWire() string {
	return m.Date + m.LogicalTerminal + m.SessionNumber + m.SequenceNumber
}

// OutputApplicationHeader is block 2 in the "O" (output, incoming)
// direction: `O103HHMM` + MIR(28) + output date(6) + output time(4) +
// optional priority(1).
type OutputApplicationHeader struct {
	MessageType string
	InputTime   string
	MIR         MessageInputReference
	OutputDate  string
	OutputTime  string
	Priority    string // empty if absent
}

// ApplicationHeader is the tagged union over the input and output
// shapes of block 2, discriminated by the leading direction letter.
type ApplicationHeader struct {
	Direction byte // 'I' or 'O'
	Input     InputApplicationHeader
	Output    OutputApplicationHeader
}

func (h ApplicationHeader) MessageType() string {
	if h.Direction == 'O' {
		return h.Output.MessageType
	}
	return h.Input.MessageType
}

// ParseApplicationHeader parses block 2's raw content.
func ParseApplicationHeader(block2 string) (ApplicationHeader, error) {
	if len(block2) < 4 {
		return ApplicationHeader{}, &primitives.SwiftError{
			Kind: primitives.KindBlockStructure, Code: "T01", Component: "2",
			Message: fmt.Sprintf("block 2 too short: expected at least 4 characters, got %d", len(block2)),
		}
	}
	direction := block2[0]
	messageType := block2[1:4]

	switch direction {
	case 'I':
		if len(block2) < 17 {
			return ApplicationHeader{}, &primitives.SwiftError{
				Kind: primitives.KindBlockStructure, Code: "T01", Component: "2",
				Message: fmt.Sprintf("input block 2 too short: expected at least 17 characters, got %d", len(block2)),
			}
		}
		in := InputApplicationHeader{
			MessageType:        messageType,
			DestinationAddress: block2[4:16],
			Priority:           block2[16:17],
		}
		if len(block2) >= 18 {
			in.DeliveryMonitoring = block2[17:18]
		}
		if in.DeliveryMonitoring != "" && len(block2) >= 21 {
			in.ObsolescencePeriod = block2[18:21]
		}
		return ApplicationHeader{Direction: 'I', Input: in}, nil

	case 'O':
		if len(block2) < 46 {
			return ApplicationHeader{}, &primitives.SwiftError{
				Kind: primitives.KindBlockStructure, Code: "T01", Component: "2",
				Message: fmt.Sprintf("output block 2 too short: expected at least 46 characters, got %d", len(block2)),
			}
		}
		out := OutputApplicationHeader{
			MessageType: messageType,
			InputTime:   block2[4:8],
			MIR: MessageInputReference{
				Date:            block2[8:14],
				LogicalTerminal: block2[14:26],
				SessionNumber:   block2[26:30],
				SequenceNumber:  block2[30:36],
			},
			OutputDate: block2[36:42],
			OutputTime: block2[42:46],
		}
		if len(block2) >= 47 {
			out.Priority = block2[46:47]
		}
		return ApplicationHeader{Direction: 'O', Output: out}, nil

	default:
		return ApplicationHeader{}, &primitives.SwiftError{
			Kind: primitives.KindBlockStructure, Code: "T01", Component: "2",
			Message: fmt.Sprintf("invalid direction indicator: expected 'I' or 'O', got %q", direction),
		}
	}
}

func (h ApplicationHeader) ToWire() string {
	if h.Direction == 'O' {
		o := h.Output
		s := "O" + o.MessageType + o.InputTime + o.MIR.ToWire() + o.OutputDate + o.OutputTime
		if o.Priority != "" {
			s += o.Priority
		}
		return s
	}
	in := h.Input
	dest := in.DestinationAddress
	if len(dest) > 12 {
		dest = dest[:12]
	} else if len(dest) < 12 {
		dest = dest + padRepeat("X", 12-len(dest))
	}
	s := "I" + zeroPad(in.MessageType, 3) + dest + in.Priority
	if in.DeliveryMonitoring != "" {
		s += in.DeliveryMonitoring
	}
	if in.ObsolescencePeriod != "" {
		s += in.ObsolescencePeriod
	}
	return s
}
