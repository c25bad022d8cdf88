// Package swiftmt is the module-root convenience facade over the
// block tokenizer, the per-message-type packages and the NVR engine.
// It exists so a collaborator (the sample generator, the round-trip
// comparator, the CLI) can depend on one import instead of wiring
// every mtNNN package by hand, mirroring how the teacher's
// internal/swift/parser.go exposed a single ParseMT103/GenerateMT103
// pair as the one entry point the rest of gateway-go called into.
package swiftmt

import (
	"fmt"

	"github.com/deltran/swiftmt/internal/swiftmt/block"
	"github.com/deltran/swiftmt/internal/swiftmt/header"
	"github.com/deltran/swiftmt/internal/swiftmt/mt101"
	"github.com/deltran/swiftmt/internal/swiftmt/mt103"
	"github.com/deltran/swiftmt/internal/swiftmt/mt104"
	"github.com/deltran/swiftmt/internal/swiftmt/mt107"
	"github.com/deltran/swiftmt/internal/swiftmt/mt202"
	"github.com/deltran/swiftmt/internal/swiftmt/mt935"
	"github.com/deltran/swiftmt/internal/swiftmt/mt940"
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// ExtractBlocks splits a raw FIN message into blocks 1-5.
func ExtractBlocks(raw string) (map[int]string, error) {
	b, err := block.ExtractBlocks(raw)
	if err != nil {
		return nil, err
	}
	out := map[int]string{}
	if b.HasBlock1 {
		out[1] = b.Block1
	}
	if b.HasBlock2 {
		out[2] = b.Block2
	}
	if b.HasBlock3 {
		out[3] = b.Block3
	}
	if b.HasBlock4 {
		out[4] = b.Block4
	}
	if b.HasBlock5 {
		out[5] = b.Block5
	}
	return out, nil
}

// TokenizeBlock4 splits block 4's text into ordered field tokens.
func TokenizeBlock4(block4 string) ([]block.Token, error) {
	return block.TokenizeBlock4(block4)
}

// Message is implemented by every parsed message type, letting
// ToWire and ValidateNetworkRules operate generically once
// ParseMessageAuto has resolved the concrete type.
type Message interface {
	ToWire() string
	ValidateNetworkRules(stopOnFirstError bool) []primitives.SwiftError
}

// ParseMessage parses raw block 4 text into a specific message type.
// T must implement Message, which the compiler checks at the call site;
// a Message type other than the seven mtNNN.MTxxx struct types is
// rejected at run time with an unsupported-message-type error, since Go
// generics cannot dispatch on an arbitrary T.
// Callers who don't know the message type ahead of time should use
// ParseMessageAuto instead.
func ParseMessage[T Message](raw string) (T, error) {
	var zero T
	switch p := any(&zero).(type) {
	case *mt103.MT103:
		m, err := mt103.Parse(raw)
		if err != nil {
			return zero, err
		}
		*p = m
	case *mt107.MT107:
		m, err := mt107.Parse(raw)
		if err != nil {
			return zero, err
		}
		*p = m
	case *mt101.MT101:
		m, err := mt101.Parse(raw)
		if err != nil {
			return zero, err
		}
		*p = m
	case *mt104.MT104:
		m, err := mt104.Parse(raw)
		if err != nil {
			return zero, err
		}
		*p = m
	case *mt202.MT202:
		m, err := mt202.Parse(raw)
		if err != nil {
			return zero, err
		}
		*p = m
	case *mt940.MT940:
		m, err := mt940.Parse(raw)
		if err != nil {
			return zero, err
		}
		*p = m
	case *mt935.MT935:
		m, err := mt935.Parse(raw)
		if err != nil {
			return zero, err
		}
		*p = m
	default:
		return zero, &primitives.SwiftError{
			Kind:    primitives.KindUnsupportedMessageType,
			Message: fmt.Sprintf("unsupported message type %T", zero),
		}
	}
	return zero, nil
}

// supportedMessageTypes maps a block 2 MT code to the message-type
// package's Parse function, type-erased behind the Message interface.
var supportedMessageTypes = map[string]func(string) (Message, error){
	"103": func(s string) (Message, error) { m, err := mt103.Parse(s); return m, err },
	"107": func(s string) (Message, error) { m, err := mt107.Parse(s); return m, err },
	"101": func(s string) (Message, error) { m, err := mt101.Parse(s); return m, err },
	"104": func(s string) (Message, error) { m, err := mt104.Parse(s); return m, err },
	"202": func(s string) (Message, error) { m, err := mt202.Parse(s); return m, err },
	"940": func(s string) (Message, error) { m, err := mt940.Parse(s); return m, err },
	"935": func(s string) (Message, error) { m, err := mt935.Parse(s); return m, err },
}

// ParseMessageAuto extracts blocks 1-5 from raw, reads the message
// type out of block 2's application header, and dispatches to the
// matching message-type package. It returns the parsed message, the
// resolved MT code ("103", "107", ...) and any error encountered
// during block extraction, header parsing or the type-specific parse.
func ParseMessageAuto(raw string) (any, string, error) {
	b, err := block.ExtractBlocks(raw)
	if err != nil {
		return nil, "", err
	}
	appHeader, err := header.ParseApplicationHeader(b.Block2)
	if err != nil {
		return nil, "", err
	}
	mt := appHeader.MessageType()
	parseFn, ok := supportedMessageTypes[mt]
	if !ok {
		return nil, mt, &primitives.SwiftError{
			Kind:    primitives.KindUnsupportedMessageType,
			Message: fmt.Sprintf("unsupported message type MT%s", mt),
		}
	}
	msg, err := parseFn(b.Block4)
	if err != nil {
		return nil, mt, err
	}
	return msg, mt, nil
}

// ToWire renders any parsed message type back to its block 4 text.
func ToWire(msg any) (string, error) {
	m, ok := msg.(Message)
	if !ok {
		return "", &primitives.SwiftError{
			Kind:    primitives.KindUnsupportedMessageType,
			Message: fmt.Sprintf("%T does not implement Message", msg),
		}
	}
	return m.ToWire(), nil
}

// ValidateNetworkRules runs the network validation rules for any
// parsed message type.
func ValidateNetworkRules(msg any, stopOnFirstError bool) ([]primitives.SwiftError, error) {
	m, ok := msg.(Message)
	if !ok {
		return nil, &primitives.SwiftError{
			Kind:    primitives.KindUnsupportedMessageType,
			Message: fmt.Sprintf("%T does not implement Message", msg),
		}
	}
	return m.ValidateNetworkRules(stopOnFirstError), nil
}
