package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicHeaderRoundTrip(t *testing.T) {
	raw := "F01DEUTDEFFAXXX0000123456"
	h, err := ParseBasicHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, "F", h.ApplicationID)
	assert.Equal(t, "01", h.ServiceID)
	assert.Equal(t, "DEUTDEFFAXXX", h.LogicalTerminal)
	assert.Equal(t, raw, h.ToWire())
}

func TestBasicHeaderCandidateDestinations(t *testing.T) {
	h, err := ParseBasicHeader("F01DEUTDEFFAXXX0000123456")
	require.NoError(t, err)
	candidates := h.CandidateDestinations()
	require.NotEmpty(t, candidates)
	assert.Equal(t, "DEUTDEFF", candidates[0].String())
}

func TestBasicHeaderWrongLength(t *testing.T) {
	_, err := ParseBasicHeader("F01TOOSHORT")
	require.Error(t, err)
}

func TestApplicationHeaderInputRoundTrip(t *testing.T) {
	raw := "I103CHASUS33AXXXN"
	h, err := ParseApplicationHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, byte('I'), h.Direction)
	assert.Equal(t, "103", h.Input.MessageType)
	assert.Equal(t, "N", h.Input.Priority)
	assert.Equal(t, raw, h.ToWire())
}

func TestApplicationHeaderOutputRoundTrip(t *testing.T) {
	raw := "O1031200250731CHASUS33AXXX00001234562507311205N"
	h, err := ParseApplicationHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, byte('O'), h.Direction)
	assert.Equal(t, "103", h.Output.MessageType)
	assert.Equal(t, raw, h.ToWire())
}

func TestApplicationHeaderInvalidDirection(t *testing.T) {
	_, err := ParseApplicationHeader("X103CHASUS33AXXXN")
	require.Error(t, err)
}

func TestUserHeaderRoundTrip(t *testing.T) {
	raw := "{121:550e8400-e29b-41d4-a716-446655440000}{119:STP}"
	h := ParseUserHeader(raw)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", h.UniqueEndToEndReference)
	assert.Equal(t, "STP", h.ValidationFlag)
	assert.Equal(t, h, ParseUserHeader(h.ToWire()))
}

func TestTrailerRoundTrip(t *testing.T) {
	raw := "{CHK:123456789ABC}{TNG}"
	tr := ParseTrailer(raw)
	assert.Equal(t, "123456789ABC", tr.Checksum)
	assert.True(t, tr.TestAndTraining)
	assert.Equal(t, raw, tr.ToWire())
}
