package swiftmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltran/swiftmt/internal/swiftmt/mt103"
)

func TestExtractBlocks(t *testing.T) {
	blocks, err := ExtractBlocks("{1:F01DEUTDEFFAXXX0000000000}{2:I103BNPAFRPPXXXXN}{4:\n:20:REF1\n-}")
	require.NoError(t, err)
	assert.Contains(t, blocks[1], "DEUTDEFFAXXX")
	assert.Equal(t, "I103BNPAFRPPXXXXN", blocks[2])
	assert.Contains(t, blocks[4], ":20:REF1")
}

func TestParseMessageGeneric(t *testing.T) {
	m, err := ParseMessage[mt103.MT103](":20:REF1\n:23B:CRED\n:32A:250731USD1000,00\n:50K:/12345678\nJOHN DOE\n:59:/98765432\nJANE SMITH\n:71A:OUR\n-")
	require.NoError(t, err)
	assert.Equal(t, "REF1", m.Field20.Reference)
}

func TestParseMessageAuto(t *testing.T) {
	msg, mt, err := ParseMessageAuto("{1:F01DEUTDEFFAXXX0000000000}{2:I103BNPAFRPPXXXXN}{4:\n:20:REF1\n:23B:CRED\n:32A:250731USD1000,00\n:50K:/12345678\nJOHN DOE\n:59:/98765432\nJANE SMITH\n:71A:OUR\n-}")
	require.NoError(t, err)
	assert.Equal(t, "103", mt)
	m103, ok := msg.(mt103.MT103)
	require.True(t, ok)
	assert.Equal(t, "REF1", m103.Field20.Reference)
}

func TestParseMessageAutoUnsupportedType(t *testing.T) {
	_, _, err := ParseMessageAuto("{1:F01DEUTDEFFAXXX0000000000}{2:I999BNPAFRPPXXXXN}{4:\n:20:REF1\n-}")
	require.Error(t, err)
}

func TestToWireAndValidateNetworkRulesDispatch(t *testing.T) {
	m, err := ParseMessage[mt103.MT103](":20:REF1\n:23B:CRED\n:32A:250731USD1000,00\n:50K:/12345678\nJOHN DOE\n:59:/98765432\nJANE SMITH\n:71A:OUR\n-")
	require.NoError(t, err)
	wire, err := ToWire(m)
	require.NoError(t, err)
	assert.Contains(t, wire, ":20:REF1")
	errs, err := ValidateNetworkRules(m, false)
	require.NoError(t, err)
	assert.Empty(t, errs)
}
