package roundtrip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mt103Envelope = "{1:F01DEUTDEFFAXXX0000000000}{2:I103BNPAFRPPXXXXN}{4:\n" +
	":20:REF123456789\n:23B:CRED\n:32A:250731USD1000,00\n:50K:/12345678\nJOHN DOE\n123 MAIN ST\n:59:/98765432\nJANE SMITH\n:71A:OUR\n-}"

func TestCompareCleanMessageIsEqual(t *testing.T) {
	result, err := Compare(mt103Envelope)
	require.NoError(t, err)
	assert.Equal(t, "103", result.MessageType)
	assert.True(t, result.Equal)
	assert.Empty(t, result.Diff)
}

func TestCompareMalformedMessageErrors(t *testing.T) {
	_, err := Compare("{1:F01DEUTDEFFAXXX0000000000}{2:I103BNPAFRPPXXXXN}{4:\n:20:REF1\n-}")
	require.Error(t, err)
}
