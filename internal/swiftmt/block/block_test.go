package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMT103 = "{1:F01DEUTDEFFAXXX0000123456}{2:I103CHASUS33AXXXN}{3:{121:550e8400-e29b-41d4-a716-446655440000}}{4:\n:20:REF123456789\n:23B:CRED\n:32A:250731USD1000,00\n:50K:/12345678\nJOHN DOE\n123 MAIN ST\n:59:/98765432\nJANE SMITH\n:71A:OUR\n-}{5:{CHK:123456789ABC}}"

func TestExtractBlocks(t *testing.T) {
	blocks, err := ExtractBlocks(sampleMT103)
	require.NoError(t, err)
	assert.True(t, blocks.HasBlock1)
	assert.True(t, blocks.HasBlock2)
	assert.True(t, blocks.HasBlock3)
	assert.True(t, blocks.HasBlock4)
	assert.True(t, blocks.HasBlock5)
	assert.Equal(t, "F01DEUTDEFFAXXX0000123456", blocks.Block1)
	assert.Equal(t, "I103CHASUS33AXXXN", blocks.Block2)
	assert.Contains(t, blocks.Block3, "121:550e8400")
	assert.Contains(t, blocks.Block5, "CHK:123456789ABC")
}

func TestExtractBlocksMissingMandatory(t *testing.T) {
	_, err := ExtractBlocks("{1:F01DEUTDEFFAXXX0000123456}")
	require.Error(t, err)
}

func TestTokenizeBlock4(t *testing.T) {
	blocks, err := ExtractBlocks(sampleMT103)
	require.NoError(t, err)
	tokens, err := TokenizeBlock4(blocks.Block4)
	require.NoError(t, err)
	require.Len(t, tokens, 6)
	assert.Equal(t, "20", tokens[0].Tag)
	assert.Equal(t, "REF123456789", tokens[0].Value)
	assert.Equal(t, "50K", tokens[3].Tag)
	assert.Equal(t, "/12345678\nJOHN DOE\n123 MAIN ST", tokens[3].Value)
	assert.Equal(t, "71A", tokens[5].Tag)
	assert.Equal(t, "OUR", tokens[5].Value)
}

func TestTokenizeBlock4RejectsLeadingGarbage(t *testing.T) {
	_, err := TokenizeBlock4("garbage before any tag\n:20:REF\n")
	require.Error(t, err)
}
