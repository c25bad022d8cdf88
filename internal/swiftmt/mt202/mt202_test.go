package mt202

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBlock4 = ":20:REF1\n:21:RELREF1\n:32A:250731EUR1000,00\n:52A:DEUTDEFF\n:58A:BNPAFRPP\n-"

const coverBlock4 = ":20:REF1\n:21:RELREF1\n:32A:250731EUR1000,00\n:52A:DEUTDEFF\n:58A:BNPAFRPP\n:50K:JOHN DOE\n123 MAIN ST\n:59:/12345678\nJANE SMITH\n-"

func TestParseMinimalMT202(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	assert.Equal(t, "REF1", m.Field20.Reference)
	assert.False(t, m.IsCover())
}

func TestParseMissingMandatoryField(t *testing.T) {
	_, err := Parse(":20:REF1\n-")
	require.Error(t, err)
}

func TestParseCoverMessage(t *testing.T) {
	m, err := Parse(coverBlock4)
	require.NoError(t, err)
	assert.True(t, m.IsCover())
	require.NotNil(t, m.CoverOrderingCustomer)
	require.NotNil(t, m.CoverBeneficiary)
}

func TestToWireRoundTrip(t *testing.T) {
	m, err := Parse(coverBlock4)
	require.NoError(t, err)
	wire := m.ToWire()
	m2, err := Parse(wire)
	require.NoError(t, err)
	assert.Equal(t, m.Field20.Reference, m2.Field20.Reference)
	assert.Equal(t, m.IsCover(), m2.IsCover())
}

func TestValidateNetworkRulesCleanMessage(t *testing.T) {
	m, err := Parse(coverBlock4)
	require.NoError(t, err)
	errs := m.ValidateNetworkRules(false)
	assert.Empty(t, errs)
}

func TestValidateC2CoverCompletenessMissingOrderingCustomer(t *testing.T) {
	m, err := Parse(coverBlock4)
	require.NoError(t, err)
	m.CoverOrderingCustomer = nil
	errs := m.ValidateNetworkRules(false)
	require.NotEmpty(t, errs)
	assert.Equal(t, "C2", errs[0].Code)
}
