package mt935

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBlock4 = ":20:REF1\n:25:12345678\n:30:250731\n:37H:C1,25\n-"

func TestParseMinimalMT935(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	assert.Equal(t, "REF1", m.Field20.Reference)
	require.Len(t, m.Changes, 1)
	require.NotNil(t, m.Changes[0].Account)
	assert.Equal(t, "12345678", m.Changes[0].Account.Account)
}

func TestParseMissingMandatoryField(t *testing.T) {
	_, err := Parse(":20:REF1\n-")
	require.Error(t, err)
}

func TestToWireRoundTrip(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	wire := m.ToWire()
	m2, err := Parse(wire)
	require.NoError(t, err)
	assert.Equal(t, m.Field20.Reference, m2.Field20.Reference)
	assert.Equal(t, len(m.Changes), len(m2.Changes))
}

func TestValidateNetworkRulesCleanMessage(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	errs := m.ValidateNetworkRules(false)
	assert.Empty(t, errs)
}

func TestValidateC1IdentifierExclusivityViolation(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	m.Changes[0].Account = nil
	errs := m.ValidateNetworkRules(false)
	require.NotEmpty(t, errs)
	assert.Equal(t, "C1", errs[0].Code)
}
