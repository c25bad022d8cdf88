package mt940

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBlock4 = ":20:STMT1\n:25:12345678\n:28C:1\n:60F:C250731EUR1000,00\n:61:2507310731C100,00NTRFREF1//BANKREF1\n:86:PAYMENT DETAILS\n:62F:C250731EUR1100,00\n-"

func TestParseMinimalMT940(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	assert.Equal(t, "STMT1", m.Field20.Reference)
	require.NotNil(t, m.OpeningF)
	require.Len(t, m.Lines, 1)
	assert.Equal(t, "REF1", m.Lines[0].Field61.Reference)
	require.NotNil(t, m.Lines[0].Field86)
}

func TestParseMissingMandatoryField(t *testing.T) {
	_, err := Parse(":20:STMT1\n-")
	require.Error(t, err)
}

func TestToWireRoundTrip(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	wire := m.ToWire()
	m2, err := Parse(wire)
	require.NoError(t, err)
	assert.Equal(t, m.Field20.Reference, m2.Field20.Reference)
	assert.Equal(t, len(m.Lines), len(m2.Lines))
}

func TestValidateNetworkRulesCleanMessage(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	errs := m.ValidateNetworkRules(false)
	assert.Empty(t, errs)
}

func TestValidateC1CurrencyMismatch(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	m.ClosingF.Currency = "USD"
	errs := m.ValidateNetworkRules(false)
	require.NotEmpty(t, errs)
	assert.Equal(t, "C1", errs[0].Code)
}
