package mt103

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltran/swiftmt/internal/swiftmt/fields"
)

const sampleBlock4 = ":20:REF123456789\n:23B:CRED\n:32A:250731USD1000,00\n:50K:/12345678\nJOHN DOE\n123 MAIN ST\n:59:/98765432\nJANE SMITH\n:71A:OUR\n-"

func TestParseMinimalMT103(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	assert.Equal(t, "REF123456789", m.Field20.Reference)
	assert.Equal(t, "CRED", m.Field23B.InstructionCode)
	assert.Equal(t, "USD", m.Field32A.Currency)
	assert.Equal(t, "OUR", m.Field71A.Code)
}

func TestParseMissingMandatoryField(t *testing.T) {
	_, err := Parse(":20:REF1\n:23B:CRED\n-")
	require.Error(t, err)
}

func TestToWireRoundTrip(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	wire := m.ToWire()
	m2, err := Parse(wire)
	require.NoError(t, err)
	assert.Equal(t, m.Field20.Reference, m2.Field20.Reference)
	assert.Equal(t, m.Field32A.Amount.String(), m2.Field32A.Amount.String())
}

func TestValidateNetworkRulesCleanMessage(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	errs := m.ValidateNetworkRules(false)
	assert.Empty(t, errs)
}

func TestValidateC1CurrencyExchangeRequiresField36(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	f33b, err := fields.ParseField33B("EUR900,00")
	require.NoError(t, err)
	m.Field33B = &f33b
	errs := m.ValidateNetworkRules(false)
	require.NotEmpty(t, errs)
	assert.Equal(t, "D75", errs[0].Code)
}

func TestParseJPYTwoDecimalsSucceedsValidationRaisesC03(t *testing.T) {
	raw := ":20:REF123456789\n:23B:CRED\n:32A:241201JPY1000,50\n:50K:/12345678\nJOHN DOE\n123 MAIN ST\n:59:/98765432\nJANE SMITH\n:71A:OUR\n-"
	m, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "JPY", m.Field32A.Currency)

	errs := m.ValidateNetworkRules(false)
	require.NotEmpty(t, errs)
	assert.Equal(t, "C03", errs[0].Code)
	assert.Equal(t, "32A", errs[0].Tag)
}

func TestIsSTPCompliant(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	assert.False(t, m.IsSTPCompliant())
}
