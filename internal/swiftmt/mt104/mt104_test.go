package mt104

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBlock4 = ":20:REF1\n:30:250731\n:50A:DEUTDEFF\n:21:TX1\n:23E:AUTH\n:32B:EUR50,00\n:59:/12345678\nJOHN DOE\n:32B:EUR100,00\n:19:50,00\n-"

func TestParseMinimalMT104(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	assert.Equal(t, "REF1", m.Field20.Reference)
	require.NotNil(t, m.Creditor)
	require.Len(t, m.Transactions, 1)
	assert.Equal(t, "TX1", m.Transactions[0].Field21.Reference)
	require.NotNil(t, m.Field32B)
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
	assert.Equal(t, len(m.Transactions), len(m2.Transactions))
}

func TestValidateNetworkRulesCleanMessage(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	errs := m.ValidateNetworkRules(false)
	assert.Empty(t, errs)
}

func TestValidateC10Field19SumMismatch(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	m.Field19.Amount = m.Field19.Amount.Add(m.Field19.Amount)
	errs := m.ValidateNetworkRules(false)
	require.NotEmpty(t, errs)
	found := false
	for _, e := range errs {
		if e.Code == "C10" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateC1RFDDPlacementMissingInSeqB(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	m.Transactions[0].Field23E = nil
	errs := m.ValidateNetworkRules(false)
	require.NotEmpty(t, errs)
	assert.Equal(t, "C1", errs[0].Code)
}
