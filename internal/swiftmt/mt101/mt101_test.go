package mt101

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltran/swiftmt/internal/swiftmt/fields"
)

const sampleBlock4 = ":20:REF1\n:28D:1/1\n:50H:/11112222\nJOHN DOE\n123 MAIN ST\n:30:250731\n:21:TX1\n:32B:EUR100,00\n:59:/123456\nJANE SMITH\n:71A:OUR\n-"

func TestParseMinimalMT101(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	assert.Equal(t, "REF1", m.Field20.Reference)
	assert.Equal(t, 1, m.Field28D.Index)
	require.NotNil(t, m.OrderingCustomer)
	require.Len(t, m.Transactions, 1)
	assert.Equal(t, "TX1", m.Transactions[0].Field21.Reference)
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

func TestValidateC1ExchangeRateRequires21F(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	f36, err := fields.ParseField36("1,25")
	require.NoError(t, err)
	m.Transactions[0].Field36 = &f36
	errs := m.ValidateNetworkRules(false)
	require.NotEmpty(t, errs)
	assert.Equal(t, "C1", errs[0].Code)
}
