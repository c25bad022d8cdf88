package mt107

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltran/swiftmt/internal/swiftmt/fields"
)

const sampleBlock4 = ":20:REF1\n:23E:AUTH\n:30:250731\n:50A:DEUTDEFF\n:21:TXNREF1\n:32B:EUR100,00\n:59:/12345678\nJOHN DOE\n:32B:EUR100,00\n-"

func TestParseMinimalMT107(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	assert.Equal(t, "REF1", m.Field20.Reference)
	require.NotNil(t, m.Creditor)
	assert.Equal(t, "DEUTDEFF", m.Creditor.BIC.String())
	require.Len(t, m.Transactions, 1)
	assert.Equal(t, "TXNREF1", m.Transactions[0].Field21.Reference)
	assert.Equal(t, "EUR", m.Transactions[0].Field32B.Currency)
	assert.Equal(t, "EUR", m.Field32B.Currency)
}

func TestParseMissingMandatoryField(t *testing.T) {
	_, err := Parse(":20:REF1\n:23E:AUTH\n-")
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
	assert.Equal(t, m.Field32B.Amount.String(), m2.Field32B.Amount.String())
}

func TestValidateNetworkRulesCleanMessage(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	errs := m.ValidateNetworkRules(false)
	assert.Empty(t, errs)
}

func TestValidateC8SumOfAmountsMismatch(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	f, err := fields.ParseField32B("EUR200,00")
	require.NoError(t, err)
	m.Field32B = f
	errs := m.ValidateNetworkRules(false)
	require.NotEmpty(t, errs)
	assert.Equal(t, "D80", errs[0].Code)
}

func TestParseJPYTwoDecimalsSucceedsValidationRaisesC03(t *testing.T) {
	raw := ":20:REF1\n:23E:AUTH\n:30:250731\n:50A:DEUTDEFF\n:21:TXNREF1\n:32B:JPY1000,50\n:59:/12345678\nJOHN DOE\n:32B:JPY1000,50\n-"
	m, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "JPY", m.Transactions[0].Field32B.Currency)

	errs := m.ValidateNetworkRules(false)
	require.NotEmpty(t, errs)
	assert.Equal(t, "C03", errs[0].Code)
}

func TestValidateField23EInvalidCode(t *testing.T) {
	m, err := Parse(sampleBlock4)
	require.NoError(t, err)
	f, err := fields.ParseField23E("FOOB")
	require.NoError(t, err)
	m.Field23E = &f
	errs := m.ValidateNetworkRules(false)
	require.NotEmpty(t, errs)
	assert.Equal(t, "T47", errs[0].Code)
}
