package primitives

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBIC(t *testing.T) {
	bic, err := ParseBIC("DEUTDEFF")
	require.NoError(t, err)
	assert.Equal(t, "DEUT", bic.BankCode)
	assert.Equal(t, "DE", bic.CountryCode)
	assert.Equal(t, "FF", bic.LocationCode)
	assert.Equal(t, "", bic.BranchCode)
	assert.Equal(t, "DEUTDEFF", bic.String())

	bic11, err := ParseBIC("DEUTDEFF500")
	require.NoError(t, err)
	assert.Equal(t, "500", bic11.BranchCode)

	_, err = ParseBIC("SHORT")
	require.Error(t, err)
	assert.Equal(t, "T27", err.(*SwiftError).Code)

	_, err = ParseBIC("deutDEFF")
	require.Error(t, err)
	assert.Equal(t, "T28", err.(*SwiftError).Code)

	_, err = ParseBIC("DEUTDE##")
	require.Error(t, err)
	assert.Equal(t, "T29", err.(*SwiftError).Code)
}

func TestParseCurrency(t *testing.T) {
	_, err := ParseCurrency("usd")
	require.Error(t, err)

	cur, err := ParseCurrency("USD")
	require.NoError(t, err)
	assert.Equal(t, "USD", cur)
}

func TestParseCurrencyNonCommodity(t *testing.T) {
	_, err := ParseCurrencyNonCommodity("XAU")
	require.Error(t, err)
	assert.Equal(t, "C08", err.(*SwiftError).Code)

	cur, err := ParseCurrencyNonCommodity("EUR")
	require.NoError(t, err)
	assert.Equal(t, "EUR", cur)
}

func TestISO4217Decimals(t *testing.T) {
	assert.Equal(t, 0, ISO4217Decimals("JPY"))
	assert.Equal(t, 3, ISO4217Decimals("BHD"))
	assert.Equal(t, 4, ISO4217Decimals("CLF"))
	assert.Equal(t, 2, ISO4217Decimals("USD"))
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("1234567,89")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1234567.89")))

	d, err = ParseAmount("1000,5")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1000.5")))

	d, err = ParseAmount("1000")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1000")))

	_, err = ParseAmount("-100,00")
	require.Error(t, err)

	_, err = ParseAmount("1,0,0")
	require.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1000", FormatAmount(decimal.RequireFromString("1000.00")))
	assert.Equal(t, "1000,5", FormatAmount(decimal.RequireFromString("1000.50")))
	assert.Equal(t, "1234567,89", FormatAmount(decimal.RequireFromString("1234567.89")))
}

func TestValidateAmountDecimals(t *testing.T) {
	err := ValidateAmountDecimals(decimal.RequireFromString("1000.5"), "JPY")
	require.Error(t, err)
	assert.Equal(t, "C03", err.(*SwiftError).Code)

	err = ValidateAmountDecimals(decimal.RequireFromString("1000.5"), "USD")
	require.NoError(t, err)
}

func TestParseDateYYMMDD(t *testing.T) {
	d, err := ParseDateYYMMDD("241231")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())

	d, err = ParseDateYYMMDD("991231")
	require.NoError(t, err)
	assert.Equal(t, 1999, d.Year())

	_, err = ParseDateYYMMDD("249931")
	require.Error(t, err)
}

func TestParseTimeHHMM(t *testing.T) {
	tod, err := ParseTimeHHMM("2359")
	require.NoError(t, err)
	assert.Equal(t, 23, tod.Hour)
	assert.Equal(t, 59, tod.Minute)

	_, err = ParseTimeHHMM("2460")
	require.Error(t, err)
}

func TestClassX(t *testing.T) {
	assert.True(t, ClassX("Hello/World 123-45"))
	assert.False(t, ClassX("héllo"))
}

func TestValidateIBAN(t *testing.T) {
	require.NoError(t, ValidateIBAN("DE89370400440532013000"))
	require.Error(t, ValidateIBAN("short"))
	require.Error(t, ValidateIBAN("89DE370400440532013000"))
}

func TestValidateUETR(t *testing.T) {
	require.NoError(t, ValidateUETR(NewUETR()))
	require.Error(t, ValidateUETR("not-a-uuid"))
}
