package locale_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestdoc/internal/locale"
)

func TestFormatCUI_Grouping(t *testing.T) {
	assert.Equal(t, "1234 56789 0123", locale.FormatCUI("1234567890123"))
	assert.Equal(t, "3003 54169 0101", locale.FormatCUI("3003541690101"))
}

func TestFormatCUI_AlreadyGroupedIsStable(t *testing.T) {
	once := locale.FormatCUI("1234567890123")
	assert.Equal(t, once, locale.FormatCUI(once))
}

func TestFormatCUI_RoundTrip(t *testing.T) {
	raw := "1234567890123"
	grouped := locale.FormatCUI(raw)
	assert.Equal(t, raw, strings.ReplaceAll(grouped, " ", ""))
}

func TestFormatCUI_NonStandardPassesThrough(t *testing.T) {
	assert.Equal(t, "12345", locale.FormatCUI("12345"))
	assert.Equal(t, "A123", locale.FormatCUI("A123"))
	assert.Equal(t, "", locale.FormatCUI(""))
}

func TestCUIWords_ThirteenDigits(t *testing.T) {
	got := locale.CUIWords("1234 56789 0123")
	parts := strings.Split(got, " espacio ")
	require.Len(t, parts, 3)
	assert.Equal(t, "mil doscientos treinta y cuatro", parts[0])
	assert.Equal(t, "cincuenta y seis mil setecientos ochenta y nueve", parts[1])
	assert.Equal(t, "ciento veintitrés", parts[2])
}

func TestCUIWords_ShortNumberReadsDigitByDigit(t *testing.T) {
	assert.Equal(t, "uno dos tres", locale.CUIWords("123"))
}

func TestCUIWords_NonNumeric(t *testing.T) {
	assert.Equal(t, "", locale.CUIWords("sin documento"))
}

func TestFormatMoney(t *testing.T) {
	d, err := locale.ParseAmount("5,000.00")
	require.NoError(t, err)
	assert.Equal(t, "Q.5,000.00", locale.FormatMoney(d))

	d, err = locale.ParseAmount("1234567.5")
	require.NoError(t, err)
	assert.Equal(t, "Q.1,234,567.50", locale.FormatMoney(d))

	d, err = locale.ParseAmount("0")
	require.NoError(t, err)
	assert.Equal(t, "Q.0.00", locale.FormatMoney(d))
}

func TestMoneyWords(t *testing.T) {
	d, err := locale.ParseAmount("5,000.00")
	require.NoError(t, err)
	assert.Equal(t, "CINCO MIL QUETZALES EXACTOS", locale.MoneyWords(d))

	d, err = locale.ParseAmount("0")
	require.NoError(t, err)
	assert.Equal(t, "CERO QUETZALES EXACTOS", locale.MoneyWords(d))
}

func TestParseAmount_Invalid(t *testing.T) {
	_, err := locale.ParseAmount("cinco mil")
	assert.Error(t, err)
}

func TestTitleCase_PreservesAccents(t *testing.T) {
	assert.Equal(t, "María José Pérez", locale.TitleCase("MARÍA JOSÉ PÉREZ"))
	assert.Equal(t, "", locale.TitleCase(""))
}
