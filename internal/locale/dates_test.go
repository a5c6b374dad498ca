package locale_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gestdoc/internal/locale"
)

func TestExpandDate_ISOAndLocalForms(t *testing.T) {
	for _, input := range []string{"2025-01-29", "29/01/2025"} {
		parts := locale.ExpandDate(input)
		assert.Equal(t, "29", parts.Day, "input=%s", input)
		assert.Equal(t, "veintinueve", parts.DayWords)
		assert.Equal(t, "enero", parts.Month)
		assert.Equal(t, "2025", parts.Year)
		assert.Equal(t, "dos mil veinticinco", parts.YearWords)
		assert.Equal(t, "29 de enero de 2025", parts.Full)
	}
}

func TestExpandDate_OpenEnded(t *testing.T) {
	for _, input := range []string{"", "   ", "Indefinido", "contrato indefinido"} {
		parts := locale.ExpandDate(input)
		assert.Equal(t, locale.DatePartNA, parts.Day, "input=%q", input)
		assert.Equal(t, locale.DatePartNA, parts.YearWords)
		assert.Equal(t, locale.OpenEndedPhrase, parts.Full)
	}
}

func TestExpandDate_UnparseableIsDistinctFromOpenEnded(t *testing.T) {
	parts := locale.ExpandDate("pronto")
	assert.Equal(t, locale.DatePartNA, parts.Day)
	assert.Equal(t, locale.UnknownDate, parts.Full)
	assert.NotEqual(t, locale.OpenEndedPhrase, parts.Full)
}

func TestLongDate(t *testing.T) {
	got := locale.LongDate("2025-01-29")
	assert.Equal(t, "el veintinueve (29) de enero del año dos mil veinticinco (2025)", got)
}

func TestLongDate_UnparseablePassesThrough(t *testing.T) {
	assert.Equal(t, "mañana", locale.LongDate("mañana"))
}

func TestLongDateAt(t *testing.T) {
	got := locale.LongDateAt(time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "el ocho (8) de febrero de 2024", got)
}
