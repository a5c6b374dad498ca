package ocr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gestdoc/internal/ocr"
)

func TestNormalize_DPILookalikes(t *testing.T) {
	got := ocr.Normalize("DPI /PASAPORTE 123456789Ol23")
	assert.Contains(t, got, "1234567890123")
}

func TestNormalize_CorrectsOnlyNextToLabels(t *testing.T) {
	in := "COLABORADOR OSCAR SOLIS\nDPI /PASAPORTE 12345678901Z3\nEDAD 3O"
	got := ocr.Normalize(in)
	assert.Contains(t, got, "OSCAR SOLIS", "names must not be rewritten")
	assert.Contains(t, got, "1234567890123")
	assert.Contains(t, got, "EDAD 30")
}

func TestNormalize_AmountConfusions(t *testing.T) {
	got := ocr.Normalize("HONORARIOS POR PACAR S,OOO.OO")
	assert.Contains(t, got, "5,000.00")
}

func TestNormalize_LeavesUnknownTextAlone(t *testing.T) {
	in := "POSICIÓN Asesor de Ventas"
	assert.Equal(t, in, ocr.Normalize(in))
}
