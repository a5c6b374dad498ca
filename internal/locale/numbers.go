package locale

import (
	"strings"
)

// Spanish cardinal number words. Irregular forms below thirty are table
// driven; larger numbers compose from tens, hundreds, thousands and
// millions.
var smalls = [30]string{
	"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete",
	"ocho", "nueve", "diez", "once", "doce", "trece", "catorce", "quince",
	"dieciséis", "diecisiete", "dieciocho", "diecinueve", "veinte",
	"veintiuno", "veintidós", "veintitrés", "veinticuatro", "veinticinco",
	"veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

var tens = [10]string{
	"", "", "", "treinta", "cuarenta", "cincuenta",
	"sesenta", "setenta", "ochenta", "noventa",
}

var hundreds = [10]string{
	"", "ciento", "doscientos", "trescientos", "cuatrocientos",
	"quinientos", "seiscientos", "setecientos", "ochocientos",
	"novecientos",
}

// Words converts a whole number to its Spanish cardinal word form, lower
// case ("2025" reads "dos mil veinticinco").
func Words(n int64) string {
	if n < 0 {
		return "menos " + Words(-n)
	}
	switch {
	case n < 30:
		return smalls[n]
	case n < 100:
		t := tens[n/10]
		if n%10 == 0 {
			return t
		}
		return t + " y " + smalls[n%10]
	case n < 1000:
		if n == 100 {
			return "cien"
		}
		h := hundreds[n/100]
		if n%100 == 0 {
			return h
		}
		return h + " " + Words(n%100)
	case n < 1_000_000:
		head := "mil"
		if m := n / 1000; m > 1 {
			head = apocope(Words(m)) + " mil"
		}
		if rest := n % 1000; rest != 0 {
			return head + " " + Words(rest)
		}
		return head
	default:
		head := "un millón"
		if m := n / 1_000_000; m > 1 {
			head = apocope(Words(m)) + " millones"
		}
		if rest := n % 1_000_000; rest != 0 {
			return head + " " + Words(rest)
		}
		return head
	}
}

// apocope shortens a trailing "uno" before a noun ("veintiún mil").
func apocope(w string) string {
	if strings.HasSuffix(w, "veintiuno") {
		return strings.TrimSuffix(w, "veintiuno") + "veintiún"
	}
	if strings.HasSuffix(w, "uno") {
		return strings.TrimSuffix(w, "uno") + "un"
	}
	return w
}

// WordsString converts a numeric string to Spanish words. Non-numeric input
// is returned unchanged: formatting never fails, it degrades.
func WordsString(s string) string {
	n, ok := digitsValue(s)
	if !ok {
		return s
	}
	return Words(n)
}

// digitsValue parses a string of decimal digits. Returns false for empty or
// non-digit input, and for values too long to fit an int64.
func digitsValue(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 18 {
		return 0, false
	}
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int64(r-'0')
	}
	return n, true
}
