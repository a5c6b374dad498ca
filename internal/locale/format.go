package locale

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cleanDigits strips the spaces and dashes recognition tends to leave
// inside an identity number.
func cleanDigits(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(s)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatCUI partitions a 13-digit identity number into the 4/5/4 display
// grouping ("1234 56789 0123"). Every other input is returned unmodified;
// malformed numbers are not an error here, the template just shows what
// recognition produced.
func FormatCUI(s string) string {
	d := cleanDigits(s)
	if !allDigits(d) || len(d) != 13 {
		return s
	}
	return d[0:4] + " " + d[4:9] + " " + d[9:13]
}

// CUIWords renders the spoken form of an identity number. A 13-digit number
// reads as its three groups joined by the word "espacio"; other numeric
// input reads digit by digit; non-numeric input yields "".
func CUIWords(s string) string {
	d := cleanDigits(s)
	if !allDigits(d) {
		return ""
	}
	if len(d) != 13 {
		parts := make([]string, 0, len(d))
		for _, r := range d {
			parts = append(parts, Words(int64(r-'0')))
		}
		return strings.Join(parts, " ")
	}
	groups := []string{d[0:4], d[4:9], d[9:13]}
	words := make([]string, 0, 3)
	for _, g := range groups {
		n, _ := digitsValue(g)
		words = append(words, Words(n))
	}
	return strings.Join(words, " espacio ")
}

// ParseAmount parses a monetary string, tolerating thousands separators.
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
}

// FormatMoney renders an amount as quetzales: "Q.5,000.00".
func FormatMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")
	dot := strings.Index(fixed, ".")
	intPart, frac := fixed[:dot], fixed[dot:]
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "Q." + b.String() + frac
	if neg {
		out = "Q.-" + b.String() + frac
	}
	return out
}

// MoneyWords renders the legal spoken form of an amount: the integer part
// in upper-case words followed by "QUETZALES EXACTOS".
func MoneyWords(d decimal.Decimal) string {
	return strings.ToUpper(Words(d.IntPart())) + " QUETZALES EXACTOS"
}

// TitleCase capitalizes each word of a name without mangling accented
// characters ("MARÍA JOSÉ" reads "María José").
func TitleCase(s string) string {
	if s == "" {
		return ""
	}
	return cases.Title(language.Spanish).String(s)
}
