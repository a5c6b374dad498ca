package locale

import (
	"fmt"
	"strings"
	"time"
)

var months = [13]string{
	"", "enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
	"agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Sentinel text for date parts that could not be determined.
const (
	DatePartNA      = "N/A"
	OpenEndedPhrase = "Por tiempo indefinido"
	UnknownDate     = "Fecha no especificada"
)

// DateParts holds the digit/word pair expansion of one calendar date, the
// pieces the contract templates reference individually.
type DateParts struct {
	Day       string `json:"dia"`
	DayWords  string `json:"dia_letras"`
	Month     string `json:"mes"`
	Year      string `json:"anio"`
	YearWords string `json:"anio_letras"`
	Full      string `json:"completa"`
}

// naParts returns the sentinel expansion with the given full-text phrase.
func naParts(full string) DateParts {
	return DateParts{
		Day:       DatePartNA,
		DayWords:  DatePartNA,
		Month:     DatePartNA,
		Year:      DatePartNA,
		YearWords: DatePartNA,
		Full:      full,
	}
}

// ParseDate accepts ISO (2006-01-02) and local (02/01/2006) date strings.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		return time.Parse("02/01/2006", s)
	}
	return time.Parse("2006-01-02", s)
}

// ExpandDate expands a date string into its digit/word parts. An absent
// value or one tagged "indefinido" (any case) expands to the open-ended
// sentinel; an unparseable value expands to the unknown-date sentinel. The
// two sentinels are distinct and must stay distinct.
func ExpandDate(s string) DateParts {
	if strings.TrimSpace(s) == "" || strings.Contains(strings.ToLower(s), "indefinido") {
		return naParts(OpenEndedPhrase)
	}
	t, err := ParseDate(s)
	if err != nil {
		return naParts(UnknownDate)
	}
	return DateParts{
		Day:       fmt.Sprintf("%d", t.Day()),
		DayWords:  Words(int64(t.Day())),
		Month:     months[t.Month()],
		Year:      fmt.Sprintf("%d", t.Year()),
		YearWords: Words(int64(t.Year())),
		Full:      fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()], t.Year()),
	}
}

// LongDate renders the canonical long form used for the contract's authored
// date: "el veintinueve (29) de enero del año dos mil veinticinco (2025)".
// Unparseable input passes through unchanged.
func LongDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("el %s (%d) de %s del año %s (%d)",
		Words(int64(t.Day())), t.Day(), months[t.Month()],
		Words(int64(t.Year())), t.Year())
}

// LongDateAt renders a concrete time in the shorter prose form used for
// company authorization dates: "el ocho (8) de febrero de 2024".
func LongDateAt(t time.Time) string {
	return fmt.Sprintf("el %s (%d) de %s de %d",
		Words(int64(t.Day())), t.Day(), months[t.Month()], t.Year())
}
