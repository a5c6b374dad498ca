package ocr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gestdoc/internal/domain"
	"gestdoc/internal/locale"
)

// Field names one logical field recovered from recognized text.
type Field string

const (
	FieldCompany       Field = "empresa_contratante"
	FieldFullName      Field = "nombre_completo"
	FieldCUI           Field = "cui"
	FieldAddress       Field = "direccion"
	FieldStartDate     Field = "fecha_inicio"
	FieldEndDate       Field = "fecha_fin"
	FieldAmount        Field = "monto"
	FieldPosition      Field = "posicion"
	FieldProfession    Field = "profesion"
	FieldMaritalStatus Field = "estado_civil"
	FieldAge           Field = "edad"
)

// cascade is the ordered matcher list for one field. Patterns are tried in
// declared order; the first captured value that passes validate wins.
// Later patterns exist to catch recognition failures the stricter ones
// miss, so the order is part of the contract.
type cascade struct {
	field    Field
	patterns []*regexp.Regexp
	validate func(string) bool
	clean    func(string) string
}

// closingKeywords are salutations that mark the end of the form's useful
// content; greedy free-text captures are truncated at the first one.
var closingKeywords = []string{
	"ATENTAMENTE", "CORDIALMENTE", "RESPETUOSAMENTE", "SALUDOS", "FIRMA",
}

func truncateAtClosing(s string) string {
	upper := strings.ToUpper(s)
	cut := len(s)
	for _, kw := range closingKeywords {
		if idx := strings.Index(upper, kw); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return strings.TrimSpace(s[:cut])
}

func validAge(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= 18 && n <= 99
}

func validAmount(s string) bool {
	_, err := locale.ParseAmount(s)
	return err == nil
}

func validCUI(s string) bool {
	if len(s) < 7 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// cascades is the source of truth for extraction: one entry per logical
// field, patterns in priority order.
var cascades = []cascade{
	{
		field: FieldCompany,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)EMPRESA\s+([^\n]+)`),
			regexp.MustCompile(`(?im)^EMPRESA\s*$\n\s*([^\n]+)`),
		},
	},
	{
		field: FieldFullName,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)COLABORADOR\s+([^\n]+)`),
			regexp.MustCompile(`(?im)^COLABORADOR\s*$\n\s*([^\n]+)`),
		},
	},
	{
		field: FieldCUI,
		patterns: []*regexp.Regexp{
			// Tolerates "DPI /PASAPORTE" and the "DPI JPASAPORTE" misread.
			regexp.MustCompile(`(?i)DPI\s*[/J]?\s*PASAPORTE\s+(\d+)`),
			regexp.MustCompile(`(?i)DPI\s+(\d{13})`),
			regexp.MustCompile(`(?im)^DPI\s*[/J]?\s*PASAPORTE\s*$\n\s*(\d+)`),
		},
		validate: validCUI,
	},
	{
		field: FieldAddress,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)DIRECCI[ÓO]N\s+([^\n]+)`),
			regexp.MustCompile(`(?im)^DIRECCI[ÓO]N\s*$\n\s*([^\n]+)`),
		},
	},
	{
		field: FieldStartDate,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)FECHA\s+DE\s+INICIO\s+([^\n]+)`),
			regexp.MustCompile(`(?im)^FECHA\s+DE\s+INICIO\s*$\n\s*([^\n]+)`),
		},
	},
	{
		field: FieldEndDate,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)FECHA\s+DE\s+FINALIZACI[ÓO]N\s+([^\n]+)`),
			regexp.MustCompile(`(?im)^FECHA\s+DE\s+FINALIZACI[ÓO]N\s*$\n\s*([^\n]+)`),
		},
	},
	{
		field: FieldAmount,
		patterns: []*regexp.Regexp{
			// Tolerates the "PACAR" misread of "PAGAR".
			regexp.MustCompile(`(?i)HONORARIOS\s+POR\s+PA[GC]AR\s+([\d,]+\.\d{2})`),
			regexp.MustCompile(`(?i)HONORARIOS[^\n]*?([\d,]+\.\d{2})`),
		},
		validate: validAmount,
	},
	{
		field: FieldPosition,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)POSICI[ÓO]N\s+([^\n]+)`),
			regexp.MustCompile(`(?im)^POSICI[ÓO]N\s*$\n\s*([^\n]+)`),
		},
		clean: truncateAtClosing,
	},
	{
		field: FieldProfession,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)PROFESI[ÓO]N\s+U\s+OFICIO\s+([^\n]+)`),
			regexp.MustCompile(`(?i)PROFESI[ÓO]N\s+([^\n]+)`),
		},
		clean: truncateAtClosing,
	},
	{
		field: FieldMaritalStatus,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)ESTADO\s+CIVIL\s+([^\n]+)`),
		},
	},
	{
		field: FieldAge,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)EDAD\s*[:.]?\s*(\d{1,3})`),
			regexp.MustCompile(`(?im)^EDAD\s*$\n\s*(\d{1,3})`),
			// Last resort: a bare two-digit number shortly after the label,
			// with recognition noise in between.
			regexp.MustCompile(`(?is)EDAD\D{0,40}?(\d{2})`),
		},
		validate: validAge,
	},
}

// Fields returns every logical field in declared cascade order.
func Fields() []Field {
	out := make([]Field, len(cascades))
	for i, c := range cascades {
		out[i] = c.field
	}
	return out
}

// ExtractRaw runs every cascade against text. The result always carries
// every field: values that did not match or did not validate are present as
// empty strings. Extraction never fails, it degrades field by field.
func ExtractRaw(text string) map[Field]string {
	out := make(map[Field]string, len(cascades))
	for _, c := range cascades {
		out[c.field] = ""
		for _, re := range c.patterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			value := strings.TrimSpace(m[1])
			if c.clean != nil {
				value = c.clean(value)
			}
			if c.validate != nil && !c.validate(value) {
				continue
			}
			out[c.field] = value
			break
		}
	}
	return out
}

// Parse normalizes recognized text, extracts every field and assembles the
// structured result the rest of the pipeline consumes.
func Parse(text string) domain.ExtractionResult {
	raw := ExtractRaw(Normalize(text))

	amount := "Q.0.00"
	amountWords := "CERO QUETZALES EXACTOS"
	if raw[FieldAmount] != "" {
		if d, err := locale.ParseAmount(raw[FieldAmount]); err == nil {
			amount = locale.FormatMoney(d)
			amountWords = locale.MoneyWords(d)
		}
	}

	endDate := raw[FieldEndDate]
	if endDate == "" || strings.Contains(strings.ToLower(endDate), "indefinido") {
		endDate = domain.OpenEndedContract
	}

	positionType := raw[FieldPosition]
	if positionType == "" {
		positionType = "Servicios Profesionales"
	}
	extra := "Posición: N/A"
	if raw[FieldPosition] != "" {
		extra = fmt.Sprintf("Posición: %s", raw[FieldPosition])
	}

	return domain.ExtractionResult{
		CompanyName: raw[FieldCompany],
		Person: domain.PersonFields{
			CUI:           locale.FormatCUI(raw[FieldCUI]),
			FullName:      raw[FieldFullName],
			Address:       raw[FieldAddress],
			Age:           raw[FieldAge],
			MaritalStatus: raw[FieldMaritalStatus],
			Profession:    raw[FieldProfession],
			Position:      raw[FieldPosition],
		},
		Contract: domain.ContractFields{
			PositionType: positionType,
			StartDate:    raw[FieldStartDate],
			EndDate:      endDate,
			Amount:       amount,
			AmountWords:  amountWords,
			ExtraDetail:  extra,
		},
	}
}
