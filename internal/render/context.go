package render

import (
	"fmt"
	"strings"
	"time"

	"gestdoc/internal/domain"
	"gestdoc/internal/locale"
)

const notaryTreatment = "El Notario"

// RenderContext is the fully formatted value set for one document, grouped
// the way the placeholder catalog groups tokens. Every value is already in
// its final presentation form; the substitution engine does no formatting.
type RenderContext struct {
	Employee            map[string]string `json:"empleado"`
	Company             map[string]string `json:"empresa"`
	LegalRepresentative map[string]string `json:"representante_legal"`
	Contract            map[string]string `json:"contrato"`
	StartDate           locale.DateParts  `json:"fecha_inicio"`
	EndDate             locale.DateParts  `json:"fecha_fin"`
}

// BuildContext merges extracted fields with company and representative
// records into a RenderContext. Missing person fields fall back to the
// standard defaults at this stage, never earlier, so the extraction result
// keeps reporting what was actually found. The clock is injected so the
// representative's age is reproducible in tests.
func BuildContext(company *domain.Company, rep *domain.Representative, res domain.ExtractionResult, contractDate string, now time.Time) *RenderContext {
	ctx := &RenderContext{
		Employee:            employeeSection(res.Person),
		Company:             companySection(company),
		LegalRepresentative: representativeSection(rep, now),
		Contract:            contractSection(res.Contract, contractDate),
		StartDate:           locale.ExpandDate(res.Contract.StartDate),
		EndDate:             locale.ExpandDate(res.Contract.EndDate),
	}
	return ctx
}

func employeeSection(p domain.PersonFields) map[string]string {
	cui := locale.FormatCUI(p.CUI)
	return map[string]string{
		"nombre_completo":        p.FullName,
		"nombre_completo_titulo": locale.TitleCase(p.FullName),
		"cui":                    cui,
		"cui_letras":             locale.CUIWords(cui),
		"edad":                   p.Age,
		"edad_letras":            locale.WordsString(p.Age),
		"direccion":              p.Address,
		"estado_civil":           defaultIfEmpty(p.MaritalStatus, "Soltero"),
		"nacionalidad":           defaultIfEmpty(p.Nationality, "Guatemalteco"),
		"profesion":              defaultIfEmpty(p.Profession, "N/A"),
		"posicion":               p.Position,
		"lugar_notificaciones":   p.Address,
	}
}

func companySection(c *domain.Company) map[string]string {
	m := map[string]string{
		"razon_social":                 "",
		"autorizada_en":                "",
		"fecha_autorizacion":           "",
		"autorizada_por":               "",
		"inscrita_en":                  "",
		"numero_registro":              "",
		"numero_registro_letras":       "",
		"numero_folio":                 "",
		"numero_folio_letras":          "",
		"numero_libro":                 "",
		"numero_libro_letras":          "",
		"tipo_libro":                   "",
		"lugar_notificaciones":         "",
		"segundo_lugar_notificaciones": "",
	}
	if c == nil {
		return m
	}
	m["razon_social"] = c.LegalName
	m["autorizada_en"] = c.AuthorizedIn
	if c.AuthorizationDate != nil {
		m["fecha_autorizacion"] = locale.LongDateAt(*c.AuthorizationDate)
	}
	m["autorizada_por"] = c.AuthorizedBy
	m["inscrita_en"] = c.RegisteredIn
	m["numero_registro"] = c.RegistryNumber
	m["numero_registro_letras"] = locale.WordsString(c.RegistryNumber)
	m["numero_folio"] = c.FolioNumber
	m["numero_folio_letras"] = locale.WordsString(c.FolioNumber)
	m["numero_libro"] = c.BookNumber
	m["numero_libro_letras"] = locale.WordsString(c.BookNumber)
	m["tipo_libro"] = c.BookType
	m["lugar_notificaciones"] = c.NoticeAddress
	m["segundo_lugar_notificaciones"] = c.SecondNoticeAddr
	return m
}

func representativeSection(r *domain.Representative, now time.Time) map[string]string {
	m := map[string]string{
		"nombre_completo": "",
		"edad":            "",
		"edad_letras":     "",
		"estado_civil":    "",
		"profesion":       "",
		"nacionalidad":    "",
		"cui":             "",
		"cui_letras":      "",
		"extendido_en":    "",
	}
	if r == nil {
		return m
	}
	cui := locale.FormatCUI(r.CUI)
	m["nombre_completo"] = r.FullName
	if !r.BirthDate.IsZero() {
		age := yearsBetween(r.BirthDate, now)
		m["edad"] = fmt.Sprintf("%d", age)
		m["edad_letras"] = locale.Words(int64(age))
	}
	m["estado_civil"] = r.MaritalStatus
	m["profesion"] = r.Profession
	m["nacionalidad"] = r.Nationality
	m["cui"] = cui
	m["cui_letras"] = locale.CUIWords(cui)
	m["extendido_en"] = r.IssuedIn
	return m
}

func contractSection(c domain.ContractFields, contractDate string) map[string]string {
	amount := c.Amount
	if strings.TrimSpace(amount) == "" {
		amount = "Q.0.00"
	}
	amountWords := c.AmountWords
	if strings.TrimSpace(amountWords) == "" {
		amountWords = "CERO QUETZALES EXACTOS"
	}
	return map[string]string{
		"fecha":        locale.LongDate(contractDate),
		"monto":        amount,
		"monto_letras": amountWords,
		"tipo":         defaultIfEmpty(c.PositionType, "Servicios Profesionales"),
	}
}

// yearsBetween counts whole years as elapsed days over 365, which is how
// notarial practice here rounds an age stated in a contract.
func yearsBetween(birth, now time.Time) int {
	days := int(now.Sub(birth).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days / 365
}

func defaultIfEmpty(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// Flatten maps every catalog token to its final replacement text. Every
// token in the catalog is present in the result, with "" when the source
// value is unknown, so rendering never leaves a literal {{token}} behind.
func (c *RenderContext) Flatten() map[string]string {
	return map[string]string{
		"{{nombre_completo}}":                      c.Employee["nombre_completo"],
		"{{nombre_completo_titulo}}":               c.Employee["nombre_completo_titulo"],
		"{{cui}}":                                  c.Employee["cui"],
		"{{cui_letras}}":                           c.Employee["cui_letras"],
		"{{edad_empleado}}":                        c.Employee["edad"],
		"{{edad_empleado_letras}}":                 c.Employee["edad_letras"],
		"{{direccion}}":                            c.Employee["direccion"],
		"{{estado_civil}}":                         c.Employee["estado_civil"],
		"{{nacionalidad}}":                         c.Employee["nacionalidad"],
		"{{profesion}}":                            c.Employee["profesion"],
		"{{posicion}}":                             c.Employee["posicion"],
		"{{puesto}}":                               c.Employee["posicion"],
		"{{colaborador_lugar_notificaciones}}":     c.Employee["lugar_notificaciones"],
		"{{fecha_contrato}}":                       c.Contract["fecha"],
		"{{monto}}":                                c.Contract["monto"],
		"{{monto_letras}}":                         c.Contract["monto_letras"],
		"{{tipo_contrato}}":                        c.Contract["tipo"],
		"{{día_letras}}":                           c.StartDate.DayWords,
		"{{día_numeros}}":                          c.StartDate.Day,
		"{{mes_letras}}":                           c.StartDate.Month,
		"{{año_letras}}":                           c.StartDate.YearWords,
		"{{año_numeros}}":                          c.StartDate.Year,
		"{{vence_dia_letras}}":                     c.EndDate.DayWords,
		"{{vence_dia_numeros}}":                    c.EndDate.Day,
		"{{vence_mes_letras}}":                     c.EndDate.Month,
		"{{vence_año_letras}}":                     c.EndDate.YearWords,
		"{{vence_año_numeros}}":                    c.EndDate.Year,
		"{{empresa_contratante}}":                  c.Company["razon_social"],
		"{{empresa_entidad}}":                      c.Company["razon_social"],
		"{{empresa_autorizada_en}}":                c.Company["autorizada_en"],
		"{{empresa_fecha_autorizacion}}":           c.Company["fecha_autorizacion"],
		"{{empresa_autorizada_por}}":               c.Company["autorizada_por"],
		"{{empresa_inscrita_en}}":                  c.Company["inscrita_en"],
		"{{empresa_numero_registro}}":              c.Company["numero_registro"],
		"{{empresa_numero_registro_letras}}":       c.Company["numero_registro_letras"],
		"{{empresa_numero_folio}}":                 c.Company["numero_folio"],
		"{{empresa_numero_folio_letras}}":          c.Company["numero_folio_letras"],
		"{{empresa_numero_libro}}":                 c.Company["numero_libro"],
		"{{empresa_numero_libro_letras}}":          c.Company["numero_libro_letras"],
		"{{empresa_tipo_libro}}":                   c.Company["tipo_libro"],
		"{{empresa_lugar_notificaciones}}":         c.Company["lugar_notificaciones"],
		"{{empresa_segundo_lugar_notificaciones}}": c.Company["segundo_lugar_notificaciones"],
		"{{rep_legal_nombre}}":                     c.LegalRepresentative["nombre_completo"],
		"{{rep_legal_edad}}":                       c.LegalRepresentative["edad"],
		"{{rep_legal_edad_letras}}":                c.LegalRepresentative["edad_letras"],
		"{{rep_legal_estado_civil}}":               c.LegalRepresentative["estado_civil"],
		"{{rep_legal_profesion}}":                  c.LegalRepresentative["profesion"],
		"{{rep_legal_nacionalidad}}":               c.LegalRepresentative["nacionalidad"],
		"{{rep_legal_cui}}":                        c.LegalRepresentative["cui"],
		"{{rep_legal_cui_letras}}":                 c.LegalRepresentative["cui_letras"],
		"{{rep_legal_extendido_en}}":               c.LegalRepresentative["extendido_en"],
		"{{genero}}":                               notaryTreatment,
	}
}
