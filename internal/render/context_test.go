package render_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gestdoc/internal/domain"
	"gestdoc/internal/locale"
	"gestdoc/internal/render"
)

func sampleExtraction() domain.ExtractionResult {
	return domain.ExtractionResult{
		CompanyName: "ACME S.A.",
		Person: domain.PersonFields{
			CUI:        "1234 56789 0123",
			FullName:   "MARIO PEREZ",
			Address:    "1ra Calle 1-23, Zona 1",
			Age:        "30",
			Profession: "Perito Contador",
			Position:   "Asesor de Ventas",
		},
		Contract: domain.ContractFields{
			PositionType: "Servicios Profesionales",
			StartDate:    "2025-02-01",
			EndDate:      domain.OpenEndedContract,
			Amount:       "Q.5,000.00",
			AmountWords:  "CINCO MIL QUETZALES EXACTOS",
		},
	}
}

func sampleCompany() *domain.Company {
	authDate := time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC)
	return &domain.Company{
		LegalName:         "ACME S.A.",
		AuthorizedIn:      "Ciudad de Guatemala",
		AuthorizationDate: &authDate,
		AuthorizedBy:      "Notario Juan López",
		RegisteredIn:      "Registro Mercantil General",
		RegistryNumber:    "12345",
		FolioNumber:       "250",
		BookNumber:        "114",
		BookType:          "de Sociedades Mercantiles",
		NoticeAddress:     "Avenida Reforma 1-23, Zona 10",
		SecondNoticeAddr:  "Oficina 402, Edificio Central",
	}
}

func sampleRepresentative() *domain.Representative {
	return &domain.Representative{
		FullName:      "ANA MARIA RODRIGUEZ",
		BirthDate:     time.Date(1980, 3, 15, 0, 0, 0, 0, time.UTC),
		CUI:           "3003541690101",
		MaritalStatus: "Casada",
		Profession:    "Abogada y Notaria",
		Nationality:   "Guatemalteca",
		IssuedIn:      "Guatemala",
	}
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestBuildContext_FlattenCoversWholeCatalog(t *testing.T) {
	ctx := render.BuildContext(sampleCompany(), sampleRepresentative(), sampleExtraction(), "2025-01-29", testNow)
	flat := ctx.Flatten()

	for _, entry := range render.Catalog {
		_, ok := flat[entry.Token]
		assert.True(t, ok, "token %s missing from flattened context", entry.Token)
	}
	assert.Len(t, flat, len(render.Catalog))
}

func TestBuildContext_FlattenCoversCatalogWithNilReferences(t *testing.T) {
	ctx := render.BuildContext(nil, nil, domain.ExtractionResult{}, "", testNow)
	flat := ctx.Flatten()

	for _, entry := range render.Catalog {
		_, ok := flat[entry.Token]
		assert.True(t, ok, "token %s missing from flattened context", entry.Token)
	}
}

func TestBuildContext_EmployeeValues(t *testing.T) {
	ctx := render.BuildContext(sampleCompany(), sampleRepresentative(), sampleExtraction(), "2025-01-29", testNow)
	flat := ctx.Flatten()

	assert.Equal(t, "MARIO PEREZ", flat["{{nombre_completo}}"])
	assert.Equal(t, "Mario Perez", flat["{{nombre_completo_titulo}}"])
	assert.Equal(t, "1234 56789 0123", flat["{{cui}}"])
	assert.Contains(t, flat["{{cui_letras}}"], " espacio ")
	assert.Equal(t, "30", flat["{{edad_empleado}}"])
	assert.Equal(t, "treinta", flat["{{edad_empleado_letras}}"])
	assert.Equal(t, "Asesor de Ventas", flat["{{posicion}}"])
	assert.Equal(t, flat["{{posicion}}"], flat["{{puesto}}"])
	assert.Equal(t, flat["{{direccion}}"], flat["{{colaborador_lugar_notificaciones}}"])
}

func TestBuildContext_DefaultsAppliedAtFormatTime(t *testing.T) {
	ctx := render.BuildContext(nil, nil, domain.ExtractionResult{}, "", testNow)
	flat := ctx.Flatten()

	assert.Equal(t, "Soltero", flat["{{estado_civil}}"])
	assert.Equal(t, "Guatemalteco", flat["{{nacionalidad}}"])
	assert.Equal(t, "N/A", flat["{{profesion}}"])
	assert.Equal(t, "Servicios Profesionales", flat["{{tipo_contrato}}"])
	assert.Equal(t, "Q.0.00", flat["{{monto}}"])
	assert.Equal(t, "CERO QUETZALES EXACTOS", flat["{{monto_letras}}"])
}

func TestBuildContext_ContractDate(t *testing.T) {
	ctx := render.BuildContext(sampleCompany(), sampleRepresentative(), sampleExtraction(), "2025-01-29", testNow)
	flat := ctx.Flatten()
	assert.Equal(t, "el veintinueve (29) de enero del año dos mil veinticinco (2025)", flat["{{fecha_contrato}}"])
}

func TestBuildContext_StartAndEndDates(t *testing.T) {
	ctx := render.BuildContext(sampleCompany(), sampleRepresentative(), sampleExtraction(), "2025-01-29", testNow)
	flat := ctx.Flatten()

	assert.Equal(t, "1", flat["{{día_numeros}}"])
	assert.Equal(t, "uno", flat["{{día_letras}}"])
	assert.Equal(t, "febrero", flat["{{mes_letras}}"])
	assert.Equal(t, "dos mil veinticinco", flat["{{año_letras}}"])
	assert.Equal(t, "2025", flat["{{año_numeros}}"])

	// Open-ended end date expands to the N/A sentinel per part.
	assert.Equal(t, locale.DatePartNA, flat["{{vence_dia_numeros}}"])
	assert.Equal(t, locale.DatePartNA, flat["{{vence_mes_letras}}"])
	assert.Equal(t, locale.DatePartNA, flat["{{vence_año_letras}}"])
}

func TestBuildContext_RepresentativeAgeFromClock(t *testing.T) {
	ctx := render.BuildContext(sampleCompany(), sampleRepresentative(), sampleExtraction(), "2025-01-29", testNow)
	flat := ctx.Flatten()

	// Born 1980-03-15, clock at 2025-06-01: whole-day count over 365.
	assert.Equal(t, "45", flat["{{rep_legal_edad}}"])
	assert.Equal(t, "cuarenta y cinco", flat["{{rep_legal_edad_letras}}"])
	assert.Equal(t, "3003 54169 0101", flat["{{rep_legal_cui}}"])
}

func TestBuildContext_CompanyValues(t *testing.T) {
	ctx := render.BuildContext(sampleCompany(), sampleRepresentative(), sampleExtraction(), "2025-01-29", testNow)
	flat := ctx.Flatten()

	assert.Equal(t, "ACME S.A.", flat["{{empresa_contratante}}"])
	assert.Equal(t, flat["{{empresa_contratante}}"], flat["{{empresa_entidad}}"])
	assert.Equal(t, "el ocho (8) de febrero de 2024", flat["{{empresa_fecha_autorizacion}}"])
	assert.Equal(t, "doce mil trescientos cuarenta y cinco", flat["{{empresa_numero_registro_letras}}"])
	assert.Equal(t, "doscientos cincuenta", flat["{{empresa_numero_folio_letras}}"])
	assert.Equal(t, "ciento catorce", flat["{{empresa_numero_libro_letras}}"])
}

func TestBuildContext_NotaryTreatment(t *testing.T) {
	ctx := render.BuildContext(nil, nil, domain.ExtractionResult{}, "", testNow)
	assert.Equal(t, "El Notario", ctx.Flatten()["{{genero}}"])
}
