package render

// CatalogEntry documents one supported placeholder token.
type CatalogEntry struct {
	Token       string `json:"placeholder"`
	Description string `json:"descripcion"`
	Example     string `json:"ejemplo"`
}

// Catalog is the closed set of placeholder tokens templates may use. It is
// the source of truth the extractor, formatter and context builder are
// contracted against: adding a token here requires updating all of them in
// lock step, and BuildContext must emit every token with at least "".
var Catalog = []CatalogEntry{
	// Employee
	{"{{nombre_completo}}", "Nombre completo del colaborador.", "MARIO PEREZ"},
	{"{{nombre_completo_titulo}}", "Nombre del colaborador en formato título.", "Mario Perez"},
	{"{{cui}}", "CUI (DPI) del colaborador, agrupado 4/5/4.", "1234 56789 0123"},
	{"{{cui_letras}}", "CUI del colaborador en letras.", "mil doscientos... espacio ..."},
	{"{{edad_empleado}}", "Edad del colaborador en números.", "30"},
	{"{{edad_empleado_letras}}", "Edad del colaborador en letras.", "treinta"},
	{"{{direccion}}", "Dirección del domicilio del colaborador.", "1ra Calle 1-23, Zona 1"},
	{"{{estado_civil}}", "Estado civil del colaborador.", "Soltero"},
	{"{{nacionalidad}}", "Nacionalidad del colaborador.", "Guatemalteco"},
	{"{{profesion}}", "Profesión u oficio del colaborador.", "Perito Contador"},
	{"{{posicion}}", "Posición o cargo del colaborador.", "Asesor de Ventas"},
	{"{{puesto}}", "Alias de la posición del colaborador.", "Asesor de Ventas"},
	{"{{colaborador_lugar_notificaciones}}", "Lugar de notificaciones del colaborador.", "1ra Calle 1-23, Zona 1"},

	// Contract
	{"{{fecha_contrato}}", "Fecha de celebración del contrato, en prosa legal.", "el veintinueve (29) de enero del año dos mil veinticinco (2025)"},
	{"{{monto}}", "Monto de honorarios en formato numérico.", "Q.5,000.00"},
	{"{{monto_letras}}", "Monto en letras.", "CINCO MIL QUETZALES EXACTOS"},
	{"{{tipo_contrato}}", "Tipo de contrato.", "Servicios Profesionales"},

	// Start date
	{"{{día_letras}}", "Día de inicio del contrato, en letras.", "uno"},
	{"{{día_numeros}}", "Día de inicio del contrato, en número.", "1"},
	{"{{mes_letras}}", "Mes de inicio del contrato, en letras.", "enero"},
	{"{{año_letras}}", "Año de inicio del contrato, en letras.", "dos mil veinticinco"},
	{"{{año_numeros}}", "Año de inicio del contrato, en número.", "2025"},

	// End date
	{"{{vence_dia_letras}}", "Día de vencimiento, en letras.", "treinta y uno"},
	{"{{vence_dia_numeros}}", "Día de vencimiento, en número.", "31"},
	{"{{vence_mes_letras}}", "Mes de vencimiento, en letras.", "diciembre"},
	{"{{vence_año_letras}}", "Año de vencimiento, en letras.", "dos mil veinticinco"},
	{"{{vence_año_numeros}}", "Año de vencimiento, en número.", "2025"},

	// Company
	{"{{empresa_contratante}}", "Razón social de la empresa contratante.", "ACME S.A."},
	{"{{empresa_entidad}}", "Alias de la razón social de la empresa.", "ACME S.A."},
	{"{{empresa_autorizada_en}}", "Lugar de autorización de la empresa.", "Ciudad de Guatemala"},
	{"{{empresa_fecha_autorizacion}}", "Fecha de autorización de la empresa, en prosa.", "el ocho (8) de febrero de 2024"},
	{"{{empresa_autorizada_por}}", "Autoridad que autorizó la empresa.", "Notario Juan López"},
	{"{{empresa_inscrita_en}}", "Registro donde está inscrita la empresa.", "Registro Mercantil General"},
	{"{{empresa_numero_registro}}", "Número de registro mercantil.", "12345"},
	{"{{empresa_numero_registro_letras}}", "Número de registro en letras.", "doce mil trescientos cuarenta y cinco"},
	{"{{empresa_numero_folio}}", "Número de folio.", "250"},
	{"{{empresa_numero_folio_letras}}", "Número de folio en letras.", "doscientos cincuenta"},
	{"{{empresa_numero_libro}}", "Número de libro.", "114"},
	{"{{empresa_numero_libro_letras}}", "Número de libro en letras.", "ciento catorce"},
	{"{{empresa_tipo_libro}}", "Tipo de libro registral.", "de Sociedades Mercantiles"},
	{"{{empresa_lugar_notificaciones}}", "Dirección principal de la empresa.", "Avenida Reforma 1-23, Zona 10"},
	{"{{empresa_segundo_lugar_notificaciones}}", "Dirección secundaria de la empresa.", "Oficina 402, Edificio Central"},

	// Legal representative
	{"{{rep_legal_nombre}}", "Nombre completo del representante legal.", "Ana María Rodriguez"},
	{"{{rep_legal_edad}}", "Edad del representante legal.", "45"},
	{"{{rep_legal_edad_letras}}", "Edad del representante legal, en letras.", "cuarenta y cinco"},
	{"{{rep_legal_estado_civil}}", "Estado civil del representante legal.", "Casado"},
	{"{{rep_legal_profesion}}", "Profesión del representante legal.", "Abogado y Notario"},
	{"{{rep_legal_nacionalidad}}", "Nacionalidad del representante legal.", "Guatemalteco"},
	{"{{rep_legal_cui}}", "CUI del representante legal, agrupado 4/5/4.", "3003 54169 0101"},
	{"{{rep_legal_cui_letras}}", "CUI del representante legal, en letras.", "tres mil tres espacio ..."},
	{"{{rep_legal_extendido_en}}", "Lugar de extensión del documento del representante.", "Guatemala"},

	// Misc
	{"{{genero}}", "Tratamiento del notario autorizante.", "El Notario"},
}
