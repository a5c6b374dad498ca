package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"gestdoc/internal/domain"
)

// XlsxContentType is the MIME type for exported workbooks.
const XlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var registryHeader = []string{
	"ID", "Colaborador", "CUI", "Empresa", "Plantilla", "Categoría",
	"Estado", "Archivo", "Tamaño (bytes)", "Creado",
}

// RegistryRow pairs a generated document with the display names of its
// references, which the registry table only stores as IDs.
type RegistryRow struct {
	Document     domain.GeneratedDocument
	CompanyName  string
	TemplateName string
}

// RegistryWorkbook renders the generated-document registry as an xlsx
// workbook.
func RegistryWorkbook(rows []RegistryRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Documentos"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range registryHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("export: header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("export: header cell: %w", err)
		}
	}

	for r, row := range rows {
		doc := row.Document
		values := []interface{}{
			doc.ID.String(),
			doc.EmployeeName,
			doc.EmployeeCUI,
			row.CompanyName,
			row.TemplateName,
			doc.Category,
			string(doc.Status),
			doc.FileName,
			doc.FileSize,
			doc.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("export: data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("export: data cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
