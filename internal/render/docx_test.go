package render_test

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestdoc/internal/render"
)

func TestRepairRuns_TokenSplitAcrossFragments(t *testing.T) {
	repl := map[string]string{"{{cui}}": "1234 56789 0123"}

	got, changed := render.RepairRuns([]string{"con CUI {{c", "ui", "}} quien"}, repl)
	assert.True(t, changed)
	assert.Equal(t, "con CUI 1234 56789 0123 quien", got)
}

func TestRepairRuns_NoTokenLeavesTextAlone(t *testing.T) {
	got, changed := render.RepairRuns([]string{"sin ", "marcadores"}, map[string]string{"{{cui}}": "x"})
	assert.False(t, changed)
	assert.Equal(t, "sin marcadores", got)
}

func TestRepairRuns_LongestKeyWins(t *testing.T) {
	repl := map[string]string{
		"{{monto}}":        "Q.5,000.00",
		"{{monto_letras}}": "CINCO MIL QUETZALES EXACTOS",
	}
	got, changed := render.RepairRuns([]string{"por {{monto_letras}} ({{monto}})"}, repl)
	assert.True(t, changed)
	assert.Equal(t, "por CINCO MIL QUETZALES EXACTOS (Q.5,000.00)", got)
}

func TestRepairRuns_UnknownTokenPassesThrough(t *testing.T) {
	got, changed := render.RepairRuns([]string{"{{desconocido}}"}, map[string]string{"{{cui}}": "x"})
	assert.False(t, changed)
	assert.Equal(t, "{{desconocido}}", got)
}

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:r><w:rPr><w:b/></w:rPr><w:t>Contrato de {{nombre_comp</w:t></w:r>
      <w:r><w:t>leto}}</w:t></w:r>
    </w:p>
    <w:p>
      <w:r><w:t xml:space="preserve">Sin marcadores, este parrafo queda igual.</w:t></w:r>
    </w:p>
    <w:tbl>
      <w:tr>
        <w:tc>
          <w:p><w:r><w:t>CUI: {{cui}}</w:t></w:r></w:p>
        </w:tc>
      </w:tr>
    </w:tbl>
  </w:body>
</w:document>`

const testHeaderXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:hdr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:p><w:r><w:t>{{empresa_contratante}}</w:t></w:r></w:p>
</w:hdr>`

func buildTestDocx(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types/>`,
		"word/document.xml":   testDocumentXML,
		"word/header1.xml":    testHeaderXML,
		"word/media/logo.png": "\x89PNG-not-really",
	}
	for _, name := range []string{"[Content_Types].xml", "word/document.xml", "word/header1.xml", "word/media/logo.png"} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(entries[name]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func readEntry(t *testing.T, archive []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("entry %s not found", name)
	return ""
}

func TestRender_SubstitutesBodyHeaderAndTables(t *testing.T) {
	repl := map[string]string{
		"{{nombre_completo}}":     "MARIO PEREZ",
		"{{cui}}":                 "1234 56789 0123",
		"{{empresa_contratante}}": "ACME S.A.",
	}

	out, err := render.Render(buildTestDocx(t), repl)
	require.NoError(t, err)

	body := readEntry(t, out, "word/document.xml")
	assert.Contains(t, body, "Contrato de MARIO PEREZ")
	assert.Contains(t, body, "CUI: 1234 56789 0123")
	assert.NotContains(t, body, "{{")

	header := readEntry(t, out, "word/header1.xml")
	assert.Contains(t, header, "ACME S.A.")
}

func TestRender_UntouchedParagraphKeptVerbatim(t *testing.T) {
	out, err := render.Render(buildTestDocx(t), map[string]string{"{{cui}}": "1"})
	require.NoError(t, err)

	body := readEntry(t, out, "word/document.xml")
	assert.Contains(t, body, `<w:t xml:space="preserve">Sin marcadores, este parrafo queda igual.</w:t>`)
}

func TestRender_RepairedRunKeepsFirstRunStyle(t *testing.T) {
	out, err := render.Render(buildTestDocx(t), map[string]string{"{{nombre_completo}}": "MARIO PEREZ"})
	require.NoError(t, err)

	body := readEntry(t, out, "word/document.xml")
	// The split-run paragraph collapses to one run that inherits the bold
	// properties of the first original run.
	idx := strings.Index(body, "Contrato de MARIO PEREZ")
	require.Greater(t, idx, 0)
	assert.Contains(t, body[:idx], "<w:b/>")
}

const hyperlinkDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:hyperlink>
        <w:r><w:t>Firmado por {{rep_legal_nombre}}</w:t></w:r>
      </w:hyperlink>
    </w:p>
    <w:p>
      <w:r><w:t>CUI {{c</w:t></w:r>
      <w:hyperlink>
        <w:r><w:t>ui}}</w:t></w:r>
      </w:hyperlink>
    </w:p>
  </w:body>
</w:document>`

func buildHyperlinkDocx(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(hyperlinkDocumentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestRender_TokenInsideHyperlinkRun(t *testing.T) {
	out, err := render.Render(buildHyperlinkDocx(t), map[string]string{
		"{{rep_legal_nombre}}": "ANA RODRIGUEZ",
		"{{cui}}":              "1234 56789 0123",
	})
	require.NoError(t, err)

	body := readEntry(t, out, "word/document.xml")
	assert.Contains(t, body, "Firmado por ANA RODRIGUEZ")
	assert.NotContains(t, body, "{{rep_legal_nombre}}")
}

func TestRender_TokenSplitAcrossHyperlinkBoundary(t *testing.T) {
	out, err := render.Render(buildHyperlinkDocx(t), map[string]string{
		"{{cui}}": "1234 56789 0123",
	})
	require.NoError(t, err)

	body := readEntry(t, out, "word/document.xml")
	assert.Contains(t, body, "CUI 1234 56789 0123")
	assert.NotContains(t, body, "{{c")
}

func TestRender_NonXMLEntriesCopiedThrough(t *testing.T) {
	out, err := render.Render(buildTestDocx(t), map[string]string{"{{cui}}": "1"})
	require.NoError(t, err)

	assert.Equal(t, "\x89PNG-not-really", readEntry(t, out, "word/media/logo.png"))
	assert.Equal(t, `<?xml version="1.0"?><Types/>`, readEntry(t, out, "[Content_Types].xml"))
}

func TestRender_Idempotent(t *testing.T) {
	repl := map[string]string{
		"{{nombre_completo}}":     "MARIO PEREZ",
		"{{cui}}":                 "1234 56789 0123",
		"{{empresa_contratante}}": "ACME S.A.",
	}
	once, err := render.Render(buildTestDocx(t), repl)
	require.NoError(t, err)
	twice, err := render.Render(once, repl)
	require.NoError(t, err)

	assert.Equal(t, readEntry(t, once, "word/document.xml"), readEntry(t, twice, "word/document.xml"))
}

func TestRender_RejectsNonArchiveInput(t *testing.T) {
	_, err := render.Render([]byte("not a docx"), nil)
	assert.Error(t, err)
}
