package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/beevik/etree"
)

// Render substitutes placeholder tokens across a .docx template and returns
// the rebuilt archive. The body, headers and footers are rewritten; every
// other archive entry is copied through byte for byte. Paragraphs that
// contain no token are left completely untouched, so formatting damage is
// confined to paragraphs that actually carry a placeholder.
func Render(template []byte, repl map[string]string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, fmt.Errorf("render: opening template archive: %w", err)
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("render: opening entry %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("render: reading entry %s: %w", f.Name, err)
		}

		if rewritablePart(f.Name) {
			data, err = rewritePart(data, repl)
			if err != nil {
				return nil, fmt.Errorf("render: rewriting %s: %w", f.Name, err)
			}
		}

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   f.Method,
			Modified: f.Modified,
		})
		if err != nil {
			return nil, fmt.Errorf("render: writing entry %s: %w", f.Name, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("render: writing entry %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("render: closing archive: %w", err)
	}
	return out.Bytes(), nil
}

// rewritablePart reports whether a zip entry carries visible document text.
func rewritablePart(name string) bool {
	if name == "word/document.xml" {
		return true
	}
	if !strings.HasSuffix(name, ".xml") {
		return false
	}
	return strings.HasPrefix(name, "word/header") || strings.HasPrefix(name, "word/footer")
}

func rewritePart(data []byte, repl map[string]string) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	walk(doc.Root(), repl)
	return doc.WriteToBytes()
}

// walk descends through tables, rows, cells and any structural wrapper,
// repairing each paragraph it finds. Nested tables fall out of the
// recursion for free.
func walk(el *etree.Element, repl map[string]string) {
	if el == nil {
		return
	}
	for _, child := range el.ChildElements() {
		if child.Space == "w" && child.Tag == "p" {
			repairParagraph(child, repl)
			continue
		}
		walk(child, repl)
	}
}

// repairParagraph joins the paragraph's run texts, and when the joined text
// contains a token, collapses the runs into a single new run carrying the
// first run's character properties. OCR-era templates routinely split a
// token like {{cui}} across several runs, so matching per run is a dead end;
// matching the joined text is the only reliable signal.
func repairParagraph(p *etree.Element, repl map[string]string) {
	runs := collectRuns(p)
	if len(runs) == 0 {
		return
	}
	fragments := make([]string, len(runs))
	for i, r := range runs {
		fragments[i] = runText(r)
	}
	full, changed := RepairRuns(fragments, repl)
	if !changed {
		return
	}

	var style *etree.Element
	if rpr := runs[0].SelectElement("w:rPr"); rpr != nil {
		style = rpr.Copy()
	}
	for _, r := range runs {
		if parent := r.Parent(); parent != nil {
			parent.RemoveChild(r)
		}
	}
	nr := p.CreateElement("w:r")
	if style != nil {
		nr.AddChild(style)
	}
	t := nr.CreateElement("w:t")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(full)
}

// collectRuns gathers a paragraph's runs in document order, descending into
// hyperlink and tracked-change wrappers that carry runs of their own. A token
// split across a hyperlink boundary repairs the same way as one split across
// plain runs.
func collectRuns(el *etree.Element) []*etree.Element {
	var runs []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Space == "w" && child.Tag == "r" {
			runs = append(runs, child)
			continue
		}
		runs = append(runs, collectRuns(child)...)
	}
	return runs
}

func runText(r *etree.Element) string {
	var sb strings.Builder
	for _, t := range r.SelectElements("w:t") {
		sb.WriteString(t.Text())
	}
	return sb.String()
}

// RepairRuns concatenates run fragments and applies replacements to the
// joined text. The second return reports whether any token matched; callers
// must leave the paragraph untouched when it is false. Keys are applied
// longest first so a token that prefixes another can never clobber it.
func RepairRuns(fragments []string, repl map[string]string) (string, bool) {
	full := strings.Join(fragments, "")
	keys := sortedKeys(repl)
	matched := false
	for _, k := range keys {
		if strings.Contains(full, k) {
			matched = true
			break
		}
	}
	if !matched {
		return full, false
	}
	for _, k := range keys {
		full = strings.ReplaceAll(full, k, repl[k])
	}
	return full, true
}

func sortedKeys(repl map[string]string) []string {
	keys := make([]string, 0, len(repl))
	for k := range repl {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}
