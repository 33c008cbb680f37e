// helpers_test.go builds minimal in-memory DOCX packages and markup
// snippets shared by the package tests.

package caliper

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"
	"testing"
)

// mustOpen parses an in-memory package or fails the test.
func mustOpen(t *testing.T, pkg []byte) *Document {
	t.Helper()
	doc, err := OpenBytes(pkg)
	if err != nil {
		t.Fatalf("failed to open test document: %v", err)
	}
	return doc
}

const testDocumentHeader = `<w:document` +
	` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
	` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"` +
	` xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
	` xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture"` +
	` xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart"` +
	` xmlns:dgm="http://schemas.openxmlformats.org/drawingml/2006/diagram"` +
	` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
	` xmlns:v="urn:schemas-microsoft-com:vml">`

// wrapDocument produces a complete word/document.xml with the given body
// markup.
func wrapDocument(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		testDocumentHeader + "<w:body>" + body + "</w:body></w:document>"
}

// buildDOCXBytes assembles a minimal document package whose w:body holds
// the given markup.
func buildDOCXBytes(body string) []byte {
	return buildDOCXPackage(map[string]string{
		"word/document.xml": wrapDocument(body),
	})
}

// buildDOCXPackage assembles a package from a standard four-part skeleton
// plus the given parts. Parts override skeleton entries by name; unknown
// names become additional entries.
func buildDOCXPackage(parts map[string]string) []byte {
	skeleton := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
	}
	defaults := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Default Extension="png" ContentType="image/png"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.png"/>
  <Relationship Id="rId9" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="http://example.com/logo.png" TargetMode="External"/>
</Relationships>`,
		"word/document.xml": wrapDocument(""),
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	written := make(map[string]bool)
	for _, name := range skeleton {
		content := defaults[name]
		if override, ok := parts[name]; ok {
			content = override
		}
		f, _ := w.Create(name)
		io.WriteString(f, content)
		written[name] = true
	}

	var extras []string
	for name := range parts {
		if !written[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		f, _ := w.Create(name)
		io.WriteString(f, parts[name])
	}

	w.Close()
	return buf.Bytes()
}

func drawingParagraph(inline string) string {
	return "<w:p><w:r><w:drawing>" + inline + "</w:drawing></w:r></w:p>"
}

// pictureInline builds a wp:inline with an embedded picture payload. The
// outer extent and the duplicated shape-property extent are set
// separately so tests can create disagreeing trees.
func pictureInline(cx, cy, spCx, spCy int) string {
	return fmt.Sprintf(`<wp:inline>
  <wp:extent cx="%d" cy="%d"/>
  <a:graphic>
    <a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">
      <pic:pic>
        <pic:blipFill>
          <a:blip r:embed="rId4"/>
        </pic:blipFill>
        <pic:spPr>
          <a:xfrm>
            <a:off x="0" y="0"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
        </pic:spPr>
      </pic:pic>
    </a:graphicData>
  </a:graphic>
</wp:inline>`, cx, cy, spCx, spCy)
}

// linkedPictureInline builds a picture whose blip references an external
// image through r:link instead of an embedded part.
func linkedPictureInline(cx, cy int) string {
	return fmt.Sprintf(`<wp:inline>
  <wp:extent cx="%d" cy="%d"/>
  <a:graphic>
    <a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">
      <pic:pic>
        <pic:blipFill>
          <a:blip r:link="rId9"/>
        </pic:blipFill>
        <pic:spPr>
          <a:xfrm>
            <a:off x="0" y="0"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
        </pic:spPr>
      </pic:pic>
    </a:graphicData>
  </a:graphic>
</wp:inline>`, cx, cy, cx, cy)
}

func chartInline(cx, cy int) string {
	return fmt.Sprintf(`<wp:inline><wp:extent cx="%d" cy="%d"/><a:graphic>`+
		`<a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/chart">`+
		`<c:chart r:id="rId7"/></a:graphicData></a:graphic></wp:inline>`, cx, cy)
}

func smartArtInline(cx, cy int) string {
	return fmt.Sprintf(`<wp:inline><wp:extent cx="%d" cy="%d"/><a:graphic>`+
		`<a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/diagram">`+
		`<dgm:relIds/></a:graphicData></a:graphic></wp:inline>`, cx, cy)
}

func unknownInline(cx, cy int) string {
	return fmt.Sprintf(`<wp:inline><wp:extent cx="%d" cy="%d"/><a:graphic>`+
		`<a:graphicData uri="http://example.com/not-a-known-payload"/>`+
		`</a:graphic></wp:inline>`, cx, cy)
}

func textboxParagraph(style string) string {
	return `<w:p><w:r><w:pict>` +
		`<v:shape id="_x0000_s1026" type="#_x0000_t202" style="` + style + `">` +
		`<v:textbox><w:txbxContent><w:p/></w:txbxContent></v:textbox>` +
		`</v:shape></w:pict></w:r></w:p>`
}
