package caliper

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"aqwari.net/xml/xmltree"
	"github.com/benjaminschreck/go-caliper/pkg/caliper/oxml"
)

const (
	documentPartName = "word/document.xml"
	settingsPartName = "word/settings.xml"
	documentRelsName = "word/_rels/document.xml.rels"
	contentTypesName = "[Content_Types].xml"

	settingsContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	settingsRelType     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	packageRelsNS       = "http://schemas.openxmlformats.org/package/2006/relationships"
	contentTypesNS      = "http://schemas.openxmlformats.org/package/2006/content-types"

	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`
)

// defaultSettingsXML seeds the settings part for packages that lack one.
const defaultSettingsXML = `<w:settings xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"></w:settings>`

// Document is an open DOCX document. It keeps the package reader for
// untouched parts and a parsed markup tree for word/document.xml; every
// proxy handed out by its accessors reads and writes that same tree.
//
// A Document is not safe for concurrent use.
type Document struct {
	pkg  *PackageReader
	path string

	root *xmltree.Element // word/document.xml
	body *xmltree.Element // w:body inside root

	settings        *Settings
	settingsCreated bool
}

// Open reads and parses the DOCX file at path.
func Open(path string) (*Document, error) {
	pkg, err := PackageReaderFromFile(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	return newDocument(pkg, path)
}

// OpenReader reads and parses a DOCX package from r.
func OpenReader(r io.ReaderAt, size int64) (*Document, error) {
	pkg, err := NewPackageReader(r, size)
	if err != nil {
		return nil, NewDocumentError("open", "", err)
	}
	return newDocument(pkg, "")
}

// OpenBytes reads and parses a DOCX package held in memory.
func OpenBytes(content []byte) (*Document, error) {
	return OpenReader(bytes.NewReader(content), int64(len(content)))
}

func newDocument(pkg *PackageReader, path string) (*Document, error) {
	content, err := pkg.GetPart(documentPartName)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}

	root, err := xmltree.Parse(content)
	if err != nil {
		return nil, NewDocumentError("parse", path, fmt.Errorf("failed to parse %s: %w", documentPartName, err))
	}

	body := oxml.Child(root, oxml.NSWordprocessingML, "body")
	if body == nil {
		return nil, NewDocumentError("parse", path, fmt.Errorf("%s has no w:body element", documentPartName))
	}

	Debug("opened document package with %d parts", len(pkg.Parts))

	return &Document{
		pkg:  pkg,
		path: path,
		root: root,
		body: body,
	}, nil
}

// Package returns the underlying package reader.
func (d *Document) Package() *PackageReader {
	return d.pkg
}

// Body returns the w:body element of the main document part.
func (d *Document) Body() *xmltree.Element {
	return d.body
}

// InlineShapes returns the inline shape collection of the main document
// part. The collection is a live view; it re-reads the tree on every call.
func (d *Document) InlineShapes() *InlineShapes {
	return NewInlineShapes(d.body, documentPartName)
}

// Textboxes returns the legacy textbox collection of the main document part.
func (d *Document) Textboxes() *Textboxes {
	return NewTextboxes(d.body, documentPartName)
}

// Settings returns the document settings proxy, parsing word/settings.xml
// on first access. Documents without a settings part get an empty one,
// which is written out on save.
func (d *Document) Settings() (*Settings, error) {
	if d.settings != nil {
		return d.settings, nil
	}

	if d.pkg.HasPart(settingsPartName) {
		content, err := d.pkg.GetPart(settingsPartName)
		if err != nil {
			return nil, NewDocumentError("settings", d.path, err)
		}
		root, err := xmltree.Parse(content)
		if err != nil {
			return nil, NewDocumentError("settings", d.path, fmt.Errorf("failed to parse %s: %w", settingsPartName, err))
		}
		d.settings = &Settings{root: root}
		return d.settings, nil
	}

	root, err := xmltree.Parse([]byte(defaultSettingsXML))
	if err != nil {
		return nil, NewDocumentError("settings", d.path, err)
	}
	d.settings = &Settings{root: root}
	d.settingsCreated = true
	Debug("materialized empty %s", settingsPartName)
	return d.settings, nil
}

// Save writes the document package to w. The main document part (and the
// settings part, once loaded) is re-marshaled from its markup tree; every
// other part is copied from the source package unchanged.
func (d *Document) Save(w io.Writer) error {
	config := GetGlobalConfig()

	docOut := marshalPart(d.root, config.IndentXML)
	var settingsOut []byte
	if d.settings != nil {
		settingsOut = marshalPart(d.settings.root, config.IndentXML)
	}

	Debug("saving document: %d parts, settings created=%v", len(d.pkg.Parts), d.settingsCreated)

	zw := zip.NewWriter(w)
	wroteSettings := false
	for _, file := range d.pkg.reader.File {
		switch {
		case file.Name == documentPartName:
			if err := writeZipPart(zw, file.Name, docOut); err != nil {
				return NewDocumentError("save", d.path, err)
			}

		case file.Name == settingsPartName && settingsOut != nil:
			if err := writeZipPart(zw, file.Name, settingsOut); err != nil {
				return NewDocumentError("save", d.path, err)
			}
			wroteSettings = true

		case file.Name == contentTypesName && d.settingsCreated:
			patched, err := patchContentTypes(file)
			if err != nil {
				return NewDocumentError("save", d.path, err)
			}
			if err := writeZipPart(zw, file.Name, patched); err != nil {
				return NewDocumentError("save", d.path, err)
			}

		case file.Name == documentRelsName && d.settingsCreated:
			patched, err := patchDocumentRels(file)
			if err != nil {
				return NewDocumentError("save", d.path, err)
			}
			if err := writeZipPart(zw, file.Name, patched); err != nil {
				return NewDocumentError("save", d.path, err)
			}

		default:
			// Copy other files as-is
			fw, err := zw.Create(file.Name)
			if err != nil {
				return NewDocumentError("save", d.path, fmt.Errorf("failed to create %s: %w", file.Name, err))
			}
			fr, err := file.Open()
			if err != nil {
				return NewDocumentError("save", d.path, fmt.Errorf("failed to open %s: %w", file.Name, err))
			}
			_, err = io.Copy(fw, fr)
			fr.Close()
			if err != nil {
				return NewDocumentError("save", d.path, fmt.Errorf("failed to copy %s: %w", file.Name, err))
			}
		}
	}

	// A materialized settings part has no source entry to replace
	if settingsOut != nil && !wroteSettings {
		if err := writeZipPart(zw, settingsPartName, settingsOut); err != nil {
			return NewDocumentError("save", d.path, err)
		}
	}
	if d.settingsCreated && !d.pkg.HasPart(documentRelsName) {
		rels := &Relationships{
			Namespace: packageRelsNS,
			Relationship: []Relationship{
				{ID: "rId1", Type: settingsRelType, Target: "settings.xml"},
			},
		}
		out, err := xml.Marshal(rels)
		if err != nil {
			return NewDocumentError("save", d.path, fmt.Errorf("failed to marshal relationships: %w", err))
		}
		if err := writeZipPart(zw, documentRelsName, append([]byte(xmlHeader+"\n"), out...)); err != nil {
			return NewDocumentError("save", d.path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return NewDocumentError("save", d.path, fmt.Errorf("failed to close zip writer: %w", err))
	}
	return nil
}

// SaveFile writes the document package to the file at path.
func (d *Document) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return NewDocumentError("save", path, err)
	}
	if err := d.Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return NewDocumentError("save", path, err)
	}
	return nil
}

// Bytes renders the document package to memory.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalPart(root *xmltree.Element, indent bool) []byte {
	var out []byte
	if indent {
		out = xmltree.MarshalIndent(root, "", "  ")
	} else {
		out = xmltree.Marshal(root)
	}
	return append([]byte(xmlHeader+"\n"), out...)
}

func writeZipPart(zw *zip.Writer, name string, content []byte) error {
	fw, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if _, err := fw.Write(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", file.Name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file.Name, err)
	}
	return content, nil
}

// patchContentTypes registers the settings content type in an existing
// [Content_Types].xml part.
func patchContentTypes(file *zip.File) ([]byte, error) {
	content, err := readZipFile(file)
	if err != nil {
		return nil, err
	}

	var parsed ContentTypes
	if err := xml.Unmarshal(content, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file.Name, err)
	}

	for _, o := range parsed.Overrides {
		if o.PartName == "/"+settingsPartName {
			return content, nil
		}
	}

	// Marshal a fresh struct; re-marshaling the parsed one would emit its
	// captured XMLName namespace on top of the xmlns attribute
	out, err := xml.Marshal(&ContentTypes{
		Namespace: contentTypesNS,
		Defaults:  parsed.Defaults,
		Overrides: append(parsed.Overrides, ContentTypeOverride{
			PartName:    "/" + settingsPartName,
			ContentType: settingsContentType,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", file.Name, err)
	}
	return append([]byte(xmlHeader+"\n"), out...), nil
}

// patchDocumentRels adds a settings relationship to an existing
// word/_rels/document.xml.rels part.
func patchDocumentRels(file *zip.File) ([]byte, error) {
	content, err := readZipFile(file)
	if err != nil {
		return nil, err
	}

	var parsed Relationships
	if err := xml.Unmarshal(content, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file.Name, err)
	}

	for _, rel := range parsed.Relationship {
		if rel.Type == settingsRelType {
			return content, nil
		}
	}

	nextID := 1
	for _, rel := range parsed.Relationship {
		if n, err := strconv.Atoi(strings.TrimPrefix(rel.ID, "rId")); err == nil && n >= nextID {
			nextID = n + 1
		}
	}

	out, err := xml.Marshal(&Relationships{
		Namespace: packageRelsNS,
		Relationship: append(parsed.Relationship, Relationship{
			ID:     fmt.Sprintf("rId%d", nextID),
			Type:   settingsRelType,
			Target: "settings.xml",
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", file.Name, err)
	}
	return append([]byte(xmlHeader+"\n"), out...), nil
}
