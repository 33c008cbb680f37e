package caliper

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// PackageReader handles reading and parsing DOCX packages
type PackageReader struct {
	reader *zip.Reader
	Parts  map[string]*zip.File
}

// Relationship represents a relationship in the DOCX package
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// Relationships represents the collection of relationships
type Relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Namespace    string         `xml:"xmlns,attr"`
	Relationship []Relationship `xml:"Relationship"`
}

// ContentTypes represents the [Content_Types].xml part
type ContentTypes struct {
	XMLName   xml.Name              `xml:"Types"`
	Namespace string                `xml:"xmlns,attr"`
	Defaults  []ContentTypeDefault  `xml:"Default"`
	Overrides []ContentTypeOverride `xml:"Override"`
}

// ContentTypeDefault maps a part extension to a content type
type ContentTypeDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypeOverride maps a single part name to a content type
type ContentTypeOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// NewPackageReader creates a new DOCX package reader
func NewPackageReader(r io.ReaderAt, size int64) (*PackageReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	pr := &PackageReader{
		reader: zipReader,
		Parts:  make(map[string]*zip.File),
	}

	// Index all parts by name
	for _, file := range zipReader.File {
		pr.Parts[file.Name] = file
	}

	// Check if this is a valid DOCX file by looking for required parts
	if _, ok := pr.Parts["word/document.xml"]; !ok {
		return nil, fmt.Errorf("not a valid DOCX file: missing word/document.xml")
	}

	return pr, nil
}

// GetPart retrieves the content of a specific part
func (pr *PackageReader) GetPart(partName string) ([]byte, error) {
	file, ok := pr.Parts[partName]
	if !ok {
		return nil, fmt.Errorf("part %s not found", partName)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %s: %w", partName, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read part %s: %w", partName, err)
	}

	return content, nil
}

// HasPart reports whether the package contains the named part
func (pr *PackageReader) HasPart(partName string) bool {
	_, ok := pr.Parts[partName]
	return ok
}

// ListParts returns a list of all part names in the DOCX
func (pr *PackageReader) ListParts() []string {
	parts := make([]string, 0, len(pr.Parts))
	for name := range pr.Parts {
		parts = append(parts, name)
	}
	return parts
}

// GetRelationships retrieves relationships for a given part
func (pr *PackageReader) GetRelationships(partName string) ([]Relationship, error) {
	// Convert part name to its relationships file name
	// e.g., "word/document.xml" -> "word/_rels/document.xml.rels"
	dir := ""
	base := partName
	if idx := strings.LastIndex(partName, "/"); idx != -1 {
		dir = partName[:idx]
		base = partName[idx+1:]
	}

	relPath := fmt.Sprintf("%s/_rels/%s.rels", dir, base)
	if dir == "" {
		relPath = fmt.Sprintf("_rels/%s.rels", base)
	}

	file, ok := pr.Parts[relPath]
	if !ok {
		// Missing relationships file is not an error, just return empty
		return []Relationship{}, nil
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open relationships file: %w", err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read relationships file: %w", err)
	}

	var rels Relationships
	if err := xml.Unmarshal(content, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships: %w", err)
	}

	return rels.Relationship, nil
}

// GetContentTypes retrieves and parses the [Content_Types].xml part
func (pr *PackageReader) GetContentTypes() (*ContentTypes, error) {
	content, err := pr.GetPart("[Content_Types].xml")
	if err != nil {
		return nil, err
	}

	ct := &ContentTypes{}
	if err := xml.Unmarshal(content, ct); err != nil {
		return nil, fmt.Errorf("failed to parse [Content_Types].xml: %w", err)
	}

	return ct, nil
}

// PackageReaderFromFile creates a PackageReader from a file path
func PackageReaderFromFile(path string) (*PackageReader, error) {
	// Read the entire file into memory
	// In a production system, we might want to use os.Open and os.Stat
	// for better memory efficiency with large files
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	reader := bytes.NewReader(content)
	return NewPackageReader(reader, int64(len(content)))
}
