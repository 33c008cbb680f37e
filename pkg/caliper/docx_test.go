package caliper

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPackageReaderRead(t *testing.T) {
	tests := []struct {
		name    string
		setup   func() []byte
		wantErr bool
		check   func(t *testing.T, pr *PackageReader)
	}{
		{
			name: "valid package",
			setup: func() []byte {
				return buildDOCXBytes("<w:p/>")
			},
			check: func(t *testing.T, pr *PackageReader) {
				if !pr.HasPart("word/document.xml") {
					t.Error("HasPart(word/document.xml) = false")
				}
				if pr.HasPart("word/nonexistent.xml") {
					t.Error("HasPart reported a part that does not exist")
				}
				if got := len(pr.ListParts()); got != 4 {
					t.Errorf("ListParts() returned %d parts, want 4", got)
				}
			},
		},
		{
			name: "zip without document part",
			setup: func() []byte {
				var buf bytes.Buffer
				w := zip.NewWriter(&buf)
				f, _ := w.Create("word/styles.xml")
				f.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><styles/>`))
				w.Close()
				return buf.Bytes()
			},
			wantErr: true,
		},
		{
			name: "empty zip",
			setup: func() []byte {
				var buf bytes.Buffer
				w := zip.NewWriter(&buf)
				w.Close()
				return buf.Bytes()
			},
			wantErr: true,
		},
		{
			name: "not a zip file",
			setup: func() []byte {
				return []byte("not a zip file")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := tt.setup()
			pr, err := NewPackageReader(bytes.NewReader(content), int64(len(content)))
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPackageReader() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && tt.check != nil {
				tt.check(t, pr)
			}
		})
	}
}

func TestPackageReaderGetPart(t *testing.T) {
	content := buildDOCXBytes("<w:p/>")
	pr, err := NewPackageReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("NewPackageReader() error = %v", err)
	}

	part, err := pr.GetPart("word/document.xml")
	if err != nil {
		t.Fatalf("GetPart() error = %v", err)
	}
	if !strings.Contains(string(part), "<w:body>") {
		t.Errorf("document part does not contain body markup: %s", part)
	}

	if _, err := pr.GetPart("word/missing.xml"); err == nil {
		t.Error("GetPart() on a missing part succeeded, want error")
	}
}

func TestPackageReaderGetRelationships(t *testing.T) {
	content := buildDOCXBytes("<w:p/>")
	pr, err := NewPackageReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("NewPackageReader() error = %v", err)
	}

	rels, err := pr.GetRelationships("word/document.xml")
	if err != nil {
		t.Fatalf("GetRelationships() error = %v", err)
	}

	want := []Relationship{
		{
			ID:     "rId4",
			Type:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image",
			Target: "media/image1.png",
		},
		{
			ID:         "rId9",
			Type:       "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image",
			Target:     "http://example.com/logo.png",
			TargetMode: "External",
		},
	}
	if diff := cmp.Diff(want, rels); diff != "" {
		t.Errorf("relationships mismatch (-want +got):\n%s", diff)
	}

	// A part without a relationships file yields an empty list, not an error
	rels, err = pr.GetRelationships("word/settings.xml")
	if err != nil {
		t.Fatalf("GetRelationships() on rel-less part error = %v", err)
	}
	if len(rels) != 0 {
		t.Errorf("GetRelationships() on rel-less part returned %d entries, want 0", len(rels))
	}
}

func TestPackageReaderGetContentTypes(t *testing.T) {
	content := buildDOCXBytes("<w:p/>")
	pr, err := NewPackageReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("NewPackageReader() error = %v", err)
	}

	ct, err := pr.GetContentTypes()
	if err != nil {
		t.Fatalf("GetContentTypes() error = %v", err)
	}

	if len(ct.Defaults) != 3 {
		t.Errorf("parsed %d defaults, want 3", len(ct.Defaults))
	}
	wantOverrides := []ContentTypeOverride{
		{
			PartName:    "/word/document.xml",
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml",
		},
	}
	if diff := cmp.Diff(wantOverrides, ct.Overrides); diff != "" {
		t.Errorf("overrides mismatch (-want +got):\n%s", diff)
	}
}
