package summarizer

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/audio-summary/internal/models"
)

func TestWriteDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.docx")
	meta := models.VideoMetadata{Title: "Test Clip", Uploader: "someone", Duration: 42}
	markdown := "# Summary\n\n- **Key** point\n1. Step one\n---\nPlain closing line"

	if err := WriteDocx(meta, markdown, path); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("output is not a zip package: %v", err)
	}
	defer zr.Close()

	var body string
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		body = string(data)
	}
	if body == "" {
		t.Fatal("word/document.xml missing")
	}

	for _, want := range []string{"Test Clip", "someone", "Summary", "Key", "Step one", "Plain closing line"} {
		if !strings.Contains(body, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if strings.Contains(body, "**") {
		t.Error("markdown bold markers leaked into document")
	}
}

func TestMetaLine(t *testing.T) {
	tests := []struct {
		meta models.VideoMetadata
		want string
	}{
		{models.VideoMetadata{}, ""},
		{models.VideoMetadata{Uploader: "u"}, "u"},
		{models.VideoMetadata{Uploader: "u", Duration: 59.6}, "u · 60s"},
	}
	for _, tt := range tests {
		if got := metaLine(tt.meta); got != tt.want {
			t.Errorf("metaLine(%+v) = %q, want %q", tt.meta, got, tt.want)
		}
	}
}
