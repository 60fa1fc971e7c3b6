package ioutils

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestArchiveStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/data/gshhg-shp-2.3.7.zip", "/data/gshhg-shp-2.3.7"},
		{"tiles.zip", "tiles"},
		{"/data/noext", "/data/noext"},
	}

	for _, tt := range tests {
		if got := ArchiveStem(tt.path); got != tt.want {
			t.Errorf("ArchiveStem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestIsArchive(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"gshhg-shp-2.3.7.zip", true},
		{"SHAPES.ZIP", true},
		{"elevation.tif", false},
		{"world.png", false},
	}

	for _, tt := range tests {
		if got := IsArchive(tt.name); got != tt.want {
			t.Errorf("IsArchive(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestExtractZip(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "shapes.zip")
	writeZip(t, archive, map[string]string{
		"shapes/land.shp":  "shp bytes",
		"shapes/land.dbf":  "dbf bytes",
		"shapes/README.md": "docs",
	})

	dest := ArchiveStem(archive)
	if err := ExtractZip(archive, dest); err != nil {
		t.Fatalf("ExtractZip: %v", err)
	}

	for _, name := range []string{"shapes/land.shp", "shapes/land.dbf", "shapes/README.md"} {
		if _, err := os.Stat(filepath.Join(dest, name)); err != nil {
			t.Errorf("extracted entry %s missing: %v", name, err)
		}
	}

	content, err := os.ReadFile(filepath.Join(dest, "shapes", "land.shp"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "shp bytes" {
		t.Errorf("entry content = %q, want %q", content, "shp bytes")
	}
}

func TestExtractZip_Corrupt(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "broken.zip")
	if err := os.WriteFile(archive, []byte("definitely not a zip"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ExtractZip(archive, filepath.Join(dir, "broken")); err == nil {
		t.Error("ExtractZip succeeded on a corrupt archive")
	}
}

func TestExtractZip_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "evil.zip")
	writeZip(t, archive, map[string]string{
		"../escape.txt": "outside",
	})

	if err := ExtractZip(archive, filepath.Join(dir, "evil")); err == nil {
		t.Error("ExtractZip accepted an entry escaping the destination")
	}
}
