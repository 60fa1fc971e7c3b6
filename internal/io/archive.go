package ioutils

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ArchiveStem returns the extraction directory for an archive path:
// the path with its final extension stripped ("a/b.zip" -> "a/b").
func ArchiveStem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// IsArchive reports whether a filename names a compressed archive the
// fetcher should expand in place.
func IsArchive(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".zip")
}

// ExtractZip expands every entry of the archive at path into destDir,
// creating it if needed. Entry paths are confined to destDir; an entry
// that would escape it fails the extraction.
func ExtractZip(path, destDir string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("open archive %s: %w", filepath.Base(path), err)
	}
	defer r.Close()

	if _, err := EnsureDir(destDir); err != nil {
		return err
	}

	for _, f := range r.File {
		if err := extractEntry(f, destDir); err != nil {
			return fmt.Errorf("extract %s from %s: %w", f.Name, filepath.Base(path), err)
		}
	}
	return nil
}

func extractEntry(f *zip.File, destDir string) error {
	dest := filepath.Join(destDir, f.Name)
	if !strings.HasPrefix(dest, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("entry path escapes destination")
	}

	if f.FileInfo().IsDir() {
		_, err := EnsureDir(dest)
		return err
	}

	if _, err := EnsureDir(filepath.Dir(dest)); err != nil {
		return err
	}

	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
