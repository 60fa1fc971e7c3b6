// Package raster loads elevation rasters and resamples them into
// in-memory grids suitable for rendering.
//
// A raster on disk is consumed through the Source interface: a dense 2-D
// grid of elevation samples in meters, row 0 at the top. Two sources are
// provided: TIFF images (grayscale GeoTIFF exports) and flat row-major
// little-endian int16 grids (the NOAA GLOBE / ETOPO binary tile layout).
//
// Resample decimates a Source into a Grid at a target factor using
// block-mean (area) averaging, which cannot invent values outside the
// input range the way point sampling can.
package raster

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

// Source is a full-resolution elevation raster.
type Source interface {
	// Dims returns the grid dimensions.
	Dims() (rows, cols int)

	// Sample returns the elevation at a grid cell, in meters.
	Sample(row, col int) float64
}

// Open loads the raster at path, picking a decoder by file extension.
// rows and cols describe the grid shape for headerless flat binary files;
// they are ignored for self-describing formats.
func Open(path string, rows, cols int) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		return OpenTIFF(path)
	default:
		return OpenInt16(path, rows, cols)
	}
}

// TIFFSource reads elevation from a grayscale TIFF image. Gray and Gray16
// pixels are used directly; other pixel formats collapse to luminance, so
// a three-band image degrades to a single elevation band.
type TIFFSource struct {
	img  image.Image
	gray *image.Gray
	g16  *image.Gray16
}

// OpenTIFF decodes a TIFF raster from disk.
func OpenTIFF(path string) (*TIFFSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raster: %w", err)
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	s := &TIFFSource{img: img}
	switch t := img.(type) {
	case *image.Gray:
		s.gray = t
	case *image.Gray16:
		s.g16 = t
	}
	return s, nil
}

// Dims returns the image dimensions.
func (s *TIFFSource) Dims() (rows, cols int) {
	b := s.img.Bounds()
	return b.Dy(), b.Dx()
}

// Sample returns the elevation at a pixel.
func (s *TIFFSource) Sample(row, col int) float64 {
	b := s.img.Bounds()
	x, y := b.Min.X+col, b.Min.Y+row
	switch {
	case s.gray != nil:
		return float64(s.gray.GrayAt(x, y).Y)
	case s.g16 != nil:
		return float64(s.g16.Gray16At(x, y).Y)
	default:
		c := color.Gray16Model.Convert(s.img.At(x, y)).(color.Gray16)
		return float64(c.Y)
	}
}

// Int16Source reads a flat row-major grid of little-endian signed 16-bit
// elevation samples, the layout NOAA distributes GLOBE/ETOPO binary tiles
// in. The file carries no header, so the caller supplies the shape.
type Int16Source struct {
	data []byte
	rows int
	cols int
}

// OpenInt16 reads a headerless int16 grid of the given shape.
func OpenInt16(path string, rows, cols int) (*Int16Source, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("open raster: shape %dx%d not valid for headerless %s", rows, cols, filepath.Base(path))
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open raster: %w", err)
	}
	if len(buf) != 2*rows*cols {
		return nil, fmt.Errorf("read %s: want %d bytes for %dx%d grid, got %d",
			filepath.Base(path), 2*rows*cols, rows, cols, len(buf))
	}
	return &Int16Source{data: buf, rows: rows, cols: cols}, nil
}

// Dims returns the grid shape the source was opened with.
func (s *Int16Source) Dims() (rows, cols int) {
	return s.rows, s.cols
}

// Sample returns the elevation at a grid cell.
func (s *Int16Source) Sample(row, col int) float64 {
	off := 2 * (row*s.cols + col)
	return float64(int16(binary.LittleEndian.Uint16(s.data[off:])))
}
