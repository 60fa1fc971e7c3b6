package raster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Grid is a decimated elevation raster with cached extrema. It is immutable
// after resampling; rendering reads it but never writes.
type Grid struct {
	data *mat.Dense
	min  float64
	max  float64
}

// Dims returns the grid dimensions.
func (g *Grid) Dims() (rows, cols int) {
	return g.data.Dims()
}

// At returns the elevation at a grid cell.
func (g *Grid) At(row, col int) float64 {
	return g.data.At(row, col)
}

// Min returns the smallest elevation in the grid.
func (g *Grid) Min() float64 { return g.min }

// Max returns the largest elevation in the grid.
func (g *Grid) Max() float64 { return g.max }

// OutputDims returns the grid shape produced by resampling a rows x cols
// source at the given decimation factor.
func OutputDims(rows, cols int, factor float64) (outRows, outCols int) {
	return int(math.Round(float64(rows) * factor)), int(math.Round(float64(cols) * factor))
}

// Resample decimates src by the given factor in (0, 1], averaging each
// output cell over its source block. Averaging keeps every output value
// inside the source's value range, so the resampled extrema never escape
// or invert the input extrema.
func Resample(src Source, factor float64) (*Grid, error) {
	if factor <= 0 || factor > 1 {
		return nil, fmt.Errorf("resample: factor %v outside (0, 1]", factor)
	}

	rows, cols := src.Dims()
	outRows, outCols := OutputDims(rows, cols, factor)
	if outRows < 1 || outCols < 1 {
		return nil, fmt.Errorf("resample: factor %v collapses %dx%d grid", factor, rows, cols)
	}

	out := mat.NewDense(outRows, outCols, nil)
	min, max := math.Inf(1), math.Inf(-1)

	for i := 0; i < outRows; i++ {
		r0 := i * rows / outRows
		r1 := (i + 1) * rows / outRows
		if r1 == r0 {
			r1 = r0 + 1
		}
		for j := 0; j < outCols; j++ {
			c0 := j * cols / outCols
			c1 := (j + 1) * cols / outCols
			if c1 == c0 {
				c1 = c0 + 1
			}

			sum := 0.0
			for r := r0; r < r1; r++ {
				for c := c0; c < c1; c++ {
					sum += src.Sample(r, c)
				}
			}
			v := sum / float64((r1-r0)*(c1-c0))
			out.Set(i, j, v)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	return &Grid{data: out, min: min, max: max}, nil
}

// NewGrid builds a Grid directly from row-major values. It exists for
// fixtures and for callers that already hold decimated data.
func NewGrid(rows, cols int, values []float64) *Grid {
	d := mat.NewDense(rows, cols, values)
	min := mat.Min(d)
	max := mat.Max(d)
	return &Grid{data: d, min: min, max: max}
}
