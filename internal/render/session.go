package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/floodline/searise/internal/raster"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	legendBarWidth = 24
	legendWidth    = 110
	legendTicks    = 5
	margin         = 16
)

// SessionOptions configures a rendering session.
type SessionOptions struct {
	// PivotFraction is the palette fraction the sea-level pivot maps to.
	PivotFraction float64

	// TargetHeightPx is the output frame height in pixels.
	TargetHeightPx int

	// FigureHeightInches is the figure's physical height, used to derive
	// the output DPI.
	FigureHeightInches float64

	// LabelUnit is the suffix appended to the frame label ("m").
	LabelUnit string
}

// DefaultSessionOptions returns 1080-pixel-high frames with the standard
// sea-level palette anchor.
func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		PivotFraction:      0.21875,
		TargetHeightPx:     1080,
		FigureHeightInches: 4.8,
		LabelUnit:          "m",
	}
}

// Session owns all mutable drawing state for one animation: the canvas,
// the palette, the grid, and the current normalization. Frames share the
// canvas, so frame N+1 must not start until frame N has been consumed;
// rendering is strictly single-threaded.
type Session struct {
	grid    *raster.Grid
	palette *Palette
	opts    SessionOptions

	canvas     *image.RGBA
	cells      *image.RGBA // native decimated-resolution paint buffer
	panelRect  image.Rectangle
	legendRect image.Rectangle
}

// NewSession builds a session for the given grid. The main panel keeps the
// grid's aspect ratio at the target height; the legend column sits to its
// right.
func NewSession(grid *raster.Grid, palette *Palette, opts SessionOptions) (*Session, error) {
	rows, cols := grid.Dims()
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("render: empty grid")
	}
	if grid.Max() <= grid.Min() {
		return nil, fmt.Errorf("render: flat grid, elevation range [%v, %v]", grid.Min(), grid.Max())
	}

	h := opts.TargetHeightPx
	panelW := int(float64(h)*float64(cols)/float64(rows) + 0.5)

	s := &Session{
		grid:       grid,
		palette:    palette,
		opts:       opts,
		canvas:     image.NewRGBA(image.Rect(0, 0, panelW+legendWidth, h)),
		cells:      image.NewRGBA(image.Rect(0, 0, cols, rows)),
		panelRect:  image.Rect(0, 0, panelW, h),
		legendRect: image.Rect(panelW+margin, margin, panelW+margin+legendBarWidth, h-margin),
	}
	return s, nil
}

// Bounds returns the output frame dimensions.
func (s *Session) Bounds() image.Rectangle {
	return s.canvas.Bounds()
}

// DPI returns the output resolution implied by the target pixel height and
// the figure's physical height.
func (s *Session) DPI() float64 {
	return float64(s.opts.TargetHeightPx) / s.opts.FigureHeightInches
}

// Frame renders the frame for one sweep offset and returns the canvas.
// The returned image is owned by the session and valid only until the
// next Frame call.
//
// The grid data is never touched: only the normalization pivot moves, so
// shifting the offset visually raises the sea without rewriting elevations.
func (s *Session) Frame(offset float64, label string) *image.RGBA {
	model := NewColorModel(s.grid.Min(), s.grid.Max(), offset, s.opts.PivotFraction)

	s.paintCells(model)
	xdraw.NearestNeighbor.Scale(s.canvas, s.panelRect, s.cells, s.cells.Bounds(), xdraw.Src, nil)
	s.paintLegend(model, offset)
	s.drawLabel(label)

	return s.canvas
}

// paintCells maps every grid cell through the normalization and palette
// into the native-resolution buffer.
func (s *Session) paintCells(model ColorModel) {
	rows, cols := s.grid.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s.cells.SetRGBA(c, r, s.palette.At(model.Normalize(s.grid.At(r, c))))
		}
	}
}

// paintLegend draws the 1-D gradient bar and its tick labels. The bar is
// colored through the same palette and normalization as the panel; the
// tick values are shifted by the current offset so the legend scale spans
// [min+offset, max+offset] and moves with the sea level.
func (s *Session) paintLegend(model ColorModel, offset float64) {
	// Clear the legend column.
	col := image.Rect(s.panelRect.Max.X, 0, s.canvas.Bounds().Max.X, s.canvas.Bounds().Max.Y)
	for y := col.Min.Y; y < col.Max.Y; y++ {
		for x := col.Min.X; x < col.Max.X; x++ {
			s.canvas.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	lo, hi := s.grid.Min(), s.grid.Max()
	for y := s.legendRect.Min.Y; y < s.legendRect.Max.Y; y++ {
		t := float64(s.legendRect.Max.Y-1-y) / float64(s.legendRect.Dy()-1)
		c := s.palette.At(model.Normalize(lo + t*(hi-lo)))
		for x := s.legendRect.Min.X; x < s.legendRect.Max.X; x++ {
			s.canvas.SetRGBA(x, y, c)
		}
	}

	for i := 0; i < legendTicks; i++ {
		t := float64(i) / float64(legendTicks-1)
		y := s.legendRect.Max.Y - 1 - int(t*float64(s.legendRect.Dy()-1))
		v := lo + t*(hi-lo) + offset
		s.drawText(fmt.Sprintf("%.0f%s", v, s.opts.LabelUnit),
			s.legendRect.Max.X+4, y+basicfont.Face7x13.Ascent/2, color.RGBA{A: 255})
	}
}

// drawLabel paints the current-offset overlay in the panel's top-left.
func (s *Session) drawLabel(label string) {
	s.drawText(label, margin, margin+basicfont.Face7x13.Ascent, color.RGBA{A: 255})
}

func (s *Session) drawText(text string, x, y int, c color.RGBA) {
	d := font.Drawer{
		Dst:  s.canvas,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// Render drives one full sweep session: for each offset, in sweep order,
// it renders a frame and hands it to the encoder. The encoder is a pure
// sink; its first error aborts this session only. onFrame, when non-nil,
// is called after each frame with the frame index and total count.
func (s *Session) Render(sweep Sweep, enc Encoder, onFrame func(frame, total int)) error {
	total := sweep.Count()
	next := sweep.Values()
	for i := 0; ; i++ {
		offset, ok := next()
		if !ok {
			break
		}
		frame := s.Frame(offset, sweep.Label(offset, s.opts.LabelUnit))
		if err := enc.WriteFrame(frame); err != nil {
			return fmt.Errorf("encode frame %d: %w", i, err)
		}
		if onFrame != nil {
			onFrame(i+1, total)
		}
	}
	return nil
}
