package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/floodline/searise/internal/raster"
)

// collectEncoder records a probe pixel from every frame it receives.
type collectEncoder struct {
	probe  image.Point
	colors []color.RGBA
}

func (e *collectEncoder) WriteFrame(img image.Image) error {
	r, g, b, a := img.At(e.probe.X, e.probe.Y).RGBA()
	e.colors = append(e.colors, color.RGBA{
		R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8),
	})
	return nil
}

func (e *collectEncoder) Close() error { return nil }

func testGrid() *raster.Grid {
	return raster.NewGrid(2, 3, []float64{
		-100, -50, 0,
		10, 50, 100,
	})
}

func testSession(t *testing.T) *Session {
	t.Helper()
	opts := DefaultSessionOptions()
	opts.TargetHeightPx = 64
	s, err := NewSession(testGrid(), NewPalette(Terrain(), DefaultPaletteSpec()), opts)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestSession_FrameAnchorsSeaLevel(t *testing.T) {
	s := testSession(t)
	palette := NewPalette(Terrain(), DefaultPaletteSpec())

	// The bottom-left cell's elevation is 10. With the pivot at 10 that
	// cell must be painted with the anchored sea-level palette entry.
	frame := s.Frame(10, "10m")
	got := frame.RGBAAt(0, 63)
	want := palette.At(0.21875)
	if got != want {
		t.Errorf("sea-level cell = %v, want anchored %v", got, want)
	}
}

func TestSession_FrameShiftsColorsNotData(t *testing.T) {
	s := testSession(t)

	// Probe a mid-elevation cell: raising the sea must change its color.
	lowTide := s.Frame(0, "0m").RGBAAt(s.panelRect.Dx()/2, 63)
	highTide := s.Frame(90, "90m").RGBAAt(s.panelRect.Dx()/2, 63)
	if lowTide == highTide {
		t.Error("mid-elevation cell color unchanged across a 90m offset shift")
	}

	// The grid itself is untouched.
	if s.grid.At(1, 1) != 50 {
		t.Errorf("grid mutated: At(1,1) = %v, want 50", s.grid.At(1, 1))
	}
}

func TestSession_RenderFrameSequence(t *testing.T) {
	s := testSession(t)
	sweep := Sweep{Start: 0, Stop: 20, Step: 5, Digits: 0, FPS: 24}

	enc := &collectEncoder{probe: image.Point{X: s.panelRect.Dx() / 2, Y: 63}}
	var frames []int
	err := s.Render(sweep, enc, func(frame, total int) {
		frames = append(frames, frame)
		if total != sweep.Count() {
			t.Errorf("onFrame total = %d, want %d", total, sweep.Count())
		}
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(enc.colors) != sweep.Count() {
		t.Fatalf("encoder received %d frames, want %d", len(enc.colors), sweep.Count())
	}
	for i, f := range frames {
		if f != i+1 {
			t.Fatalf("frames reported out of order: %v", frames)
		}
	}
}

func TestNewSession_RejectsDegenerateGrids(t *testing.T) {
	palette := NewPalette(Terrain(), DefaultPaletteSpec())
	opts := DefaultSessionOptions()
	opts.TargetHeightPx = 64

	flat := raster.NewGrid(2, 2, []float64{7, 7, 7, 7})
	if _, err := NewSession(flat, palette, opts); err == nil {
		t.Error("NewSession accepted a flat grid")
	}
}
