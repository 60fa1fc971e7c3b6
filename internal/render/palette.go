package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Colormap is a continuous color ramp sampled by a fraction in [0,1].
type Colormap interface {
	Sample(t float64) color.RGBA
}

// rampStop is one control point of a piecewise-linear colormap.
type rampStop struct {
	t float64
	c colorful.Color
}

// ramp is a perceptual colormap defined by blending between control points.
type ramp []rampStop

// Terrain returns the base colormap used for elevation rendering: deep-sea
// blues through shallow cyan, coastal green, plains yellow, mountain brown,
// and snow white.
func Terrain() Colormap {
	return ramp{
		{0.00, colorful.Color{R: 0.2, G: 0.2, B: 0.6}},
		{0.15, colorful.Color{R: 0.0, G: 0.6, B: 1.0}},
		{0.25, colorful.Color{R: 0.0, G: 0.8, B: 0.4}},
		{0.50, colorful.Color{R: 1.0, G: 1.0, B: 0.6}},
		{0.75, colorful.Color{R: 0.5, G: 0.36, B: 0.33}},
		{1.00, colorful.Color{R: 1.0, G: 1.0, B: 1.0}},
	}
}

// Sample blends linearly between the two stops bracketing t.
func (r ramp) Sample(t float64) color.RGBA {
	if t <= r[0].t {
		return toRGBA(r[0].c)
	}
	last := r[len(r)-1]
	if t >= last.t {
		return toRGBA(last.c)
	}
	for i := 1; i < len(r); i++ {
		if t <= r[i].t {
			span := r[i].t - r[i-1].t
			frac := (t - r[i-1].t) / span
			return toRGBA(r[i-1].c.BlendRgb(r[i].c, frac))
		}
	}
	return toRGBA(last.c)
}

func toRGBA(c colorful.Color) color.RGBA {
	cl := c.Clamped()
	return color.RGBA{
		R: uint8(cl.R*255 + 0.5),
		G: uint8(cl.G*255 + 0.5),
		B: uint8(cl.B*255 + 0.5),
		A: 255,
	}
}

// PaletteSpec configures how a Palette is assembled from a base colormap:
// UnderseaSamples colors taken from [0, UnderseaMax] and LandSamples colors
// from [LandMin, 1], concatenated.
type PaletteSpec struct {
	UnderseaSamples int
	UnderseaMax     float64
	LandSamples     int
	LandMin         float64
}

// DefaultPaletteSpec matches the proportions used for global bathymetry:
// a short undersea ramp and a long land ramp, leaving a gap between them
// so the coastline reads as a hard edge.
func DefaultPaletteSpec() PaletteSpec {
	return PaletteSpec{
		UnderseaSamples: 56,
		UnderseaMax:     0.17,
		LandSamples:     200,
		LandMin:         0.25,
	}
}

// Palette is a fixed color lookup table assembled once per session.
type Palette struct {
	colors []color.RGBA
}

// NewPalette samples base densely over the spec's undersea sub-range, then
// over its land sub-range, and concatenates the two into one lookup table.
func NewPalette(base Colormap, spec PaletteSpec) *Palette {
	colors := make([]color.RGBA, 0, spec.UnderseaSamples+spec.LandSamples)
	for i := 0; i < spec.UnderseaSamples; i++ {
		t := spec.UnderseaMax * float64(i) / float64(spec.UnderseaSamples-1)
		colors = append(colors, base.Sample(t))
	}
	for i := 0; i < spec.LandSamples; i++ {
		t := spec.LandMin + (1-spec.LandMin)*float64(i)/float64(spec.LandSamples-1)
		colors = append(colors, base.Sample(t))
	}
	return &Palette{colors: colors}
}

// Len returns the number of entries in the lookup table.
func (p *Palette) Len() int {
	return len(p.colors)
}

// At returns the palette entry for a color-lookup fraction in [0,1].
// Fractions outside [0,1] clamp to the first or last entry.
func (p *Palette) At(t float64) color.RGBA {
	i := int(t * float64(len(p.colors)-1))
	if i < 0 {
		i = 0
	}
	if i > len(p.colors)-1 {
		i = len(p.colors) - 1
	}
	return p.colors[i]
}
