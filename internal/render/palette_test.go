package render

import "testing"

func TestPalette_Length(t *testing.T) {
	spec := DefaultPaletteSpec()
	p := NewPalette(Terrain(), spec)

	want := spec.UnderseaSamples + spec.LandSamples
	if p.Len() != want {
		t.Errorf("Len() = %d, want %d", p.Len(), want)
	}
}

func TestPalette_Endpoints(t *testing.T) {
	spec := DefaultPaletteSpec()
	base := Terrain()
	p := NewPalette(base, spec)

	if got, want := p.At(0), base.Sample(0); got != want {
		t.Errorf("At(0) = %v, want first undersea sample %v", got, want)
	}
	if got, want := p.At(1), base.Sample(1); got != want {
		t.Errorf("At(1) = %v, want last land sample %v", got, want)
	}
}

func TestPalette_AtClamps(t *testing.T) {
	p := NewPalette(Terrain(), DefaultPaletteSpec())

	if got := p.At(-0.5); got != p.At(0) {
		t.Errorf("At(-0.5) = %v, want %v", got, p.At(0))
	}
	if got := p.At(1.5); got != p.At(1) {
		t.Errorf("At(1.5) = %v, want %v", got, p.At(1))
	}
}

func TestTerrain_SampleClamps(t *testing.T) {
	base := Terrain()

	if got := base.Sample(-1); got != base.Sample(0) {
		t.Errorf("Sample(-1) = %v, want %v", got, base.Sample(0))
	}
	if got := base.Sample(2); got != base.Sample(1) {
		t.Errorf("Sample(2) = %v, want %v", got, base.Sample(1))
	}

	// Stops are reproduced exactly.
	deep := base.Sample(0)
	if deep.B <= deep.R {
		t.Errorf("deep-sea sample %v should be blue-dominant", deep)
	}
	snow := base.Sample(1)
	if snow.R != 255 || snow.G != 255 || snow.B != 255 {
		t.Errorf("Sample(1) = %v, want white", snow)
	}
}
