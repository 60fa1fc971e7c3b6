package render

import (
	"math"
	"testing"
)

func TestColorModel_ControlPoints(t *testing.T) {
	m := NewColorModel(-5000, 3000, 0, 0.21875)

	if got := m.Normalize(-5000); got != 0 {
		t.Errorf("Normalize(domainMin) = %v, want 0", got)
	}
	if got := m.Normalize(0); got != 0.21875 {
		t.Errorf("Normalize(pivot) = %v, want 0.21875", got)
	}
	if got := m.Normalize(3000); got != 1 {
		t.Errorf("Normalize(domainMax) = %v, want 1", got)
	}
}

func TestColorModel_Monotonic(t *testing.T) {
	m := NewColorModel(-5000, 3000, -1200, 0.21875)

	prev := math.Inf(-1)
	for v := -5000.0; v <= 3000; v += 50 {
		got := m.Normalize(v)
		if got < prev {
			t.Fatalf("Normalize(%v) = %v, below previous %v", v, got, prev)
		}
		if got < 0 || got > 1 || math.IsNaN(got) {
			t.Fatalf("Normalize(%v) = %v, outside [0,1]", v, got)
		}
		prev = got
	}
}

func TestColorModel_Clamping(t *testing.T) {
	m := NewColorModel(-100, 100, 10, 0.25)

	tests := []struct {
		value float64
		want  float64
	}{
		{-1e9, 0},
		{-100.0001, 0},
		{100.0001, 1},
		{1e9, 1},
	}

	for _, tt := range tests {
		if got := m.Normalize(tt.value); got != tt.want {
			t.Errorf("Normalize(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestColorModel_PivotShiftKeepsAnchor(t *testing.T) {
	// The whole point of the model: no matter how far the pivot moves,
	// the pivot value itself always lands at the same palette fraction.
	for _, pivot := range []float64{-4000, -100, 0, 24, 2999} {
		m := NewColorModel(-5000, 3000, pivot, 0.21875)
		if got := m.Normalize(pivot); math.Abs(got-0.21875) > 1e-12 {
			t.Errorf("pivot %v: Normalize(pivot) = %v, want 0.21875", pivot, got)
		}
	}
}

func TestNewColorModel_ClampsPivotIntoDomain(t *testing.T) {
	m := NewColorModel(0, 100, 6000, 0.21875)
	if m.Pivot != 100 {
		t.Errorf("Pivot = %v, want clamped to 100", m.Pivot)
	}

	m = NewColorModel(0, 100, -50, 0.21875)
	if m.Pivot != 0 {
		t.Errorf("Pivot = %v, want clamped to 0", m.Pivot)
	}

	// Degenerate models still stay inside [0,1].
	for _, v := range []float64{-10, 0, 50, 100, 110} {
		got := m.Normalize(v)
		if got < 0 || got > 1 || math.IsNaN(got) {
			t.Errorf("degenerate Normalize(%v) = %v, outside [0,1]", v, got)
		}
	}
}
