package render

import "testing"

func TestSweep_Count(t *testing.T) {
	tests := []struct {
		name  string
		sweep Sweep
		want  int
	}{
		{"fine near-term", Sweep{Start: 0, Stop: 101.1, Step: 0.1}, 1011},
		{"coarse long-range", Sweep{Start: 0, Stop: 6021, Step: 4}, 1506},
		{"exact division", Sweep{Start: 0, Stop: 10, Step: 2}, 5},
		{"single value", Sweep{Start: 0, Stop: 1, Step: 2}, 1},
		{"empty", Sweep{Start: 5, Stop: 5, Step: 1}, 0},
		{"zero step", Sweep{Start: 0, Stop: 10, Step: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sweep.Count(); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSweep_Values(t *testing.T) {
	s := Sweep{Start: 0, Stop: 101.1, Step: 0.1}

	next := s.Values()
	var count int
	prev := -1.0
	for {
		v, ok := next()
		if !ok {
			break
		}
		if v <= prev {
			t.Fatalf("value %v at index %d not strictly increasing from %v", v, count, prev)
		}
		if v >= 101.1 {
			t.Fatalf("value %v at index %d reached stop", v, count)
		}
		prev = v
		count++
	}

	if count != s.Count() {
		t.Errorf("iterator produced %d values, Count() = %d", count, s.Count())
	}
}

func TestSweep_ValuesRestartable(t *testing.T) {
	s := Sweep{Start: 2, Stop: 5, Step: 1}

	first := s.Values()
	if v, ok := first(); !ok || v != 2 {
		t.Fatalf("first() = %v, %v, want 2, true", v, ok)
	}
	if v, ok := first(); !ok || v != 3 {
		t.Fatalf("first() = %v, %v, want 3, true", v, ok)
	}

	// A fresh iterator restarts from the beginning.
	second := s.Values()
	if v, ok := second(); !ok || v != 2 {
		t.Fatalf("second() = %v, %v, want 2, true", v, ok)
	}
}

func TestSweep_Label(t *testing.T) {
	tests := []struct {
		sweep  Sweep
		offset float64
		want   string
	}{
		{Sweep{Digits: 0}, 24, "24m"},
		{Sweep{Digits: 0}, 24.4, "24m"},
		{Sweep{Digits: 1}, 24, "24.0m"},
		{Sweep{Digits: 1}, 3.27, "3.3m"},
	}

	for _, tt := range tests {
		if got := tt.sweep.Label(tt.offset, "m"); got != tt.want {
			t.Errorf("Label(%v) with %d digits = %q, want %q", tt.offset, tt.sweep.Digits, got, tt.want)
		}
	}
}

func TestSweep_Name(t *testing.T) {
	tests := []struct {
		sweep Sweep
		want  string
	}{
		{Sweep{Start: 0, Stop: 101.1, Step: 0.1, FPS: 60}, "0_101.1_0.1_60"},
		{Sweep{Start: 0, Stop: 6021, Step: 4, FPS: 24}, "0_6021_4_24"},
	}

	for _, tt := range tests {
		if got := tt.sweep.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}
