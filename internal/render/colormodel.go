package render

// ColorModel maps raw elevation values to a [0,1] color-lookup coordinate.
//
// The mapping is a two-segment piecewise-linear interpolation through the
// control points (DomainMin, 0), (Pivot, PivotFraction), (DomainMax, 1).
// Values outside the domain clamp to the nearest endpoint fraction. Because
// the pivot always maps to the same fraction, the color drawn at "sea level"
// stays anchored to the same palette entry no matter how far the pivot has
// been shifted.
//
// A ColorModel is immutable; build a new one per frame with the shifted
// pivot rather than mutating an existing one.
type ColorModel struct {
	DomainMin     float64
	DomainMax     float64
	Pivot         float64
	PivotFraction float64
}

// NewColorModel builds a ColorModel over [domainMin, domainMax] with the
// given pivot. A pivot outside the domain is clamped onto it, so sweeping
// the pivot past the data range degenerates gracefully to an all-land or
// all-undersea mapping instead of producing a non-monotonic curve.
func NewColorModel(domainMin, domainMax, pivot, pivotFraction float64) ColorModel {
	if pivot < domainMin {
		pivot = domainMin
	}
	if pivot > domainMax {
		pivot = domainMax
	}
	return ColorModel{
		DomainMin:     domainMin,
		DomainMax:     domainMax,
		Pivot:         pivot,
		PivotFraction: pivotFraction,
	}
}

// Normalize maps an elevation value to its color-lookup fraction in [0,1].
func (m ColorModel) Normalize(v float64) float64 {
	if v <= m.DomainMin {
		return 0
	}
	if v >= m.DomainMax {
		return 1
	}
	if v <= m.Pivot {
		if m.Pivot == m.DomainMin {
			return m.PivotFraction
		}
		return m.PivotFraction * (v - m.DomainMin) / (m.Pivot - m.DomainMin)
	}
	if m.Pivot == m.DomainMax {
		return m.PivotFraction
	}
	return m.PivotFraction + (1-m.PivotFraction)*(v-m.Pivot)/(m.DomainMax-m.Pivot)
}
