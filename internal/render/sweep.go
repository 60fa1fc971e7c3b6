package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sweep defines one animation session: an arithmetic progression of
// sea-level offsets from Start (inclusive) to Stop (exclusive) by Step,
// plus the label precision and frame rate for that session.
type Sweep struct {
	Start  float64
	Stop   float64
	Step   float64
	Digits int
	FPS    int
}

// Count returns the number of offsets the sweep produces,
// ceil((Stop-Start)/Step).
func (s Sweep) Count() int {
	if s.Step <= 0 || s.Stop <= s.Start {
		return 0
	}
	return int(math.Ceil((s.Stop - s.Start) / s.Step))
}

// Values returns a fresh iterator over the sweep's offsets. Each call to
// the returned function yields the next offset and true, or 0 and false
// once the progression reaches Stop. Calling Values again restarts the
// sequence. Offsets are computed as Start + i*Step rather than by repeated
// addition so float error does not accumulate across long sweeps.
func (s Sweep) Values() func() (float64, bool) {
	i := 0
	return func() (float64, bool) {
		v := s.Start + float64(i)*s.Step
		if s.Step <= 0 || v >= s.Stop {
			return 0, false
		}
		i++
		return v, true
	}
}

// Label formats an offset for the on-frame overlay at the sweep's decimal
// precision, with the given unit suffix ("24m", not "24.0m", at 0 digits).
func (s Sweep) Label(offset float64, unit string) string {
	return fmt.Sprintf("%.*f%s", s.Digits, offset, unit)
}

// Name returns the deterministic session name start_stop_step_fps used for
// the encoded output file. Float parameters keep their shortest decimal
// form (0.1 stays "0.1", 6021 stays "6021").
func (s Sweep) Name() string {
	parts := []string{
		strconv.FormatFloat(s.Start, 'f', -1, 64),
		strconv.FormatFloat(s.Stop, 'f', -1, 64),
		strconv.FormatFloat(s.Step, 'f', -1, 64),
		strconv.Itoa(s.FPS),
	}
	return strings.Join(parts, "_")
}
