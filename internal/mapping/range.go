package mapping

import (
	"fmt"
	"math"
)

// Range is a closed interval [Lower, Upper].
type Range struct {
	Lower float64
	Upper float64
}

// DefaultRange is the unit interval used by all color components.
var DefaultRange = Range{Lower: 0, Upper: 1}

// Contains reports whether v lies inside r.
func (r Range) Contains(v float64) bool {
	return v >= r.Lower && v <= r.Upper
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Lower, r.Upper)
}

// Clamp limits v to r.
func Clamp(v float64, r Range) float64 {
	if v < r.Lower {
		return r.Lower
	}
	if v > r.Upper {
		return r.Upper
	}
	return v
}

// Wrap shifts v by whole multiples of the range width so that it lies inside
// r. Both bounds are inclusive: values above r come out in (Lower, Upper], so
// Wrap(1, DefaultRange) and Wrap(2, DefaultRange) are 1, and values below r
// come out in [Lower, Upper). A degenerate range or an infinite v returns v
// unchanged.
func Wrap(v float64, r Range) float64 {
	d := r.Upper - r.Lower
	if d <= 0 || math.IsInf(v, 0) || r.Contains(v) {
		return v
	}
	m := math.Mod(v-r.Lower, d)
	if v > r.Upper {
		if m <= 0 {
			m += d
		}
		return r.Lower + m
	}
	if m < 0 {
		m += d
	}
	return r.Lower + m
}
