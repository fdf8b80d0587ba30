package color

import (
	"fmt"
	"strings"
)

// ColorSet is an ordered list of colors.
type ColorSet struct {
	colors []Color
}

// NewColorSet returns a set holding colors in order.
func NewColorSet(colors ...Color) *ColorSet {
	s := &ColorSet{}
	s.colors = append(s.colors, colors...)
	return s
}

// Add appends c.
func (s *ColorSet) Add(c Color) {
	s.colors = append(s.colors, c)
}

// AddColors appends all colors of other.
func (s *ColorSet) AddColors(other *ColorSet) {
	if other == nil {
		return
	}
	s.colors = append(s.colors, other.colors...)
}

// Len returns the number of colors.
func (s *ColorSet) Len() int {
	return len(s.colors)
}

// Color returns the color at index i.
func (s *ColorSet) Color(i int) (Color, bool) {
	if i < 0 || i >= len(s.colors) {
		return Color{}, false
	}
	return s.colors[i], true
}

// Colors returns a copy of the colors.
func (s *ColorSet) Colors() []Color {
	out := make([]Color, len(s.colors))
	copy(out, s.colors)
	return out
}

// Find returns the index of the occurrence-th (1-based) copy of c, or -1.
func (s *ColorSet) Find(c Color, occurrence int) int {
	if occurrence < 1 {
		occurrence = 1
	}
	n := 0
	for i, v := range s.colors {
		if v == c {
			n++
			if n == occurrence {
				return i
			}
		}
	}
	return -1
}

// Remove deletes the first copy of c. It reports whether one was found.
func (s *ColorSet) Remove(c Color) bool {
	i := s.Find(c, 1)
	if i < 0 {
		return false
	}
	s.RemoveIndex(i)
	return true
}

// RemoveIndex deletes the color at index i. Out-of-range indices are ignored.
func (s *ColorSet) RemoveIndex(i int) {
	if i < 0 || i >= len(s.colors) {
		return
	}
	s.colors = append(s.colors[:i], s.colors[i+1:]...)
}

// Clear removes all colors.
func (s *ColorSet) Clear() {
	s.colors = nil
}

// Equal reports whether both sets hold the same colors in the same order.
func (s *ColorSet) Equal(o *ColorSet) bool {
	if len(s.colors) != len(o.colors) {
		return false
	}
	for i := range s.colors {
		if s.colors[i] != o.colors[i] {
			return false
		}
	}
	return true
}

// Hex returns the colors formatted with Color.Hex.
func (s *ColorSet) Hex() []string {
	out := make([]string, len(s.colors))
	for i, c := range s.colors {
		out[i] = c.Hex()
	}
	return out
}

func (s *ColorSet) String() string {
	return fmt.Sprintf("ColorSet[%s]", strings.Join(s.Hex(), ", "))
}

// CreateColors appends a grid of colors spanning c0 to c1 in space.
//
// Each component takes steps evenly spaced values from c0's to c1's, both
// included. A step count of 1 uses the midpoint; 0 produces no colors. The
// slots are nested C0, C1, C2, alpha with alpha varying fastest.
func (s *ColorSet) CreateColors(c0, c1 Color, space ColorSpace, stepsC0, stepsC1, stepsC2, stepsAlpha int) {
	if space == SpaceUndefined {
		space = SpaceRGB
	}
	f0 := c0.FloatColor(space)
	f1 := c1.FloatColor(space)
	cr := FloatColor{Space: space}
	for i := 0; i < stepsC0; i++ {
		cr.C0 = gridValue(f0.C0, f1.C0, i, stepsC0)
		for j := 0; j < stepsC1; j++ {
			cr.C1 = gridValue(f0.C1, f1.C1, j, stepsC1)
			for k := 0; k < stepsC2; k++ {
				cr.C2 = gridValue(f0.C2, f1.C2, k, stepsC2)
				for l := 0; l < stepsAlpha; l++ {
					cr.Alpha = gridValue(f0.Alpha, f1.Alpha, l, stepsAlpha)
					s.Add(FromFloatColor(cr))
				}
			}
		}
	}
}

func gridValue(a, b float64, i, steps int) float64 {
	if steps == 1 {
		return 0.5 * (a + b)
	}
	return a + float64(i)*(b-a)/float64(steps-1)
}
