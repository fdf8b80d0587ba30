// Package band implements color bands: colors placed along [0,1] with
// linear interpolation in between.
package band

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/mapping"
)

// ErrStopOrder is reported by Update when a stop comes before its
// predecessor.
var ErrStopOrder = errors.New("color stops out of order")

// ColorStop places a color at a parameter along the band.
type ColorStop struct {
	Color color.Color `json:"color"`
	Param float64     `json:"param"`
}

func (s ColorStop) String() string {
	return fmt.Sprintf("ColorStop[%s, %g]", s.Color.Hex(), s.Param)
}

// ColorBand maps a parameter in [0,1] to a color. Stops are kept in the
// order they were added and are never sorted; Update must be called after
// changing them.
//
// At or before the first stop the first segment is called with the raw
// parameter, not one rescaled to that segment. The parameter of
// the last stop is not used: the final segment always ends at 1, and from
// there on the band holds the last color.
type ColorBand struct {
	stops []ColorStop

	red, green, blue, alpha mapping.Piecewise
}

// New returns a band holding stops. Update has already been called on it.
func New(stops ...ColorStop) (*ColorBand, error) {
	b := &ColorBand{stops: append([]ColorStop(nil), stops...)}
	return b, b.Update()
}

// AddColorStop appends a stop.
func (b *ColorBand) AddColorStop(s ColorStop) {
	b.stops = append(b.stops, s)
}

// AddColorStops appends several stops.
func (b *ColorBand) AddColorStops(stops []ColorStop) {
	b.stops = append(b.stops, stops...)
}

// ColorStops returns a copy of the stops.
func (b *ColorBand) ColorStops() []ColorStop {
	return append([]ColorStop(nil), b.stops...)
}

// NumColorStops returns the number of stops.
func (b *ColorBand) NumColorStops() int {
	return len(b.stops)
}

// ColorStop returns stop i.
func (b *ColorBand) ColorStop(i int) (ColorStop, bool) {
	if i < 0 || i >= len(b.stops) {
		return ColorStop{}, false
	}
	return b.stops[i], true
}

// FindColorStop returns the index of the occurrence-th stop equal to s
// (counting from 1), or -1.
func (b *ColorBand) FindColorStop(s ColorStop, occurrence int) int {
	for i, cur := range b.stops {
		if cur != s {
			continue
		}
		if occurrence <= 1 {
			return i
		}
		occurrence--
	}
	return -1
}

// RemoveColorStop removes the first stop equal to s.
func (b *ColorBand) RemoveColorStop(s ColorStop) bool {
	i := b.FindColorStop(s, 1)
	if i < 0 {
		return false
	}
	b.RemoveColorStopIndex(i)
	return true
}

// RemoveColorStopIndex removes stop i if it exists.
func (b *ColorBand) RemoveColorStopIndex(i int) {
	if i < 0 || i >= len(b.stops) {
		return
	}
	b.stops = append(b.stops[:i], b.stops[i+1:]...)
}

// ClearColorStops removes all stops. The mapping is kept until Update.
func (b *ColorBand) ClearColorStops() {
	b.stops = nil
}

// Clear removes all stops and the mapping built from them.
func (b *ColorBand) Clear() {
	b.stops = nil
	b.clearMappings()
}

func (b *ColorBand) clearMappings() {
	b.red.Clear()
	b.green.Clear()
	b.blue.Clear()
	b.alpha.Clear()
}

// Update rebuilds the per-channel mappings from the stops. Each stop but the
// last starts a linear segment towards the next one; a constant segment
// holding the last color is placed at 1. With fewer than two stops the band
// is left empty and evaluates to transparent black.
//
// Stops out of order still produce a band, but Update reports ErrStopOrder
// naming the first offending stop.
func (b *ColorBand) Update() error {
	b.clearMappings()
	if len(b.stops) < 2 {
		return nil
	}
	var err error
	for i := 0; i < len(b.stops)-1; i++ {
		s0, s1 := b.stops[i], b.stops[i+1]
		if s1.Param < s0.Param && err == nil {
			err = fmt.Errorf("stop %d at %g follows %g: %w", i+1, s1.Param, s0.Param, ErrStopOrder)
		}
		b.red.AddPiece(mapping.Linear{Lower: s0.Color.R, Upper: s1.Color.R}, s0.Param)
		b.green.AddPiece(mapping.Linear{Lower: s0.Color.G, Upper: s1.Color.G}, s0.Param)
		b.blue.AddPiece(mapping.Linear{Lower: s0.Color.B, Upper: s1.Color.B}, s0.Param)
		b.alpha.AddPiece(mapping.Linear{Lower: s0.Color.A, Upper: s1.Color.A}, s0.Param)
	}
	last := b.stops[len(b.stops)-1]
	b.red.AddPiece(mapping.Constant(last.Color.R), 1)
	b.green.AddPiece(mapping.Constant(last.Color.G), 1)
	b.blue.AddPiece(mapping.Constant(last.Color.B), 1)
	b.alpha.AddPiece(mapping.Constant(last.Color.A), 1)
	return err
}

// Eval returns the color at v.
func (b *ColorBand) Eval(v float64) color.Color {
	return color.Color{
		R: b.red.Call(v),
		G: b.green.Call(v),
		B: b.blue.Call(v),
		A: b.alpha.Call(v),
	}
}

// EvalFloat returns the color at v in space. An undefined space gives RGB.
func (b *ColorBand) EvalFloat(v float64, space color.ColorSpace) color.FloatColor {
	return b.Eval(v).FloatColor(space)
}

// EvalByte is the byte form of EvalFloat.
func (b *ColorBand) EvalByte(v float64, space color.ColorSpace) color.ByteColor {
	return b.EvalFloat(v, space).ToByte()
}

// Sample appends n colors evaluated at evenly spaced points of [0,1],
// both ends included, to target. A single sample is taken at 0.
func (b *ColorBand) Sample(n int, target *color.ColorSet) {
	if n <= 0 {
		return
	}
	if n == 1 {
		target.Add(b.Eval(0))
		return
	}
	step := 1 / float64(n-1)
	for i := 0; i < n; i++ {
		target.Add(b.Eval(float64(i) * step))
	}
}

// Copy returns an independent band with the same stops.
func (b *ColorBand) Copy() *ColorBand {
	c := &ColorBand{stops: b.ColorStops()}
	_ = c.Update() // same stops, same error as b
	return c
}

func (b *ColorBand) String() string {
	parts := make([]string, len(b.stops))
	for i, s := range b.stops {
		parts[i] = s.String()
	}
	return "ColorBand[" + strings.Join(parts, ", ") + "]"
}
