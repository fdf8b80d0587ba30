// Package gradient fills gg gradient brushes from colors and color bands.
package gradient

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/gg"

	"github.com/ironsheep/color-tools-mcp/internal/band"
	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/mapping"
)

// DefaultSamples is the sample count used by callers that have no better
// choice for SetFromColorBand.
const DefaultSamples = 20

// ErrTooFewSamples is returned by SetFromColorBand when a sample function is
// given with fewer than two samples.
var ErrTooFewSamples = errors.New("number of samples must be at least 2")

// Kind is the geometry of a gradient.
type Kind string

const (
	KindLinear Kind = "linear"
	KindRadial Kind = "radial"
	KindSweep  Kind = "sweep"
)

// Gradient is a gg gradient brush together with its stop list.
type Gradient struct {
	kind   Kind
	brush  gg.Brush
	stops  *[]gg.ColorStop
	extend *gg.ExtendMode
}

// NewLinear returns a gradient running from (x0, y0) to (x1, y1).
func NewLinear(x0, y0, x1, y1 float64) *Gradient {
	b := gg.NewLinearGradientBrush(x0, y0, x1, y1)
	return &Gradient{kind: KindLinear, brush: b, stops: &b.Stops, extend: &b.Extend}
}

// NewRadial returns a gradient centered at (cx, cy) running from radius r0
// to r1.
func NewRadial(cx, cy, r0, r1 float64) *Gradient {
	b := gg.NewRadialGradientBrush(cx, cy, r0, r1)
	return &Gradient{kind: KindRadial, brush: b, stops: &b.Stops, extend: &b.Extend}
}

// NewSweep returns a gradient sweeping around (cx, cy) starting at angle a0
// (radians).
func NewSweep(cx, cy, a0 float64) *Gradient {
	b := gg.NewSweepGradientBrush(cx, cy, a0)
	return &Gradient{kind: KindSweep, brush: b, stops: &b.Stops, extend: &b.Extend}
}

func (g *Gradient) Kind() Kind { return g.kind }

// Brush returns the underlying brush for use with a gg.Context.
func (g *Gradient) Brush() gg.Brush { return g.brush }

// SetExtend sets how the gradient continues past its ends.
func (g *Gradient) SetExtend(mode gg.ExtendMode) { *g.extend = mode }

// AddColorStop appends a stop at offset, nominally in [0,1].
func (g *Gradient) AddColorStop(offset float64, c color.Color) {
	*g.stops = append(*g.stops, gg.ColorStop{
		Offset: offset,
		Color:  gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A},
	})
}

// NumColorStops returns the number of stops.
func (g *Gradient) NumColorStops() int { return len(*g.stops) }

// Stop is a gradient stop as returned by Stops.
type Stop struct {
	Offset float64     `json:"offset"`
	Color  color.Color `json:"color"`
}

// Stops returns the stops in the order they were added.
func (g *Gradient) Stops() []Stop {
	out := make([]Stop, len(*g.stops))
	for i, s := range *g.stops {
		out[i] = Stop{Offset: s.Offset, Color: color.New(s.Color.R, s.Color.G, s.Color.B, s.Color.A)}
	}
	return out
}

// ClearColorStops removes all stops.
func (g *Gradient) ClearColorStops() { *g.stops = nil }

// ColorAt samples the gradient at (x, y).
func (g *Gradient) ColorAt(x, y float64) color.Color {
	c := g.brush.ColorAt(x, y)
	return color.New(c.R, c.G, c.B, c.A)
}

// SetFromColorBand appends stops taken from b.
//
// With a nil sampleFunc the band's stops are copied as they are, without
// interpolation. Otherwise the band is evaluated at numSamples evenly spaced
// points x of [0,1], each passed through sampleFunc first, and a stop is
// placed at x.
func (g *Gradient) SetFromColorBand(b *band.ColorBand, sampleFunc mapping.Mapping, numSamples int) error {
	if sampleFunc == nil {
		for _, s := range b.ColorStops() {
			g.AddColorStop(s.Param, s.Color)
		}
		return nil
	}
	if numSamples < 2 {
		return fmt.Errorf("sample %d points: %w", numSamples, ErrTooFewSamples)
	}
	dx := 1 / float64(numSamples-1)
	for i := 0; i < numSamples; i++ {
		x := float64(i) * dx
		g.AddColorStop(x, b.Eval(sampleFunc.Call(x)))
	}
	return nil
}

// Render fills a width x height image with the gradient.
func (g *Gradient) Render(width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}
	ctx := gg.NewContext(width, height)
	defer func() { _ = ctx.Close() }()

	ctx.SetFillBrush(g.brush)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	if err := ctx.Fill(); err != nil {
		return nil, fmt.Errorf("fill %s gradient: %w", g.kind, err)
	}
	return ctx.Image(), nil
}

func (g *Gradient) String() string {
	parts := make([]string, len(*g.stops))
	for i, s := range *g.stops {
		parts[i] = fmt.Sprintf("[%g: (%g, %g, %g, %g)]", s.Offset, s.Color.R, s.Color.G, s.Color.B, s.Color.A)
	}
	return fmt.Sprintf("Gradient(%s)[%s]", g.kind, strings.Join(parts, ", "))
}
