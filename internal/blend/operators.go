package blend

import (
	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// SrcOver composites the source over the destination.
type SrcOver struct{ Config }

// Multiply multiplies source and destination where they overlap.
type Multiply struct{ Config }

// Darken keeps the darker of source and destination per channel.
type Darken struct{ Config }

// Lighten keeps the lighter of source and destination per channel.
type Lighten struct{ Config }

// Plus adds source and destination. The float result is not clamped.
type Plus struct{ Config }

func NewSrcOver() SrcOver   { return SrcOver{DefaultConfig()} }
func NewMultiply() Multiply { return Multiply{DefaultConfig()} }
func NewDarken() Darken     { return Darken{DefaultConfig()} }
func NewLighten() Lighten   { return Lighten{DefaultConfig()} }
func NewPlus() Plus         { return Plus{DefaultConfig()} }

// prepare converts c to RGB, scales its alpha by opacity and premultiplies.
func prepare(c color.FloatColor, opacity float64) color.FloatColor {
	c.ToRGB()
	c.Alpha *= opacity
	c.PreMultiply()
	return c
}

func finish(r color.FloatColor) color.FloatColor {
	r.Space = color.SpaceRGB
	r.DivideAlpha()
	return r
}

// over is top + bottom*(1-topAlpha) on premultiplied values.
func over(top, bottom, topAlpha float64) float64 {
	return top + bottom*(1-topAlpha)
}

// union is the alpha of two overlapping layers. Written this way an opaque
// layer yields exactly 1.
func union(sa, da float64) float64 {
	return sa + da*(1-sa)
}

func (SrcOver) BlendFloat(src, dst color.FloatColor, so, to float64) color.FloatColor {
	s, d := prepare(src, so), prepare(dst, to)
	return finish(color.FloatColor{
		C0:    over(s.C0, d.C0, s.Alpha),
		C1:    over(s.C1, d.C1, s.Alpha),
		C2:    over(s.C2, d.C2, s.Alpha),
		Alpha: union(s.Alpha, d.Alpha),
	})
}

func (Multiply) BlendFloat(src, dst color.FloatColor, so, to float64) color.FloatColor {
	s, d := prepare(src, so), prepare(dst, to)
	mul := func(a, b float64) float64 {
		return a*b + a*(1-d.Alpha) + b*(1-s.Alpha)
	}
	return finish(color.FloatColor{
		C0:    mul(s.C0, d.C0),
		C1:    mul(s.C1, d.C1),
		C2:    mul(s.C2, d.C2),
		Alpha: union(s.Alpha, d.Alpha),
	})
}

// pick composites the channel chosen by keepSrc: the source channel over the
// destination, or the destination channel over the source.
func pick(s, d, sa, da float64, keepSrc bool) float64 {
	if keepSrc {
		return over(s, d, sa)
	}
	return over(d, s, da)
}

func (Darken) BlendFloat(src, dst color.FloatColor, so, to float64) color.FloatColor {
	s, d := prepare(src, so), prepare(dst, to)
	darker := func(a, b float64) float64 {
		return pick(a, b, s.Alpha, d.Alpha, a*d.Alpha < b*s.Alpha)
	}
	return finish(color.FloatColor{
		C0:    darker(s.C0, d.C0),
		C1:    darker(s.C1, d.C1),
		C2:    darker(s.C2, d.C2),
		Alpha: union(s.Alpha, d.Alpha),
	})
}

func (Lighten) BlendFloat(src, dst color.FloatColor, so, to float64) color.FloatColor {
	s, d := prepare(src, so), prepare(dst, to)
	lighter := func(a, b float64) float64 {
		return pick(a, b, s.Alpha, d.Alpha, a*d.Alpha > b*s.Alpha)
	}
	return finish(color.FloatColor{
		C0:    lighter(s.C0, d.C0),
		C1:    lighter(s.C1, d.C1),
		C2:    lighter(s.C2, d.C2),
		Alpha: union(s.Alpha, d.Alpha),
	})
}

func (Plus) BlendFloat(src, dst color.FloatColor, so, to float64) color.FloatColor {
	s, d := prepare(src, so), prepare(dst, to)
	return finish(color.FloatColor{
		C0:    s.C0 + d.C0,
		C1:    s.C1 + d.C1,
		C2:    s.C2 + d.C2,
		Alpha: s.Alpha + d.Alpha,
	})
}
