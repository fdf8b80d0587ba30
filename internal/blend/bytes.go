package blend

import (
	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// Byte paths. Every product goes through color.Mult, so the results match
// the float operators up to rounding.

func prepareByte(c color.ByteColor, opacity uint8) color.ByteColor {
	if c.Space == color.SpaceHSV || c.Space == color.SpaceHSL {
		c.ToRGB()
	}
	c.Space = color.SpaceRGB
	c.Alpha = color.Mult(c.Alpha, opacity)
	c.PreMultiply()
	return c
}

func finishByte(r color.ByteColor) color.ByteColor {
	r.Space = color.SpaceRGB
	r.DivideAlpha()
	return r
}

func overByte(top, bottom, topAlpha uint8) uint8 {
	return color.Add(top, color.Mult(bottom, 255-topAlpha))
}

func unionByte(sa, da uint8) uint8 {
	return uint8(int(sa) + int(da) - int(color.Mult(sa, da)))
}

func (SrcOver) BlendBytes(src, dst color.ByteColor, so, to uint8) color.ByteColor {
	s, d := prepareByte(src, so), prepareByte(dst, to)
	return finishByte(color.ByteColor{
		C0:    overByte(s.C0, d.C0, s.Alpha),
		C1:    overByte(s.C1, d.C1, s.Alpha),
		C2:    overByte(s.C2, d.C2, s.Alpha),
		Alpha: unionByte(s.Alpha, d.Alpha),
	})
}

func (Multiply) BlendBytes(src, dst color.ByteColor, so, to uint8) color.ByteColor {
	s, d := prepareByte(src, so), prepareByte(dst, to)
	mul := func(a, b uint8) uint8 {
		return color.Add(color.Add(color.Mult(a, b), color.Mult(a, 255-d.Alpha)), color.Mult(b, 255-s.Alpha))
	}
	return finishByte(color.ByteColor{
		C0:    mul(s.C0, d.C0),
		C1:    mul(s.C1, d.C1),
		C2:    mul(s.C2, d.C2),
		Alpha: unionByte(s.Alpha, d.Alpha),
	})
}

func pickByte(s, d, sa, da uint8, keepSrc bool) uint8 {
	if keepSrc {
		return overByte(s, d, sa)
	}
	return overByte(d, s, da)
}

func (Darken) BlendBytes(src, dst color.ByteColor, so, to uint8) color.ByteColor {
	s, d := prepareByte(src, so), prepareByte(dst, to)
	darker := func(a, b uint8) uint8 {
		return pickByte(a, b, s.Alpha, d.Alpha, color.Mult(a, d.Alpha) < color.Mult(b, s.Alpha))
	}
	return finishByte(color.ByteColor{
		C0:    darker(s.C0, d.C0),
		C1:    darker(s.C1, d.C1),
		C2:    darker(s.C2, d.C2),
		Alpha: unionByte(s.Alpha, d.Alpha),
	})
}

func (Lighten) BlendBytes(src, dst color.ByteColor, so, to uint8) color.ByteColor {
	s, d := prepareByte(src, so), prepareByte(dst, to)
	lighter := func(a, b uint8) uint8 {
		return pickByte(a, b, s.Alpha, d.Alpha, color.Mult(a, d.Alpha) > color.Mult(b, s.Alpha))
	}
	return finishByte(color.ByteColor{
		C0:    lighter(s.C0, d.C0),
		C1:    lighter(s.C1, d.C1),
		C2:    lighter(s.C2, d.C2),
		Alpha: unionByte(s.Alpha, d.Alpha),
	})
}

// BlendBytes saturates at 255 where the float form would exceed 1.
func (Plus) BlendBytes(src, dst color.ByteColor, so, to uint8) color.ByteColor {
	s, d := prepareByte(src, so), prepareByte(dst, to)
	return finishByte(color.ByteColor{
		C0:    color.Add(s.C0, d.C0),
		C1:    color.Add(s.C1, d.C1),
		C2:    color.Add(s.C2, d.C2),
		Alpha: color.Add(s.Alpha, d.Alpha),
	})
}
