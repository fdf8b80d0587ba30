package color

import (
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/mapping"
)

// ByteColor is the 8-bit counterpart of FloatColor. Pixel storage uses it;
// arithmetic on it goes through the LUT tables or a float round trip.
type ByteColor struct {
	C0, C1, C2 uint8
	Alpha      uint8
	Space      ColorSpace
}

// ToFloat converts each component with ByteToFloat.
func (c ByteColor) ToFloat() FloatColor {
	return FloatColor{
		C0:    ByteToFloat(c.C0),
		C1:    ByteToFloat(c.C1),
		C2:    ByteToFloat(c.C2),
		Alpha: ByteToFloat(c.Alpha),
		Space: c.Space,
	}
}

func (c *ByteColor) viaFloat(fn func(*FloatColor)) {
	f := c.ToFloat()
	fn(&f)
	*c = f.ToByte()
}

// ToRGB converts c to RGB in place.
func (c *ByteColor) ToRGB() {
	if c.Space == SpaceRGB {
		return
	}
	c.viaFloat((*FloatColor).ToRGB)
}

// ToHSV converts c to HSV in place.
func (c *ByteColor) ToHSV() {
	if c.Space == SpaceHSV {
		return
	}
	c.viaFloat((*FloatColor).ToHSV)
}

// ToHSL converts c to HSL in place.
func (c *ByteColor) ToHSL() {
	if c.Space == SpaceHSL {
		return
	}
	c.viaFloat((*FloatColor).ToHSL)
}

// ToColorSpace converts c to space in place. It does nothing when c is
// already in space or space is SpaceUndefined.
func (c *ByteColor) ToColorSpace(space ColorSpace) {
	if c.Space == space || space == SpaceUndefined {
		return
	}
	c.viaFloat(func(f *FloatColor) { f.ToColorSpace(space) })
}

// Clamp limits all four components to r, where r is given in [0,1] units.
func (c *ByteColor) Clamp(r mapping.Range) {
	c.viaFloat(func(f *FloatColor) { f.Clamp(r) })
}

// Wrap wraps all four components into r, where r is given in [0,1] units.
func (c *ByteColor) Wrap(r mapping.Range) {
	c.viaFloat(func(f *FloatColor) { f.Wrap(r) })
}

// Component returns the slot addressed by ch.
func (c ByteColor) Component(ch ChannelID) uint8 {
	switch ch {
	case ChannelRed, ChannelHue:
		return c.C0
	case ChannelGreen, ChannelSaturation:
		return c.C1
	case ChannelBlue, ChannelValue, ChannelLuminance:
		return c.C2
	}
	return c.Alpha
}

// SetComponent assigns the slot addressed by ch.
func (c *ByteColor) SetComponent(ch ChannelID, v uint8) {
	switch ch {
	case ChannelRed, ChannelHue:
		c.C0 = v
	case ChannelGreen, ChannelSaturation:
		c.C1 = v
	case ChannelBlue, ChannelValue, ChannelLuminance:
		c.C2 = v
	default:
		c.Alpha = v
	}
}

// PreMultiply scales C0..C2 by alpha using Mult.
func (c *ByteColor) PreMultiply() {
	c.C0 = Mult(c.Alpha, c.C0)
	c.C1 = Mult(c.Alpha, c.C1)
	c.C2 = Mult(c.Alpha, c.C2)
}

// DivideAlpha undoes PreMultiply using Div. A zero alpha yields zero
// components.
func (c *ByteColor) DivideAlpha() {
	c.C0 = Div(c.C0, c.Alpha)
	c.C1 = Div(c.C1, c.Alpha)
	c.C2 = Div(c.C2, c.Alpha)
}

// Multiply scales C0..C2 by v, saturating at 255.
func (c *ByteColor) Multiply(v float64) {
	c.viaFloat(func(f *FloatColor) { f.Multiply(v) })
}

// ColorToAlpha is the byte form of FloatColor.ColorToAlpha.
func (c *ByteColor) ColorToAlpha(ref ByteColor) {
	c.viaFloat(func(f *FloatColor) { f.ColorToAlpha(ref.ToFloat()) })
}

// ToUint packs c as 0xAARRGGBB (slot 0 in bits 16-23, slot 1 in 8-15, slot 2
// in 0-7). With preMultiplied set the components are premultiplied first.
func (c ByteColor) ToUint(preMultiplied bool) uint32 {
	if preMultiplied {
		c.PreMultiply()
	}
	return uint32(c.Alpha)<<24 | uint32(c.C0)<<16 | uint32(c.C1)<<8 | uint32(c.C2)
}

// FromUint unpacks a value produced by ToUint. The packed components are
// taken as RGB; the result is converted to space afterwards.
func FromUint(v uint32, preMultiplied bool, space ColorSpace) ByteColor {
	c := ByteColor{
		Alpha: uint8(v >> 24),
		C0:    uint8(v >> 16),
		C1:    uint8(v >> 8),
		C2:    uint8(v),
		Space: SpaceRGB,
	}
	if preMultiplied {
		c.DivideAlpha()
	}
	c.ToColorSpace(space)
	return c
}

// Equal reports whether all components and the space match exactly.
func (c ByteColor) Equal(o ByteColor) bool {
	return c == o
}

func (c ByteColor) String() string {
	return fmt.Sprintf("ByteColor[%d, %d, %d, %d; %s]", c.C0, c.C1, c.C2, c.Alpha, c.Space)
}
