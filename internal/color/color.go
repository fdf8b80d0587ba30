package color

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"math"
	"strconv"

	"github.com/ironsheep/color-tools-mcp/internal/mapping"
)

// ErrInvalidHex is returned by ParseHex for strings that are not '#'
// followed by 2, 4, 6 or 8 hex digits.
var ErrInvalidHex = errors.New("invalid hex color")

// Color is an RGBA color with float components nominally in [0,1].
//
// Hue, saturation and luminance are not stored. Every accessor converts the
// color to HSL and back, so setting one of them can change the others by a
// rounding error.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Named colors.
var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Gray10      = Color{0.9, 0.9, 0.9, 1}
	Gray20      = Color{0.8, 0.8, 0.8, 1}
	Gray30      = Color{0.7, 0.7, 0.7, 1}
	Gray40      = Color{0.6, 0.6, 0.6, 1}
	Gray50      = Color{0.5, 0.5, 0.5, 1}
	Gray60      = Color{0.4, 0.4, 0.4, 1}
	Gray70      = Color{0.3, 0.3, 0.3, 1}
	Gray80      = Color{0.2, 0.2, 0.2, 1}
	Gray90      = Color{0.1, 0.1, 0.1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Magenta     = Color{1, 0, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Violet      = Color{0.56, 0, 1, 1}
	Orange      = Color{1, 0.5, 0, 1}
)

var namedColors = map[string]Color{
	"transparent": Transparent,
	"black":       Black,
	"white":       White,
	"gray10":      Gray10,
	"gray20":      Gray20,
	"gray30":      Gray30,
	"gray40":      Gray40,
	"gray50":      Gray50,
	"gray60":      Gray60,
	"gray70":      Gray70,
	"gray80":      Gray80,
	"gray90":      Gray90,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"cyan":        Cyan,
	"magenta":     Magenta,
	"yellow":      Yellow,
	"violet":      Violet,
	"orange":      Orange,
}

// New returns the color with the given components.
func New(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromBytes builds a color from 8-bit components.
func FromBytes(r, g, b, a uint8) Color {
	return Color{R: ByteToFloat(r), G: ByteToFloat(g), B: ByteToFloat(b), A: ByteToFloat(a)}
}

// FromFloatColor converts fc to RGB and copies its components.
func FromFloatColor(fc FloatColor) Color {
	fc.ToRGB()
	return Color{R: fc.C0, G: fc.C1, B: fc.C2, A: fc.Alpha}
}

// FromByteColor is FromFloatColor for 8-bit colors.
func FromByteColor(bc ByteColor) Color {
	return FromFloatColor(bc.ToFloat())
}

// FromStd converts any image/color value, undoing its premultiplication.
func FromStd(c stdcolor.Color) Color {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return FromBytes(n.R, n.G, n.B, n.A)
}

// Hex parses s leniently: a string without a leading '#' gives opaque black,
// pairs are read for red, green, blue and alpha in that order as far as the
// string reaches, and pairs that are not valid hex read as 0.
func Hex(s string) Color {
	c := Black
	if len(s) < 1 || s[0] != '#' {
		return c
	}
	if len(s) >= 3 {
		c.R = hexPair(s[1:3])
	}
	if len(s) >= 5 {
		c.G = hexPair(s[3:5])
	}
	if len(s) >= 7 {
		c.B = hexPair(s[5:7])
	}
	if len(s) >= 9 {
		c.A = hexPair(s[7:9])
	}
	return c
}

func hexPair(p string) float64 {
	v, err := strconv.ParseUint(p, 16, 8)
	if err != nil {
		return 0
	}
	return float64(v) / 255
}

// ParseHex parses '#' followed by 2, 4, 6 or 8 hex digits in RGBA order.
// Missing red, green or blue default to 0 and a missing alpha to 1.
func ParseHex(s string) (Color, error) {
	switch len(s) {
	case 3, 5, 7, 9:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	if s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q must start with '#'", ErrInvalidHex, s)
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return Hex(s), nil
}

// Parse accepts a hex string or one of the named colors ("red",
// "gray50", ...).
func Parse(s string) (Color, error) {
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	return ParseHex(s)
}

// Hex formats c as "#rrggbbaa" after clamping it to [0,1].
func (c Color) Hex() string {
	c.Clamp(mapping.DefaultRange)
	return fmt.Sprintf("#%02x%02x%02x%02x",
		int(math.Round(c.R*255)), int(math.Round(c.G*255)),
		int(math.Round(c.B*255)), int(math.Round(c.A*255)))
}

// FloatColor returns c as a FloatColor in space.
func (c Color) FloatColor(space ColorSpace) FloatColor {
	fc := FloatColor{C0: c.R, C1: c.G, C2: c.B, Alpha: c.A, Space: SpaceRGB}
	fc.ToColorSpace(space)
	return fc
}

// ByteColor returns c as a ByteColor in space.
func (c Color) ByteColor(space ColorSpace) ByteColor {
	return c.FloatColor(space).ToByte()
}

// Hue returns the HSL hue in [0,1).
func (c Color) Hue() float64 { return c.FloatColor(SpaceHSL).C0 }

// Saturation returns the HSL saturation.
func (c Color) Saturation() float64 { return c.FloatColor(SpaceHSL).C1 }

// Luminance returns the HSL luminance.
func (c Color) Luminance() float64 { return c.FloatColor(SpaceHSL).C2 }

// SetHue replaces the HSL hue.
func (c *Color) SetHue(h float64) { c.setHSL(ChannelHue, h) }

// SetSaturation replaces the HSL saturation.
func (c *Color) SetSaturation(s float64) { c.setHSL(ChannelSaturation, s) }

// SetLuminance replaces the HSL luminance.
func (c *Color) SetLuminance(l float64) { c.setHSL(ChannelLuminance, l) }

func (c *Color) setHSL(ch ChannelID, v float64) {
	fc := c.FloatColor(SpaceHSL)
	fc.SetComponent(ch, v)
	*c = FromFloatColor(fc)
}

// SetHSL replaces hue, saturation and luminance at once.
func (c *Color) SetHSL(h, s, l float64) {
	*c = FromFloatColor(FloatColor{C0: h, C1: s, C2: l, Alpha: c.A, Space: SpaceHSL})
}

// SetHSV replaces the color with the given HSV values, keeping alpha.
func (c *Color) SetHSV(h, s, v float64) {
	*c = FromFloatColor(FloatColor{C0: h, C1: s, C2: v, Alpha: c.A, Space: SpaceHSV})
}

// Interpolate blends a and b per component, alpha included.
func Interpolate(a, b Color, t float64) Color {
	return Color{
		R: a.R + t*(b.R-a.R),
		G: a.G + t*(b.G-a.G),
		B: a.B + t*(b.B-a.B),
		A: a.A + t*(b.A-a.A),
	}
}

func (c *Color) ClampRed(r mapping.Range)   { c.R = mapping.Clamp(c.R, r) }
func (c *Color) ClampGreen(r mapping.Range) { c.G = mapping.Clamp(c.G, r) }
func (c *Color) ClampBlue(r mapping.Range)  { c.B = mapping.Clamp(c.B, r) }
func (c *Color) ClampAlpha(r mapping.Range) { c.A = mapping.Clamp(c.A, r) }

// Clamp limits every component to r.
func (c *Color) Clamp(r mapping.Range) {
	c.ClampRed(r)
	c.ClampGreen(r)
	c.ClampBlue(r)
	c.ClampAlpha(r)
}

// MeanSquaredError is the mean squared difference of red, green and blue.
// Alpha is ignored.
func (c Color) MeanSquaredError(ref Color) float64 {
	dr, dg, db := c.R-ref.R, c.G-ref.G, c.B-ref.B
	return (dr*dr + dg*dg + db*db) / 3
}

// PreMultiply returns c with red, green and blue scaled by alpha.
func (c Color) PreMultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// DivideAlpha undoes PreMultiply. A zero alpha gives transparent black.
func (c Color) DivideAlpha() Color {
	if c.A == 0 {
		return Transparent
	}
	return Color{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// Multiply scales red, green and blue by v.
func (c Color) Multiply(v float64) Color {
	return Color{R: c.R * v, G: c.G * v, B: c.B * v, A: c.A}
}

// Equal compares all four components exactly.
func (c Color) Equal(o Color) bool {
	return c == o
}

// NRGBA converts c to a non-premultiplied 8-bit standard color.
func (c Color) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: FloatToByte(c.R), G: FloatToByte(c.G), B: FloatToByte(c.B), A: FloatToByte(c.A)}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("Color[%g, %g, %g, %g]", c.R, c.G, c.B, c.A)
}
