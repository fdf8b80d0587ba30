package color

import (
	"fmt"
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/mapping"
)

// alphaEpsilon is the threshold below which an alpha value counts as zero.
const alphaEpsilon = 0.0001

// FloatColor is a color with float components nominally in [0,1].
//
// Space tells how C0..C2 are read; see ColorSpace. Range is not enforced
// except through Clamp.
type FloatColor struct {
	C0, C1, C2 float64
	Alpha      float64
	Space      ColorSpace
}

// FloatToByte clamps v to [0,1], scales it to [0,255] and rounds to the
// nearest integer. NaN maps to 0.
func FloatToByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(255 * mapping.Clamp(v, mapping.DefaultRange)))
}

// ByteToFloat returns b/255.
func ByteToFloat(b uint8) float64 {
	return float64(b) / 255
}

// ToByte converts each component with FloatToByte.
func (c FloatColor) ToByte() ByteColor {
	return ByteColor{
		C0:    FloatToByte(c.C0),
		C1:    FloatToByte(c.C1),
		C2:    FloatToByte(c.C2),
		Alpha: FloatToByte(c.Alpha),
		Space: c.Space,
	}
}

// Clamp limits all four components to r.
func (c *FloatColor) Clamp(r mapping.Range) {
	c.C0 = mapping.Clamp(c.C0, r)
	c.C1 = mapping.Clamp(c.C1, r)
	c.C2 = mapping.Clamp(c.C2, r)
	c.Alpha = mapping.Clamp(c.Alpha, r)
}

// Wrap wraps all four components into r.
func (c *FloatColor) Wrap(r mapping.Range) {
	c.C0 = mapping.Wrap(c.C0, r)
	c.C1 = mapping.Wrap(c.C1, r)
	c.C2 = mapping.Wrap(c.C2, r)
	c.Alpha = mapping.Wrap(c.Alpha, r)
}

// ToRGB converts c to RGB in place.
func (c *FloatColor) ToRGB() {
	switch c.Space {
	case SpaceHSV:
		c.C0, c.C1, c.C2 = hsvToRGB(c.C0, c.C1, c.C2)
	case SpaceHSL:
		c.C0, c.C1, c.C2 = hslToRGB(c.C0, c.C1, c.C2)
	}
	c.Space = SpaceRGB
}

// ToHSV converts c to HSV in place, going through RGB when needed.
func (c *FloatColor) ToHSV() {
	if c.Space == SpaceHSV {
		return
	}
	if c.Space != SpaceRGB {
		c.ToRGB()
	}
	c.C0, c.C1, c.C2 = rgbToHSV(c.C0, c.C1, c.C2)
	c.Space = SpaceHSV
}

// ToHSL converts c to HSL in place, going through RGB when needed.
func (c *FloatColor) ToHSL() {
	if c.Space == SpaceHSL {
		return
	}
	if c.Space != SpaceRGB {
		c.ToRGB()
	}
	c.C0, c.C1, c.C2 = rgbToHSL(c.C0, c.C1, c.C2)
	c.Space = SpaceHSL
}

// ToColorSpace converts c to space in place. It does nothing when c is
// already in space or space is SpaceUndefined.
func (c *FloatColor) ToColorSpace(space ColorSpace) {
	if c.Space == space || space == SpaceUndefined {
		return
	}
	switch space {
	case SpaceRGB:
		c.ToRGB()
	case SpaceHSV:
		c.ToHSV()
	case SpaceHSL:
		c.ToHSL()
	}
}

// In returns a copy of c converted to space.
func (c FloatColor) In(space ColorSpace) FloatColor {
	c.ToColorSpace(space)
	return c
}

// Component returns the slot addressed by ch.
func (c FloatColor) Component(ch ChannelID) float64 {
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
func (c *FloatColor) SetComponent(ch ChannelID, v float64) {
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

// PreMultiply scales C0..C2 by alpha.
func (c *FloatColor) PreMultiply() {
	c.C0 *= c.Alpha
	c.C1 *= c.Alpha
	c.C2 *= c.Alpha
}

// DivideAlpha undoes PreMultiply. A zero alpha zeroes C0..C2 instead of
// producing NaN.
func (c *FloatColor) DivideAlpha() {
	if c.Alpha == 0 {
		c.C0, c.C1, c.C2 = 0, 0, 0
		return
	}
	c.C0 /= c.Alpha
	c.C1 /= c.Alpha
	c.C2 /= c.Alpha
}

// Multiply scales C0..C2 by v. Alpha is left alone.
func (c *FloatColor) Multiply(v float64) {
	c.C0 *= v
	c.C1 *= v
	c.C2 *= v
}

// ColorToAlpha removes ref from c the way GIMP's color-to-alpha filter does:
// the new alpha is the largest per-channel distance of c from ref, measured
// relative to how much room ref leaves on that side, and the components are
// rescaled so that compositing the result over ref gives back c.
//
// The work happens in RGB; c is converted back to its original space
// afterwards.
func (c *FloatColor) ColorToAlpha(ref FloatColor) {
	space := c.Space
	c.ToRGB()
	ref.ToRGB()

	a0 := channelAlpha(c.C0, ref.C0)
	a1 := channelAlpha(c.C1, ref.C1)
	a2 := channelAlpha(c.C2, ref.C2)
	a := max(a0, a1, a2)

	if a < alphaEpsilon {
		c.Alpha *= a
		c.ToColorSpace(space)
		return
	}
	c.C0 = (c.C0-ref.C0)/a + ref.C0
	c.C1 = (c.C1-ref.C1)/a + ref.C1
	c.C2 = (c.C2-ref.C2)/a + ref.C2
	c.Alpha *= a
	c.ToColorSpace(space)
}

func channelAlpha(v, ref float64) float64 {
	switch {
	case ref < alphaEpsilon:
		return v
	case v > ref:
		return (v - ref) / (1 - ref)
	case v < ref:
		return (ref - v) / ref
	}
	return 0
}

// Equal reports whether all components and the space match exactly.
func (c FloatColor) Equal(o FloatColor) bool {
	return c == o
}

func (c FloatColor) String() string {
	return fmt.Sprintf("FloatColor[%g, %g, %g, %g; %s]", c.C0, c.C1, c.C2, c.Alpha, c.Space)
}
