package color

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colorful returns the RGB part of c as a go-colorful color, for the
// perceptual spaces (Lab, Luv, HCL) this package does not implement.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// FromColorful builds a Color from a go-colorful color and an alpha.
func FromColorful(cc colorful.Color, alpha float64) Color {
	return Color{R: cc.R, G: cc.G, B: cc.B, A: alpha}
}

// Lab returns the CIE L*a*b* coordinates of c (D65 white point).
func (c Color) Lab() (l, a, b float64) {
	return c.Colorful().Clamped().Lab()
}

// HCL returns the CIE LCh(ab) coordinates of c, hue in degrees.
func (c Color) HCL() (h, chroma, l float64) {
	return c.Colorful().Clamped().Hcl()
}

// DistanceLab is the Euclidean distance between c and o in Lab space.
func (c Color) DistanceLab(o Color) float64 {
	return c.Colorful().Clamped().DistanceLab(o.Colorful().Clamped())
}
