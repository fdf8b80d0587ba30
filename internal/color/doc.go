// Package color implements color values and the conversions the compositing
// code is built on.
//
// Three representations share one model:
//
//   - Color: RGBA floats, the type callers normally hold.
//   - FloatColor: three float slots plus alpha, tagged with a ColorSpace
//     (RGB, HSV or HSL). Blend operators work on this form.
//   - ByteColor: the 8-bit form used for pixel storage.
//
// Conversions between spaces mutate a FloatColor or ByteColor in place and
// update its Space tag; HSV and HSL convert through RGB. Hue is stored in
// [0,1), not degrees.
//
// # Byte arithmetic
//
// Mult, Add, Sub and Div read 256×256 tables built once at package
// initialization and never written afterwards. They give the byte path exact
// rounding without floating point: Mult(a, b) is round(a*b/255), Div(a, b) is
// round(255*a/b) capped at 255.
//
// # Zero alpha
//
// Dividing by a zero alpha never produces NaN here. FloatColor.DivideAlpha
// zeroes the components and Div returns 0 for a zero divisor, so both paths
// agree that a fully transparent color is transparent black.
package color
