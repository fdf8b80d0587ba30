// Package blend implements the color blend operators used for compositing.
//
// Every operator implements Blender over FloatColor values. SrcOver,
// Multiply, Darken, Lighten and Plus also implement ByteBlender, a byte
// path built on the lookup tables of package color that agrees with the
// float path to within rounding. Channel copies a single channel from one
// color into another and has no byte path of its own; BlendByte falls back
// to the float form for it.
//
// Operators are pure: the Config a blender carries only supplies defaults
// for Apply.
//
// # Alpha
//
// The Porter-Duff style operators scale each input's alpha by its opacity,
// premultiply, combine, and divide the result by its alpha again. A result
// with zero alpha comes back as transparent black.
package blend
