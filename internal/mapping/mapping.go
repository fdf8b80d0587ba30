// Package mapping provides the scalar-to-scalar functions used to shape color
// channels and sample color bands.
//
// A Mapping is anything with a Call(float64) float64 method. The package ships
// the handful of mappings the color code needs (Linear, Constant, Power,
// SmoothStep, Chain) plus Piecewise, which stitches mappings together over the
// unit interval.
package mapping

import (
	"fmt"
	"math"
)

// Mapping evaluates a scalar function.
type Mapping interface {
	Call(v float64) float64
}

// Func adapts an ordinary function to the Mapping interface.
type Func func(float64) float64

// Call invokes f.
func (f Func) Call(v float64) float64 { return f(v) }

// Linear maps [0,1] onto [Lower,Upper].
type Linear struct {
	Lower float64
	Upper float64
}

// Call returns v*(Upper-Lower) + Lower.
func (l Linear) Call(v float64) float64 {
	return v*(l.Upper-l.Lower) + l.Lower
}

func (l Linear) String() string {
	return fmt.Sprintf("Linear[%g, %g]", l.Lower, l.Upper)
}

// Constant ignores its argument.
type Constant float64

// Call returns the constant value.
func (c Constant) Call(float64) float64 { return float64(c) }

func (c Constant) String() string {
	return fmt.Sprintf("Constant[%g]", float64(c))
}

// Power raises its argument to a fixed exponent.
type Power float64

// Call returns v^p. Negative inputs are clamped to zero so fractional
// exponents stay real.
func (p Power) Call(v float64) float64 {
	if v < 0 {
		v = 0
	}
	return math.Pow(v, float64(p))
}

// SmoothStep is the cubic Hermite ease 3v²-2v³ on [0,1].
var SmoothStep Mapping = Func(func(v float64) float64 {
	v = Clamp(v, DefaultRange)
	return v * v * (3 - 2*v)
})

// Identity returns its argument unchanged.
var Identity Mapping = Func(func(v float64) float64 { return v })

// Chain evaluates Outer on the result of Inner, then rescales the output.
//
// A nil Inner is replaced by the affine transform Scale*v + Offset; a zero
// ResultScale is treated as 1.
type Chain struct {
	Outer        Mapping
	Inner        Mapping
	Scale        float64
	Offset       float64
	ResultScale  float64
	ResultOffset float64
}

// Call evaluates the chain at v.
func (c Chain) Call(v float64) float64 {
	var t float64
	if c.Inner != nil {
		t = c.Inner.Call(v)
	} else {
		scale := c.Scale
		if scale == 0 {
			scale = 1
		}
		t = scale*v + c.Offset
	}
	if c.Outer != nil {
		t = c.Outer.Call(t)
	}
	rs := c.ResultScale
	if rs == 0 {
		rs = 1
	}
	return rs*t + c.ResultOffset
}

// ByName returns one of the named sample functions accepted by the server
// tools: "linear" (or ""), "smoothstep", "square", "sqrt", "invert".
func ByName(name string) (Mapping, error) {
	switch name {
	case "", "linear", "identity":
		return Identity, nil
	case "smoothstep":
		return SmoothStep, nil
	case "square":
		return Power(2), nil
	case "sqrt":
		return Power(0.5), nil
	case "invert":
		return Linear{Lower: 1, Upper: 0}, nil
	default:
		return nil, fmt.Errorf("unknown mapping: %s", name)
	}
}
