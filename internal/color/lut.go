package color

import "math"

// Byte-domain arithmetic tables, indexed as table[256*a+b].
//
// lutMult holds round(a*b/255), lutAdd min(a+b, 255), lutSub max(a-b, 0) and
// lutDiv min(round(255*a/b), 255). lutDiv is 0 wherever b is 0.
//
// The tables are filled by init and only read through the accessors below,
// so they may be used from any goroutine.
var (
	lutMult [256 * 256]uint8
	lutAdd  [256 * 256]uint8
	lutSub  [256 * 256]uint8
	lutDiv  [256 * 256]uint8
)

func init() {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			i := 256*a + b
			lutMult[i] = uint8(math.Round(float64(a*b) / 255))
			lutAdd[i] = uint8(min(a+b, 255))
			lutSub[i] = uint8(max(a-b, 0))
			if b > 0 {
				lutDiv[i] = uint8(min(math.Round(255*float64(a)/float64(b)), 255))
			}
		}
	}
}

// Mult returns round(a*b/255).
func Mult(a, b uint8) uint8 { return lutMult[int(a)<<8|int(b)] }

// Add returns a+b saturated at 255.
func Add(a, b uint8) uint8 { return lutAdd[int(a)<<8|int(b)] }

// Sub returns a-b saturated at 0.
func Sub(a, b uint8) uint8 { return lutSub[int(a)<<8|int(b)] }

// Div returns round(255*a/b) saturated at 255, or 0 when b is 0.
func Div(a, b uint8) uint8 { return lutDiv[int(a)<<8|int(b)] }
