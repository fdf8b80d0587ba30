package color

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/color-tools-mcp/internal/mapping"
)

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestByteFloatConversion(t *testing.T) {
	b := ByteColor{C0: 255, C1: 128, C2: 0, Alpha: 64, Space: SpaceRGB}
	f := b.ToFloat()
	if f.C0 != 1 || f.C2 != 0 || f.Space != SpaceRGB {
		t.Errorf("ToFloat: got %v", f)
	}
	if got := f.ToByte(); got != b {
		t.Errorf("ToByte(ToFloat(b)): got %v, want %v", got, b)
	}
}

func TestByteColorSpaceConversion(t *testing.T) {
	b := ByteColor{C0: 255, C1: 0, C2: 0, Alpha: 255, Space: SpaceRGB}
	b.ToHSL()
	want := ByteColor{C0: 0, C1: 255, C2: 128, Alpha: 255, Space: SpaceHSL}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("red to HSL (-want +got):\n%s", diff)
	}
	b.ToColorSpace(SpaceRGB)
	// Luminance 128/255 is slightly above 0.5, so green and blue may pick up 1.
	if b.C0 != 255 || b.C1 > 1 || b.C2 > 1 {
		t.Errorf("back to RGB: got %v", b)
	}
}

func TestBytePreMultiplyDivide(t *testing.T) {
	c := ByteColor{C0: 200, C1: 100, C2: 50, Alpha: 128, Space: SpaceRGB}
	p := c
	p.PreMultiply()
	if p.C0 != Mult(128, 200) || p.Alpha != 128 {
		t.Errorf("PreMultiply: got %v", p)
	}
	p.DivideAlpha()
	for _, d := range []int{absDiff(p.C0, c.C0), absDiff(p.C1, c.C1), absDiff(p.C2, c.C2)} {
		if d > 1 {
			t.Errorf("DivideAlpha(PreMultiply(c)): got %v, want %v", p, c)
		}
	}

	z := ByteColor{C0: 10, C1: 20, C2: 30, Alpha: 0}
	z.DivideAlpha()
	if z.C0 != 0 || z.C1 != 0 || z.C2 != 0 {
		t.Errorf("DivideAlpha with zero alpha: got %v", z)
	}
}

func TestUintPacking(t *testing.T) {
	c := ByteColor{C0: 0x12, C1: 0x34, C2: 0x56, Alpha: 0x78, Space: SpaceRGB}
	if got := c.ToUint(false); got != 0x78123456 {
		t.Errorf("ToUint: got %#x, want 0x78123456", got)
	}
	if got := FromUint(0x78123456, false, SpaceRGB); got != c {
		t.Errorf("FromUint: got %v, want %v", got, c)
	}
}

func TestUintPremultipliedRoundTrip(t *testing.T) {
	for a := 1; a < 256; a += 7 {
		tol := int(127.5/float64(a) + 0.5)
		for v := 0; v < 256; v += 5 {
			c := ByteColor{C0: uint8(v), C1: uint8(255 - v), C2: uint8(v / 2), Alpha: uint8(a), Space: SpaceRGB}
			got := FromUint(c.ToUint(true), true, SpaceRGB)
			if got.Alpha != c.Alpha {
				t.Fatalf("alpha changed: got %v, want %v", got, c)
			}
			if absDiff(got.C0, c.C0) > tol || absDiff(got.C1, c.C1) > tol || absDiff(got.C2, c.C2) > tol {
				t.Fatalf("round trip at alpha %d: got %v, want %v (tolerance %d)", a, got, c, tol)
			}
		}
	}
	// Opaque colors survive exactly.
	c := ByteColor{C0: 7, C1: 77, C2: 177, Alpha: 255, Space: SpaceRGB}
	if got := FromUint(c.ToUint(true), true, SpaceRGB); got != c {
		t.Errorf("opaque round trip: got %v, want %v", got, c)
	}
}

func TestFromUint_ConvertsSpace(t *testing.T) {
	got := FromUint(0xffff0000, false, SpaceHSV)
	want := ByteColor{C0: 0, C1: 255, C2: 255, Alpha: 255, Space: SpaceHSV}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromUint to HSV (-want +got):\n%s", diff)
	}
}

func TestByteClampAndWrap(t *testing.T) {
	c := ByteColor{C0: 200, C1: 100, C2: 50, Alpha: 255, Space: SpaceRGB}
	clamped := c
	clamped.Clamp(mapping.Range{Lower: 0.25, Upper: 0.75})
	want := ByteColor{C0: 191, C1: 100, C2: 64, Alpha: 191, Space: SpaceRGB}
	if diff := cmp.Diff(want, clamped); diff != "" {
		t.Errorf("Clamp (-want +got):\n%s", diff)
	}

	// Every byte is inside [0,1], so wrapping into the unit range keeps it.
	wrapped := c
	wrapped.Wrap(mapping.DefaultRange)
	if diff := cmp.Diff(c, wrapped); diff != "" {
		t.Errorf("Wrap (-want +got):\n%s", diff)
	}
}

func TestByteComponentAccess(t *testing.T) {
	c := ByteColor{C0: 1, C1: 2, C2: 3, Alpha: 4}
	if c.Component(ChannelLuminance) != 3 || c.Component(ChannelHue) != 1 || c.Component(ChannelAlpha) != 4 {
		t.Errorf("Component: unexpected slot mapping for %v", c)
	}
	c.SetComponent(ChannelSaturation, 9)
	if c.C1 != 9 {
		t.Errorf("SetComponent(saturation): got %v", c)
	}
}

func TestByteColorToAlpha(t *testing.T) {
	c := ByteColor{C0: 128, C1: 128, C2: 128, Alpha: 255, Space: SpaceRGB}
	c.ColorToAlpha(ByteColor{C0: 255, C1: 255, C2: 255, Alpha: 255, Space: SpaceRGB})
	if c.C0 != 0 || absDiff(c.Alpha, 127) > 1 {
		t.Errorf("ColorToAlpha: got %v", c)
	}
}
