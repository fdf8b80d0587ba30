package color

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-tools-mcp/internal/mapping"
)

const tolerance = 1e-9

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func nearFloat(a, b FloatColor, eps float64) bool {
	return a.Space == b.Space &&
		near(a.C0, b.C0, eps) && near(a.C1, b.C1, eps) &&
		near(a.C2, b.C2, eps) && near(a.Alpha, b.Alpha, eps)
}

var sampleRGB = []FloatColor{
	{C0: 0.2, C1: 0.4, C2: 0.6, Alpha: 1, Space: SpaceRGB},
	{C0: 0.9, C1: 0.1, C2: 0.3, Alpha: 0.5, Space: SpaceRGB},
	{C0: 0.5, C1: 0.5, C2: 0.1, Alpha: 1, Space: SpaceRGB},
	{C0: 0.1, C1: 0.8, C2: 0.2, Alpha: 0.25, Space: SpaceRGB},
	{C0: 0.7, C1: 0.2, C2: 0.9, Alpha: 1, Space: SpaceRGB},
	{C0: 1, C1: 0, C2: 0, Alpha: 1, Space: SpaceRGB},
	{C0: 0.3, C1: 0.3, C2: 0.95, Alpha: 1, Space: SpaceRGB},
}

func TestFloatByteRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		if got := FloatToByte(ByteToFloat(uint8(b))); got != uint8(b) {
			t.Errorf("FloatToByte(ByteToFloat(%d)): got %d", b, got)
		}
	}
	for i := 0; i <= 1000; i++ {
		v := float64(i) / 1000
		if got := ByteToFloat(FloatToByte(v)); !near(got, v, 1.0/510+1e-12) {
			t.Errorf("ByteToFloat(FloatToByte(%v)): got %v", v, got)
		}
	}
}

func TestFloatToByte_Clamps(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-1, 0},
		{2, 255},
		{math.NaN(), 0},
		{0.5, 128},
	}
	for _, tt := range tests {
		if got := FloatToByte(tt.in); got != tt.want {
			t.Errorf("FloatToByte(%v): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for _, c := range sampleRGB {
		hsv := c
		hsv.ToHSV()
		if hsv.Space != SpaceHSV {
			t.Fatalf("ToHSV left space %v", hsv.Space)
		}
		back := hsv
		back.ToRGB()
		if !nearFloat(back, c, tolerance) {
			t.Errorf("RGB->HSV->RGB: got %v, want %v", back, c)
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, c := range sampleRGB {
		hsl := c
		hsl.ToHSL()
		back := hsl
		back.ToRGB()
		if !nearFloat(back, c, tolerance) {
			t.Errorf("RGB->HSL->RGB: got %v, want %v", back, c)
		}
	}
}

func TestHSVAndHSLMatchColorful(t *testing.T) {
	for _, c := range sampleRGB {
		ref := colorful.Color{R: c.C0, G: c.C1, B: c.C2}

		h, s, v := ref.Hsv()
		hsv := c.In(SpaceHSV)
		if !near(hsv.C0, h/360, 1e-9) || !near(hsv.C1, s, 1e-9) || !near(hsv.C2, v, 1e-9) {
			t.Errorf("HSV of %v: got (%v,%v,%v), colorful (%v,%v,%v)",
				c, hsv.C0, hsv.C1, hsv.C2, h/360, s, v)
		}

		h, s, l := ref.Hsl()
		hsl := c.In(SpaceHSL)
		if !near(hsl.C0, h/360, 1e-9) || !near(hsl.C1, s, 1e-9) || !near(hsl.C2, l, 1e-9) {
			t.Errorf("HSL of %v: got (%v,%v,%v), colorful (%v,%v,%v)",
				c, hsl.C0, hsl.C1, hsl.C2, h/360, s, l)
		}
	}
}

func TestHSVToHSLGoesThroughRGB(t *testing.T) {
	c := sampleRGB[0]
	hsv := c.In(SpaceHSV)
	hsl := hsv.In(SpaceHSL)
	want := c.In(SpaceHSL)
	if !nearFloat(hsl, want, tolerance) {
		t.Errorf("HSV->HSL: got %v, want %v", hsl, want)
	}
}

func TestAchromaticConversion(t *testing.T) {
	gray := FloatColor{C0: 0.4, C1: 0.4, C2: 0.4, Alpha: 1, Space: SpaceRGB}

	hsv := gray.In(SpaceHSV)
	if hsv.C0 != 0 || hsv.C1 != 0 || hsv.C2 != 0.4 {
		t.Errorf("gray to HSV: got %v", hsv)
	}
	hsl := gray.In(SpaceHSL)
	if hsl.C0 != 0 || hsl.C1 != 0 || hsl.C2 != 0.4 {
		t.Errorf("gray to HSL: got %v", hsl)
	}

	// Zero saturation must give (v,v,v) whatever the hue slot holds.
	for _, space := range []ColorSpace{SpaceHSV, SpaceHSL} {
		c := FloatColor{C0: 0.7, C1: 0, C2: 0.3, Alpha: 1, Space: space}
		c.ToRGB()
		if c.C0 != 0.3 || c.C1 != 0.3 || c.C2 != 0.3 {
			t.Errorf("%v zero saturation: got %v, want (0.3,0.3,0.3)", space, c)
		}
	}

	black := FloatColor{Alpha: 1, Space: SpaceRGB}
	if got := black.In(SpaceHSV); got.C1 != 0 {
		t.Errorf("black saturation: got %v, want 0", got.C1)
	}
}

func TestHueOneIsRed(t *testing.T) {
	c := FloatColor{C0: 1, C1: 1, C2: 1, Alpha: 1, Space: SpaceHSV}
	c.ToRGB()
	want := FloatColor{C0: 1, C1: 0, C2: 0, Alpha: 1, Space: SpaceRGB}
	if !nearFloat(c, want, tolerance) {
		t.Errorf("hue 1.0: got %v, want %v", c, want)
	}
}

func TestToColorSpace_NoOp(t *testing.T) {
	c := sampleRGB[1]
	got := c
	got.ToColorSpace(SpaceUndefined)
	if got != c {
		t.Errorf("ToColorSpace(undefined) changed the color: %v", got)
	}
	got.ToColorSpace(SpaceRGB)
	if got != c {
		t.Errorf("ToColorSpace(RGB) on RGB changed the color: %v", got)
	}
}

func TestComponentAccess(t *testing.T) {
	c := FloatColor{C0: 0.1, C1: 0.2, C2: 0.3, Alpha: 0.4}
	tests := []struct {
		ch   ChannelID
		want float64
	}{
		{ChannelRed, 0.1},
		{ChannelHue, 0.1},
		{ChannelGreen, 0.2},
		{ChannelSaturation, 0.2},
		{ChannelBlue, 0.3},
		{ChannelValue, 0.3},
		{ChannelLuminance, 0.3},
		{ChannelAlpha, 0.4},
	}
	for _, tt := range tests {
		if got := c.Component(tt.ch); got != tt.want {
			t.Errorf("Component(%v): got %v, want %v", tt.ch, got, tt.want)
		}
		d := c
		d.SetComponent(tt.ch, 0.9)
		if d.Component(tt.ch) != 0.9 {
			t.Errorf("SetComponent(%v) did not stick: %v", tt.ch, d)
		}
	}
}

func TestSpaceForChannel(t *testing.T) {
	tests := []struct {
		ch   ChannelID
		hint ColorSpace
		want ColorSpace
	}{
		{ChannelRed, SpaceHSL, SpaceRGB},
		{ChannelGreen, SpaceUndefined, SpaceRGB},
		{ChannelBlue, SpaceHSV, SpaceRGB},
		{ChannelValue, SpaceHSL, SpaceHSV},
		{ChannelLuminance, SpaceHSV, SpaceHSL},
		{ChannelHue, SpaceHSL, SpaceHSL},
		{ChannelHue, SpaceUndefined, SpaceHSV},
		{ChannelSaturation, SpaceRGB, SpaceHSV},
		{ChannelAlpha, SpaceUndefined, SpaceRGB},
		{ChannelAlpha, SpaceHSL, SpaceHSL},
	}
	for _, tt := range tests {
		if got := SpaceForChannel(tt.ch, tt.hint); got != tt.want {
			t.Errorf("SpaceForChannel(%v, %v): got %v, want %v", tt.ch, tt.hint, got, tt.want)
		}
	}
}

func TestPreMultiplyDivideAlpha(t *testing.T) {
	for _, c := range sampleRGB {
		got := c
		got.PreMultiply()
		if got.Alpha != c.Alpha {
			t.Errorf("PreMultiply changed alpha: %v", got)
		}
		got.DivideAlpha()
		if !nearFloat(got, c, tolerance) {
			t.Errorf("DivideAlpha(PreMultiply(c)): got %v, want %v", got, c)
		}
	}

	zero := FloatColor{C0: 0.5, C1: 0.5, C2: 0.5, Alpha: 0, Space: SpaceRGB}
	zero.DivideAlpha()
	if zero.C0 != 0 || zero.C1 != 0 || zero.C2 != 0 {
		t.Errorf("DivideAlpha with zero alpha: got %v, want zero components", zero)
	}
}

func TestClampAndWrap(t *testing.T) {
	c := FloatColor{C0: -0.5, C1: 1.5, C2: 0.5, Alpha: 2, Space: SpaceRGB}
	clamped := c
	clamped.Clamp(mapping.DefaultRange)
	want := FloatColor{C0: 0, C1: 1, C2: 0.5, Alpha: 1, Space: SpaceRGB}
	if clamped != want {
		t.Errorf("Clamp: got %v, want %v", clamped, want)
	}

	wrapped := c
	wrapped.Wrap(mapping.DefaultRange)
	want = FloatColor{C0: 0.5, C1: 0.5, C2: 0.5, Alpha: 1, Space: SpaceRGB}
	if !nearFloat(wrapped, want, tolerance) {
		t.Errorf("Wrap: got %v, want %v", wrapped, want)
	}

	huge := FloatColor{C0: 1e17, C1: -1e17, C2: 1e9 + 0.25, Alpha: 1, Space: SpaceHSV}
	huge.Wrap(mapping.DefaultRange)
	want = FloatColor{C0: 1, C1: 0, C2: 0.25, Alpha: 1, Space: SpaceHSV}
	if !nearFloat(huge, want, tolerance) {
		t.Errorf("Wrap of large values: got %v, want %v", huge, want)
	}
}

func TestColorToAlpha(t *testing.T) {
	white := FloatColor{C0: 1, C1: 1, C2: 1, Alpha: 1, Space: SpaceRGB}
	black := FloatColor{Alpha: 1, Space: SpaceRGB}

	tests := []struct {
		name string
		c    FloatColor
		ref  FloatColor
		want FloatColor
	}{
		{
			name: "gray over white becomes translucent black",
			c:    FloatColor{C0: 0.5, C1: 0.5, C2: 0.5, Alpha: 1, Space: SpaceRGB},
			ref:  white,
			want: FloatColor{C0: 0, C1: 0, C2: 0, Alpha: 0.5, Space: SpaceRGB},
		},
		{
			name: "gray over black becomes translucent white",
			c:    FloatColor{C0: 0.5, C1: 0.5, C2: 0.5, Alpha: 1, Space: SpaceRGB},
			ref:  black,
			want: FloatColor{C0: 1, C1: 1, C2: 1, Alpha: 0.5, Space: SpaceRGB},
		},
		{
			name: "reference color becomes transparent",
			c:    white,
			ref:  white,
			want: FloatColor{C0: 1, C1: 1, C2: 1, Alpha: 0, Space: SpaceRGB},
		},
		{
			name: "existing alpha is multiplied in",
			c:    FloatColor{C0: 0.5, C1: 0.5, C2: 0.5, Alpha: 0.5, Space: SpaceRGB},
			ref:  white,
			want: FloatColor{C0: 0, C1: 0, C2: 0, Alpha: 0.25, Space: SpaceRGB},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c
			got.ColorToAlpha(tt.ref)
			if !nearFloat(got, tt.want, tolerance) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorToAlpha_KeepsSpace(t *testing.T) {
	c := FloatColor{C0: 0.5, C1: 0.5, C2: 0.5, Alpha: 1, Space: SpaceRGB}.In(SpaceHSV)
	c.ColorToAlpha(FloatColor{C0: 1, C1: 1, C2: 1, Alpha: 1, Space: SpaceRGB})
	if c.Space != SpaceHSV {
		t.Errorf("space after ColorToAlpha: got %v, want HSV", c.Space)
	}
	if !near(c.Alpha, 0.5, tolerance) || !near(c.C2, 0, tolerance) {
		t.Errorf("ColorToAlpha in HSV: got %v", c)
	}
}
