package imaging

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/mapping"
)

// RGBAColor represents an RGBA color with 8-bit components.
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha component (0-255, 255 = opaque)
}

// HSLColor represents a color in HSL space in the units people usually
// quote.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// HSVColor represents a color in HSV space.
type HSVColor struct {
	H int `json:"h"` // Hue: 0-359 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	V int `json:"v"` // Value: 0-100 percent
}

// LabColor is a CIE L*a*b* color (D65), L in [0,1].
type LabColor struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// ColorResult describes one color in several representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // "#rrggbbaa"
	RGBA RGBAColor `json:"rgba"` // 8-bit components
	HSL  HSLColor  `json:"hsl"`
	HSV  HSVColor  `json:"hsv"`
	Lab  LabColor  `json:"lab"`
}

// Describe returns c in every representation of ColorResult. Components are
// clamped to [0,1] first.
func Describe(c color.Color) ColorResult {
	c.Clamp(mapping.DefaultRange)
	b := c.ByteColor(color.SpaceRGB)
	hsl := c.FloatColor(color.SpaceHSL)
	hsv := c.FloatColor(color.SpaceHSV)
	l, a, lb := c.Lab()
	return ColorResult{
		Hex:  c.Hex(),
		RGBA: RGBAColor{R: b.C0, G: b.C1, B: b.C2, A: b.Alpha},
		HSL:  HSLColor{H: degrees(hsl.C0), S: percent(hsl.C1), L: percent(hsl.C2)},
		HSV:  HSVColor{H: degrees(hsv.C0), S: percent(hsv.C1), V: percent(hsv.C2)},
		Lab:  LabColor{L: round4(l), A: round4(a), B: round4(lb)},
	}
}

func degrees(h float64) int { return int(math.Round(h*360)) % 360 }
func percent(v float64) int { return int(math.Round(v * 100)) }
func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// SampleColor returns the color of the pixel at (x, y).
//
// Coordinates are relative to the image bounds' top-left corner, 0-based.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	px, py := bounds.Min.X+x, bounds.Min.Y+y
	if !image.Pt(px, py).In(bounds) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, bounds.Dx(), bounds.Dy())
	}
	r := Describe(color.FromStd(img.At(px, py)))
	return &r, nil
}

// LabeledPoint is a pixel coordinate with an optional label.
type LabeledPoint struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

// LabeledColorResult is a color sample with its location and label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains color samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples several points. It fails without partial
// results if any point is outside the image.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region is a rectangle of an image: (X1, Y1) inclusive, (X2, Y2)
// exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect returns r as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// ColorFrequency is a quantized color and its share of the pixels.
type ColorFrequency struct {
	Hex        string      `json:"hex"`        // "#rrggbbaa" of the quantized color
	Percentage float64     `json:"percentage"` // share of pixels, 0-100
	Color      color.Color `json:"-"`
}

// DominantColorsResult lists the most frequent colors, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
	// Palette is the same colors as a color set, ready to build a band from.
	Palette *color.ColorSet `json:"-"`
}

// DominantColors finds the count most common colors of img, or of region
// when it is not nil.
//
// Colors are quantized by clearing the low four bits of each 8-bit RGB
// component, so #f0f0f0 and #fafafa count as the same color. Alpha is
// ignored. Ties are broken by hex value to keep the output stable.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if region != nil {
		cropped, err := CropRegion(img, region.Rect())
		if err != nil {
			return nil, err
		}
		img = cropped
	}
	bounds := img.Bounds()

	counts := make(map[[3]uint8]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.FromStd(img.At(x, y)).ByteColor(color.SpaceRGB)
			counts[[3]uint8{c.C0 &^ 0x0f, c.C1 &^ 0x0f, c.C2 &^ 0x0f}]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for k, n := range counts {
		c := color.FromBytes(k[0], k[1], k[2], 255)
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: float64(n) / float64(total) * 100,
			Color:      c,
		})
	}
	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})
	if count >= 0 && len(colors) > count {
		colors = colors[:count]
	}

	palette := color.NewColorSet()
	for _, f := range colors {
		palette.Add(f.Color)
	}
	return &DominantColorsResult{Colors: colors, Palette: palette}, nil
}
