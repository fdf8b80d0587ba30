package band

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

func mustBand(stops ...ColorStop) *ColorBand {
	b, err := New(stops...)
	if err != nil {
		panic(fmt.Sprintf("band: preset: %v", err))
	}
	return b
}

func hexStop(hex string, param float64) ColorStop {
	return ColorStop{Color: color.Hex(hex), Param: param}
}

// Rainbow runs violet, blue, cyan, green, yellow, orange and red in steps of
// 1/6.
func Rainbow() *ColorBand {
	return mustBand(
		ColorStop{color.Violet, 0},
		ColorStop{color.Blue, 1.0 / 6},
		ColorStop{color.Cyan, 2.0 / 6},
		ColorStop{color.Green, 3.0 / 6},
		ColorStop{color.Yellow, 4.0 / 6},
		ColorStop{color.Orange, 5.0 / 6},
		ColorStop{color.Red, 1},
	)
}

// Flame runs black, red, orange, yellow and white.
func Flame() *ColorBand {
	return mustBand(
		ColorStop{color.Black, 0},
		ColorStop{color.Red, 0.25},
		ColorStop{color.Orange, 0.5},
		ColorStop{color.Yellow, 0.75},
		ColorStop{color.White, 1},
	)
}

// Ice runs blue, cyan and white.
func Ice() *ColorBand {
	return mustBand(
		ColorStop{color.Blue, 0},
		ColorStop{color.Cyan, 0.5},
		ColorStop{color.White, 1},
	)
}

// Terrain is a height map palette from deep water through shore, forest and
// rock up to snow.
func Terrain() *ColorBand {
	return mustBand(
		hexStop("#00048dff", 0),
		hexStop("#015afbff", 0.30),
		hexStop("#23c2fcff", 0.34),
		hexStop("#bae086ff", 0.35),
		hexStop("#299e3bff", 0.39),
		hexStop("#0d751fff", 0.56),
		hexStop("#024500ff", 0.70),
		hexStop("#585144ff", 0.87),
		hexStop("#544f46ff", 0.95),
		hexStop("#827f78ff", 0.98),
		hexStop("#ffffffff", 1),
	)
}

// Heat runs from blue through violet and red to yellow and white.
func Heat() *ColorBand {
	return mustBand(
		hexStop("#0000ffff", 0),
		hexStop("#0cb6ffff", 0.2),
		hexStop("#8f68ffff", 0.4),
		hexStop("#ff0000ff", 0.6),
		hexStop("#ffec00ff", 0.8),
		hexStop("#ffffffff", 1),
	)
}

// Glow fades from c at zero alpha to c with HSL luminance maxL at c's alpha.
func Glow(c color.Color, maxL float64) *ColorBand {
	base := c.FloatColor(color.SpaceHSL)
	start := base
	start.Alpha = 0
	end := base
	end.C2 = maxL
	end.Alpha = c.A
	return mustBand(
		ColorStop{color.FromFloatColor(start), 0},
		ColorStop{color.FromFloatColor(end), 1},
	)
}

var presets = map[string]func() *ColorBand{
	"rainbow": Rainbow,
	"flame":   Flame,
	"ice":     Ice,
	"terrain": Terrain,
	"heat":    Heat,
}

// PresetNames returns the names Preset accepts, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Preset returns a fresh copy of a named preset. Glow takes arguments and
// is not available by name.
func Preset(name string) (*ColorBand, error) {
	f, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown color band %q (valid: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return f(), nil
}
