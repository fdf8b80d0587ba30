package blend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// Config holds the default inputs of a blender. They are only consulted by
// Apply; Blend, BlendColor and BlendByte take every input explicitly.
type Config struct {
	Color0        color.Color // source
	Color1        color.Color // destination
	SourceOpacity float64
	TargetOpacity float64
}

// DefaultConfig returns black over white at full opacity.
func DefaultConfig() Config {
	return Config{
		Color0:        color.Black,
		Color1:        color.White,
		SourceOpacity: 1,
		TargetOpacity: 1,
	}
}

// Defaults returns c. Blenders embed Config, so this satisfies the Defaults
// method of Blender.
func (c Config) Defaults() Config { return c }

// Blender is a blend operator.
type Blender interface {
	// Defaults returns the inputs Apply falls back to.
	Defaults() Config
	// BlendFloat blends src over dst. The opacities scale the alpha of the
	// respective input.
	BlendFloat(src, dst color.FloatColor, srcOpacity, dstOpacity float64) color.FloatColor
}

// ByteBlender is implemented by operators with a lookup table byte path.
type ByteBlender interface {
	Blender
	BlendBytes(src, dst color.ByteColor, srcOpacity, dstOpacity uint8) color.ByteColor
}

// Blend blends src over dst with b and logs the call at debug level.
func Blend(b Blender, src, dst color.FloatColor, srcOpacity, dstOpacity float64) color.FloatColor {
	r := b.BlendFloat(src, dst, srcOpacity, dstOpacity)
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("blend", "op", Name(b), "src", src, "dst", dst,
			"srcOpacity", srcOpacity, "dstOpacity", dstOpacity, "result", r)
	}
	return r
}

// BlendColor blends two Colors with b.
func BlendColor(b Blender, c0, c1 color.Color, srcOpacity, dstOpacity float64) color.Color {
	r := Blend(b, c0.FloatColor(color.SpaceRGB), c1.FloatColor(color.SpaceRGB), srcOpacity, dstOpacity)
	return color.FromFloatColor(r)
}

// BlendByte blends two byte colors with b. Operators without a byte path
// go through BlendFloat.
func BlendByte(b Blender, src, dst color.ByteColor, srcOpacity, dstOpacity uint8) color.ByteColor {
	if bb, ok := b.(ByteBlender); ok {
		return bb.BlendBytes(src, dst, srcOpacity, dstOpacity)
	}
	r := b.BlendFloat(src.ToFloat(), dst.ToFloat(), color.ByteToFloat(srcOpacity), color.ByteToFloat(dstOpacity))
	return r.ToByte()
}

// Args are the optional inputs of Apply. A nil field is taken from the
// blender's Defaults.
type Args struct {
	Color0        *color.Color
	Color1        *color.Color
	SourceOpacity *float64
	TargetOpacity *float64
}

// Apply blends with b, filling missing arguments from b.Defaults().
func Apply(b Blender, args Args) color.Color {
	cfg := b.Defaults()
	if args.Color0 != nil {
		cfg.Color0 = *args.Color0
	}
	if args.Color1 != nil {
		cfg.Color1 = *args.Color1
	}
	if args.SourceOpacity != nil {
		cfg.SourceOpacity = *args.SourceOpacity
	}
	if args.TargetOpacity != nil {
		cfg.TargetOpacity = *args.TargetOpacity
	}
	return BlendColor(b, cfg.Color0, cfg.Color1, cfg.SourceOpacity, cfg.TargetOpacity)
}

// WithConfig returns a copy of b that uses cfg. Blenders not defined in this
// package are returned unchanged.
func WithConfig(b Blender, cfg Config) Blender {
	switch v := b.(type) {
	case SrcOver:
		v.Config = cfg
		return v
	case *SrcOver:
		c := *v
		c.Config = cfg
		return c
	case Multiply:
		v.Config = cfg
		return v
	case *Multiply:
		c := *v
		c.Config = cfg
		return c
	case Darken:
		v.Config = cfg
		return v
	case *Darken:
		c := *v
		c.Config = cfg
		return c
	case Lighten:
		v.Config = cfg
		return v
	case *Lighten:
		c := *v
		c.Config = cfg
		return c
	case Plus:
		v.Config = cfg
		return v
	case *Plus:
		c := *v
		c.Config = cfg
		return c
	case Channel:
		v.Config = cfg
		return v
	case *Channel:
		c := *v
		c.Config = cfg
		return c
	}
	return b
}

// Names lists the operators ByName knows, in a stable order.
var Names = []string{"srcover", "multiply", "darken", "lighten", "plus", "channel"}

// ByName returns a blender with default settings for one of Names. The
// lookup ignores case, and "over" and "src-over" are accepted for srcover.
func ByName(name string) (Blender, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "srcover", "src-over", "src_over", "over":
		return NewSrcOver(), nil
	case "multiply":
		return NewMultiply(), nil
	case "darken":
		return NewDarken(), nil
	case "lighten":
		return NewLighten(), nil
	case "plus", "add":
		return NewPlus(), nil
	case "channel":
		return NewChannel(), nil
	}
	return nil, fmt.Errorf("unknown blend operator %q (valid: %s)", name, strings.Join(Names, ", "))
}

// Name returns the registry name of b, or its Go type for foreign
// implementations.
func Name(b Blender) string {
	switch b.(type) {
	case SrcOver, *SrcOver:
		return "srcover"
	case Multiply, *Multiply:
		return "multiply"
	case Darken, *Darken:
		return "darken"
	case Lighten, *Lighten:
		return "lighten"
	case Plus, *Plus:
		return "plus"
	case Channel, *Channel:
		return "channel"
	}
	return fmt.Sprintf("%T", b)
}
