package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/band"
	"github.com/ironsheep/color-tools-mcp/internal/blend"
	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/mapping"
)

// Composite blends src onto dst pixel by pixel with b, using the opacities
// from b.Defaults(). A nil blender composites with SrcOver.
//
// srcRect selects the part of src to use; the zero rectangle means all of
// it. The selection is placed with its top-left corner at offset in dst and
// clipped to dst. A 3-channel source counts as opaque.
//
// It returns the number of pixels written.
func Composite(dst, src PixelSource, b blend.Blender, srcRect image.Rectangle, offset image.Point) (int, error) {
	if b == nil {
		b = blend.NewSrcOver()
	}
	visible, shift, err := place(dst, src, srcRect, offset)
	if err != nil || visible.Empty() {
		return 0, err
	}

	cfg := b.Defaults()
	so := color.FloatToByte(cfg.SourceOpacity)
	to := color.FloatToByte(cfg.TargetOpacity)
	opaqueSrc := src.NumChannels() < 4

	n := 0
	for y := visible.Min.Y; y < visible.Max.Y; y++ {
		for x := visible.Min.X; x < visible.Max.X; x++ {
			sc, _ := src.Pixel(x+shift.X, y+shift.Y)
			tc, _ := dst.Pixel(x, y)
			if opaqueSrc {
				sc.Alpha = 255
			}
			if dst.SetPixel(x, y, blend.BlendByte(b, sc, tc, so, to)) {
				n++
			}
		}
	}
	return n, nil
}

// place resolves where srcRect of src lands in dst when its top-left corner
// is put at offset. It returns the visible part in dst coordinates and the
// shift that maps a dst point back into src. The zero srcRect selects all of
// src.
func place(dst, src PixelSource, srcRect image.Rectangle, offset image.Point) (image.Rectangle, image.Point, error) {
	srcBounds := image.Rect(0, 0, src.Width(), src.Height())
	if srcRect.Empty() {
		srcRect = srcBounds
	} else if !srcRect.In(srcBounds) {
		return image.Rectangle{}, image.Point{}, fmt.Errorf("source region (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
			srcRect.Min.X, srcRect.Min.Y, srcRect.Max.X, srcRect.Max.Y, srcBounds.Max.X, srcBounds.Max.Y)
	}
	target := srcRect.Sub(srcRect.Min).Add(offset)
	visible := target.Intersect(image.Rect(0, 0, dst.Width(), dst.Height()))
	return visible, srcRect.Min.Sub(target.Min), nil
}

// ErrNoAlpha is returned by Mask for a destination without an alpha channel.
var ErrNoAlpha = errors.New("image has no alpha channel")

// ChannelTransfer selects a channel of a source image and where it goes.
//
// Source is read in SourceSpace and Target written in TargetSpace, each
// resolved with color.SpaceForChannel, so the spaces only matter for hue
// and saturation. A nil Func passes the value through unchanged.
// SourceRect and Offset place the source as in Composite.
type ChannelTransfer struct {
	Source      color.ChannelID
	Target      color.ChannelID
	SourceSpace color.ColorSpace
	TargetSpace color.ColorSpace
	Func        mapping.Mapping
	SourceRect  image.Rectangle
	Offset      image.Point
}

func (t ChannelTransfer) read(p color.ByteColor) uint8 {
	p.ToColorSpace(color.SpaceForChannel(t.Source, t.SourceSpace))
	v := p.Component(t.Source)
	if t.Func != nil {
		v = color.FloatToByte(t.Func.Call(color.ByteToFloat(v)))
	}
	return v
}

// transfer runs fn for every destination pixel covered by the placed source,
// and writes back what it returns. It returns the number of pixels written.
func transfer(dst, src PixelSource, t ChannelTransfer, fn func(v uint8, tc color.ByteColor) color.ByteColor) (int, error) {
	visible, shift, err := place(dst, src, t.SourceRect, t.Offset)
	if err != nil || visible.Empty() {
		return 0, err
	}
	n := 0
	for y := visible.Min.Y; y < visible.Max.Y; y++ {
		for x := visible.Min.X; x < visible.Max.X; x++ {
			sc, _ := src.Pixel(x+shift.X, y+shift.Y)
			tc, _ := dst.Pixel(x, y)
			if dst.SetPixel(x, y, fn(t.read(sc), tc)) {
				n++
			}
		}
	}
	return n, nil
}

// SetChannel replaces the Target channel of dst with the Source channel of
// src, passed through t.Func. The other channels of dst are kept. It returns
// the number of pixels written.
func SetChannel(dst, src PixelSource, t ChannelTransfer) (int, error) {
	space := color.SpaceForChannel(t.Target, t.TargetSpace)
	return transfer(dst, src, t, func(v uint8, tc color.ByteColor) color.ByteColor {
		tc.ToColorSpace(space)
		tc.SetComponent(t.Target, v)
		return tc
	})
}

// Mask multiplies the alpha of dst by the Source channel of src, passed
// through t.Func. t.Target is ignored. dst must have an alpha channel.
func Mask(dst, src PixelSource, t ChannelTransfer) (int, error) {
	if dst.NumChannels() < 4 {
		return 0, ErrNoAlpha
	}
	return transfer(dst, src, t, func(v uint8, tc color.ByteColor) color.ByteColor {
		tc.Alpha = color.Mult(v, tc.Alpha)
		return tc
	})
}

// ColorDifference returns an opaque gray image of the size of src whose
// pixels are the mean squared RGB error between src and ref. A non-nil f
// is applied to each error and the result clamped to [0,1].
func ColorDifference(src PixelSource, ref color.Color, f mapping.Mapping) *Bitmap {
	out := NewBitmap(src.Width(), src.Height())
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			p, _ := src.Pixel(x, y)
			d := color.FromByteColor(p).MeanSquaredError(ref)
			if f != nil {
				d = mapping.Clamp(f.Call(d), mapping.DefaultRange)
			}
			out.SetPixel(x, y, color.Color{R: d, G: d, B: d, A: 1}.ByteColor(color.SpaceRGB))
		}
	}
	return out
}

// ExtractChannel returns channel ch of every pixel of src, read in the space
// color.SpaceForChannel picks for ch and space. The result is indexed
// [y][x].
func ExtractChannel(src PixelSource, ch color.ChannelID, space color.ColorSpace) [][]float64 {
	space = color.SpaceForChannel(ch, space)
	rows := make([][]float64, src.Height())
	for y := range rows {
		rows[y] = make([]float64, src.Width())
		for x := range rows[y] {
			p, _ := src.Pixel(x, y)
			f := p.ToFloat()
			f.ToColorSpace(space)
			rows[y][x] = f.Component(ch)
		}
	}
	return rows
}

// Luminize moves the luminance of dst towards that of src by amount in
// [0,1], keeping the hue of dst. A second pass restores saturation from the
// original dst, so that bright areas keep a usable saturation.
func Luminize(dst *Bitmap, src PixelSource, amount float64) error {
	lum := blend.NewChannel()
	lum.SrcChannel = color.ChannelLuminance
	lum.DestChannel = color.ChannelLuminance
	lum.SourceOpacity = amount
	lum.TargetOpacity = 1 - amount

	sat := blend.NewChannel()
	sat.SrcChannel = color.ChannelSaturation
	sat.DestChannel = color.ChannelSaturation
	sat.SrcSpace = color.SpaceHSV
	sat.DestSpace = color.SpaceHSL
	sat.SourceOpacity = amount
	sat.TargetOpacity = 1 - amount

	orig := dst.Copy()
	if _, err := Composite(dst, src, lum, image.Rectangle{}, image.Point{}); err != nil {
		return fmt.Errorf("luminance pass: %w", err)
	}
	if _, err := Composite(dst, orig, sat, image.Rectangle{}, image.Point{}); err != nil {
		return fmt.Errorf("saturation pass: %w", err)
	}
	return nil
}

// ColorToAlpha removes c from every pixel of bm; see
// color.FloatColor.ColorToAlpha.
func ColorToAlpha(bm PixelSource, c color.Color) {
	ref := c.FloatColor(color.SpaceRGB)
	forEach(bm, func(p color.ByteColor) color.ByteColor {
		f := p.ToFloat()
		f.ColorToAlpha(ref)
		return f.ToByte()
	})
}

// Colorize replaces every pixel with the color of b at the pixel's HSV
// value, alpha included.
func Colorize(bm PixelSource, b *band.ColorBand) {
	forEach(bm, func(p color.ByteColor) color.ByteColor {
		p.ToHSV()
		return b.EvalByte(color.ByteToFloat(p.C2), color.SpaceRGB)
	})
}

func forEach(bm PixelSource, fn func(color.ByteColor) color.ByteColor) {
	for y := 0; y < bm.Height(); y++ {
		for x := 0; x < bm.Width(); x++ {
			p, ok := bm.Pixel(x, y)
			if !ok {
				continue
			}
			bm.SetPixel(x, y, fn(p))
		}
	}
}

// Fit returns img resized to width x height with Lanczos resampling, or
// img itself when it already has that size.
func Fit(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// CropRegion returns the part of img inside r, which must lie within the
// image bounds.
func CropRegion(img image.Image, r image.Rectangle) (*image.NRGBA, error) {
	bounds := img.Bounds()
	if !r.In(bounds) || r.Empty() {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return imaging.Crop(img, r), nil
}
