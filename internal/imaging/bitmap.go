package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// PixelSource is a rectangular array of pixels read and written as byte
// colors. Coordinates are 0-based from the top-left corner.
//
// Pixel and SetPixel report false for coordinates outside the array and
// leave it unchanged.
type PixelSource interface {
	Width() int
	Height() int
	// NumChannels is 4 when the pixels carry alpha and 3 otherwise.
	NumChannels() int
	Pixel(x, y int) (color.ByteColor, bool)
	SetPixel(x, y int, c color.ByteColor) bool
}

// Bitmap is an editable PixelSource backed by an *image.NRGBA.
//
// A 3-channel bitmap keeps every pixel opaque: SetPixel ignores the alpha of
// the color it is given.
type Bitmap struct {
	img      *image.NRGBA
	channels int
}

// NewBitmap returns a transparent 4-channel bitmap.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		img:      image.NewNRGBA(image.Rect(0, 0, width, height)),
		channels: 4,
	}
}

// FromImage copies img into a new bitmap whose origin is (0,0). Images
// without an alpha channel give a 3-channel bitmap.
func FromImage(img image.Image) *Bitmap {
	return &Bitmap{
		img:      imaging.Clone(img),
		channels: channels(img),
	}
}

func (b *Bitmap) Width() int       { return b.img.Rect.Dx() }
func (b *Bitmap) Height() int      { return b.img.Rect.Dy() }
func (b *Bitmap) NumChannels() int { return b.channels }

// Bounds returns the rectangle (0,0)-(Width,Height).
func (b *Bitmap) Bounds() image.Rectangle { return b.img.Rect }

// Image returns the backing image. It is shared with b.
func (b *Bitmap) Image() *image.NRGBA { return b.img }

func (b *Bitmap) inside(x, y int) bool {
	return image.Pt(x, y).In(b.img.Rect)
}

// Pixel returns the RGB color at (x, y).
func (b *Bitmap) Pixel(x, y int) (color.ByteColor, bool) {
	if !b.inside(x, y) {
		return color.ByteColor{}, false
	}
	p := b.img.Pix[b.img.PixOffset(x, y):]
	return color.ByteColor{C0: p[0], C1: p[1], C2: p[2], Alpha: p[3], Space: color.SpaceRGB}, true
}

// SetPixel stores c at (x, y), converting it to RGB first.
func (b *Bitmap) SetPixel(x, y int, c color.ByteColor) bool {
	if !b.inside(x, y) {
		return false
	}
	c.ToRGB()
	p := b.img.Pix[b.img.PixOffset(x, y):]
	p[0], p[1], p[2] = c.C0, c.C1, c.C2
	if b.channels >= 4 {
		p[3] = c.Alpha
	} else {
		p[3] = 255
	}
	return true
}

// At returns the color at (x, y), or an error naming the coordinates when
// they fall outside b.
func (b *Bitmap) At(x, y int) (color.Color, error) {
	c, ok := b.Pixel(x, y)
	if !ok {
		return color.Color{}, fmt.Errorf("pixel (%d,%d) outside bitmap bounds %dx%d", x, y, b.Width(), b.Height())
	}
	return color.FromByteColor(c), nil
}

// Fill sets every pixel to c.
func (b *Bitmap) Fill(c color.Color) {
	bc := c.ByteColor(color.SpaceRGB)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			b.SetPixel(x, y, bc)
		}
	}
}

// Copy returns an independent copy of b.
func (b *Bitmap) Copy() *Bitmap {
	return &Bitmap{img: imaging.Clone(b.img), channels: b.channels}
}
