// Package imaging applies the color engine to whole images for the MCP
// server.
//
// It loads and caches image files, wraps them as editable bitmaps, runs
// blend operators and color bands over their pixels, samples colors and
// encodes results for transport or writes them to disk.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Pixels
//
// A Bitmap stores non-premultiplied 8-bit RGBA. Pixels are read and written
// as color.ByteColor values; colors in HSV or HSL are converted to RGB when
// stored. A bitmap made from an image without alpha has 3 channels and
// stays opaque.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Cached images are shared
// and must not be modified; FromImage makes a private copy. A Bitmap is not
// safe for concurrent modification.
//
// # Color Representation
//
// Sampled colors are returned in several formats:
//   - Hex: "#rrggbbaa"
//   - RGBA: 8-bit components (0-255)
//   - HSL and HSV: hue in degrees (0-359), the rest in percent (0-100)
//   - Lab: CIE L*a*b* with L in [0,1]
package imaging
