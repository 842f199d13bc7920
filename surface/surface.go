// Package surface implements a row-major, bounds-checked rectangular
// pixel buffer of a single fixed pixel format.
package surface

import "github.com/inkscribe/vraster2d/pixel"

// Surface owns a rectangular buffer of pixels, all sharing one Kind.
// Reads outside the bounds return the zero pixel of the surface's
// format; writes outside the bounds are silently clipped.
//
// Grounded on MeKo-Christian-agg_go's AlphaMaskU8/RenderingBuffer
// bounds-checked Attach/RowPtr idiom, simplified: this type owns one
// flat []pixel.Pixel row-major buffer instead of a raw byte buffer
// plus per-format stride/offset bookkeeping, since every pixel here is
// already a uniform-size Go value.
type Surface struct {
	Kind   pixel.Kind
	Width  int
	Height int
	pixels []pixel.Pixel
}

// New allocates a new Width x Height surface of the given pixel Kind,
// initialized to the zero pixel (transparent black for RGBA/Alpha8,
// black for RGB).
func New(kind pixel.Kind, width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s := &Surface{Kind: kind, Width: width, Height: height, pixels: make([]pixel.Pixel, width*height)}
	zero := zeroPixel(kind)
	for i := range s.pixels {
		s.pixels[i] = zero
	}
	return s
}

func zeroPixel(kind pixel.Kind) pixel.Pixel {
	switch kind {
	case pixel.KindRGB:
		return pixel.RGB(0, 0, 0)
	case pixel.KindAlpha8:
		return pixel.Alpha8(0)
	default:
		return pixel.RGBA(0, 0, 0, 0)
	}
}

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Width && y < s.Height
}

// At returns the pixel at (x, y), or the surface's zero pixel if out
// of bounds.
func (s *Surface) At(x, y int) pixel.Pixel {
	if !s.inBounds(x, y) {
		return zeroPixel(s.Kind)
	}
	return s.pixels[y*s.Width+x]
}

// Set writes p at (x, y). Out-of-bounds writes are silently clipped
// (no-op): pixel writes never fail or panic on out-of-range
// coordinates.
func (s *Surface) Set(x, y int, p pixel.Pixel) {
	if !s.inBounds(x, y) {
		return
	}
	s.pixels[y*s.Width+x] = p
}

// Row returns a mutable slice view of row y's pixels, or nil if y is
// out of bounds. Used by the rasterizer's row-by-row emit callback to
// blend a whole covered span at once without per-pixel bounds checks.
func (s *Surface) Row(y int) []pixel.Pixel {
	if y < 0 || y >= s.Height {
		return nil
	}
	return s.pixels[y*s.Width : (y+1)*s.Width]
}
