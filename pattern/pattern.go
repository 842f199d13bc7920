// Package pattern implements the fill/stroke source abstraction that
// the compositor samples per pixel.
package pattern

import "github.com/inkscribe/vraster2d/pixel"

// Pattern supplies a Pixel for every device-space coordinate a fill or
// stroke operation covers. Shaped to admit gradients or tiled sources
// later without changing any caller: the same decoupling idiom as
// oksvg's Driver/Filler/Stroker split (draw.go's SetColor(color
// Pattern, opacity float64)), reused here at smaller scope.
type Pattern interface {
	At(x, y int) pixel.Pixel
}

// OpaquePattern is a Pattern that returns the same pixel everywhere,
// the baseline solid-color fill/stroke source.
type OpaquePattern struct {
	Pixel pixel.Pixel
}

// At returns the pattern's constant pixel, ignoring (x, y).
func (p OpaquePattern) At(x, y int) pixel.Pixel {
	return p.Pixel
}
