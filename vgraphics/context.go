// Package vgraphics provides the thin Context orchestrator that wires
// the rasterizer, a pattern and a surface together for fill and
// stroke operations.
package vgraphics

import (
	"github.com/inkscribe/vraster2d/pattern"
	vpath "github.com/inkscribe/vraster2d/path"
	"github.com/inkscribe/vraster2d/pixel"
	"github.com/inkscribe/vraster2d/raster"
	"github.com/inkscribe/vraster2d/surface"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

// Context orchestrates a fill/stroke request: it rasterizes a path
// with the embedded Rasterizer, samples Pattern for color, attenuates
// by coverage, and composites into Surface via src_over.
//
// A Context is not safe for concurrent use on the same instance; it
// owns a single Rasterizer and its reused buffers.
type Context struct {
	Surface *surface.Surface
	Pattern pattern.Pattern

	// CTM transforms path coordinates to surface coordinates before
	// rasterization. Defaults to matrix.Identity, so callers that never
	// set it get untransformed fill/stroke behavior.
	CTM matrix.Matrix

	r *raster.Rasterizer
}

// New creates a Context drawing onto s with the given pattern as the
// default fill/stroke source.
func New(s *surface.Surface, p pattern.Pattern) *Context {
	return &Context{
		Surface: s,
		Pattern: p,
		CTM:     matrix.Identity,
		r:       raster.NewRasterizer(s.Width, s.Height),
	}
}

func (c *Context) rasterizer() *raster.Rasterizer {
	if c.r == nil {
		c.r = raster.NewRasterizer(c.Surface.Width, c.Surface.Height)
	}
	c.r.ClipWidth = c.Surface.Width
	c.r.ClipHeight = c.Surface.Height
	return c.r
}

// transform applies c.CTM to p, returning a path in surface
// coordinates. The identity fast path avoids allocating a new path.
func (c *Context) transform(p *vpath.Path) *vpath.Path {
	if c.CTM == matrix.Identity {
		return p
	}
	out := &vpath.Path{Nodes: make([]vpath.Node, len(p.Nodes))}
	for i, n := range p.Nodes {
		out.Nodes[i] = vpath.Node{
			Kind: n.Kind,
			C1:   c.apply(n.C1),
			C2:   c.apply(n.C2),
			P:    c.apply(n.P),
		}
	}
	return out
}

func (c *Context) apply(pt vpath.Point) vpath.Point {
	return vpath.Point{
		X: c.CTM[0]*pt.X + c.CTM[2]*pt.Y + c.CTM[4],
		Y: c.CTM[1]*pt.X + c.CTM[3]*pt.Y + c.CTM[5],
	}
}

// Fill rasterizes p under the given fill rule and composites the
// pattern's color into Surface through each covered pixel.
func (c *Context) Fill(p *vpath.Path, rule raster.FillRule, aa raster.AntiAliasMode) {
	r := c.rasterizer()
	r.AntiAlias = aa
	tp := c.transform(p)

	blend := c.blendRow
	if rule == raster.EvenOdd {
		r.FillEvenOdd(tp, blend)
	} else {
		r.FillNonZero(tp, blend)
	}
}

// Stroke rasterizes p's stroked outline with the given parameters and
// composites the pattern's color into Surface through each covered
// pixel.
func (c *Context) Stroke(p *vpath.Path, thickness float64, join graphics.LineJoinStyle, miterLimit float64, cap graphics.LineCapStyle, aa raster.AntiAliasMode) {
	r := c.rasterizer()
	r.AntiAlias = aa
	r.Width = thickness
	r.Join = join
	r.MiterLimit = miterLimit
	r.Cap = cap
	tp := c.transform(p)
	r.Stroke(tp, c.blendRow)
}

// blendRow composites one rasterized scanline into the surface: for
// each covered pixel, sample the pattern, attenuate by coverage
// (respecting premultiplication), and blend with src_over.
func (c *Context) blendRow(y, xMin int, coverage []float32) {
	row := c.Surface.Row(y)
	if row == nil {
		return
	}
	for i, cov := range coverage {
		if cov <= 0 {
			continue
		}
		x := xMin + i
		if x < 0 || x >= len(row) {
			continue
		}
		src := attenuate(c.Pattern.At(x, y), cov)
		row[x] = pixel.SrcOver(row[x], src)
	}
}

// attenuate scales p's color/alpha contribution by coverage in [0,1],
// truncating like every other pixel operator. RGB patterns are cast
// to RGBA first, whatever the surface format, so the coverage scaling
// has an alpha channel to act on: for an RGB pattern the resulting
// src.a is determined by coverage alone.
func attenuate(p pixel.Pixel, coverage float32) pixel.Pixel {
	c := uint8(clamp01(coverage) * 255)
	switch p.Kind {
	case pixel.KindAlpha8:
		return pixel.Alpha8(scale(p.A, c))
	case pixel.KindRGB:
		rgba := pixel.Cast(p, pixel.KindRGBA)
		return pixel.RGBA(scale(rgba.R, c), scale(rgba.G, c), scale(rgba.B, c), scale(rgba.A, c))
	default: // RGBA
		return pixel.RGBA(scale(p.R, c), scale(p.G, c), scale(p.B, c), scale(p.A, c))
	}
}

func scale(v, by uint8) uint8 {
	return uint8((uint16(v) * uint16(by)) / 255)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
