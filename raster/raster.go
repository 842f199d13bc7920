// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster converts vector paths to pixel coverage: the filler
// rasterizes fills and strokes into a per-pixel coverage fraction in
// [0, 1], using a fixed supersampling grid and horizontal-ray-crossing
// fill-rule evaluation rather than analytic signed-area accumulation.
package raster

import (
	vpath "github.com/inkscribe/vraster2d/path"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives one scanline's worth of coverage values. coverage
// is valid only during the call; xMin is the device-space column of
// coverage[0].
type EmitFunc func(y, xMin int, coverage []float32)

// FillRule selects how edge-crossing counts resolve to "inside".
type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

// AntiAliasMode selects how each pixel's coverage is sampled.
type AntiAliasMode uint8

const (
	// AADefault samples an N×N grid per pixel and averages the
	// point-in-polygon results (N = SupersampleN).
	AADefault AntiAliasMode = iota
	// AANone single-samples the pixel center: coverage is 0 or 1.
	AANone
)

// SupersampleN is the supersampling grid size per axis for AADefault,
// giving N*N sub-samples per pixel. 4 balances edge smoothness against
// the cost of N*N point-in-polygon tests per pixel.
const SupersampleN = 4

// edge is a line segment in surface coordinates, used for the
// horizontal-ray-crossing point-in-polygon test.
type edge struct {
	x0, y0, x1, y1 float64
}

// Rasterizer rasterizes fills and strokes into pixel coverage. Create
// one instance and reuse it across calls; internal buffers grow but
// never shrink, for zero-allocation steady state.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// ClipWidth/ClipHeight bound the output to [0, ClipWidth) x [0,
	// ClipHeight) in surface coordinates.
	ClipWidth, ClipHeight int

	// Flatness controls curve approximation accuracy in surface units.
	Flatness float64

	// AntiAlias selects the sampling strategy.
	AntiAlias AntiAliasMode

	// Stroke parameters (see Stroke).
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64
	DashPhase  float64

	// coverage accumulation buffer (reused per Fill/Stroke call)
	rowCoverage []float32

	// edge list for the current path (surface coordinates)
	edges []edge

	// stroke outline buffers (see stroke.go)
	stroke            []vpath.Point
	strokeOffsets     []int
	segs              []strokeSegment
	segsOffsets       []int
	subpathClosed     []bool
	degeneratePoints  []vpath.Point
	dashedSegs        []strokeSegment
	dashedSegsOffsets []int
}

// NewRasterizer returns a Rasterizer with PDF-graphics-style defaults
// for the clip rectangle given.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		ClipWidth:  width,
		ClipHeight: height,
		Flatness:   vpath.DefaultFlatness,
		Width:      1.0,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

const defaultMiterLimit = 10.0

const (
	zeroLengthThreshold   = 1e-10
	collinearityThreshold = 1e-6
	cuspCosineThreshold   = -0.9999
)

// FillNonZero rasterizes p's fill under the non-zero winding rule.
func (r *Rasterizer) FillNonZero(p *vpath.Path, emit EmitFunc) {
	r.fill(p, NonZero, emit)
}

// FillEvenOdd rasterizes p's fill under the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *vpath.Path, emit EmitFunc) {
	r.fill(p, EvenOdd, emit)
}

func (r *Rasterizer) fill(p *vpath.Path, rule FillRule, emit EmitFunc) {
	r.collectFillEdges(p)
	r.fillEdges(rule, emit)
}

// collectFillEdges flattens p and records one edge per line segment,
// including the implicit closing edge of every subpath: a fill always
// treats each subpath as closed regardless of whether the path itself
// called Close.
func (r *Rasterizer) collectFillEdges(p *vpath.Path) {
	r.edges = r.edges[:0]

	var current, subpathStart vpath.Point
	haveSubpath := false

	closeSubpath := func() {
		if haveSubpath && current != subpathStart {
			r.addEdge(current, subpathStart)
		}
	}

	vpath.Flatten(p, r.Flatness, func(n vpath.Node) {
		switch n.Kind {
		case vpath.MoveTo:
			closeSubpath()
			current = n.P
			subpathStart = n.P
			haveSubpath = true
		case vpath.LineTo:
			if !haveSubpath {
				return
			}
			r.addEdge(current, n.P)
			current = n.P
		case vpath.ClosePath:
			closeSubpath()
			current = subpathStart
		}
	})
	closeSubpath()
}

func (r *Rasterizer) addEdge(a, b vpath.Point) {
	if a == b {
		return
	}
	r.edges = append(r.edges, edge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y})
}

// fillEdges evaluates r.edges against the clip rectangle, one scanline
// at a time: for each pixel in the bounding box, either single-sample
// the center (AANone) or average N*N sub-samples on a regular grid
// (AADefault), each sub-sample resolved by a horizontal-ray-crossing
// count against the fill rule.
func (r *Rasterizer) fillEdges(rule FillRule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin, xMax, yMin, yMax, ok := r.edgeBounds()
	if !ok {
		return
	}

	n := 1
	if r.AntiAlias == AADefault {
		n = SupersampleN
	}

	width := xMax - xMin
	if cap(r.rowCoverage) < width {
		r.rowCoverage = make([]float32, width)
	}
	row := r.rowCoverage[:width]

	for y := yMin; y < yMax; y++ {
		for i := range row {
			row[i] = 0
		}
		for x := xMin; x < xMax; x++ {
			var hits int
			total := n * n
			for sy := 0; sy < n; sy++ {
				sampleY := float64(y) + (float64(sy)+0.5)/float64(n)
				for sx := 0; sx < n; sx++ {
					sampleX := float64(x) + (float64(sx)+0.5)/float64(n)
					if r.pointInside(sampleX, sampleY, rule) {
						hits++
					}
				}
			}
			row[x-xMin] = float32(hits) / float32(total)
		}
		emit(y, xMin, row)
	}
}

// edgeBounds computes the integer pixel bounding box of r.edges,
// clamped to the clip rectangle.
func (r *Rasterizer) edgeBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	fxMin, fxMax := r.edges[0].x0, r.edges[0].x0
	fyMin, fyMax := r.edges[0].y0, r.edges[0].y0
	for _, e := range r.edges {
		fxMin = min(fxMin, e.x0, e.x1)
		fxMax = max(fxMax, e.x0, e.x1)
		fyMin = min(fyMin, e.y0, e.y1)
		fyMax = max(fyMax, e.y0, e.y1)
	}

	xMin = max(int(floor(fxMin)), 0)
	xMax = min(int(floor(fxMax))+1, r.ClipWidth)
	yMin = max(int(floor(fyMin)), 0)
	yMax = min(int(floor(fyMax))+1, r.ClipHeight)

	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func floor(v float64) float64 {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return float64(i)
}

// pointInside evaluates the fill rule at (px, py) via a horizontal ray
// cast in the +x direction, counting edge crossings. Each edge's
// vertical extent is treated half-open, [min(y0,y1), max(y0,y1)), so
// that a ray passing exactly through a shared vertex between two edges
// is counted exactly once rather than twice.
func (r *Rasterizer) pointInside(px, py float64, rule FillRule) bool {
	winding := 0
	for _, e := range r.edges {
		y0, y1 := e.y0, e.y1
		lo, hi := y0, y1
		dir := 1
		if lo > hi {
			lo, hi = hi, lo
			dir = -1
		}
		if py < lo || py >= hi {
			continue
		}
		// x-coordinate of the edge at height py
		t := (py - y0) / (y1 - y0)
		x := e.x0 + t*(e.x1-e.x0)
		if x > px {
			if rule == EvenOdd {
				winding ^= 1
			} else {
				winding += dir
			}
		}
	}
	if rule == EvenOdd {
		return winding&1 != 0
	}
	return winding != 0
}
