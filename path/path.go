// Package path implements the path-node data model: an ordered sequence
// of drawing commands (move, line, cubic curve, close) over
// floating-point points, plus curve flattening.
package path

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a single (x, y) coordinate in user or surface space.
//
// Aliased to vec.Vec2 rather than redeclared: it already has the
// {X, Y float64} shape this package needs, plus the Add/Sub/Mul/Dot/
// Length helpers the stroke transformer builds on.
type Point = vec.Vec2

// NodeKind tags the variant of a PathNode.
type NodeKind uint8

const (
	// MoveTo begins a new subpath.
	MoveTo NodeKind = iota
	// LineTo is a straight segment from the current point.
	LineTo
	// CurveTo is a cubic Bézier segment from the current point.
	CurveTo
	// ClosePath closes the current subpath back to its last MoveTo.
	ClosePath
)

// Node is a single tagged path command. Only the fields relevant to
// Kind are meaningful:
//
//	MoveTo, LineTo: Point
//	CurveTo:        C1, C2, Point (Point is the curve's end)
//	ClosePath:      none
type Node struct {
	Kind NodeKind
	C1   Point
	C2   Point
	P    Point
}

// Path is an owned, ordered list of path nodes.
//
// The zero value is an empty path, ready to use. Path owns its node
// list; Reset clears it while keeping the underlying array, so a Path
// can be rebuilt repeatedly without reallocating.
type Path struct {
	Nodes []Node

	// subpathStart tracks the point of the most recent MoveTo, used to
	// resolve ClosePath and the implicit trailing MoveTo it emits.
	subpathStart Point
	current      Point
	haveSubpath  bool
}

// MoveTo begins a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	pt := Point{X: x, Y: y}
	p.Nodes = append(p.Nodes, Node{Kind: MoveTo, P: pt})
	p.subpathStart = pt
	p.current = pt
	p.haveSubpath = true
	return p
}

// LineTo appends a straight segment from the current point to (x, y).
//
// Panics if no subpath has been started: building a path with commands
// out of order is a programming error, not a recoverable one.
func (p *Path) LineTo(x, y float64) *Path {
	p.requireSubpath("LineTo")
	pt := Point{X: x, Y: y}
	p.Nodes = append(p.Nodes, Node{Kind: LineTo, P: pt})
	p.current = pt
	return p
}

// CurveTo appends a cubic Bézier segment with control points (cx1,cy1)
// and (cx2,cy2) ending at (x, y).
//
// Panics if no subpath has been started.
func (p *Path) CurveTo(cx1, cy1, cx2, cy2, x, y float64) *Path {
	p.requireSubpath("CurveTo")
	end := Point{X: x, Y: y}
	p.Nodes = append(p.Nodes, Node{
		Kind: CurveTo,
		C1:   Point{X: cx1, Y: cy1},
		C2:   Point{X: cx2, Y: cy2},
		P:    end,
	})
	p.current = end
	return p
}

// Close closes the current subpath back to its MoveTo point, then
// emits an implicit trailing MoveTo(last_move) so that the "current
// point" for any following LineTo/CurveTo remains well defined.
//
// Panics if no subpath has been started.
func (p *Path) Close() *Path {
	p.requireSubpath("Close")
	p.Nodes = append(p.Nodes, Node{Kind: ClosePath})
	p.current = p.subpathStart
	p.Nodes = append(p.Nodes, Node{Kind: MoveTo, P: p.subpathStart})
	return p
}

// Reset clears the path while retaining the underlying node array's
// capacity, for zero-allocation reuse across builds.
func (p *Path) Reset() {
	p.Nodes = p.Nodes[:0]
	p.subpathStart = Point{}
	p.current = Point{}
	p.haveSubpath = false
}

// Empty reports whether the path has no nodes.
func (p *Path) Empty() bool { return len(p.Nodes) == 0 }

// CurrentPoint returns the point a following LineTo/CurveTo would
// start from. Zero-valued if no subpath has been started yet.
func (p *Path) CurrentPoint() Point { return p.current }

func (p *Path) requireSubpath(op string) {
	if !p.haveSubpath {
		panic("path: " + op + " without a preceding MoveTo")
	}
}

// DefaultFlatness is the default curve-flattening tolerance, in the
// same units as path coordinates. 0.1 keeps curves visually smooth at
// typical screen scales without over-subdividing.
const DefaultFlatness = 0.1

// Flatten walks nodes, replacing every CurveTo with a polyline
// approximation (adaptive subdivision; the maximum distance from the
// chord midpoint to the curve midpoint is kept below tolerance) and
// calling visit for every resulting MoveTo/LineTo/ClosePath.
//
// Endpoints are preserved exactly. The segment-count estimate uses
// Wang's formula on the curve's second differences, applied directly
// in path-coordinate units since Flatten has no notion of a device
// transform — callers that need device-pixel tolerance must pass an
// already-scaled value.
func Flatten(p *Path, tolerance float64, visit func(n Node)) {
	if tolerance <= 0 {
		tolerance = DefaultFlatness
	}
	var current Point
	for _, n := range p.Nodes {
		switch n.Kind {
		case MoveTo:
			current = n.P
			visit(n)
		case LineTo:
			current = n.P
			visit(n)
		case ClosePath:
			visit(n)
		case CurveTo:
			flattenCubic(current, n.C1, n.C2, n.P, tolerance, func(_, to Point) {
				visit(Node{Kind: LineTo, P: to})
			})
			current = n.P
		}
	}
}

// flattenCubic flattens a cubic Bézier p0->p1->p2->p3 and calls emit
// for each line segment, using Wang's formula to pick the segment
// count from the curve's maximum second-difference magnitude.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, emit func(from, to Point)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * tolerance))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		omt3 := omt2 * omt
		t2 := t * t
		t3 := t2 * t
		pt := p0.Mul(omt3).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t3))
		emit(prev, pt)
		prev = pt
	}
}
