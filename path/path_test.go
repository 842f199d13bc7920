package path

import (
	"math"
	"testing"
)

func TestCloseEmitsTrailingMoveTo(t *testing.T) {
	var p Path
	p.MoveTo(1, 2).LineTo(3, 4).Close()

	if len(p.Nodes) != 4 {
		t.Fatalf("got %d nodes, want 4", len(p.Nodes))
	}
	last := p.Nodes[3]
	if last.Kind != MoveTo || last.P != (Point{X: 1, Y: 2}) {
		t.Errorf("trailing node = %+v, want MoveTo(1,2)", last)
	}
}

func TestLineToWithoutMoveToPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	var p Path
	p.LineTo(1, 1)
}

func TestResetReusesCapacity(t *testing.T) {
	var p Path
	p.MoveTo(0, 0).LineTo(1, 1).LineTo(2, 2)
	nodes := p.Nodes
	cap0 := cap(nodes)

	p.Reset()
	if !p.Empty() {
		t.Fatal("path should be empty after Reset")
	}
	p.MoveTo(0, 0)
	if cap(p.Nodes) != cap0 {
		t.Errorf("Reset should not shrink backing array: cap before=%d after=%d", cap0, cap(p.Nodes))
	}
}

func TestFlattenPreservesEndpoints(t *testing.T) {
	var p Path
	p.MoveTo(0, 0).CurveTo(1, 5, 4, 5, 5, 0)

	var pts []Point
	Flatten(&p, 0.01, func(n Node) {
		pts = append(pts, n.P)
	})

	if len(pts) < 3 {
		t.Fatalf("expected curve to be subdivided into multiple segments, got %d", len(pts))
	}
	if pts[0] != (Point{X: 0, Y: 0}) {
		t.Errorf("first point = %+v, want start of path", pts[0])
	}
	last := pts[len(pts)-1]
	if math.Abs(last.X-5) > 1e-9 || math.Abs(last.Y-0) > 1e-9 {
		t.Errorf("last point = %+v, want (5,0)", last)
	}
}

func TestFlattenStraightLineIsOneSegment(t *testing.T) {
	var p Path
	// A "curve" whose control points lie on the line from start to end
	// flattens to a single segment: d1 and d2 are both zero.
	p.MoveTo(0, 0).CurveTo(2, 0, 4, 0, 6, 0)

	var pts []Point
	Flatten(&p, 0.1, func(n Node) {
		if n.Kind == LineTo {
			pts = append(pts, n.P)
		}
	})
	if len(pts) != 1 {
		t.Errorf("expected 1 segment for a collinear curve, got %d: %+v", len(pts), pts)
	}
}
