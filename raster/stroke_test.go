package raster

import (
	"testing"

	vpath "github.com/inkscribe/vraster2d/path"
	"seehuhn.de/go/pdf/graphics"
)

func TestStrokeHorizontalSegmentButtCap(t *testing.T) {
	var p vpath.Path
	p.MoveTo(2, 5).LineTo(8, 5)

	r := NewRasterizer(10, 10)
	r.Width = 2
	r.Cap = graphics.LineCapButt
	r.AntiAlias = AANone

	got := sampleCoverage(t, r, &p, func(path *vpath.Path, emit EmitFunc) { r.Stroke(path, emit) })

	// the stroke spans y in (4,6); pixel row y=4 and y=5 should be
	// covered between x=2 and x=8 (butt cap: no extension past x=2/x=8).
	if got[[2]int{4, 4}] != 1 {
		t.Errorf("expected pixel (4,4) covered by horizontal stroke, got %v", got[[2]int{4, 4}])
	}
	if got[[2]int{1, 4}] != 0 {
		t.Errorf("expected pixel (1,4) NOT covered (before butt-capped start), got %v", got[[2]int{1, 4}])
	}
}

func TestStrokeDegenerateSubpathRoundCapOnly(t *testing.T) {
	var p vpath.Path
	p.MoveTo(5, 5).Close()

	r := NewRasterizer(10, 10)
	r.Width = 4
	r.AntiAlias = AANone

	r.Cap = graphics.LineCapButt
	gotButt := sampleCoverage(t, r, &p, func(path *vpath.Path, emit EmitFunc) { r.Stroke(path, emit) })
	anyButt := false
	for _, c := range gotButt {
		if c != 0 {
			anyButt = true
		}
	}
	if anyButt {
		t.Error("a degenerate (single-point) subpath with a non-round cap should render nothing")
	}

	r.Cap = graphics.LineCapRound
	gotRound := sampleCoverage(t, r, &p, func(path *vpath.Path, emit EmitFunc) { r.Stroke(path, emit) })
	if gotRound[[2]int{5, 5}] != 1 {
		t.Errorf("expected round-cap dot to cover its own center pixel, got %v", gotRound[[2]int{5, 5}])
	}
}

func TestStrokeMiterJoinOnRightAngle(t *testing.T) {
	var p vpath.Path
	p.MoveTo(0, 5).LineTo(5, 5).LineTo(5, 0)

	r := NewRasterizer(10, 10)
	r.Width = 2
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = 10
	r.AntiAlias = AANone

	// just confirm it runs without panicking and produces some coverage
	any := false
	r.Stroke(&p, func(y, xMin int, coverage []float32) {
		for _, c := range coverage {
			if c != 0 {
				any = true
			}
		}
	})
	if !any {
		t.Error("expected some coverage from an L-shaped stroke")
	}
}
