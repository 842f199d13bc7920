package raster

import (
	"testing"

	vpath "github.com/inkscribe/vraster2d/path"
)

func rectanglePath(x0, y0, x1, y1 float64) *vpath.Path {
	var p vpath.Path
	p.MoveTo(x0, y0).LineTo(x1, y0).LineTo(x1, y1).LineTo(x0, y1).Close()
	return &p
}

// TestFillAxisAlignedRectangleNoAA verifies spec property #8: a convex
// polygon fill covers exactly the pixels whose centers are inside,
// under AntiAlias = AANone.
func TestFillAxisAlignedRectangleNoAA(t *testing.T) {
	r := NewRasterizer(6, 5)
	r.AntiAlias = AANone

	p := rectanglePath(1, 1, 4, 3)

	got := make(map[[2]int]float32)
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			got[[2]int{xMin + i, y}] = c
		}
	})

	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			cx, cy := float64(x)+0.5, float64(y)+0.5
			inside := cx > 1 && cx < 4 && cy > 1 && cy < 3
			want := float32(0)
			if inside {
				want = 1
			}
			if c, ok := got[[2]int{x, y}]; (ok && c != want) || (!ok && want != 0) {
				t.Errorf("pixel (%d,%d) = %v (ok=%v), want %v", x, y, c, ok, want)
			}
		}
	}
}

func TestFillEmptyPathEmitsNothing(t *testing.T) {
	r := NewRasterizer(10, 10)
	var p vpath.Path
	called := false
	r.FillNonZero(&p, func(y, xMin int, coverage []float32) { called = true })
	if called {
		t.Error("filling an empty path should not emit any rows")
	}
}

// TestFillEvenOddVsNonZeroOnOverlappingSquares verifies the two fill
// rules differ on a figure-eight-like overlap: two same-winding
// squares sharing a sub-region, one per subpath.
func TestFillEvenOddVsNonZeroOnOverlappingSquares(t *testing.T) {
	var p vpath.Path
	// square A: (0,0)-(6,6), square B: (3,3)-(9,9), same winding
	p.MoveTo(0, 0).LineTo(6, 0).LineTo(6, 6).LineTo(0, 6).Close()
	p.MoveTo(3, 3).LineTo(9, 3).LineTo(9, 9).LineTo(3, 9).Close()

	r := NewRasterizer(10, 10)
	r.AntiAlias = AANone

	nonZero := sampleCoverage(t, r, &p, r.FillNonZero)
	evenOdd := sampleCoverage(t, r, &p, r.FillEvenOdd)

	// center of the overlap region, e.g. pixel (4,4): covered under
	// non-zero (winding 2 != 0) but NOT under even-odd (winding 2 is even).
	if nonZero[[2]int{4, 4}] != 1 {
		t.Errorf("non-zero should cover the overlap region, got %v", nonZero[[2]int{4, 4}])
	}
	if evenOdd[[2]int{4, 4}] != 0 {
		t.Errorf("even-odd should NOT cover the overlap region, got %v", evenOdd[[2]int{4, 4}])
	}
}

func sampleCoverage(t *testing.T, r *Rasterizer, p *vpath.Path, fill func(*vpath.Path, EmitFunc)) map[[2]int]float32 {
	t.Helper()
	got := make(map[[2]int]float32)
	fill(p, func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			got[[2]int{xMin + i, y}] = c
		}
	})
	return got
}

func TestSupersampledEdgeIsPartialCoverage(t *testing.T) {
	// A triangle whose hypotenuse crosses pixel (0,0) diagonally should
	// produce coverage strictly between 0 and 1 under default AA.
	var p vpath.Path
	p.MoveTo(0, 0).LineTo(1, 0).LineTo(0, 1).Close()

	r := NewRasterizer(1, 1)
	var coverage float32
	r.FillNonZero(&p, func(y, xMin int, cov []float32) {
		coverage = cov[0]
	})
	if coverage <= 0 || coverage >= 1 {
		t.Errorf("diagonal-edge pixel coverage = %v, want strictly between 0 and 1", coverage)
	}
}
