package vgraphics

import (
	"testing"

	vpath "github.com/inkscribe/vraster2d/path"
	"github.com/inkscribe/vraster2d/pattern"
	"github.com/inkscribe/vraster2d/pixel"
	"github.com/inkscribe/vraster2d/raster"
	"github.com/inkscribe/vraster2d/surface"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

func TestFillOpaqueSquareOntoRGBA(t *testing.T) {
	s := surface.New(pixel.KindRGBA, 6, 6)
	red := pattern.OpaquePattern{Pixel: pixel.RGBA(255, 0, 0, 255)}
	c := New(s, red)

	var p vpath.Path
	p.MoveTo(1, 1).LineTo(4, 1).LineTo(4, 4).LineTo(1, 4).Close()

	c.r.AntiAlias = raster.AANone
	c.Fill(&p, raster.NonZero, raster.AANone)

	if got := s.At(2, 2); got.R != 255 || got.A != 255 {
		t.Errorf("interior pixel (2,2) = %+v, want opaque red", got)
	}
	if got := s.At(0, 0); got.A != 0 {
		t.Errorf("exterior pixel (0,0) = %+v, want transparent", got)
	}
}

func TestFillOverOpaqueBackgroundLeavesBackgroundOutside(t *testing.T) {
	s := surface.New(pixel.KindRGBA, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			s.Set(x, y, pixel.RGBA(0, 0, 255, 255))
		}
	}
	c := New(s, pattern.OpaquePattern{Pixel: pixel.RGBA(255, 0, 0, 255)})

	var p vpath.Path
	p.MoveTo(0, 0).LineTo(2, 0).LineTo(2, 2).LineTo(0, 2).Close()
	c.Fill(&p, raster.NonZero, raster.AANone)

	if got := s.At(3, 3); got.R != 0 || got.B != 255 {
		t.Errorf("untouched pixel (3,3) = %+v, want original blue", got)
	}
	if got := s.At(0, 0); got.R != 255 || got.B != 0 {
		t.Errorf("filled pixel (0,0) = %+v, want opaque red", got)
	}
}

func TestStrokeSquareOutlineProducesCoverage(t *testing.T) {
	s := surface.New(pixel.KindRGBA, 10, 10)
	c := New(s, pattern.OpaquePattern{Pixel: pixel.RGBA(0, 255, 0, 255)})

	var p vpath.Path
	p.MoveTo(2, 2).LineTo(7, 2).LineTo(7, 7).LineTo(2, 7).Close()
	c.Stroke(&p, 2, graphics.LineJoinMiter, 10, graphics.LineCapButt, raster.AANone)

	if got := s.At(2, 4); got.A == 0 {
		t.Error("expected left edge of stroked square to have coverage")
	}
	if got := s.At(4, 4); got.A != 0 {
		t.Errorf("expected stroked square interior to be untouched, got %+v", got)
	}
}

func TestCTMIdentityIsFastPathNoOp(t *testing.T) {
	s := surface.New(pixel.KindRGBA, 4, 4)
	c := New(s, pattern.OpaquePattern{Pixel: pixel.RGBA(1, 2, 3, 255)})
	var p vpath.Path
	p.MoveTo(0, 0).LineTo(2, 0).LineTo(0, 2).Close()

	if c.CTM != matrix.Identity {
		t.Fatal("Context.New should default CTM to Identity")
	}
	if got := c.transform(&p); got != &p {
		t.Error("transform with identity CTM should return the same path pointer")
	}
}

func TestCTMTranslatesPathBeforeRasterizing(t *testing.T) {
	s := surface.New(pixel.KindRGBA, 10, 10)
	c := New(s, pattern.OpaquePattern{Pixel: pixel.RGBA(255, 255, 255, 255)})
	c.CTM = matrix.Matrix{1, 0, 0, 1, 5, 5}

	var p vpath.Path
	p.MoveTo(0, 0).LineTo(2, 0).LineTo(2, 2).LineTo(0, 2).Close()
	c.Fill(&p, raster.NonZero, raster.AANone)

	if got := s.At(6, 6); got.A == 0 {
		t.Errorf("expected translated fill to cover (6,6), got %+v", got)
	}
	if got := s.At(1, 1); got.A != 0 {
		t.Errorf("expected original (untranslated) location to be untouched, got %+v", got)
	}
}
