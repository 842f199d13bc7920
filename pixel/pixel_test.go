package pixel

import "testing"

func TestSrcOverTransparentIsNoop(t *testing.T) {
	dst := RGBA(10, 20, 30, 200)
	src := RGBA(0, 0, 0, 0)
	got := SrcOver(dst, src)
	if got != dst {
		t.Errorf("src_over(dst, transparent) = %+v, want %+v", got, dst)
	}
}

func TestSrcOverOpaqueReplacesDestination(t *testing.T) {
	dst := RGBA(10, 20, 30, 200)
	src := RGBA(9, 8, 7, 255)
	got := SrcOver(dst, src)
	if got.R != src.R || got.G != src.G || got.B != src.B || got.A != src.A {
		t.Errorf("src_over(dst, opaque) = %+v, want %+v", got, src)
	}
}

func TestDstInOpaqueIsNoop(t *testing.T) {
	dst := RGBA(10, 20, 30, 200)
	src := RGBA(1, 2, 3, 255)
	got := DstIn(dst, src)
	if got != dst {
		t.Errorf("dst_in(dst, opaque) = %+v, want %+v", got, dst)
	}
}

func TestDstInTransparentIsTransparent(t *testing.T) {
	dst := RGBA(10, 20, 30, 200)
	src := RGBA(1, 2, 3, 0)
	got := DstIn(dst, src)
	want := RGBA(0, 0, 0, 0)
	if got != want {
		t.Errorf("dst_in(dst, transparent) = %+v, want %+v", got, want)
	}
}

func TestPremultipliedCompositingScenario(t *testing.T) {
	dst := RGBA(170, 187, 204, 128)
	src := FromClamped(1, 0, 0, 0.5)
	if src.R != 127 || src.G != 0 || src.B != 0 || src.A != 127 {
		t.Fatalf("from_clamped(1,0,0,0.5) = %+v, want (127,0,0,127)", src)
	}

	got := SrcOver(dst, src)
	want := [4]int{211, 93, 101, 191}
	got4 := [4]int{int(got.R), int(got.G), int(got.B), int(got.A)}
	for i := range want {
		if abs(got4[i]-want[i]) > 1 {
			t.Errorf("channel %d = %d, want %d ±1", i, got4[i], want[i])
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestDemultiplyMultiplyRoundTrip(t *testing.T) {
	// p holds straight-alpha channels; Multiply premultiplies them.
	p := RGBA(200, 150, 50, 128)
	premul := Multiply(p)
	back := Demultiply(premul)
	if abs(int(back.R)-int(p.R)) > 1 || abs(int(back.G)-int(p.G)) > 1 || abs(int(back.B)-int(p.B)) > 1 {
		t.Errorf("demultiply(multiply(p)) = %+v, differs from %+v by more than 1", back, p)
	}
}

func TestAverageEmptyIsZero(t *testing.T) {
	got := Average(KindRGBA, nil)
	want := RGBA(0, 0, 0, 0)
	if got != want {
		t.Errorf("average([]) = %+v, want %+v", got, want)
	}
}

func TestAverageIsPerChannelMean(t *testing.T) {
	xs := []Pixel{RGBA(0, 0, 0, 0), RGBA(255, 255, 255, 255), RGBA(0, 255, 0, 255)}
	got := Average(KindRGBA, xs)
	want := RGBA(85, 170, 85, 170)
	if got != want {
		t.Errorf("average(xs) = %+v, want %+v", got, want)
	}
}

func TestCastSetsDocumentedChannels(t *testing.T) {
	rgb := RGB(10, 20, 30)
	rgba := Cast(rgb, KindRGBA)
	if rgba.A != 255 {
		t.Errorf("RGB->RGBA should set a=255, got %d", rgba.A)
	}

	alpha := Alpha8(42)
	toRGBA := Cast(alpha, KindRGBA)
	if toRGBA.R != 0 || toRGBA.G != 0 || toRGBA.B != 0 || toRGBA.A != 42 {
		t.Errorf("Alpha8->RGBA should zero rgb, got %+v", toRGBA)
	}

	droppedRGB := Cast(RGBA(1, 2, 3, 200), KindAlpha8)
	if droppedRGB.A != 200 {
		t.Errorf("RGBA->Alpha8 should keep a, got %+v", droppedRGB)
	}
}
