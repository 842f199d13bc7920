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

package raster

import (
	"math"

	vpath "github.com/inkscribe/vraster2d/path"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a line segment in surface coordinates, with its
// unit tangent and normal precomputed.
type strokeSegment struct {
	A, B vpath.Point // endpoints
	T    vpath.Point // unit tangent (A→B direction)
	N    vpath.Point // unit normal (90° CCW from T)
}

// Stroke renders p's stroked outline using Width, Cap, Join,
// MiterLimit, Dash and DashPhase. The emit callback receives coverage
// row-by-row; its slice argument is valid only during the call.
func (r *Rasterizer) Stroke(p *vpath.Path, emit EmitFunc) {
	r.flattenStrokePath(p)
	if len(r.segsOffsets) == 0 && len(r.degeneratePoints) == 0 {
		return
	}

	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]

	// Degenerate subpaths (no orientation): only round caps draw anything.
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.degeneratePoints {
			startOffset := len(r.stroke)
			r.addArc(pt, r.Width/2, vpath.Point{X: 1, Y: 0}, 2*math.Pi, true)
			r.strokeOffsets = append(r.strokeOffsets, startOffset)
		}
	}

	if len(r.Dash) > 0 {
		r.strokeDashedSubpaths()
	} else {
		r.strokeAllSubpaths()
	}

	r.fillStrokeOutlines(emit)
}

func (r *Rasterizer) strokeAllSubpaths() {
	numSubpaths := len(r.segsOffsets)
	for i := range numSubpaths {
		segs := r.getSubpathSegments(i)
		closed := r.subpathClosed[i]

		startOffset := len(r.stroke)
		r.strokeSubpath(segs, closed)
		if len(r.stroke)-startOffset >= 3 {
			r.strokeOffsets = append(r.strokeOffsets, startOffset)
		} else {
			r.stroke = r.stroke[:startOffset]
		}
	}
}

func (r *Rasterizer) getSubpathSegments(i int) []strokeSegment {
	start := r.segsOffsets[i]
	var end int
	if i+1 < len(r.segsOffsets) {
		end = r.segsOffsets[i+1]
	} else {
		end = len(r.segs)
	}
	return r.segs[start:end]
}

func (r *Rasterizer) strokeDashedSubpaths() {
	r.applyDashPattern()

	numDashes := len(r.dashedSegsOffsets)
	for i := range numDashes {
		segs := r.getDashedSegments(i)

		if len(segs) == 1 && segs[0].A == segs[0].B {
			seg := &segs[0]
			startOffset := len(r.stroke)
			switch r.Cap {
			case graphics.LineCapRound:
				r.addArc(seg.A, r.Width/2, vpath.Point{X: 1, Y: 0}, 2*math.Pi, true)
				r.strokeOffsets = append(r.strokeOffsets, startOffset)
			case graphics.LineCapSquare:
				r.addSquare(seg.A, seg.T, r.Width/2)
				r.strokeOffsets = append(r.strokeOffsets, startOffset)
			}
			continue
		}

		startOffset := len(r.stroke)
		r.strokeSubpath(segs, false) // dashed subpaths are never closed
		if len(r.stroke)-startOffset >= 3 {
			r.strokeOffsets = append(r.strokeOffsets, startOffset)
		} else {
			r.stroke = r.stroke[:startOffset]
		}
	}
}

func (r *Rasterizer) getDashedSegments(i int) []strokeSegment {
	start := r.dashedSegsOffsets[i]
	var end int
	if i+1 < len(r.dashedSegsOffsets) {
		end = r.dashedSegsOffsets[i+1]
	} else {
		end = len(r.dashedSegs)
	}
	return r.dashedSegs[start:end]
}

// flattenStrokePath flattens p's curves and records per-subpath
// segment geometry into r.segs/r.segsOffsets/r.subpathClosed, with
// zero-length subpaths recorded separately in r.degeneratePoints.
func (r *Rasterizer) flattenStrokePath(p *vpath.Path) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.degeneratePoints = r.degeneratePoints[:0]

	var current, subpathStart vpath.Point
	subpathStartIdx := 0
	inSubpath := false
	sawDrawingCmd := false

	finish := func(closed bool) {
		if len(r.segs) == subpathStartIdx {
			r.degeneratePoints = append(r.degeneratePoints, subpathStart)
		} else {
			r.segsOffsets = append(r.segsOffsets, subpathStartIdx)
			r.subpathClosed = append(r.subpathClosed, closed)
		}
	}

	vpath.Flatten(p, r.Flatness, func(n vpath.Node) {
		switch n.Kind {
		case vpath.MoveTo:
			if inSubpath && (len(r.segs) > subpathStartIdx || sawDrawingCmd) {
				finish(false)
			}
			current = n.P
			subpathStart = current
			subpathStartIdx = len(r.segs)
			inSubpath = true
			sawDrawingCmd = false

		case vpath.LineTo:
			if !inSubpath {
				return
			}
			sawDrawingCmd = true
			r.addStrokeSegment(current, n.P)
			current = n.P

		case vpath.ClosePath:
			if inSubpath {
				if current != subpathStart {
					r.addStrokeSegment(current, subpathStart)
				}
				finish(true)
				current = subpathStart
				subpathStartIdx = len(r.segs)
				inSubpath = false
				sawDrawingCmd = false
			}
		}
	})

	if inSubpath && (len(r.segs) > subpathStartIdx || sawDrawingCmd) {
		finish(false)
	}
}

func (r *Rasterizer) addStrokeSegment(a, b vpath.Point) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: normal(t)})
}

// normal returns the unit normal 90° counter-clockwise from t.
func normal(t vpath.Point) vpath.Point {
	return vpath.Point{X: -t.Y, Y: t.X}
}

// addSideVertex returns the point offset from P by d along N, on the
// side named by sign: +1 for the +N side, -1 for the -N side.
func addSideVertex(P, N vpath.Point, d, sign float64) vpath.Point {
	return P.Add(N.Mul(sign * d))
}

// addCorner resolves one corner of an offset polygon, where the
// incoming segment (tangent Tin, normal Nin) meets the outgoing
// segment (tangent Tout, normal Nout) at P. sign selects which side of
// the centerline is being traced: +1 for the +N pass, -1 for the -N
// pass. Near-collinear corners get both raw offset points; a corner
// that turns away from the side being traced (so that side is the
// outer one) gets a join; a corner that turns toward it gets a true
// inner-corner intersection (or a raw-offset fallback). Reports whether an intersection point replaced both
// individual offset points, so the caller can skip re-emitting the
// next side vertex.
func (r *Rasterizer) addCorner(P, Tin, Nin, Tout, Nout vpath.Point, d, sign float64) bool {
	sinTheta := Tin.X*Tout.Y - Tin.Y*Tout.X
	positiveSide := sign > 0

	switch {
	case math.Abs(sinTheta) < collinearityThreshold:
		r.addCornerOffsets(P, Nin, Nout, d, sign)
		return false
	case sinTheta*sign < 0:
		r.stroke = append(r.stroke, addSideVertex(P, r.cornerFirst(Nin, Nout, sign), d, sign))
		r.addJoin(P, Tin, Tout, d, positiveSide)
		r.stroke = append(r.stroke, addSideVertex(P, r.cornerSecond(Nin, Nout, sign), d, sign))
		return false
	default:
		return r.addInnerIntersectionOrOffsets(P, Tin, Tout, Nin, Nout, d, positiveSide)
	}
}

func (r *Rasterizer) addCornerOffsets(P, Nin, Nout vpath.Point, d, sign float64) {
	r.stroke = append(r.stroke,
		addSideVertex(P, r.cornerFirst(Nin, Nout, sign), d, sign),
		addSideVertex(P, r.cornerSecond(Nin, Nout, sign), d, sign),
	)
}

// cornerFirst/cornerSecond order the two normals to emit: the forward
// (+N) pass visits the incoming side first, the backward (-N) pass
// visits the outgoing side first, so that both passes trace a single
// contiguous ring around the subpath.
func (r *Rasterizer) cornerFirst(Nin, Nout vpath.Point, sign float64) vpath.Point {
	if sign > 0 {
		return Nin
	}
	return Nout
}

func (r *Rasterizer) cornerSecond(Nin, Nout vpath.Point, sign float64) vpath.Point {
	if sign > 0 {
		return Nout
	}
	return Nin
}

// strokeSubpath builds the stroke outline for a single subpath into
// r.stroke: a closed polygon, forward pass on the +N side then
// backward pass on the -N side, with join geometry added on the outer
// side of each corner. Zero-length subpaths are handled by the caller.
func (r *Rasterizer) strokeSubpath(segs []strokeSegment, closed bool) {
	if len(segs) == 0 {
		return
	}

	d := r.Width / 2

	if closed {
		r.strokeClosedSubpath(segs, d)
	} else {
		r.strokeOpenSubpath(segs, d)
	}
}

// strokeClosedSubpath traces the full offset ring of a closed subpath:
// the +N pass visits every corner (including the wraparound corner
// between the last and first segment) via addCorner, then the -N pass
// retraces the same corners in reverse, producing one contiguous
// polygon whose forward and backward halves cancel under the
// non-zero winding rule outside the stroke band.
func (r *Rasterizer) strokeClosedSubpath(segs []strokeSegment, d float64) {
	n := len(segs)
	first, last := &segs[0], &segs[n-1]

	r.stroke = append(r.stroke, addSideVertex(first.A, first.N, d, 1))
	for i := range n {
		seg := &segs[i]
		next := &segs[(i+1)%n]
		r.addCorner(seg.B, seg.T, seg.N, next.T, next.N, d, 1)
	}

	r.addCorner(first.A, last.T, last.N, first.T, first.N, d, -1)
	for i := n - 1; i >= 0; i-- {
		seg := &segs[i]
		if i == 0 {
			r.stroke = append(r.stroke, addSideVertex(seg.A, seg.N, d, -1))
			continue
		}
		prev := &segs[i-1]
		r.addCorner(seg.A, prev.T, prev.N, seg.T, seg.N, d, -1)
	}
}

// strokeOpenSubpath traces an open subpath's offset outline: end caps
// at both ends, a +N pass from first to last, then a -N pass back from
// last to first. Each pass emits the leading side vertex for a
// segment up front and relies on the trailing corner handling to emit
// (or, for a true inner intersection, skip) the next segment's leading
// vertex.
func (r *Rasterizer) strokeOpenSubpath(segs []strokeSegment, d float64) {
	n := len(segs)
	first, last := &segs[0], &segs[n-1]

	r.addCap(first.A, first.T.Mul(-1), d)

	skipNextA := false
	for i := range n {
		seg := &segs[i]
		if !skipNextA {
			r.stroke = append(r.stroke, addSideVertex(seg.A, seg.N, d, 1))
		}
		skipNextA = false
		if i == n-1 {
			r.stroke = append(r.stroke, addSideVertex(seg.B, seg.N, d, 1))
			continue
		}
		next := &segs[i+1]
		sinTheta := seg.T.X*next.T.Y - seg.T.Y*next.T.X
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			r.stroke = append(r.stroke, addSideVertex(seg.B, seg.N, d, 1))
		case sinTheta > 0:
			skipNextA = r.addInnerIntersectionOrOffsets(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		default:
			r.stroke = append(r.stroke, addSideVertex(seg.B, seg.N, d, 1))
			r.addJoin(seg.B, seg.T, next.T, d, true)
		}
	}

	r.addCap(last.B, last.T, d)

	skipNextB := false
	for i := n - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skipNextB {
			r.stroke = append(r.stroke, addSideVertex(seg.B, seg.N, d, -1))
		}
		skipNextB = false
		if i == 0 {
			r.stroke = append(r.stroke, addSideVertex(seg.A, seg.N, d, -1))
			continue
		}
		prev := &segs[i-1]
		sinTheta := prev.T.X*seg.T.Y - prev.T.Y*seg.T.X
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			r.stroke = append(r.stroke, addSideVertex(seg.A, seg.N, d, -1))
		case sinTheta > 0:
			r.stroke = append(r.stroke, addSideVertex(seg.A, seg.N, d, -1))
			r.addJoin(seg.A, prev.T, seg.T, d, false)
		default:
			skipNextB = r.addInnerIntersectionOrOffsets(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
		}
	}
}

// addCap adds a line cap to the stroke outline at point P. T is the
// outward tangent direction (away from the line).
func (r *Rasterizer) addCap(P, T vpath.Point, d float64) {
	N := normal(T)

	switch r.Cap {
	case graphics.LineCapButt:
		// nothing to add: the offset points already bound the cap.
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		left := ext.Add(N.Mul(d))
		right := ext.Sub(N.Mul(d))
		r.stroke = append(r.stroke, left, right)
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// computeInnerIntersection returns the intersection of the two inner
// offset lines at a corner, or ok=false for nearly collinear segments.
func computeInnerIntersection(P, T1, T2 vpath.Point, d float64, positiveSide bool) (vpath.Point, bool) {
	cosTheta := T1.Dot(T2)
	if cosTheta > 1-1e-9 {
		return vpath.Point{}, false
	}

	halfAngle := math.Sqrt((1 + cosTheta) / 2)
	if halfAngle < 1e-9 {
		return vpath.Point{}, false
	}

	N1 := normal(T1)
	N2 := normal(T2)

	innerDir := N1.Add(N2)
	if !positiveSide {
		innerDir = innerDir.Mul(-1)
	}

	innerDirLen := innerDir.Length()
	if innerDirLen < 1e-9 {
		return vpath.Point{}, false
	}
	innerDir = innerDir.Mul(1 / innerDirLen)

	return P.Add(innerDir.Mul(d / halfAngle)), true
}

// addInnerIntersectionOrOffsets handles the inner side of a corner,
// reporting whether an intersection point was used in place of both
// offset points (so the caller can skip re-adding the next one).
func (r *Rasterizer) addInnerIntersectionOrOffsets(P, T1, T2, N1, N2 vpath.Point, d float64, positiveSide bool) bool {
	if pt, ok := computeInnerIntersection(P, T1, T2, d, positiveSide); ok {
		r.stroke = append(r.stroke, pt)
		return true
	}
	if positiveSide {
		r.stroke = append(r.stroke, P.Add(N1.Mul(d)))
		r.stroke = append(r.stroke, P.Add(N2.Mul(d)))
	} else {
		r.stroke = append(r.stroke, P.Sub(N1.Mul(d)))
		r.stroke = append(r.stroke, P.Sub(N2.Mul(d)))
	}
	return false
}

// addJoin adds a line join at point P where tangent changes T1 -> T2.
func (r *Rasterizer) addJoin(P, T1, T2 vpath.Point, d float64, positiveSide bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := T1.X*T2.Y - T1.Y*T2.X

	if sinTheta > -collinearityThreshold && sinTheta < collinearityThreshold {
		return
	}

	if cosTheta < cuspCosineThreshold {
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	switch r.Join {
	case graphics.LineJoinMiter:
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit+miterEpsilon {
			N1 := normal(T1)
			N2 := normal(T2)

			var bisector vpath.Point
			if positiveSide {
				bisector = N1.Add(N2)
			} else {
				bisector = N1.Add(N2).Mul(-1)
			}
			bisectorLen := bisector.Length()
			if bisectorLen > zeroLengthThreshold {
				bisector = bisector.Mul(1 / bisectorLen)
				miterDist := d / sinHalf
				r.stroke = append(r.stroke, P.Add(bisector.Mul(miterDist)))
			}
			return
		}
		fallthrough

	case graphics.LineJoinBevel:
		return

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if positiveSide {
			N1 := normal(T1)
			if sinTheta > 0 {
				r.addArc(P, d, N1, angle, false)
			} else {
				r.addArc(P, d, N1, -angle, false)
			}
		} else {
			N2 := normal(T2).Mul(-1)
			if sinTheta > 0 {
				r.addArc(P, d, N2, -angle, false)
			} else {
				r.addArc(P, d, N2, angle, false)
			}
		}
	}
}

// addArc adds arc vertices to the stroke outline. startDir is the
// unit vector from center to the arc's start; sweep is the signed arc
// angle in radians.
func (r *Rasterizer) addArc(center vpath.Point, radius float64, startDir vpath.Point, sweep float64, includeStart bool) {
	if radius < r.Flatness {
		if includeStart {
			r.stroke = append(r.stroke, center.Add(startDir.Mul(radius)))
		}
		cos, sin := math.Cos(sweep), math.Sin(sweep)
		endDir := vpath.Point{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.stroke = append(r.stroke, center.Add(endDir.Mul(radius)))
		return
	}

	absSweep := math.Abs(sweep)
	angleStep := 2 * math.Acos(1-r.Flatness/radius)
	if angleStep <= 0 || math.IsNaN(angleStep) {
		angleStep = math.Pi / 4
	}
	n := int(math.Ceil(absSweep / angleStep))
	n = max(n, 1)

	dt := sweep / float64(n)
	startI := 0
	if !includeStart {
		startI = 1
	}
	for i := startI; i <= n; i++ {
		angle := float64(i) * dt
		cos, sin := math.Cos(angle), math.Sin(angle)
		dir := vpath.Point{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.stroke = append(r.stroke, center.Add(dir.Mul(radius)))
	}
}

// addSquare adds a filled square to the stroke outline for a
// zero-length dash segment with square caps: side length = 2*d,
// oriented by the tangent T.
func (r *Rasterizer) addSquare(center, T vpath.Point, d float64) {
	N := normal(T)
	r.stroke = append(r.stroke,
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
}

// applyDashPattern applies Dash/DashPhase to the flattened subpaths in
// r.segs, writing the resulting on-segments into r.dashedSegs.
func (r *Rasterizer) applyDashPattern() {
	r.dashedSegs = r.dashedSegs[:0]
	r.dashedSegsOffsets = r.dashedSegsOffsets[:0]

	dash := r.Dash
	dashLen := len(dash)

	patternLen := 0.0
	for _, d := range dash {
		patternLen += d
	}
	if dashLen%2 == 1 {
		patternLen *= 2
	}
	if patternLen <= 0 {
		return
	}

	phase := math.Mod(r.DashPhase, patternLen)
	if phase < 0 {
		phase += patternLen
	}

	numSubpaths := len(r.segsOffsets)
	for spIdx := range numSubpaths {
		segments := r.getSubpathSegments(spIdx)
		closed := r.subpathClosed[spIdx]
		if len(segments) == 0 {
			continue
		}

		dashIdx := 0
		dist := phase
		for dist >= dash[dashIdx%dashLen] && dash[dashIdx%dashLen] > 0 {
			dist -= dash[dashIdx%dashLen]
			dashIdx++
		}
		remaining := dash[dashIdx%dashLen] - dist
		isOn := dashIdx%2 == 0

		if isOn && remaining == 0 && len(segments) > 0 {
			seg := segments[0]
			r.dashedSegsOffsets = append(r.dashedSegsOffsets, len(r.dashedSegs))
			r.dashedSegs = append(r.dashedSegs, strokeSegment{A: seg.A, B: seg.A, T: seg.T, N: seg.N})
			dashIdx++
			remaining = dash[dashIdx%dashLen]
			isOn = dashIdx%2 == 0
		}

		startedOn := isOn
		firstDashStart := -1
		firstDashEnd := -1

		dashStartIdx := len(r.dashedSegs)
		segIdx := 0
		segDist := 0.0

		for segIdx < len(segments) {
			seg := segments[segIdx]
			segLen := seg.B.Sub(seg.A).Length()
			segRemaining := segLen - segDist

			if remaining >= segRemaining {
				if isOn {
					if segDist > 0 {
						t := segDist / segLen
						startPt := seg.A.Add(seg.B.Sub(seg.A).Mul(t))
						r.dashedSegs = append(r.dashedSegs, strokeSegment{A: startPt, B: seg.B, T: seg.T, N: seg.N})
					} else {
						r.dashedSegs = append(r.dashedSegs, seg)
					}
				}
				remaining -= segRemaining
				segIdx++
				segDist = 0
			} else {
				endDist := segDist + remaining
				t := endDist / segLen
				splitPt := seg.A.Add(seg.B.Sub(seg.A).Mul(t))

				if isOn {
					startT := segDist / segLen
					startPt := seg.A.Add(seg.B.Sub(seg.A).Mul(startT))
					d := splitPt.Sub(startPt)
					dLen := d.Length()
					if dLen > zeroLengthThreshold {
						tVec := d.Mul(1 / dLen)
						r.dashedSegs = append(r.dashedSegs, strokeSegment{A: startPt, B: splitPt, T: tVec, N: normal(tVec)})
					} else if len(r.dashedSegs) == dashStartIdx {
						r.dashedSegs = append(r.dashedSegs, strokeSegment{A: startPt, B: startPt, T: seg.T, N: seg.N})
					}

					if firstDashStart < 0 && len(r.dashedSegs) > dashStartIdx {
						firstDashStart = dashStartIdx
						firstDashEnd = len(r.dashedSegs)
					}

					if len(r.dashedSegs) > dashStartIdx {
						r.dashedSegsOffsets = append(r.dashedSegsOffsets, dashStartIdx)
						dashStartIdx = len(r.dashedSegs)
					}
				}

				segDist = endDist
				dashIdx++
				remaining = dash[dashIdx%dashLen]
				isOn = dashIdx%2 == 0
			}
		}

		if len(r.dashedSegs) > dashStartIdx {
			if closed && startedOn && isOn && firstDashStart >= 0 {
				for i := firstDashStart; i < firstDashEnd; i++ {
					r.dashedSegs = append(r.dashedSegs, r.dashedSegs[i])
				}
				if len(r.dashedSegsOffsets) > 0 && r.dashedSegsOffsets[0] == firstDashStart {
					r.dashedSegsOffsets = r.dashedSegsOffsets[1:]
				}
			}
			r.dashedSegsOffsets = append(r.dashedSegsOffsets, dashStartIdx)
		}
	}
}

// fillStrokeOutlines fills all collected stroke polygons as a single
// compound path under the non-zero rule, so overlapping dash/join
// regions are painted once rather than double-blended.
func (r *Rasterizer) fillStrokeOutlines(emit EmitFunc) {
	if len(r.strokeOffsets) == 0 {
		return
	}

	r.edges = r.edges[:0]
	for i, start := range r.strokeOffsets {
		var end int
		if i+1 < len(r.strokeOffsets) {
			end = r.strokeOffsets[i+1]
		} else {
			end = len(r.stroke)
		}
		poly := r.stroke[start:end]
		if len(poly) < 2 {
			continue
		}
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}

	r.fillEdges(NonZero, emit)
}
