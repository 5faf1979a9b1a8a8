// seehuhn.de/go/pdfraster - render PDF pages to raster images
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

// Package scan converts filled outlines into per-pixel coverage values.
//
// The algorithm accumulates, for every pixel touched by an edge, the signed
// vertical extent of the edge ("cover") and the part of that extent lying
// to the right of the crossing ("area"). Integrating a scanline from left
// to right then yields the exact area of the outline inside each pixel.
package scan

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// EmitFunc receives the coverage of one scanline. Coverage values lie in
// [0, 1] and start at pixel xMin. The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// segment is a non-horizontal line segment in device space.
type segment struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope, (x1-x0)/(y1-y0)
}

func (s *segment) top() float64    { return min(s.y0, s.y1) }
func (s *segment) bottom() float64 { return max(s.y0, s.y1) }

// Rasteriser turns paths into coverage. One instance can be reused for
// many paths; its buffers grow as needed and are kept between calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps path coordinates to device pixels. It must be invertible.
	CTM matrix.Matrix

	// Clip restricts the output to this device rectangle. The corners
	// must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.
	Flatness float64

	// denseLimit is the largest bounding box area, in pixels, that is
	// rasterised with a full two-dimensional accumulation buffer. Larger
	// paths are processed one scanline at a time with an active list.
	denseLimit int

	segs    []segment
	cover   []float32 // cover deltas; overwritten with coverage on output
	area    []float32
	active  []int  // indices into segs crossing the current scanline
	rowUsed []bool // dense mode: rows touched by at least one segment

	haveBounds             bool
	minX, maxX, minY, maxY float64 // device space bounds of segs
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// the identity CTM and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   DefaultFlatness,
		denseLimit: denseLimit,
	}
}

// Reset restores the default settings for a new clip rectangle while
// keeping the allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = DefaultFlatness

	r.segs = r.segs[:0]
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.active = r.active[:0]
	r.rowUsed = r.rowUsed[:0]
	r.haveBounds = false
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.fill(p, nonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.fill(p, evenOdd, emit)
}

type windingRule int

const (
	nonZero windingRule = iota
	evenOdd
)

func (r *Rasteriser) fill(p *path.Data, rule windingRule, emit EmitFunc) {
	x0, x1, y0, y1, ok := r.buildSegments(p)
	if !ok {
		return
	}
	if (x1-x0)*(y1-y0) <= r.denseLimit {
		r.fillDense(x0, x1, y0, y1, rule, emit)
	} else {
		r.fillSparse(x0, x1, y0, y1, rule, emit)
	}
}

// buildSegments flattens p into device space line segments and returns
// the pixel range they occupy, intersected with the clip rectangle.
func (r *Rasteriser) buildSegments(p *path.Data) (x0, x1, y0, y1 int, ok bool) {
	r.segs = r.segs[:0]
	r.haveBounds = false

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addLine(cur, start) // close the previous subpath
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addLine(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCube(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addLine(cur, start)
			}
			cur = start
		}
	}
	if cur != start {
		r.addLine(cur, start)
	}

	if len(r.segs) == 0 {
		return 0, 0, 0, 0, false
	}

	x0 = max(int(math.Floor(r.minX)), int(r.Clip.LLx))
	x1 = min(int(math.Floor(r.maxX))+1, int(r.Clip.URx))
	y0 = max(int(math.Floor(r.minY)), int(r.Clip.LLy))
	y1 = min(int(math.Floor(r.maxY))+1, int(r.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return x0, x1, y0, y1, true
}

func (r *Rasteriser) apply(v vec.Vec2) (float64, float64) {
	m := r.CTM
	return m[0]*v.X + m[2]*v.Y + m[4], m[1]*v.X + m[3]*v.Y + m[5]
}

// addLine records the segment from a to b, given in path coordinates.
func (r *Rasteriser) addLine(a, b vec.Vec2) {
	ax, ay := r.apply(a)
	bx, by := r.apply(b)

	dy := by - ay
	if math.Abs(dy) < horizontalTolerance {
		return
	}
	r.segs = append(r.segs, segment{
		x0: ax, y0: ay,
		x1: bx, y1: by,
		dxdy: (bx - ax) / dy,
	})

	if !r.haveBounds {
		r.minX, r.maxX = ax, ax
		r.minY, r.maxY = ay, ay
		r.haveBounds = true
	}
	r.minX = min(r.minX, ax, bx)
	r.maxX = max(r.maxX, ax, bx)
	r.minY = min(r.minY, ay, by)
	r.maxY = max(r.maxY, ay, by)
}

// deviceLength is the length of v after the linear part of the CTM.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// flattenQuad replaces a quadratic Bézier curve by line segments. The
// number of segments keeps the device space error below Flatness.
func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		next := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addLine(prev, next)
		prev = next
	}
}

// flattenCube replaces a cubic Bézier curve by line segments, using
// Wang's bound for the number of segments.
func (r *Rasteriser) flattenCube(p0, p1, p2, p3 vec.Vec2) {
	dev := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if dev > 0 {
		if f := math.Sqrt(3 * dev / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		next := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addLine(prev, next)
		prev = next
	}
}

const (
	// DefaultFlatness is the flattening tolerance used by NewRasteriser,
	// in device pixels.
	DefaultFlatness = 0.25

	// horizontalTolerance is the smallest vertical extent of a segment
	// which can contribute coverage.
	horizontalTolerance = 1e-10

	// denseLimit is the default for Rasteriser.denseLimit.
	denseLimit = 65536
)
