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

package scan

import (
	"cmp"
	"math"
	"slices"
)

// accumulate adds the contribution of s within scanline y to the row
// buffers cover and area, which represent pixels x0, ..., x1-1.
// Contributions left of x0 are folded into the first cell, so that the
// running sum in integrate still sees them.
func accumulate(s *segment, y int, cover, area []float32, x0, x1 int) {
	yTop := max(float64(y), s.top())
	yBot := min(float64(y+1), s.bottom())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if s.y1 < s.y0 {
		sign = -1
	}

	xa := s.x0 + s.dxdy*(yTop-s.y0)
	xb := s.x0 + s.dxdy*(yBot-s.y0)
	left, right := min(xa, xb), max(xa, xb)
	colL := int(math.Floor(left))
	colR := int(math.Floor(right))

	if colL >= x1 {
		return
	}
	if colR < x0 {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}

	if colL == colR {
		deposit(s, yTop, yBot, sign, colL, cover, area, x0, x1)
		return
	}

	// The segment crosses several pixel columns; split it at the column
	// boundaries.
	dydx := 1 / s.dxdy
	for col := colL; col <= colR; col++ {
		ya := s.y0 + dydx*(float64(col)-s.x0)
		yb := s.y0 + dydx*(float64(col+1)-s.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		deposit(s, lo, hi, sign, col, cover, area, x0, x1)
	}
}

// deposit records the part of s between lo and hi, which lies inside
// pixel column col.
func deposit(s *segment, lo, hi float64, sign float32, col int, cover, area []float32, x0, x1 int) {
	c := sign * float32(hi-lo)
	switch {
	case col < x0:
		cover[0] += c
		area[0] += c
	case col < x1:
		xMid := s.x0 + s.dxdy*((lo+hi)/2-s.y0)
		frac := xMid - float64(col)
		i := col - x0
		cover[i] += c
		area[i] += c * float32(1-frac)
	}
}

// integrate converts accumulated cover and area values into coverage,
// in place in cover.
func integrate(cover, area []float32, rule windingRule) {
	var acc float32
	for i := range cover {
		w := acc + area[i]
		acc += cover[i]
		if w < 0 {
			w = -w
		}
		if rule == nonZero {
			cover[i] = min(w, 1)
		} else {
			m := w - 2*float32(int(w/2))
			cover[i] = 1 - abs32(1-m)
		}
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// nonZeroSpan returns the part of coverage between the first and the last
// non-zero value, together with its offset.
func nonZeroSpan(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// fillDense keeps one accumulation buffer for the whole bounding box.
// This is fastest for the small paths typical for glyphs.
func (r *Rasteriser) fillDense(x0, x1, y0, y1 int, rule windingRule, emit EmitFunc) {
	w, h := x1-x0, y1-y0

	r.cover = slices.Grow(r.cover[:0], w*h)[:w*h]
	r.area = slices.Grow(r.area[:0], w*h)[:w*h]
	r.rowUsed = slices.Grow(r.rowUsed[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowUsed)

	for i := range r.segs {
		s := &r.segs[i]
		first := max(int(math.Floor(s.top())), y0)
		last := min(int(math.Floor(s.bottom()))+1, y1)
		for y := first; y < last; y++ {
			row := y - y0
			off := row * w
			accumulate(s, y, r.cover[off:off+w], r.area[off:off+w], x0, x1)
			r.rowUsed[row] = true
		}
	}

	for row := range h {
		if !r.rowUsed[row] {
			continue
		}
		off := row * w
		line := r.cover[off : off+w]
		integrate(line, r.area[off:off+w], rule)
		if span, i := nonZeroSpan(line); span != nil {
			emit(y0+row, x0+i, span)
		}
	}
}

// fillSparse works one scanline at a time, keeping a list of the segments
// which cross the current scanline.
func (r *Rasteriser) fillSparse(x0, x1, y0, y1 int, rule windingRule, emit EmitFunc) {
	w := x1 - x0
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.segs, func(a, b segment) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := y0; y < y1; y++ {
		yf := float64(y)
		for next < len(r.segs) && r.segs[next].top() < yf+1 {
			r.active = append(r.active, next)
			next++
		}

		// drop segments which end above this scanline
		kept := r.active[:0]
		for _, idx := range r.active {
			if r.segs[idx].bottom() > yf {
				kept = append(kept, idx)
			}
		}
		r.active = kept
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for _, idx := range r.active {
			s := &r.segs[idx]
			if s.top() >= yf+1 {
				continue
			}
			accumulate(s, y, r.cover, r.area, x0, x1)
			touched = true
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if span, i := nonZeroSpan(r.cover); span != nil {
			emit(y, x0+i, span)
		}
	}
}
