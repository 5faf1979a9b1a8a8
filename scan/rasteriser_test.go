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
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfraster/testcases"
)

// render fills tc into a float buffer of size tc.Width*tc.Height.
// The limit argument overrides the dense/sparse cutoff.
func render(t *testing.T, tc testcases.TestCase, limit int) []float32 {
	t.Helper()

	w, h := tc.Width, tc.Height
	r := NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	r.denseLimit = limit
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}

	buf := make([]float32, w*h)
	emit := func(y, xMin int, coverage []float32) {
		if y < 0 || y >= h || xMin < 0 || xMin+len(coverage) > w {
			t.Fatalf("row %d [%d,%d) outside the %dx%d clip",
				y, xMin, xMin+len(coverage), w, h)
		}
		copy(buf[y*w+xMin:], coverage)
	}
	if tc.Rule == testcases.EvenOdd {
		r.FillEvenOdd(tc.Path, emit)
	} else {
		r.FillNonZero(tc.Path, emit)
	}
	return buf
}

func allCases() []testcases.TestCase {
	var res []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			tc.Name = category + "_" + tc.Name
			res = append(res, tc)
		}
	}
	return res
}

// TestStrategiesAgree checks that the dense buffer and the active segment
// list produce the same coverage.
func TestStrategiesAgree(t *testing.T) {
	for _, tc := range allCases() {
		t.Run(tc.Name, func(t *testing.T) {
			dense := render(t, tc, math.MaxInt)
			sparse := render(t, tc, 0)
			for i := range dense {
				if d := math.Abs(float64(dense[i] - sparse[i])); d > 1e-4 {
					t.Fatalf("pixel (%d,%d): dense %.5f, sparse %.5f",
						i%tc.Width, i/tc.Width, dense[i], sparse[i])
				}
			}
		})
	}
}

// TestCoverageRange checks that all coverage values lie in [0, 1] and
// that every shape produces some output.
func TestCoverageRange(t *testing.T) {
	for _, tc := range allCases() {
		t.Run(tc.Name, func(t *testing.T) {
			buf := render(t, tc, denseLimit)
			var total float64
			for i, c := range buf {
				if c < 0 || c > 1 {
					t.Fatalf("pixel %d: coverage %f outside [0,1]", i, c)
				}
				total += float64(c)
			}
			if total == 0 {
				t.Error("shape produced no coverage")
			}
		})
	}
}

// TestTriangleCoverage verifies exact coverage values for a thin triangle.
// The triangle (0,0)→(10,0)→(10,1) has the diagonal edge y = x/10, so
// pixel x has coverage (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 10, URy: 1})
	got := make([]float32, 10)
	r.FillNonZero(p, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(got[xMin:], cov)
		}
	})

	for x := range 10 {
		want := float32(2*x+1) / 20
		if math.Abs(float64(got[x]-want)) > 1e-6 {
			t.Errorf("pixel %d: got %.4f, want %.4f", x, got[x], want)
		}
	}
}

func TestRectangleExact(t *testing.T) {
	tc := testcases.TestCase{
		Path:   testcases.Rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
	}
	for _, limit := range []int{math.MaxInt, 0} {
		buf := render(t, tc, limit)
		for y := range 64 {
			for x := range 64 {
				want := float32(0)
				if x >= 10 && x < 44 && y >= 10 && y < 44 {
					want = 1
				}
				if got := buf[y*64+x]; got != want {
					t.Fatalf("limit %d, pixel (%d,%d): got %f, want %f",
						limit, x, y, got, want)
				}
			}
		}
	}
}

func TestWindingRules(t *testing.T) {
	star := testcases.Star(32, 32, 25)
	centre := 32*64 + 32

	nz := render(t, testcases.TestCase{Path: star, Width: 64, Height: 64}, denseLimit)
	eo := render(t, testcases.TestCase{Path: star, Width: 64, Height: 64, Rule: testcases.EvenOdd}, denseLimit)

	if nz[centre] < 0.999 {
		t.Errorf("nonzero: centre coverage %f, want 1", nz[centre])
	}
	if eo[centre] > 1e-3 {
		t.Errorf("even-odd: centre coverage %f, want 0", eo[centre])
	}
}

// TestRingArea compares the total coverage of a ring with its exact area.
func TestRingArea(t *testing.T) {
	tc := testcases.TestCase{
		Path:   testcases.LetterO(32, 32, 26, 16),
		Width:  64,
		Height: 64,
	}
	var total float64
	for _, c := range render(t, tc, denseLimit) {
		total += float64(c)
	}
	want := math.Pi * (26*26 - 16*16)
	if math.Abs(total-want)/want > 0.01 {
		t.Errorf("ring area %.1f, want %.1f", total, want)
	}
}

func TestScaledRectangle(t *testing.T) {
	tc := testcases.TestCase{
		Path:   testcases.Rectangle(2, 2, 14, 14),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{4, 0, 0, 4, 0, 0},
	}
	buf := render(t, tc, denseLimit)
	for _, p := range []struct {
		x, y int
		want float32
	}{
		{8, 8, 1}, {55, 55, 1}, {7, 8, 0}, {56, 30, 0}, {30, 7, 0},
	} {
		if got := buf[p.y*64+p.x]; got != p.want {
			t.Errorf("pixel (%d,%d): got %f, want %f", p.x, p.y, got, p.want)
		}
	}
}

func TestOpenSubpathIsClosed(t *testing.T) {
	closed := testcases.Triangle(10, 50, 32, 10, 54, 50)
	open := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 50}).
		LineTo(vec.Vec2{X: 32, Y: 10}).
		LineTo(vec.Vec2{X: 54, Y: 50})

	a := render(t, testcases.TestCase{Path: closed, Width: 64, Height: 64}, denseLimit)
	b := render(t, testcases.TestCase{Path: open, Width: 64, Height: 64}, denseLimit)
	if !slices.Equal(a, b) {
		t.Error("open subpath filled differently from the closed one")
	}
}

func TestEmptyPath(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	called := false
	emit := func(int, int, []float32) { called = true }

	r.FillNonZero(&path.Data{}, emit)
	r.FillNonZero((&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 1}).LineTo(vec.Vec2{X: 8, Y: 1}), emit)
	if called {
		t.Error("degenerate path produced coverage")
	}
}

func TestReset(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}
	r.Flatness = 3
	r.FillNonZero(testcases.Circle(5, 5, 4), func(int, int, []float32) {})

	clip := rect.Rect{URx: 20, URy: 20}
	r.Reset(clip)
	if r.CTM != matrix.Identity || r.Clip != clip || r.Flatness != DefaultFlatness {
		t.Errorf("Reset left CTM=%v Clip=%v Flatness=%v", r.CTM, r.Clip, r.Flatness)
	}
	if len(r.segs) != 0 {
		t.Errorf("Reset kept %d segments", len(r.segs))
	}
}
