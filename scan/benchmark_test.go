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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfraster/testcases"
)

var benchSizes = []int{20, 200, 2000}

// BenchmarkRasteriserO draws an "O" with the scanline rasteriser.
func BenchmarkRasteriserO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			o := testcases.LetterO(c, c, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(o, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, v := range coverage {
						row[i] = uint8(v * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO draws the same shape with x/image/vector.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			c := float32(size) / 2
			outer := float32(size) * 0.45
			inner := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				vectorCircle(r, c, c, outer, false)
				vectorCircle(r, c, c, inner, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkGlyphSized measures the small paths typical for text at 300dpi.
func BenchmarkGlyphSized(b *testing.B) {
	cases := testcases.All["glyph"]
	r := NewRasteriser(rect.Rect{})
	emit := func(int, int, []float32) {}

	for b.Loop() {
		for _, tc := range cases {
			r.Reset(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
			if tc.CTM[0] != 0 {
				r.CTM = tc.CTM
			}
			r.FillNonZero(tc.Path, emit)
		}
	}
}

func vectorCircle(r *vector.Rasterizer, cx, cy, radius float32, reverse bool) {
	const kappa = float32(0.5522847498)
	k := kappa * radius

	r.MoveTo(cx+radius, cy)
	if reverse {
		r.CubeTo(cx+radius, cy+k, cx+k, cy+radius, cx, cy+radius)
		r.CubeTo(cx-k, cy+radius, cx-radius, cy+k, cx-radius, cy)
		r.CubeTo(cx-radius, cy-k, cx-k, cy-radius, cx, cy-radius)
		r.CubeTo(cx+k, cy-radius, cx+radius, cy-k, cx+radius, cy)
	} else {
		r.CubeTo(cx+radius, cy-k, cx+k, cy-radius, cx, cy-radius)
		r.CubeTo(cx-k, cy-radius, cx-radius, cy-k, cx-radius, cy)
		r.CubeTo(cx-radius, cy+k, cx-k, cy+radius, cx, cy+radius)
		r.CubeTo(cx+k, cy+radius, cx+radius, cy+k, cx+radius, cy)
	}
	r.ClosePath()
}
