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

package raster

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfraster/device"
	"seehuhn.de/go/pdfraster/scan"
)

// PathPainter is an optional extension which draws paths onto the page.
//
// PaintPath is called with the page image and a matrix which maps
// document space to image pixels. The path itself is in user space, and
// p.CTM maps it to document space.
type PathPainter interface {
	PaintPath(img *image.RGBA, page matrix.Matrix, p *device.PathRequest) error
}

// FillPainter is a PathPainter which fills paths in black. Stroke-only
// paths are not drawn.
//
// A FillPainter is not safe for concurrent use.
type FillPainter struct {
	r *scan.Rasteriser
}

// PaintPath implements the [PathPainter] interface.
func (f *FillPainter) PaintPath(img *image.RGBA, page matrix.Matrix, p *device.PathRequest) error {
	if !p.Fill {
		return nil
	}

	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	if f.r == nil {
		f.r = scan.NewRasteriser(clip)
	} else {
		f.r.Reset(clip)
	}
	f.r.CTM = p.CTM.Mul(page)

	emit := func(y, xMin int, coverage []float32) {
		k := img.PixOffset(xMin, y)
		for _, c := range coverage {
			keep := 1 - c
			img.Pix[k] = uint8(float32(img.Pix[k])*keep + 0.5)
			img.Pix[k+1] = uint8(float32(img.Pix[k+1])*keep + 0.5)
			img.Pix[k+2] = uint8(float32(img.Pix[k+2])*keep + 0.5)
			k += 4
		}
	}
	if p.EvenOdd {
		f.r.FillEvenOdd(p.Path, emit)
	} else {
		f.r.FillNonZero(p.Path, emit)
	}
	return nil
}
