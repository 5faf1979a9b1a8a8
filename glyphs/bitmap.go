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

package glyphs

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/pdfraster/device"
	"seehuhn.de/go/pdfraster/scan"
)

// Rasteriser renders glyphs into coverage bitmaps and caches the results.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Threshold is the smallest coverage, in the range (0, 1], for which
	// a cell is set in the bitmap.
	Threshold float32

	// CacheSize is the maximal number of cached bitmaps. Zero selects a
	// default; a negative value disables caching.
	CacheSize int

	scan  *scan.Rasteriser
	cache map[cacheKey]*device.Bitmap
}

type cacheKey struct {
	face Face
	code cid.CID
	text string
	ppem float64
}

// NewRasteriser returns a Rasteriser with the default threshold of 0.5.
func NewRasteriser() *Rasteriser {
	return &Rasteriser{Threshold: 0.5}
}

// Bitmap renders the glyph for a character at the given font size, in
// document units, and scale, in pixels per document unit.
//
// The returned bitmap is shared with the cache and must not be modified.
func (r *Rasteriser) Bitmap(face Face, code cid.CID, text string, size, scale float64) (*device.Bitmap, error) {
	ppem := size * scale
	key := cacheKey{face: face, code: code, text: text, ppem: ppem}
	if bm, ok := r.cache[key]; ok {
		return bm, nil
	}

	bm, err := r.render(face, code, text, ppem)
	if err != nil {
		return nil, err
	}

	limit := r.CacheSize
	if limit == 0 {
		limit = defaultCacheSize
	}
	if limit > 0 {
		if r.cache == nil || len(r.cache) >= limit {
			r.cache = make(map[cacheKey]*device.Bitmap)
		}
		r.cache[key] = bm
	}
	return bm, nil
}

func (r *Rasteriser) render(face Face, code cid.CID, text string, ppem float64) (*device.Bitmap, error) {
	upem := face.UnitsPerEm()
	if !(upem > 0) || math.IsNaN(ppem) || math.IsInf(ppem, 0) || ppem < 0 {
		return nil, errBadSize
	}

	outline, err := face.Outline(code, text)
	if err != nil {
		return nil, err
	}
	if outline == nil || len(outline.Coords) == 0 || ppem == 0 {
		return &device.Bitmap{}, nil
	}

	s := ppem / upem
	first := outline.Coords[0]
	xMin, xMax := first.X, first.X
	yMin, yMax := first.Y, first.Y
	for _, c := range outline.Coords[1:] {
		xMin = min(xMin, c.X)
		xMax = max(xMax, c.X)
		yMin = min(yMin, c.Y)
		yMax = max(yMax, c.Y)
	}
	left := int(math.Floor(xMin * s))
	right := int(math.Ceil(xMax * s))
	bottom := int(math.Floor(yMin * s))
	top := int(math.Ceil(yMax * s))
	w, h := right-left, top-bottom
	if w <= 0 || h <= 0 {
		return &device.Bitmap{}, nil
	}
	if w*h > maxCells {
		return nil, errBadSize
	}

	clip := rect.Rect{URx: float64(w), URy: float64(h)}
	if r.scan == nil {
		r.scan = scan.NewRasteriser(clip)
	} else {
		r.scan.Reset(clip)
	}
	// The bitmap has its top row first, so the y axis is flipped.
	r.scan.CTM = matrix.Matrix{s, 0, 0, -s, -float64(left), float64(top)}

	threshold := r.Threshold
	if threshold <= 0 {
		threshold = 0.5
	}
	bm := &device.Bitmap{
		Width:   w,
		Height:  h,
		Pix:     make([]byte, w*h),
		Left:    left,
		Descent: -bottom,
	}
	r.scan.FillNonZero(outline, func(y, xMin int, coverage []float32) {
		row := bm.Pix[y*w : (y+1)*w]
		for i, c := range coverage {
			if c >= threshold {
				row[xMin+i] = uint8(c*255 + 0.5)
			}
		}
	})
	return bm, nil
}

const (
	defaultCacheSize = 4096

	// maxCells limits the size of a single glyph bitmap.
	maxCells = 1 << 24
)

var errBadSize = errors.New("invalid glyph size")
