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

package pdfsource

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/pdfraster/device"
	"seehuhn.de/go/pdfraster/glyphs"
)

// textRun is a sequence of characters in the same font and size, placed
// next to each other on a horizontal baseline. All coordinates are in
// page space, so that the media box serves as the bounding box.
type textRun struct {
	doc  *Document
	face glyphs.Face
	font font.Instance
	size float64
	log  *zap.Logger

	origin vec.Vec2
	pen    vec.Vec2
	bbox   rect.Rect

	codes  []cid.CID
	widths map[cid.CID]float64
	text   map[cid.CID]string
}

var _ device.TextRun = (*textRun)(nil)

// Codes implements the [device.TextRun] interface.
func (r *textRun) Codes() []cid.CID { return r.codes }

// Origin implements the [device.TextRun] interface.
func (r *textRun) Origin() vec.Vec2 { return r.origin }

// BBox implements the [device.TextRun] interface.
func (r *textRun) BBox() rect.Rect { return r.bbox }

// Width implements the [device.TextRun] interface.
func (r *textRun) Width(code cid.CID) (float64, error) {
	return r.widths[code], nil
}

// Glyph implements the [device.TextRun] interface.
// Characters missing from the font are drawn as empty glyphs.
func (r *textRun) Glyph(code cid.CID, scale float64) (*device.Bitmap, error) {
	bm, err := r.doc.glyphs.Bitmap(r.face, code, r.text[code], r.size, scale)
	if errors.Is(err, glyphs.ErrNoGlyph) {
		r.log.Debug("missing glyph", zap.Uint32("code", uint32(code)))
		return &device.Bitmap{}, nil
	}
	return bm, err
}

// continues reports whether a character can be appended to the run.
func (r *textRun) continues(f font.Instance, size float64, pos vec.Vec2, code cid.CID, advance float64) bool {
	if f != r.font || size != r.size {
		return false
	}
	tol := max(r.size*runTolerance, 1e-6)
	if math.Abs(pos.Y-r.pen.Y) > tol || math.Abs(pos.X-r.pen.X) > tol {
		return false
	}
	if w, seen := r.widths[code]; seen && math.Abs(w-advance) > 1e-9 {
		return false
	}
	return true
}

func (r *textRun) add(code cid.CID, text string, advance float64) {
	r.codes = append(r.codes, code)
	r.widths[code] = advance
	if _, seen := r.text[code]; !seen {
		r.text[code] = text
	}
	r.pen.X += advance
}

// runTolerance is the largest gap between two characters of a run, as a
// fraction of the font size.
const runTolerance = 0.01
