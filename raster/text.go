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
	"errors"
	"math"

	"go.uber.org/zap"

	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/pdfraster/device"
)

// DrawText implements the [device.Device] interface.
//
// The glyphs are placed along a horizontal baseline starting at the run
// origin. Glyph cells with non-zero coverage are set to black, cells
// outside the image are skipped and counted.
func (d *Device) DrawText(run device.TextRun) error {
	if d.img == nil {
		return device.ErrNoPage
	}

	codes := run.Codes()
	if len(codes) == 0 {
		return nil
	}

	bbox := run.BBox()
	if !(bbox.Dx() > 0 && bbox.Dy() > 0) {
		return &device.RenderError{Op: "bbox", Err: device.ErrBadBBox}
	}

	scaleX, scaleY, originY := d.scales(bbox)
	scale := isotropic(scaleX, scaleY)

	o := run.Origin()
	d.penX = (o.X - bbox.LLx) * scaleX
	d.penY = (o.Y - bbox.LLy) * originY

	clipped := 0
	var firstClipped cid.CID
	for _, code := range codes {
		w, err := run.Width(code)
		if err != nil {
			d.clipped += clipped
			return &device.RenderError{Op: "text", Code: code, Err: err}
		}
		if w != 0 {
			bm, err := run.Glyph(code, scale)
			if err != nil {
				d.clipped += clipped
				return &device.RenderError{Op: "text", Code: code, Err: err}
			}
			if !bm.IsEmpty() && len(bm.Pix) < bm.Width*bm.Height {
				d.clipped += clipped
				return &device.RenderError{Op: "text", Code: code, Err: errShortBitmap}
			}
			if n := d.composite(bm); n > 0 {
				if clipped == 0 {
					firstClipped = code
				}
				clipped += n
			}
		}
		d.penX += w * scaleX
	}
	d.clipped += clipped

	if clipped > 0 {
		if d.cfg.strict {
			d.cfg.log.Warn("glyphs outside the page",
				zap.Int("page", d.page),
				zap.Int("cells", clipped))
			return &device.RenderError{Op: "text", Code: firstClipped, Err: device.ErrOutOfBounds}
		}
		d.cfg.log.Debug("glyphs outside the page",
			zap.Int("page", d.page),
			zap.Int("cells", clipped))
	}
	return nil
}

// composite draws bm at the current pen position and returns the number
// of non-zero cells which fell outside the image.
func (d *Device) composite(bm *device.Bitmap) int {
	if bm.IsEmpty() {
		return 0
	}

	b := d.img.Bounds()
	top := b.Dy() - int(math.Floor(d.penY+float64(bm.Height-bm.Descent)))
	left := int(math.Floor(d.penX)) + bm.Left

	clipped := 0
	for i := range bm.Height {
		y := top + i
		row := bm.Pix[i*bm.Width : (i+1)*bm.Width]
		for j, c := range row {
			if c == 0 {
				continue
			}
			x := left + j
			if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
				clipped++
				continue
			}
			k := d.img.PixOffset(x, y)
			pix := d.img.Pix[k : k+4 : k+4]
			pix[0] = 0
			pix[1] = 0
			pix[2] = 0
			pix[3] = 0xFF
		}
	}
	return clipped
}

var errShortBitmap = errors.New("bitmap data too short")
