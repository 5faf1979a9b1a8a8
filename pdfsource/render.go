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
	"fmt"
	"math"

	"go.uber.org/zap"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/reader"
	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/pdfraster/device"
)

// RenderPage draws page pageNo, counted from 0, on dev.
//
// If dev implements [device.PageNumberer], it is told the 1-based page
// number first. When drawing fails, the page is abandoned without
// calling EndPage.
func (d *Document) RenderPage(dev device.Device, pageNo int) error {
	pageDict, err := d.page(pageNo)
	if err != nil {
		return err
	}
	media, crop, err := d.boxes(pageDict)
	if err != nil {
		return fmt.Errorf("page %d: %w", pageNo+1, err)
	}

	if pn, ok := dev.(device.PageNumberer); ok {
		pn.SetPageNumber(pageNo + 1)
	}
	if err := dev.BeginPage(media, crop); err != nil {
		return fmt.Errorf("page %d: %w", pageNo+1, err)
	}

	p := &pageRenderer{
		doc:   d,
		dev:   dev,
		media: media,
		rd:    reader.New(d.r, nil),
		log:   d.log.With(zap.Int("page", pageNo+1)),
	}
	p.setup()

	p.rd.Reset()
	err = p.rd.ParsePage(pageDict, matrix.Identity)
	if err == nil {
		err = p.flush()
	}
	if err != nil {
		return fmt.Errorf("page %d: %w", pageNo+1, err)
	}
	return dev.EndPage()
}

// pageRenderer translates the callbacks of the content stream reader into
// device calls.
type pageRenderer struct {
	doc   *Document
	dev   device.Device
	media rect.Rect
	rd    *reader.Reader
	log   *zap.Logger

	path *path.Data
	run  *textRun
}

func (p *pageRenderer) setup() {
	p.rd.Character = p.character
	p.rd.PathMoveTo = p.moveTo
	p.rd.PathLineTo = p.lineTo
	p.rd.PathCurveTo = p.curveTo
	p.rd.PathRectangle = p.rectangle
	p.rd.PathClose = p.closePath
	p.rd.PathPaint = p.paint
}

// character adds one character to the current text run. A new run is
// started whenever the font, the size or the baseline changes, or when
// the character does not continue where the previous one ended.
func (p *pageRenderer) character(code cid.CID, text string, width float64) error {
	inst := p.rd.TextFont
	if inst == nil {
		return nil
	}

	fs := p.rd.TextFontSize
	hs := p.rd.TextHorizontalScaling
	rise := p.rd.TextRise
	full := matrix.Matrix{fs * hs, 0, 0, fs, 0, rise}.Mul(p.rd.TextMatrix).Mul(p.rd.CTM)
	size := math.Hypot(full[2], full[3])

	m := p.rd.TextMatrix.Mul(p.rd.CTM)
	advance := math.Hypot(m[0]*width, m[1]*width)

	x, y := p.rd.GetTextPositionDevice()
	pos := vec.Vec2{X: x, Y: y}

	if p.run != nil && !p.run.continues(inst, size, pos, code, advance) {
		if err := p.flush(); err != nil {
			return err
		}
	}
	if p.run == nil {
		p.run = &textRun{
			doc:    p.doc,
			face:   p.doc.face(inst, p.log),
			font:   inst,
			size:   size,
			origin: pos,
			pen:    pos,
			bbox:   p.media,
			widths: make(map[cid.CID]float64),
			text:   make(map[cid.CID]string),
			log:    p.log,
		}
	}
	p.run.add(code, text, advance)
	return nil
}

// flush sends the pending text run to the device.
func (p *pageRenderer) flush() error {
	run := p.run
	p.run = nil
	if run == nil || len(run.codes) == 0 {
		return nil
	}
	return p.dev.DrawText(run)
}

func (p *pageRenderer) current() *path.Data {
	if p.path == nil {
		p.path = &path.Data{}
	}
	return p.path
}

func (p *pageRenderer) moveTo(x, y float64) error {
	p.current().MoveTo(vec.Vec2{X: x, Y: y})
	return nil
}

func (p *pageRenderer) lineTo(x, y float64) error {
	p.current().LineTo(vec.Vec2{X: x, Y: y})
	return nil
}

func (p *pageRenderer) curveTo(x1, y1, x2, y2, x3, y3 float64) error {
	p.current().CubeTo(vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}, vec.Vec2{X: x3, Y: y3})
	return nil
}

func (p *pageRenderer) rectangle(x, y, w, h float64) error {
	p.current().
		MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y + h}).
		LineTo(vec.Vec2{X: x, Y: y + h}).
		Close()
	return nil
}

func (p *pageRenderer) closePath() error {
	p.current().Close()
	return nil
}

// paint handles the path painting operators.
func (p *pageRenderer) paint(op string) error {
	req := &device.PathRequest{
		Path:      p.path,
		CTM:       p.rd.CTM,
		LineWidth: p.rd.LineWidth,
	}
	p.path = nil
	if req.Path == nil {
		return nil
	}

	switch op {
	case "f", "F":
		req.Fill = true
	case "f*":
		req.Fill, req.EvenOdd = true, true
	case "S":
		req.Stroke = true
	case "s":
		req.Path.Close()
		req.Stroke = true
	case "B":
		req.Fill, req.Stroke = true, true
	case "B*":
		req.Fill, req.Stroke, req.EvenOdd = true, true, true
	case "b":
		req.Path.Close()
		req.Fill, req.Stroke = true, true
	case "b*":
		req.Path.Close()
		req.Fill, req.Stroke, req.EvenOdd = true, true, true
	default: // "n"
		return nil
	}

	// keep the drawing order of text and paths
	if err := p.flush(); err != nil {
		return err
	}
	return p.dev.DrawPath(req)
}
