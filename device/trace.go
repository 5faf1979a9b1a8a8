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

package device

import (
	"go.uber.org/zap"

	"seehuhn.de/go/geom/rect"
)

// Trace wraps a Device and logs every call at debug level.
type Trace struct {
	Next Device
	Log  *zap.Logger
}

// NewTrace returns a Trace which forwards to next.
// If log is nil, nothing is logged.
func NewTrace(next Device, log *zap.Logger) *Trace {
	if log == nil {
		log = zap.NewNop()
	}
	return &Trace{Next: next, Log: log.Named("trace")}
}

// SetPageNumber forwards the page number if the wrapped device
// implements [PageNumberer].
func (t *Trace) SetPageNumber(n int) {
	t.Log.Debug("page number", zap.Int("page", n))
	if pn, ok := t.Next.(PageNumberer); ok {
		pn.SetPageNumber(n)
	}
}

// BeginPage implements the [Device] interface.
func (t *Trace) BeginPage(media, crop rect.Rect) error {
	err := t.Next.BeginPage(media, crop)
	t.Log.Debug("begin page",
		zap.Float64s("media", []float64{media.LLx, media.LLy, media.URx, media.URy}),
		zap.Float64s("crop", []float64{crop.LLx, crop.LLy, crop.URx, crop.URy}),
		zap.Error(err))
	return err
}

// EndPage implements the [Device] interface.
func (t *Trace) EndPage() error {
	err := t.Next.EndPage()
	t.Log.Debug("end page", zap.Error(err))
	return err
}

// DrawText implements the [Device] interface.
func (t *Trace) DrawText(run TextRun) error {
	err := t.Next.DrawText(run)
	o := run.Origin()
	t.Log.Debug("text",
		zap.Int("chars", len(run.Codes())),
		zap.Float64("x", o.X),
		zap.Float64("y", o.Y),
		zap.Error(err))
	return err
}

// DrawPath implements the [Device] interface.
func (t *Trace) DrawPath(p *PathRequest) error {
	err := t.Next.DrawPath(p)
	var req PathRequest
	commands := 0
	if p != nil {
		req = *p
		if p.Path != nil {
			commands = len(p.Path.Cmds)
		}
	}
	t.Log.Debug("path",
		zap.Int("commands", commands),
		zap.Bool("fill", req.Fill),
		zap.Bool("stroke", req.Stroke),
		zap.Error(err))
	return err
}
