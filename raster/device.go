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

// Package raster implements a [device.Device] which renders pages into
// RGB images, one image per page.
//
// Text is drawn by compositing glyph coverage bitmaps: every non-zero
// cell becomes an opaque black pixel. Paths are ignored unless a
// [PathPainter] is configured.
package raster

import (
	"image"
	"math"

	"go.uber.org/zap"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfraster/device"
)

// Device renders pages into images and passes the finished images to a
// [PageWriter].
//
// A Device is not safe for concurrent use.
type Device struct {
	xRes, yRes float64
	out        PageWriter
	cfg        config

	img         *image.RGBA
	media, crop rect.Rect
	page        int

	penX, penY float64
	clipped    int
}

var (
	_ device.Device       = (*Device)(nil)
	_ device.PageNumberer = (*Device)(nil)
)

// NewDevice returns a Device which renders at xRes by yRes pixels per
// inch, i.e. per 72 document units, and hands every finished page to out.
func NewDevice(xRes, yRes float64, out PageWriter, opts ...Option) *Device {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Device{
		xRes: xRes,
		yRes: yRes,
		out:  out,
		cfg:  cfg,
		page: 1,
	}
}

// SetPageNumber sets the number used for the next page written.
// Subsequent pages are numbered consecutively.
func (d *Device) SetPageNumber(n int) {
	d.page = n
}

// PageSize returns the size in pixels of a page with the given media box.
// Sizes are truncated toward zero; pages smaller than one pixel have
// size zero.
func (d *Device) PageSize(media rect.Rect) (width, height int) {
	fw, fh := d.pixels(media)
	if !(fw >= 1 && fh >= 1) {
		return 0, 0
	}
	return int(min(fw, maxSide)), int(min(fh, maxSide))
}

func (d *Device) pixels(media rect.Rect) (fw, fh float64) {
	return d.xRes * media.Dx() / 72, d.yRes * media.Dy() / 72
}

const (
	// maxPixels limits the number of pixels in a page image.
	maxPixels = 1 << 28

	// maxSide limits the width and height reported by PageSize.
	maxSide = 1 << 30
)

// BeginPage implements the [device.Device] interface.
// Any page which was not finished is discarded.
func (d *Device) BeginPage(media, crop rect.Rect) error {
	d.img = nil

	fw, fh := d.pixels(media)
	if !(fw >= 1 && fh >= 1) {
		return device.ErrBadMedia
	}
	if fw*fh > maxPixels {
		d.cfg.log.Warn("page too large",
			zap.Int("page", d.page),
			zap.Float64("width", fw),
			zap.Float64("height", fh))
		return device.ErrPageTooLarge
	}
	w, h := int(fw), int(fh)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}

	d.img = img
	d.media = media
	d.crop = crop
	d.penX, d.penY = 0, 0
	d.clipped = 0

	d.cfg.log.Debug("begin page",
		zap.Int("page", d.page),
		zap.Int("width", w),
		zap.Int("height", h))
	return nil
}

// EndPage implements the [device.Device] interface.
func (d *Device) EndPage() error {
	if d.img == nil {
		return device.ErrNoPage
	}
	img := d.img
	page := d.page
	d.img = nil
	d.page++

	d.cfg.log.Debug("end page",
		zap.Int("page", page),
		zap.Int("clipped", d.clipped))

	if err := d.out.WritePage(page, img); err != nil {
		return &device.OutputError{Page: page, Err: err}
	}
	return nil
}

// Image returns the image of the current page, or nil if no page is
// open. The image is owned by the device.
func (d *Device) Image() *image.RGBA {
	return d.img
}

// CropBox returns the crop box of the current page.
func (d *Device) CropBox() rect.Rect {
	return d.crop
}

// Pen returns the pixel position of the text cursor after the most
// recent text run. The y coordinate grows upwards from the bottom edge.
func (d *Device) Pen() (x, y float64) {
	return d.penX, d.penY
}

// Clipped returns the number of glyph cells on the current page which
// fell outside the image.
func (d *Device) Clipped() int {
	return d.clipped
}

// DrawPath implements the [device.Device] interface.
// Without a PathPainter this does nothing.
func (d *Device) DrawPath(p *device.PathRequest) error {
	if d.img == nil {
		return device.ErrNoPage
	}
	if d.cfg.painter == nil || p == nil || p.Path == nil {
		return nil
	}
	err := d.cfg.painter.PaintPath(d.img, d.pageMatrix(), p)
	if err != nil {
		return &device.RenderError{Op: "path", Err: err}
	}
	return nil
}

// pageMatrix maps document space to image pixels, with the origin at the
// top left corner of the image.
func (d *Device) pageMatrix() matrix.Matrix {
	sx := d.xRes / 72
	sy := d.yRes / 72
	return matrix.Matrix{
		sx, 0,
		0, -sy,
		-d.media.LLx * sx, float64(d.img.Bounds().Dy()) + d.media.LLy*sy,
	}
}

// scales returns the factors which map text run coordinates to pixels.
// The third value is the y scale used for the run origin.
func (d *Device) scales(bbox rect.Rect) (scaleX, scaleY, originY float64) {
	b := d.img.Bounds()
	scaleX = float64(b.Dx()) / bbox.Dx()
	if d.cfg.legacy {
		scaleY = float64(b.Dx()) / bbox.Dy()
		return scaleX, scaleY, scaleX
	}
	scaleY = float64(b.Dy()) / bbox.Dy()
	return scaleX, scaleY, scaleY
}

// isotropic combines the two scale factors into the single scale used to
// rasterise glyphs.
func isotropic(scaleX, scaleY float64) float64 {
	return math.Sqrt((scaleX*scaleX + scaleY*scaleY) / 2)
}
