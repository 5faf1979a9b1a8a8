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

// Package pdfsource reads PDF files and replays their pages on a
// [device.Device].
package pdfsource

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/pagetree"

	"seehuhn.de/go/pdfraster/device"
	"seehuhn.de/go/pdfraster/glyphs"
)

// Document is an open PDF file.
//
// A Document is not safe for concurrent use. To render pages in
// parallel, open the file once per goroutine.
type Document struct {
	r        *pdf.Reader
	log      *zap.Logger
	numPages int

	glyphs *glyphs.Rasteriser
	faces  map[font.Instance]glyphs.Face
}

// Option configures a [Document].
type Option func(*Document)

// WithLogger sets the logger used for warnings about the file contents.
func WithLogger(log *zap.Logger) Option {
	return func(d *Document) {
		if log != nil {
			d.log = log
		}
	}
}

// Open opens a PDF file.
func Open(fname string, opts ...Option) (*Document, error) {
	r, err := pdf.Open(fname, nil)
	if err != nil {
		return nil, err
	}

	numPages, err := pagetree.NumPages(r)
	if err != nil {
		r.Close()
		return nil, err
	}

	d := &Document{
		r:        r,
		log:      zap.NewNop(),
		numPages: numPages,
		glyphs:   glyphs.NewRasteriser(),
		faces:    make(map[font.Instance]glyphs.Face),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Close closes the underlying file.
func (d *Document) Close() error {
	return d.r.Close()
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return d.numPages
}

// PageBoxes returns the media box and the crop box of a page.
// Pages are numbered from 0.
func (d *Document) PageBoxes(pageNo int) (media, crop rect.Rect, err error) {
	pageDict, err := d.page(pageNo)
	if err != nil {
		return rect.Rect{}, rect.Rect{}, err
	}
	return d.boxes(pageDict)
}

func (d *Document) page(pageNo int) (pdf.Dict, error) {
	if pageNo < 0 || pageNo >= d.numPages {
		return nil, fmt.Errorf("page %d: %w", pageNo+1, ErrNoSuchPage)
	}
	_, pageDict, err := pagetree.GetPage(d.r, pageNo)
	if err != nil {
		return nil, err
	}
	return pageDict, nil
}

func (d *Document) boxes(pageDict pdf.Dict) (media, crop rect.Rect, err error) {
	media, err = d.readBox(pageDict["MediaBox"])
	if err != nil {
		return rect.Rect{}, rect.Rect{}, fmt.Errorf("MediaBox: %w", err)
	}
	crop = media
	if obj := pageDict["CropBox"]; obj != nil {
		c, err := d.readBox(obj)
		if err != nil {
			d.log.Warn("ignoring malformed CropBox", zap.Error(err))
		} else {
			crop = c
		}
	}
	return media, crop, nil
}

// readBox reads a PDF rectangle. The corners are normalised, so that the
// lower left corner comes first.
func (d *Document) readBox(obj pdf.Object) (rect.Rect, error) {
	a, err := pdf.GetArray(d.r, obj)
	if err != nil {
		return rect.Rect{}, err
	}
	if len(a) != 4 {
		return rect.Rect{}, errMalformedBox
	}
	var x [4]float64
	for i, o := range a {
		v, err := pdf.GetNumber(d.r, o)
		if err != nil {
			return rect.Rect{}, err
		}
		x[i] = float64(v)
	}
	return rect.Rect{
		LLx: min(x[0], x[2]),
		LLy: min(x[1], x[3]),
		URx: max(x[0], x[2]),
		URy: max(x[1], x[3]),
	}, nil
}

var (
	// ErrNoSuchPage is returned for page numbers outside the document.
	ErrNoSuchPage = errors.New("no such page")

	errMalformedBox = errors.New("malformed rectangle")
	errNotEmbedded  = errors.New("font program not embedded")
)
