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

// Package device defines the interface between a page driver, which
// decodes document content, and an output device, which turns drawing
// commands into pages.
//
// A driver calls BeginPage, then any number of DrawText and DrawPath, and
// finally EndPage, once for every page. Devices are not safe for
// concurrent use; parallel rendering needs one device per goroutine.
package device

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/cid"
)

// Device is the set of capabilities a page driver needs from an output
// device. All coordinates are in document units of 1/72 inch.
type Device interface {
	// BeginPage starts a new page. The media box determines the page size.
	// The crop box is recorded, but devices are free to ignore it.
	BeginPage(media, crop rect.Rect) error

	// EndPage finishes the current page and writes it out. Calling
	// EndPage without an open page returns ErrNoPage.
	EndPage() error

	// DrawText shows a run of characters.
	DrawText(run TextRun) error

	// DrawPath paints a path.
	DrawPath(p *PathRequest) error
}

// PageNumberer is implemented by devices which name their output after
// the page number. Drivers which know the page number call SetPageNumber
// before BeginPage. Page numbers are 1-based.
type PageNumberer interface {
	SetPageNumber(n int)
}

// TextRun is a sequence of already decoded characters, to be shown
// starting at Origin. The run is only valid during the DrawText call.
type TextRun interface {
	// Codes returns the character codes, in rendering order.
	Codes() []cid.CID

	// Origin is the position of the first character.
	Origin() vec.Vec2

	// BBox describes the coordinate space of the run. Devices use it to
	// map the run onto their pixel grid.
	BBox() rect.Rect

	// Width returns the advance width of a character, in the units of
	// BBox.
	Width(code cid.CID) (float64, error)

	// Glyph returns the coverage bitmap of a character, rendered at the
	// given number of pixels per unit.
	Glyph(code cid.CID, scale float64) (*Bitmap, error)
}

// Bitmap is the coverage mask of a rendered glyph.
type Bitmap struct {
	Width, Height int

	// Pix holds Width*Height coverage values in row-major order, top row
	// first. Zero means not covered.
	Pix []byte

	// Left is the horizontal offset from the pen position to the first
	// column, in pixels.
	Left int

	// Descent is the number of rows which lie below the baseline. With
	// Descent 0 the bottom row sits directly on the baseline.
	Descent int
}

// IsEmpty reports whether the bitmap has no cells.
func (b *Bitmap) IsEmpty() bool {
	return b == nil || b.Width <= 0 || b.Height <= 0
}

// At returns the coverage of cell (x, y).
func (b *Bitmap) At(x, y int) byte {
	return b.Pix[y*b.Width+x]
}

// PathRequest describes a path painting operation.
type PathRequest struct {
	// Path is given in user space.
	Path *path.Data

	// CTM maps user space to document space.
	CTM matrix.Matrix

	Fill    bool
	EvenOdd bool // fill rule, only used if Fill is set
	Stroke  bool

	// LineWidth is the stroke width in user space.
	LineWidth float64
}
