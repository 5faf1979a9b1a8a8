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

package testcases

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/gofont"
	"seehuhn.de/go/pdf/graphics/color"
)

// TextLine is a line of text on a sample page. X and Y give the start of
// the baseline, in PDF units.
type TextLine struct {
	X, Y float64
	Size float64
	Text string
}

// SamplePage describes one page of a sample document.
type SamplePage struct {
	Width, Height float64
	Lines         []TextLine
	Boxes         []rect.Rect // filled in black
}

// Sample is a small document with text in different sizes.
var Sample = []SamplePage{
	{
		Width:  612,
		Height: 792,
		Lines: []TextLine{
			{X: 72, Y: 700, Size: 24, Text: "Hello, World!"},
			{X: 72, Y: 660, Size: 12, Text: "The quick brown fox jumps over the lazy dog."},
			{X: 72, Y: 640, Size: 8, Text: "pack my box with five dozen liquor jugs"},
		},
		Boxes: []rect.Rect{
			{LLx: 72, LLy: 600, URx: 540, URy: 602},
		},
	},
	{
		Width:  612,
		Height: 612,
		Lines: []TextLine{
			{X: 100, Y: 300, Size: 48, Text: "lll"},
		},
	},
	{
		Width:  200,
		Height: 100,
		Lines: []TextLine{
			{X: 10, Y: 40, Size: 20, Text: "ppp"},
			{X: 150, Y: 40, Size: 20, Text: "overflowing"},
		},
	},
}

// WriteSample writes a PDF file with the given pages. The text uses the
// embedded Go Regular font.
func WriteSample(fname string, pages []SamplePage) error {
	paper := &pdf.Rectangle{URx: pages[0].Width, URy: pages[0].Height}
	doc, err := document.CreateMultiPage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	F, err := gofont.Regular.NewSimple(nil)
	if err != nil {
		return err
	}

	for _, p := range pages {
		page := doc.AddPage()
		page.SetPageSize(&pdf.Rectangle{URx: p.Width, URy: p.Height})

		page.SetFillColor(color.DeviceGray(0))
		for _, b := range p.Boxes {
			page.Rectangle(b.LLx, b.LLy, b.Dx(), b.Dy())
			page.Fill()
		}
		for _, l := range p.Lines {
			page.TextSetFont(F, l.Size)
			page.TextBegin()
			page.TextFirstLine(l.X, l.Y)
			page.TextShow(l.Text)
			page.TextEnd()
		}

		if err := page.Close(); err != nil {
			return err
		}
	}
	return doc.Close()
}
