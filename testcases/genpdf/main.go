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

// Command genpdf writes sample PDF files for end-to-end runs of
// pdftopng, and optionally renders reference images with Ghostscript.
//
// It creates sample.pdf with text in several sizes, and shapes.pdf with
// one page per fill test case.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/speedata/optionparser"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pdfraster/testcases"
)

func main() {
	outDir := "testdata"
	resolution := "72"
	var reference bool

	op := optionparser.NewOptionParser()
	op.Banner = "Usage: genpdf [options]"
	op.On("-d", "--dir DIR", "output directory (default testdata)", &outDir)
	op.On("-g", "--ghostscript", "render reference PNGs with Ghostscript", &reference)
	op.On("-r", "--resolution DPI", "resolution of the reference PNGs (default 72)", &resolution)
	if err := op.Parse(); err != nil {
		op.Help()
		os.Exit(1)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fail(err)
	}

	files := []string{
		filepath.Join(outDir, "sample.pdf"),
		filepath.Join(outDir, "shapes.pdf"),
	}
	if err := testcases.WriteSample(files[0], testcases.Sample); err != nil {
		fail(err)
	}
	if err := writeShapes(files[1]); err != nil {
		fail(err)
	}

	if !reference {
		return
	}
	for _, fname := range files {
		if err := renderPNG(fname, resolution); err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "genpdf:", err)
	os.Exit(1)
}

// writeShapes draws every test case, black on white, on a page of its
// own.
func writeShapes(fname string) error {
	paper := &pdf.Rectangle{URx: 64, URy: 64}
	doc, err := document.CreateMultiPage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			page := doc.AddPage()
			page.SetPageSize(&pdf.Rectangle{URx: float64(tc.Width), URy: float64(tc.Height)})

			// test cases use a y axis pointing down
			page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
			if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
				page.Transform(tc.CTM)
			}
			page.SetFillColor(color.DeviceGray(0))

			// PDF has no quadratic curves
			for cmd, pts := range tc.Path.Iter().ToCubic() {
				switch cmd {
				case path.CmdMoveTo:
					page.MoveTo(pts[0].X, pts[0].Y)
				case path.CmdLineTo:
					page.LineTo(pts[0].X, pts[0].Y)
				case path.CmdCubeTo:
					page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
				case path.CmdClose:
					page.ClosePath()
				}
			}
			if tc.Rule == testcases.EvenOdd {
				page.FillEvenOdd()
			} else {
				page.Fill()
			}

			if err := page.Close(); err != nil {
				return fmt.Errorf("%s_%s: %w", category, tc.Name, err)
			}
		}
	}
	return doc.Close()
}

// renderPNG renders all pages of a PDF file with Ghostscript, using the
// same file naming as pdftopng.
func renderPNG(pdfPath, resolution string) error {
	base := pdfPath[:len(pdfPath)-len(filepath.Ext(pdfPath))]
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r"+resolution,
		"-dTextAlphaBits=1",
		"-dGraphicsAlphaBits=4",
		"-o", base+"-gs-%d.png",
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
