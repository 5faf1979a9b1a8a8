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

// Package testcases holds named fill geometries used by the rasteriser
// tests and benchmarks, and sample documents for end-to-end runs.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase describes one filled shape on a small canvas.
type TestCase struct {
	Name   string        // lowercase a-z and _ only
	Path   *path.Data    // outline in canvas coordinates (y down)
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Rule   FillRule      // winding rule
	CTM    matrix.Matrix // zero value means identity
}

// FillRule selects how the interior of a path is determined.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// All contains all test cases, grouped by category.
var All = map[string][]TestCase{
	"fill":  fillCases,
	"curve": curveCases,
	"glyph": glyphCases,
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
