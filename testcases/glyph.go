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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// Shapes resembling font outlines: counters drawn with opposite
// orientation, as in TrueType and CFF glyphs.
var glyphCases = []TestCase{
	{
		Name:   "letter_o",
		Path:   LetterO(32, 32, 26, 16),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "letter_o_evenodd",
		Path:   LetterO(32, 32, 26, 16),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "letter_l",
		Path:   Rectangle(24, 6, 32, 58),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "letter_o_large",
		Path:   LetterO(16, 16, 13, 8),
		Width:  512,
		Height: 512,
		CTM:    matrix.Matrix{16, 0, 0, 16, 0, 0},
	},
}

// LetterO returns a ring: an outer circle and an inner counter with
// opposite winding.
func LetterO(cx, cy, outer, inner float64) *path.Data {
	p := Circle(cx, cy, outer)
	return reverseCircle(p, cx, cy, inner)
}
