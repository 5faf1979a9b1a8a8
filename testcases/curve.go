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

import "seehuhn.de/go/geom/path"

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   (&path.Data{}).MoveTo(pt(10, 50)).QuadTo(pt(32, 10), pt(54, 50)).Close(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic",
		Path:   (&path.Data{}).MoveTo(pt(10, 50)).CubeTo(pt(20, 10), pt(44, 10), pt(54, 50)).Close(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_loop",
		Path:   (&path.Data{}).MoveTo(pt(10, 40)).CubeTo(pt(60, 5), pt(4, 5), pt(54, 40)).Close(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Path:   Circle(32, 32, 25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_small",
		Path:   Circle(8.3, 7.6, 3.1),
		Width:  16,
		Height: 16,
	},
}

// Circle approximates a circle by four cubic Bézier segments.
func Circle(cx, cy, r float64) *path.Data {
	k := r * kappa
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		Close()
}

// reverseCircle is Circle traversed in the opposite direction.
func reverseCircle(p *path.Data, cx, cy, r float64) *path.Data {
	k := r * kappa
	return p.
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)).
		Close()
}
