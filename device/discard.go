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

import "seehuhn.de/go/geom/rect"

// Discard is a Device which draws nothing. It still checks the order of
// calls, so that it can be used to validate drivers.
type Discard struct {
	open bool

	// Pages counts the completed pages.
	Pages int
}

// BeginPage implements the [Device] interface.
func (d *Discard) BeginPage(media, crop rect.Rect) error {
	d.open = true
	return nil
}

// EndPage implements the [Device] interface.
func (d *Discard) EndPage() error {
	if !d.open {
		return ErrNoPage
	}
	d.open = false
	d.Pages++
	return nil
}

// DrawText implements the [Device] interface.
func (d *Discard) DrawText(TextRun) error {
	if !d.open {
		return ErrNoPage
	}
	return nil
}

// DrawPath implements the [Device] interface.
func (d *Discard) DrawPath(*PathRequest) error {
	if !d.open {
		return ErrNoPage
	}
	return nil
}
