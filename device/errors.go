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
	"errors"
	"fmt"

	"seehuhn.de/go/postscript/cid"
)

var (
	// ErrNoPage is returned when a page operation is attempted while no
	// page is open.
	ErrNoPage = errors.New("no page in progress")

	// ErrBadMedia is returned by BeginPage for media boxes which result
	// in an empty page.
	ErrBadMedia = errors.New("empty media box")

	// ErrPageTooLarge is returned by BeginPage when the page image would
	// exceed the size limit of the device.
	ErrPageTooLarge = errors.New("page image too large")

	// ErrBadBBox indicates a text run with a degenerate bounding box.
	ErrBadBBox = errors.New("degenerate text bounding box")

	// ErrOutOfBounds indicates that glyph cells fell outside the page.
	ErrOutOfBounds = errors.New("glyph outside the page")
)

// RenderError is returned by the drawing operations when a character or
// a path cannot be drawn. Code is only meaningful for Op "text". The
// page keeps everything drawn before the
// failure.
type RenderError struct {
	Op   string // "text", "bbox" or "path"
	Code cid.CID
	Err  error
}

func (err *RenderError) Error() string {
	if err.Op == "text" {
		return fmt.Sprintf("%s: character %d: %v", err.Op, err.Code, err.Err)
	}
	return err.Op + ": " + err.Err.Error()
}

func (err *RenderError) Unwrap() error {
	return err.Err
}

// OutputError is returned by EndPage when the page image cannot be
// written.
type OutputError struct {
	Page int
	Err  error
}

func (err *OutputError) Error() string {
	return fmt.Sprintf("page %d: %v", err.Page, err.Err)
}

func (err *OutputError) Unwrap() error {
	return err.Err
}
