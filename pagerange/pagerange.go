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

// Package pagerange parses page ranges given on the command line.
//
// Users write 1-based, inclusive ranges: "3" selects page 3, "2-5" pages
// 2 to 5, "4-" page 4 to the end and "-3" the first three pages. A
// Range stores the equivalent 0-based, half-open interval.
package pagerange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Range is a half-open interval [Start, End) of 0-based page numbers.
// End = 0 means "up to the last page".
type Range struct {
	Start, End int
}

// Parse converts the user syntax into a Range.
func Parse(s string) (Range, error) {
	var r Range
	if err := r.Set(s); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Set parses s and stores the result in r.
// Together with String, this implements the flag.Value interface.
func (r *Range) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errSyntax(s)
	}

	first, last, isRange := strings.Cut(s, "-")
	var start, end int
	var err error
	if first == "" {
		start = 1
	} else if start, err = page(first); err != nil {
		return errSyntax(s)
	}
	switch {
	case !isRange:
		end = start
	case last == "":
		end = 0
	default:
		if end, err = page(last); err != nil {
			return errSyntax(s)
		}
	}
	if isRange && first == "" && last == "" {
		return errSyntax(s)
	}
	if end != 0 && end < start {
		return fmt.Errorf("page range %q: %w", s, ErrEmpty)
	}

	r.Start = start - 1
	r.End = end
	return nil
}

// String formats r using the user syntax.
func (r Range) String() string {
	switch {
	case r.End == 0:
		return strconv.Itoa(r.Start+1) + "-"
	case r.End == r.Start+1:
		return strconv.Itoa(r.End)
	default:
		return strconv.Itoa(r.Start+1) + "-" + strconv.Itoa(r.End)
	}
}

// Clamp restricts r to a document with numPages pages and returns the
// resulting interval. The result may be empty.
func (r Range) Clamp(numPages int) (start, end int) {
	start = max(r.Start, 0)
	end = r.End
	if end == 0 || end > numPages {
		end = numPages
	}
	if start > end {
		start = end
	}
	return start, end
}

func page(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, errors.New("page numbers start at 1")
	}
	return n, nil
}

func errSyntax(s string) error {
	return fmt.Errorf("invalid page range %q", s)
}

// ErrEmpty is returned for ranges which end before they start.
var ErrEmpty = errors.New("empty page range")
