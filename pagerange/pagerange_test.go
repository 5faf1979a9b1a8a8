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

package pagerange

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Range
	}{
		{"1", Range{0, 1}},
		{"3", Range{2, 3}},
		{"2-5", Range{1, 5}},
		{"4-", Range{3, 0}},
		{"-3", Range{0, 3}},
		{" 7-7 ", Range{6, 7}},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "-", "0", "a", "1-b", "2-3-4", "-0", "1.5"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("%q: no error", in)
		}
	}
	if _, err := Parse("5-2"); !errors.Is(err, ErrEmpty) {
		t.Errorf("5-2: got %v, want ErrEmpty", err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, in := range []string{"1", "12", "2-5", "4-"} {
		r, err := Parse(in)
		if err != nil {
			t.Fatal(err)
		}
		if r.String() != in {
			t.Errorf("%q: formatted as %q", in, r.String())
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		r          Range
		numPages   int
		start, end int
	}{
		{Range{0, 0}, 10, 0, 10},
		{Range{3, 0}, 10, 3, 10},
		{Range{1, 5}, 10, 1, 5},
		{Range{1, 50}, 10, 1, 10},
		{Range{20, 30}, 10, 10, 10},
		{Range{0, 3}, 0, 0, 0},
	}
	for _, c := range cases {
		start, end := c.r.Clamp(c.numPages)
		if start != c.start || end != c.end {
			t.Errorf("%+v.Clamp(%d) = [%d, %d), want [%d, %d)",
				c.r, c.numPages, start, end, c.start, c.end)
		}
	}
}
