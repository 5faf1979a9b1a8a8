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

package glyphs

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/pdfraster/device"
	"seehuhn.de/go/pdfraster/testcases"
)

// boxFace has a single rectangular glyph.
type boxFace struct {
	upem  float64
	box   *path.Data
	err   error
	calls int
}

func (f *boxFace) UnitsPerEm() float64 { return f.upem }

func (f *boxFace) Outline(code cid.CID, text string) (*path.Data, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if code == 0 {
		return &path.Data{}, nil
	}
	return f.box, nil
}

func bounds(p *path.Data) (xMin, yMin, xMax, yMax float64) {
	xMin, yMin = math.Inf(1), math.Inf(1)
	xMax, yMax = math.Inf(-1), math.Inf(-1)
	for _, c := range p.Coords {
		xMin = min(xMin, c.X)
		yMin = min(yMin, c.Y)
		xMax = max(xMax, c.X)
		yMax = max(yMax, c.Y)
	}
	return
}

func TestBoxGlyph(t *testing.T) {
	cases := []struct {
		name       string
		box        *path.Data
		w, h       int
		left, desc int
	}{
		{"origin", testcases.Rectangle(0, 0, 500, 700), 5, 7, 0, 0},
		{"offset", testcases.Rectangle(-100, -200, 400, 500), 5, 7, -1, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			face := &boxFace{upem: 1000, box: c.box}
			r := NewRasteriser()
			bm, err := r.Bitmap(face, 1, "", 10, 1)
			if err != nil {
				t.Fatal(err)
			}
			got := device.Bitmap{Width: bm.Width, Height: bm.Height, Left: bm.Left, Descent: bm.Descent}
			want := device.Bitmap{Width: c.w, Height: c.h, Left: c.left, Descent: c.desc}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("bitmap geometry (-want +got):\n%s", diff)
			}
			for i, v := range bm.Pix {
				if v != 0xFF {
					t.Errorf("cell %d has coverage %d", i, v)
					break
				}
			}
		})
	}
}

func TestEmptyGlyph(t *testing.T) {
	face := &boxFace{upem: 1000, box: testcases.Rectangle(0, 0, 500, 500)}
	r := NewRasteriser()
	bm, err := r.Bitmap(face, 0, " ", 12, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !bm.IsEmpty() {
		t.Errorf("got %dx%d bitmap for an empty outline", bm.Width, bm.Height)
	}

	bm, err = r.Bitmap(face, 1, "", 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !bm.IsEmpty() {
		t.Error("zero size gave a non-empty bitmap")
	}
}

func TestCache(t *testing.T) {
	face := &boxFace{upem: 1000, box: testcases.Rectangle(0, 0, 500, 500)}
	r := NewRasteriser()
	a, err := r.Bitmap(face, 1, "", 12, 2)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Bitmap(face, 1, "", 12, 2)
	if err != nil {
		t.Fatal(err)
	}
	if a != b || face.calls != 1 {
		t.Errorf("bitmap was rendered %d times", face.calls)
	}
	if _, err := r.Bitmap(face, 1, "", 12, 3); err != nil {
		t.Fatal(err)
	}
	if face.calls != 2 {
		t.Error("different scale was served from the cache")
	}

	r = &Rasteriser{CacheSize: -1}
	face.calls = 0
	for range 3 {
		if _, err := r.Bitmap(face, 1, "", 12, 2); err != nil {
			t.Fatal(err)
		}
	}
	if face.calls != 3 {
		t.Errorf("disabled cache: %d outline calls, want 3", face.calls)
	}
}

func TestFaceError(t *testing.T) {
	errBroken := errors.New("broken")
	face := &boxFace{upem: 1000, err: errBroken}
	r := NewRasteriser()
	if _, err := r.Bitmap(face, 1, "", 12, 2); !errors.Is(err, errBroken) {
		t.Errorf("got %v", err)
	}

	face = &boxFace{upem: 0, box: testcases.Rectangle(0, 0, 1, 1)}
	if _, err := r.Bitmap(face, 1, "", 12, 2); err == nil {
		t.Error("zero units per em accepted")
	}
}

func TestGoFace(t *testing.T) {
	face := GoRegular()
	if face.UnitsPerEm() != 2048 {
		t.Errorf("units per em = %g", face.UnitsPerEm())
	}

	space, err := face.Outline(3, " ")
	if err != nil {
		t.Fatal(err)
	}
	if len(space.Cmds) != 0 {
		t.Error("space has an outline")
	}

	l, err := face.Outline(0, "l")
	if err != nil {
		t.Fatal(err)
	}
	_, yMin, _, yMax := bounds(l)
	if math.Abs(yMin) > 1 || yMax < 1000 {
		t.Errorf("letter l spans y=%g..%g", yMin, yMax)
	}

	p, err := face.Outline(0, "p")
	if err != nil {
		t.Fatal(err)
	}
	if _, yMin, _, _ := bounds(p); yMin >= 0 {
		t.Error("letter p has no descender")
	}
}

func TestFacesAgree(t *testing.T) {
	sf, err := ReadSFNT(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	gf := GoRegular()
	if sf.UnitsPerEm() != gf.UnitsPerEm() {
		t.Fatalf("units per em %g != %g", sf.UnitsPerEm(), gf.UnitsPerEm())
	}

	for _, text := range []string{"l", "o", "p", "A"} {
		a, err := sf.Outline(0, text)
		if err != nil {
			t.Fatal(err)
		}
		b, err := gf.Outline(0, text)
		if err != nil {
			t.Fatal(err)
		}
		ax0, ay0, ax1, ay1 := bounds(a)
		bx0, by0, bx1, by1 := bounds(b)
		for _, d := range []float64{ax0 - bx0, ay0 - by0, ax1 - bx1, ay1 - by1} {
			if math.Abs(d) > 1 {
				t.Errorf("%q: bounds differ: (%g %g %g %g) vs (%g %g %g %g)",
					text, ax0, ay0, ax1, ay1, bx0, by0, bx1, by1)
				break
			}
		}
	}
}

func TestOutlineWithoutText(t *testing.T) {
	sf, err := ReadSFNT(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range "Alp" {
		want, err := sf.Outline(0, string(r))
		if err != nil {
			t.Fatal(err)
		}
		got, err := sf.Outline(cid.CID(r), "")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%q: outline (-want +got):\n%s", r, diff)
		}
	}
}

func TestGlyphBitmap(t *testing.T) {
	r := NewRasteriser()
	face := GoRegular()

	// 12pt at 300dpi
	l, err := r.Bitmap(face, 0, "l", 12, 300.0/72)
	if err != nil {
		t.Fatal(err)
	}
	if l.IsEmpty() {
		t.Fatal("empty bitmap for letter l")
	}
	if l.Descent != 0 {
		t.Errorf("letter l: descent %d", l.Descent)
	}
	if l.Height < 30 || l.Height > 45 {
		t.Errorf("letter l: height %d", l.Height)
	}
	mid := l.Height / 2
	full := false
	for j := range l.Width {
		if l.At(j, mid) == 0xFF {
			full = true
		}
	}
	if !full {
		t.Error("letter l: stem is not fully covered")
	}

	p, err := r.Bitmap(face, 0, "p", 12, 300.0/72)
	if err != nil {
		t.Fatal(err)
	}
	if p.Descent <= 0 {
		t.Errorf("letter p: descent %d", p.Descent)
	}
}
