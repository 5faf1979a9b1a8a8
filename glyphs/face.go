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

// Package glyphs turns glyph outlines into coverage bitmaps.
package glyphs

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	xsfnt "golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

// Face is a source of glyph outlines. Faces are used as map keys, so
// implementations must be comparable.
type Face interface {
	// UnitsPerEm is the size of the em square in design units.
	UnitsPerEm() float64

	// Outline returns the outline of the glyph for the given character,
	// in design units with the y axis pointing up. Text is the Unicode
	// text for the character, if known. Glyphs without ink have an
	// empty outline.
	Outline(code cid.CID, text string) (*path.Data, error)
}

// SFNTFace gives access to the glyphs of a TrueType or OpenType font.
type SFNTFace struct {
	font   *sfnt.Font
	lookup func(rune) glyph.ID
}

// NewSFNTFace returns a Face for f. If the font has a usable character
// map, glyphs are found via the character text, then via the character
// code. Otherwise the character code is used as the glyph ID.
func NewSFNTFace(f *sfnt.Font) *SFNTFace {
	face := &SFNTFace{font: f}
	if f.CMapTable != nil {
		if sub, err := f.CMapTable.GetBest(); err == nil && sub != nil {
			face.lookup = sub.Lookup
		}
	}
	return face
}

// ReadSFNT parses a font file and returns a Face for it.
func ReadSFNT(data []byte) (*SFNTFace, error) {
	f, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyphs: %w", err)
	}
	return NewSFNTFace(f), nil
}

// UnitsPerEm implements the [Face] interface.
func (f *SFNTFace) UnitsPerEm() float64 {
	return float64(f.font.UnitsPerEm)
}

// Outline implements the [Face] interface.
func (f *SFNTFace) Outline(code cid.CID, text string) (*path.Data, error) {
	gid := glyph.ID(code)
	if f.lookup != nil {
		found := false
		for _, r := range text {
			if g := f.lookup(r); g != 0 {
				gid, found = g, true
			}
			break
		}
		if !found {
			if g := f.lookup(rune(code)); g != 0 {
				gid = g
			}
		}
	}
	if int(gid) >= f.font.NumGlyphs() {
		return nil, fmt.Errorf("%w: glyph %d", ErrNoGlyph, gid)
	}
	if f.font.Outlines == nil {
		return nil, errNoOutlines
	}

	res := &path.Data{}
	for cmd, pts := range f.font.Outlines.Path(gid) {
		res.Cmds = append(res.Cmds, cmd)
		res.Coords = append(res.Coords, pts...)
	}
	return res, nil
}

// GoFace uses the Go fonts. It serves as a substitute for fonts which
// cannot be loaded.
type GoFace struct {
	mu   sync.Mutex
	font *xsfnt.Font
	buf  xsfnt.Buffer
	upem fixed.Int26_6
}

// NewGoFace parses a font file for use as a GoFace.
func NewGoFace(ttf []byte) (*GoFace, error) {
	f, err := xsfnt.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("glyphs: %w", err)
	}
	return &GoFace{
		font: f,
		upem: fixed.I(int(f.UnitsPerEm())),
	}, nil
}

// GoRegular returns the shared Go Regular face.
var GoRegular = sync.OnceValue(func() *GoFace {
	face, err := NewGoFace(goregular.TTF)
	if err != nil {
		panic(err) // unreachable for the embedded font
	}
	return face
})

// UnitsPerEm implements the [Face] interface.
func (f *GoFace) UnitsPerEm() float64 {
	return float64(f.font.UnitsPerEm())
}

// Outline implements the [Face] interface.
// GoFace is safe for concurrent use.
func (f *GoFace) Outline(code cid.CID, text string) (*path.Data, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var gid xsfnt.GlyphIndex
	for _, r := range text {
		gid, _ = f.font.GlyphIndex(&f.buf, r)
		break
	}
	if gid == 0 && int(code) < f.font.NumGlyphs() {
		gid = xsfnt.GlyphIndex(code)
	}

	// With ppem equal to the units per em, the segments are in design
	// units, scaled by 64 and with the y axis pointing down.
	segs, err := f.font.LoadGlyph(&f.buf, gid, f.upem, nil)
	if err != nil {
		return nil, fmt.Errorf("glyphs: %w", err)
	}

	pt := func(p fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: float64(p.X) / 64, Y: -float64(p.Y) / 64}
	}
	res := &path.Data{}
	for _, s := range segs {
		switch s.Op {
		case xsfnt.SegmentOpMoveTo:
			res.MoveTo(pt(s.Args[0]))
		case xsfnt.SegmentOpLineTo:
			res.LineTo(pt(s.Args[0]))
		case xsfnt.SegmentOpQuadTo:
			res.QuadTo(pt(s.Args[0]), pt(s.Args[1]))
		case xsfnt.SegmentOpCubeTo:
			res.CubeTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
		}
	}
	return res, nil
}

var (
	// ErrNoGlyph is returned for characters which the font cannot show.
	ErrNoGlyph = errors.New("glyph not found")

	errNoOutlines = errors.New("font has no glyph outlines")
)
