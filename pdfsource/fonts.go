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

package pdfsource

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/dict"
	"seehuhn.de/go/pdf/font/glyphdata"

	"seehuhn.de/go/pdfraster/glyphs"
)

// face returns the glyph source for a font. Fonts without a usable
// embedded font program are replaced by Go Regular.
func (d *Document) face(inst font.Instance, log *zap.Logger) glyphs.Face {
	if f, ok := d.faces[inst]; ok {
		return f
	}

	f, err := d.loadFace(inst)
	if err != nil {
		log.Warn("using substitute font",
			zap.String("font", fmt.Sprintf("%T", inst.FontInfo())),
			zap.Error(err))
		f = glyphs.GoRegular()
	}
	d.faces[inst] = f
	return f
}

func (d *Document) loadFace(inst font.Instance) (glyphs.Face, error) {
	var stream *glyphdata.Stream
	switch info := inst.FontInfo().(type) {
	case *dict.FontInfoSimple:
		stream = info.FontFile
	case *dict.FontInfoGlyfEmbedded:
		stream = info.FontFile
	case *dict.FontInfoCID:
		stream = info.FontFile
	}
	if stream == nil {
		return nil, errNotEmbedded
	}

	buf := &bytes.Buffer{}
	if err := stream.WriteTo(buf, nil); err != nil {
		return nil, err
	}
	return glyphs.ReadSFNT(buf.Bytes())
}
