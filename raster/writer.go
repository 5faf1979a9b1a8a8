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

package raster

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/image/tiff"
)

// PageWriter receives the finished page images. Page numbers start at 1.
type PageWriter interface {
	WritePage(page int, img image.Image) error
}

// Supported output formats.
const (
	FormatPNG  = "png"
	FormatTIFF = "tiff"
)

// DefaultPattern is the file name pattern used when none is given.
const DefaultPattern = "page-%d.png"

// FileWriter writes every page to a separate file.
type FileWriter struct {
	// Dir is the output directory. The empty string means the current
	// directory.
	Dir string

	// Pattern is a fmt pattern for the file names, with exactly one
	// integer verb for the page number.
	Pattern string

	// Format is FormatPNG or FormatTIFF. If empty, the format is chosen
	// from the file name extension.
	Format string
}

var (
	errPattern = errors.New("file name pattern needs exactly one integer verb")
	verbRe     = regexp.MustCompile(`%[-+# 0]*[0-9]*(?:\.[0-9]*)?([a-zA-Z%])`)
)

// Validate checks the pattern and the format.
func (w *FileWriter) Validate() error {
	pattern := w.pattern()

	numVerbs := 0
	for _, m := range verbRe.FindAllStringSubmatch(pattern, -1) {
		switch m[1] {
		case "%":
			// literal percent sign
		case "d":
			numVerbs++
		default:
			return fmt.Errorf("%w: %q", errPattern, pattern)
		}
	}
	if numVerbs != 1 {
		return fmt.Errorf("%w: %q", errPattern, pattern)
	}

	switch w.format() {
	case FormatPNG, FormatTIFF:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", w.Format)
	}
}

// FileName returns the name of the file for the given page.
func (w *FileWriter) FileName(page int) string {
	return filepath.Join(w.Dir, fmt.Sprintf(w.pattern(), page))
}

// WritePage implements the [PageWriter] interface.
func (w *FileWriter) WritePage(page int, img image.Image) error {
	if err := w.Validate(); err != nil {
		return err
	}

	fd, err := os.Create(w.FileName(page))
	if err != nil {
		return err
	}
	buf := bufio.NewWriter(fd)

	switch w.format() {
	case FormatTIFF:
		err = tiff.Encode(buf, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(buf, img)
	}
	if err == nil {
		err = buf.Flush()
	}
	if cerr := fd.Close(); err == nil {
		err = cerr
	}
	return err
}

func (w *FileWriter) pattern() string {
	if w.Pattern == "" {
		return DefaultPattern
	}
	return w.Pattern
}

func (w *FileWriter) format() string {
	if w.Format != "" {
		return strings.ToLower(w.Format)
	}
	switch strings.ToLower(filepath.Ext(w.pattern())) {
	case ".tif", ".tiff":
		return FormatTIFF
	default:
		return FormatPNG
	}
}
