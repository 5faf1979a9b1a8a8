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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"seehuhn.de/go/pdfraster/pagerange"
	"seehuhn.de/go/pdfraster/raster"
)

// config holds the settings shared by all workers. It is not modified
// once rendering starts.
type config struct {
	input      string
	xRes, yRes float64
	pages      pagerange.Range
	jobs       int
	out        *raster.FileWriter

	legacy bool
	strict bool
	paths  bool
	trace  bool
}

func (c *config) deviceOptions(log *zap.Logger) []raster.Option {
	opts := []raster.Option{
		raster.WithLogger(log),
		raster.LegacyScaling(c.legacy),
		raster.StrictBounds(c.strict),
	}
	if c.paths {
		opts = append(opts, raster.WithPathPainter(&raster.FillPainter{}))
	}
	return opts
}

// parseResolution parses "X" or "XxY", in dots per inch.
func parseResolution(s string) (x, y float64, err error) {
	xs, ys, found := strings.Cut(strings.ToLower(s), "x")
	x, err = strconv.ParseFloat(xs, 64)
	if err == nil && found {
		y, err = strconv.ParseFloat(ys, 64)
	} else {
		y = x
	}
	if err != nil || !(x > 0 && y > 0) || x > maxResolution || y > maxResolution {
		return 0, 0, fmt.Errorf("invalid resolution %q", s)
	}
	return x, y, nil
}

const maxResolution = 10000
