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

import "go.uber.org/zap"

// Option configures a [Device].
type Option func(*config)

type config struct {
	log     *zap.Logger
	legacy  bool
	strict  bool
	painter PathPainter
}

func defaultConfig() config {
	return config{
		log: zap.NewNop(),
	}
}

// WithLogger sets the logger used by the device.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log == nil {
			log = zap.NewNop()
		}
		c.log = log
	}
}

// LegacyScaling selects the historical text scaling, where both scale
// factors are derived from the image width and the run origin is mapped
// vertically using the horizontal factor.
func LegacyScaling(legacy bool) Option {
	return func(c *config) {
		c.legacy = legacy
	}
}

// StrictBounds makes DrawText fail with [device.ErrOutOfBounds] when
// glyph cells fall outside the page. The cells inside the page are
// still drawn.
func StrictBounds(strict bool) Option {
	return func(c *config) {
		c.strict = strict
	}
}

// WithPathPainter sets the extension used to draw paths.
func WithPathPainter(p PathPainter) Option {
	return func(c *config) {
		c.painter = p
	}
}
