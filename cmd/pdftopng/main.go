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

// Command pdftopng renders the pages of a PDF file into image files.
//
// Usage:
//
//	pdftopng [options] file.pdf
//
// Every page is written to its own file, named after the page number.
// Text is drawn using the fonts embedded in the file; paths are only
// drawn when --paths is given.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"

	"github.com/speedata/optionparser"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/pdfraster/device"
	"seehuhn.de/go/pdfraster/pagerange"
	"seehuhn.de/go/pdfraster/pdfsource"
	"seehuhn.de/go/pdfraster/raster"
)

func main() {
	err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pdftopng:", err)
		os.Exit(1)
	}
}

func run() error {
	resolution := "300"
	pages := ""
	output := raster.DefaultPattern
	format := ""
	jobs := strconv.Itoa(runtime.NumCPU())
	var legacy, strict, paths, trace, verbose bool

	op := optionparser.NewOptionParser()
	op.Banner = "Usage: pdftopng [options] file.pdf"
	op.On("-r", "--resolution DPI", "resolution in dots per inch, X or XxY (default 300)", &resolution)
	op.On("-p", "--pages RANGE", "pages to render, e.g. 3, 2-5, 4- or -3 (default all)", &pages)
	op.On("-o", "--output PATTERN", "output file name pattern (default "+raster.DefaultPattern+")", &output)
	op.On("-f", "--format FORMAT", "output format, png or tiff (default from the file name)", &format)
	op.On("-j", "--jobs N", "number of pages rendered in parallel", &jobs)
	op.On("--legacy-scaling", "derive both text scale factors from the page width", &legacy)
	op.On("--strict", "fail when glyphs fall outside the page", &strict)
	op.On("--paths", "fill paths", &paths)
	op.On("--trace", "log every drawing operation", &trace)
	op.On("-v", "--verbose", "show progress and debug messages", &verbose)
	if err := op.Parse(); err != nil {
		op.Help()
		return err
	}
	if len(op.Extra) != 1 {
		op.Help()
		return errUsage
	}

	cfg := &config{
		input:  op.Extra[0],
		out:    &raster.FileWriter{Pattern: output, Format: format},
		legacy: legacy,
		strict: strict,
		paths:  paths,
		trace:  trace,
	}
	var err error
	cfg.xRes, cfg.yRes, err = parseResolution(resolution)
	if err != nil {
		return err
	}
	if pages != "" {
		cfg.pages, err = pagerange.Parse(pages)
		if err != nil {
			return err
		}
	}
	cfg.jobs, err = strconv.Atoi(jobs)
	if err != nil || cfg.jobs < 1 {
		return fmt.Errorf("invalid number of jobs %q", jobs)
	}
	if err := cfg.out.Validate(); err != nil {
		return err
	}

	log, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return render(ctx, cfg, log)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// render distributes the selected pages over cfg.jobs workers.
func render(ctx context.Context, cfg *config, log *zap.Logger) error {
	doc, err := pdfsource.Open(cfg.input)
	if err != nil {
		return err
	}
	numPages := doc.NumPages()
	doc.Close()

	start, end := cfg.pages.Clamp(numPages)
	if start >= end {
		return fmt.Errorf("%s: no pages selected (document has %d pages)", cfg.input, numPages)
	}
	log.Debug("rendering",
		zap.String("file", cfg.input),
		zap.Int("first", start+1),
		zap.Int("last", end),
		zap.Int("jobs", cfg.jobs))

	todo := make(chan int)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(todo)
		for pageNo := start; pageNo < end; pageNo++ {
			select {
			case todo <- pageNo:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := range min(cfg.jobs, end-start) {
		g.Go(func() error {
			return worker(ctx, cfg, log.With(zap.Int("worker", w)), todo)
		})
	}
	return g.Wait()
}

// worker renders pages until todo is closed. Every worker has its own
// document and device.
func worker(ctx context.Context, cfg *config, log *zap.Logger, todo <-chan int) error {
	doc, err := pdfsource.Open(cfg.input, pdfsource.WithLogger(log))
	if err != nil {
		return err
	}
	defer doc.Close()

	var dev device.Device = raster.NewDevice(cfg.xRes, cfg.yRes, cfg.out, cfg.deviceOptions(log)...)
	if cfg.trace {
		dev = device.NewTrace(dev, log)
	}

	for pageNo := range todo {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := doc.RenderPage(dev, pageNo); err != nil {
			return err
		}
		log.Info("page written",
			zap.Int("page", pageNo+1),
			zap.String("file", cfg.out.FileName(pageNo+1)))
	}
	return nil
}

var errUsage = errors.New("exactly one input file is required")
