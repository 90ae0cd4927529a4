// seehuhn.de/go/isomap - synthetic contour map generator
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


// Command isomap writes a dataset of synthetic contour maps and their
// isoline masks.
//
// Maps are stored as DIR/images/N.EXT and masks as DIR/masks/N.EXT, where
// N is the first free number.  Optional sidecar files describing the
// contours of each map are written to DIR/vectors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"seehuhn.de/go/isomap"
	"seehuhn.de/go/isomap/dataset"
	"seehuhn.de/go/isomap/fill"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "isomap:", err)
		os.Exit(1)
	}
}

func run() error {
	def := isomap.DefaultParams()
	p := def

	outDir := flag.String("out", "dataset", "output directory")
	count := flag.Int("n", 1, "number of maps")
	flag.IntVar(&p.Width, "w", def.Width, "map width in pixels")
	flag.IntVar(&p.Height, "h", def.Height, "map height in pixels")
	flag.Float64Var(&p.XFreq, "xfreq", def.XFreq, "noise frequency along x")
	flag.Float64Var(&p.YFreq, "yfreq", def.YFreq, "noise frequency along y")
	flag.Float64Var(&p.Amplitude, "amp", def.Amplitude, "number of isoline levels across the noise range")
	flag.Int64Var(&p.Seed, "seed", 0, "seed of the first map, 0 for a time based seed")
	flag.BoolVar(&p.GenerateIsolines, "isolines", def.GenerateIsolines, "generate isolines")
	flag.BoolVar(&p.Fill, "fill", def.Fill, "fill the regions between isolines")
	fillMode := flag.String("palette", def.FillMode.String(), "fill palette: standard or random")
	flag.Float64Var(&p.OutlineWidth, "line-width", def.OutlineWidth, "isoline pen width, 0 to disable")
	flag.BoolVar(&p.DrawValues, "values", def.DrawValues, "draw isoline values")
	flag.IntVar(&p.LabelSpacing, "label-spacing", def.LabelSpacing, "minimal distance between labels")
	flag.Float64Var(&p.CloseThreshold, "close", def.CloseThreshold, "largest end point gap of a closed isoline")
	flag.IntVar(&p.Wells.Count, "wells", def.Wells.Count, "number of well markers")
	flag.IntVar(&p.Wells.Radius, "well-radius", def.Wells.Radius, "well marker radius")
	flag.IntVar(&p.DPI, "dpi", def.DPI, "resolution passed to the script backend")
	mode := flag.String("mode", def.Mode.String(), "backend: core or script")
	script := flag.String("script", "python3 generate_contours.py", "command line of the script backend")
	workers := flag.Int("workers", 0, "noise sampling goroutines, 0 for all CPUs")

	format := flag.String("format", string(dataset.PNG), "image format: png, jpeg, bmp or tiff")
	quality := flag.Int("quality", 90, "JPEG quality")
	split := flag.Bool("split", false, "cut maps into square tiles")
	tile := flag.Int("tile", dataset.DefaultTileSize, "tile size for -split")

	var side sidecars
	flag.BoolVar(&side.json, "json", false, "write contours as JSON")
	flag.BoolVar(&side.svg, "svg", false, "write contours as SVG")
	flag.BoolVar(&side.pdf, "pdf", false, "write contours as PDF")
	flag.BoolVar(&side.trace, "trace", false, "write a traced SVG of the mask")

	verbose := flag.Bool("v", false, "log every stage")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	isomap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var err error
	if p.FillMode, err = fill.ParseMode(*fillMode); err != nil {
		return err
	}
	if p.Mode, err = isomap.ParseMode(*mode); err != nil {
		return err
	}
	f, err := dataset.ParseFormat(*format)
	if err != nil {
		return err
	}
	if *split && side.any() {
		return errors.New("sidecar files cannot be combined with -split")
	}
	side.dir = *outDir
	side.lineWidth = max(p.OutlineWidth, 1)

	var gen isomap.Generator
	switch p.Mode {
	case isomap.Script:
		fields := strings.Fields(*script)
		if len(fields) == 0 {
			return errors.New("empty -script command")
		}
		gen = &isomap.ScriptBackend{Command: fields[0], Args: fields[1:]}
	default:
		gen = isomap.New(isomap.WithWorkers(*workers))
	}

	out := dataset.NewWriter(*outDir, f)
	out.Quality = *quality
	out.TileSize = *tile

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := isomap.Logger()
	return isomap.Batch(ctx, gen, p, *count, func(i int, res *isomap.Result) error {
		if *split {
			names, err := out.WriteSplit(res.Image, res.Mask)
			if err != nil {
				return err
			}
			log.Info("tiles written", "index", i, "tiles", len(names))
			return nil
		}

		name, err := out.Write(res.Image, res.Mask)
		if err != nil {
			return err
		}
		log.Info("map written", "index", i, "name", name)
		return side.write(name, res)
	})
}
