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


package main

import (
	"os"
	"path/filepath"

	"seehuhn.de/go/isomap"
	"seehuhn.de/go/isomap/export"
	"seehuhn.de/go/isomap/grid"
)

// sidecars selects the vector files written next to each map.
type sidecars struct {
	json, svg, pdf, trace bool

	dir       string
	lineWidth float64
}

func (s *sidecars) any() bool {
	return s.json || s.svg || s.pdf || s.trace
}

// write stores the selected files as DIR/vectors/NAME.*.  The vector
// files use the coordinates of the map without its one pixel border.
func (s *sidecars) write(name string, res *isomap.Result) error {
	if !s.any() {
		return nil
	}
	dir := filepath.Join(s.dir, "vectors")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	base := filepath.Join(dir, name)

	b := res.Image.Bounds()
	doc := &export.Document{
		Width:    max(b.Dx()-2, 0),
		Height:   max(b.Dy()-2, 0),
		Contours: res.Contours,
		Labels:   res.Labels,
		Wells:    res.Wells,
	}

	if s.json {
		if err := writeFile(base+".json", func(f *os.File) error { return export.WriteJSON(f, doc) }); err != nil {
			return err
		}
	}
	if s.svg {
		if err := writeFile(base+".svg", func(f *os.File) error { return export.WriteSVG(f, doc) }); err != nil {
			return err
		}
	}
	if s.pdf {
		if err := export.WritePDF(base+".pdf", doc, s.lineWidth); err != nil {
			return err
		}
	}
	if s.trace {
		m := grid.MaskFromImage(res.Mask)
		if err := writeFile(base+".mask.svg", func(f *os.File) error { return export.TraceMaskSVG(f, m) }); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(fname string, fn func(f *os.File) error) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = fn(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
