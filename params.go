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

package isomap

import (
	"fmt"

	"seehuhn.de/go/isomap/contour"
	"seehuhn.de/go/isomap/fill"
	"seehuhn.de/go/isomap/label"
	"seehuhn.de/go/isomap/well"
)

// Mode selects the generator backend.
type Mode int

// These are the available backends.
const (
	// Core generates maps in-process.
	Core Mode = iota

	// Script runs an external Python script.
	Script
)

func (m Mode) String() string {
	switch m {
	case Core:
		return "core"
	case Script:
		return "script"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts the output of Mode.String back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "core":
		return Core, nil
	case "script":
		return Script, nil
	}
	return 0, fmt.Errorf("isomap: unknown mode %q", s)
}

// Params describes one map.
type Params struct {
	Width, Height int

	// XFreq and YFreq scale pixel coordinates before the noise function
	// is sampled.  Smaller values give smoother maps.
	XFreq, YFreq float64

	// Amplitude is the number of isoline levels across the noise range.
	Amplitude float64

	// Seed selects the noise field, the fill palette and the well
	// positions.  Zero means a seed derived from the current time.
	Seed int64

	// GenerateIsolines enables the whole contour pipeline.  If it is
	// false, the map is black apart from wells and the mask is empty.
	GenerateIsolines bool

	Fill     bool
	FillMode fill.Mode

	// OutlineWidth is the pen width for contour lines.  Zero disables
	// outlines.
	OutlineWidth float64

	DrawValues   bool
	LabelSpacing int // minimal distance between labels on one contour

	// CloseThreshold is the largest end point distance of a closed
	// contour, in pixels.
	CloseThreshold float64

	Wells well.Params

	// DPI is passed to the Script backend.
	DPI int

	Mode Mode
}

// DefaultParams returns the parameters of a 512×512 filled map.
func DefaultParams() Params {
	return Params{
		Width:            512,
		Height:           512,
		XFreq:            0.005,
		YFreq:            0.005,
		Amplitude:        20,
		GenerateIsolines: true,
		Fill:             true,
		FillMode:         fill.Standard,
		OutlineWidth:     1,
		LabelSpacing:     label.DefaultSpacing,
		CloseThreshold:   contour.DefaultCloseThreshold,
		Wells:            well.DefaultParams(),
		DPI:              100,
		Mode:             Core,
	}
}

// Normalize returns a copy of p in which negative sizes and counts are
// replaced by zero.  Parameters are never rejected: degenerate values
// lead to maps without contours.
func (p Params) Normalize() Params {
	p.Width = max(p.Width, 0)
	p.Height = max(p.Height, 0)
	p.Wells.Count = max(p.Wells.Count, 0)
	p.Wells.Radius = max(p.Wells.Radius, 0)
	p.OutlineWidth = max(p.OutlineWidth, 0)
	p.LabelSpacing = max(p.LabelSpacing, 0)
	p.CloseThreshold = max(p.CloseThreshold, 0)
	p.DPI = max(p.DPI, 0)
	return p
}
