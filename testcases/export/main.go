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


// Command export writes the test case masks and their expected contours
// to JSON, so that other tracer implementations can be checked against
// the same fixtures.
// Run from the isomap module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/isomap/contour"
	"seehuhn.de/go/isomap/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name        string        `json:"name"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Mask        []string      `json:"mask"`
	Contours    []jsonContour `json:"contours"`
	Closed      []bool        `json:"closed,omitempty"`
	Depths      []int         `json:"depths,omitempty"`
	Approximate bool          `json:"approximate,omitempty"`
}

// jsonContour is the contour found by this module's tracer.
type jsonContour struct {
	Closed bool     `json:"closed"`
	Depth  int      `json:"depth"`
	Points [][2]int `json:"points"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	m := tc.Mask()
	jtc := jsonTestCase{
		Name:        category + "_" + tc.Name,
		Width:       tc.Width,
		Height:      tc.Height,
		Mask:        maskRows(m.Pix, m.W),
		Closed:      tc.Closed,
		Depths:      tc.Depths,
		Approximate: tc.Approximate,
	}

	cs := contour.Trace(m)
	contour.ResolveDepths(contour.NewIDMask(tc.Width, tc.Height, cs), cs)
	for _, c := range cs {
		jc := jsonContour{Closed: c.Closed, Depth: c.Depth}
		for _, p := range c.Points {
			jc.Points = append(jc.Points, [2]int{p.X, p.Y})
		}
		jtc.Contours = append(jtc.Contours, jc)
	}
	return jtc
}

// maskRows renders the mask as one string per row, with '#' for
// foreground and '.' for background.
func maskRows(pix []uint8, w int) []string {
	if w == 0 {
		return nil
	}
	var rows []string
	for y := 0; y*w < len(pix); y++ {
		var sb strings.Builder
		for _, v := range pix[y*w : (y+1)*w] {
			if v != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}
