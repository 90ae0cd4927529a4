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
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/isomap/grid"
)

// ScriptBackend generates maps by running the generate_contours.py
// script.  The script draws matplotlib contour plots of its own noise
// field and writes the map and the mask as two PNG files, which are read
// back.  Only Width, Height, DPI, GenerateIsolines, Fill and DrawValues
// are passed on.
type ScriptBackend struct {
	// Command and Args start the script.  The default is
	// "python3 generate_contours.py".
	Command string
	Args    []string

	// Env is added to the environment of the process.
	Env []string

	// WorkDir holds the temporary output directory.  If empty, the
	// system default is used.
	WorkDir string
}

// Generate implements the Generator interface.  The temporary files are
// removed before Generate returns.
func (b *ScriptBackend) Generate(ctx context.Context, p Params) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p = p.Normalize()

	dir, err := os.MkdirTemp(b.WorkDir, "isomap-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	imgPath := filepath.Join(dir, "image.png")
	maskPath := filepath.Join(dir, "mask.png")

	command, args := b.Command, b.Args
	if command == "" {
		command, args = "python3", []string{"generate_contours.py"}
	}
	args = append(args[:len(args):len(args)],
		"--output", imgPath,
		"--output_mask", maskPath,
		"--w", strconv.Itoa(p.Width),
		"--h", strconv.Itoa(p.Height),
		"--dpi", strconv.Itoa(p.DPI),
		"--draw_isolines", flag01(p.GenerateIsolines),
		"--fill_isolines", flag01(p.Fill),
		"--draw_values", flag01(p.DrawValues),
	)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Env = append(os.Environ(), b.Env...)
	cmd.Stderr = &stderr
	Logger().Debug("running generator", "command", command, "args", args)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		Logger().Warn("generator failed", "error", err, "stderr", msg)
		return nil, fmt.Errorf("%w: %v: %s", ErrBackend, err, msg)
	}

	img, err := readImage(imgPath)
	if err != nil {
		return nil, err
	}
	mask, err := readImage(maskPath)
	if err != nil {
		return nil, err
	}

	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return &Result{
		Image: rgba,
		Mask:  grid.MaskFromImage(mask).Gray(),
		Seed:  p.Seed,
	}, nil
}

func readImage(fname string) (image.Image, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadOutput, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadOutput, filepath.Base(fname), err)
	}
	return img, nil
}

func flag01(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
