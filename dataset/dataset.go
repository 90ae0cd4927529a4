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

// Package dataset stores generated maps and their boundary masks as
// numbered image pairs, for use as machine learning training data.
//
// A dataset directory contains two subdirectories, images/ and masks/.
// The image and the mask of one sample share the same base name.
package dataset

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrFormat is returned for unknown image formats.
var ErrFormat = errors.New("dataset: unknown image format")

// Format is an image file format.
type Format string

// Supported formats.
const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ParseFormat converts a format name or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tiff", "tif":
		return TIFF, nil
	}
	return "", fmt.Errorf("%w %q", ErrFormat, s)
}

// Ext returns the file name extension, including the dot.
func (f Format) Ext() string {
	switch f {
	case JPEG:
		return ".jpg"
	case TIFF:
		return ".tif"
	}
	return "." + string(f)
}

func (f Format) encode(w io.Writer, img image.Image, quality int) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w %q", ErrFormat, string(f))
}

// DefaultTileSize is the edge length of the tiles written by WriteSplit.
const DefaultTileSize = 256

// Writer saves image/mask pairs into a dataset directory.
// A Writer must not be used concurrently.
type Writer struct {
	Dir      string
	Format   Format
	Quality  int // JPEG quality, 1 to 100
	TileSize int

	next int // smallest index which may be free
}

// NewWriter returns a Writer for the given directory.
func NewWriter(dir string, format Format) *Writer {
	return &Writer{
		Dir:      dir,
		Format:   format,
		Quality:  jpeg.DefaultQuality,
		TileSize: DefaultTileSize,
	}
}

// Write stores img and mask under the first base name for which neither
// file exists yet.  If the mask cannot be written, the image file is
// removed again.  The base name is returned.
func (w *Writer) Write(img, mask image.Image) (string, error) {
	imgDir := filepath.Join(w.Dir, "images")
	maskDir := filepath.Join(w.Dir, "masks")
	for _, dir := range []string{imgDir, maskDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	ext := w.Format.Ext()
	var name, imgPath, maskPath string
	for {
		name = strconv.Itoa(w.next)
		imgPath = filepath.Join(imgDir, name+ext)
		maskPath = filepath.Join(maskDir, name+ext)
		if !exists(imgPath) && !exists(maskPath) {
			break
		}
		w.next++
	}

	if err := w.writeFile(imgPath, img); err != nil {
		return "", err
	}
	if err := w.writeFile(maskPath, mask); err != nil {
		os.Remove(imgPath)
		return "", err
	}
	w.next++
	return name, nil
}

// WriteSplit cuts img and mask into square tiles of TileSize pixels and
// writes every pair.  Partial tiles at the right and bottom edges are
// dropped.  Tiles are written column by column.
func (w *Writer) WriteSplit(img, mask image.Image) ([]string, error) {
	size := w.TileSize
	if size <= 0 {
		size = DefaultTileSize
	}
	si, ok1 := img.(subImager)
	sm, ok2 := mask.(subImager)
	if !ok1 || !ok2 {
		return nil, errors.New("dataset: image type does not support tiles")
	}

	b := img.Bounds()
	nx, ny := b.Dx()/size, b.Dy()/size
	var names []string
	for i := range nx {
		for j := range ny {
			r := image.Rect(i*size, j*size, (i+1)*size, (j+1)*size).Add(b.Min)
			name, err := w.Write(si.SubImage(r), sm.SubImage(r.Sub(b.Min).Add(mask.Bounds().Min)))
			if err != nil {
				return names, err
			}
			names = append(names, name)
		}
	}
	return names, nil
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func (w *Writer) writeFile(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = w.Format.encode(f, img, w.Quality)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(fname)
		return fmt.Errorf("dataset: writing %s: %w", filepath.Base(fname), err)
	}
	return nil
}

func exists(fname string) bool {
	_, err := os.Stat(fname)
	return err == nil
}
