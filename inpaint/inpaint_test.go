package inpaint

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/isomap/grid"
)

func uniform(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestDiffusionUniform(t *testing.T) {
	green := color.RGBA{27, 185, 18, 255}
	img := uniform(12, 10, green)
	mask := grid.NewMask(12, 10)
	for x := 2; x < 10; x++ {
		img.SetRGBA(x, 5, color.RGBA{75, 75, 75, 255})
		mask.Set(x, 5, grid.Foreground)
	}

	require.NoError(t, Diffusion{}.Inpaint(img, mask, 3))
	for x := range 12 {
		require.Equal(t, green, img.RGBAAt(x, 5), "pixel %d", x)
	}
}

func TestDiffusionBetweenColours(t *testing.T) {
	const w, h = 9, 5
	red := color.RGBA{200, 0, 0, 255}
	blue := color.RGBA{0, 0, 200, 255}
	img := uniform(w, h, red)
	draw.Draw(img, image.Rect(5, 0, w, h), image.NewUniform(blue), image.Point{}, draw.Src)

	// a black stroke along the colour border
	mask := grid.NewMask(w, h)
	for y := range h {
		for x := 4; x <= 5; x++ {
			img.SetRGBA(x, y, color.RGBA{A: 255})
			mask.Set(x, y, grid.Foreground)
		}
	}

	require.NoError(t, Diffusion{}.Inpaint(img, mask, 3))
	for y := range h {
		for x := 4; x <= 5; x++ {
			c := img.RGBAAt(x, y)
			require.Greater(t, int(c.R)+int(c.B), 150, "pixel (%d,%d) = %v", x, y, c)
			require.Zero(t, c.G)
			require.Equal(t, uint8(255), c.A)
		}
		// unmasked pixels are untouched
		require.Equal(t, red, img.RGBAAt(3, y))
		require.Equal(t, blue, img.RGBAAt(6, y))
	}
}

func TestDiffusionBorder(t *testing.T) {
	const w, h = 8, 6
	white := color.RGBA{255, 255, 255, 255}
	grey := color.RGBA{120, 120, 120, 255}
	img := uniform(w, h, white)
	draw.Draw(img, image.Rect(1, 1, w-1, h-1), image.NewUniform(grey), image.Point{}, draw.Src)

	mask := grid.NewMask(w, h)
	for x := range w {
		mask.Set(x, 0, grid.Foreground)
		mask.Set(x, h-1, grid.Foreground)
	}
	for y := range h {
		mask.Set(0, y, grid.Foreground)
		mask.Set(w-1, y, grid.Foreground)
	}

	require.NoError(t, Diffusion{}.Inpaint(img, mask, 3))
	for x := range w {
		require.Equal(t, grey, img.RGBAAt(x, 0))
		require.Equal(t, grey, img.RGBAAt(x, h-1))
	}
}

func TestDiffusionNothingKnown(t *testing.T) {
	c := color.RGBA{1, 2, 3, 255}
	img := uniform(4, 4, c)
	mask := grid.NewMask(4, 4)
	for i := range mask.Pix {
		mask.Pix[i] = grid.Foreground
	}

	require.NoError(t, Diffusion{}.Inpaint(img, mask, 3))
	require.Equal(t, c, img.RGBAAt(2, 2))
}

func TestDiffusionEmptyMask(t *testing.T) {
	img := uniform(5, 5, color.RGBA{9, 9, 9, 255})
	before := append([]byte(nil), img.Pix...)
	require.NoError(t, Diffusion{}.Inpaint(img, grid.NewMask(5, 5), 3))
	require.Equal(t, before, img.Pix)
}

func TestDiffusionSize(t *testing.T) {
	img := uniform(5, 5, color.RGBA{})
	err := Diffusion{}.Inpaint(img, grid.NewMask(4, 5), 3)
	require.ErrorIs(t, err, ErrSize)
}

func TestDiffusionSubImage(t *testing.T) {
	img := uniform(10, 10, color.RGBA{50, 60, 70, 255})
	sub := img.SubImage(image.Rect(3, 3, 7, 7)).(*image.RGBA)
	sub.SetRGBA(4, 4, color.RGBA{A: 255})
	mask := grid.NewMask(4, 4)
	mask.Set(1, 1, grid.Foreground)

	require.NoError(t, Diffusion{}.Inpaint(sub, mask, 2))
	require.Equal(t, color.RGBA{50, 60, 70, 255}, img.RGBAAt(4, 4))
}
