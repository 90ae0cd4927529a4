package isomap

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/isomap/contour"
	"seehuhn.de/go/isomap/fill"
	"seehuhn.de/go/isomap/grid"
	"seehuhn.de/go/isomap/label"
	"seehuhn.de/go/isomap/render"
)

var errBoom = errors.New("boom")

type failingThin struct{}

func (failingThin) Thin(*grid.Mask) (*grid.Mask, error) { return nil, errBoom }

type failingInpaint struct{}

func (failingInpaint) Inpaint(*image.RGBA, *grid.Mask, int) error { return errBoom }

func testParams() Params {
	p := DefaultParams()
	p.Width, p.Height = 128, 96
	p.XFreq, p.YFreq = 0.02, 0.02
	p.Seed = 42
	return p
}

func TestGenerateReproducible(t *testing.T) {
	p := testParams()
	p.DrawValues = true
	p.Wells.Count = 3

	a, err := New().Generate(context.Background(), p)
	require.NoError(t, err)
	b, err := New(WithWorkers(1)).Generate(context.Background(), p)
	require.NoError(t, err)

	require.Equal(t, int64(42), a.Seed)
	require.Equal(t, a.Image.Pix, b.Image.Pix)
	require.Equal(t, a.Mask.Pix, b.Mask.Pix)
	require.Equal(t, a.Contours, b.Contours)
	require.Equal(t, a.Labels, b.Labels)
	require.Equal(t, a.Wells, b.Wells)
	require.Len(t, a.Wells, 3)
}

func TestGenerateContours(t *testing.T) {
	p := testParams()
	res, err := New().Generate(context.Background(), p)
	require.NoError(t, err)

	require.Equal(t, image.Rect(0, 0, 128, 96), res.Image.Bounds())
	require.Equal(t, image.Rect(0, 0, 128, 96), res.Mask.Bounds())
	require.NotEmpty(t, res.Contours)
	require.Nil(t, res.Labels)

	for i, c := range res.Contours {
		require.Equal(t, i+1, c.ID)
		require.GreaterOrEqual(t, c.Depth, 0)
		for _, pt := range c.Points {
			// thinning only removes pixels from the boundary mask
			require.Equal(t, uint8(255), res.Mask.GrayAt(pt.X+1, pt.Y+1).Y,
				"contour %d, point %v", c.ID, pt)
		}
	}
}

func TestGenerateDisabled(t *testing.T) {
	p := testParams()
	p.Width, p.Height = 40, 30
	p.GenerateIsolines = false

	res, err := New().Generate(context.Background(), p)
	require.NoError(t, err)
	require.Empty(t, res.Contours)
	require.Equal(t, image.Rect(0, 0, 40, 30), res.Mask.Bounds())
	for _, v := range res.Mask.Pix {
		require.Zero(t, v)
	}
	black := color.RGBA{A: 0xff}
	for y := range 30 {
		for x := range 40 {
			require.Equal(t, black, res.Image.RGBAAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestGenerateFlat(t *testing.T) {
	p := testParams()
	p.Width, p.Height = 50, 20
	p.Amplitude = 0

	res, err := New().Generate(context.Background(), p)
	require.NoError(t, err)
	require.Empty(t, res.Contours)
	for y := range 20 {
		for x := range 50 {
			require.Equal(t, fill.StandardLow, res.Image.RGBAAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestGenerateSizes(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {5, 2}, {-4, 7}} {
		p := testParams()
		p.Width, p.Height = size[0], size[1]
		p.Wells.Count = 2
		p.DrawValues = true

		res, err := New().Generate(context.Background(), p)
		require.NoError(t, err, "size %v", size)
		want := image.Rect(0, 0, max(size[0], 0), max(size[1], 0))
		require.Equal(t, want, res.Image.Bounds(), "size %v", size)
		require.Equal(t, want, res.Mask.Bounds(), "size %v", size)
	}
}

func TestGenerateNoiseSource(t *testing.T) {
	// A ramp along x folds every 8 pixels, giving vertical boundaries.
	src := sourceFunc(func(x, y float64) float64 { return x / 8 })
	p := testParams()
	p.Width, p.Height = 40, 20
	p.XFreq, p.YFreq = 1, 1
	p.Amplitude = 1

	res, err := New(WithNoise(src)).Generate(context.Background(), p)
	require.NoError(t, err)
	require.NotEmpty(t, res.Contours)
	long := 0
	for _, c := range res.Contours {
		require.LessOrEqual(t, c.Bounds.Max.X-c.Bounds.Min.X, 1, "contour %d is not vertical", c.ID)
		if c.Bounds.Max.Y-c.Bounds.Min.Y >= 10 {
			require.False(t, c.Closed)
			long++
		}
	}
	require.NotZero(t, long)
}

type sourceFunc func(x, y float64) float64

func (f sourceFunc) Noise2D(x, y float64) float64 { return f(x, y) }

// TestDecorateOrder checks that the outline of a contour does not cover
// the labels of contours which come after it.
func TestDecorateOrder(t *testing.T) {
	line := func(id int, from, to contour.Point) contour.Contour {
		var pts []contour.Point
		for x := from.X; x <= to.X; x++ {
			for y := from.Y; y <= to.Y; y++ {
				pts = append(pts, contour.Point{X: x, Y: y})
			}
		}
		return contour.Contour{ID: id, Value: int32(id), Points: pts, Bounds: contour.BoundingRect(pts)}
	}
	// The label of the horizontal line sits on the vertical line.
	contours := []contour.Contour{
		line(1, contour.Point{X: 20, Y: 0}, contour.Point{X: 20, Y: 39}),
		line(2, contour.Point{X: 20, Y: 20}, contour.Point{X: 39, Y: 20}),
	}

	red := color.RGBA{R: 0xff, A: 0xff}
	pen := render.Style{Color: red, Width: 3, Cap: graphics.LineCapRound}
	styles := render.OutlineStyles{Closed: pen, Open: pen}
	placer := label.NewPlacer()
	placer.Spacing = 1000

	canvas := render.NewCanvas(40, 40, color.White)
	labels := decorate(canvas, contours, placer, styles)
	require.Len(t, labels, 2)
	require.Len(t, labels[2], 1)

	ref := render.NewCanvas(40, 40, color.White)
	placer.Place(ref.Img, &contours[1])

	black := color.RGBA{A: 0xff}
	text := 0
	for y := range 40 {
		for x := range 40 {
			if ref.Img.RGBAAt(x, y) != black {
				continue
			}
			text++
			require.Equal(t, black, canvas.Img.RGBAAt(x, y), "label pixel (%d, %d)", x, y)
		}
	}
	require.NotZero(t, text)

	// the earlier contour is still stroked away from the label
	require.Equal(t, red, canvas.Img.RGBAAt(20, 35))
}

func TestDecorateWithoutLabels(t *testing.T) {
	pts := []contour.Point{{X: 2, Y: 5}, {X: 3, Y: 5}, {X: 4, Y: 5}}
	cs := []contour.Contour{{ID: 1, Value: 1, Points: pts, Bounds: contour.BoundingRect(pts)}}
	canvas := render.NewCanvas(10, 10, color.White)
	require.Nil(t, decorate(canvas, cs, nil, render.DefaultOutlineStyles(1)))
	require.NotEqual(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, canvas.Img.RGBAAt(3, 5))
}

func TestGenerateErrors(t *testing.T) {
	p := testParams()

	_, err := New(WithSkeletonizer(failingThin{})).Generate(context.Background(), p)
	require.ErrorIs(t, err, errBoom)

	_, err = New(WithInpainter(failingInpaint{})).Generate(context.Background(), p)
	require.ErrorIs(t, err, errBoom)

	p.GenerateIsolines = false
	_, err = New(WithInpainter(failingInpaint{})).Generate(context.Background(), p)
	require.ErrorIs(t, err, errBoom)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Generate(ctx, testParams())
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateTimeSeed(t *testing.T) {
	p := testParams()
	p.Width, p.Height = 16, 16
	p.Seed = 0
	res, err := New().Generate(context.Background(), p)
	require.NoError(t, err)
	require.NotZero(t, res.Seed)
}

func TestNormalize(t *testing.T) {
	p := Params{Width: -1, Height: 3, OutlineWidth: -2, DPI: -5}
	p.Wells.Count = -3
	q := p.Normalize()
	require.Equal(t, 0, q.Width)
	require.Equal(t, 3, q.Height)
	require.Zero(t, q.OutlineWidth)
	require.Zero(t, q.DPI)
	require.Zero(t, q.Wells.Count)
	require.Equal(t, -1, p.Width)
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Core, Script} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
	_, err := ParseMode("gpu")
	require.Error(t, err)
	require.Equal(t, "Mode(7)", Mode(7).String())
}
