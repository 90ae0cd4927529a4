package fill

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/isomap/contour"
	"seehuhn.de/go/isomap/testcases"
)

var grey = color.RGBA{R: 75, G: 75, B: 75, A: 0xff}

func TestColorScale(t *testing.T) {
	lo := color.RGBA{A: 0xff}
	hi := color.RGBA{R: 100, G: 200, B: 50, A: 0xff}
	s := NewColorScale(0, 10, lo, hi)

	require.Equal(t, lo, s.Get(0))
	require.Equal(t, hi, s.Get(10))
	require.Equal(t, lo, s.Get(-3))
	require.Equal(t, hi, s.Get(11))
	require.Equal(t, color.RGBA{R: 50, G: 100, B: 25, A: 0xff}, s.Get(5))
	require.Equal(t, color.RGBA{R: 25, G: 50, B: 13, A: 0xff}, s.Get(2.5))
}

func TestColorScaleEmptyRange(t *testing.T) {
	c := color.RGBA{R: 1, G: 2, B: 3}
	s := NewColorScale(4, 4, c, color.RGBA{})
	require.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 0xff}, s.Get(4))
}

func TestDepthScale(t *testing.T) {
	cs := []contour.Contour{{Depth: 0}, {Depth: 2}, {Depth: 1}}
	s := DepthScale(cs, StandardLow, StandardHigh)
	require.Equal(t, -1.0, s.Min)
	require.Equal(t, 2.0, s.Max)

	s = DepthScale(nil, StandardLow, StandardHigh)
	require.Equal(t, StandardLow, s.Get(-1))
	require.Equal(t, StandardHigh, s.Get(0))
}

func TestRandomPalette(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		lo, hi := Palette(Random, rng)
		require.GreaterOrEqual(t, luminance(lo), MinLuminance)
		require.GreaterOrEqual(t, luminance(hi), MinLuminance)
		require.GreaterOrEqual(t, distance(lo, hi), MinDistance)
	}

	lo, hi := Palette(Standard, nil)
	require.Equal(t, StandardLow, lo)
	require.Equal(t, StandardHigh, hi)
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Standard, Random} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
	_, err := ParseMode("rainbow")
	require.Error(t, err)
}

func TestPointInPolygon(t *testing.T) {
	square := []contour.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	cases := []struct {
		p    contour.Point
		want int
	}{
		{contour.Point{2, 2}, 1},
		{contour.Point{1, 3}, 1},
		{contour.Point{4, 2}, 0},
		{contour.Point{0, 0}, 0},
		{contour.Point{2, 4}, 0},
		{contour.Point{5, 2}, -1},
		{contour.Point{2, 5}, -1},
		{contour.Point{-1, -1}, -1},
	}
	for _, c := range cases {
		require.Equal(t, c.want, PointInPolygon(square, c.p), "point %v", c.p)
	}

	require.Equal(t, -1, PointInPolygon(nil, contour.Point{}))
	require.Equal(t, -1, PointInPolygon([]contour.Point{{3, 3}}, contour.Point{3, 4}))
}

func TestFloodFillFourConnected(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := range 10 {
		for x := range 10 {
			c := Sentinel
			if x+y == 9 {
				c = grey
			}
			img.SetRGBA(x, y, c)
		}
	}

	red := color.RGBA{R: 0xff, A: 0xff}
	floodFill(img, contour.Point{X: 0, Y: 0}, red)

	n := 0
	for y := range 10 {
		for x := range 10 {
			if img.RGBAAt(x, y) == red {
				require.Less(t, x+y, 9)
				n++
			}
		}
	}
	require.Equal(t, 45, n)
	require.Equal(t, Sentinel, img.RGBAAt(9, 9))
}

// prepare traces the fixture and returns a sentinel canvas with the
// contour pixels painted.
func prepare(t *testing.T, tc testcases.TestCase) (*image.RGBA, *contour.IDMask, []contour.Contour) {
	t.Helper()
	cs := contour.Trace(tc.Mask())
	ids := contour.NewIDMask(tc.Width, tc.Height, cs)
	contour.ResolveDepths(ids, cs)

	img := image.NewRGBA(image.Rect(0, 0, tc.Width, tc.Height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+3] = 0xff
	}
	for _, c := range cs {
		for _, p := range c.Points {
			img.SetRGBA(p.X, p.Y, grey)
		}
	}
	return img, ids, cs
}

func findCase(t *testing.T, category, name string) testcases.TestCase {
	t.Helper()
	for _, tc := range testcases.All[category] {
		if tc.Name == name {
			return tc
		}
	}
	t.Fatalf("missing fixture %s_%s", category, name)
	return testcases.TestCase{}
}

func TestFillConcentric(t *testing.T) {
	img, ids, cs := prepare(t, findCase(t, "nesting", "concentric"))
	s := DepthScale(cs, StandardLow, StandardHigh)
	f := &Filler{Scale: s}
	f.Fill(img, ids, cs)

	require.Equal(t, s.Get(-1), img.RGBAAt(0, 0))
	require.Equal(t, s.Get(-1), img.RGBAAt(39, 20))
	require.Equal(t, s.Get(0), img.RGBAAt(5, 5))
	require.Equal(t, s.Get(1), img.RGBAAt(10, 10))
	require.Equal(t, s.Get(2), img.RGBAAt(20, 20))
	require.Equal(t, grey, img.RGBAAt(2, 2))
	require.Equal(t, grey, img.RGBAAt(25, 20))
}

func TestFillEmpty(t *testing.T) {
	img, ids, cs := prepare(t, findCase(t, "empty", "blank"))
	require.Empty(t, cs)
	s := DepthScale(cs, StandardLow, StandardHigh)
	f := &Filler{Scale: s}
	f.Fill(img, ids, cs)

	for y := range 16 {
		for x := range 16 {
			require.Equal(t, s.Get(-1), img.RGBAAt(x, y))
		}
	}
}

func TestFillWithoutSeed(t *testing.T) {
	img, ids, cs := prepare(t, findCase(t, "empty", "dot"))
	s := DepthScale(cs, StandardLow, StandardHigh)
	f := &Filler{Scale: s}
	f.Fill(img, ids, cs)

	require.Equal(t, grey, img.RGBAAt(5, 5))
	require.Equal(t, s.Get(-1), img.RGBAAt(4, 5))
	require.Equal(t, s.Get(-1), img.RGBAAt(0, 11))
}
