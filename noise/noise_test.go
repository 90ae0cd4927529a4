package noise

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/isomap/grid"
)

type sourceFunc func(x, y float64) float64

func (f sourceFunc) Noise2D(x, y float64) float64 { return f(x, y) }

func TestFieldFraction(t *testing.T) {
	g := &Generator{
		Source:    sourceFunc(func(x, y float64) float64 { return x }),
		XFreq:     0.25,
		YFreq:     1,
		Amplitude: 1,
	}
	f, err := g.Field(context.Background(), 9, 2)
	require.NoError(t, err)
	want := []float64{0, 0.25, 0.5, 0.75, 0, 0.25, 0.5, 0.75, 0}
	require.Equal(t, want, f.Val[:9])
	require.Equal(t, want, f.Val[9:])
}

func TestEdgesStep(t *testing.T) {
	step := func(v float64) *grid.Field {
		f := grid.NewField(10, 6)
		for y := range f.H {
			for x := 5; x < f.W; x++ {
				f.Val[y*f.W+x] = v
			}
		}
		return f
	}

	m := Edges(step(0.9))
	for y := range m.H {
		for x := range m.W {
			require.Equal(t, x == 4 || x == 5, m.IsSet(x, y), "pixel (%d, %d)", x, y)
		}
	}

	// A Sobel response of 2 averages to 1, which is discarded.
	require.Zero(t, Edges(step(0.5)).Count())
}

func TestEdgesFlat(t *testing.T) {
	f := grid.NewField(7, 7)
	for i := range f.Val {
		f.Val[i] = 0.6
	}
	require.Zero(t, Edges(f).Count())
}

func TestBoundaryMaskDegenerate(t *testing.T) {
	ctx := context.Background()

	g := &Generator{Source: NewPerlin(1), XFreq: 0.01, YFreq: 0.01, Amplitude: 0}
	m, err := g.BoundaryMask(ctx, 32, 32)
	require.NoError(t, err)
	require.Zero(t, m.Count())

	g = &Generator{Source: NewPerlin(1), Amplitude: 20}
	m, err = g.BoundaryMask(ctx, 32, 32)
	require.NoError(t, err)
	require.Zero(t, m.Count())

	g = &Generator{Source: NewPerlin(1), XFreq: 0.01, YFreq: 0.01, Amplitude: 20}
	m, err = g.BoundaryMask(ctx, -4, 10)
	require.NoError(t, err)
	require.Zero(t, m.W)
	require.Empty(t, m.Pix)
}

func TestBoundaryMaskDeterministic(t *testing.T) {
	ctx := context.Background()
	mask := func(seed int64, workers int) *grid.Mask {
		g := &Generator{
			Source:    NewPerlin(seed),
			XFreq:     0.02,
			YFreq:     0.02,
			Amplitude: 20,
			Workers:   workers,
		}
		m, err := g.BoundaryMask(ctx, 128, 96)
		require.NoError(t, err)
		return m
	}

	a := mask(42, 1)
	b := mask(42, 7)
	require.Equal(t, a.Pix, b.Pix)
	require.NotZero(t, a.Count())
}

func TestFieldCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &Generator{Source: NewPerlin(1), XFreq: 0.01, YFreq: 0.01, Amplitude: 20}
	_, err := g.Field(ctx, 16, 16)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPerlinRange(t *testing.T) {
	src := NewPerlin(7)
	for i := range 200 {
		v := src.Noise2D(float64(i)*0.137, float64(i)*0.071)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}
