package contour

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/isomap/grid"
	"seehuhn.de/go/isomap/testcases"
)

func TestFixtures(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				m := tc.Mask()
				nPix := m.Count()

				cs := Trace(m)
				require.Zero(t, m.Count(), "mask not consumed")

				total := 0
				for i, c := range cs {
					require.Equal(t, i+1, c.ID)
					require.Equal(t, int32(i+1), c.Value)
					require.Equal(t, Background, c.Depth)
					require.NotEmpty(t, c.Points)
					total += len(c.Points)
				}
				require.Equal(t, nPix, total, "every pixel belongs to one contour")

				if tc.Closed != nil {
					closed := make([]bool, len(cs))
					for i, c := range cs {
						closed[i] = c.Closed
					}
					require.Equal(t, tc.Closed, closed)
				}

				ids := NewIDMask(tc.Width, tc.Height, cs)
				ResolveDepths(ids, cs)
				if tc.Depths != nil {
					depths := make([]int, len(cs))
					for i, c := range cs {
						depths[i] = c.Depth
					}
					require.Equal(t, tc.Depths, depths, "approximate=%t", tc.Approximate)
				}
			})
		}
	}
}

// TestTraceOrder checks that consecutive points of simple curves are
// 8-neighbours, so that the point order can be used for drawing.
func TestTraceOrder(t *testing.T) {
	for _, tc := range testcases.All["curve"] {
		t.Run(tc.Name, func(t *testing.T) {
			cs := Trace(tc.Mask())
			require.Len(t, cs, 1)
			pts := cs[0].Points
			for i := 1; i < len(pts); i++ {
				dx, dy := pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y
				require.True(t, dx*dx+dy*dy <= 2, "gap between %v and %v", pts[i-1], pts[i])
			}
		})
	}
}

func TestTraceArch(t *testing.T) {
	m := grid.NewMask(17, 13)
	for i := 0; i <= 6; i++ {
		m.Set(8-i, 4+i, grid.Foreground)
		m.Set(8+i, 4+i, grid.Foreground)
	}

	cs := Trace(m)
	require.Len(t, cs, 1)
	pts := cs[0].Points
	require.Len(t, pts, 13)
	require.Equal(t, Point{14, 10}, pts[0])
	require.Equal(t, Point{8, 4}, pts[6])
	require.Equal(t, Point{2, 10}, pts[12])
	require.False(t, cs[0].Closed)
}

func TestCloseThreshold(t *testing.T) {
	draw := func() *grid.Mask {
		m := grid.NewMask(12, 3)
		for x := 1; x <= 6; x++ {
			m.Set(x, 1, grid.Foreground)
		}
		return m
	}

	cs := Trace(draw())
	require.Len(t, cs, 1)
	require.False(t, cs[0].Closed)

	cs = Trace(draw(), WithCloseThreshold(5))
	require.True(t, cs[0].Closed)
}

func TestTraceEmpty(t *testing.T) {
	require.Empty(t, Trace(grid.NewMask(10, 10)))
	require.Empty(t, Trace(grid.NewMask(0, 0)))
}

func TestIDMaskManyContours(t *testing.T) {
	m := grid.NewMask(60, 20)
	for y := 0; y < 20; y += 2 {
		for x := 0; x < 60; x += 2 {
			m.Set(x, y, grid.Foreground)
		}
	}

	cs := Trace(m)
	require.Len(t, cs, 300)

	ids := NewIDMask(60, 20, cs)
	require.Equal(t, int32(300), ids.At(58, 18))
	require.Equal(t, int32(257), ids.At(2*(256%30), 2*(256/30)))
	require.Zero(t, ids.At(1, 1))
	require.Zero(t, ids.At(-1, 0))

	ResolveDepths(ids, cs)
	for _, c := range cs {
		require.Zero(t, c.Depth)
	}
}

// TestResolveDepthsRepeatedValue checks that a contour met again on the
// same side, with only background or the scanned contour in between, is
// toggled once.
func TestResolveDepthsRepeatedValue(t *testing.T) {
	big := Rect{Min: Point{0, 0}, Max: Point{20, 20}}
	contours := func() []Contour {
		return []Contour{
			{ID: 1, Value: 1, Points: []Point{{0, 0}}, Bounds: Rect{Min: Point{0, 0}, Max: Point{0, 0}}},
			{ID: 2, Value: 2, Points: []Point{{2, 0}}, Bounds: big},
			{ID: 3, Value: 3, Points: []Point{{6, 0}}, Bounds: big},
		}
	}

	for _, tc := range []struct {
		row   []int32
		depth int
	}{
		{row: []int32{1, 0, 2, 0, 2, 0, 3, 0}, depth: 2},
		{row: []int32{1, 2, 1, 2, 0, 0, 0, 0}, depth: 1},
		{row: []int32{1, 2, 3, 2, 0, 0, 0, 0}, depth: 1},
		{row: []int32{1, 0, 2, 2, 2, 0, 0, 0}, depth: 1},
	} {
		cs := contours()
		ids := &IDMask{W: len(tc.row), H: 1, Pix: tc.row}
		ResolveDepths(ids, cs)
		require.Equal(t, tc.depth, cs[0].Depth, "row %v", tc.row)
	}
}

func TestDirectionOf(t *testing.T) {
	p := Point{5, 5}
	cases := []struct {
		q    Point
		want Direction
	}{
		{Point{5, 4}, Up},
		{Point{6, 4}, UpRight},
		{Point{9, 5}, Right},
		{Point{6, 6}, DownRight},
		{Point{5, 6}, Down},
		{Point{4, 7}, DownLeft},
		{Point{4, 5}, Left},
		{Point{0, 0}, UpLeft},
		{Point{5, 5}, None},
	}
	for _, c := range cases {
		require.Equal(t, c.want, DirectionOf(p, c.q), "direction to %v", c.q)
	}
	require.Equal(t, "down-left", DownLeft.String())
}

func TestNeighbourOrder(t *testing.T) {
	for d := Up; d < None; d++ {
		order := neighbourOrder[d]
		require.Len(t, order, 7, d.String())
		require.Equal(t, d, DirectionOf(Point{}, order[0]), "first offset continues %s", d)
		for _, off := range order {
			back := DirectionOf(off, Point{})
			require.NotEqual(t, d, back, "offset %v of %s points backwards", off, d)
		}
	}
	require.Len(t, neighbourOrder[None], 8)
}
