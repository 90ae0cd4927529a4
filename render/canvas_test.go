package render

import (
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/isomap/contour"
)

func TestPaintBlend(t *testing.T) {
	c := NewCanvas(4, 1, color.White)
	paint := c.Paint(color.RGBA{R: 75, G: 75, B: 75, A: 255})
	paint(0, 0, []float32{1, 0.5, 0})

	if got := c.Img.RGBAAt(0, 0); got != (color.RGBA{75, 75, 75, 255}) {
		t.Errorf("full coverage: got %v", got)
	}
	half := c.Img.RGBAAt(1, 0)
	if half.R < 164 || half.R > 166 || half.A != 255 {
		t.Errorf("half coverage: got %v", half)
	}
	if got := c.Img.RGBAAt(2, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("zero coverage: got %v", got)
	}
}

func TestPaintExclude(t *testing.T) {
	c := NewCanvas(6, 1, color.White)
	paint := c.Paint(color.Black, image.Rect(2, 0, 4, 1))
	paint(0, 0, []float32{1, 1, 1, 1, 1, 1})

	for x := range 6 {
		want := uint8(0)
		if x == 2 || x == 3 {
			want = 255
		}
		if got := c.Img.RGBAAt(x, 0).R; got != want {
			t.Errorf("pixel %d: got %d, want %d", x, got, want)
		}
	}
}

func TestContourPath(t *testing.T) {
	open := &contour.Contour{Points: []contour.Point{{1, 1}, {2, 1}, {3, 2}}}
	p := ContourPath(open)
	if len(p.Cmds) != 3 || len(p.Coords) != 3 {
		t.Fatalf("open contour: %d commands, %d points", len(p.Cmds), len(p.Coords))
	}
	if p.Coords[2].X != 3.5 || p.Coords[2].Y != 2.5 {
		t.Errorf("last point %v, want pixel centre", p.Coords[2])
	}

	closed := &contour.Contour{Points: open.Points, Closed: true}
	if p := ContourPath(closed); len(p.Cmds) != 4 {
		t.Errorf("closed contour: %d commands", len(p.Cmds))
	}

	single := &contour.Contour{Points: []contour.Point{{4, 4}}}
	if p := ContourPath(single); len(p.Cmds) != 2 {
		t.Errorf("single point: %d commands", len(p.Cmds))
	}
}

func TestOutline(t *testing.T) {
	var pts []contour.Point
	for x := 2; x <= 12; x++ {
		pts = append(pts, contour.Point{X: x, Y: 5})
	}
	contours := []contour.Contour{{ID: 1, Value: 1, Points: pts}}

	c := NewCanvas(16, 12, color.White)
	r := NewRasteriser(c.Clip())
	exclude := map[int][]image.Rectangle{1: {image.Rect(6, 0, 9, 12)}}
	styles := DefaultOutlineStyles(1)
	styles.Open.Color = color.RGBA{A: 255}
	OutlineContour(c, r, &contours[0], styles, exclude[1])

	for x := 3; x <= 11; x++ {
		got := c.Img.RGBAAt(x, 5).R
		switch {
		case x >= 6 && x < 9:
			if got != 255 {
				t.Errorf("excluded pixel %d: got %d", x, got)
			}
		case got != 0:
			t.Errorf("pixel %d: got %d, want black", x, got)
		}
	}
	for x := range 16 {
		if got := c.Img.RGBAAt(x, 3).R; got != 255 {
			t.Errorf("pixel (%d,3) painted: %d", x, got)
		}
	}
}

func TestOutlineStyles(t *testing.T) {
	pts := []contour.Point{{2, 2}, {6, 2}, {6, 6}, {2, 6}, {2, 3}}
	contours := []contour.Contour{
		{ID: 1, Value: 1, Points: pts, Closed: true},
		{ID: 2, Value: 2, Points: []contour.Point{{10, 4}, {14, 4}}},
	}

	c := NewCanvas(16, 10, color.White)
	styles := DefaultOutlineStyles(1)
	r := NewRasteriser(c.Clip())
	for i := range contours {
		OutlineContour(c, r, &contours[i], styles, nil)
	}

	if got := c.Img.RGBAAt(4, 2); got != styles.Closed.Color {
		t.Errorf("closed contour: got %v", got)
	}
	if got := c.Img.RGBAAt(12, 4); got != styles.Open.Color {
		t.Errorf("open contour: got %v", got)
	}
}

func TestCircle(t *testing.T) {
	p := Circle(vecOf(10, 10), 5)
	if len(p.Cmds) != 6 {
		t.Fatalf("got %d commands", len(p.Cmds))
	}
	r := NewRasteriser(rectOf(20, 20))
	g := newCoverageGrid(20, 20)
	r.FillNonZero(p, g.emit)

	// the flattened circle is an inscribed polygon
	if s := g.sum(); s < 74 || s > 78.6 {
		t.Errorf("area %.3f, want slightly below 78.54", s)
	}
	if g.at(10, 10) < 0.999 || g.at(0, 0) != 0 {
		t.Error("wrong inside/outside")
	}
}
