package render

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkFillO benchmarks our rasteriser drawing an "O" shape.
func BenchmarkFillO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			centre := vec.Vec2{X: float64(size) / 2, Y: float64(size) / 2}
			o := Circle(centre, float64(size)*0.45)
			inner := Circle(centre, float64(size)*0.30)
			o.Cmds = append(o.Cmds, inner.Cmds...)
			o.Coords = append(o.Coords, inner.Coords...)

			b.ReportAllocs()
			for b.Loop() {
				r.FillEvenOdd(o, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing the same shape.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			centre := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, centre, centre, outerR, false)
				addCircleToVector(r, centre, centre, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeStaircase strokes a long pixel staircase, the typical
// shape of a traced contour.
func BenchmarkStrokeStaircase(b *testing.B) {
	const size = 512
	p := &path.Data{}
	p.MoveTo(vec.Vec2{X: 0.5, Y: 0.5})
	for i := 1; i < size; i++ {
		p.LineTo(vec.Vec2{X: float64(i) + 0.5, Y: float64(i/2) + 0.5})
	}

	c := NewCanvas(size, size, color.White)
	r := NewRasteriser(c.Clip())
	paint := c.Paint(color.Black)

	b.ReportAllocs()
	for b.Loop() {
		r.Stroke(p, paint)
	}
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic
// Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(circleKappa)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	if clockwise {
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
