package clip

import (
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/plot/geom"
)

// BenchmarkPolyline benchmarks clipping a spiral which leaves and
// re-enters the box many times.
func BenchmarkPolyline(b *testing.B) {
	sizes := []int{100, 10000}

	for _, n := range sizes {
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			box := geom.Box[float64]{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
			xs, ys := spiral(n)
			outX := make([]float64, 2*n)
			outY := make([]float64, 2*n)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				Polyline(&box, xs, ys, outX, outY)
			}
		})
	}
}

// BenchmarkDrawPolyline benchmarks the callback interface on the same
// spiral, with a pen which does nothing.
func BenchmarkDrawPolyline(b *testing.B) {
	box := geom.Box[float64]{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	xs, ys := spiral(10000)
	pen := PenFuncs[float64]{
		Move: func(x, y float64) error { return nil },
		Line: func(x, y float64) error { return nil },
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		if err := DrawPolyline(&box, xs, ys, pen); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSegmentsInPlace benchmarks batch clipping with compaction.
func BenchmarkSegmentsInPlace(b *testing.B) {
	box := geom.Box[float32]{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	xs64, ys64 := spiral(10000)
	xs := make([]float32, len(xs64))
	ys := make([]float32, len(ys64))
	bufX := make([]float32, len(xs64))
	bufY := make([]float32, len(ys64))
	for i := range xs64 {
		xs[i] = float32(xs64[i])
		ys[i] = float32(ys64[i])
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		copy(bufX, xs)
		copy(bufY, ys)
		Segments(&box, bufX, bufY, bufX, bufY)
	}
}

// spiral returns n points on an expanding spiral through the unit box.
func spiral(n int) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range n {
		t := float64(i) / float64(n)
		r := 2 * t
		phi := 40 * math.Pi * t
		xs[i] = r * math.Cos(phi)
		ys[i] = r * math.Sin(phi)
	}
	return xs, ys
}
