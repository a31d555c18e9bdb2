package interp

import (
	"fmt"
	"math"
	"testing"
)

func makeBenchSurface(n, m int) *Bicubic {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}

	ys := make([]float64, m)
	for j := range ys {
		ys[j] = 3000 + 10*float64(j)
	}

	values := make([][]float64, n)
	for i := range values {
		row := make([]float64, m)
		for j := range row {
			row[j] = math.Exp(-xs[i]/20) * math.Sin(ys[j]/500)
		}

		values[i] = row
	}

	b, err := NewBicubic(xs, ys, values)
	if err != nil {
		panic(err)
	}

	return b
}

func BenchmarkEvalGrid(b *testing.B) {
	surface := makeBenchSurface(30, 200)

	for _, tc := range []struct{ p, w int }{
		{p: 10, w: 50},
		{p: 50, w: 500},
		{p: 100, w: 2000},
	} {
		qx := make([]float64, tc.p)
		for i := range qx {
			qx[i] = 29 * float64(i) / float64(tc.p)
		}

		qy := make([]float64, tc.w)
		for j := range qy {
			qy[j] = 3000 + 1990*float64(j)/float64(tc.w)
		}

		b.Run(fmt.Sprintf("%dx%d", tc.p, tc.w), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				surface.EvalGrid(qx, qy)
			}
		})
	}
}

func BenchmarkEval(b *testing.B) {
	surface := makeBenchSurface(30, 200)

	b.ReportAllocs()

	for range b.N {
		surface.Eval(14.2, 4321.5)
	}
}
