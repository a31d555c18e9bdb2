package interp

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidGrid is returned when spline construction receives an axis that
// is not strictly increasing or has fewer than MinAxisPoints entries, or a
// value grid whose shape does not match its axes.
var ErrInvalidGrid = errors.New("interp: invalid grid")

// MinAxisPoints is the minimum number of knots per axis. Cubic splines need
// degree-3 support, so four points is the smallest usable axis.
const MinAxisPoints = 4

// Cubic is a 1D natural cubic interpolating spline. It reproduces the knot
// values exactly and is C² continuous between knots.
type Cubic struct {
	xs []float64
	ys []float64
	m  []float64 // second derivatives at the knots
}

// NewCubic builds a natural cubic spline through (xs[i], ys[i]). The knots
// xs must be strictly increasing with at least MinAxisPoints entries, and ys
// must hold one value per knot. Violations return ErrInvalidGrid. The input
// slices are copied.
func NewCubic(xs, ys []float64) (*Cubic, error) {
	if err := checkAxis(xs); err != nil {
		return nil, err
	}

	if len(ys) != len(xs) {
		return nil, fmt.Errorf("%w: %d values for %d knots", ErrInvalidGrid, len(ys), len(xs))
	}

	c := &Cubic{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}
	c.m = secondDerivatives(c.xs, c.ys)

	return c, nil
}

// Eval returns the spline value at x. Arguments outside the knot range
// evaluate the nearest end polynomial piece.
func (c *Cubic) Eval(x float64) float64 {
	i := interval(c.xs, x)
	h := c.xs[i+1] - c.xs[i]
	u := c.xs[i+1] - x
	v := x - c.xs[i]

	return (c.m[i]*u*u*u+c.m[i+1]*v*v*v)/(6*h) +
		(c.ys[i]/h-c.m[i]*h/6)*u +
		(c.ys[i+1]/h-c.m[i+1]*h/6)*v
}

// Bicubic is a tensor-product bicubic interpolating surface over a
// rectangular (x, y) knot grid. It reproduces the grid values exactly at the
// nodes and is C² continuous in both directions.
type Bicubic struct {
	xs   []float64
	rows []*Cubic // one spline along the y axis per x knot
}

// NewBicubic builds a bicubic surface through values[i][j] at (xs[i], ys[j]).
// Both axes must be strictly increasing with at least MinAxisPoints entries,
// and values must have exactly len(xs) rows of len(ys) entries each.
// Violations return ErrInvalidGrid.
func NewBicubic(xs, ys []float64, values [][]float64) (*Bicubic, error) {
	if err := checkAxis(xs); err != nil {
		return nil, err
	}

	if err := checkAxis(ys); err != nil {
		return nil, err
	}

	if len(values) != len(xs) {
		return nil, fmt.Errorf("%w: %d value rows for %d x knots", ErrInvalidGrid, len(values), len(xs))
	}

	b := &Bicubic{
		xs:   append([]float64(nil), xs...),
		rows: make([]*Cubic, len(xs)),
	}

	for i, row := range values {
		if len(row) != len(ys) {
			return nil, fmt.Errorf("%w: row %d has %d values for %d y knots", ErrInvalidGrid, i, len(row), len(ys))
		}

		spline, err := NewCubic(ys, row)
		if err != nil {
			return nil, err
		}

		b.rows[i] = spline
	}

	return b, nil
}

// Eval returns the surface value at (x, y). Arguments outside the knot
// range evaluate the nearest end polynomial pieces.
func (b *Bicubic) Eval(x, y float64) float64 {
	col := make([]float64, len(b.xs))
	for i, row := range b.rows {
		col[i] = row.Eval(y)
	}

	return evalAlong(b.xs, col, []float64{x})[0]
}

// EvalGrid evaluates the surface on the full outer product of xs and ys,
// returning len(xs) rows of len(ys) values each. Either input may be empty,
// yielding a degenerate 0×W or P×0 result, and out-of-range values
// extrapolate the end pieces.
func (b *Bicubic) EvalGrid(xs, ys []float64) [][]float64 {
	out := make([][]float64, len(xs))
	flat := make([]float64, len(xs)*len(ys))
	for i := range out {
		out[i] = flat[i*len(ys) : (i+1)*len(ys) : (i+1)*len(ys)]
	}

	col := make([]float64, len(b.xs))

	for j, y := range ys {
		for i, row := range b.rows {
			col[i] = row.Eval(y)
		}

		vals := evalAlong(b.xs, col, xs)
		for i := range xs {
			out[i][j] = vals[i]
		}
	}

	return out
}

// evalAlong interpolates the column values defined on the validated knots
// at every query point.
func evalAlong(knots, col, queries []float64) []float64 {
	c := Cubic{xs: knots, ys: col, m: secondDerivatives(knots, col)}

	vals := make([]float64, len(queries))
	for i, q := range queries {
		vals[i] = c.Eval(q)
	}

	return vals
}

// secondDerivatives solves the natural-spline moment system for strictly
// increasing knots. The interior system is tridiagonal and strictly
// diagonally dominant, so the solve cannot fail for a validated axis.
func secondDerivatives(xs, ys []float64) []float64 {
	n := len(xs)
	k := n - 2

	dl := make([]float64, k-1)
	d := make([]float64, k)
	du := make([]float64, k-1)
	rhs := make([]float64, k)

	for i := 1; i <= k; i++ {
		h0 := xs[i] - xs[i-1]
		h1 := xs[i+1] - xs[i]

		d[i-1] = (h0 + h1) / 3
		if i > 1 {
			dl[i-2] = h0 / 6
		}

		if i < k {
			du[i-1] = h1 / 6
		}

		rhs[i-1] = (ys[i+1]-ys[i])/h1 - (ys[i]-ys[i-1])/h0
	}

	var sol mat.VecDense

	tri := mat.NewTridiag(k, dl, d, du)
	if err := tri.SolveVecTo(&sol, false, mat.NewVecDense(k, rhs)); err != nil {
		panic(fmt.Sprintf("interp: spline system solve failed: %v", err))
	}

	m := make([]float64, n)
	for i := 0; i < k; i++ {
		m[i+1] = sol.AtVec(i)
	}

	return m
}

// interval returns the index of the polynomial piece covering x, clamped to
// the end pieces so out-of-range arguments extrapolate instead of failing.
func interval(xs []float64, x float64) int {
	i := sort.SearchFloat64s(xs, x) - 1
	if i < 0 {
		return 0
	}

	if last := len(xs) - 2; i > last {
		return last
	}

	return i
}

// checkAxis validates a knot axis: at least MinAxisPoints entries, strictly
// increasing.
func checkAxis(xs []float64) error {
	if len(xs) < MinAxisPoints {
		return fmt.Errorf("%w: axis needs at least %d points, got %d", ErrInvalidGrid, MinAxisPoints, len(xs))
	}

	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return fmt.Errorf("%w: axis must be strictly increasing", ErrInvalidGrid)
		}
	}

	return nil
}
