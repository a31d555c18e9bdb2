// Package interp provides cubic-spline interpolation over strictly
// increasing knot axes.
//
// Available types:
//
//   - [Cubic]:   1D natural cubic interpolating spline
//   - [Bicubic]: tensor-product bicubic surface over a rectangular value grid
//
// Both are exact at the knots, C² continuous between them, and evaluate the
// nearest end polynomial piece for arguments outside the knot range instead
// of failing. They are read-only after construction and safe for concurrent
// queries.
package interp
