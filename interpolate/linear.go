/*package interpolate provides the 1D interpolation primitives used to sample
tabulated wake functions.
*/
package interpolate

import (
	"fmt"
	"sort"
)

// Linear is a linear interpolator.
type Linear struct {
	xs   searcher
	vals []float64
}

// NewLinear creates a linear interpolator for a strictly increasing sequence
// of points, xs, which take on the values given by vals.
//
// Lookups will occur in O(log |xs|).
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic(fmt.Sprintf(
			"Table given to NewLinear() has len(xs) = %d but len(vals) = %d.",
			len(xs), len(vals),
		))
	} else if len(xs) <= 1 {
		panic(fmt.Sprintf(
			"Table given to NewLinear() has length of %d.", len(xs),
		))
	}
	for i := 0; i < len(xs)-1; i++ {
		if xs[i+1] <= xs[i] {
			panic("Table given to NewLinear() not strictly increasing.")
		}
	}

	lin := &Linear{}
	lin.xs.init(xs)
	lin.vals = vals
	return lin
}

// NewUniformLinear creates a linear interpolator for a uniformly spaced
// sequence of x values starting at x0 and separated by dx whose values are
// given by vals.
//
// Lookups will be O(1).
func NewUniformLinear(x0, dx float64, vals []float64) *Linear {
	if len(vals) <= 1 {
		panic(fmt.Sprintf(
			"Table given to NewUniformLinear() has length of %d.", len(vals),
		))
	} else if dx <= 0 {
		panic(fmt.Sprintf("NewUniformLinear() given dx = %g.", dx))
	}

	lin := &Linear{}
	lin.xs.unifInit(x0, dx, len(vals))
	lin.vals = vals
	return lin
}

// Range returns the lowest and highest x values covered by the interpolator.
func (lin *Linear) Range() (low, high float64) {
	return lin.xs.val(0), lin.xs.val(lin.xs.n - 1)
}

// Eval returns the interpolated value at x.
//
// Eval panics if called on a value outside the supplied x range.
func (lin *Linear) Eval(x float64) float64 {
	low, high := lin.Range()
	if x < low || x > high {
		panic(fmt.Sprintf(
			"Eval() called with x = %g, outside the table range [%g, %g].",
			x, low, high,
		))
	}

	i1 := lin.xs.search(x)
	i2 := i1 + 1
	x1, x2 := lin.xs.val(i1), lin.xs.val(i2)
	v1, v2 := lin.vals[i1], lin.vals[i2]

	return ((v2-v1)/(x2-x1))*(x-x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 { out = [][]float64{make([]float64, len(xs))} }
	for i, x := range xs { out[0][i] = lin.Eval(x) }
	return out[0]
}

// searcher finds the index of the table cell containing a given x value for
// both uniform and non-uniform point sequences.
type searcher struct {
	xs     []float64 // nil for uniform tables.
	x0, dx float64
	n      int
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.n = len(xs)
}

func (s *searcher) unifInit(x0, dx float64, n int) {
	s.x0, s.dx = x0, dx
	s.n = n
}

func (s *searcher) val(i int) float64 {
	if s.xs != nil { return s.xs[i] }
	return s.x0 + s.dx*float64(i)
}

// search returns the largest index i such that val(i) <= x and i + 1 is
// still a valid index. x must be within the table range.
func (s *searcher) search(x float64) int {
	var i int
	if s.xs != nil {
		i = sort.SearchFloat64s(s.xs, x)
		if i == s.n || s.xs[i] > x { i-- }
	} else {
		i = int((x - s.x0) / s.dx)
	}

	if i < 0 { i = 0 }
	if i > s.n-2 { i = s.n - 2 }
	return i
}
