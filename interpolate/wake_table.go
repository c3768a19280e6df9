package interpolate

// WakeTable wraps a Linear interpolator with the causal wake-function
// policy: the wake is zero for negative separations and zero outside the
// tabulated domain.
type WakeTable struct {
	lin       *Linear
	low, high float64
}

// NewWakeTable creates a causal wake table from a strictly increasing
// sequence of separations, ss, and the wake amplitudes at those separations.
func NewWakeTable(ss, vals []float64) *WakeTable {
	t := &WakeTable{lin: NewLinear(ss, vals)}
	t.low, t.high = t.lin.Range()
	return t
}

// NewUniformWakeTable creates a causal wake table for amplitudes sampled at
// uniformly spaced separations starting at s0 and separated by ds.
func NewUniformWakeTable(s0, ds float64, vals []float64) *WakeTable {
	t := &WakeTable{lin: NewUniformLinear(s0, ds, vals)}
	t.low, t.high = t.lin.Range()
	return t
}

// Eval returns the interpolated wake amplitude at the separation s, or zero
// if s is negative or outside the tabulated domain.
func (t *WakeTable) Eval(s float64) float64 {
	if s < 0 || s < t.low || s > t.high { return 0 }
	return t.lin.Eval(s)
}
