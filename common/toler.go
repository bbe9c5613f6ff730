package common

import "math"

// UniToler is a type for checking the convergence of a non-negative
// quantity against an absolute tolerance.
type UniToler struct {
	absTol float64
	recent float64
	added  int
}

// Init initializes the UniToler. A NaN absTol disables the check.
func (t *UniToler) Init(absTol, initVal float64) {
	t.absTol = absTol
	t.recent = initVal
	t.added = 0
}

// Add adds a new value to the toler (after an iteration)
func (t *UniToler) Add(v float64) {
	t.recent = v
	t.added++
}

// Recent returns the most recently added value
func (t *UniToler) Recent() float64 {
	return t.recent
}

// Added returns the number of values added since Init
func (t *UniToler) Added() int {
	return t.added
}

// AbsConverged returns true if the most recent value is at or below the
// absolute tolerance
func (t *UniToler) AbsConverged() bool {
	if math.IsNaN(t.absTol) || math.IsNaN(t.recent) {
		return false
	}
	return t.recent <= t.absTol
}
