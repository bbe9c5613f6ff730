package univariate

import (
	"fmt"
	"math"

	"github.com/Grenka054/Optimization-Methods/common"
	"gonum.org/v1/gonum/floats"
)

// BrokenLine finds the global minimum of a function satisfying a Lipschitz
// condition on a closed interval (the Piyavskii saw-tooth method).
//
// The optimizer keeps a piecewise-linear minorant built from cones of slope
// ±Lipschitz rooted at the evaluated points. Every iteration takes the
// lowest support point of the minorant, evaluates the objective there and
// stops once the difference between the objective and the predicted height
// is at most Sigma. Otherwise the point is raised onto the objective and
// replaced in the minorant by the two intersections of its new cone with
// the neighbouring cones.
//
// The result is only a global minimum if Lipschitz is a valid (or
// conservative) Lipschitz constant of the objective on the interval.
type BrokenLine struct {
	Lipschitz float64 // Lipschitz constant of the objective on the interval
	Sigma     float64 // Precision bound on the gap at the reported point

	f            Objective
	lower, upper float64
	observer     Observer

	// Support points, addressed by index. Raising a point overwrites its
	// slot, refinement appends.
	locs      []float64
	heights   []float64
	evaluated []bool

	gap  common.UniToler
	iter int
}

func NewBrokenLine(lipschitz, sigma float64) *BrokenLine {
	return &BrokenLine{
		Lipschitz: lipschitz,
		Sigma:     sigma,
	}
}

func (b *BrokenLine) SetObserver(o Observer) {
	b.observer = o
}

func (b *BrokenLine) Init(f Objective, lower, upper float64) (loc, obj float64, nFunEvals int, err error) {
	if !(b.Sigma > 0) {
		return 0, 0, 0, fmt.Errorf("%w: got %v", ErrInvalidPrecision, b.Sigma)
	}
	// 2L is the cone width used by every step and must stay finite
	if !(b.Lipschitz > 0) || math.IsInf(2*b.Lipschitz, 0) {
		return 0, 0, 0, fmt.Errorf("%w: got %v", ErrInvalidLipschitz, b.Lipschitz)
	}
	b.f = f
	b.lower = lower
	b.upper = upper
	b.iter = 0
	b.gap.Init(b.Sigma, math.Inf(1))

	b.locs = b.locs[:0]
	b.heights = b.heights[:0]
	b.evaluated = b.evaluated[:0]

	fl, err := b.eval(lower)
	if err != nil {
		return 0, 0, 1, err
	}
	fu, err := b.eval(upper)
	if err != nil {
		return 0, 0, 2, err
	}
	b.add(lower, fl, true)
	b.add(upper, fu, true)

	// Intersection of the cones rooted at the two endpoints
	l := b.Lipschitz
	b.add(b.clamp((fl-fu)/(2*l)+(lower+upper)/2), (fl+fu)/2-l*(upper-lower)/2, false)

	if fu < fl {
		return upper, fu, 2, nil
	}
	return lower, fl, 2, nil
}

func (b *BrokenLine) Status() common.Status {
	if b.gap.AbsConverged() {
		return common.GapConverged
	}
	return common.Continue
}

func (b *BrokenLine) Iterate() (it Iteration, nFunEvals int, err error) {
	i := floats.MinIdx(b.heights)
	loc, bound := b.locs[i], b.heights[i]

	obj := bound
	if !b.evaluated[i] {
		obj, err = b.eval(loc)
		if err != nil {
			return it, 1, err
		}
		nFunEvals = 1
	}

	b.iter++
	it = Iteration{
		Index: b.iter,
		Loc:   loc,
		Obj:   obj,
		Bound: bound,
		Gap:   obj - bound,
	}
	if b.observer != nil {
		it.Points = b.Points()
		b.observer.Observe(it)
	}

	b.gap.Add(it.Gap)
	if b.gap.AbsConverged() {
		return it, nFunEvals, nil
	}

	// Raise the candidate onto the objective and add the intersections of
	// its cone with the cones it cut through.
	delta := it.Gap / (2 * b.Lipschitz)
	height := (obj + bound) / 2
	b.heights[i] = obj
	b.evaluated[i] = true
	// A clamped child keeps the height of the intersection it replaces, so
	// it is no longer a point of the minorant.
	b.add(b.clamp(loc-delta), height, false)
	b.add(b.clamp(loc+delta), height, false)
	return it, nFunEvals, nil
}

// Points returns a copy of the support points sorted by location
func (b *BrokenLine) Points() []SupportPoint {
	xs := make([]float64, len(b.locs))
	copy(xs, b.locs)
	inds := make([]int, len(xs))
	floats.Argsort(xs, inds)

	pts := make([]SupportPoint, len(xs))
	for k, i := range inds {
		pts[k] = SupportPoint{X: xs[k], Value: b.heights[i], Evaluated: b.evaluated[i]}
	}
	return pts
}

func (b *BrokenLine) Result() {}

func (b *BrokenLine) add(x, value float64, evaluated bool) {
	b.locs = append(b.locs, x)
	b.heights = append(b.heights, value)
	b.evaluated = append(b.evaluated, evaluated)
}

func (b *BrokenLine) eval(x float64) (float64, error) {
	v := b.f.Obj(x)
	if math.IsNaN(v) {
		return v, fmt.Errorf("%w at x = %v", ErrUndefinedObjective, x)
	}
	return v, nil
}

// clamp keeps new points inside the interval. Only an invalid Lipschitz
// constant can place them outside.
func (b *BrokenLine) clamp(x float64) float64 {
	return math.Max(b.lower, math.Min(b.upper, x))
}
