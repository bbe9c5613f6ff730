package univariate

import (
	"math"

	"github.com/Grenka054/Optimization-Methods/common"
	"github.com/Grenka054/Optimization-Methods/write"
)

// DefaultMaximumIterations bounds the number of refinement iterations when
// the caller does not choose a limit.
const DefaultMaximumIterations = 10000

type Objective interface {
	Obj(x float64) float64
}

// Func adapts an ordinary function to the Objective interface
type Func func(x float64) float64

func (f Func) Obj(x float64) float64 { return f(x) }

// SupportPoint anchors the broken line. Evaluated points carry the true
// objective value, the others the predicted height of the minorant.
type SupportPoint struct {
	X         float64
	Value     float64
	Evaluated bool
}

// Settings is a structure containing settings for univariate
// optimizers. Some settings may not apply to certain algorithms
type Settings struct {
	*common.CommonSettings

	// Observer receives every iteration of a debug run
	Observer Observer
}

// DefaultSettings returns the default settings for univariate optimizers.
// The default behavior is to run the optimizer until convergence, with
// DefaultMaximumIterations as a safeguard. If it is desired that it end
// earlier, consider changing MaximumIterations, MaximumFunctionEvaluations,
// and MaximumRuntime
func DefaultSettings() *Settings {
	s := &Settings{
		CommonSettings: common.DefaultCommonSettings(),
	}
	s.MaximumIterations = DefaultMaximumIterations
	return s
}

// clone returns a copy of s that can be modified without affecting s
func (s *Settings) clone() *Settings {
	c := *s
	cs := *s.CommonSettings
	c.CommonSettings = &cs
	if s.WriteSettings != nil {
		ws := *s.WriteSettings
		c.WriteSettings = &ws
	}
	return &c
}

// Helper is a helper struct for optimizers. Not intended for use by
// callers of optimization functions, but exported to aid others who are building
// optimization algorithms
//
// Optimization implementers should call Init() at the beginning of an optimization run
// and should call Status() to check tolerances. At the end of every interation should call
// Iterate()
type Helper struct {
	*common.Common

	locCurr   float64
	objCurr   float64
	boundCurr float64
	gapCurr   float64

	locBest float64
	objBest float64
}

// NewHelper creates a new univariate type and adds itself to the data adders
func NewHelper() *Helper {
	u := &Helper{
		Common: common.NewCommon(),
	}
	u.AddDataAdder(u)
	return u
}

func (u *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Loc", Value: u.locCurr})
	v = append(v, &write.Value{Heading: "Obj", Value: u.objCurr})
	v = append(v, &write.Value{Heading: "Bound", Value: u.boundCurr})
	v = append(v, &write.Value{Heading: "Gap", Value: u.gapCurr})
	return v
}

// Init resets the helper. initLoc and initObj are the best evaluated point
// known before the first iteration, found with nFunEvals evaluations.
func (u *Helper) Init(s *Settings, objectiveFunction interface{}, initLoc, initObj float64, nFunEvals int) error {
	u.locCurr = initLoc
	u.objCurr = initObj
	u.boundCurr = math.Inf(-1)
	u.gapCurr = math.Inf(1)

	u.locBest = initLoc
	u.objBest = initObj

	return u.Common.Init(s.CommonSettings, objectiveFunction, nFunEvals)
}

func (u *Helper) Iterate(it Iteration, nFunEvals int) error {
	u.locCurr = it.Loc
	u.objCurr = it.Obj
	u.boundCurr = it.Bound
	u.gapCurr = it.Gap
	if it.Obj < u.objBest {
		u.locBest = it.Loc
		u.objBest = it.Obj
	}
	return u.Common.Iterate(nFunEvals)
}

// Result reports the last candidate if the run converged and the best
// evaluated point otherwise.
func (u *Helper) Result(status common.Status, points []SupportPoint) *Result {
	r := &Result{
		CommonResult: u.Common.Result(status),
		Loc:          u.locCurr,
		Obj:          u.objCurr,
		LowerBound:   u.boundCurr,
		Gap:          u.gapCurr,
		Points:       points,
	}
	if !status.Converged() {
		r.Loc = u.locBest
		r.Obj = u.objBest
	}
	return r
}

type Result struct {
	*common.CommonResult
	Obj        float64        // Objective value at Loc
	Loc        float64        // Reported minimizer
	LowerBound float64        // Lowest height of the broken line at the last iteration
	Gap        float64        // Obj minus LowerBound at the last candidate
	Points     []SupportPoint // Support points of the broken line sorted by X
}
