package univariate

import (
	"github.com/Grenka054/Optimization-Methods/common"
)

// counting wraps an objective and records every evaluation
type counting struct {
	f     Objective
	evals []float64
}

func (c *counting) Obj(x float64) float64 {
	c.evals = append(c.evals, x)
	return c.f.Obj(x)
}

// recorder collects the iterations of a debug run
type recorder struct {
	its []Iteration
}

func (r *recorder) Observe(it Iteration) {
	r.its = append(r.its, it)
}

var userStop = common.NewStatus("UserStop")

// stopper is an objective with every optional hook, asking to stop once it
// has been evaluated limit times
type stopper struct {
	f        Objective
	limit    int
	evals    int
	inits    int
	finished int
}

func (s *stopper) Obj(x float64) float64 {
	s.evals++
	return s.f.Obj(x)
}

func (s *stopper) Init() { s.inits++ }

func (s *stopper) Status() common.Status {
	if s.evals >= s.limit {
		return userStop
	}
	return common.Continue
}

func (s *stopper) Result() { s.finished++ }
