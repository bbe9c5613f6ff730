package univariate

import "go.uber.org/zap"

// Iteration describes one pass of a global optimizer, taken before the
// optimizer refines its model.
type Iteration struct {
	Index  int     // 1-based iteration number
	Loc    float64 // Candidate location
	Obj    float64 // Objective value at Loc
	Bound  float64 // Predicted lower bound at Loc
	Gap    float64 // Obj - Bound
	Points []SupportPoint
}

// Observer is notified of every iteration of a debug run. It must not
// retain Points beyond the call unless it copies them.
type Observer interface {
	Observe(Iteration)
}

type ObserverFunc func(Iteration)

func (f ObserverFunc) Observe(it Iteration) { f(it) }

type multiObserver []Observer

func (m multiObserver) Observe(it Iteration) {
	for _, o := range m {
		o.Observe(it)
	}
}

// Observers fans an iteration out to every non-nil observer in order.
func Observers(obs ...Observer) Observer {
	var m multiObserver
	for _, o := range obs {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

// LogObserver logs the candidate of every iteration at debug level.
func LogObserver(logger *zap.Logger) Observer {
	return ObserverFunc(func(it Iteration) {
		logger.Debug("broken line iteration",
			zap.Int("iteration", it.Index),
			zap.Float64("x", it.Loc),
			zap.Float64("f", it.Obj),
			zap.Float64("bound", it.Bound),
			zap.Float64("gap", it.Gap),
			zap.Int("points", len(it.Points)),
		)
	})
}
