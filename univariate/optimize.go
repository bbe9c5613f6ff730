package univariate

import (
	"errors"
	"fmt"
	"math"

	"github.com/Grenka054/Optimization-Methods/common"
)

// GlobalOptimizer represents an optimizer that searches a bounded interval
// for the global minimum
type GlobalOptimizer interface {
	// Init checks the optimizer parameters, then builds the starting model on
	// [lower, upper]. It returns the best point evaluated while doing so.
	Init(f Objective, lower, upper float64) (loc, obj float64, nFunEvals int, err error)
	Status() common.Status
	Iterate() (it Iteration, nFunEvals int, err error)
	// Points returns the current support points sorted by location
	Points() []SupportPoint
	// Result does any cleanup needed
	Result()
}

// Observable is implemented by optimizers that report their own iterations
// to an Observer, so the observer sees the model before it is refined.
type Observable interface {
	SetObserver(Observer)
}

// GlobalWrapper is a convenience wrapper around a global optimizer that
// allows more fine-grained control over optimization progress. See
// OptimizeGlobal for example usage
type GlobalWrapper struct {
	optimizer GlobalOptimizer
	helper    *Helper
}

func NewGlobalWrapper(optimizer GlobalOptimizer) *GlobalWrapper {
	return &GlobalWrapper{
		optimizer: optimizer,
		helper:    NewHelper(),
	}
}

func (g *GlobalWrapper) Init(settings *Settings, fun Objective, lower, upper float64) error {
	if err := checkInterval(lower, upper); err != nil {
		return err
	}
	// an observer set on the optimizer itself is kept unless settings name one
	if o, ok := g.optimizer.(Observable); ok && settings.Observer != nil {
		o.SetObserver(settings.Observer)
	}
	loc, obj, nFunEvals, err := g.optimizer.Init(fun, lower, upper)
	if err != nil {
		return err
	}
	return g.helper.Init(settings, fun, loc, obj, nFunEvals)
}

func (g *GlobalWrapper) Status() common.Status {
	return common.CheckStatus(g.optimizer, g.helper)
}

func (g *GlobalWrapper) Iterate() (Iteration, error) {
	it, nFunEvals, err := g.optimizer.Iterate()
	if err != nil {
		return it, fmt.Errorf("error iterating optimizer: %w", err)
	}
	if err := g.helper.Iterate(it, nFunEvals); err != nil {
		return it, fmt.Errorf("error writing display: %w", err)
	}
	return it, nil
}

func (g *GlobalWrapper) Result(status common.Status) *Result {
	g.optimizer.Result()
	return g.helper.Result(status, g.optimizer.Points())
}

// OptimizeGlobal searches [lower, upper] for the global minimum of f.
//
// If a limit in settings stops the search first, the partial Result is
// returned along with an error wrapping ErrNonConvergence.
func OptimizeGlobal(f Objective, lower, upper float64, settings *Settings, optimizer GlobalOptimizer) (*Result, error) {
	if optimizer == nil {
		panic("no optimizer provided")
	}
	if f == nil {
		return nil, errors.New("univariate: objective function is nil")
	}
	if settings == nil {
		settings = DefaultSettings()
	}

	wrapper := NewGlobalWrapper(optimizer)

	err := wrapper.Init(settings, f, lower, upper)
	if err != nil {
		return nil, fmt.Errorf("error initializing: %w", err)
	}

	var status common.Status
	for {
		// Check if it has converged
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		_, err := wrapper.Iterate()
		if err != nil {
			status = common.OptimizerError
			if errors.Is(err, ErrUndefinedObjective) {
				status = common.UserFunctionError
			}
			return wrapper.Result(status), err
		}
	}
	result := wrapper.Result(status)
	if status.Failed() {
		return result, fmt.Errorf("%w: %v after %d iterations", ErrNonConvergence, status, result.Iterations)
	}
	return result, nil
}

func checkInterval(lower, upper float64) error {
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		return fmt.Errorf("%w: [%v, %v] is not finite", ErrInvalidInterval, lower, upper)
	}
	if lower >= upper {
		return fmt.Errorf("%w: lower bound %v is not below upper bound %v", ErrInvalidInterval, lower, upper)
	}
	return nil
}
