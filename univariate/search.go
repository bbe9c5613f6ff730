package univariate

import (
	"errors"

	"github.com/Grenka054/Optimization-Methods/write"
)

// Search looks for the global minimum of a Lipschitz continuous objective
// on a fixed interval with the broken-line method.
//
// A Search is not safe for concurrent use.
type Search struct {
	// Settings used by FindMin. DefaultSettings is used if nil.
	Settings *Settings

	f            Objective
	lower, upper float64

	last *BrokenLine
}

// NewSearch returns a Search of f over [lower, upper]. It does not evaluate f.
func NewSearch(f Objective, lower, upper float64) (*Search, error) {
	if f == nil {
		return nil, errors.New("univariate: objective function is nil")
	}
	if err := checkInterval(lower, upper); err != nil {
		return nil, err
	}
	return &Search{f: f, lower: lower, upper: upper}, nil
}

// Interval returns the bounds of the search
func (s *Search) Interval() (lower, upper float64) {
	return s.lower, s.upper
}

// FindMin runs the broken-line method with precision sigma and Lipschitz
// constant lipschitz. The caller is responsible for lipschitz being a valid
// Lipschitz constant of the objective; a smaller value can end in a local
// minimum.
//
// With debug set, Settings.Observer receives every iteration and, unless
// display writers are configured, the iteration table is printed to stdout.
func (s *Search) FindMin(sigma, lipschitz float64, debug bool) (*Result, error) {
	settings := s.Settings
	if settings == nil {
		settings = DefaultSettings()
	}
	settings = settings.clone()
	if debug {
		if settings.WriteSettings == nil || len(settings.DisplayWriters) == 0 {
			settings.WriteSettings = write.DebugWriteSettings()
		}
	} else {
		settings.Observer = nil
	}

	optimizer := NewBrokenLine(lipschitz, sigma)
	result, err := OptimizeGlobal(s.f, s.lower, s.upper, settings, optimizer)
	if result != nil {
		s.last = optimizer
	}
	return result, err
}

// Points returns the support points of the last FindMin sorted by location,
// or nil if FindMin has not produced a result.
func (s *Search) Points() []SupportPoint {
	if s.last == nil {
		return nil
	}
	return s.last.Points()
}
