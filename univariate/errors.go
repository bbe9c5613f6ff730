package univariate

import "errors"

var (
	// ErrInvalidInterval is returned when the lower bound is not strictly
	// below the upper bound, or either bound is not finite.
	ErrInvalidInterval = errors.New("univariate: invalid interval")

	// ErrInvalidPrecision is returned for a precision that is not strictly positive.
	ErrInvalidPrecision = errors.New("univariate: precision must be positive")

	// ErrInvalidLipschitz is returned for a Lipschitz constant that is not
	// strictly positive and finite.
	ErrInvalidLipschitz = errors.New("univariate: Lipschitz constant must be positive and finite")

	// ErrNonConvergence is returned together with a partial Result when an
	// iteration, evaluation or runtime limit stops the search.
	ErrNonConvergence = errors.New("univariate: search did not converge")

	// ErrUndefinedObjective is returned when the objective evaluates to NaN.
	ErrUndefinedObjective = errors.New("univariate: objective is NaN")
)
