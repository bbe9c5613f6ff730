// Package functions provides one-dimensional test problems for global
// optimizers, each with a valid Lipschitz constant on its interval and a
// known global minimum.
package functions

import (
	"math"
	"sort"
)

// Cubic implements f(x) = 0.1(x^3 - x) + 1.
//
// On [-1, 1] |f'(x)| = 0.1|3x^2 - 1| <= 0.2 and the global minimum is at
// x = 1/sqrt(3).
type Cubic struct{}

func (Cubic) Obj(x float64) float64 {
	return 0.1*(x*x*x-x) + 1
}

// SineSum implements f(x) = sin(x) + sin(10x/3).
//
// |f'(x)| <= 1 + 10/3 everywhere. On [2.7, 7.5] the global minimum is at
// x ≈ 5.145735 with f ≈ -1.899599.
//
// References:
//   - Hansen, P., Jaumard, B., Lu, S.: Global optimization of univariate
//     Lipschitz functions: II. New algorithms and computational comparison.
//     Math Program 55 (1992), 273-292
type SineSum struct{}

func (SineSum) Obj(x float64) float64 {
	return math.Sin(x) + math.Sin(10*x/3)
}

// Shubert implements f(x) = -sum_{k=1}^{5} k sin((k+1)x + k).
//
// |f'(x)| <= sum k(k+1) = 70. On [-10, 10] the function has three global
// minima; the one reported by Problem is at x ≈ 5.791785 with
// f ≈ -12.031249.
type Shubert struct{}

func (Shubert) Obj(x float64) float64 {
	var sum float64
	for k := 1.0; k <= 5; k++ {
		sum -= k * math.Sin((k+1)*x+k)
	}
	return sum
}

// Vee implements f(x) = |x - Center|, with Lipschitz constant 1.
type Vee struct {
	Center float64
}

func (v Vee) Obj(x float64) float64 {
	return math.Abs(x - v.Center)
}

// Ramp implements f(x) = Slope*x, whose minimum over an interval lies at
// an endpoint.
type Ramp struct {
	Slope float64
}

func (r Ramp) Obj(x float64) float64 {
	return r.Slope * x
}

// Function is a one-dimensional objective. It has the method set of
// univariate.Objective; it is declared here because univariate imports
// this package in its tests.
type Function interface {
	Obj(x float64) float64
}

// Problem is a test function on an interval with a valid Lipschitz
// constant and a known global minimum.
type Problem struct {
	Name string
	Function
	Lower, Upper float64
	Lipschitz    float64
	OptLoc       float64
	OptVal       float64
}

var catalog = map[string]Problem{
	"cubic": {
		Name:      "cubic",
		Function:  Cubic{},
		Lower:     -1,
		Upper:     1,
		Lipschitz: 0.2,
		OptLoc:    1 / math.Sqrt(3),
		OptVal:    1 - 0.2/(3*math.Sqrt(3)),
	},
	"sinesum": {
		Name:      "sinesum",
		Function:  SineSum{},
		Lower:     2.7,
		Upper:     7.5,
		Lipschitz: 1 + 10.0/3,
		OptLoc:    5.145735,
		OptVal:    -1.899599,
	},
	"shubert": {
		Name:      "shubert",
		Function:  Shubert{},
		Lower:     -10,
		Upper:     10,
		Lipschitz: 70,
		OptLoc:    5.791785,
		OptVal:    -12.031249,
	},
	"vee": {
		Name:      "vee",
		Function:  Vee{Center: 0.3},
		Lower:     -1,
		Upper:     1,
		Lipschitz: 1,
		OptLoc:    0.3,
		OptVal:    0,
	},
	"ramp": {
		Name:      "ramp",
		Function:  Ramp{Slope: 2},
		Lower:     0,
		Upper:     1,
		Lipschitz: 2,
		OptLoc:    0,
		OptVal:    0,
	},
}

// Lookup returns the catalog problem with the given name
func Lookup(name string) (Problem, bool) {
	p, ok := catalog[name]
	return p, ok
}

// Catalog returns all problems sorted by name
func Catalog() []Problem {
	ps := make([]Problem, 0, len(catalog))
	for _, p := range catalog {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })
	return ps
}
