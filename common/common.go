package common

import (
	"time"

	"github.com/Grenka054/Optimization-Methods/write"
)

type Initer interface {
	Init()
}

type Resulter interface {
	Result()
}

// ObjectiveWrapper forwards the optional hooks of an objective function.
//
// If the function is an Initer it will be called once at the start of a run,
// if it is a Statuser it can stop the run early, and if it is a Resulter it
// is called when the run finishes.
type ObjectiveWrapper struct {
	fun interface{}
}

func (o *ObjectiveWrapper) Init(objectiveFunction interface{}) {
	o.fun = objectiveFunction

	initer, ok := objectiveFunction.(Initer)
	if ok {
		initer.Init()
	}
}

func (o *ObjectiveWrapper) Status() Status {
	statuser, isStatuser := o.fun.(Statuser)
	if isStatuser {
		return statuser.Status()
	}
	return Continue
}

func (o *ObjectiveWrapper) Result() {
	resulter, ok := o.fun.(Resulter)
	if ok {
		resulter.Result()
	}
}

func (o *ObjectiveWrapper) AppendWriteData(v []*write.Value) []*write.Value {
	dataWriter, ok := o.fun.(write.DataAdder)
	if ok {
		return dataWriter.AppendWriteData(v)
	}
	return v
}

// CommonSettings is a set of options available to all optimizers
type CommonSettings struct {
	MaximumIterations          int           // Sets the maximum number of major iterations that can occur
	MaximumFunctionEvaluations int           // Sets the maximum number of function evaluations that can occur
	MaximumRuntime             time.Duration // Sets the maximum runtime that can elapse
	*write.WriteSettings
}

// DefaultCommonSettings returns the default settings for the common structure
func DefaultCommonSettings() *CommonSettings {
	return &CommonSettings{
		MaximumIterations:          -1, // Defaults to no maximum iterations
		MaximumFunctionEvaluations: -1, // Defaults to no maximum function evaluations
		MaximumRuntime:             -1, // Defaults to no maximum runtime
		WriteSettings:              write.DefaultWriteSettings(),
	}
}

// CommonResult is a list of results from the common structure
type CommonResult struct {
	Iterations          int           // Total number of iterations taken by the optimizer
	FunctionEvaluations int           // Total number of function evaluations taken by the optimizer
	Runtime             time.Duration // Total runtime elapsed during the optimization
	Status              Status        // How did the optimizer end
}

// Common provides routines for controlling the settings provided by common.
type Common struct {
	iter      int
	funEvals  int
	startTime time.Time

	settings *CommonSettings

	*write.Display
	*ObjectiveWrapper
}

// NewCommon creates a new Common structure, and adds itself to the display
func NewCommon() *Common {
	c := &Common{
		Display:          write.NewDisplay(),
		ObjectiveWrapper: &ObjectiveWrapper{},
	}
	c.AddDataAdder(c, c.ObjectiveWrapper)
	return c
}

// Init initializes all of the values in common at the start of the optimization.
// nFunEvals is the number of function evaluations spent before the first iteration.
func (c *Common) Init(settings *CommonSettings, objectiveFunction interface{}, nFunEvals int) error {
	c.iter = 0
	c.funEvals = nFunEvals
	c.startTime = time.Now()

	c.settings = settings

	c.ObjectiveWrapper.Init(objectiveFunction)
	return c.Display.Init(c.settings.WriteSettings)
}

// AppendWriteData adds the components of common to the display structure
func (c *Common) AppendWriteData(d []*write.Value) []*write.Value {
	d = append(d, &write.Value{Heading: "Iter", Value: c.iter})
	d = append(d, &write.Value{Heading: "FnEval", Value: c.funEvals})
	return d
}

// Status checks if any of the data controlled by common has converged (runtime, funevals, etc.)
func (c *Common) Status() Status {
	status := c.ObjectiveWrapper.Status()
	if status != Continue {
		return status
	}

	if c.settings.MaximumIterations > -1 && c.iter >= c.settings.MaximumIterations {
		return MaximumIterations
	}
	if c.settings.MaximumFunctionEvaluations > -1 && c.funEvals >= c.settings.MaximumFunctionEvaluations {
		return MaximumFunctionEvaluations
	}
	if c.settings.MaximumRuntime > -1 && time.Since(c.startTime) > c.settings.MaximumRuntime {
		return MaximumRuntime
	}
	return Continue
}

// Result returns the results from the common structure
func (c *Common) Result(status Status) *CommonResult {
	c.ObjectiveWrapper.Result()
	return &CommonResult{
		Iterations:          c.iter,
		FunctionEvaluations: c.funEvals,
		Runtime:             time.Since(c.startTime),
		Status:              status,
	}
}

// Iterate performs an iteration of the common structure, incrementing
// the iteration, appending the number of function evaluations, and
// writing to the writers
func (c *Common) Iterate(nFunEvals int) error {
	c.iter++
	c.funEvals += nFunEvals
	return c.Display.Iterate()
}
