// Package source defines the contract between rest-frame spectral
// time-series models and the host framework that drives them: a fixed,
// ordered list of named scalar parameters plus flux evaluation on a
// (phase × wavelength) query grid. It also provides the template grid
// carrier models are built from and an explicit registry for named,
// versioned model loaders.
package source

import (
	"errors"
)

// Errors returned by the parameter protocol.
var (
	ErrUnknownParam = errors.New("source: unknown parameter")
	ErrParamCount   = errors.New("source: wrong number of parameter values")
)

// Grid is a rectangular spectral time-series template: flux sampled on the
// outer product of a phase axis and a wavelength axis.
//
// Phase is in days relative to peak brightness and Wave in angstroms; both
// must be strictly increasing with at least four points for the models in
// this module, and Flux must hold len(Phase) rows of len(Wave) values.
// Validation happens when a model interpolates the grid, not here.
type Grid struct {
	Phase []float64
	Wave  []float64
	Flux  [][]float64
}

// Source is a parameterized rest-frame spectral flux model.
//
// A host framework discovers the parameters via ParamNames, reads and writes
// them by name or by ordered slice, and calls Flux to evaluate the model.
// Implementations do not validate parameter values: physically meaningless
// settings are accepted and produce whatever the model formulas yield.
//
// A Source instance is owned by a single logical caller. Mutating parameters
// concurrently with Flux is a race; callers needing concurrent evaluation
// must synchronize externally or use one instance per goroutine.
type Source interface {
	Name() string
	Version() string

	// ParamNames returns the model's parameters in their fixed order.
	ParamNames() []string
	// Parameters returns a copy of the current values in ParamNames order.
	Parameters() []float64
	// SetParameters replaces all values in ParamNames order. It returns
	// ErrParamCount if the slice length does not match ParamNames.
	SetParameters(values []float64) error
	// Param returns the named parameter value or ErrUnknownParam.
	Param(name string) (float64, error)
	// SetParam sets the named parameter value or returns ErrUnknownParam.
	SetParam(name string, value float64) error

	// Flux evaluates rest-frame spectral flux on the outer product of the
	// phase and wavelength vectors, returning one row per phase. Either
	// vector may be empty, yielding a degenerate result.
	Flux(phases, waves []float64) [][]float64
}

// TemplateProvider supplies a template grid at model construction time.
type TemplateProvider interface {
	Template() (Grid, error)
}

// TemplateFunc adapts a function to a TemplateProvider.
type TemplateFunc func() (Grid, error)

// Template calls f.
func (f TemplateFunc) Template() (Grid, error) { return f() }
