package dm15

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/wfirst-sn/wfirst-phot-sim/interp"
	"github.com/wfirst-sn/wfirst-phot-sim/source"
)

// Default parameter values in ParamNames order.
const (
	DefaultAmplitude = 1.0
	DefaultDM15      = 1.1
)

// calibrationDM15 is the decline rate the base template was calibrated at;
// the spectral correction vanishes there.
const calibrationDM15 = 1.1

// corrCutoffWave is the wavelength in angstroms above which the
// color-decline correction is switched off.
const corrCutoffWave = 12000.0

var (
	paramNames  = []string{"amplitude", "dm15"}
	paramLabels = []string{"A", "Δm15"}
)

// Model is a rest-frame Type Ia supernova spectral flux model parameterized
// by an amplitude scale and the decline rate Δm15 (the magnitude drop in the
// first 15 days after peak, typically 0.7–1.9).
//
// The template surface is built once at construction and is immutable; the
// two parameters are plain mutable state read on every evaluation. A caller
// that mutates parameters concurrently with Flux owns the synchronization.
type Model struct {
	name    string
	version string

	amplitude float64
	dm15      float64

	surface            *interp.Bicubic
	minPhase, maxPhase float64
	minWave, maxWave   float64
}

var _ source.Source = (*Model)(nil)

// New builds a Model from a rectangular template grid: phase in days
// relative to peak (strictly increasing, at least four points), wave in
// angstroms (same constraints), and flux values of shape
// len(phase)×len(wave). Construction fails with interp.ErrInvalidGrid if the
// grid violates these preconditions.
//
// Parameters start at their defaults: amplitude 1.0, dm15 1.1.
func New(phase, wave []float64, flux [][]float64, opts ...Option) (*Model, error) {
	cfg := ApplyOptions(opts...)

	surface, err := interp.NewBicubic(phase, wave, flux)
	if err != nil {
		return nil, err
	}

	return &Model{
		name:      cfg.Name,
		version:   cfg.Version,
		amplitude: DefaultAmplitude,
		dm15:      DefaultDM15,
		surface:   surface,
		minPhase:  phase[0],
		maxPhase:  phase[len(phase)-1],
		minWave:   wave[0],
		maxWave:   wave[len(wave)-1],
	}, nil
}

// Loader wraps a template provider into a registry loader. The returned
// loader fetches the template grid and builds a Model from it, so the host
// can construct the model by name:
//
//	reg.Register("dm15", "1.0", dm15.Loader(provider))
func Loader(p source.TemplateProvider, opts ...Option) source.Loader {
	return func() (source.Source, error) {
		g, err := p.Template()
		if err != nil {
			return nil, fmt.Errorf("dm15: template: %w", err)
		}

		return New(g.Phase, g.Wave, g.Flux, opts...)
	}
}

// Tau is the effective light-curve width in days for the given decline rate
// (Sako et al. 2008, equation C4). The template's time axis is stretched by
// Tau(dm15)/15 during evaluation.
func Tau(dm15 float64) float64 {
	return 3.455 + 13.719*dm15 - 3.601*dm15*dm15 + 0.946*dm15*dm15*dm15
}

// Name returns the registered model name.
func (m *Model) Name() string { return m.name }

// Version returns the registered model version.
func (m *Model) Version() string { return m.version }

// ParamNames returns the fixed parameter order: amplitude, dm15.
func (m *Model) ParamNames() []string { return append([]string(nil), paramNames...) }

// ParamLabels returns human-readable labels matching ParamNames.
func (m *Model) ParamLabels() []string { return append([]string(nil), paramLabels...) }

// Parameters returns a copy of the current (amplitude, dm15) values.
func (m *Model) Parameters() []float64 { return []float64{m.amplitude, m.dm15} }

// SetParameters replaces both parameter values in ParamNames order. Values
// are not validated; see SetParam.
func (m *Model) SetParameters(values []float64) error {
	if len(values) != len(paramNames) {
		return fmt.Errorf("%w: got %d, want %d", source.ErrParamCount, len(values), len(paramNames))
	}

	m.amplitude = values[0]
	m.dm15 = values[1]

	return nil
}

// Param returns the named parameter value.
func (m *Model) Param(name string) (float64, error) {
	switch name {
	case "amplitude":
		return m.amplitude, nil
	case "dm15":
		return m.dm15, nil
	}

	return 0, fmt.Errorf("%w: %q", source.ErrUnknownParam, name)
}

// SetParam sets the named parameter. Values are not validated: a negative
// amplitude or a dm15 far outside the calibrated range is accepted and
// produces whatever the model formulas yield.
func (m *Model) SetParam(name string, value float64) error {
	switch name {
	case "amplitude":
		m.amplitude = value
	case "dm15":
		m.dm15 = value
	default:
		return fmt.Errorf("%w: %q", source.ErrUnknownParam, name)
	}

	return nil
}

// PhaseRange returns the template's phase coverage in days. Stretched query
// phases outside this range extrapolate the surface.
func (m *Model) PhaseRange() (min, max float64) { return m.minPhase, m.maxPhase }

// WaveRange returns the template's wavelength coverage in angstroms.
func (m *Model) WaveRange() (min, max float64) { return m.minWave, m.maxWave }

// Flux evaluates rest-frame spectral flux on the outer product of phases
// (days relative to peak) and waves (angstroms), returning one row per
// phase. Either vector may be empty, yielding a degenerate result.
//
// Parameter values are snapshotted on entry, so a concurrent SetParam cannot
// tear a single evaluation.
func (m *Model) Flux(phases, waves []float64) [][]float64 {
	amplitude, dm15 := m.amplitude, m.dm15

	// One canonical template approximates faster and slower decliners by
	// stretching its time axis.
	stretch := Tau(dm15) / 15
	basePhases := make([]float64, len(phases))
	for i, p := range phases {
		basePhases[i] = p * stretch
	}

	flux := m.surface.EvalGrid(basePhases, waves)

	// The amplitude is folded into the per-wavelength correction, so each
	// row takes a single block multiply.
	corr := correction(waves, dm15)
	for j := range corr {
		corr[j] *= amplitude
	}

	for _, row := range flux {
		vecmath.MulBlockInPlace(row, corr)
	}

	return flux
}

// At evaluates flux at a single (phase, wave) point.
func (m *Model) At(phase, wave float64) float64 {
	return m.Flux([]float64{phase}, []float64{wave})[0][0]
}

// correction computes the per-wavelength correction f1 = 10^(-0.4·(a+b·x)·x)
// with x = dm15 - 1.1. Below the 12000 Å cutoff a = 1.248 - 1.045e-4·wave
// and b = 0.633; at and above it both coefficients are zero and the factor
// is exactly 1.
func correction(waves []float64, dm15 float64) []float64 {
	x := dm15 - calibrationDM15

	corr := make([]float64, len(waves))
	for j, w := range waves {
		if w >= corrCutoffWave {
			corr[j] = 1
			continue
		}

		a := 1.248 - 1.045e-4*w
		b := 0.633
		corr[j] = math.Pow(10, -0.4*(a+b*x)*x)
	}

	return corr
}
