// Package dm15 implements the Sako et al. (2008) one-parameter spectral
// time-series model for Type Ia supernovae.
//
// Rest-frame flux is
//
//	F(t, λ) = A · f0(t · τ(Δm15)/15, λ) · f1(λ, Δm15)
//
// where f0 is a bicubic interpolation of a base spectral template, τ is the
// effective light-curve width polynomial (equation C4), and f1 is a
// wavelength-dependent correction that vanishes at the calibration point
// Δm15 = 1.1 and above 12000 Å.
//
// # Usage
//
// Build a model directly from a template grid:
//
//	model, err := dm15.New(phase, wave, flux)
//	model.SetParam("dm15", 0.9)
//	out := model.Flux([]float64{-5, 0, 5}, []float64{4000, 5000})
//
// or register a loader so a host framework can construct it by name:
//
//	reg := source.NewRegistry()
//	reg.Register("dm15", "1.0", dm15.Loader(templateProvider))
package dm15
