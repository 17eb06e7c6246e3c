// SPDX-License-Identifier: EPL-2.0

// Package oscillator implements a single-channel phase-accumulator signal
// generator.
//
// An Oscillator produces one sample per call to Process. The phase
// accumulator advances by frequency·2π/sampleRate radians per call and is
// kept in [0, 2π).
//
// # Waveforms
//
//   - Sine: sin(φ)
//   - Square: +1 for φ < π, -1 otherwise
//   - Triangle: -1 at φ = 0, +1 at φ = π, back towards -1 at 2π
//   - Sawtooth: linear ramp from -1 at φ = 0 towards +1
//   - Noise: uniform random value in [-1, 1), independent of phase
//
// Every sample is scaled by the amplitude and shifted by the DC offset:
//
//	out = dcOffset + shape(φ)*amplitude
//
// # Parameters
//
// Frequencies are clamped into [0, sampleRate/2]. Amplitude and DC offset are
// stored verbatim. The phase offset is reduced into (-2π, 2π] and added to the
// accumulator before shaping, so it shifts the waveform without touching the
// accumulator itself.
//
// # Quick Start
//
//	osc, err := oscillator.New(48000, 1000)
//	if err != nil {
//	    // sample rate was not a finite positive number
//	}
//	osc.SetWaveformType(oscillator.Triangle)
//	osc.SetAmplitude(0.5)
//
//	for range 480 {
//	    sample := osc.Process()
//	    _ = sample
//	}
//
// # Noise
//
// Each Oscillator owns its own PCG generator. It is seeded from the clock on
// construction; use WithSeed or Seed to get reproducible noise.
//
// # Concurrency
//
// An Oscillator is not safe for concurrent use.
package oscillator
