// SPDX-License-Identifier: EPL-2.0

package oscillator

// Option adjusts an Oscillator during construction. Options run after the
// defaults are set and after the initial frequency is applied.
type Option func(*Oscillator)

// WithSeed seeds the noise generator with a fixed value instead of the clock.
func WithSeed(seed uint64) Option {
	return func(o *Oscillator) {
		o.Seed(seed)
	}
}

func WithAmplitude(amplitude float64) Option {
	return func(o *Oscillator) {
		o.SetAmplitude(amplitude)
	}
}

func WithDCOffset(offset float64) Option {
	return func(o *Oscillator) {
		o.SetDCOffset(offset)
	}
}

func WithPhaseOffset(offset float64) Option {
	return func(o *Oscillator) {
		o.SetPhaseOffset(offset)
	}
}

// WithWaveformType sets the initial waveform. Undefined types are ignored.
func WithWaveformType(t WaveformType) Option {
	return func(o *Oscillator) {
		if t.Valid() {
			o.SetWaveformType(t)
		}
	}
}
