// SPDX-License-Identifier: EPL-2.0

package oscillator

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

const (
	twoPi = 2 * math.Pi

	DefaultSampleRate = 44100.0
	DefaultFrequency  = 440.0

	// fallbackSeed is used when the clock cannot provide a usable seed.
	fallbackSeed uint64 = 0
	// pcgStream decorrelates the second PCG word from the seed.
	pcgStream uint64 = 0x9e3779b97f4a7c15
)

// Oscillator is a single-channel phase-accumulator signal generator.
//
// Every method mutates or reads unsynchronised state; callers sharing an
// Oscillator between goroutines must provide their own locking.
type Oscillator struct {
	sampleRate     float64
	frequency      float64
	amplitude      float64
	phase          float64
	phaseIncrement float64
	phaseOffset    float64
	dcOffset       float64
	waveformType   WaveformType

	src *rand.PCG
	rng *rand.Rand
}

// New creates a sine oscillator with amplitude 1 and no offsets, then applies
// frequency through SetFrequency. The noise generator is seeded from the clock
// unless WithSeed is given.
func New(sampleRate, frequency float64, opts ...Option) (*Oscillator, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	seed := clockSeed()
	src := rand.NewPCG(seed, seed^pcgStream)

	o := &Oscillator{
		sampleRate:   sampleRate,
		amplitude:    1.0,
		waveformType: Sine,
		src:          src,
		rng:          rand.New(src),
	}
	o.SetFrequency(frequency)

	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o, nil
}

// NewWithType is New followed by SetWaveformType(t).
func NewWithType(sampleRate, frequency float64, t WaveformType, opts ...Option) (*Oscillator, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWaveformType, int(t))
	}

	o, err := New(sampleRate, frequency, opts...)
	if err != nil {
		return nil, err
	}
	o.SetWaveformType(t)

	return o, nil
}

// Default returns a 440 Hz sine oscillator running at 44.1 kHz.
func Default() *Oscillator {
	o, err := New(DefaultSampleRate, DefaultFrequency)
	if err != nil {
		// unreachable: the default sample rate is valid
		panic(err)
	}

	return o
}

func clockSeed() uint64 {
	now := time.Now()
	if now.IsZero() || now.UnixNano() <= 0 {
		return fallbackSeed
	}

	return uint64(now.UnixNano())
}

// Seed resets the noise generator to a reproducible state.
func (o *Oscillator) Seed(seed uint64) {
	o.src.Seed(seed, seed^pcgStream)
}

func (o *Oscillator) SampleRate() float64 { return o.sampleRate }

// SetFrequency clamps f into [0, SampleRate/2] and recomputes the phase
// increment. NaN is treated as 0.
func (o *Oscillator) SetFrequency(f float64) {
	nyquist := o.sampleRate / 2

	switch {
	case math.IsNaN(f) || f < 0:
		o.frequency = 0
	case f > nyquist:
		o.frequency = nyquist
	default:
		o.frequency = f
	}

	o.phaseIncrement = o.frequency * twoPi / o.sampleRate
}

func (o *Oscillator) Frequency() float64 { return o.frequency }

func (o *Oscillator) SetAmplitude(a float64) { o.amplitude = a }
func (o *Oscillator) Amplitude() float64     { return o.amplitude }

func (o *Oscillator) SetDCOffset(d float64) { o.dcOffset = d }
func (o *Oscillator) DCOffset() float64     { return o.dcOffset }

// SetPhaseOffset stores p in radians. Values beyond ±2π are reduced modulo
// 2π, keeping their sign. NaN and ±Inf reset the offset to 0.
func (o *Oscillator) SetPhaseOffset(p float64) {
	switch {
	case math.IsNaN(p) || math.IsInf(p, 0):
		o.phaseOffset = 0
	case p > twoPi:
		o.phaseOffset = math.Mod(p, twoPi)
	case p < -twoPi:
		o.phaseOffset = -math.Mod(-p, twoPi)
	default:
		o.phaseOffset = p
	}
}

func (o *Oscillator) PhaseOffset() float64 { return o.phaseOffset }

// SetWaveformType switches the shape used by the next Process call.
// Undefined types are ignored.
func (o *Oscillator) SetWaveformType(t WaveformType) {
	if t.Valid() {
		o.waveformType = t
	}
}

func (o *Oscillator) WaveformType() WaveformType { return o.waveformType }

// WaveformName returns the human readable name of the current waveform.
func (o *Oscillator) WaveformName() string { return o.waveformType.String() }

// Phase returns the accumulator position in radians, always in [0, 2π).
func (o *Oscillator) Phase() float64 { return o.phase }

// Reset rewinds the phase accumulator to 0. No other state is touched.
func (o *Oscillator) Reset() { o.phase = 0 }

// Process returns the sample for the current phase and then advances the
// phase by one increment.
func (o *Oscillator) Process() float64 {
	phi := o.phase
	if o.phaseOffset != 0 {
		phi = wrapPhase(phi + o.phaseOffset)
	}

	var s float64

	switch o.waveformType {
	case Sine:
		s = math.Sin(phi)
	case Square:
		if phi < math.Pi {
			s = 1
		} else {
			s = -1
		}
	case Triangle:
		if phi < math.Pi {
			s = -1 + 2*phi/math.Pi
		} else {
			s = 3 - 2*phi/math.Pi
		}
	case Sawtooth:
		s = -1 + 2*phi/twoPi
	case Noise:
		s = 2*o.rng.Float64() - 1
	}

	o.phase = math.Mod(o.phase+o.phaseIncrement, twoPi)

	return o.dcOffset + s*o.amplitude
}

// wrapPhase maps any finite angle into [0, 2π).
func wrapPhase(phi float64) float64 {
	phi = math.Mod(phi, twoPi)
	if phi < 0 {
		phi += twoPi
	}
	if phi >= twoPi {
		phi = 0
	}

	return phi
}
