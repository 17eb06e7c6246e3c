// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/ik5/waveforms/oscillator"
)

// OscillatorSource exposes an oscillator as a mono Source. Each sample read
// is one call to Process.
type OscillatorSource struct {
	osc       *oscillator.Oscillator
	remaining int // samples left; negative means endless
}

// NewOscillatorSource creates a Source producing frames samples from osc.
// A negative frames value makes the source endless. Use FramesFor to turn a
// user supplied duration into a bounded frame count.
func NewOscillatorSource(osc *oscillator.Oscillator, frames int) *OscillatorSource {
	return &OscillatorSource{
		osc:       osc,
		remaining: frames,
	}
}

// FramesFor returns the number of samples covering d at sampleRate, rounded
// to the nearest sample. It never returns a negative count, so the result
// always yields a bounded source.
func FramesFor(d time.Duration, sampleRate int) (int, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	frames := int(math.Round(d.Seconds() * float64(sampleRate)))
	if frames < 1 {
		return 0, fmt.Errorf("%w: %s at %d Hz", ErrInvalidDuration, d, sampleRate)
	}

	return frames, nil
}

// SampleRate reports the oscillator rate rounded to the nearest integer, as
// file encoders expect. Oscillators slower than 0.5 Hz report 0, which the
// encoders reject.
func (s *OscillatorSource) SampleRate() int { return int(math.Round(s.osc.SampleRate())) }

func (s *OscillatorSource) Channels() int { return 1 }
func (s *OscillatorSource) BufSize() int  { return DefaultBufSize }
func (s *OscillatorSource) Close() error  { return nil }

// Oscillator returns the wrapped oscillator so callers can retune it while
// streaming.
func (s *OscillatorSource) Oscillator() *oscillator.Oscillator { return s.osc }

// Remaining reports how many samples are left, or -1 for an endless source.
func (s *OscillatorSource) Remaining() int {
	if s.remaining < 0 {
		return -1
	}

	return s.remaining
}

// ReadSamples fills dst with up to len(dst) samples. The final chunk is
// returned together with io.EOF.
func (s *OscillatorSource) ReadSamples(dst []float32) (int, error) {
	if s.remaining == 0 {
		return 0, io.EOF
	}

	n := len(dst)
	if s.remaining > 0 && n > s.remaining {
		n = s.remaining
	}

	for i := range n {
		dst[i] = float32(s.osc.Process())
	}

	if s.remaining > 0 {
		s.remaining -= n
		if s.remaining == 0 {
			return n, io.EOF
		}
	}

	return n, nil
}
