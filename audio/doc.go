// SPDX-License-Identifier: EPL-2.0

// Package audio connects oscillators to the outside world.
//
// It provides:
//   - the Source interface for pull-based sample streams
//   - OscillatorSource, a mono Source backed by an oscillator
//   - PCM16Reader, an io.Reader producing 16-bit little-endian PCM
//   - a Registry of file encoders keyed by format
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Oscillator Sources
//
// The oscillator itself produces one sample per call. OscillatorSource does
// the buffering on its behalf:
//
//	osc, _ := oscillator.New(48000, 440)
//	src := audio.NewOscillatorSource(osc, 48000) // one second
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Playback
//
// Sound card libraries such as oto consume an io.Reader of PCM bytes:
//
//	player := ctx.NewPlayer(audio.NewPCM16Reader(src))
//
// # Encoder Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Encoder{})
//	enc, err := registry.Lookup(".wav")
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]. Oscillators with an
// amplitude or DC offset that leaves this range are clamped when converted
// to PCM.
//
// # Error Handling
//
// Sources return io.EOF together with, or after, the last samples.
package audio
