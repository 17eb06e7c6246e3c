// SPDX-License-Identifier: EPL-2.0

// Package waveforms is a single-channel periodic signal generator.
//
// The heart of the module is the oscillator subpackage: a phase-accumulator
// oscillator producing one sample per call, with sine, square, triangle,
// sawtooth and noise shapes, configurable amplitude, DC offset and phase
// offset. Everything else in the module consumes those samples.
//
// # Quick Start
//
//	osc, err := oscillator.New(44100, 440)
//	if err != nil {
//	    // sample rate was not a finite positive number
//	}
//	osc.SetWaveformType(oscillator.Square)
//
//	sample := osc.Process()
//
// # Rendering
//
// Render collects samples straight from an oscillator:
//
//	pcm16 := waveforms.Render(osc, 44100) // one second
//
// RenderMono16 drains any finite mono audio.Source:
//
//	src := audio.NewOscillatorSource(osc, 44100)
//	pcm16, rate, err := waveforms.RenderMono16(src, 4096)
//
// # Writing Files
//
// The formats subpackages encode rendered samples:
//
//	file, _ := os.Create("tone.wav")
//	err := wav.WriteWAV16(file, 44100, pcm16)
//
// WAV is provided by formats/wav and AIFF by formats/aiff, both built on the
// github.com/go-audio libraries.
//
// # Playback
//
// audio.PCM16Reader turns a Source into the byte stream expected by sound
// card libraries; see examples/play.
//
// See the individual subpackages for more detailed documentation.
package waveforms
