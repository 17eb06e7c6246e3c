// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file encoding and decoding.
//
// This package writes and reads WAV files in PCM 16-bit format.
// It uses the github.com/go-audio/wav library for the RIFF container.
//
// # Writing WAV Files
//
// Use WriteWAV16 to store rendered oscillator output:
//
//	osc, _ := oscillator.New(44100, 440)
//	samples := waveforms.Render(osc, 44100)
//
//	file, _ := os.Create("tone.wav")
//	defer file.Close()
//	err := wav.WriteWAV16(file, 44100, samples)
//
// The writer must implement io.WriteSeeker: the RIFF and data chunk sizes
// are patched after the samples are written. Encoder wraps WriteWAV16 for
// use with audio.Registry.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("tone.wav")
//	source, err := decoder.Decode(file)
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0].
//
// # Error Handling
//
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: Only 16-bit PCM is supported
//   - ErrInvalidSampleRate: WriteWAV16 was given a non-positive rate
package wav
