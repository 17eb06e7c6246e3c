// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) encoding and
// decoding.
//
// This package uses github.com/go-audio/aiff for the container.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Writing AIFF Files
//
//	file, _ := os.Create("tone.aiff")
//	defer file.Close()
//	err := aiff.WriteAIFF16(file, 44100, samples)
//
// Samples are written as mono, 16-bit, big-endian PCM.
//
// # Decoding AIFF Files
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("tone.aiff")
//	source, err := decoder.Decode(file)
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Only 16-bit files are accepted; other depths return
// ErrOnlyPCM16bitSupported.
package aiff
