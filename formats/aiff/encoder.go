// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/waveforms/utils"
)

const (
	bitDepth    = 16
	monoChannel = 1
)

// Encoder writes mono 16-bit AIFF files. It implements audio.Encoder.
type Encoder struct{}

func (Encoder) Encode(w io.WriteSeeker, sampleRate int, samples []int16) error {
	return WriteAIFF16(w, sampleRate, samples)
}

// WriteAIFF16 writes samples as a mono 16-bit AIFF at sampleRate. Chunk sizes
// are patched on close, so w must be seekable. w itself is not closed.
func WriteAIFF16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	enc := aiff.NewEncoder(w, sampleRate, bitDepth, monoChannel)

	if err := enc.Write(utils.ToIntBuffer(samples, sampleRate)); err != nil {
		return fmt.Errorf("writing aiff samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing aiff header: %w", err)
	}

	return nil
}
