// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/waveforms/utils"
)

const (
	bitDepth    = 16
	formatPCM   = 1
	monoChannel = 1
)

// Encoder writes mono PCM 16-bit WAV files. It implements audio.Encoder.
type Encoder struct{}

func (Encoder) Encode(w io.WriteSeeker, sampleRate int, samples []int16) error {
	return WriteWAV16(w, sampleRate, samples)
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. The writer must be
// seekable because the RIFF sizes are patched once all samples are written.
// w itself is not closed.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	enc := gowav.NewEncoder(w, sampleRate, bitDepth, monoChannel, formatPCM)

	if err := enc.Write(utils.ToIntBuffer(samples, sampleRate)); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}
