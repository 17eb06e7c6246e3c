// SPDX-License-Identifier: EPL-2.0

package waveforms

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/waveforms/audio"
	"github.com/ik5/waveforms/oscillator"
	"github.com/ik5/waveforms/utils"
)

var ErrNotMono = errors.New("source must be mono")

// RenderMono16 drains a mono source and collects all samples as 16-bit PCM.
//
// Parameters:
//   - src: The audio source to drain; it must report exactly one channel
//   - bufferSize: Size of the buffer for reading samples (e.g., 4096).
//     Values below 1 fall back to src.BufSize()
//
// Returns:
//   - []int16: Collected PCM samples as 16-bit signed integers
//   - int: The sample rate of src
//   - error: ErrNotMono, or the first source error other than io.EOF
//
// The source must be finite; an endless OscillatorSource never returns.
func RenderMono16(src audio.Source, bufferSize int) ([]int16, int, error) {
	rate := src.SampleRate()

	if src.Channels() != 1 {
		return nil, rate, fmt.Errorf("%w: got %d channels", ErrNotMono, src.Channels())
	}

	if bufferSize < 1 {
		bufferSize = max(src.BufSize(), 1)
	}

	pcm16 := make([]int16, 0, bufferSize)
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, rate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, rate, nil
}

// Render produces the next n samples of osc as 16-bit PCM. Unlike
// RenderMono16 it reads the oscillator directly, without float32 rounding.
func Render(osc *oscillator.Oscillator, n int) []int16 {
	if n <= 0 {
		return nil
	}

	pcm16 := make([]int16, n)
	for i := range pcm16 {
		pcm16[i] = utils.Float64ToInt16(osc.Process())
	}

	return pcm16
}
