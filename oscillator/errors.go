// SPDX-License-Identifier: EPL-2.0

package oscillator

import "errors"

var (
	ErrInvalidSampleRate   = errors.New("sample rate must be a finite positive number")
	ErrInvalidWaveformType = errors.New("invalid waveform type")
)
