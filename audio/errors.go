// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrBufferTooSmall  = errors.New("buffer too small for one sample")
	ErrEncoderNotFound = errors.New("no encoder registered for format")

	// ErrInvalidDuration is returned by FramesFor for a duration that does
	// not cover at least one sample.
	ErrInvalidDuration   = errors.New("duration must cover at least one sample")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
