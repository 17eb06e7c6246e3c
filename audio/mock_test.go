// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// scriptedSource replays fixed values and then fails with err (io.EOF when
// err is nil).
type scriptedSource struct {
	values []float32
	pos    int
	err    error
	bufLen int
}

func newScriptedSource(values []float32, err error) *scriptedSource {
	if err == nil {
		err = io.EOF
	}

	return &scriptedSource{values: values, err: err, bufLen: 8}
}

func (s *scriptedSource) SampleRate() int { return 8000 }
func (s *scriptedSource) Channels() int   { return 1 }
func (s *scriptedSource) BufSize() int    { return s.bufLen }
func (s *scriptedSource) Close() error    { return nil }

func (s *scriptedSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.values) {
		return 0, s.err
	}

	n := copy(dst, s.values[s.pos:])
	s.pos += n

	if s.pos >= len(s.values) {
		return n, s.err
	}

	return n, nil
}
