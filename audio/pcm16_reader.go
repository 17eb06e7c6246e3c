// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"

	"github.com/ik5/waveforms/utils"
)

// PCM16Reader turns a Source into a stream of interleaved signed 16-bit
// little-endian PCM bytes, the layout sound card APIs expect.
type PCM16Reader struct {
	src Source
	buf []float32
	err error
}

func NewPCM16Reader(src Source) *PCM16Reader {
	return &PCM16Reader{
		src: src,
		buf: make([]float32, src.BufSize()),
	}
}

// Read implements io.Reader. Only whole samples are written, so len(p) must
// be at least 2. The source error, io.EOF included, is reported once all
// converted bytes have been returned.
func (r *PCM16Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(p) == 0 {
		return 0, nil
	}
	if len(p) < 2 {
		return 0, ErrBufferTooSmall
	}

	samples := len(p) / 2
	if cap(r.buf) < samples {
		r.buf = make([]float32, samples)
	}

	n, err := r.src.ReadSamples(r.buf[:samples])
	for i := range n {
		binary.LittleEndian.PutUint16(p[2*i:], uint16(utils.Float32ToInt16(r.buf[i])))
	}

	if err != nil {
		r.err = err
		if n == 0 {
			return 0, err
		}
	}

	return 2 * n, nil
}
