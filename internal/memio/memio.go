// SPDX-License-Identifier: EPL-2.0

// Package memio provides in-memory io.ReadSeeker and io.WriteSeeker
// implementations for the go-audio codecs, which require seekable streams.
package memio

import (
	"errors"
	"fmt"
	"io"
)

var ErrNegativePosition = errors.New("negative position")

// ReadSeeker implements io.ReadSeeker for in-memory data
type ReadSeeker struct {
	data   []byte
	offset int64
}

func NewReadSeeker(data []byte) *ReadSeeker {
	return &ReadSeeker{data: data}
}

// AsReadSeeker returns r itself when it can seek, otherwise it reads r fully
// into memory.
func AsReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return NewReadSeeker(data), nil
}

func (rs *ReadSeeker) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *ReadSeeker) Seek(offset int64, whence int) (int64, error) {
	newOffset, err := seek(rs.offset, int64(len(rs.data)), offset, whence)
	if err != nil {
		return 0, err
	}

	rs.offset = newOffset
	return newOffset, nil
}

// WriteSeeker is an in-memory io.WriteSeeker. Writing past the end grows the
// buffer, filling any gap with zeros.
type WriteSeeker struct {
	data   []byte
	offset int64
}

func (ws *WriteSeeker) Write(p []byte) (int, error) {
	end := ws.offset + int64(len(p))
	if end > int64(len(ws.data)) {
		if end > int64(cap(ws.data)) {
			grown := make([]byte, end, max(end, 2*int64(cap(ws.data))))
			copy(grown, ws.data)
			ws.data = grown
		} else {
			ws.data = ws.data[:end]
		}
	}

	copy(ws.data[ws.offset:], p)
	ws.offset = end

	return len(p), nil
}

func (ws *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	newOffset, err := seek(ws.offset, int64(len(ws.data)), offset, whence)
	if err != nil {
		return 0, err
	}

	ws.offset = newOffset
	return newOffset, nil
}

// Bytes returns the written data. The slice aliases the internal buffer.
func (ws *WriteSeeker) Bytes() []byte { return ws.data }

func (ws *WriteSeeker) Len() int { return len(ws.data) }

func seek(current, size, offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = current + offset
	case io.SeekEnd:
		newOffset = size + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, ErrNegativePosition
	}

	return newOffset, nil
}
