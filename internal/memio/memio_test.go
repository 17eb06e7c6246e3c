// SPDX-License-Identifier: EPL-2.0

package memio

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadSeeker(t *testing.T) {
	t.Parallel()

	rs := NewReadSeeker([]byte("hello world"))

	buf := make([]byte, 5)
	if n, err := rs.Read(buf); n != 5 || err != nil || string(buf) != "hello" {
		t.Fatalf("Read() = (%d, %v, %q)", n, err, buf)
	}

	if pos, err := rs.Seek(-5, io.SeekEnd); pos != 6 || err != nil {
		t.Fatalf("Seek(-5, end) = (%d, %v), want (6, nil)", pos, err)
	}

	rest, _ := io.ReadAll(rs)
	if string(rest) != "world" {
		t.Errorf("rest = %q, want \"world\"", rest)
	}

	if _, err := rs.Read(buf); err != io.EOF {
		t.Errorf("Read() at end error = %v, want io.EOF", err)
	}

	if _, err := rs.Seek(-1, io.SeekStart); !errors.Is(err, ErrNegativePosition) {
		t.Errorf("Seek(-1) error = %v, want ErrNegativePosition", err)
	}
	if _, err := rs.Seek(0, 42); err == nil {
		t.Error("Seek() accepted an invalid whence")
	}
}

func TestAsReadSeeker(t *testing.T) {
	t.Parallel()

	direct := bytes.NewReader([]byte("abc"))
	got, err := AsReadSeeker(direct)
	if err != nil || got != io.ReadSeeker(direct) {
		t.Errorf("AsReadSeeker() did not pass a ReadSeeker through")
	}

	got, err = AsReadSeeker(io.MultiReader(strings.NewReader("ab"), strings.NewReader("c")))
	if err != nil {
		t.Fatalf("AsReadSeeker() error = %v", err)
	}
	data, _ := io.ReadAll(got)
	if string(data) != "abc" {
		t.Errorf("buffered data = %q, want \"abc\"", data)
	}
}

func TestWriteSeeker(t *testing.T) {
	t.Parallel()

	var ws WriteSeeker

	ws.Write([]byte("RIFF????WAVE"))
	if _, err := ws.Seek(4, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	ws.Write([]byte("1234"))

	if got := string(ws.Bytes()); got != "RIFF1234WAVE" {
		t.Errorf("Bytes() = %q, want \"RIFF1234WAVE\"", got)
	}

	ws.Seek(2, io.SeekEnd)
	ws.Write([]byte("!"))

	if ws.Len() != 15 {
		t.Errorf("Len() = %d, want 15", ws.Len())
	}
	if !bytes.Equal(ws.Bytes()[12:], []byte{0, 0, '!'}) {
		t.Errorf("gap not zero filled: %v", ws.Bytes()[12:])
	}

	if _, err := ws.Seek(-100, io.SeekCurrent); !errors.Is(err, ErrNegativePosition) {
		t.Errorf("Seek(-100) error = %v, want ErrNegativePosition", err)
	}
}
