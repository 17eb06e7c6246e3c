// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
)

// DefaultBufSize is the read size, in samples, sources suggest to callers.
const DefaultBufSize = 4096

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Encoder writes mono 16-bit PCM samples in a container format.
type Encoder interface {
	Encode(w io.WriteSeeker, sampleRate int, samples []int16) error
}

// Registry for encoders by format key (e.g., "wav", "aiff").
type Registry struct {
	codecs map[string]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Encoder),
		mtx:    &sync.Mutex{},
	}
}

// Register stores e under format. Keys are case-insensitive and a leading
// dot is ignored, so file extensions can be used directly.
func (r *Registry) Register(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[formatKey(format)] = e
}

func (r *Registry) Get(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.codecs[formatKey(format)]
	return e, ok
}

// Lookup is Get returning ErrEncoderNotFound for unknown formats.
func (r *Registry) Lookup(format string) (Encoder, error) {
	e, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEncoderNotFound, format)
	}

	return e, nil
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return slices.Sorted(maps.Keys(r.codecs))
}

func formatKey(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}
