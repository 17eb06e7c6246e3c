// SPDX-License-Identifier: EPL-2.0

package oscillator

import (
	"fmt"
	"strings"
)

// WaveformType selects the shaping function used by Process.
type WaveformType int

const (
	Sine WaveformType = iota
	Square
	Triangle
	Sawtooth
	Noise
)

var waveformNames = [...]string{
	Sine:     "Sine",
	Square:   "Square",
	Triangle: "Triangle",
	Sawtooth: "Sawtooth",
	Noise:    "Noise",
}

// WaveformTypeFromInt converts a discriminant in 0..4 to a WaveformType.
// Any other value returns an error wrapping ErrInvalidWaveformType.
func WaveformTypeFromInt(v int) (WaveformType, error) {
	t := WaveformType(v)
	if !t.Valid() {
		return Sine, fmt.Errorf("%w: %d", ErrInvalidWaveformType, v)
	}

	return t, nil
}

// ParseWaveformType converts a waveform name, case-insensitive, to a WaveformType.
func ParseWaveformType(name string) (WaveformType, error) {
	for i, n := range waveformNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return WaveformType(i), nil
		}
	}

	return Sine, fmt.Errorf("%w: %q", ErrInvalidWaveformType, name)
}

// Valid reports whether t is one of the defined waveform types.
func (t WaveformType) Valid() bool {
	return t >= Sine && t <= Noise
}

func (t WaveformType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("WaveformType(%d)", int(t))
	}

	return waveformNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t WaveformType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWaveformType, int(t))
	}

	return []byte(waveformNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so a WaveformType can be
// used with flag.TextVar.
func (t *WaveformType) UnmarshalText(text []byte) error {
	v, err := ParseWaveformType(string(text))
	if err != nil {
		return err
	}

	*t = v

	return nil
}
