// SPDX-License-Identifier: EPL-2.0

package utils

import goaudio "github.com/go-audio/audio"

// ToIntBuffer wraps mono 16-bit samples in a go-audio IntBuffer, the input
// type of the go-audio encoders.
func ToIntBuffer(samples []int16, sampleRate int) *goaudio.IntBuffer {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
}
