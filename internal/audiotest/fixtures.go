// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds small audio containers in memory for tests.
// It intentionally avoids importing other earshot packages so that any
// package in the module can use it without import cycles.
package audiotest

import (
	"encoding/binary"
	"math"
)

// BuildWAV returns a complete PCM WAV file with a canonical 44-byte header
// holding the given interleaved samples at the given width (bytes per
// sample). Sample data is serialized little-endian, as RIFF requires.
func BuildWAV(sampleRate, channels, sampleWidth int, samples []int32) []byte {
	dataSize := len(samples) * sampleWidth
	buf := make([]byte, 44+dataSize)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(buf[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(sampleRate*channels*sampleWidth))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(channels*sampleWidth))
	binary.LittleEndian.PutUint16(buf[34:36], uint16(sampleWidth*8))

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))

	off := 44
	for _, s := range samples {
		putLE(buf[off:], sampleWidth, s)
		off += sampleWidth
	}

	return buf
}

// BuildAIFF returns a complete AIFF file (FORM/AIFF with COMM and SSND
// chunks) holding the given interleaved samples. Sample data is serialized
// big-endian, as AIFF requires.
func BuildAIFF(sampleRate, channels, sampleWidth int, samples []int32) []byte {
	frames := 0
	if channels > 0 {
		frames = len(samples) / channels
	}
	dataSize := len(samples) * sampleWidth
	// FORM type (4) + COMM chunk (8+18) + SSND chunk (8+8+data)
	formSize := 4 + 26 + 16 + dataSize
	buf := make([]byte, 8+formSize)

	copy(buf[0:4], "FORM")
	binary.BigEndian.PutUint32(buf[4:8], uint32(formSize))
	copy(buf[8:12], "AIFF")

	copy(buf[12:16], "COMM")
	binary.BigEndian.PutUint32(buf[16:20], 18)
	binary.BigEndian.PutUint16(buf[20:22], uint16(channels))
	binary.BigEndian.PutUint32(buf[22:26], uint32(frames))
	binary.BigEndian.PutUint16(buf[26:28], uint16(sampleWidth*8))
	ext := extended(float64(sampleRate))
	copy(buf[28:38], ext[:])

	copy(buf[38:42], "SSND")
	binary.BigEndian.PutUint32(buf[42:46], uint32(8+dataSize))
	binary.BigEndian.PutUint32(buf[46:50], 0) // offset
	binary.BigEndian.PutUint32(buf[50:54], 0) // block size

	off := 54
	for _, s := range samples {
		putBE(buf[off:], sampleWidth, s)
		off += sampleWidth
	}

	return buf
}

// ConstSamples returns n interleaved frames where every channel carries its
// own constant value.
func ConstSamples(n int, channelValues ...int32) []int32 {
	out := make([]int32, 0, n*len(channelValues))
	for range n {
		out = append(out, channelValues...)
	}
	return out
}

// SineSamples returns n mono samples of a sine wave with the given
// amplitude and frequency at the given rate.
func SineSamples(n int, sampleRate int, freq, amplitude float64) []int32 {
	out := make([]int32, n)
	for i := range n {
		t := float64(i) / float64(sampleRate)
		out[i] = int32(amplitude * math.Sin(2*math.Pi*freq*t))
	}
	return out
}

func putLE(b []byte, width int, v int32) {
	for i := range width {
		b[i] = byte(v >> (8 * i))
	}
}

func putBE(b []byte, width int, v int32) {
	for i := range width {
		b[width-1-i] = byte(v >> (8 * i))
	}
}

// extended encodes a positive float as an 80-bit IEEE 754 extended float,
// the representation AIFF uses for the sample rate.
func extended(f float64) [10]byte {
	var b [10]byte
	if f <= 0 {
		return b
	}

	m, e := math.Frexp(f)
	binary.BigEndian.PutUint16(b[0:2], uint16(16382+e))
	binary.BigEndian.PutUint64(b[2:10], uint64(math.Ldexp(m, 64)))
	return b
}
