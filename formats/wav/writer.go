// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Write writes a mono PCM WAV file with a canonical 44-byte header. pcm
// holds little-endian samples of sampleWidth bytes each.
func Write(w io.Writer, sampleRate, sampleWidth int, pcm []byte) error {
	if sampleWidth < 1 || sampleWidth > 4 {
		return ErrUnsupportedSampleWidth
	}

	numChannels := uint16(1)
	bitsPerSample := uint16(sampleWidth * 8)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(sampleWidth)
	blockAlign := uint16(numChannels) * uint16(sampleWidth)
	dataSize := uint32(len(pcm))
	riffSize := 36 + dataSize

	header := make([]byte, 44)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}
	if len(pcm) == 0 {
		return nil
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}

	return nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate from int16 samples.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	pcm := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(s))
	}

	return Write(w, sampleRate, 2, pcm)
}
