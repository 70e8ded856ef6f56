// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Reader decodes an uncompressed PCM WAV stream and yields raw interleaved
// frames in the container's native little-endian byte order.
type Reader struct {
	dec         *gowav.Decoder
	sampleRate  int
	sampleWidth int
	channels    int
	frameCount  int

	scratch []int
	intBuf  *goaudio.IntBuffer
	pos     int // frames consumed
}

// NewReader probes rs as a RIFF/WAVE file and positions it at the start of
// the PCM data. Only uncompressed integer PCM layouts are accepted.
func NewReader(rs io.ReadSeeker) (*Reader, error) {
	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != 1 {
		return nil, ErrUnsupportedWavLayout
	}
	if dec.BitDepth%8 != 0 {
		return nil, ErrUnsupportedWavLayout
	}
	width := int(dec.BitDepth) / 8
	if width < 1 || width > 4 {
		return nil, ErrUnsupportedSampleWidth
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedWavLayout, err)
	}

	channels := int(dec.NumChans)
	if channels < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	return &Reader{
		dec:         dec,
		sampleRate:  int(dec.SampleRate),
		sampleWidth: width,
		channels:    channels,
		frameCount:  int(dec.PCMLen()) / (width * channels),
	}, nil
}

// SampleRate in Hz.
func (r *Reader) SampleRate() int { return r.sampleRate }

// SampleWidth in bytes per sample per channel.
func (r *Reader) SampleWidth() int { return r.sampleWidth }

// Channels count in the container.
func (r *Reader) Channels() int { return r.channels }

// FrameCount is the total number of frames in the container.
func (r *Reader) FrameCount() int { return r.frameCount }

// ReadFrames returns up to n frames of raw little-endian PCM, advancing the
// read cursor. A negative n reads everything that remains. A shorter than
// requested (possibly empty) result means the stream is exhausted.
func (r *Reader) ReadFrames(n int) ([]byte, error) {
	if n < 0 {
		n = r.frameCount - r.pos
	}
	if n <= 0 {
		return []byte{}, nil
	}

	want := n * r.channels
	if cap(r.scratch) < want {
		r.scratch = make([]int, want)
		r.intBuf = &goaudio.IntBuffer{Format: r.dec.Format()}
	}
	r.intBuf.Data = r.scratch[:want]

	read, err := r.dec.PCMBuffer(r.intBuf)
	if err != nil {
		return nil, fmt.Errorf("decoding wav frames: %w", err)
	}

	w := r.sampleWidth
	out := make([]byte, read*w)
	for i, s := range r.intBuf.Data[:read] {
		for j := range w {
			out[i*w+j] = byte(s >> (8 * j))
		}
	}

	r.pos += read / r.channels
	return out, nil
}
