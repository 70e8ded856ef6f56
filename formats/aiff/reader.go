// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// pcmDecoder is the slice of go-audio's aiff.Decoder that ReadFrames
// needs. It is an interface to allow testing without a real file.
type pcmDecoder interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Reader decodes an AIFF or AIFF-C stream and yields raw interleaved
// frames in the container's native big-endian byte order.
type Reader struct {
	dec         pcmDecoder
	sampleRate  int
	sampleWidth int
	channels    int
	frameCount  int

	scratch []int
	intBuf  *goaudio.IntBuffer
	pos     int // frames consumed
}

// NewReader probes rs as a FORM/AIFF (or AIFF-C) file and positions it for
// PCM reading.
func NewReader(rs io.ReadSeeker) (*Reader, error) {
	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	if dec.BitDepth%8 != 0 {
		return nil, ErrUnsupportedAiffLayout
	}
	width := int(dec.BitDepth) / 8
	if width < 1 || width > 4 {
		return nil, ErrUnsupportedAiffLayout
	}
	if dec.NumChans < 1 {
		return nil, ErrUnsupportedAiffLayout
	}
	if dec.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &Reader{
		dec:         dec,
		sampleRate:  dec.SampleRate,
		sampleWidth: width,
		channels:    int(dec.NumChans),
		frameCount:  int(dec.NumSampleFrames),
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

// ReadFrames returns up to n frames of raw big-endian PCM, advancing the
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
		return nil, fmt.Errorf("decoding aiff frames: %w", err)
	}

	w := r.sampleWidth
	out := make([]byte, read*w)
	for i, s := range r.intBuf.Data[:read] {
		for j := range w {
			out[i*w+w-1-j] = byte(s >> (8 * j))
		}
	}

	r.pos += read / r.channels
	return out, nil
}
