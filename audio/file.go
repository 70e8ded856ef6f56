// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// defaultChunk is the preferred read size in frames.
const defaultChunk = 4096

var _ Source = (*File)(nil)

// frameReader is a probed container decoder yielding raw frames in the
// container's native byte order.
type frameReader interface {
	SampleRate() int
	SampleWidth() int
	Channels() int
	FrameCount() int
	ReadFrames(n int) ([]byte, error)
}

// File is a Source backed by a WAV, AIFF/AIFF-C or native FLAC file. The
// container format is detected when the source is opened.
//
// A File constructed from a path owns its file handle: the handle is
// opened on Open and closed on Close, and the File cannot be reopened
// after that. A File constructed from an io.Reader never closes the
// caller's reader; if the reader is also an io.Seeker the File rewinds it
// on Open, so it can be reopened any number of times.
type File struct {
	path string
	src  io.Reader

	handle *os.File
	stream *fileStream
	spent  bool

	littleEndian bool
	sampleRate   int
	sampleWidth  int
	frameCount   int
	duration     time.Duration

	// flacDecode overrides the external FLAC bridge in tests.
	flacDecode func([]byte) ([]byte, error)
}

// NewFile returns a File that reads the audio file at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// NewFileReader returns a File that reads audio from r. The caller keeps
// ownership of r and is responsible for closing it.
func NewFileReader(r io.Reader) *File {
	return &File{src: r}
}

// Open probes the input and, on success, makes the metadata accessors and
// Stream available. A failed Open leaves the File released and, when the
// input permits, retryable.
func (f *File) Open() error {
	if f.stream != nil {
		return ErrAlreadyOpen
	}
	if f.spent {
		return ErrExhausted
	}

	rs, err := f.input()
	if err != nil {
		return err
	}

	reader, littleEndian, err := f.probe(rs)
	if err != nil {
		f.releaseHandle()
		return err
	}

	if c := reader.Channels(); c != 1 && c != 2 {
		f.releaseHandle()
		return ErrUnsupportedChannels
	}

	width := reader.SampleWidth()
	widened := width == 3
	if widened {
		// 3-byte samples are widened to a native 4-byte width on every
		// read; the source presents itself as 32-bit throughout.
		width = 4
	}

	f.littleEndian = littleEndian
	f.sampleRate = reader.SampleRate()
	f.sampleWidth = width
	f.frameCount = reader.FrameCount()
	f.duration = time.Duration(float64(f.frameCount) / float64(f.sampleRate) * float64(time.Second))
	f.stream = &fileStream{
		reader:       reader,
		littleEndian: littleEndian,
		widened:      widened,
	}

	return nil
}

// input opens or rewinds the underlying byte source for probing.
func (f *File) input() (io.ReadSeeker, error) {
	if f.path != "" {
		h, err := os.Open(f.path)
		if err != nil {
			return nil, fmt.Errorf("opening audio file: %w", err)
		}
		f.handle = h
		return h, nil
	}

	if s, ok := f.src.(io.ReadSeeker); ok {
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewinding audio stream: %w", err)
		}
		return s, nil
	}

	// One-shot reader: the probe needs to rewind between attempts, so
	// the remaining input is buffered in full.
	data, err := io.ReadAll(f.src)
	if err != nil {
		return nil, fmt.Errorf("reading audio stream: %w", err)
	}
	return bytes.NewReader(data), nil
}

// Close releases the source and clears all metadata. It never fails on a
// File that is already closed.
func (f *File) Close() error {
	if f.stream == nil {
		return nil
	}
	f.stream.closed = true
	f.stream = nil
	f.littleEndian = false
	f.sampleRate = 0
	f.sampleWidth = 0
	f.frameCount = 0
	f.duration = 0

	if f.handle != nil {
		err := f.handle.Close()
		f.handle = nil
		f.spent = true
		if err != nil && !errors.Is(err, os.ErrClosed) {
			return fmt.Errorf("closing audio file: %w", err)
		}
		return nil
	}

	if _, ok := f.src.(io.Seeker); !ok {
		// The caller's reader has been consumed and cannot be rewound.
		f.spent = true
	}

	return nil
}

func (f *File) releaseHandle() {
	if f.handle != nil {
		f.handle.Close()
		f.handle = nil
	}
}

// SampleRate in Hz. Zero unless the File is open.
func (f *File) SampleRate() int { return f.sampleRate }

// SampleWidth in bytes per mono sample. Zero unless the File is open.
// 24-bit sources report a width of 4; see Stream.
func (f *File) SampleWidth() int { return f.sampleWidth }

// ChunkSize is the preferred number of frames per read. Zero unless the
// File is open.
func (f *File) ChunkSize() int {
	if f.stream == nil {
		return 0
	}
	return defaultChunk
}

// FrameCount is the total number of frames in the container. Zero unless
// the File is open.
func (f *File) FrameCount() int { return f.frameCount }

// Duration of the audio (FrameCount over SampleRate). Zero unless the
// File is open.
func (f *File) Duration() time.Duration { return f.duration }

// LittleEndian reports whether the detected container stores samples
// little-endian (WAV) rather than big-endian (AIFF, decoded FLAC). False
// unless the File is open.
func (f *File) LittleEndian() bool { return f.littleEndian }

// Stream returns the frame cursor, or nil when the File is not open.
func (f *File) Stream() Stream {
	if f.stream == nil {
		return nil
	}
	return f.stream
}
