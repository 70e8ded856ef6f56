// SPDX-License-Identifier: EPL-2.0

package audio

// Stream is the readable frame cursor of an acquired Source.
type Stream interface {
	// ReadFrames returns up to n frames as mono little-endian PCM at the
	// source's sample width, advancing the cursor. A negative n reads
	// everything that remains. A shorter than requested (possibly empty)
	// result signals the end of the stream and is not an error.
	ReadFrames(n int) ([]byte, error)
}

// Source is an audio input with a scoped lifecycle: acquire it with Open,
// pull normalized frames through Stream, release it with Close.
//
// A Source is single-owner. It must not be opened again while open, and
// its stream cursor must not be shared between goroutines; the package
// provides no internal locking.
type Source interface {
	// Open acquires the source. Opening an already open source fails
	// with ErrAlreadyOpen; a failed Open leaves the source released.
	Open() error

	// Close releases the source. It is best-effort and safe to call on
	// a source that is already closed.
	Close() error

	// SampleRate in Hz. Valid only while open.
	SampleRate() int

	// SampleWidth in bytes per (mono) sample. Valid only while open.
	SampleWidth() int

	// ChunkSize is the preferred number of frames per read. Valid only
	// while open.
	ChunkSize() int

	// Stream returns the frame cursor, or nil when the source is not
	// open.
	Stream() Stream
}
