// SPDX-License-Identifier: EPL-2.0

// Package audio defines the capture source abstraction and its file-backed
// implementation.
//
// # Source Interface
//
// The Source interface is the contract every audio input satisfies, file
// or device:
//
//	type Source interface {
//	    Open() error
//	    Close() error
//	    SampleRate() int
//	    SampleWidth() int
//	    ChunkSize() int
//	    Stream() Stream
//	}
//
// Consumers pull frames through Stream.ReadFrames and never need to know
// whether the audio comes from a file or a microphone.
//
// # File Sources
//
// File detects the container format on Open, trying PCM WAV, then
// AIFF/AIFF-C, then native FLAC (decoded through the external flac tool;
// see formats/flac). Reads always yield mono little-endian PCM regardless
// of what the container stored:
//
//	src := audio.NewFile("speech.flac")
//	if err := src.Open(); err != nil {
//	    // ErrUnsupportedFormat, ErrUnsupportedChannels, ...
//	}
//	defer src.Close()
//
//	buf, err := src.Stream().ReadFrames(src.ChunkSize())
//
// Big-endian containers are byte-swapped on the fly, stereo is downmixed
// to mono by averaging, and 24-bit audio is widened to 32-bit (the
// reported SampleWidth is 4 in that case). A shorter than requested read
// result, down to empty, means the stream is finished; it is not an
// error.
//
// # Lifecycle
//
// Sources are scoped: metadata accessors and the stream are only valid
// between Open and Close. Close is unconditional and idempotent, so it is
// safe to defer on every path. Reader-backed sources whose reader can
// seek may be reopened; path-backed sources are one-shot and fail a
// second Open with ErrExhausted.
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. A stream's cursor
// advances with every read and must be owned by one goroutine at a time.
package audio
