// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnsupportedFormat indicates none of the supported containers
	// (PCM WAV, AIFF/AIFF-C, native FLAC) accepted the input.
	ErrUnsupportedFormat = errors.New("audio could not be read as PCM WAV, AIFF/AIFF-C or native FLAC; the file may be corrupted or in another format")

	// ErrUnsupportedChannels indicates a channel count other than mono
	// or stereo.
	ErrUnsupportedChannels = errors.New("audio must be mono or stereo")

	// ErrAlreadyOpen indicates an Open on a source that is already open.
	ErrAlreadyOpen = errors.New("audio source is already open")

	// ErrNotOpen indicates a read on a source that is not open.
	ErrNotOpen = errors.New("audio source is not open")

	// ErrExhausted indicates an Open on a released one-shot source whose
	// input cannot be rewound.
	ErrExhausted = errors.New("audio source is exhausted and cannot be reopened")

	// ErrInvalidConfig indicates nonsensical device or sample rate
	// configuration.
	ErrInvalidConfig = errors.New("invalid audio configuration")
)
