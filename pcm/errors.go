// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrInvalidSampleWidth indicates a sample width outside 1..4 bytes.
	ErrInvalidSampleWidth = errors.New("sample width must be 1, 2, 3 or 4 bytes")

	// ErrPartialSample indicates a buffer whose size is not a whole
	// number of samples (or stereo sample pairs).
	ErrPartialSample = errors.New("buffer size must be a multiple of the sample size")

	// ErrInvalidRate indicates a non-positive sample rate.
	ErrInvalidRate = errors.New("sample rate must be positive")
)
