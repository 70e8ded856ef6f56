// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a RIFF/WAVE file.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates a WAV file that is structurally
	// valid but not uncompressed integer PCM.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrUnsupportedSampleWidth indicates a sample width outside 1..4
	// bytes per sample.
	ErrUnsupportedSampleWidth = errors.New("unsupported sample width")
)
