// SPDX-License-Identifier: EPL-2.0

package pcm

import "math"

// RMS returns the root-mean-square amplitude of a buffer of little-endian
// samples of the given width. An empty buffer has an RMS of zero.
func RMS(buf []byte, width int) (int, error) {
	if !validWidth(width) {
		return 0, ErrInvalidSampleWidth
	}
	if len(buf)%width != 0 {
		return 0, ErrPartialSample
	}
	if len(buf) == 0 {
		return 0, nil
	}

	var sum float64
	n := len(buf) / width
	for i := 0; i < len(buf); i += width {
		v := float64(readSample(buf[i:], width))
		sum += v * v
	}

	return int(math.Sqrt(sum / float64(n))), nil
}
