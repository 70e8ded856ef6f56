// SPDX-License-Identifier: EPL-2.0

// Package pcm provides pure transforms over raw PCM byte buffers.
//
// All functions in this package treat a buffer as a sequence of signed
// linear samples of a fixed width (1, 2, 3 or 4 bytes per sample) and
// return a new buffer, leaving the input untouched. They carry no state,
// so they are safe to call from any goroutine.
//
// # Byte Order
//
// Unless stated otherwise, samples are interpreted as little-endian.
// Buffers captured from big-endian containers should be passed through
// ByteSwap first:
//
//	buf, err := pcm.ByteSwap(buf, 2)
//
// # 24-bit Widening
//
// Widen24To32 reinterprets 3-byte samples as 4-byte samples by prepending
// a zero byte to each sample, scaling the amplitudes by 256. Downstream
// transforms can then work on a native 4-byte width:
//
//	buf, err := pcm.Widen24To32(buf)
//	// sample width is 4 from here on
//
// # Downmixing
//
// DownmixStereo averages each interleaved stereo pair into a single mono
// sample of the same width:
//
//	mono, err := pcm.DownmixStereo(stereo, 2)
//
// # Energy
//
// RMS computes the root-mean-square amplitude of a buffer. It is used for
// energy-threshold speech detection:
//
//	energy, err := pcm.RMS(buf, 2)
//	if float64(energy) > threshold {
//	    // speech started
//	}
//
// # Conversions
//
// ConvertWidth rescales samples between widths, and Resample converts a
// mono buffer between sample rates using cubic interpolation.
package pcm
