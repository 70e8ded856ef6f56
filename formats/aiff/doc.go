// SPDX-License-Identifier: EPL-2.0

// Package aiff reads AIFF and AIFF-C audio containers.
//
// The Reader exposes the sound data as raw interleaved frames in the
// container's native big-endian byte order, without reinterpreting the
// samples. Converting to little-endian is left to the caller (see the pcm
// package), which keeps this package a thin wrapper over the
// github.com/go-audio/aiff decoder.
//
// # Reading
//
//	f, _ := os.Open("audio.aiff")
//	r, err := aiff.NewReader(f)
//	if err != nil {
//	    // not an AIFF file
//	}
//	buf, _ := r.ReadFrames(4096) // raw big-endian bytes
//
// Sample widths of 1, 2, 3 and 4 bytes are accepted; other layouts are
// rejected with ErrUnsupportedAiffLayout.
//
// AIFF is also the interchange format of the FLAC bridge: the external
// flac tool decodes into AIFF, which this package then reads (see
// formats/flac).
package aiff
