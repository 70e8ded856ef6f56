// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gilkron/earshot/formats/aiff"
	"github.com/gilkron/earshot/formats/flac"
	"github.com/gilkron/earshot/formats/wav"
)

var (
	_ frameReader = (*wav.Reader)(nil)
	_ frameReader = (*aiff.Reader)(nil)
)

// probe tries the supported containers in fixed priority order: PCM WAV,
// then AIFF/AIFF-C, then native FLAC decoded to AIFF through the external
// bridge. The first decoder that accepts the input wins; per-strategy
// failures are not surfaced.
func (f *File) probe(rs io.ReadSeeker) (frameReader, bool, error) {
	attempts := []struct {
		littleEndian bool
		open         func(io.ReadSeeker) (frameReader, error)
	}{
		{true, func(rs io.ReadSeeker) (frameReader, error) { return wav.NewReader(rs) }},
		{false, func(rs io.ReadSeeker) (frameReader, error) { return aiff.NewReader(rs) }},
	}

	for _, a := range attempts {
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return nil, false, fmt.Errorf("rewinding input: %w", err)
		}
		if r, err := a.open(rs); err == nil {
			return r, a.littleEndian, nil
		}
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, false, fmt.Errorf("rewinding input: %w", err)
	}
	payload, err := io.ReadAll(rs)
	if err != nil {
		return nil, false, fmt.Errorf("reading input: %w", err)
	}

	decode := f.flacDecode
	if decode == nil {
		decode = flac.Decode
	}
	data, err := decode(payload)
	if err != nil {
		// Bridge failures (converter missing, process failure) surface
		// as-is; they are not a format mismatch.
		return nil, false, err
	}

	r, err := aiff.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, false, ErrUnsupportedFormat
	}
	return r, false, nil
}
