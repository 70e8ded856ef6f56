// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/gilkron/earshot/pcm"
)

// fileStream normalizes raw container frames on every read: byte order
// first, then 24-to-32-bit widening, then stereo downmix. The transform
// order is fixed; each step feeds the next.
type fileStream struct {
	reader       frameReader
	littleEndian bool
	widened      bool
	closed       bool
}

func (s *fileStream) ReadFrames(n int) ([]byte, error) {
	if s.closed {
		return nil, ErrNotOpen
	}

	buf, err := s.reader.ReadFrames(n)
	if err != nil {
		return nil, err
	}

	width := s.reader.SampleWidth()
	if !s.littleEndian {
		if buf, err = pcm.ByteSwap(buf, width); err != nil {
			return nil, fmt.Errorf("normalizing byte order: %w", err)
		}
	}

	if s.widened {
		if buf, err = pcm.Widen24To32(buf); err != nil {
			return nil, fmt.Errorf("widening samples: %w", err)
		}
		width = 4
	}

	if s.reader.Channels() == 2 {
		if buf, err = pcm.DownmixStereo(buf, width); err != nil {
			return nil, fmt.Errorf("downmixing: %w", err)
		}
	}

	return buf, nil
}
