// SPDX-License-Identifier: EPL-2.0

package earshot

import (
	"fmt"
	"io"
	"time"

	"github.com/gilkron/earshot/audio"
	"github.com/gilkron/earshot/formats/wav"
	"github.com/gilkron/earshot/pcm"
)

// AudioData is an immutable clip of mono PCM captured from a Source: the
// raw sample bytes plus the rate and width needed to interpret them.
type AudioData struct {
	data        []byte
	sampleRate  int
	sampleWidth int
}

// NewAudioData wraps raw little-endian mono PCM. The width is in bytes
// per sample, 1 through 4.
func NewAudioData(data []byte, sampleRate, sampleWidth int) (*AudioData, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", audio.ErrInvalidConfig, sampleRate)
	}
	if sampleWidth < 1 || sampleWidth > 4 {
		return nil, fmt.Errorf("%w: sample width %d", audio.ErrInvalidConfig, sampleWidth)
	}
	if len(data)%sampleWidth != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of %d-byte samples",
			audio.ErrInvalidConfig, len(data), sampleWidth)
	}
	return &AudioData{data: data, sampleRate: sampleRate, sampleWidth: sampleWidth}, nil
}

// RawData returns the sample bytes. The slice is shared, not copied;
// callers must not modify it.
func (a *AudioData) RawData() []byte { return a.data }

// SampleRate in Hz.
func (a *AudioData) SampleRate() int { return a.sampleRate }

// SampleWidth in bytes per sample.
func (a *AudioData) SampleWidth() int { return a.sampleWidth }

// Duration of the clip.
func (a *AudioData) Duration() time.Duration {
	frames := len(a.data) / a.sampleWidth
	return time.Duration(float64(frames) / float64(a.sampleRate) * float64(time.Second))
}

// Convert returns a copy of the clip converted to the given sample rate
// and width. Passing the clip's own rate and width returns the clip
// itself.
func (a *AudioData) Convert(sampleRate, sampleWidth int) (*AudioData, error) {
	if sampleRate == a.sampleRate && sampleWidth == a.sampleWidth {
		return a, nil
	}

	data := a.data
	var err error
	if sampleRate != a.sampleRate {
		if data, err = pcm.Resample(data, a.sampleWidth, a.sampleRate, sampleRate); err != nil {
			return nil, err
		}
	}
	if sampleWidth != a.sampleWidth {
		if data, err = pcm.ConvertWidth(data, a.sampleWidth, sampleWidth); err != nil {
			return nil, err
		}
	}
	return NewAudioData(data, sampleRate, sampleWidth)
}

// WriteWAV writes the clip to w as a PCM WAV file.
func (a *AudioData) WriteWAV(w io.Writer) error {
	return wav.Write(w, a.sampleRate, a.sampleWidth, a.data)
}
