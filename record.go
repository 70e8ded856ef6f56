// SPDX-License-Identifier: EPL-2.0

package earshot

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/gilkron/earshot/audio"
	"github.com/gilkron/earshot/pcm"
)

// Recorder captures clips from an audio.Source, either for a fixed
// duration or by detecting a phrase between stretches of silence. The
// zero value is not usable; call NewRecorder.
//
// A Recorder is not safe for concurrent use: Listen and
// AdjustForAmbientNoise both move EnergyThreshold.
type Recorder struct {
	// EnergyThreshold is the minimum RMS energy a chunk must carry to
	// count as speech.
	EnergyThreshold float64

	// DynamicEnergyThreshold makes Listen keep adjusting
	// EnergyThreshold to the ambient level while waiting for a phrase.
	DynamicEnergyThreshold bool

	// DynamicEnergyDamping controls how much of the previous threshold
	// survives one second of adjustment.
	DynamicEnergyDamping float64

	// DynamicEnergyRatio is how far above ambient energy the threshold
	// settles.
	DynamicEnergyRatio float64

	// PauseThreshold is how much silence ends a phrase.
	PauseThreshold time.Duration

	// PhraseThreshold is the minimum speech duration for a capture to
	// count as a phrase; anything shorter is discarded as noise.
	PhraseThreshold time.Duration

	// NonSpeakingDuration is how much leading and trailing silence is
	// kept around a phrase.
	NonSpeakingDuration time.Duration
}

// NewRecorder returns a Recorder with thresholds that work for typical
// indoor speech.
func NewRecorder() *Recorder {
	return &Recorder{
		EnergyThreshold:        300,
		DynamicEnergyThreshold: true,
		DynamicEnergyDamping:   0.15,
		DynamicEnergyRatio:     1.5,
		PauseThreshold:         800 * time.Millisecond,
		PhraseThreshold:        300 * time.Millisecond,
		NonSpeakingDuration:    500 * time.Millisecond,
	}
}

// Record captures up to duration of audio from src, skipping the first
// offset. A zero duration records until the source is exhausted; a zero
// offset starts immediately. The source must be open.
func (r *Recorder) Record(src audio.Source, duration, offset time.Duration) (*AudioData, error) {
	st := src.Stream()
	if st == nil {
		return nil, audio.ErrNotOpen
	}

	chunk := src.ChunkSize()
	perChunk := chunkDuration(chunk, src.SampleRate())

	var out bytes.Buffer
	var elapsed, skipped time.Duration
	offsetReached := offset <= 0
	for {
		if !offsetReached {
			skipped += perChunk
			if skipped > offset {
				offsetReached = true
			}
		}

		buf, err := st.ReadFrames(chunk)
		if err != nil {
			return nil, err
		}
		if len(buf) == 0 {
			break
		}

		if offsetReached {
			elapsed += perChunk
			if duration > 0 && elapsed > duration {
				break
			}
			out.Write(buf)
		}
	}

	return &AudioData{
		data:        out.Bytes(),
		sampleRate:  src.SampleRate(),
		sampleWidth: src.SampleWidth(),
	}, nil
}

// AdjustForAmbientNoise listens to src for the given duration (one second
// when zero) and moves EnergyThreshold to sit above the ambient energy
// level. Call it on audio without speech, before Listen.
func (r *Recorder) AdjustForAmbientNoise(src audio.Source, duration time.Duration) error {
	st := src.Stream()
	if st == nil {
		return audio.ErrNotOpen
	}
	if duration <= 0 {
		duration = time.Second
	}

	chunk := src.ChunkSize()
	width := src.SampleWidth()
	perChunk := chunkDuration(chunk, src.SampleRate())

	var elapsed time.Duration
	for {
		elapsed += perChunk
		if elapsed > duration {
			return nil
		}

		buf, err := st.ReadFrames(chunk)
		if err != nil {
			return err
		}
		energy, err := pcm.RMS(buf, width)
		if err != nil {
			return fmt.Errorf("measuring ambient energy: %w", err)
		}
		r.adjustThreshold(energy, perChunk)
	}
}

// adjustThreshold moves EnergyThreshold toward energy times
// DynamicEnergyRatio, weighted so that the adjustment speed is
// independent of the chunk size.
func (r *Recorder) adjustThreshold(energy int, perChunk time.Duration) {
	damping := math.Pow(r.DynamicEnergyDamping, perChunk.Seconds())
	target := float64(energy) * r.DynamicEnergyRatio
	r.EnergyThreshold = r.EnergyThreshold*damping + target*(1-damping)
}

// chunkDuration is the wall-clock time one chunk of frames represents.
func chunkDuration(frames, sampleRate int) time.Duration {
	return time.Duration(float64(frames) / float64(sampleRate) * float64(time.Second))
}
