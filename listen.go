// SPDX-License-Identifier: EPL-2.0

package earshot

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/gilkron/earshot/audio"
	"github.com/gilkron/earshot/pcm"
)

// Listen captures a single phrase from src: it waits for the energy to
// rise above EnergyThreshold, records until PauseThreshold of silence,
// and returns the phrase with NonSpeakingDuration of padding on both
// sides. Bursts shorter than PhraseThreshold are discarded and listening
// resumes.
//
// A non-zero timeout bounds the wait for the phrase to start; when it
// elapses Listen returns ErrWaitTimeout. A non-zero phraseTimeLimit caps
// the length of the captured phrase. The source must be open.
func (r *Recorder) Listen(src audio.Source, timeout, phraseTimeLimit time.Duration) (*AudioData, error) {
	st := src.Stream()
	if st == nil {
		return nil, audio.ErrNotOpen
	}
	if r.PauseThreshold < r.NonSpeakingDuration || r.NonSpeakingDuration < 0 {
		return nil, fmt.Errorf("%w: pause threshold %v shorter than non-speaking duration %v",
			audio.ErrInvalidConfig, r.PauseThreshold, r.NonSpeakingDuration)
	}

	chunk := src.ChunkSize()
	width := src.SampleWidth()
	perChunk := chunkDuration(chunk, src.SampleRate())

	pauseChunks := chunksFor(r.PauseThreshold, perChunk)
	phraseChunks := chunksFor(r.PhraseThreshold, perChunk)
	nonSpeakingChunks := chunksFor(r.NonSpeakingDuration, perChunk)

	var elapsed time.Duration
	var frames [][]byte
	var pauseCount int
	for {
		frames = frames[:0]

		// Wait for the phrase to start, keeping a rolling window of
		// leading context.
		var buf []byte
		for {
			elapsed += perChunk
			if timeout > 0 && elapsed > timeout {
				return nil, ErrWaitTimeout
			}

			var err error
			if buf, err = st.ReadFrames(chunk); err != nil {
				return nil, err
			}
			if len(buf) == 0 {
				break
			}
			frames = append(frames, buf)
			if len(frames) > nonSpeakingChunks {
				frames = frames[1:]
			}

			energy, err := pcm.RMS(buf, width)
			if err != nil {
				return nil, fmt.Errorf("measuring energy: %w", err)
			}
			if float64(energy) > r.EnergyThreshold {
				break
			}
			if r.DynamicEnergyThreshold {
				r.adjustThreshold(energy, perChunk)
			}
		}

		// Record until the pause that ends the phrase.
		var phraseCount int
		pauseCount = 0
		phraseStart := elapsed
		for {
			elapsed += perChunk
			if phraseTimeLimit > 0 && elapsed-phraseStart > phraseTimeLimit {
				break
			}

			var err error
			if buf, err = st.ReadFrames(chunk); err != nil {
				return nil, err
			}
			if len(buf) == 0 {
				break
			}
			frames = append(frames, buf)
			phraseCount++

			energy, err := pcm.RMS(buf, width)
			if err != nil {
				return nil, fmt.Errorf("measuring energy: %w", err)
			}
			if float64(energy) > r.EnergyThreshold {
				pauseCount = 0
			} else {
				pauseCount++
				if pauseCount > pauseChunks {
					break
				}
			}
		}

		// A burst shorter than the phrase threshold is noise; listen
		// again. End of stream always ends the hunt.
		phraseCount -= pauseCount
		if phraseCount >= phraseChunks || len(buf) == 0 {
			break
		}
	}

	// Trim the trailing silence beyond the non-speaking padding.
	for i := pauseCount - nonSpeakingChunks; i > 0 && len(frames) > 0; i-- {
		frames = frames[:len(frames)-1]
	}

	var out bytes.Buffer
	for _, f := range frames {
		out.Write(f)
	}
	return &AudioData{
		data:        out.Bytes(),
		sampleRate:  src.SampleRate(),
		sampleWidth: width,
	}, nil
}

// ListenInBackground opens src and runs Listen in a goroutine, invoking
// callback with each captured phrase. It returns a stop function; calling
// stop(true) blocks until the listener goroutine has exited and the
// source is closed, stop(false) just asks it to stop after the phrase in
// progress.
func (r *Recorder) ListenInBackground(src audio.Source, callback func(*AudioData), phraseTimeLimit time.Duration) (func(wait bool), error) {
	if err := src.Open(); err != nil {
		return nil, err
	}

	var running atomic.Bool
	running.Store(true)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer src.Close()
		for running.Load() {
			data, err := r.Listen(src, time.Second, phraseTimeLimit)
			if errors.Is(err, ErrWaitTimeout) {
				continue
			}
			if err != nil {
				return
			}
			if len(data.data) == 0 {
				// Exhausted source; nothing more will arrive.
				return
			}
			if running.Load() {
				callback(data)
			}
		}
	}()

	stop := func(wait bool) {
		running.Store(false)
		if wait {
			<-done
		}
	}
	return stop, nil
}

// chunksFor is the number of whole chunks covering d.
func chunksFor(d, perChunk time.Duration) int {
	return int(math.Ceil(float64(d) / float64(perChunk)))
}
