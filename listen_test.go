// SPDX-License-Identifier: EPL-2.0

package earshot_test

import (
	"errors"
	"testing"
	"time"

	"github.com/gilkron/earshot"
	"github.com/gilkron/earshot/audio"
)

const chunkBytes = 1600 * 2

// listenRecorder returns a Recorder with a fixed threshold so the energy
// decisions in these tests are deterministic.
func listenRecorder() *earshot.Recorder {
	rec := earshot.NewRecorder()
	rec.EnergyThreshold = 300
	rec.DynamicEnergyThreshold = false
	return rec
}

// sampleAt reads the 16-bit sample at the start of chunk i of data.
func sampleAt(data []byte, i int) int16 {
	off := i * chunkBytes
	return int16(uint16(data[off]) | uint16(data[off+1])<<8)
}

func TestListen_CapturesPhrase(t *testing.T) {
	t.Parallel()

	// 100ms chunks: 3 of silence, 5 of speech, then enough silence to
	// end the phrase.
	var chunks [][]byte
	chunks = append(chunks, repeatChunks(3, toneChunk(1600, 10))...)
	chunks = append(chunks, repeatChunks(5, toneChunk(1600, 5000))...)
	chunks = append(chunks, repeatChunks(12, toneChunk(1600, 10))...)
	src := openStub(t, chunks)

	clip, err := listenRecorder().Listen(src, 0, 0)
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	// 3 chunks of leading context, 5 of speech, and the non-speaking
	// padding (500ms = 5 chunks) of trailing silence.
	if got := len(clip.RawData()); got != 13*chunkBytes {
		t.Fatalf("captured %d bytes, want %d", got, 13*chunkBytes)
	}
	for i := 3; i < 8; i++ {
		if v := sampleAt(clip.RawData(), i); v != 5000 {
			t.Errorf("chunk %d starts with %d, want speech (5000)", i, v)
		}
	}
	if v := sampleAt(clip.RawData(), 0); v != 10 {
		t.Errorf("chunk 0 starts with %d, want leading silence (10)", v)
	}
	if v := sampleAt(clip.RawData(), 12); v != 10 {
		t.Errorf("chunk 12 starts with %d, want trailing silence (10)", v)
	}
}

func TestListen_BoundsLeadingContext(t *testing.T) {
	t.Parallel()

	// A long stretch of leading silence: only the non-speaking window
	// survives in front of the phrase.
	var chunks [][]byte
	chunks = append(chunks, repeatChunks(10, toneChunk(1600, 10))...)
	chunks = append(chunks, repeatChunks(4, toneChunk(1600, 5000))...)
	chunks = append(chunks, repeatChunks(12, toneChunk(1600, 10))...)
	src := openStub(t, chunks)

	clip, err := listenRecorder().Listen(src, 0, 0)
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	// The rolling window keeps 5 chunks through the one that crossed
	// the threshold: 4 of context plus the first speech chunk, then 3
	// more speech and 5 of padding.
	if got := len(clip.RawData()); got != 13*chunkBytes {
		t.Fatalf("captured %d bytes, want %d", got, 13*chunkBytes)
	}
	for i := range 4 {
		if v := sampleAt(clip.RawData(), i); v != 10 {
			t.Errorf("chunk %d starts with %d, want silence (10)", i, v)
		}
	}
	if v := sampleAt(clip.RawData(), 4); v != 5000 {
		t.Errorf("chunk 4 starts with %d, want speech (5000)", v)
	}
}

func TestListen_DiscardsShortBurst(t *testing.T) {
	t.Parallel()

	// A single 100ms burst is below the 300ms phrase threshold; Listen
	// must skip it and capture the real phrase that follows.
	var chunks [][]byte
	chunks = append(chunks, repeatChunks(2, toneChunk(1600, 10))...)
	chunks = append(chunks, toneChunk(1600, 5000))
	chunks = append(chunks, repeatChunks(12, toneChunk(1600, 10))...)
	chunks = append(chunks, repeatChunks(5, toneChunk(1600, 6000))...)
	chunks = append(chunks, repeatChunks(12, toneChunk(1600, 10))...)
	src := openStub(t, chunks)

	clip, err := listenRecorder().Listen(src, 0, 0)
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	// The capture must hold the 6000-amplitude phrase, not the burst.
	found := false
	for i := 0; i*chunkBytes < len(clip.RawData()); i++ {
		switch sampleAt(clip.RawData(), i) {
		case 6000:
			found = true
		case 5000:
			t.Fatalf("chunk %d carries the discarded burst", i)
		}
	}
	if !found {
		t.Error("captured clip does not contain the phrase")
	}
}

func TestListen_Timeout(t *testing.T) {
	t.Parallel()

	src := openStub(t, repeatChunks(20, toneChunk(1600, 10)))

	_, err := listenRecorder().Listen(src, 300*time.Millisecond, 0)
	if !errors.Is(err, earshot.ErrWaitTimeout) {
		t.Errorf("Listen() error = %v, want ErrWaitTimeout", err)
	}
}

func TestListen_PhraseTimeLimit(t *testing.T) {
	t.Parallel()

	// Continuous speech: only the limit ends the phrase.
	src := openStub(t, repeatChunks(30, toneChunk(1600, 5000)))

	clip, err := listenRecorder().Listen(src, 0, 500*time.Millisecond)
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	// One chunk from the wait loop plus five more before the 500ms
	// budget runs out.
	if got := len(clip.RawData()); got != 6*chunkBytes {
		t.Errorf("captured %d bytes, want %d", got, 6*chunkBytes)
	}
}

func TestListen_InvalidThresholds(t *testing.T) {
	t.Parallel()

	src := openStub(t, repeatChunks(2, toneChunk(1600, 10)))

	rec := listenRecorder()
	rec.PauseThreshold = 200 * time.Millisecond
	rec.NonSpeakingDuration = 500 * time.Millisecond
	if _, err := rec.Listen(src, 0, 0); !errors.Is(err, audio.ErrInvalidConfig) {
		t.Errorf("Listen() error = %v, want ErrInvalidConfig", err)
	}
}

func TestListen_RequiresOpenSource(t *testing.T) {
	t.Parallel()

	src := &stubSource{rate: 16000, chunk: 1600}
	if _, err := listenRecorder().Listen(src, 0, 0); !errors.Is(err, audio.ErrNotOpen) {
		t.Errorf("Listen() error = %v, want ErrNotOpen", err)
	}
}

func TestListenInBackground(t *testing.T) {
	t.Parallel()

	var chunks [][]byte
	chunks = append(chunks, repeatChunks(3, toneChunk(1600, 10))...)
	chunks = append(chunks, repeatChunks(5, toneChunk(1600, 5000))...)
	chunks = append(chunks, repeatChunks(12, toneChunk(1600, 10))...)
	src := &stubSource{rate: 16000, chunk: 1600, chunks: chunks}

	got := make(chan *earshot.AudioData, 4)
	stop, err := listenRecorder().ListenInBackground(src, func(clip *earshot.AudioData) {
		got <- clip
	}, 0)
	if err != nil {
		t.Fatalf("ListenInBackground() error = %v", err)
	}

	select {
	case clip := <-got:
		if len(clip.RawData()) != 13*chunkBytes {
			t.Errorf("captured %d bytes, want %d", len(clip.RawData()), 13*chunkBytes)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no phrase delivered")
	}

	stop(true)
	if src.open {
		t.Error("source left open after stop")
	}
}

func TestListenInBackground_OpenFailure(t *testing.T) {
	t.Parallel()

	src := &stubSource{rate: 16000, chunk: 1600}
	if err := src.Open(); err != nil {
		t.Fatal(err)
	}

	// ListenInBackground opens the source itself; handing it one that
	// is already open must fail up front.
	rec := listenRecorder()
	_, err := rec.ListenInBackground(src, func(*earshot.AudioData) {}, 0)
	if !errors.Is(err, audio.ErrAlreadyOpen) {
		t.Errorf("ListenInBackground() error = %v, want ErrAlreadyOpen", err)
	}
}
