// SPDX-License-Identifier: EPL-2.0

package earshot_test

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gilkron/earshot"
	"github.com/gilkron/earshot/audio"
)

// stubSource serves pre-baked 16-bit mono chunks, one per read, and an
// empty result once they run out.
type stubSource struct {
	rate   int
	chunk  int
	chunks [][]byte

	open bool
	pos  int
}

func (s *stubSource) Open() error {
	if s.open {
		return audio.ErrAlreadyOpen
	}
	s.open = true
	s.pos = 0
	return nil
}

func (s *stubSource) Close() error {
	s.open = false
	return nil
}

func (s *stubSource) SampleRate() int  { return s.rate }
func (s *stubSource) SampleWidth() int { return 2 }
func (s *stubSource) ChunkSize() int   { return s.chunk }

func (s *stubSource) Stream() audio.Stream {
	if !s.open {
		return nil
	}
	return (*stubStream)(s)
}

type stubStream stubSource

func (s *stubStream) ReadFrames(n int) ([]byte, error) {
	if !s.open {
		return nil, audio.ErrNotOpen
	}
	if s.pos >= len(s.chunks) {
		return []byte{}, nil
	}
	buf := s.chunks[s.pos]
	s.pos++
	return buf, nil
}

// toneChunk is one chunk of frames all carrying the same 16-bit value, so
// its RMS energy equals the value itself.
func toneChunk(frames int, value int16) []byte {
	buf := make([]byte, frames*2)
	for i := range frames {
		buf[i*2] = byte(value)
		buf[i*2+1] = byte(value >> 8)
	}
	return buf
}

// repeatChunks returns n copies of chunk.
func repeatChunks(n int, chunk []byte) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		out[i] = chunk
	}
	return out
}

// openStub returns an opened stubSource at 16 kHz with 1600-frame chunks,
// so every chunk represents 100ms.
func openStub(t *testing.T, chunks [][]byte) *stubSource {
	t.Helper()
	src := &stubSource{rate: 16000, chunk: 1600, chunks: chunks}
	if err := src.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return src
}

func TestRecord_WholeSource(t *testing.T) {
	t.Parallel()

	chunks := [][]byte{
		toneChunk(1600, 10),
		toneChunk(1600, 20),
		toneChunk(1600, 30),
	}
	src := openStub(t, chunks)

	rec := earshot.NewRecorder()
	clip, err := rec.Record(src, 0, 0)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if !bytes.Equal(clip.RawData(), bytes.Join(chunks, nil)) {
		t.Error("recorded data differs from the source chunks")
	}
	if clip.SampleRate() != 16000 || clip.SampleWidth() != 2 {
		t.Errorf("clip format = (%d Hz, %d bytes), want (16000, 2)",
			clip.SampleRate(), clip.SampleWidth())
	}
	if d := clip.Duration(); d != 300*time.Millisecond {
		t.Errorf("Duration() = %v, want 300ms", d)
	}
}

func TestRecord_DurationBound(t *testing.T) {
	t.Parallel()

	src := openStub(t, repeatChunks(10, toneChunk(1600, 10)))

	rec := earshot.NewRecorder()
	clip, err := rec.Record(src, 350*time.Millisecond, 0)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	// Whole chunks only: 100ms chunks against a 350ms budget yields
	// three chunks.
	if got := len(clip.RawData()); got != 3*3200 {
		t.Errorf("recorded %d bytes, want %d", got, 3*3200)
	}
}

func TestRecord_Offset(t *testing.T) {
	t.Parallel()

	chunks := [][]byte{
		toneChunk(1600, 1),
		toneChunk(1600, 2),
		toneChunk(1600, 3),
	}
	src := openStub(t, chunks)

	rec := earshot.NewRecorder()
	clip, err := rec.Record(src, 0, 150*time.Millisecond)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	// The first chunk falls inside the offset and is dropped.
	if !bytes.Equal(clip.RawData(), bytes.Join(chunks[1:], nil)) {
		t.Error("offset did not skip the leading chunk")
	}
}

func TestRecord_RequiresOpenSource(t *testing.T) {
	t.Parallel()

	src := &stubSource{rate: 16000, chunk: 1600}
	rec := earshot.NewRecorder()
	if _, err := rec.Record(src, 0, 0); !errors.Is(err, audio.ErrNotOpen) {
		t.Errorf("Record() error = %v, want ErrNotOpen", err)
	}
}

func TestAdjustForAmbientNoise(t *testing.T) {
	t.Parallel()

	src := openStub(t, repeatChunks(20, toneChunk(1600, 100)))

	rec := earshot.NewRecorder()
	rec.EnergyThreshold = 5000
	if err := rec.AdjustForAmbientNoise(src, time.Second); err != nil {
		t.Fatalf("AdjustForAmbientNoise() error = %v", err)
	}

	// Ten 100ms chunks of RMS 100 pull the threshold from 5000 toward
	// 150 with a total damping of exactly 0.15.
	want := 5000*0.15 + 150*0.85
	if diff := math.Abs(rec.EnergyThreshold - want); diff > 1 {
		t.Errorf("EnergyThreshold = %v, want about %v", rec.EnergyThreshold, want)
	}
}

func TestAdjustForAmbientNoise_RequiresOpenSource(t *testing.T) {
	t.Parallel()

	src := &stubSource{rate: 16000, chunk: 1600}
	rec := earshot.NewRecorder()
	if err := rec.AdjustForAmbientNoise(src, time.Second); !errors.Is(err, audio.ErrNotOpen) {
		t.Errorf("AdjustForAmbientNoise() error = %v, want ErrNotOpen", err)
	}
}
