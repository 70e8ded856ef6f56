// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"testing"
)

func TestResample_SameRate(t *testing.T) {
	t.Parallel()

	buf := []byte{0x01, 0x02, 0x03, 0x04}
	got, err := Resample(buf, 2, 16000, 16000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if !bytes.Equal(got, buf) {
		t.Errorf("Resample(same rate) = %v, want %v", got, buf)
	}

	// Must be a copy, not the same backing array.
	got[0] = 0xff
	if buf[0] == 0xff {
		t.Error("Resample(same rate) returned the input buffer instead of a copy")
	}
}

func TestResample_OutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		frames     int
		srcRate    int
		dstRate    int
		wantFrames int
	}{
		{"downsample 2x", 1000, 32000, 16000, 500},
		{"upsample 2x", 500, 8000, 16000, 1000},
		{"downsample 44k to 16k", 441, 44100, 16000, 160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, tt.frames*2)
			got, err := Resample(buf, 2, tt.srcRate, tt.dstRate)
			if err != nil {
				t.Fatalf("Resample() error = %v", err)
			}
			if len(got)/2 != tt.wantFrames {
				t.Errorf("Resample() produced %d frames, want %d", len(got)/2, tt.wantFrames)
			}
		})
	}
}

func TestResample_ConstantSignal(t *testing.T) {
	t.Parallel()

	// Interpolating a constant signal must yield the same constant.
	const amp = 5000
	buf := make([]byte, 400)
	for i := 0; i < len(buf); i += 2 {
		putSample(buf[i:], 2, amp)
	}

	got, err := Resample(buf, 2, 32000, 16000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	for i := 0; i < len(got); i += 2 {
		if v := readSample(got[i:], 2); v != amp {
			t.Fatalf("Resample() sample %d = %d, want %d", i/2, v, amp)
		}
	}
}

func TestResample_Empty(t *testing.T) {
	t.Parallel()

	got, err := Resample([]byte{}, 2, 44100, 16000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Resample(empty) returned %d bytes, want 0", len(got))
	}
}

func TestResample_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Resample([]byte{1, 2}, 2, 0, 16000); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("Resample() with zero source rate error = %v, want ErrInvalidRate", err)
	}
	if _, err := Resample([]byte{1, 2}, 2, 16000, -1); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("Resample() with negative target rate error = %v, want ErrInvalidRate", err)
	}
	if _, err := Resample([]byte{1}, 2, 16000, 8000); !errors.Is(err, ErrPartialSample) {
		t.Errorf("Resample() with partial sample error = %v, want ErrPartialSample", err)
	}
	if _, err := Resample([]byte{1, 2}, 6, 16000, 8000); !errors.Is(err, ErrInvalidSampleWidth) {
		t.Errorf("Resample() with bad width error = %v, want ErrInvalidSampleWidth", err)
	}
}
