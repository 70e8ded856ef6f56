// SPDX-License-Identifier: EPL-2.0

package earshot_test

import (
	"bytes"
	"fmt"

	"github.com/gilkron/earshot"
	"github.com/gilkron/earshot/audio"
	"github.com/gilkron/earshot/internal/audiotest"
)

// Example_recordFromFile records an entire audio file into an AudioData
// clip.
func Example_recordFromFile() {
	// A half-second 16 kHz mono WAV file, built in memory for the
	// example.
	wavData := audiotest.BuildWAV(16000, 1, 2, make([]int32, 8000))

	src := audio.NewFileReader(bytes.NewReader(wavData))
	if err := src.Open(); err != nil {
		fmt.Println("open:", err)
		return
	}
	defer src.Close()

	rec := earshot.NewRecorder()
	clip, err := rec.Record(src, 0, 0)
	if err != nil {
		fmt.Println("record:", err)
		return
	}

	fmt.Printf("%d Hz, %d-byte samples, %v\n",
		clip.SampleRate(), clip.SampleWidth(), clip.Duration())
	// Output:
	// 16000 Hz, 2-byte samples, 500ms
}

// ExampleAudioData_WriteWAV saves a clip as a WAV file that can be opened
// again as a source.
func ExampleAudioData_WriteWAV() {
	clip, err := earshot.NewAudioData(make([]byte, 3200), 16000, 2)
	if err != nil {
		fmt.Println("clip:", err)
		return
	}

	var out bytes.Buffer
	if err := clip.WriteWAV(&out); err != nil {
		fmt.Println("write:", err)
		return
	}

	reopened := audio.NewFileReader(bytes.NewReader(out.Bytes()))
	if err := reopened.Open(); err != nil {
		fmt.Println("open:", err)
		return
	}
	defer reopened.Close()

	fmt.Printf("%d frames at %d Hz\n", reopened.FrameCount(), reopened.SampleRate())
	// Output:
	// 1600 frames at 16000 Hz
}
