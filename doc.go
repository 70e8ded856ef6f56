// SPDX-License-Identifier: EPL-2.0

// Package earshot captures speech-ready audio from files and microphones.
//
// Every source of audio implements audio.Source and yields mono PCM
// frames, whatever the input looked like: stereo is downmixed, big-endian
// containers are byte-swapped and 24-bit samples are widened to 32 bits
// as the frames are read.
//
// # Supported Inputs
//
//   - WAV (uncompressed PCM) via formats/wav
//   - AIFF and AIFF-C (uncompressed PCM) via formats/aiff
//   - Native FLAC, decoded through the flac command-line tool via
//     formats/flac
//   - Live capture from an input device via the mic package
//
// # Quick Start
//
// Capture a phrase from the default microphone and save it as WAV:
//
//	m, err := mic.Default()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := m.Open(); err != nil {
//		log.Fatal(err)
//	}
//	defer m.Close()
//
//	rec := earshot.NewRecorder()
//	rec.AdjustForAmbientNoise(m, time.Second)
//	clip, err := rec.Listen(m, 0, 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out, _ := os.Create("phrase.wav")
//	defer out.Close()
//	clip.WriteWAV(out)
//
// Reading from a file works the same way through audio.NewFile; the
// format is detected when the source is opened.
package earshot
