// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE audio containers.
//
// The Reader exposes the PCM payload as raw interleaved frames in the
// container's native little-endian byte order, without reinterpreting the
// samples. It uses the github.com/go-audio library for header parsing and
// chunk traversal.
//
// # Reading
//
//	f, _ := os.Open("audio.wav")
//	r, err := wav.NewReader(f)
//	if err != nil {
//	    // not a WAV file, or not plain PCM
//	}
//	buf, _ := r.ReadFrames(4096) // raw little-endian bytes
//
// Only uncompressed integer PCM is supported; WAVE_FORMAT_EXTENSIBLE and
// compressed layouts are rejected with ErrUnsupportedWavLayout. Sample
// widths of 1, 2, 3 and 4 bytes are accepted.
//
// # Writing
//
// Write produces a mono PCM WAV with a canonical 44-byte header from a raw
// byte payload; WriteWAV16 is a convenience wrapper for int16 samples:
//
//	var b bytes.Buffer
//	err := wav.Write(&b, 16000, 2, pcmBytes)
//	err = wav.WriteWAV16(&b, 16000, samples)
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE container
//   - ErrUnsupportedWavLayout: valid container, unsupported encoding
//   - ErrUnsupportedSampleWidth: width outside 1..4 bytes
package wav
