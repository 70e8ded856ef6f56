// SPDX-License-Identifier: EPL-2.0

// Package mic captures live audio from an input device through PortAudio
// and exposes it as an audio.Source.
//
// A Microphone always yields 16-bit little-endian mono PCM, downmixing
// stereo devices on the fly. The capture backend sits behind a small
// interface so tests can run without audio hardware.
package mic
