// SPDX-License-Identifier: EPL-2.0

// Package flac bridges to an external flac executable for decoding.
//
// Native FLAC is the one compressed container earshot accepts, and it is
// not decoded in-process: Decode hands the payload to the flac tool over
// standard input and collects the decoded stream from standard output,
// using fixed arguments that request a silent, stdout-only decode into the
// big-endian AIFF container:
//
//	flac --stdout --totally-silent --decode --force-aiff-format -
//
// The resulting bytes are then readable with the formats/aiff package.
//
// # Converter Lookup
//
// FindConverter prefers a bundled platform build placed next to the
// running binary (flac-linux-x86_64, flac-mac, flac-win32.exe) and falls
// back to whatever flac the PATH provides. Decode fails with
// ErrConverterNotFound when neither exists.
//
// # Process Ownership
//
// Each Decode call owns its subprocess completely: stdin is written in
// full, stdout is drained in full, and the process is waited on before the
// call returns, so no orphaned converters are left behind. There is no
// timeout at this layer; a hung converter hangs the caller.
package flac
