// SPDX-License-Identifier: EPL-2.0

package mic

// Backend abstracts the capture library so a Microphone can be driven by
// real hardware or by a test double.
type Backend interface {
	// Initialize prepares the backend. It is called once per Open.
	Initialize() error

	// Terminate releases the backend. It is called once per Close.
	Terminate() error

	// DefaultSampleRate reports the preferred capture rate of the given
	// device, in Hz. A negative device index means the system default
	// input device.
	DefaultSampleRate(device int) (int, error)

	// OpenStream opens a capture stream on the given device. The stream
	// delivers interleaved 16-bit samples in chunks of the given frame
	// count.
	OpenStream(device, channels, sampleRate, chunkFrames int) (InputStream, error)
}

// InputStream is an open capture stream.
type InputStream interface {
	// Start begins capturing.
	Start() error

	// Stop ends capturing and releases the stream.
	Stop() error

	// Read blocks until one chunk of interleaved samples is available
	// and copies it into dst, which must hold chunkFrames times channels
	// samples.
	Read(dst []int16) error
}
