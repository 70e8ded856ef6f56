// SPDX-License-Identifier: EPL-2.0

package mic

import (
	"fmt"

	"github.com/gilkron/earshot/audio"
	"github.com/gilkron/earshot/pcm"
)

// defaultChunk is the capture chunk size in frames.
const defaultChunk = 1024

var _ audio.Source = (*Microphone)(nil)

// Config selects the capture device and format. The zero value of every
// field means "use the default".
type Config struct {
	// DeviceIndex selects an input device by position in the host's
	// device list. A negative index selects the system default input
	// device. Callers that just want the default should use Default.
	DeviceIndex int

	// SampleRate in Hz. Zero queries the device for its preferred rate.
	SampleRate int

	// ChunkSize in frames per read. Zero means 1024.
	ChunkSize int

	// Channels to capture, 1 or 2. Zero means mono. Stereo capture is
	// downmixed, so the source always yields mono frames.
	Channels int

	// Backend overrides the capture library. Nil means PortAudio.
	Backend Backend
}

// Microphone is an audio.Source capturing live 16-bit mono PCM from an
// input device. Unlike a file source it has no frame count: reads block
// until enough audio has arrived, and the source never reports end of
// stream.
type Microphone struct {
	device     int
	rate       int
	chunk      int
	channels   int
	backend    Backend
	sampleRate int // negotiated on Open
	stream     *micStream
}

// New returns an unopened Microphone for the given configuration.
func New(cfg Config) (*Microphone, error) {
	if cfg.SampleRate < 0 {
		return nil, fmt.Errorf("%w: sample rate %d", audio.ErrInvalidConfig, cfg.SampleRate)
	}
	if cfg.ChunkSize < 0 {
		return nil, fmt.Errorf("%w: chunk size %d", audio.ErrInvalidConfig, cfg.ChunkSize)
	}

	channels := cfg.Channels
	if channels == 0 {
		channels = 1
	}
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d channels", audio.ErrInvalidConfig, cfg.Channels)
	}

	chunk := cfg.ChunkSize
	if chunk == 0 {
		chunk = defaultChunk
	}

	backend := cfg.Backend
	if backend == nil {
		backend = portAudioBackend{}
	}

	return &Microphone{
		device:   cfg.DeviceIndex,
		rate:     cfg.SampleRate,
		chunk:    chunk,
		channels: channels,
		backend:  backend,
	}, nil
}

// Default returns an unopened Microphone on the system default input
// device at its preferred sample rate.
func Default() (*Microphone, error) {
	return New(Config{DeviceIndex: -1})
}

// Open initializes the backend and starts capturing.
func (m *Microphone) Open() error {
	if m.stream != nil {
		return audio.ErrAlreadyOpen
	}

	if err := m.backend.Initialize(); err != nil {
		return err
	}

	rate := m.rate
	if rate == 0 {
		r, err := m.backend.DefaultSampleRate(m.device)
		if err != nil {
			m.backend.Terminate()
			return err
		}
		rate = r
	}

	in, err := m.backend.OpenStream(m.device, m.channels, rate, m.chunk)
	if err != nil {
		m.backend.Terminate()
		return err
	}
	if err := in.Start(); err != nil {
		in.Stop()
		m.backend.Terminate()
		return err
	}

	m.sampleRate = rate
	m.stream = &micStream{
		in:       in,
		channels: m.channels,
		chunk:    m.chunk,
	}
	return nil
}

// Close stops capturing and releases the backend. A Microphone can be
// reopened after Close. Closing a Microphone that is not open is a no-op.
func (m *Microphone) Close() error {
	if m.stream == nil {
		return nil
	}
	stopErr := m.stream.in.Stop()
	m.stream.closed = true
	m.stream = nil
	m.sampleRate = 0

	termErr := m.backend.Terminate()
	if stopErr != nil {
		return stopErr
	}
	return termErr
}

// SampleRate in Hz. Zero unless the Microphone is open.
func (m *Microphone) SampleRate() int { return m.sampleRate }

// SampleWidth is always 2: the Microphone captures 16-bit samples.
func (m *Microphone) SampleWidth() int { return 2 }

// ChunkSize is the capture chunk size in frames.
func (m *Microphone) ChunkSize() int { return m.chunk }

// Stream returns the live frame stream, or nil when the Microphone is
// not open.
func (m *Microphone) Stream() audio.Stream {
	if m.stream == nil {
		return nil
	}
	return m.stream
}

// micStream converts captured samples to little-endian mono bytes. Reads
// always pull whole chunks from the device; leftover frames are kept for
// the next read.
type micStream struct {
	in       InputStream
	channels int
	chunk    int
	closed   bool

	scratch []int16
	pending []byte
}

func (s *micStream) ReadFrames(n int) ([]byte, error) {
	if s.closed {
		return nil, audio.ErrNotOpen
	}
	if n < 0 {
		// Live capture has no end to drain to.
		return nil, fmt.Errorf("%w: live capture has no frame count", audio.ErrInvalidConfig)
	}
	if n == 0 {
		return []byte{}, nil
	}

	want := n * 2 // mono 16-bit
	for len(s.pending) < want {
		chunk, err := s.readChunk()
		if err != nil {
			return nil, err
		}
		s.pending = append(s.pending, chunk...)
	}

	out := s.pending[:want:want]
	s.pending = s.pending[want:]
	return out, nil
}

// readChunk captures one chunk and normalizes it to mono bytes.
func (s *micStream) readChunk() ([]byte, error) {
	if s.scratch == nil {
		s.scratch = make([]int16, s.chunk*s.channels)
	}
	if err := s.in.Read(s.scratch); err != nil {
		return nil, err
	}

	buf := make([]byte, len(s.scratch)*2)
	for i, v := range s.scratch {
		buf[i*2] = byte(v)
		buf[i*2+1] = byte(v >> 8)
	}

	if s.channels == 2 {
		return pcm.DownmixStereo(buf, 2)
	}
	return buf, nil
}
