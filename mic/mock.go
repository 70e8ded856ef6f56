// SPDX-License-Identifier: EPL-2.0

package mic

import "sync"

// MockBackend is a Backend serving canned samples, for tests and for
// callers that want to exercise capture pipelines without hardware.
type MockBackend struct {
	// Samples are served in order, one chunk per read. When they run
	// out the stream keeps delivering silence.
	Samples []int16

	// DefaultRate is reported as the device's preferred sample rate.
	// Zero means 16000.
	DefaultRate int

	// InitErr, RateErr, OpenErr and StartErr make the corresponding
	// call fail.
	InitErr  error
	RateErr  error
	OpenErr  error
	StartErr error

	mu          sync.Mutex
	initialized bool
	terminated  bool
	started     bool
	stopped     bool
	pos         int
}

func (m *MockBackend) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.InitErr != nil {
		return m.InitErr
	}
	m.initialized = true
	m.terminated = false
	return nil
}

func (m *MockBackend) Terminate() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.terminated = true
	return nil
}

func (m *MockBackend) DefaultSampleRate(device int) (int, error) {
	if m.RateErr != nil {
		return 0, m.RateErr
	}
	if m.DefaultRate == 0 {
		return 16000, nil
	}
	return m.DefaultRate, nil
}

func (m *MockBackend) OpenStream(device, channels, sampleRate, chunkFrames int) (InputStream, error) {
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	return &mockStream{backend: m}, nil
}

// Running reports whether a stream has been started and not yet stopped.
func (m *MockBackend) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started && !m.stopped
}

// Terminated reports whether the backend has been released.
func (m *MockBackend) Terminated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.terminated
}

type mockStream struct {
	backend *MockBackend
}

func (s *mockStream) Start() error {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	if s.backend.StartErr != nil {
		return s.backend.StartErr
	}
	s.backend.started = true
	s.backend.stopped = false
	return nil
}

func (s *mockStream) Stop() error {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	s.backend.stopped = true
	return nil
}

func (s *mockStream) Read(dst []int16) error {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	n := copy(dst, s.backend.Samples[s.backend.pos:])
	s.backend.pos += n
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
	return nil
}
