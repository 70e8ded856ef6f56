// SPDX-License-Identifier: EPL-2.0

package mic

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// portAudioBackend drives real capture hardware through PortAudio.
type portAudioBackend struct{}

func (portAudioBackend) Initialize() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("initializing portaudio: %w", err)
	}
	return nil
}

func (portAudioBackend) Terminate() error {
	return portaudio.Terminate()
}

func (b portAudioBackend) DefaultSampleRate(device int) (int, error) {
	dev, err := b.device(device)
	if err != nil {
		return 0, err
	}
	return int(dev.DefaultSampleRate), nil
}

func (b portAudioBackend) OpenStream(device, channels, sampleRate, chunkFrames int) (InputStream, error) {
	dev, err := b.device(device)
	if err != nil {
		return nil, err
	}

	params := portaudio.HighLatencyParameters(dev, nil)
	params.Input.Channels = channels
	params.SampleRate = float64(sampleRate)
	params.FramesPerBuffer = chunkFrames

	buf := make([]int16, chunkFrames*channels)
	stream, err := portaudio.OpenStream(params, buf)
	if err != nil {
		return nil, fmt.Errorf("opening capture stream: %w", err)
	}
	return &portAudioStream{stream: stream, buf: buf}, nil
}

func (portAudioBackend) device(index int) (*portaudio.DeviceInfo, error) {
	if index < 0 {
		dev, err := portaudio.DefaultInputDevice()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoDefaultDevice, err)
		}
		return dev, nil
	}

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}
	if index >= len(devices) {
		return nil, fmt.Errorf("%w: index %d", ErrDeviceUnavailable, index)
	}
	dev := devices[index]
	if dev.MaxInputChannels < 1 {
		return nil, fmt.Errorf("%w: device %d has no input channels", ErrDeviceUnavailable, index)
	}
	return dev, nil
}

// portAudioStream reads chunks into the buffer registered at open time.
type portAudioStream struct {
	stream *portaudio.Stream
	buf    []int16
}

func (s *portAudioStream) Start() error {
	return s.stream.Start()
}

func (s *portAudioStream) Stop() error {
	if err := s.stream.Stop(); err != nil {
		s.stream.Close()
		return err
	}
	return s.stream.Close()
}

func (s *portAudioStream) Read(dst []int16) error {
	err := s.stream.Read()
	// An input overflow means the host dropped frames between reads;
	// the chunk that did arrive is still valid.
	if err != nil && err != portaudio.InputOverflowed {
		return fmt.Errorf("reading capture stream: %w", err)
	}
	copy(dst, s.buf)
	return nil
}
