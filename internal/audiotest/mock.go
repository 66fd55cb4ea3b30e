// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"

	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/utils"
)

// MockSource is a test helper that generates integer PCM frames.
// It implements audio.Source.
type MockSource struct {
	params    audio.Params
	generated int // frames generated so far
	waveform  func(frame int, channel int) int
	closed    bool
}

// NewMockSource creates a source of p.Frames frames whose samples are
// produced by waveform.
func NewMockSource(p audio.Params, waveform func(frame int, channel int) int) *MockSource {
	return &MockSource{params: p, waveform: waveform}
}

// NewRampSource creates a source whose samples count up from 0, offset
// by 1000 per channel, which makes misplaced bytes easy to spot.
func NewRampSource(p audio.Params) *MockSource {
	return NewMockSource(p, func(frame, channel int) int {
		return frame + 1000*channel
	})
}

// NewSineSource creates a source with a full scale sine wave.
func NewSineSource(p audio.Params, frequency float64) *MockSource {
	peak := float64(int(1)<<(8*p.SampleWidth-1) - 1)
	return NewMockSource(p, func(frame, channel int) int {
		t := float64(frame) / float64(p.SampleRate)
		return int(peak * math.Sin(2*math.Pi*frequency*t))
	})
}

func (m *MockSource) Params() audio.Params { return m.params }

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Reset allows re-reading from frame 0.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) Read(p []byte) (int, error) {
	total := int(m.params.Frames)
	if m.generated >= total {
		return 0, io.EOF
	}

	fs := m.params.FrameSize()
	if len(p) < fs {
		return 0, io.ErrShortBuffer
	}
	frames := min(len(p)/fs, total-m.generated)
	order := utils.HostOrder()

	for f := range frames {
		for ch := range m.params.Channels {
			off := f*fs + ch*m.params.SampleWidth
			utils.PutSample(p[off:], m.waveform(m.generated+f, ch), m.params.SampleWidth, order)
		}
	}
	m.generated += frames

	return frames * fs, nil
}
