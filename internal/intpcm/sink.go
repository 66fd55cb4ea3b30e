// SPDX-License-Identifier: EPL-2.0

package intpcm

import (
	"errors"
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/utils"
)

// ErrClosed is returned by writes to a closed Sink.
var ErrClosed = errors.New("write to closed sink")

// Writer is implemented by the go-audio wav and aiff encoders.
type Writer interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// Sink unpacks host order frames into integer buffers for enc.
type Sink struct {
	enc     Writer
	params  audio.Params
	pending []byte // partial frame carried to the next Write
	intBuf  *goaudio.IntBuffer
	wrote   bool
	closed  bool
}

func NewSink(enc Writer, p audio.Params) *Sink {
	return &Sink{enc: enc, params: p}
}

// Write accepts interleaved frames in host byte order. A trailing partial
// frame is held until the next call.
func (s *Sink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}

	fs := s.params.FrameSize()
	data := p
	if len(s.pending) > 0 {
		data = append(s.pending, p...)
		s.pending = s.pending[:0]
	}
	whole := len(data) - len(data)%fs

	if whole > 0 {
		s.intBuf = intBuffer(s.intBuf, s.params, whole/s.params.SampleWidth)
		utils.UnpackInts(s.intBuf.Data, data[:whole], s.params.SampleWidth, utils.HostOrder())

		if err := s.write(s.intBuf); err != nil {
			return 0, err
		}
	}
	s.pending = append(s.pending, data[whole:]...)

	return len(p), nil
}

// Close finalizes the container. A dangling partial frame is dropped.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	// the go-audio encoders only emit their header with the first buffer
	if !s.wrote {
		if err := s.write(intBuffer(nil, s.params, 0)); err != nil {
			return err
		}
	}
	if err := s.enc.Close(); err != nil {
		return fmt.Errorf("finalizing: %w", err)
	}
	return nil
}

func (s *Sink) write(buf *goaudio.IntBuffer) error {
	s.wrote = true
	if err := s.enc.Write(buf); err != nil {
		return fmt.Errorf("encoding samples: %w", err)
	}
	return nil
}
