// SPDX-License-Identifier: EPL-2.0

// Package raw writes headerless interleaved PCM.
package raw

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/utils"
)

// ErrClosed is returned by writes to a closed sink.
var ErrClosed = errors.New("raw: write to closed sink")

// Encoder writes samples in Order, little-endian when nil. The output
// carries no header, so the layout must be known to whoever reads it.
type Encoder struct {
	Order binary.ByteOrder
}

func (e Encoder) Encode(w io.WriteSeeker, p audio.Params) (audio.Sink, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	order := e.Order
	if order == nil {
		order = binary.LittleEndian
	}

	return &sink{
		w:     w,
		width: p.SampleWidth,
		swap:  p.SampleWidth > 1 && utils.BigEndianHost() != (order == binary.BigEndian),
	}, nil
}

type sink struct {
	w      io.Writer
	width  int
	swap   bool
	buf    []byte
	closed bool
}

func (s *sink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}

	data := p
	if s.swap {
		s.buf = append(s.buf[:0], p...)
		utils.SwapBytes(s.buf, s.width)
		data = s.buf
	}

	n, err := s.w.Write(data)
	if err != nil {
		return n, fmt.Errorf("writing raw pcm: %w", err)
	}
	return n, nil
}

// Close marks the sink closed. The underlying writer is owned by the
// caller.
func (s *sink) Close() error {
	s.closed = true
	return nil
}
