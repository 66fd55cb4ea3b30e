// SPDX-License-Identifier: EPL-2.0

// Package intpcm bridges go-audio integer buffers and the byte oriented
// audio.Source and audio.Sink interfaces.
package intpcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/utils"
)

// Reader is implemented by the go-audio wav and aiff decoders.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source packs decoded integer samples into host order bytes.
type Source struct {
	dec    Reader
	params audio.Params
	intBuf *goaudio.IntBuffer
	eof    bool
}

func NewSource(dec Reader, p audio.Params) *Source {
	return &Source{dec: dec, params: p}
}

func (s *Source) Params() audio.Params { return s.params }
func (s *Source) Close() error         { return nil }

// Read decodes whole frames into p.
func (s *Source) Read(p []byte) (int, error) {
	fs := s.params.FrameSize()
	frames := len(p) / fs
	if frames == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.ErrShortBuffer
	}
	if s.eof {
		return 0, io.EOF
	}

	s.intBuf = intBuffer(s.intBuf, s.params, frames*s.params.Channels)

	n, err := s.dec.PCMBuffer(s.intBuf)
	if errors.Is(err, io.EOF) {
		s.eof, err = true, nil
	}
	if err != nil && n == 0 {
		return 0, fmt.Errorf("decoding samples: %w", err)
	}
	if n == 0 {
		s.eof = true
		return 0, io.EOF
	}

	// a truncated data chunk can end mid frame
	n -= n % s.params.Channels

	return utils.PackInts(p, s.intBuf.Data[:n], s.params.SampleWidth, utils.HostOrder()), err
}

// intBuffer returns buf resized to hold samples values, allocating a new
// one when it is too small.
func intBuffer(buf *goaudio.IntBuffer, p audio.Params, samples int) *goaudio.IntBuffer {
	if buf == nil || cap(buf.Data) < samples {
		buf = &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: p.Channels,
				SampleRate:  p.SampleRate,
			},
			Data:           make([]int, samples),
			SourceBitDepth: p.SampleWidth * 8,
		}
	}
	buf.Data = buf.Data[:samples]
	return buf
}
