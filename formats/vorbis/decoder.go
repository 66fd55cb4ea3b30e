// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/utils"
)

// Decoded float samples are quantized to 16 bits.
const sampleWidth = 2

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec    oggReader
	params audio.Params
	buf    []float32 // interleaved values from the decoder
	ints   []int
}

func (s *source) Params() audio.Params { return s.params }
func (s *source) Close() error         { return nil }

// Read fills p with whole 16-bit frames in host byte order.
func (s *source) Read(p []byte) (int, error) {
	fs := s.params.FrameSize()
	frames := len(p) / fs
	if frames == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.ErrShortBuffer
	}

	values := frames * s.params.Channels
	if cap(s.buf) < values {
		s.buf = make([]float32, values)
		s.ints = make([]int, values)
	}
	s.buf, s.ints = s.buf[:values], s.ints[:values]

	// Read returns a count of values, always whole frames
	n, err := s.dec.Read(s.buf)
	n -= n % s.params.Channels
	utils.QuantizeInt16(s.ints, s.buf[:n])

	written := utils.PackInts(p, s.ints[:n], sampleWidth, utils.HostOrder())
	if err != nil && !errors.Is(err, io.EOF) {
		return written, fmt.Errorf("decoding vorbis: %w", err)
	}
	return written, err
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	frames := int64(-1)
	if l := dec.Length(); l > 0 {
		frames = l
	}

	return &source{
		dec: dec,
		params: audio.Params{
			Channels:    dec.Channels(),
			SampleWidth: sampleWidth,
			SampleRate:  dec.SampleRate(),
			Frames:      frames,
		},
	}, nil
}
