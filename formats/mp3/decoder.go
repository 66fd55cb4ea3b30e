// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/utils"
)

const (
	// go-mp3 always produces 16-bit little-endian stereo
	channels    = 2
	sampleWidth = 2
	frameSize   = channels * sampleWidth
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec    mp3Reader
	params audio.Params
	swap   bool
}

func (s *source) Params() audio.Params { return s.params }
func (s *source) Close() error         { return nil }

// Read fills p with whole frames in host byte order.
func (s *source) Read(p []byte) (int, error) {
	want := len(p) - len(p)%frameSize
	if want == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.ErrShortBuffer
	}

	n, err := s.dec.Read(p[:want])
	// complete a split frame so callers only ever see whole frames
	if rem := n % frameSize; rem != 0 && err == nil {
		var m int
		m, err = io.ReadFull(s.dec, p[n:n+frameSize-rem])
		n += m
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = io.EOF
	}
	n -= n % frameSize

	if s.swap {
		utils.SwapBytes(p[:n], sampleWidth)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("decoding mp3: %w", err)
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	frames := int64(-1)
	if l := dec.Length(); l >= 0 {
		frames = l / frameSize
	}

	return &source{
		dec: dec,
		params: audio.Params{
			Channels:    channels,
			SampleWidth: sampleWidth,
			SampleRate:  dec.SampleRate(),
			Frames:      frames,
		},
		swap: utils.BigEndianHost(),
	}, nil
}
