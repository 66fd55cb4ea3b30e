// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/internal/intpcm"
)

const (
	pcmFormat        = 1      // WAVE_FORMAT_PCM
	extensibleFormat = 0xFFFE // WAVE_FORMAT_EXTENSIBLE, common for 24 bit PCM
)

// Decoder reads PCM WAV files of 8, 16, 24 or 32 bit samples.
type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	dec := wav.NewDecoder(r)
	// IsValidFile rejects files without samples, which are valid here
	dec.ReadInfo()
	if dec.Err() != nil || dec.NumChans == 0 {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != pcmFormat && dec.WavAudioFormat != extensibleFormat {
		return nil, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	params := audio.Params{
		Channels:    int(dec.NumChans),
		SampleWidth: int(dec.BitDepth) / 8,
		SampleRate:  int(dec.SampleRate),
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}
	params.Frames = dec.PCMLen() / int64(params.FrameSize())

	return intpcm.NewSource(dec, params), nil
}
