// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/internal/intpcm"
)

// Decoder reads uncompressed AIFF files of 8, 16, 24 or 32 bit samples.
type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	params := audio.Params{
		Channels:    format.NumChannels,
		SampleWidth: int(dec.BitDepth) / 8,
		SampleRate:  format.SampleRate,
		Frames:      int64(dec.NumSampleFrames),
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}

	return intpcm.NewSource(dec, params), nil
}
