// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/internal/intpcm"
)

// Encoder writes uncompressed AIFF files. The FORM and SSND sizes are
// patched when the sink is closed.
type Encoder struct{}

func (Encoder) Encode(w io.WriteSeeker, p audio.Params) (audio.Sink, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	enc := aiff.NewEncoder(w, p.SampleRate, p.SampleWidth*8, p.Channels)
	return intpcm.NewSink(enc, p), nil
}
