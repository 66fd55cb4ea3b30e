// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/internal/intpcm"
)

// Encoder writes PCM WAV files. The RIFF sizes are patched when the sink
// is closed, so w must stay seekable until then.
type Encoder struct{}

func (Encoder) Encode(w io.WriteSeeker, p audio.Params) (audio.Sink, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	enc := wav.NewEncoder(w, p.SampleRate, p.SampleWidth*8, p.Channels, pcmFormat)
	return intpcm.NewSink(enc, p), nil
}
