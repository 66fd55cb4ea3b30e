// SPDX-License-Identifier: EPL-2.0

package sphere

import (
	"fmt"

	"github.com/ik5/sphere/header"
	"github.com/ik5/sphere/utils"
)

// bigEndianHost is a variable so tests can force the swapping path.
var bigEndianHost = utils.BigEndianHost()

// needsSwap reports whether samples of the given width are swapped
// between the stream and the caller. Stored data is assumed to be little
// endian, sample_byte_format is not consulted.
func needsSwap(width int) bool {
	return bigEndianHost && width > 1
}

// layout is the frame geometry derived from a header.
type layout struct {
	channels int
	width    int
}

func (l layout) frameSize() int { return l.channels * l.width }

// checkParams reports the first required field missing from info. The
// sample rate is required unless sample_coding names something other
// than pcm or ulaw.
func checkParams(info *header.Info) error {
	if !info.Has(header.ChannelCount) {
		return ErrMissingChannelCount
	}
	if !info.Has(header.SampleNBytes) {
		return ErrMissingSampleWidth
	}
	if needsRate(info) && !info.Has(header.SampleRate) {
		return ErrMissingSampleRate
	}
	return nil
}

func needsRate(info *header.Info) bool {
	v, ok := info.Get(header.SampleCoding)
	if !ok {
		return true
	}
	coding, _ := v.Text()
	return coding == "pcm" || coding == "ulaw"
}

// frameLayout extracts channel_count and sample_n_bytes. Both must be
// positive integers.
func frameLayout(info *header.Info) (layout, error) {
	if !info.Has(header.ChannelCount) {
		return layout{}, ErrMissingChannelCount
	}
	if !info.Has(header.SampleNBytes) {
		return layout{}, ErrMissingSampleWidth
	}

	ch, ok := info.Int(header.ChannelCount)
	if !ok || ch < 1 {
		return layout{}, fmt.Errorf("%w: %s = %v", ErrInvalidParams, header.ChannelCount, field(info, header.ChannelCount))
	}
	w, ok := info.Int(header.SampleNBytes)
	if !ok || w < 1 {
		return layout{}, fmt.Errorf("%w: %s = %v", ErrInvalidParams, header.SampleNBytes, field(info, header.SampleNBytes))
	}

	return layout{channels: int(ch), width: int(w)}, nil
}

func field(info *header.Info, name string) header.Value {
	v, _ := info.Get(name)
	return v
}
