// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"github.com/ik5/sphere"
	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/formats/aiff"
	"github.com/ik5/sphere/formats/mp3"
	"github.com/ik5/sphere/formats/raw"
	"github.com/ik5/sphere/formats/vorbis"
	"github.com/ik5/sphere/formats/wav"
	"github.com/ik5/sphere/wavelike"
)

// Format keys, also used as file suffixes.
const (
	FormatSphere = "sph"
	FormatWAV    = "wav"
	FormatAIFF   = "aiff"
	FormatOgg    = "ogg"
	FormatMP3    = "mp3"
	FormatRaw    = "raw"
)

// DefaultRegistry returns a registry with every supported format. Input
// is sniffed in the order SPHERE, WAV, AIFF, Ogg Vorbis, MP3; MP3 goes
// last because its frame sync search is the least strict. opts are
// passed to the SPHERE streams.
func DefaultRegistry(opts ...sphere.Option) *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register(FormatSphere, wavelike.Decoder{Options: opts})
	reg.Register(FormatWAV, wav.Decoder{})
	reg.Register(FormatAIFF, aiff.Decoder{})
	reg.Register(FormatOgg, vorbis.Decoder{})
	reg.Register(FormatMP3, mp3.Decoder{})

	reg.RegisterEncoder(FormatSphere, wavelike.Encoder{Options: opts})
	reg.RegisterEncoder(FormatWAV, wav.Encoder{})
	reg.RegisterEncoder(FormatAIFF, aiff.Encoder{})
	reg.RegisterEncoder(FormatRaw, raw.Encoder{})

	return reg
}

// DefaultOutputFormat is the format a file is converted to when none is
// requested: WAV for SPHERE input, SPHERE for everything else.
func DefaultOutputFormat(input string) string {
	if input == FormatSphere {
		return FormatWAV
	}
	return FormatSphere
}
