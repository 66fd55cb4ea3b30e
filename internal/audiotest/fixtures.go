// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"github.com/ik5/sphere/header"
)

// RM1Fields are the header fields of the RM1 speech.sph sample, in file
// order.
func RM1Fields() *header.Info {
	info, err := header.InfoOf(
		header.Field{Name: header.DatabaseID, Value: header.String("RM1")},
		header.Field{Name: header.DatabaseVersion, Value: header.String("1.0")},
		header.Field{Name: header.UtteranceID, Value: header.String("aks0_st0783")},
		header.Field{Name: header.ChannelCount, Value: header.Int(1)},
		header.Field{Name: header.SampleCount, Value: header.Int(48743)},
		header.Field{Name: header.SampleRate, Value: header.Int(16000)},
		header.Field{Name: header.SampleMin, Value: header.Int(-4326)},
		header.Field{Name: header.SampleMax, Value: header.Int(5772)},
		header.Field{Name: header.SampleNBytes, Value: header.Int(2)},
		header.Field{Name: header.SampleByteFormat, Value: header.String("01")},
		header.Field{Name: header.SampleSigBits, Value: header.Int(16)},
	)
	if err != nil {
		panic(err)
	}
	return info
}

// PCMInfo returns the minimal fields for interleaved PCM with the given
// layout and frame count.
func PCMInfo(channels, width, rate int, frames int64) *header.Info {
	info, err := header.InfoOf(
		header.Field{Name: header.ChannelCount, Value: header.Int(int64(channels))},
		header.Field{Name: header.SampleNBytes, Value: header.Int(int64(width))},
		header.Field{Name: header.SampleRate, Value: header.Int(int64(rate))},
		header.Field{Name: header.SampleCount, Value: header.Int(frames)},
	)
	if err != nil {
		panic(err)
	}
	return info
}

// SphereFile returns a complete SPHERE file: the serialized header for
// info followed by data.
func SphereFile(info *header.Info, data []byte) []byte {
	block, err := header.Serialize(info, 0)
	if err != nil {
		panic(err)
	}
	return append(block, data...)
}

// Ramp returns n bytes counting up from 0, wrapping at 256.
func Ramp(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
