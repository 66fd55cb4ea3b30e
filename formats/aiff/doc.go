// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding and encoding.
//
// This package uses github.com/go-audio/aiff. Samples are big-endian on
// disk and are exchanged as interleaved integer PCM in host byte order.
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aiff")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	p := source.Params()
//
// Files with no sample frames are rejected as ErrNotAiffFile.
//
// # Writing AIFF Files
//
//	sink, err := aiff.Encoder{}.Encode(file, p)
//	_, err = audio.Copy(sink, source, 0)
//	err = sink.Close()
package aiff
