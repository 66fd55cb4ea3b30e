// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis. Vorbis decodes to
// floating point, which is quantized to 16-bit signed PCM in host byte
// order, clamping values outside [-1, 1].
//
// # Decoding Ogg Vorbis Files
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	p := source.Params() // channels and rate of the stream
//
// # Limitations
//
// Vorbis writing is not supported.
package vorbis
