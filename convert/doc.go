// SPDX-License-Identifier: EPL-2.0

// Package convert transcodes audio files to and from NIST SPHERE.
//
// The input format is sniffed, not taken from the file name:
//
//	res, err := convert.Convert("speech.sph", convert.Options{})
//	// res.Output == "speech.wav"
//
//	res, err = convert.Convert("take1.wav", convert.Options{
//	    Format: convert.FormatRaw,
//	    Output: "out/",
//	})
//	// res.Output == "out/take1.raw"
//
// PCM is copied unchanged. SPHERE output carries channel_count,
// sample_n_bytes, sample_count and sample_rate taken from the input.
// Raw output is little-endian with no header.
package convert
