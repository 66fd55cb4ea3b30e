// SPDX-License-Identifier: EPL-2.0

// Package wavelike presents SPHERE files through the parameter names of
// the wave module family.
//
// SPHERE names its layout fields channel_count, sample_n_bytes,
// sample_rate and sample_count. Wave-style readers call them channels,
// sample width, frame rate and frame count. Reader wraps a
// *sphere.Reader and exposes the latter:
//
//	r, err := wavelike.Open("speech.sph")
//	fmt.Println(r.NumChannels(), r.SampleWidth(), r.FrameRate(), r.NFrames())
//
// ToWave and FromWave translate between the two vocabularies, and
// Decoder and Encoder plug SPHERE into an audio.Registry.
//
// Reader also implements the go-audio Format and PCMBuffer methods so
// SPHERE input can feed code written against github.com/go-audio.
package wavelike
