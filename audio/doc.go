// SPDX-License-Identifier: EPL-2.0

// Package audio defines the format-neutral surface shared by the SPHERE
// streams and the other containers the converter understands.
//
// # Source and Sink
//
// Every container is reduced to interleaved integer PCM:
//
//	type Source interface {
//	    Params() Params
//	    Read(p []byte) (int, error) // whole frames, host byte order
//	    Close() error
//	}
//
// A Sink is the writing counterpart, an io.Writer whose Close finalizes
// the container (for example by patching sizes into its header).
//
// Params carries the layout that every container agrees on: channel
// count, bytes per sample, sample rate and, when known, the frame count.
//
// # Format Registry
//
// The registry maps format keys to decoders and encoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("sph", wavelike.Decoder{})
//	registry.Register("wav", wav.Decoder{})
//	registry.RegisterEncoder("wav", wav.Encoder{})
//
//	format, src, err := registry.Detect(file)
//
// Detect tries the decoders in registration order and rewinds the input
// before each attempt, so the most specific formats should be
// registered first.
//
// # Copying
//
// Copy moves every frame from a Source to a Sink:
//
//	n, err := audio.Copy(sink, src, audio.DefaultFrames)
//
// Sources return io.EOF at the end of the stream; Copy treats it as
// success.
package audio
