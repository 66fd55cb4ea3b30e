// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Both directions use github.com/go-audio/wav and exchange interleaved
// integer PCM in host byte order, the same representation the sphere
// package reads and writes.
//
// # Supported Formats
//
//   - PCM 8, 16, 24 and 32 bit (8 bit samples are unsigned)
//   - WAVE_FORMAT_EXTENSIBLE files carrying PCM
//   - Any channel count and sample rate
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	p := source.Params() // channels, sample width, rate, frames
//
//	buf := make([]byte, p.FrameSize()*1024)
//	n, err := source.Read(buf)
//
// Read only ever returns whole frames.
//
// # Writing WAV Files
//
//	file, _ := os.Create("output.wav")
//	sink, err := wav.Encoder{}.Encode(file, p)
//	_, err = audio.Copy(sink, source, 0)
//	err = sink.Close() // patches the RIFF and data chunk sizes
//
// # Error Handling
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: compressed or floating point data
//   - ErrUnsupportedBitDepth: sample size other than 8, 16, 24 or 32 bits
//   - ErrUnsupportedWavLayout: no data chunk, or an unusable fmt chunk
package wav
