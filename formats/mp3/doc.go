// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Output Format
//
//   - 16-bit signed PCM in host byte order
//   - Channels: always 2, mono files are duplicated by the decoder
//   - Sample rate: that of the MP3 stream
//
// The frame count is known up front because the decoder scans the whole
// seekable input when it is opened.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// # Limitations
//
// MP3 writing is not supported.
package mp3
