// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/formats/wav"
	"github.com/ik5/sphere/internal/audiotest"
)

// Example_roundTrip encodes a short tone and decodes it again.
func Example_roundTrip() {
	p := audio.Params{Channels: 1, SampleWidth: 2, SampleRate: 16000, Frames: 160}

	out := audiotest.NewBuffer(nil)
	sink, err := wav.Encoder{}.Encode(out, p)
	if err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}
	if _, err := audio.Copy(sink, audiotest.NewSineSource(p, 440), 0); err != nil {
		fmt.Printf("Copy error: %v\n", err)
		return
	}
	if err := sink.Close(); err != nil {
		fmt.Printf("Close error: %v\n", err)
		return
	}
	fmt.Printf("WAV size: %d bytes\n", out.Len())

	source, err := wav.Decoder{}.Decode(bytes.NewReader(out.Bytes()))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}
	got := source.Params()
	fmt.Printf("Sample rate: %d Hz\n", got.SampleRate)
	fmt.Printf("Channels: %d\n", got.Channels)
	fmt.Printf("Frames: %d\n", got.Frames)
	// Output:
	// WAV size: 364 bytes
	// Sample rate: 16000 Hz
	// Channels: 1
	// Frames: 160
}

// Example_errorNotWAV shows how non WAV input is reported.
func Example_errorNotWAV() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("NIST_1A\n   1024\n")))
	fmt.Println(errors.Is(err, wav.ErrNotWavFile))
	// Output:
	// true
}
