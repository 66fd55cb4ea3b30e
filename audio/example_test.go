// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/formats/wav"
	"github.com/ik5/sphere/internal/audiotest"
	"github.com/ik5/sphere/wavelike"
)

// ExampleRegistry_Detect picks the decoder that accepts the input.
func ExampleRegistry_Detect() {
	reg := audio.NewRegistry()
	reg.Register("sph", wavelike.Decoder{})
	reg.Register("wav", wav.Decoder{})

	p := audio.Params{Channels: 1, SampleWidth: 2, SampleRate: 8000, Frames: 80}
	file := audiotest.NewBuffer(nil)
	sink, _ := wav.Encoder{}.Encode(file, p)
	_, _ = audio.Copy(sink, audiotest.NewRampSource(p), 0)
	_ = sink.Close()

	format, src, err := reg.Detect(bytes.NewReader(file.Bytes()))
	if err != nil {
		fmt.Printf("Detect error: %v\n", err)
		return
	}
	defer src.Close()

	fmt.Printf("Format: %s\n", format)
	fmt.Printf("Frames: %d\n", src.Params().Frames)

	_, _, err = reg.Detect(bytes.NewReader([]byte("plain text")))
	fmt.Println(errors.Is(err, audio.ErrUnsupportedFormat))
	// Output:
	// Format: wav
	// Frames: 80
	// true
}

// ExampleCopy streams a source into a sink.
func ExampleCopy() {
	p := audio.Params{Channels: 2, SampleWidth: 2, SampleRate: 16000, Frames: 1000}

	out := audiotest.NewBuffer(nil)
	sink, err := wavelike.Encoder{}.Encode(out, p)
	if err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}

	n, err := audio.Copy(sink, audiotest.NewSineSource(p, 440), 256)
	if err != nil {
		fmt.Printf("Copy error: %v\n", err)
		return
	}
	if err := sink.Close(); err != nil {
		fmt.Printf("Close error: %v\n", err)
		return
	}

	fmt.Printf("Copied: %d bytes\n", n)
	fmt.Printf("File: %d bytes\n", out.Len())
	// Output:
	// Copied: 4000 bytes
	// File: 5024 bytes
}
