// SPDX-License-Identifier: EPL-2.0

package sphere_test

import (
	"fmt"

	"github.com/ik5/sphere"
	"github.com/ik5/sphere/header"
	"github.com/ik5/sphere/internal/audiotest"
)

// Example_writeThenRead writes frames without declaring sample_count and
// reads the patched file back.
func Example_writeThenRead() {
	file := audiotest.NewBuffer(nil)

	w := sphere.OpenWrite(file)
	_ = w.Set(header.ChannelCount, 1)
	_ = w.Set(header.SampleNBytes, 2)
	_ = w.Set(header.SampleRate, 16000)

	if err := w.WriteFramesRaw(make([]byte, 2*160)); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}
	if err := w.Close(); err != nil {
		fmt.Printf("close error: %v\n", err)
		return
	}

	_, _ = file.Seek(0, 0)
	r, err := sphere.OpenRead(file)
	if err != nil {
		fmt.Printf("open error: %v\n", err)
		return
	}
	defer r.Close()

	n, _ := r.NFrames()
	fmt.Printf("File size: %d bytes\n", file.Len())
	fmt.Printf("Frames: %d\n", n)
	fmt.Printf("Fields: %v\n", r.Params())
	// Output:
	// File size: 1344 bytes
	// Frames: 160
	// Fields: {channel_count: 1, sample_n_bytes: 2, sample_rate: 16000, sample_count: 160}
}

// Example_setPos shows that positions are frame indexes.
func Example_setPos() {
	info := audiotest.PCMInfo(2, 2, 8000, 4)
	data := audiotest.Ramp(16)

	r, err := sphere.OpenRead(audiotest.NewBuffer(audiotest.SphereFile(info, data)))
	if err != nil {
		fmt.Printf("open error: %v\n", err)
		return
	}

	_ = r.SetPos(2)
	frame, _ := r.ReadFrames(1)

	fmt.Printf("Position after read: %d\n", r.Tell())
	fmt.Printf("Frame bytes: %v\n", frame)
	fmt.Printf("Out of range: %v\n", r.SetPos(5))
	// Output:
	// Position after read: 3
	// Frame bytes: [8 9 10 11]
	// Out of range: position not in range: 5 > 4
}
