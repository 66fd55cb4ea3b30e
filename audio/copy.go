// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// DefaultFrames is the number of frames Copy moves per read.
const DefaultFrames = 4096

// Copy streams every frame of src into dst and returns the number of
// bytes written. bufFrames below 1 selects DefaultFrames.
func Copy(dst Sink, src Source, bufFrames int) (int64, error) {
	fs := src.Params().FrameSize()
	if fs < 1 {
		return 0, fmt.Errorf("%w: frame size %d", ErrInvalidParams, fs)
	}
	if bufFrames < 1 {
		bufFrames = DefaultFrames
	}

	buf := make([]byte, bufFrames*fs)
	var total int64

	for {
		n, err := src.Read(buf)
		if n > 0 {
			m, werr := dst.Write(buf[:n])
			total += int64(m)
			if werr != nil {
				return total, fmt.Errorf("%w", werr)
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return total, fmt.Errorf("%w", err)
		}
	}

	return total, nil
}
