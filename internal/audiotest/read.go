// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"

	"github.com/ik5/sphere/audio"
)

// ReadAll drains src with a frame aligned buffer. io.ReadAll may offer a
// source less than one frame of space, which sources reject.
func ReadAll(src audio.Source) ([]byte, error) {
	buf := make([]byte, src.Params().FrameSize()*256)

	var out []byte
	for {
		n, err := src.Read(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}
