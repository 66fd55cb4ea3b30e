// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
)

// BigEndianHost reports whether the running machine stores integers
// most significant byte first.
func BigEndianHost() bool {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	return b[0] == 0
}

// HostOrder returns the byte order of the running machine.
func HostOrder() binary.ByteOrder {
	if BigEndianHost() {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// SwapBytes reverses the byte order of every width-byte sample in buf,
// in place. A trailing partial sample is left untouched. Widths below 2
// are a no-op.
func SwapBytes(buf []byte, width int) {
	if width < 2 {
		return
	}
	for off := 0; off+width <= len(buf); off += width {
		s := buf[off : off+width]
		for i, j := 0, width-1; i < j; i, j = i+1, j-1 {
			s[i], s[j] = s[j], s[i]
		}
	}
}
