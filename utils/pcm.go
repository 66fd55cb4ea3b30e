// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
)

// PutSample stores v as a width-byte integer sample at the start of dst.
// Width 1 is stored unsigned, as in 8-bit WAV data; wider samples are
// signed two's complement in the given order. dst must hold width bytes.
func PutSample(dst []byte, v int, width int, order binary.ByteOrder) {
	switch width {
	case 1:
		dst[0] = byte(v)
	case 2:
		order.PutUint16(dst, uint16(int16(v)))
	case 3:
		u := uint32(int32(v))
		if order == binary.BigEndian {
			dst[0], dst[1], dst[2] = byte(u>>16), byte(u>>8), byte(u)
		} else {
			dst[0], dst[1], dst[2] = byte(u), byte(u>>8), byte(u>>16)
		}
	case 4:
		order.PutUint32(dst, uint32(int32(v)))
	}
}

// Sample reads one width-byte integer sample from the start of src, the
// inverse of PutSample.
func Sample(src []byte, width int, order binary.ByteOrder) int {
	switch width {
	case 1:
		return int(src[0])
	case 2:
		return int(int16(order.Uint16(src)))
	case 3:
		var u uint32
		if order == binary.BigEndian {
			u = uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
		} else {
			u = uint32(src[2])<<16 | uint32(src[1])<<8 | uint32(src[0])
		}
		// sign extend from bit 23
		return int(int32(u<<8) >> 8)
	case 4:
		return int(int32(order.Uint32(src)))
	default:
		return 0
	}
}

// PackInts writes len(src) samples of the given width into dst and
// returns the number of bytes used. dst must hold len(src)*width bytes.
func PackInts(dst []byte, src []int, width int, order binary.ByteOrder) int {
	for i, v := range src {
		PutSample(dst[i*width:], v, width, order)
	}
	return len(src) * width
}

// UnpackInts reads len(src)/width samples into dst and returns how many
// were stored, bounded by len(dst).
func UnpackInts(dst []int, src []byte, width int, order binary.ByteOrder) int {
	n := min(len(src)/width, len(dst))
	for i := range n {
		dst[i] = Sample(src[i*width:], width, order)
	}
	return n
}
