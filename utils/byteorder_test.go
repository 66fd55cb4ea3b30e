// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestSwapBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    []byte
		width int
		want  []byte
	}{
		{"16 bit", []byte{1, 2, 3, 4}, 2, []byte{2, 1, 4, 3}},
		{"24 bit", []byte{1, 2, 3, 4, 5, 6}, 3, []byte{3, 2, 1, 6, 5, 4}},
		{"32 bit", []byte{1, 2, 3, 4}, 4, []byte{4, 3, 2, 1}},
		{"8 bit untouched", []byte{1, 2, 3}, 1, []byte{1, 2, 3}},
		{"partial tail untouched", []byte{1, 2, 3}, 2, []byte{2, 1, 3}},
		{"empty", nil, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := bytes.Clone(tt.in)
			SwapBytes(buf, tt.width)
			if !bytes.Equal(buf, tt.want) {
				t.Errorf("SwapBytes(%v, %d) = %v, want %v", tt.in, tt.width, buf, tt.want)
			}
		})
	}
}

func TestSwapBytes_Involution(t *testing.T) {
	t.Parallel()

	orig := []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80}
	buf := bytes.Clone(orig)

	SwapBytes(buf, 4)
	SwapBytes(buf, 4)

	if !bytes.Equal(buf, orig) {
		t.Errorf("double swap = %v, want %v", buf, orig)
	}
}

func TestHostOrder(t *testing.T) {
	t.Parallel()

	var b [4]byte
	HostOrder().PutUint32(b[:], 0x01020304)

	var native [4]byte
	binary.NativeEndian.PutUint32(native[:], 0x01020304)

	if b != native {
		t.Errorf("HostOrder() wrote %v, native order writes %v", b, native)
	}
	if BigEndianHost() != (b[0] == 1) {
		t.Errorf("BigEndianHost() = %v for layout %v", BigEndianHost(), b)
	}
}

func BenchmarkSwapBytes(b *testing.B) {
	buf := make([]byte, 64*1024)

	b.ReportAllocs()

	for b.Loop() {
		SwapBytes(buf, 2)
	}
}
