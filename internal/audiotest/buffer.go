// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"
	"io"
)

// Buffer is an in-memory io.ReadWriteSeeker. Writes past the end grow
// the buffer, filling any gap with zeros, like a file.
type Buffer struct {
	data   []byte
	offset int64
}

// NewBuffer returns a Buffer holding a copy of data, positioned at 0.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: append([]byte(nil), data...)}
}

// Bytes returns the whole content regardless of the offset.
func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) Len() int { return len(b.data) }

func (b *Buffer) Read(p []byte) (int, error) {
	if b.offset >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.offset:])
	b.offset += int64(n)
	return n, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	end := b.offset + int64(len(p))
	if end > int64(len(b.data)) {
		b.data = append(b.data, make([]byte, end-int64(len(b.data)))...)
	}
	copy(b.data[b.offset:], p)
	b.offset = end
	return len(p), nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.offset + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if abs < 0 {
		return 0, errors.New("negative position")
	}

	b.offset = abs
	return abs, nil
}

// SeekCounter wraps a stream and records every Seek call.
type SeekCounter struct {
	io.ReadWriteSeeker

	// Offsets holds the absolute offset each Seek landed on.
	Offsets []int64
}

func NewSeekCounter(rws io.ReadWriteSeeker) *SeekCounter {
	return &SeekCounter{ReadWriteSeeker: rws}
}

func (s *SeekCounter) Seek(offset int64, whence int) (int64, error) {
	abs, err := s.ReadWriteSeeker.Seek(offset, whence)
	if err == nil {
		s.Offsets = append(s.Offsets, abs)
	}
	return abs, err
}

// Seeks returns the number of successful Seek calls.
func (s *SeekCounter) Seeks() int { return len(s.Offsets) }

// Reset forgets the recorded seeks.
func (s *SeekCounter) Reset() { s.Offsets = s.Offsets[:0] }

// NopSeeker hides the Seek method of a writer so tests can exercise
// sinks that cannot rewind.
type NopSeeker struct {
	io.Writer
}

func (NopSeeker) Seek(int64, int) (int64, error) {
	return 0, errors.New("seek not supported")
}
