// SPDX-License-Identifier: EPL-2.0

package sphere

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ik5/sphere/header"
	"github.com/ik5/sphere/utils"
)

// Reader reads frames from a SPHERE stream.
//
// Positions passed to SetPos and returned by Tell are frame indexes
// relative to the first data byte, not file offsets. A Reader is not
// safe for concurrent use.
type Reader struct {
	src    io.ReadSeeker
	closer io.Closer // set when the Reader opened the file itself
	cfg    config

	info       *header.Info
	headerSize int
	dataStart  int64
	layout     layout

	pos         int64
	seekPending bool
	closed      bool
}

// OpenRead parses the header at the current offset of src and returns a
// Reader positioned at frame 0. src stays owned by the caller and is not
// closed on failure or by Close.
func OpenRead(src io.ReadSeeker, opts ...Option) (*Reader, error) {
	return openRead(src, nil, newConfig(opts))
}

// Open opens the named file for reading. The file is closed when the
// header cannot be read and by Reader.Close.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	r, err := openRead(f, f, newConfig(opts))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

func openRead(src io.ReadSeeker, closer io.Closer, cfg config) (*Reader, error) {
	info, size, err := cfg.codec.Parse(src)
	if err != nil {
		return nil, err
	}

	l, err := frameLayout(info)
	if err != nil {
		return nil, err
	}

	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("locating sample data: %w", err)
	}

	return &Reader{
		src:        src,
		closer:     closer,
		cfg:        cfg,
		info:       info,
		headerSize: size,
		dataStart:  start,
		layout:     l,
	}, nil
}

// Params returns a copy of the header fields in file order.
func (r *Reader) Params() *header.Info { return r.info.Clone() }

// NFrames returns the declared sample_count. ok is false when the header
// has no integer sample_count.
func (r *Reader) NFrames() (n int64, ok bool) {
	return r.info.Int(header.SampleCount)
}

// SampleRate returns the declared sample_rate, or 0 when absent.
func (r *Reader) SampleRate() int {
	n, _ := r.info.Int(header.SampleRate)
	return int(n)
}

func (r *Reader) Channels() int    { return r.layout.channels }
func (r *Reader) SampleWidth() int { return r.layout.width }
func (r *Reader) FrameSize() int   { return r.layout.frameSize() }
func (r *Reader) HeaderSize() int  { return r.headerSize }

// DataOffset is the absolute offset of the first sample byte.
func (r *Reader) DataOffset() int64 { return r.dataStart }

// ReadFrames returns up to n frames. Fewer bytes are returned without an
// error at the end of the data. A negative n reads everything left.
// Multi-byte samples are converted to host byte order.
func (r *Reader) ReadFrames(n int) ([]byte, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if n == 0 {
		return []byte{}, nil
	}
	if err := r.seek(); err != nil {
		return nil, err
	}

	src := io.Reader(r.src)
	if n > 0 {
		src = io.LimitReader(r.src, r.limit(n))
	}
	// the buffer grows with the data actually read, not with n
	buf, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading frames: %w", err)
	}

	r.consume(buf)
	return buf, nil
}

// limit returns the byte count of n frames, saturating instead of
// overflowing.
func (r *Reader) limit(n int) int64 {
	fs := int64(r.layout.frameSize())
	if int64(n) > math.MaxInt64/fs {
		return math.MaxInt64
	}
	return int64(n) * fs
}

// Read implements io.Reader over whole frames. p must hold at least one
// frame. It returns io.EOF once the data is exhausted.
func (r *Reader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, ErrClosed
	}
	fs := r.layout.frameSize()
	if len(p) < fs {
		return 0, io.ErrShortBuffer
	}
	if err := r.seek(); err != nil {
		return 0, err
	}

	p = p[:len(p)/fs*fs]
	n, err := io.ReadFull(r.src, p)
	r.consume(p[:n])

	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		return n, nil
	case errors.Is(err, io.EOF):
		return 0, io.EOF
	case err != nil:
		return n, fmt.Errorf("reading frames: %w", err)
	}
	return n, nil
}

func (r *Reader) consume(b []byte) {
	if needsSwap(r.layout.width) {
		utils.SwapBytes(b, r.layout.width)
	}
	r.pos += int64(len(b) / r.layout.frameSize())
}

// seek performs the reposition requested by SetPos or Rewind.
func (r *Reader) seek() error {
	if !r.seekPending {
		return nil
	}
	off := r.dataStart + r.pos*int64(r.layout.frameSize())
	if _, err := r.src.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to frame %d: %w", r.pos, err)
	}
	r.seekPending = false
	return nil
}

// SetPos moves to frame p. No I/O happens until the next read. p must lie
// in [0, sample_count]; without a sample_count only the lower bound is
// checked.
func (r *Reader) SetPos(p int64) error {
	if r.closed {
		return ErrClosed
	}
	if p < 0 {
		return fmt.Errorf("%w: %d", ErrOutOfRange, p)
	}
	if n, ok := r.NFrames(); ok && p > n {
		return fmt.Errorf("%w: %d > %d", ErrOutOfRange, p, n)
	}
	r.pos = p
	r.seekPending = true
	return nil
}

// Rewind moves back to frame 0.
func (r *Reader) Rewind() error {
	if r.closed {
		return ErrClosed
	}
	r.pos = 0
	r.seekPending = true
	return nil
}

// Tell returns the current frame position.
func (r *Reader) Tell() int64 { return r.pos }

// Close releases the file when the Reader opened it. Further calls are
// no-ops.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
