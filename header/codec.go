// SPDX-License-Identifier: EPL-2.0

package header

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const (
	// Magic opens every SPHERE file.
	Magic = "NIST_1A\n"

	// DefaultSize is the header size used by the writer.
	DefaultSize = 1024

	// PreambleSize covers the magic and the header size field.
	PreambleSize = 16

	// MaxSize is the largest size that fits the 7 digit size field.
	MaxSize = 9999999

	trailer = EndMarker + "\n\n\n\n\n"
)

// Codec reads and writes header blocks. The zero value is not usable,
// build one with NewCodec. A Codec is immutable and may be shared.
type Codec struct {
	charset encoding.Encoding
	size    int
}

type Option func(*Codec)

// WithCharset sets the single-byte text encoding of header lines.
func WithCharset(enc encoding.Encoding) Option {
	return func(c *Codec) {
		if enc != nil {
			c.charset = enc
		}
	}
}

// WithSize sets the fixed size of serialized headers.
func WithSize(n int) Option {
	return func(c *Codec) { c.size = n }
}

// NewCodec returns a codec writing DefaultSize headers in ISO 8859-1,
// which reads plain ASCII headers byte for byte.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		charset: charmap.ISO8859_1,
		size:    DefaultSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultCodec is used by the package level helpers and by streams that
// are not given a codec.
var DefaultCodec = NewCodec()

func (c *Codec) Size() int { return c.size }

func (c *Codec) Charset() encoding.Encoding { return c.charset }

// Parse reads a header from r with the default codec.
func Parse(r io.Reader) (*Info, int, error) {
	return DefaultCodec.Parse(r)
}

// Serialize encodes info with the default codec.
func Serialize(info *Info, sampleCount int64) ([]byte, error) {
	return DefaultCodec.Serialize(info, sampleCount)
}

// Parse reads a complete header block from r and returns its fields and
// the total header size. On success r has consumed exactly size bytes,
// so the next read returns the first data byte.
func (c *Codec) Parse(r io.Reader) (*Info, int, error) {
	var pre [PreambleSize]byte

	if _, err := io.ReadFull(r, pre[:8]); err != nil || string(pre[:8]) != Magic {
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, 0, fmt.Errorf("reading magic: %w", err)
		}
		return nil, 0, ErrBadMagic
	}

	if _, err := io.ReadFull(r, pre[8:]); err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, 0, fmt.Errorf("reading header size: %w", err)
		}
		return nil, 0, ErrBadSize
	}
	size, err := strconv.Atoi(string(bytes.TrimSpace(pre[8:])))
	if err != nil || size < PreambleSize {
		return nil, 0, fmt.Errorf("%w: %q", ErrBadSize, pre[8:])
	}

	// Grows with the data actually present, a bogus size cannot force a
	// large allocation.
	block, err := io.ReadAll(io.LimitReader(r, int64(size-PreambleSize)))
	if err != nil {
		return nil, 0, fmt.Errorf("reading header block: %w", err)
	}
	// padding is not a field
	block = bytes.TrimRight(block, " \t\r\n\x00")

	info := NewInfo()
	n := 0
	for line := range lines(block) {
		n++
		f, end, err := c.DecodeField(line)
		if err != nil {
			text, _ := c.charset.NewDecoder().Bytes(line)
			return nil, 0, &FieldError{Line: n, Text: string(text), Err: err}
		}
		if end {
			return info, size, nil
		}
		if err := info.Set(f.Name, f.Value); err != nil {
			return nil, 0, &FieldError{Line: n, Text: f.Name, Err: err}
		}
	}

	return nil, 0, ErrTruncatedHeader
}

// Serialize encodes info into a header block of exactly Size bytes.
// sampleCount is written as sample_count when info has no such field.
// info is not modified. A header that does not fit fails with
// ErrHeaderTooLarge.
func (c *Codec) Serialize(info *Info, sampleCount int64) ([]byte, error) {
	if c.size < PreambleSize || c.size > MaxSize {
		return nil, fmt.Errorf("%w: header size %d", ErrBadSize, c.size)
	}

	buf := make([]byte, 0, c.size)
	buf = append(buf, Magic...)
	buf = fmt.Appendf(buf, "%7d\n", c.size)

	var err error
	for name, v := range info.All() {
		if buf, err = c.AppendField(buf, Field{Name: name, Value: v}); err != nil {
			return nil, err
		}
	}
	if !info.Has(SampleCount) {
		if buf, err = c.AppendField(buf, Field{Name: SampleCount, Value: Int(sampleCount)}); err != nil {
			return nil, err
		}
	}
	buf = append(buf, trailer...)

	if len(buf) > c.size {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrHeaderTooLarge, len(buf), c.size)
	}
	for len(buf) < c.size {
		buf = append(buf, ' ')
	}

	return buf, nil
}

// lines splits b on \n, \r\n and \r without yielding a trailing empty line.
func lines(b []byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for len(b) > 0 {
			i := bytes.IndexAny(b, "\r\n")
			if i < 0 {
				yield(b)
				return
			}
			next := i + 1
			if b[i] == '\r' && next < len(b) && b[next] == '\n' {
				next++
			}
			if !yield(b[:i]) {
				return
			}
			b = b[next:]
		}
	}
}
