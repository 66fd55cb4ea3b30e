// SPDX-License-Identifier: EPL-2.0

package sphere

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ik5/sphere/header"
	"github.com/ik5/sphere/utils"
)

// HeaderState tracks the header of a Writer through its lifetime.
type HeaderState int

const (
	// HeaderPending: nothing has been written to the sink yet.
	HeaderPending HeaderState = iota
	// HeaderProvisional: the header is on the sink but its sample_count
	// may still be rewritten.
	HeaderProvisional
	// HeaderFinal: Close has reconciled sample_count with the data.
	HeaderFinal
)

func (s HeaderState) String() string {
	switch s {
	case HeaderPending:
		return "pending"
	case HeaderProvisional:
		return "provisional"
	case HeaderFinal:
		return "final"
	default:
		return fmt.Sprintf("HeaderState(%d)", int(s))
	}
}

// Writer writes a SPHERE stream.
//
// Parameters are collected with SetParams until the first frame write,
// which puts a provisional header on the sink. Close seeks back and
// rewrites sample_count when it does not match the data written, so the
// sink must support seeking. A Writer is not safe for concurrent use.
type Writer struct {
	dst    io.WriteSeeker
	closer io.Closer
	bw     *bufio.Writer
	cfg    config

	info   *header.Info
	state  HeaderState
	layout layout

	headerStart   int64
	headerSize    int
	dataLength    int64 // bytes implied by the sample_count on the sink
	dataWritten   int64
	framesWritten int64

	swapBuf []byte
	closed  bool
}

// OpenWrite returns a Writer that emits the header at the current offset
// of dst. dst stays owned by the caller and is not closed by Close.
func OpenWrite(dst io.WriteSeeker, opts ...Option) *Writer {
	return newWriter(dst, nil, newConfig(opts))
}

// Create creates or truncates the named file and returns a Writer that
// closes it on Close.
func Create(path string, opts ...Option) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return newWriter(f, f, newConfig(opts)), nil
}

func newWriter(dst io.WriteSeeker, closer io.Closer, cfg config) *Writer {
	return &Writer{
		dst:    dst,
		closer: closer,
		bw:     bufio.NewWriterSize(dst, cfg.bufSize),
		cfg:    cfg,
		info:   header.NewInfo(),
	}
}

// SetParams merges params into the header fields, last write wins. It
// fails with ErrAlreadyWriting once the header is on the sink, which
// includes a WriteFramesRaw call with no data.
func (w *Writer) SetParams(params *header.Info) error {
	if w.closed {
		return ErrClosed
	}
	if w.state != HeaderPending {
		return ErrAlreadyWriting
	}
	w.info.Merge(params)
	return nil
}

// Set sets a single header field from an int, float or string value.
// Like SetParams it fails once the header has been written.
func (w *Writer) Set(name string, v any) error {
	if w.closed {
		return ErrClosed
	}
	if w.state != HeaderPending {
		return ErrAlreadyWriting
	}
	return w.info.SetAny(name, v)
}

// Params validates the collected fields and returns a copy of them.
func (w *Writer) Params() (*header.Info, error) {
	if err := checkParams(w.info); err != nil {
		return nil, err
	}
	return w.info.Clone(), nil
}

// HeaderState reports whether the header has been written and finalized.
func (w *Writer) HeaderState() HeaderState { return w.state }

// HeaderSize is the size of the header on the sink, 0 while pending.
func (w *Writer) HeaderSize() int { return w.headerSize }

// Tell returns the number of whole frames written so far.
func (w *Writer) Tell() int64 { return w.framesWritten }

// WriteFramesRaw writes interleaved frames in host byte order without
// touching a header that is already on the sink. The first call writes
// the header and fails, leaving the sink untouched, when a required
// field is missing.
func (w *Writer) WriteFramesRaw(data []byte) error {
	if w.closed {
		return ErrClosed
	}
	if err := w.ensureHeader(); err != nil {
		return err
	}

	out := data
	if needsSwap(w.layout.width) {
		w.swapBuf = append(w.swapBuf[:0], data...)
		utils.SwapBytes(w.swapBuf, w.layout.width)
		out = w.swapBuf
	}

	n, err := w.bw.Write(out)
	w.dataWritten += int64(n)
	w.framesWritten += int64(n / w.layout.frameSize())
	if err != nil {
		return fmt.Errorf("writing frames: %w", err)
	}
	return nil
}

// Write implements io.Writer on top of WriteFramesRaw.
func (w *Writer) Write(p []byte) (int, error) {
	if err := w.WriteFramesRaw(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteFrames writes data and then rewrites the header right away when
// sample_count no longer matches what was written.
func (w *Writer) WriteFrames(data []byte) error {
	if err := w.WriteFramesRaw(data); err != nil {
		return err
	}
	return w.patchHeader()
}

// Close writes a header if none was written yet, reconciles sample_count
// with the data and flushes the sink. The file is closed when the Writer
// created it, even if one of the earlier steps fails. Further calls are
// no-ops.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	var errs []error
	if err := w.ensureHeader(); err != nil {
		errs = append(errs, err)
	} else if err := w.patchHeader(); err != nil {
		errs = append(errs, err)
	} else {
		w.state = HeaderFinal
	}
	if err := w.bw.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("flushing: %w", err))
	}
	w.closed = true

	if w.closer != nil {
		if err := w.closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ensureHeader writes the provisional header on first use. sample_count
// defaults to 0 and is stored in the fields so later patches update it
// in place.
func (w *Writer) ensureHeader() error {
	if w.state != HeaderPending {
		return nil
	}
	if err := checkParams(w.info); err != nil {
		return err
	}
	l, err := frameLayout(w.info)
	if err != nil {
		return err
	}

	if !w.info.Has(header.SampleCount) {
		_ = w.info.Set(header.SampleCount, header.Int(0))
	}
	count, ok := w.info.Int(header.SampleCount)
	if !ok || count < 0 {
		return fmt.Errorf("%w: %s = %v", ErrInvalidParams, header.SampleCount, field(w.info, header.SampleCount))
	}

	block, err := w.cfg.codec.Serialize(w.info, count)
	if err != nil {
		return err
	}
	// Close may rewrite sample_count with more digits, the header must
	// still fit then.
	widest := w.info.Clone()
	_ = widest.Set(header.SampleCount, header.Int(math.MaxInt64/int64(l.frameSize())))
	if _, err := w.cfg.codec.Serialize(widest, 0); err != nil {
		return err
	}

	start, err := w.dst.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("locating header: %w", err)
	}
	if _, err := w.bw.Write(block); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	w.layout = l
	w.headerStart = start
	w.headerSize = len(block)
	w.dataLength = count * int64(l.frameSize())
	w.state = HeaderProvisional

	w.cfg.logger.Debug("sphere header written",
		"offset", start,
		"size", len(block),
		"sample_count", count,
		"frame_size", l.frameSize())

	return nil
}

// patchHeader rewrites the header in place when the data written differs
// from the length implied by the declared sample_count.
func (w *Writer) patchHeader() error {
	if w.dataWritten == w.dataLength {
		return nil
	}

	count := w.dataWritten / int64(w.layout.frameSize())
	info := w.info.Clone()
	_ = info.Set(header.SampleCount, header.Int(count))

	block, err := w.cfg.codec.Serialize(info, count)
	if err != nil {
		return fmt.Errorf("patching header: %w", err)
	}

	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("flushing: %w", err)
	}
	end, err := w.dst.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("patching header: %w", err)
	}
	if _, err := w.dst.Seek(w.headerStart, io.SeekStart); err != nil {
		return fmt.Errorf("patching header: %w", err)
	}
	if _, err := w.dst.Write(block); err != nil {
		return fmt.Errorf("patching header: %w", err)
	}
	if _, err := w.dst.Seek(end, io.SeekStart); err != nil {
		return fmt.Errorf("patching header: %w", err)
	}

	w.cfg.logger.Debug("sphere header patched",
		"offset", w.headerStart,
		"declared_bytes", w.dataLength,
		"written_bytes", w.dataWritten,
		"sample_count", count)

	w.info = info
	w.dataLength = w.dataWritten
	return nil
}
