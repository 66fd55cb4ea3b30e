// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

// Params describes interleaved integer PCM.
type Params struct {
	Channels    int
	SampleWidth int // bytes per sample
	SampleRate  int
	Frames      int64 // -1 when the container does not declare it
}

// FrameSize is the number of bytes in one frame.
func (p Params) FrameSize() int { return p.Channels * p.SampleWidth }

// Validate checks that p describes a usable frame layout.
func (p Params) Validate() error {
	switch {
	case p.Channels < 1:
		return fmt.Errorf("%w: %d channels", ErrInvalidParams, p.Channels)
	case p.SampleWidth < 1 || p.SampleWidth > 4:
		return fmt.Errorf("%w: %d byte samples", ErrInvalidParams, p.SampleWidth)
	case p.SampleRate < 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidParams, p.SampleRate)
	}
	return nil
}

type Source interface {
	// Params of the PCM stream.
	Params() Params
	// Read fills p with whole interleaved frames in host byte order and
	// returns io.EOF once the stream is finished.
	io.Reader
	// Close releases any resources.
	Close() error
}

// Sink accepts interleaved frames in host byte order. Close finalizes
// the container.
type Sink interface {
	io.Writer
	Close() error
}

// Decoder constructs a Source from an input. Decoders may seek; the
// registry rewinds r between attempts.
type Decoder interface {
	Decode(r io.ReadSeeker) (Source, error)
}

// Encoder constructs a Sink writing a container to w.
type Encoder interface {
	Encode(w io.WriteSeeker, p Params) (Sink, error)
}

// Registry for decoders and encoders by format key (e.g., "sph", "wav").
// Detection tries decoders in registration order.
type Registry struct {
	decoders map[string]Decoder
	encoders map[string]Encoder
	order    []string

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]Decoder),
		encoders: make(map[string]Encoder),
		mtx:      &sync.Mutex{},
	}
}

// Register adds or replaces the decoder for format. A replaced decoder
// keeps its detection slot.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.decoders[format]; !ok {
		r.order = append(r.order, format)
	}
	r.decoders[format] = d
}

func (r *Registry) RegisterEncoder(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[format] = e
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.decoders[format]
	return d, ok
}

func (r *Registry) Encoder(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[format]
	return e, ok
}

// Formats returns the decoder keys in detection order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return slices.Clone(r.order)
}

// Detect tries every decoder in registration order, rewinding rs to its
// starting offset before each attempt, and returns the first one that
// accepts the input.
func (r *Registry) Detect(rs io.ReadSeeker) (string, Source, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return "", nil, fmt.Errorf("%w", err)
	}

	formats := r.Formats()
	for _, format := range formats {
		d, ok := r.Get(format)
		if !ok {
			continue
		}
		if _, err := rs.Seek(start, io.SeekStart); err != nil {
			return "", nil, fmt.Errorf("%w", err)
		}
		if src, err := d.Decode(rs); err == nil {
			return format, src, nil
		}
	}

	return "", nil, fmt.Errorf("%w (tried %s)", ErrUnsupportedFormat, strings.Join(formats, ", "))
}
