// SPDX-License-Identifier: EPL-2.0

package wavelike

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sphere"
	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/header"
	"github.com/ik5/sphere/utils"
)

const (
	// CompType and CompName describe the only coding supported.
	CompType = "NONE"
	CompName = "not compressed"
)

// Reader is a wave-style view of a SPHERE read stream. It holds the
// stream rather than extending it; Sphere returns the underlying Reader
// for SPHERE specific calls.
type Reader struct {
	sph *sphere.Reader
	buf []byte
}

// New wraps an open SPHERE reader. Closing the Reader closes r.
func New(r *sphere.Reader) *Reader {
	return &Reader{sph: r}
}

// OpenRead parses the SPHERE header at the current offset of rs.
func OpenRead(rs io.ReadSeeker, opts ...sphere.Option) (*Reader, error) {
	r, err := sphere.OpenRead(rs, opts...)
	if err != nil {
		return nil, err
	}
	return New(r), nil
}

// Open opens a SPHERE file by name.
func Open(path string, opts ...sphere.Option) (*Reader, error) {
	r, err := sphere.Open(path, opts...)
	if err != nil {
		return nil, err
	}
	return New(r), nil
}

func (r *Reader) Sphere() *sphere.Reader { return r.sph }

func (r *Reader) NumChannels() int { return r.sph.Channels() }
func (r *Reader) SampleWidth() int { return r.sph.SampleWidth() }
func (r *Reader) FrameRate() int   { return r.sph.SampleRate() }
func (r *Reader) CompType() string { return CompType }
func (r *Reader) CompName() string { return CompName }

// NFrames returns sample_count, or -1 when the header has none.
func (r *Reader) NFrames() int64 {
	n, ok := r.sph.NFrames()
	if !ok {
		return -1
	}
	return n
}

// Params returns the wave-style parameters. It implements audio.Source.
func (r *Reader) Params() audio.Params {
	return audio.Params{
		Channels:    r.NumChannels(),
		SampleWidth: r.SampleWidth(),
		SampleRate:  r.FrameRate(),
		Frames:      r.NFrames(),
	}
}

// SphereParams returns the raw header fields.
func (r *Reader) SphereParams() *header.Info { return r.sph.Params() }

func (r *Reader) ReadFrames(n int) ([]byte, error) { return r.sph.ReadFrames(n) }
func (r *Reader) Read(p []byte) (int, error)       { return r.sph.Read(p) }
func (r *Reader) SetPos(p int64) error             { return r.sph.SetPos(p) }
func (r *Reader) Rewind() error                    { return r.sph.Rewind() }
func (r *Reader) Tell() int64                      { return r.sph.Tell() }
func (r *Reader) Close() error                     { return r.sph.Close() }

// Format returns the go-audio description of the stream.
func (r *Reader) Format() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: r.NumChannels(),
		SampleRate:  r.FrameRate(),
	}
}

// PCMBuffer fills buf.Data with up to len(buf.Data) interleaved samples,
// rounded down to whole frames, and returns how many were stored. It
// returns 0 and no error at the end of the stream, like the go-audio
// decoders.
func (r *Reader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if buf == nil {
		return 0, nil
	}
	buf.Format = r.Format()
	buf.SourceBitDepth = 8 * r.SampleWidth()

	width := r.SampleWidth()
	frames := len(buf.Data) / r.NumChannels()
	if frames == 0 {
		return 0, nil
	}

	need := frames * r.sph.FrameSize()
	if cap(r.buf) < need {
		r.buf = make([]byte, need)
	}
	r.buf = r.buf[:need]

	n, err := r.sph.Read(r.buf)
	if err == io.EOF {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	return utils.UnpackInts(buf.Data, r.buf[:n], width, utils.HostOrder()), nil
}

// ToWave maps SPHERE header fields to wave parameters. Frames is -1 when
// sample_count is absent.
func ToWave(info *header.Info) (audio.Params, error) {
	ch, ok := info.Int(header.ChannelCount)
	if !ok {
		return audio.Params{}, fmt.Errorf("%w: %s", audio.ErrInvalidParams, header.ChannelCount)
	}
	width, ok := info.Int(header.SampleNBytes)
	if !ok {
		return audio.Params{}, fmt.Errorf("%w: %s", audio.ErrInvalidParams, header.SampleNBytes)
	}
	rate, _ := info.Int(header.SampleRate)

	frames, ok := info.Int(header.SampleCount)
	if !ok {
		frames = -1
	}

	p := audio.Params{
		Channels:    int(ch),
		SampleWidth: int(width),
		SampleRate:  int(rate),
		Frames:      frames,
	}
	return p, p.Validate()
}

// FromWave maps wave parameters to SPHERE header fields. sample_count is
// only included when p.Frames is known.
func FromWave(p audio.Params) *header.Info {
	info := header.NewInfo()
	_ = info.Set(header.ChannelCount, header.Int(int64(p.Channels)))
	_ = info.Set(header.SampleNBytes, header.Int(int64(p.SampleWidth)))
	if p.Frames >= 0 {
		_ = info.Set(header.SampleCount, header.Int(p.Frames))
	}
	_ = info.Set(header.SampleRate, header.Int(int64(p.SampleRate)))
	return info
}

// Decoder opens SPHERE input for the format registry.
type Decoder struct {
	Options []sphere.Option
}

func (d Decoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	src, err := OpenRead(r, d.Options...)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// Encoder writes SPHERE output for the format registry. The returned
// sink is a *sphere.Writer that patches sample_count on Close.
type Encoder struct {
	Options []sphere.Option
}

func (e Encoder) Encode(w io.WriteSeeker, p audio.Params) (audio.Sink, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	sw := sphere.OpenWrite(w, e.Options...)
	if err := sw.SetParams(FromWave(p)); err != nil {
		return nil, err
	}
	return sw, nil
}
