// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/internal/audiotest"
	"github.com/ik5/sphere/utils"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int {
	return m.sampleRate
}

func (m *mockOggVorbisReader) Channels() int {
	return m.channels
}

// Read returns the number of values copied, always whole frames.
func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := min(len(buf), len(m.samples)-m.offset)
	n -= n % m.channels
	copy(buf, m.samples[m.offset:m.offset+n])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}
	return n, nil
}

func newSource(m *mockOggVorbisReader) *source {
	return &source{
		dec: m,
		params: audio.Params{
			Channels:    m.channels,
			SampleWidth: sampleWidth,
			SampleRate:  m.sampleRate,
			Frames:      int64(len(m.samples) / m.channels),
		},
	}
}

func hostPCM(samples ...int) []byte {
	b := make([]byte, len(samples)*sampleWidth)
	utils.PackInts(b, samples, sampleWidth, utils.HostOrder())
	return b
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	// Invalid Ogg Vorbis data
	invalidData := []byte("This is not Ogg Vorbis data")

	decoder := Decoder{}
	if _, err := decoder.Decode(bytes.NewReader(invalidData)); err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	if _, err := decoder.Decode(bytes.NewReader([]byte{})); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Params(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 48000, channels: 2, samples: make([]float32, 20)})

	want := audio.Params{Channels: 2, SampleWidth: 2, SampleRate: 48000, Frames: 10}
	if got := src.Params(); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_Quantizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		in       []float32
		want     []byte
	}{
		{"mono", 1, []float32{0, 0.5, -0.5, 1, -1}, hostPCM(0, 16383, -16383, 32767, -32767)},
		{"stereo", 2, []float32{1, -1, 0.25, -0.25}, hostPCM(32767, -32767, 8191, -8191)},
		{"clamped", 1, []float32{1.5, -2}, hostPCM(32767, -32767)},
		{"6 channels", 6, make([]float32, 12), hostPCM(make([]int, 12)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: tt.channels, samples: tt.in})

			got, err := audiotest.ReadAll(src)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("data = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSource_SmallReads(t *testing.T) {
	t.Parallel()

	in := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	src := newSource(&mockOggVorbisReader{sampleRate: 8000, channels: 2, samples: in})

	// one frame at a time
	var got []byte
	buf := make([]byte, 5)
	for {
		n, err := src.Read(buf)
		if n != 0 && n != 4 {
			t.Fatalf("Read() = %d bytes, want one frame", n)
		}
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
	}

	if len(got) != len(in)*sampleWidth {
		t.Errorf("read %d bytes, want %d", len(got), len(in)*sampleWidth)
	}
}

func TestSource_ShortBuffer(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 8000, channels: 2, samples: make([]float32, 4)})

	if _, err := src.Read(make([]byte, 3)); !errors.Is(err, io.ErrShortBuffer) {
		t.Errorf("Read(3 bytes) error = %v, want ErrShortBuffer", err)
	}
}

func TestSource_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt page")
	src := newSource(&mockOggVorbisReader{sampleRate: 8000, channels: 1, err: boom})

	if _, err := src.Read(make([]byte, 16)); !errors.Is(err, boom) {
		t.Errorf("Read() error = %v, want %v", err, boom)
	}
}

func BenchmarkSource_Read(b *testing.B) {
	samples := make([]float32, 8192)
	for i := range samples {
		samples[i] = float32(i%200)/100 - 1
	}
	buf := make([]byte, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: samples})
		for {
			if _, err := src.Read(buf); err != nil {
				break
			}
		}
	}
}
