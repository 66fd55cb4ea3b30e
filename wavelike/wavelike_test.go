// SPDX-License-Identifier: EPL-2.0

package wavelike

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sphere"
	"github.com/ik5/sphere/audio"
	"github.com/ik5/sphere/header"
	"github.com/ik5/sphere/internal/audiotest"
	"github.com/ik5/sphere/utils"
)

func TestReader_WaveNames(t *testing.T) {
	t.Parallel()

	file := audiotest.SphereFile(audiotest.RM1Fields(), audiotest.Ramp(64))
	r, err := OpenRead(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("OpenRead() error = %v", err)
	}
	defer r.Close()

	if r.NumChannels() != 1 || r.SampleWidth() != 2 || r.FrameRate() != 16000 || r.NFrames() != 48743 {
		t.Errorf("wave params = %d, %d, %d, %d", r.NumChannels(), r.SampleWidth(), r.FrameRate(), r.NFrames())
	}
	if r.CompType() != "NONE" || r.CompName() != "not compressed" {
		t.Errorf("compression = %q, %q", r.CompType(), r.CompName())
	}

	want := audio.Params{Channels: 1, SampleWidth: 2, SampleRate: 16000, Frames: 48743}
	if r.Params() != want {
		t.Errorf("Params() = %+v, want %+v", r.Params(), want)
	}
	if !r.SphereParams().Equal(audiotest.RM1Fields()) {
		t.Errorf("SphereParams() = %v", r.SphereParams())
	}
	if r.Sphere() == nil {
		t.Error("Sphere() = nil")
	}
}

func TestReader_Delegates(t *testing.T) {
	t.Parallel()

	data := audiotest.Ramp(40)
	r, err := OpenRead(bytes.NewReader(audiotest.SphereFile(audiotest.PCMInfo(2, 2, 8000, 10), data)))
	if err != nil {
		t.Fatalf("OpenRead() error = %v", err)
	}

	_ = r.SetPos(8)
	got, _ := r.ReadFrames(5)
	if !bytes.Equal(got, data[32:]) || r.Tell() != 10 {
		t.Errorf("ReadFrames() = %v, Tell() = %d", got, r.Tell())
	}

	_ = r.Rewind()
	all, _ := io.ReadAll(r)
	if !bytes.Equal(all, data) {
		t.Error("io.ReadAll() after Rewind() differs")
	}

	_ = r.Close()
	if err := r.SetPos(0); !errors.Is(err, sphere.ErrClosed) {
		t.Errorf("SetPos() after Close() error = %v, want ErrClosed", err)
	}
}

func TestReader_NFramesUnknown(t *testing.T) {
	t.Parallel()

	src := "NIST_1A\n   1024\nchannel_count -i 1\nsample_n_bytes -i 1\nend_head\n"
	src += string(bytes.Repeat([]byte{' '}, 1024-len(src)))

	r, err := OpenRead(bytes.NewReader([]byte(src)))
	if err != nil {
		t.Fatalf("OpenRead() error = %v", err)
	}
	if r.NFrames() != -1 {
		t.Errorf("NFrames() = %d, want -1", r.NFrames())
	}
}

func TestReader_PCMBuffer(t *testing.T) {
	t.Parallel()

	samples := []int{0, -1, 32767, -32768, 1234, -1234}
	data := make([]byte, 2*len(samples))
	// stored little endian, read back in host order
	utils.PackInts(data, samples, 2, binary.LittleEndian)

	r, err := OpenRead(bytes.NewReader(audiotest.SphereFile(audiotest.PCMInfo(2, 2, 22050, 3), data)))
	if err != nil {
		t.Fatalf("OpenRead() error = %v", err)
	}

	// 5 slots hold only 2 whole stereo frames
	buf := &goaudio.IntBuffer{Data: make([]int, 5)}
	n, err := r.PCMBuffer(buf)
	if err != nil {
		t.Fatalf("PCMBuffer() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("PCMBuffer() = %d, want 4", n)
	}
	for i := range n {
		if buf.Data[i] != samples[i] {
			t.Errorf("sample %d = %d, want %d", i, buf.Data[i], samples[i])
		}
	}
	if buf.Format.NumChannels != 2 || buf.Format.SampleRate != 22050 || buf.SourceBitDepth != 16 {
		t.Errorf("buffer format = %+v, depth %d", buf.Format, buf.SourceBitDepth)
	}

	n, _ = r.PCMBuffer(buf)
	if n != 2 || buf.Data[0] != 1234 || buf.Data[1] != -1234 {
		t.Errorf("second PCMBuffer() = %d, %v", n, buf.Data[:n])
	}

	n, err = r.PCMBuffer(buf)
	if n != 0 || err != nil {
		t.Errorf("PCMBuffer() at end = %d, %v, want 0, nil", n, err)
	}
}

func TestToWave(t *testing.T) {
	t.Parallel()

	p, err := ToWave(audiotest.RM1Fields())
	if err != nil {
		t.Fatalf("ToWave() error = %v", err)
	}
	want := audio.Params{Channels: 1, SampleWidth: 2, SampleRate: 16000, Frames: 48743}
	if p != want {
		t.Errorf("ToWave() = %+v, want %+v", p, want)
	}

	if _, err := ToWave(header.NewInfo()); !errors.Is(err, audio.ErrInvalidParams) {
		t.Errorf("ToWave(empty) error = %v, want ErrInvalidParams", err)
	}
}

func TestFromWave(t *testing.T) {
	t.Parallel()

	info := FromWave(audio.Params{Channels: 2, SampleWidth: 2, SampleRate: 44100, Frames: 10})
	want := []string{header.ChannelCount, header.SampleNBytes, header.SampleCount, header.SampleRate}
	if got := info.Names(); len(got) != 4 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] || got[3] != want[3] {
		t.Errorf("FromWave() names = %v, want %v", got, want)
	}

	back, err := ToWave(info)
	if err != nil || back.Channels != 2 || back.SampleRate != 44100 || back.Frames != 10 {
		t.Errorf("ToWave(FromWave()) = %+v, %v", back, err)
	}

	unknown := FromWave(audio.Params{Channels: 1, SampleWidth: 1, SampleRate: 8000, Frames: -1})
	if unknown.Has(header.SampleCount) {
		t.Error("FromWave() wrote sample_count for an unknown frame count")
	}
}

func TestEncoderDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	p := audio.Params{Channels: 2, SampleWidth: 2, SampleRate: 8000, Frames: 100}
	src := audiotest.NewRampSource(p)

	buf := audiotest.NewBuffer(nil)
	sink, err := Encoder{}.Encode(buf, p)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if _, err := audio.Copy(sink, src, 16); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	_, _ = buf.Seek(0, io.SeekStart)
	dec, err := Decoder{}.Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if dec.Params() != p {
		t.Errorf("decoded Params() = %+v, want %+v", dec.Params(), p)
	}

	src.Reset()
	want, _ := io.ReadAll(src)
	got, _ := io.ReadAll(dec)
	if !bytes.Equal(got, want) {
		t.Error("decoded PCM differs from the encoded PCM")
	}
}

func TestEncoder_InvalidParams(t *testing.T) {
	t.Parallel()

	if _, err := (Encoder{}).Encode(audiotest.NewBuffer(nil), audio.Params{}); !errors.Is(err, audio.ErrInvalidParams) {
		t.Errorf("Encode() error = %v, want ErrInvalidParams", err)
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader([]byte("RIFF\x00\x00\x00\x00WAVE")))
	if !errors.Is(err, header.ErrFormat) {
		t.Errorf("Decode() error = %v, want ErrFormat", err)
	}
	if src != nil {
		t.Error("Decode() returned a non-nil source on failure")
	}
}
