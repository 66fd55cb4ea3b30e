// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"io"
)

// mockSource serves a fixed byte slice as PCM frames.
type mockSource struct {
	params Params
	r      *bytes.Reader
	closed bool
}

func newMockSource(p Params, data []byte) *mockSource {
	return &mockSource{params: p, r: bytes.NewReader(data)}
}

func (m *mockSource) Params() Params { return m.params }

func (m *mockSource) Read(p []byte) (int, error) {
	fs := m.params.FrameSize()
	return m.r.Read(p[:len(p)/fs*fs])
}

func (m *mockSource) Close() error {
	m.closed = true
	return nil
}

// mockSink collects everything written to it.
type mockSink struct {
	bytes.Buffer
	closed bool
	err    error
}

func (m *mockSink) Write(p []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.Buffer.Write(p)
}

func (m *mockSink) Close() error {
	m.closed = true
	return nil
}

// mockDecoder accepts inputs starting with magic.
type mockDecoder struct {
	magic string
}

func (d *mockDecoder) Decode(r io.ReadSeeker) (Source, error) {
	buf := make([]byte, len(d.magic))
	if _, err := io.ReadFull(r, buf); err != nil || string(buf) != d.magic {
		return nil, errors.New("bad magic")
	}
	rest, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return newMockSource(Params{Channels: 1, SampleWidth: 1, SampleRate: 8000, Frames: -1}, rest), nil
}

type mockEncoder struct{}

func (mockEncoder) Encode(w io.WriteSeeker, p Params) (Sink, error) {
	return &mockSink{}, nil
}
