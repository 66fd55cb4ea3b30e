// SPDX-License-Identifier: EPL-2.0

package sphere

import (
	"log/slog"

	"github.com/ik5/sphere/header"
)

// DefaultBufferSize is the size of the write buffer placed in front of
// the sink.
const DefaultBufferSize = 64 * 1024

type config struct {
	codec   *header.Codec
	logger  *slog.Logger
	bufSize int
}

// Option configures a Reader or Writer.
type Option func(*config)

// WithCodec sets the header codec. The codec decides the charset of the
// header text and, for writers, the fixed header size.
func WithCodec(c *header.Codec) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.codec = c
		}
	}
}

// WithLogger makes the stream log header writes and patches at debug
// level. Streams are silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithBufferSize sets the write buffer size. Values below 1 are ignored.
func WithBufferSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.bufSize = n
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		codec:   header.DefaultCodec,
		logger:  slog.New(slog.DiscardHandler),
		bufSize: DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
