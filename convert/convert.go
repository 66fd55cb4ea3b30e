// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/sphere"
	"github.com/ik5/sphere/audio"
)

// Options for Convert. The zero value converts SPHERE to WAV and
// anything else to SPHERE, next to the input.
type Options struct {
	// Format is the output format key. Empty selects DefaultOutputFormat.
	Format string
	// Output is the output file, or a directory to place <stem>.<format>
	// in. Empty replaces the input suffix.
	Output string
	// Logger defaults to discarding everything.
	Logger *slog.Logger
	// Registry defaults to DefaultRegistry.
	Registry *audio.Registry
}

// Result describes a finished conversion.
type Result struct {
	Input        string
	Output       string
	InputFormat  string
	OutputFormat string
	Params       audio.Params
	Frames       int64 // frames actually copied
}

// Convert transcodes the audio file at input. A failed conversion removes
// the partial output.
func Convert(input string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry(sphere.WithLogger(logger))
	}

	in, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	iform, src, err := reg.Detect(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	defer src.Close()

	p := src.Params()
	logger.Debug("input detected", "path", input, "format", iform,
		"channels", p.Channels, "sample_width", p.SampleWidth, "sample_rate", p.SampleRate, "frames", p.Frames)

	oform := opts.Format
	if oform == "" {
		oform = DefaultOutputFormat(iform)
	}
	enc, ok := reg.Encoder(oform)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutputFormat, oform)
	}

	output, err := OutputPath(input, opts.Output, oform)
	if err != nil {
		return nil, err
	}
	if err := checkDistinct(input, output); err != nil {
		return nil, err
	}

	frames, err := write(enc, src, output)
	if err != nil {
		if rerr := os.Remove(output); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			logger.Warn("removing partial output", "path", output, "error", rerr)
		}
		return nil, fmt.Errorf("%s: %w", output, err)
	}

	logger.Info("converted", "input", input, "output", output, "from", iform, "to", oform, "frames", frames)

	return &Result{
		Input:        input,
		Output:       output,
		InputFormat:  iform,
		OutputFormat: oform,
		Params:       p,
		Frames:       frames,
	}, nil
}

// write encodes every frame of src into a new file at path and returns
// the number of frames copied.
func write(enc audio.Encoder, src audio.Source, path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	sink, err := enc.Encode(f, src.Params())
	if err != nil {
		return 0, errors.Join(err, f.Close())
	}

	n, err := audio.Copy(sink, src, 0)
	if err != nil {
		return 0, errors.Join(err, sink.Close(), f.Close())
	}
	if err := sink.Close(); err != nil {
		return 0, errors.Join(err, f.Close())
	}
	if err := f.Close(); err != nil {
		return 0, err
	}

	return n / int64(src.Params().FrameSize()), nil
}

// OutputPath resolves where Convert writes: output itself when it names
// a file, <dir>/<input stem>.<format> when it is an existing directory,
// and the input path with its suffix replaced when it is empty.
func OutputPath(input, output, format string) (string, error) {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if output == "" {
		return filepath.Join(filepath.Dir(input), stem+"."+format), nil
	}

	fi, err := os.Stat(output)
	switch {
	case err == nil && fi.IsDir():
		return filepath.Join(output, stem+"."+format), nil
	case err == nil || errors.Is(err, os.ErrNotExist):
		return output, nil
	default:
		return "", fmt.Errorf("checking output: %w", err)
	}
}

func checkDistinct(input, output string) error {
	a, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	b, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if a == b {
		return fmt.Errorf("%w: %s", ErrSameFile, output)
	}

	// catches links and case-insensitive file systems
	ai, err := os.Stat(a)
	if err != nil {
		return nil
	}
	if bi, err := os.Stat(b); err == nil && os.SameFile(ai, bi) {
		return fmt.Errorf("%w: %s", ErrSameFile, output)
	}
	return nil
}
