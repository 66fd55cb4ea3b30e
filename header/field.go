// SPDX-License-Identifier: EPL-2.0

package header

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// EndMarker is the line that terminates the field list.
const EndMarker = "end_head"

const asciiSpace = " \t\n\v\f\r"

// DecodeField decodes a single header line of the form
// "name type value[;comment]" with the default codec.
func DecodeField(line []byte) (Field, bool, error) {
	return DefaultCodec.DecodeField(line)
}

// EncodeField encodes f as a header line with the default codec.
func EncodeField(f Field) ([]byte, error) {
	return DefaultCodec.EncodeField(f)
}

// DecodeField decodes one header line. end is true when the line is the
// end_head marker, in which case f is empty.
func (c *Codec) DecodeField(line []byte) (f Field, end bool, err error) {
	if string(line) == EndMarker {
		return Field{}, true, nil
	}

	if i := bytes.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}

	parts := bytes.SplitN(line, []byte{' '}, 3)
	if len(parts) != 3 || len(parts[0]) == 0 {
		return Field{}, false, ErrMalformedField
	}

	dec := c.charset.NewDecoder()
	name, err := dec.Bytes(parts[0])
	if err != nil {
		return Field{}, false, fmt.Errorf("%w: name: %w", ErrMalformedField, err)
	}

	tag := string(parts[1])
	raw := bytes.TrimRight(parts[2], asciiSpace)

	var v Value
	switch {
	case strings.HasPrefix(tag, "-i"):
		i, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
		if err != nil {
			return Field{}, false, fmt.Errorf("%w: integer %q", ErrMalformedField, raw)
		}
		v = Int(i)

	case strings.HasPrefix(tag, "-r"):
		r, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
		if err != nil {
			return Field{}, false, fmt.Errorf("%w: real %q", ErrMalformedField, raw)
		}
		v = Real(r)

	case strings.HasPrefix(tag, "-s"):
		width, err := strconv.Atoi(tag[2:])
		if err != nil || width < 0 {
			return Field{}, false, fmt.Errorf("%w: string width %q", ErrMalformedField, tag)
		}
		if len(raw) > width {
			raw = raw[:width]
		}
		s, err := dec.Bytes(raw)
		if err != nil {
			return Field{}, false, fmt.Errorf("%w: string: %w", ErrMalformedField, err)
		}
		v = Value{kind: KindString, s: string(s), width: width}

	default:
		return Field{}, false, fmt.Errorf("%w: %q", ErrUnknownFieldType, tag)
	}

	return Field{Name: string(name), Value: v}, false, nil
}

// EncodeField returns f as one newline terminated header line. String
// widths are taken from the encoded length of the current value.
func (c *Codec) EncodeField(f Field) ([]byte, error) {
	return c.AppendField(nil, f)
}

// AppendField appends the encoded line for f to dst.
func (c *Codec) AppendField(dst []byte, f Field) ([]byte, error) {
	if err := checkName(f.Name); err != nil {
		return dst, err
	}

	enc := c.charset.NewEncoder()
	name, err := enc.String(f.Name)
	if err != nil {
		return dst, fmt.Errorf("encoding field name %q: %w", f.Name, err)
	}

	switch f.Value.kind {
	case KindInteger:
		dst = fmt.Appendf(dst, "%s -i %d\n", name, f.Value.i)
	case KindReal:
		dst = fmt.Appendf(dst, "%s -r %s\n", name, formatReal(f.Value.r))
	case KindString:
		s, err := enc.String(f.Value.s)
		if err != nil {
			return dst, fmt.Errorf("encoding field %q: %w", f.Name, err)
		}
		dst = fmt.Appendf(dst, "%s -s%d %s\n", name, len(s), s)
	default:
		return dst, fmt.Errorf("%w: field %q", ErrInvalidValue, f.Name)
	}

	return dst, nil
}
