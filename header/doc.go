// SPDX-License-Identifier: EPL-2.0

// Package header encodes and decodes NIST SPHERE header blocks.
//
// A SPHERE file starts with a fixed-size ASCII header:
//
//	NIST_1A
//	   1024
//	database_id -s3 RM1
//	channel_count -i 1
//	sample_count -i 48743
//	sample_rate -i 16000
//	sample_n_bytes -i 2
//	end_head
//
// followed by space padding up to the declared size (1024 bytes in
// practice) and then the raw PCM samples.
//
// # Fields
//
// Every line between the size field and end_head is "name type value",
// optionally followed by ";comment". The type tag is one of:
//   - -i: signed decimal integer
//   - -r: floating point number
//   - -sN: string of declared byte width N
//
// Values are modelled by Value, a tagged variant with exactly these three
// kinds. Info keeps fields in insertion order because that order decides
// the byte layout of a written header.
//
// # Codec
//
// Codec carries the configuration that used to be process-wide: the
// single-byte character set of the header text and the fixed header size.
//
//	codec := header.NewCodec(header.WithSize(2048))
//	info, size, err := codec.Parse(file)
//	block, err := codec.Serialize(info, 0)
//
// Serialize never grows a header past the configured size, it fails with
// ErrHeaderTooLarge instead, so that a header rewritten in place can
// never overlap sample data.
//
// # Errors
//   - ErrFormat wraps ErrBadMagic, ErrBadSize, ErrMalformedField and ErrUnknownFieldType
//   - ErrTruncatedHeader: the block ended before end_head
//   - ErrHeaderTooLarge: Serialize overflow
//   - *FieldError carries the failing line number
//
// # Limitations
//
// String values are written as-is. A value holding a newline or ';'
// produces a header that does not read back to the same value.
package header
