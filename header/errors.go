// SPDX-License-Identifier: EPL-2.0

package header

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is wrapped by every error caused by bytes that are not a
	// well formed SPHERE header.
	ErrFormat = errors.New("not a SPHERE header")

	// ErrBadMagic indicates the first 8 bytes are not "NIST_1A\n".
	ErrBadMagic = fmt.Errorf("%w: bad magic", ErrFormat)

	// ErrBadSize indicates the header size field is not a usable decimal.
	ErrBadSize = fmt.Errorf("%w: bad header size", ErrFormat)

	// ErrMalformedField indicates a line that is not "name type value".
	ErrMalformedField = fmt.Errorf("%w: malformed field", ErrFormat)

	// ErrUnknownFieldType indicates a type tag other than -i, -r or -sN.
	ErrUnknownFieldType = fmt.Errorf("%w: unknown field type", ErrFormat)

	// ErrTruncatedHeader indicates the header block ended before end_head.
	ErrTruncatedHeader = errors.New("header chunk missing")

	// ErrHeaderTooLarge indicates the encoded fields do not fit in the
	// codec's fixed header size.
	ErrHeaderTooLarge = errors.New("header does not fit in header size")

	// ErrInvalidValue indicates a value that is not an integer, real or string.
	ErrInvalidValue = errors.New("field value must be integer, real or string")

	// ErrInvalidName indicates a field name that cannot be written to a header line.
	ErrInvalidName = errors.New("invalid field name")
)

// FieldError reports the header line that failed to decode.
type FieldError struct {
	Line int    // 1-based line number inside the header block
	Text string // raw line, decoded for display
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("header line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
