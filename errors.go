// SPDX-License-Identifier: EPL-2.0

package sphere

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteParams is wrapped by every missing parameter error so
	// callers can test for the whole class at once.
	ErrIncompleteParams = errors.New("not all parameters set")

	ErrMissingChannelCount = fmt.Errorf("%w: # channels not specified", ErrIncompleteParams)
	ErrMissingSampleWidth  = fmt.Errorf("%w: # sample bytes not specified", ErrIncompleteParams)
	ErrMissingSampleRate   = fmt.Errorf("%w: sampling rate not specified", ErrIncompleteParams)

	// ErrInvalidParams indicates a layout field holding a value that cannot
	// describe a frame, such as a string channel count or a zero width.
	ErrInvalidParams = errors.New("invalid stream parameters")

	// ErrAlreadyWriting is returned by SetParams once the header is on the sink.
	ErrAlreadyWriting = errors.New("cannot change parameters after starting to write")

	// ErrOutOfRange is returned by SetPos outside [0, sample_count].
	ErrOutOfRange = errors.New("position not in range")

	// ErrClosed is returned by any operation other than Close on a closed stream.
	ErrClosed = errors.New("stream is closed")
)
