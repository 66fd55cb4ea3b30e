// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnsupportedFormat is returned by Registry.Detect when no decoder
	// accepts the input.
	ErrUnsupportedFormat = errors.New("input file type is not supported")

	// ErrInvalidParams indicates a frame layout no container can hold.
	ErrInvalidParams = errors.New("invalid PCM parameters")
)
