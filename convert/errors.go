// SPDX-License-Identifier: EPL-2.0

package convert

import "errors"

var (
	// ErrSameFile is returned when the output path resolves to the input.
	ErrSameFile = errors.New("output file is the input file")

	// ErrUnknownOutputFormat is returned for a format with no encoder.
	ErrUnknownOutputFormat = errors.New("unknown output format")
)
