// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not a valid AIFF or AIFF-C file.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout indicates an AIFF file whose parameters
	// cannot be read or are out of range.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
