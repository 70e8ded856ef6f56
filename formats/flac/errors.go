// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrConverterNotFound indicates no flac executable could be located,
	// neither bundled next to the running binary nor on the PATH.
	ErrConverterNotFound = errors.New("flac converter not found")

	// ErrDecode indicates the flac converter subprocess could not be run.
	ErrDecode = errors.New("flac decode failed")
)
