// SPDX-License-Identifier: EPL-2.0

package mic

import "errors"

var (
	// ErrNoDefaultDevice is returned when the host has no default input
	// device.
	ErrNoDefaultDevice = errors.New("mic: no default input device")

	// ErrDeviceUnavailable is returned when the configured device index
	// does not name an input device.
	ErrDeviceUnavailable = errors.New("mic: device unavailable")
)
