// SPDX-License-Identifier: EPL-2.0

package earshot

import "errors"

// ErrWaitTimeout is returned by Recorder.Listen when no phrase starts
// before the configured timeout elapses.
var ErrWaitTimeout = errors.New("earshot: timed out waiting for phrase to start")
