// SPDX-License-Identifier: EPL-2.0

//go:build !windows

package flac

import "os/exec"

// hideWindow is a no-op outside Windows; there is no console window to hide.
func hideWindow(_ *exec.Cmd) {}
