// SPDX-License-Identifier: EPL-2.0

//go:build windows

package flac

import (
	"os/exec"
	"syscall"
)

// hideWindow keeps the converter from flashing a console window.
func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
