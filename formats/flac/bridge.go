// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Decode transcodes a native FLAC payload into an equivalent AIFF payload
// by running the external flac tool with the payload on standard input.
// The subprocess is owned by this call: its pipes are fully drained and it
// is waited on before Decode returns.
func Decode(payload []byte) ([]byte, error) {
	tool, err := FindConverter()
	if err != nil {
		return nil, err
	}

	return run(tool, payload)
}

func run(tool string, payload []byte) ([]byte, error) {
	cmd := exec.Command(tool,
		"--stdout",
		"--totally-silent",
		"--decode",
		"--force-aiff-format",
		"-",
	)
	cmd.Stdin = bytes.NewReader(payload)

	var out bytes.Buffer
	cmd.Stdout = &out
	hideWindow(cmd)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: running %s: %v", ErrDecode, tool, err)
		}
		// The converter signals bad input through its exit status, but
		// anything it managed to decode is already on stdout. Whether
		// that output parses as AIFF is the caller's call.
	}

	return out.Bytes(), nil
}

// FindConverter locates the flac executable. Bundled platform builds next
// to the running binary take precedence over a flac found on the PATH.
func FindConverter() (string, error) {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		for _, name := range bundledNames() {
			p := filepath.Join(dir, name)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p, nil
			}
		}
	}

	if p, err := exec.LookPath("flac"); err == nil {
		return p, nil
	}

	return "", ErrConverterNotFound
}

func bundledNames() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"flac-win32.exe"}
	case "darwin":
		return []string{"flac-mac"}
	default:
		if runtime.GOARCH == "amd64" {
			return []string{"flac-linux-x86_64", "flac-linux-x86"}
		}
		return []string{"flac-linux-x86"}
	}
}
