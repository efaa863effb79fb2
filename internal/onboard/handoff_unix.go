//go:build unix

package onboard

import (
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// HandOff replaces the current process with a login shell. It returns
// only on failure.
func HandOff(shell string) error {
	path, err := exec.LookPath(loginShell(shell))
	if err != nil {
		return err
	}
	return unix.Exec(path, []string{"-" + filepath.Base(path)}, os.Environ())
}
