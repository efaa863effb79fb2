//go:build !unix

package onboard

import (
	"os"
	"os/exec"
)

// HandOff runs a login shell and exits with its status once it ends.
func HandOff(shell string) error {
	cmd := exec.Command(loginShell(shell))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return err
	}
	os.Exit(0)
	return nil
}
