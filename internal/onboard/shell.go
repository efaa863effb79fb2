package onboard

import "os"

// loginShell picks the shell to hand off to: the argument, then $SHELL,
// then zsh.
func loginShell(shell string) string {
	if shell != "" {
		return shell
	}
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/zsh"
}

// ShouldHandOff reports whether a finished workflow should replace the
// process with a login shell. A workflow started by the gate never does,
// since its parent is waiting to continue startup.
func ShouldHandOff(noShell, interactive bool, stageEnv string) bool {
	return !noShell && interactive && stageEnv == ""
}
