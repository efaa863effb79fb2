package version

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// InstallMethod represents how arb was installed.
type InstallMethod string

const (
	InstallMethodAppBundle InstallMethod = "app-bundle"
	InstallMethodHomebrew  InstallMethod = "homebrew"
	InstallMethodGo        InstallMethod = "go"
	InstallMethodBinary    InstallMethod = "binary"
)

// HomebrewCask is the cask arb ships as.
const HomebrewCask = "szj2ys/arb/arb"

var (
	detectedMethod     InstallMethod
	detectedMethodOnce sync.Once
)

// DetectInstallMethod determines how arb was installed.
// Checks for an app bundle first, then Homebrew, then Go bin directories,
// and falls back to binary.
// Result is cached for the lifetime of the process.
func DetectInstallMethod() InstallMethod {
	detectedMethodOnce.Do(func() {
		exe, err := executable()
		if err != nil {
			detectedMethod = InstallMethodBinary
			return
		}
		detectedMethod = detectInstallMethod(exe)
	})
	return detectedMethod
}

func executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}

func detectInstallMethod(exe string) InstallMethod {
	if BundleRoot(exe) != "" {
		if isHomebrewInstall() {
			return InstallMethodHomebrew
		}
		return InstallMethodAppBundle
	}

	if isGoInstall(exe) {
		return InstallMethodGo
	}

	return InstallMethodBinary
}

// BundleRoot returns the enclosing "<Name>.app" directory when exe lives
// at <Name>.app/Contents/MacOS/<exe>, or "" otherwise.
func BundleRoot(exe string) string {
	macos := filepath.Dir(exe)
	contents := filepath.Dir(macos)
	app := filepath.Dir(contents)
	if filepath.Base(macos) != "MacOS" || filepath.Base(contents) != "Contents" {
		return ""
	}
	if !strings.HasSuffix(app, ".app") {
		return ""
	}
	return app
}

// isHomebrewInstall checks if the arb cask is installed.
func isHomebrewInstall() bool {
	if runtime.GOOS != "darwin" {
		return false
	}
	if _, err := exec.LookPath("brew"); err != nil {
		return false
	}
	out, err := exec.Command("brew", "list", "--cask", HomebrewCask).CombinedOutput()
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(string(out))) > 0
}

// isGoInstall checks if exe is in a Go bin directory.
func isGoInstall(exe string) bool {
	dir := filepath.Dir(exe)

	// Check GOBIN
	if gobin := os.Getenv("GOBIN"); gobin != "" {
		if dir == gobin {
			return true
		}
	}

	// Check GOPATH/bin
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		if dir == filepath.Join(gopath, "bin") {
			return true
		}
	}

	// Check default ~/go/bin
	if home, err := os.UserHomeDir(); err == nil {
		if dir == filepath.Join(home, "go", "bin") {
			return true
		}
	}

	// Heuristic: path contains /go/bin/
	sep := string(filepath.Separator)
	return strings.Contains(exe, sep+"go"+sep+"bin"+sep)
}
