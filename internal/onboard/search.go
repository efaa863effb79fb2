package onboard

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
)

// AppName is the bundle name installs use under Applications.
const AppName = "Arb"

var (
	// ErrNoResources means no candidate resource directory exists.
	ErrNoResources = errors.New("arb resources not found")
	// ErrNoCLI means the arb command could not be located.
	ErrNoCLI = errors.New("arb command not found")
)

// setupScript marks a directory as an arb resource directory.
const setupScript = "setup_zsh.sh"

// Paths are the environment facts the searches depend on. DefaultPaths
// fills them from the running process.
type Paths struct {
	Exe  string // running executable, symlinks resolved
	Home string
	Cwd  string
	// LookPath resolves a command on PATH. Defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// DefaultPaths returns Paths for the current process. Fields that cannot
// be determined are left empty and their candidates are skipped.
func DefaultPaths() Paths {
	p := Paths{LookPath: exec.LookPath}
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		p.Exe = exe
	}
	if home, err := os.UserHomeDir(); err == nil {
		p.Home = home
	}
	if cwd, err := os.Getwd(); err == nil {
		p.Cwd = cwd
	}
	return p
}

// bundleContents returns <App>.app/Contents for an executable inside a
// bundle's MacOS directory.
func (p Paths) bundleContents() string {
	if p.Exe == "" {
		return ""
	}
	return filepath.Dir(filepath.Dir(p.Exe))
}

func appContents(root string) string {
	return filepath.Join(root, AppName+".app", "Contents")
}

// ResourceCandidates lists resource directories in search order: the
// running bundle, the system Applications folder, the user's
// Applications folder, then the development checkout.
func (p Paths) ResourceCandidates() []string {
	var out []string
	if c := p.bundleContents(); c != "" {
		out = append(out, filepath.Join(c, "Resources"))
	}
	out = append(out, filepath.Join(appContents("/Applications"), "Resources"))
	if p.Home != "" {
		out = append(out, filepath.Join(appContents(filepath.Join(p.Home, "Applications")), "Resources"))
	}
	if p.Cwd != "" {
		out = append(out, filepath.Join(p.Cwd, "assets", "shell-integration"))
	}
	return out
}

// CLICandidates lists arb binaries in search order, excluding the PATH
// lookup which ResolveCLI performs last.
func (p Paths) CLICandidates() []string {
	var out []string
	if c := p.bundleContents(); c != "" {
		out = append(out, filepath.Join(c, "MacOS", "arb"))
	}
	out = append(out, filepath.Join(appContents("/Applications"), "MacOS", "arb"))
	if p.Home != "" {
		out = append(out, filepath.Join(appContents(filepath.Join(p.Home, "Applications")), "MacOS", "arb"))
	}
	return out
}

// FirstExisting returns the first candidate for which exists reports
// true.
func FirstExisting(candidates []string, exists func(string) bool) (string, bool) {
	for _, c := range candidates {
		if c != "" && exists(c) {
			return c, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Mode()&0111 != 0
}

// ResolveResources returns the first candidate directory holding the
// shell integration scripts.
func (p Paths) ResolveResources() (string, error) {
	dir, ok := FirstExisting(p.ResourceCandidates(), func(dir string) bool {
		return fileExists(filepath.Join(dir, setupScript))
	})
	if !ok {
		return "", ErrNoResources
	}
	return dir, nil
}

// ResolveCLI returns the arb binary to call back into.
func (p Paths) ResolveCLI() (string, error) {
	if bin, ok := FirstExisting(p.CLICandidates(), isExecutable); ok {
		return bin, nil
	}
	lookPath := p.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if bin, err := lookPath("arb"); err == nil {
		return bin, nil
	}
	return "", ErrNoCLI
}
