// Package state persists the two pieces of state that survive restarts:
// the selected theme id and the onboarding config version. Both are
// single-value plain-text files in the arb config directory.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/marcus/arb/internal/config"
)

const (
	themeFile   = ".theme"
	versionFile = ".config_version"
)

var (
	// ErrCorrupt is returned when a persisted value cannot be parsed.
	// Callers treat it the same as absence.
	ErrCorrupt = errors.New("corrupt persisted value")
	// ErrInvalidTheme is returned when saving an id that could not be read
	// back unambiguously.
	ErrInvalidTheme = errors.New("invalid theme id")
)

// Store reads and writes the persisted files under one directory. Writes
// are whole-file overwrites; a single GUI process owns the files.
type Store struct {
	mu  sync.Mutex
	dir string
}

// Open returns a store rooted at the default arb config directory.
func Open() (*Store, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	return New(dir), nil
}

// New returns a store rooted at dir.
// This is primarily for testing to avoid touching real user state.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store writes to.
func (s *Store) Dir() string { return s.dir }

// ThemePath returns the path of the persisted theme file.
func (s *Store) ThemePath() string { return filepath.Join(s.dir, themeFile) }

// VersionPath returns the path of the persisted config version file.
func (s *Store) VersionPath() string { return filepath.Join(s.dir, versionFile) }

// SaveTheme persists id as the selected theme.
func (s *Store) SaveTheme(id string) error {
	if id == "" || strings.ContainsAny(id, " \t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, id)
	}
	return s.write(s.ThemePath(), id+"\n")
}

// LoadTheme returns the persisted theme id. ok is false when no theme has
// ever been saved.
func (s *Store) LoadTheme() (id string, ok bool, err error) {
	raw, ok, err := s.read(s.ThemePath())
	if err != nil || !ok {
		return "", false, err
	}
	if strings.ContainsAny(raw, " \t\r\n") {
		return "", false, fmt.Errorf("%s: %w", s.ThemePath(), ErrCorrupt)
	}
	return raw, true, nil
}

// SaveVersion persists the onboarding config version.
func (s *Store) SaveVersion(n int) error {
	if n < 0 {
		return fmt.Errorf("config version must be non-negative, got %d", n)
	}
	return s.write(s.VersionPath(), strconv.Itoa(n)+"\n")
}

// LoadVersion returns the persisted config version. ok is false when the
// file is absent; a non-numeric value returns ErrCorrupt.
func (s *Store) LoadVersion() (n int, ok bool, err error) {
	raw, ok, err := s.read(s.VersionPath())
	if err != nil || !ok {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(raw)
	if convErr != nil || n < 0 {
		return 0, false, fmt.Errorf("%s: %q: %w", s.VersionPath(), raw, ErrCorrupt)
	}
	return n, true, nil
}

func (s *Store) write(path, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// read returns the trimmed file content; ok is false for a missing or
// blank file.
func (s *Store) read(path string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil // never set
	}
	if err != nil {
		return "", false, err
	}
	v := strings.TrimSpace(string(data))
	if v == "" {
		return "", false, nil
	}
	return v, true, nil
}
