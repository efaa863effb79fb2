package state

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestThemeRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	if err := s.SaveTheme("tokyo-night"); err != nil {
		t.Fatalf("SaveTheme() failed: %v", err)
	}
	id, ok, err := s.LoadTheme()
	if err != nil || !ok {
		t.Fatalf("LoadTheme() = %q, %v, %v", id, ok, err)
	}
	if id != "tokyo-night" {
		t.Errorf("LoadTheme() = %q, want tokyo-night", id)
	}
}

func TestLoadTheme_NeverSaved(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nonexistent"))

	id, ok, err := s.LoadTheme()
	if err != nil {
		t.Fatalf("LoadTheme() for missing file should not error, got %v", err)
	}
	if ok || id != "" {
		t.Errorf("LoadTheme() = %q, %v; want absent", id, ok)
	}
}

func TestLoadTheme_ToleratesWhitespace(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".theme"), []byte("  dracula-plus\n\n"), 0644); err != nil {
		t.Fatal(err)
	}

	id, ok, err := New(dir).LoadTheme()
	if err != nil || !ok || id != "dracula-plus" {
		t.Errorf("LoadTheme() = %q, %v, %v; want dracula-plus", id, ok, err)
	}
}

func TestLoadTheme_BlankFileIsAbsent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".theme"), []byte("\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := New(dir).LoadTheme(); ok || err != nil {
		t.Errorf("blank theme file: ok=%v err=%v, want absent", ok, err)
	}
}

func TestSaveTheme_RejectsAmbiguousIDs(t *testing.T) {
	s := New(t.TempDir())
	for _, id := range []string{"", "two words", "line\nbreak"} {
		if err := s.SaveTheme(id); !errors.Is(err, ErrInvalidTheme) {
			t.Errorf("SaveTheme(%q) error = %v, want ErrInvalidTheme", id, err)
		}
	}
	if _, err := os.Stat(s.ThemePath()); !os.IsNotExist(err) {
		t.Error("rejected ids must not create the theme file")
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "config", "arb")
	s := New(dir)

	if err := s.SaveVersion(6); err != nil {
		t.Fatalf("SaveVersion() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".config_version")); err != nil {
		t.Fatalf("version file not created: %v", err)
	}
}

func TestSaveTheme_Overwrites(t *testing.T) {
	s := New(t.TempDir())
	_ = s.SaveTheme("arb-dark")
	_ = s.SaveTheme("catppuccin-latte")

	id, _, _ := s.LoadTheme()
	if id != "catppuccin-latte" {
		t.Errorf("LoadTheme() = %q, want last write", id)
	}
}

func TestVersionRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	for _, n := range []int{0, 5, 6, 42} {
		if err := s.SaveVersion(n); err != nil {
			t.Fatalf("SaveVersion(%d) failed: %v", n, err)
		}
		got, ok, err := s.LoadVersion()
		if err != nil || !ok || got != n {
			t.Errorf("LoadVersion() = %d, %v, %v; want %d", got, ok, err, n)
		}
	}
}

func TestLoadVersion(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    int
		wantOK  bool
		corrupt bool
	}{
		{name: "missing file", content: nil},
		{name: "plain", content: ptr("6"), want: 6, wantOK: true},
		{name: "trailing newline", content: ptr("5\n"), want: 5, wantOK: true},
		{name: "surrounding whitespace", content: ptr("  7 \r\n"), want: 7, wantOK: true},
		{name: "empty", content: ptr(""), wantOK: false},
		{name: "non-numeric", content: ptr("six"), corrupt: true},
		{name: "negative", content: ptr("-1"), corrupt: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != nil {
				if err := os.WriteFile(filepath.Join(dir, ".config_version"), []byte(*tt.content), 0644); err != nil {
					t.Fatal(err)
				}
			}

			got, ok, err := New(dir).LoadVersion()
			if tt.corrupt {
				if !errors.Is(err, ErrCorrupt) {
					t.Fatalf("LoadVersion() error = %v, want ErrCorrupt", err)
				}
				if ok {
					t.Error("corrupt value must not report ok")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadVersion() error = %v", err)
			}
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("LoadVersion() = %d, %v; want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSaveVersion_RejectsNegative(t *testing.T) {
	if err := New(t.TempDir()).SaveVersion(-3); err == nil {
		t.Error("SaveVersion(-3) should fail")
	}
}

func TestOpen_UsesConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ARB_CONFIG_HOME", dir)

	s, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if s.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", s.Dir(), dir)
	}
}

func ptr(s string) *string { return &s }
