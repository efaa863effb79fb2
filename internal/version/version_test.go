package version

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestDisplay(t *testing.T) {
	tests := map[string]string{
		"v0.3.2":     "0.3.2",
		"V0.3.2":     "0.3.2",
		"0.3.2":      "0.3.2",
		"  v0.3.2  ": "0.3.2",
	}
	for in, want := range tests {
		if got := Display(in); got != want {
			t.Errorf("Display(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"v1.2.3", []int{1, 2, 3}},
		{"1.2.3-beta+build", []int{1, 2, 3}},
		{"1.x", []int{1, 0}},
		{"10", []int{10}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := ParseNumbers(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseNumbers(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"v0.3.2", "0.3.2", 0},
		{"1.2", "1.2.0", 0},
		{"0.3.10", "0.3.9", 1},
		{"0.4.0", "0.10.0", -1},
		{"v1.0.0", "v0.99.99", 1},
		{"1.0.0-beta", "1.0.0", 0},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	if !IsNewer("v0.5.0", "0.4.9") || IsNewer("0.4.9", "0.4.9") {
		t.Error("IsNewer mismatch")
	}
}

func TestRequiredConfigVersion(t *testing.T) {
	if RequiredConfigVersion < 1 {
		t.Errorf("RequiredConfigVersion = %d", RequiredConfigVersion)
	}
}

func TestIsDevelopment(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "dev"
	if !IsDevelopment() {
		t.Error("dev should be development")
	}
	Version = "v0.4.0"
	if IsDevelopment() || Current() != "0.4.0" {
		t.Errorf("release build: dev=%v current=%q", IsDevelopment(), Current())
	}
}

func TestBundleRoot(t *testing.T) {
	tests := []struct {
		exe  string
		want string
	}{
		{"/Applications/Arb.app/Contents/MacOS/arb", "/Applications/Arb.app"},
		{"/Users/me/Applications/Arb.app/Contents/MacOS/arb-gui", "/Users/me/Applications/Arb.app"},
		{"/usr/local/bin/arb", ""},
		{"/opt/Contents/MacOS/arb", ""},
	}
	for _, tt := range tests {
		if got := BundleRoot(filepath.FromSlash(tt.exe)); got != filepath.FromSlash(tt.want) {
			t.Errorf("BundleRoot(%q) = %q, want %q", tt.exe, got, tt.want)
		}
	}
}

func TestDetectInstallMethod_GoBin(t *testing.T) {
	gobin := t.TempDir()
	t.Setenv("GOBIN", gobin)

	if got := detectInstallMethod(filepath.Join(gobin, "arb")); got != InstallMethodGo {
		t.Errorf("got %s, want go", got)
	}
}

func TestDetectInstallMethod_Binary(t *testing.T) {
	t.Setenv("GOBIN", "")
	t.Setenv("GOPATH", "")
	t.Setenv("HOME", t.TempDir())

	if got := detectInstallMethod("/usr/local/bin/arb"); got != InstallMethodBinary {
		t.Errorf("got %s, want binary", got)
	}
}

func TestDetectInstallMethod_Cached(t *testing.T) {
	first := DetectInstallMethod()
	if second := DetectInstallMethod(); second != first {
		t.Errorf("cached method changed: %s -> %s", first, second)
	}
}
