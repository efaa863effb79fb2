// Package version describes the running build: its release version, the
// onboarding config version it requires, and how it was installed.
package version

// RequiredConfigVersion is the onboarding version this build expects.
// Bump it only when onboarding must re-offer new optional components to
// existing users. Never decrement it.
const RequiredConfigVersion = 6

// Version is the release version, set at build time with
// -ldflags "-X github.com/marcus/arb/internal/version.Version=v0.4.0".
var Version = "dev"

// Current returns the build version without a leading "v".
func Current() string {
	return Display(Version)
}

// IsDevelopment reports whether the binary was built without a release
// version.
func IsDevelopment() bool {
	v := Current()
	return v == "" || v == "dev" || v == "unknown"
}
