package engine

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/marcus/arb/internal/config"
	"github.com/marcus/arb/internal/onboard"
	"github.com/marcus/arb/internal/overrides"
	"github.com/marcus/arb/internal/state"
	"github.com/marcus/arb/internal/styles"
	"github.com/marcus/arb/internal/theme"
	"github.com/marcus/arb/internal/window"
)

type fakeHost struct {
	st         overrides.State
	appearance theme.Appearance
	fullscreen bool
	writes     int
}

func (h *fakeHost) Overrides() overrides.State      { return h.st.Clone() }
func (h *fakeHost) SetOverrides(st overrides.State) { h.st = st; h.writes++ }
func (h *fakeHost) Appearance() theme.Appearance    { return h.appearance }
func (h *fakeHost) IsFullscreen() bool              { return h.fullscreen }

func newTestReconciler(t *testing.T, store *state.Store, cfg *config.Config) *Reconciler {
	t.Helper()
	if store == nil {
		store = state.New(t.TempDir())
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return New(Options{
		Store:      store,
		Config:     cfg,
		LoadConfig: func() (*config.Config, error) { return cfg, nil },
		Logger:     slog.New(slog.DiscardHandler),
	})
}

func TestDispatch_StartupDarkUsesPair(t *testing.T) {
	r := newTestReconciler(t, nil, nil)
	host := &fakeHost{appearance: theme.Dark}

	out := r.Dispatch(host, Event{Kind: AppearanceChanged})
	if !out.Wrote || host.writes != 1 {
		t.Fatalf("wrote=%v writes=%d", out.Wrote, host.writes)
	}
	if host.st.AppliedTheme != "arb-dark" || out.Theme.Source != theme.SourcePair {
		t.Errorf("applied %q from %s", host.st.AppliedTheme, out.Theme.Source)
	}
	if host.st.Colors == nil {
		t.Error("colors not derived")
	}
}

func TestDispatch_RepeatedEventsDoNotWrite(t *testing.T) {
	r := newTestReconciler(t, nil, nil)
	host := &fakeHost{appearance: theme.Light, fullscreen: true}

	r.Dispatch(host, Event{Kind: AppearanceChanged})
	for _, k := range []Kind{AppearanceChanged, GeometryChanged, GeometryChanged, AppearanceChanged} {
		if out := r.Dispatch(host, Event{Kind: k}); out.Wrote {
			t.Errorf("%s: unexpected write", k)
		}
	}
	if host.writes != 1 {
		t.Errorf("writes = %d, want 1", host.writes)
	}
}

func TestDispatch_AppearanceFlip(t *testing.T) {
	r := newTestReconciler(t, nil, nil)
	host := &fakeHost{appearance: theme.Dark}
	r.Dispatch(host, Event{Kind: AppearanceChanged})

	host.appearance = theme.Light
	out := r.Dispatch(host, Event{Kind: AppearanceChanged})
	if !out.Wrote || host.st.AppliedTheme != "catppuccin-latte" {
		t.Errorf("wrote=%v applied=%q", out.Wrote, host.st.AppliedTheme)
	}
}

func TestDispatch_ExplicitOverrideIgnoresAppearance(t *testing.T) {
	r := newTestReconciler(t, nil, nil)
	host := &fakeHost{
		appearance: theme.Light,
		st:         overrides.State{ExplicitTheme: "dracula-plus"},
	}

	r.Dispatch(host, Event{Kind: AppearanceChanged})
	if host.st.AppliedTheme != "dracula-plus" {
		t.Errorf("applied %q, want dracula-plus", host.st.AppliedTheme)
	}
}

func TestDispatch_ConfigOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Appearance.LightOverride = "tokyo-night-day"
	r := newTestReconciler(t, nil, cfg)

	host := &fakeHost{appearance: theme.Light}
	r.Dispatch(host, Event{Kind: AppearanceChanged})
	if host.st.AppliedTheme != "tokyo-night-day" {
		t.Errorf("light: applied %q", host.st.AppliedTheme)
	}

	host.appearance = theme.Dark
	r.Dispatch(host, Event{Kind: AppearanceChanged})
	if host.st.AppliedTheme != "arb-dark" {
		t.Errorf("dark: applied %q", host.st.AppliedTheme)
	}

	// Window-level per-appearance override beats the config one.
	host.appearance = theme.Light
	host.st.LightTheme = "arb-light"
	r.Dispatch(host, Event{Kind: AppearanceChanged})
	if host.st.AppliedTheme != "arb-light" {
		t.Errorf("window override: applied %q", host.st.AppliedTheme)
	}
}

func TestDispatch_UnknownWindowIDsFallBackToConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Appearance.Override = "gruvbox-dark"
	cfg.Appearance.LightOverride = "tokyo-night-day"

	r := newTestReconciler(t, nil, cfg)
	host := &fakeHost{
		appearance: theme.Light,
		st:         overrides.State{ExplicitTheme: "no-such-theme"},
	}
	out := r.Dispatch(host, Event{Kind: AppearanceChanged})
	if host.st.AppliedTheme != "gruvbox-dark" || out.Theme.Source != theme.SourceExplicit {
		t.Errorf("explicit: applied %q from %s, want gruvbox-dark from explicit", host.st.AppliedTheme, out.Theme.Source)
	}

	cfg.Appearance.Override = ""
	host.st = overrides.State{LightTheme: "no-such-theme"}
	out = r.Dispatch(host, Event{Kind: AppearanceChanged})
	if host.st.AppliedTheme != "tokyo-night-day" || out.Theme.Source != theme.SourcePerAppearance {
		t.Errorf("per-appearance: applied %q from %s, want tokyo-night-day", host.st.AppliedTheme, out.Theme.Source)
	}
}

func TestDispatch_UnknownIDWithoutConfigFallbackIsSkipped(t *testing.T) {
	r := newTestReconciler(t, nil, nil)
	host := &fakeHost{
		appearance: theme.Dark,
		st:         overrides.State{ExplicitTheme: "no-such-theme"},
	}
	out := r.Dispatch(host, Event{Kind: AppearanceChanged})
	if host.st.AppliedTheme != "arb-dark" {
		t.Errorf("applied %q, want arb-dark", host.st.AppliedTheme)
	}
	if !slices.Contains(out.Theme.Skipped, "no-such-theme") {
		t.Errorf("skipped = %v, want no-such-theme", out.Theme.Skipped)
	}
}

func TestDispatch_AppearanceFollowsPairAfterOnboarding(t *testing.T) {
	dir := t.TempDir()
	store := state.New(dir)
	cfgPath := filepath.Join(dir, "config.json")

	ti := &onboard.ThemeInstaller{ConfigPath: cfgPath, Pair: styles.DefaultPair()}
	if err := ti.Install(context.Background()); err != nil {
		t.Fatalf("theme step: %v", err)
	}
	cfg, err := config.LoadFrom(cfgPath)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	r := newTestReconciler(t, store, cfg)
	host := &fakeHost{appearance: theme.Dark}

	r.Dispatch(host, Event{Kind: AppearanceChanged})
	if host.st.AppliedTheme != styles.ArbDark {
		t.Errorf("dark: applied %q, want %q", host.st.AppliedTheme, styles.ArbDark)
	}

	host.appearance = theme.Light
	out := r.Dispatch(host, Event{Kind: AppearanceChanged})
	if host.st.AppliedTheme != styles.CatppuccinLatte || out.Theme.Source != theme.SourcePair {
		t.Errorf("light: applied %q from %s, want %q from pair", host.st.AppliedTheme, out.Theme.Source, styles.CatppuccinLatte)
	}

	cfg.Appearance.LightOverride = styles.TokyoNightDay
	r.Dispatch(host, Event{Kind: AppearanceChanged})
	if host.st.AppliedTheme != styles.TokyoNightDay {
		t.Errorf("light override: applied %q, want %q", host.st.AppliedTheme, styles.TokyoNightDay)
	}
}

func TestDispatch_UserSelectedPersists(t *testing.T) {
	store := state.New(t.TempDir())
	r := newTestReconciler(t, store, nil)
	host := &fakeHost{appearance: theme.Dark}
	r.Dispatch(host, Event{Kind: AppearanceChanged})

	out := r.Dispatch(host, Selected("tokyo-night"))
	if !out.Wrote || host.st.AppliedTheme != "tokyo-night" {
		t.Fatalf("wrote=%v applied=%q", out.Wrote, host.st.AppliedTheme)
	}
	if host.writes != 2 {
		t.Errorf("writes = %d, want 2", host.writes)
	}

	id, ok, err := store.LoadTheme()
	if err != nil || !ok || id != "tokyo-night" {
		t.Errorf("persisted = %q, %v, %v", id, ok, err)
	}

	// A fresh reconciler picks the selection up from disk.
	r2 := newTestReconciler(t, store, nil)
	host2 := &fakeHost{appearance: theme.Light}
	r2.Dispatch(host2, Event{Kind: AppearanceChanged})
	if host2.st.AppliedTheme != "tokyo-night" {
		t.Errorf("restart: applied %q", host2.st.AppliedTheme)
	}
}

func TestDispatch_UserSelectedUnknownIgnored(t *testing.T) {
	store := state.New(t.TempDir())
	r := newTestReconciler(t, store, nil)
	host := &fakeHost{appearance: theme.Dark}
	r.Dispatch(host, Event{Kind: AppearanceChanged})

	out := r.Dispatch(host, Selected("not-a-theme"))
	if out.Wrote || host.st.AppliedTheme != "arb-dark" {
		t.Errorf("wrote=%v applied=%q", out.Wrote, host.st.AppliedTheme)
	}
	if _, ok, _ := store.LoadTheme(); ok {
		t.Error("unknown theme must not be persisted")
	}
}

func TestDispatch_UserSelectedWriteFailureStillApplies(t *testing.T) {
	// A regular file where the config directory should be.
	blocker := filepath.Join(t.TempDir(), "arb")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	r := newTestReconciler(t, state.New(blocker), nil)
	host := &fakeHost{appearance: theme.Dark}

	r.Dispatch(host, Selected("gruvbox-dark"))
	if host.st.AppliedTheme != "gruvbox-dark" {
		t.Errorf("applied %q, want in-memory selection", host.st.AppliedTheme)
	}
}

func TestDispatch_NoThemeKeepsCurrent(t *testing.T) {
	r := newTestReconciler(t, nil, nil)
	host := &fakeHost{appearance: theme.Dark}
	r.Dispatch(host, Event{Kind: AppearanceChanged})
	before := host.st.Clone()

	broken := config.Default()
	broken.Appearance.Dark = "missing"
	broken.Appearance.Light = "missing"
	r.loadConfig = func() (*config.Config, error) { return broken, nil }

	out := r.Dispatch(host, Event{Kind: ConfigReloaded})
	if !out.NoTheme {
		t.Error("expected NoTheme")
	}
	if out.Wrote || !host.st.Equal(before) {
		t.Error("state must be left untouched")
	}
}

func TestDispatch_ConfigReloadFailureKeepsConfig(t *testing.T) {
	r := newTestReconciler(t, nil, nil)
	r.loadConfig = func() (*config.Config, error) { return nil, errors.New("bad json") }
	host := &fakeHost{appearance: theme.Dark}

	out := r.Dispatch(host, Event{Kind: ConfigReloaded})
	if out.NoTheme || host.st.AppliedTheme != "arb-dark" {
		t.Errorf("noTheme=%v applied=%q", out.NoTheme, host.st.AppliedTheme)
	}
}

func TestDispatch_ConfigReloadPicksUpExternalSelection(t *testing.T) {
	store := state.New(t.TempDir())
	r := newTestReconciler(t, store, nil)
	host := &fakeHost{appearance: theme.Dark}
	r.Dispatch(host, Selected("tokyo-night"))

	// Another window selects a different theme.
	if err := store.SaveTheme("catppuccin-mocha"); err != nil {
		t.Fatal(err)
	}
	r.Dispatch(host, Event{Kind: ConfigReloaded})
	if host.st.AppliedTheme != "catppuccin-mocha" {
		t.Errorf("applied %q, want catppuccin-mocha", host.st.AppliedTheme)
	}
}

func TestDispatch_CorruptPersistedThemeIgnored(t *testing.T) {
	store := state.New(t.TempDir())
	if err := os.MkdirAll(store.Dir(), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.ThemePath(), []byte("two words\n"), 0644); err != nil {
		t.Fatal(err)
	}
	r := newTestReconciler(t, store, nil)
	host := &fakeHost{appearance: theme.Dark}

	r.Dispatch(host, Event{Kind: AppearanceChanged})
	if host.st.AppliedTheme != "arb-dark" {
		t.Errorf("applied %q", host.st.AppliedTheme)
	}
}

func TestDispatch_GeometryToggle(t *testing.T) {
	r := newTestReconciler(t, nil, nil)
	host := &fakeHost{appearance: theme.Dark}
	r.Dispatch(host, Event{Kind: AppearanceChanged})

	host.fullscreen = true
	out := r.Dispatch(host, Event{Kind: GeometryChanged})
	if !out.Wrote || out.Mode != window.Fullscreen || host.st.WindowPadding == nil {
		t.Errorf("enter: %+v padding=%v", out, host.st.WindowPadding)
	}
	if r.Dispatch(host, Event{Kind: GeometryChanged}).Wrote {
		t.Error("repeated fullscreen event wrote")
	}

	host.fullscreen = false
	out = r.Dispatch(host, Event{Kind: GeometryChanged})
	if !out.Wrote || out.Mode != window.Normal || host.st.WindowPadding != nil {
		t.Errorf("leave: %+v", out)
	}
	if host.st.AppliedTheme != "arb-dark" {
		t.Error("geometry must not disturb theme")
	}
	if host.writes != 3 {
		t.Errorf("writes = %d, want 3", host.writes)
	}
}
