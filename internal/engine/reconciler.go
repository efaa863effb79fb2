package engine

import (
	"log/slog"

	"github.com/marcus/arb/internal/config"
	"github.com/marcus/arb/internal/overrides"
	"github.com/marcus/arb/internal/state"
	"github.com/marcus/arb/internal/styles"
	"github.com/marcus/arb/internal/theme"
	"github.com/marcus/arb/internal/window"
)

// Outcome describes what one Dispatch did.
type Outcome struct {
	// Wrote is true when the host's overrides were replaced.
	Wrote bool
	// NoTheme is true when no theme resolved; the applied theme was kept.
	NoTheme bool
	Theme   theme.Resolution
	Mode    window.Mode
}

// Options configures a Reconciler.
type Options struct {
	Registry *styles.Registry
	Store    *state.Store
	Config   *config.Config
	// LoadConfig re-reads configuration on ConfigReloaded. Defaults to
	// config.Load.
	LoadConfig func() (*config.Config, error)
	Logger     *slog.Logger
}

// Reconciler computes and applies the effective overrides for a window.
// It is not safe for concurrent use; hosts call it from their event loop.
type Reconciler struct {
	resolver   *theme.Resolver
	monitor    *window.Monitor
	store      *state.Store
	cfg        *config.Config
	loadConfig func() (*config.Config, error)
	logger     *slog.Logger

	persisted string
}

// New builds a reconciler and reads the persisted theme once.
func New(opts Options) *Reconciler {
	if opts.Registry == nil {
		opts.Registry = styles.NewBuiltinRegistry()
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.LoadConfig == nil {
		opts.LoadConfig = config.Load
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	r := &Reconciler{
		resolver:   theme.NewResolver(opts.Registry),
		monitor:    window.NewMonitor(window.LayoutFromConfig(opts.Config.Window)),
		store:      opts.Store,
		cfg:        opts.Config,
		loadConfig: opts.LoadConfig,
		logger:     opts.Logger,
	}
	r.persisted = r.loadPersisted()
	r.warnUnknownIDs()
	return r
}

// Persisted returns the persisted theme id as last read or written.
func (r *Reconciler) Persisted() string { return r.persisted }

// Config returns the active configuration.
func (r *Reconciler) Config() *config.Config { return r.cfg }

// Registry returns the theme registry.
func (r *Reconciler) Registry() *styles.Registry { return r.resolver.Registry() }

// Inputs returns the resolution inputs for st at appearance a. At each
// level the window's own id wins over the config's, unless the registry
// does not know it.
func (r *Reconciler) Inputs(st overrides.State, a theme.Appearance) theme.Inputs {
	ap := r.cfg.Appearance
	return theme.Inputs{
		Appearance: a,
		Explicit:   r.firstKnown(st.ExplicitTheme, ap.Override),
		Persisted:  r.persisted,
		PerAppearance: styles.Pair{
			Dark:  r.firstKnown(st.DarkTheme, ap.DarkOverride),
			Light: r.firstKnown(st.LightTheme, ap.LightOverride),
		},
		Pair: ap.Pair(),
	}
}

// Dispatch reconciles host for ev. Resolution and layout are both
// recomputed; the host is written at most once, and only when a field
// differs from what it already carries.
func (r *Reconciler) Dispatch(host Host, ev Event) Outcome {
	cur := host.Overrides()
	next := cur.Clone()

	switch ev.Kind {
	case UserSelected:
		r.selectTheme(&next, ev.ThemeID)
	case ConfigReloaded:
		r.reload(&next)
	}

	var out Outcome
	res, _, ok := r.resolver.Reconcile(&next, r.Inputs(next, host.Appearance()))
	out.Theme = res
	if !ok {
		out.NoTheme = true
		r.logger.Warn("no theme resolved, keeping current", "event", ev.Kind, "skipped", res.Skipped, "applied", cur.AppliedTheme)
	} else if len(res.Skipped) > 0 {
		r.logger.Debug("skipped unknown themes", "skipped", res.Skipped, "using", res.ID)
	}

	next, _ = r.monitor.OnGeometryChanged(host.IsFullscreen(), next)
	out.Mode = window.ModeOf(next)

	if !next.Equal(cur) {
		host.SetOverrides(next)
		out.Wrote = true
	}
	r.logger.Debug("reconciled", "event", ev.Kind, "theme", res.ID, "source", res.Source, "mode", out.Mode, "wrote", out.Wrote)
	return out
}

func (r *Reconciler) selectTheme(st *overrides.State, id string) {
	if !r.Registry().Has(id) {
		r.logger.Warn("ignoring selection of unknown theme", "theme", id)
		return
	}
	st.ExplicitTheme = id
	r.persisted = id
	if r.store == nil {
		return
	}
	if err := r.store.SaveTheme(id); err != nil {
		r.logger.Warn("failed to persist theme selection", "theme", id, "err", err)
	}
}

func (r *Reconciler) reload(st *overrides.State) {
	cfg, err := r.loadConfig()
	if err != nil {
		r.logger.Warn("config reload failed, keeping previous config", "err", err)
	} else {
		r.cfg = cfg
		r.monitor.SetLayout(window.LayoutFromConfig(cfg.Window))
	}

	prev := r.persisted
	r.persisted = r.loadPersisted()
	// A selection made in another window replaces this window's copy of
	// the old one.
	if r.persisted != prev && st.ExplicitTheme == prev {
		st.ExplicitTheme = ""
	}
	r.warnUnknownIDs()
}

func (r *Reconciler) loadPersisted() string {
	if r.store == nil {
		return ""
	}
	id, ok, err := r.store.LoadTheme()
	if err != nil {
		r.logger.Warn("ignoring persisted theme", "err", err)
		return ""
	}
	if !ok {
		return ""
	}
	return id
}

func (r *Reconciler) warnUnknownIDs() {
	ap := r.cfg.Appearance
	for _, ref := range []struct{ key, id string }{
		{"appearance.dark", ap.Dark},
		{"appearance.light", ap.Light},
		{"appearance.override", ap.Override},
		{"appearance.darkOverride", ap.DarkOverride},
		{"appearance.lightOverride", ap.LightOverride},
		{".theme", r.persisted},
	} {
		if ref.id != "" && !r.Registry().Has(ref.id) {
			r.logger.Warn("unknown theme id, ignoring", "key", ref.key, "theme", ref.id)
		}
	}
}

// firstKnown returns the first id the registry knows. When none is known
// it returns the first non-empty id so resolution reports it as skipped.
func (r *Reconciler) firstKnown(ids ...string) string {
	fallback := ""
	for _, id := range ids {
		if id == "" {
			continue
		}
		if r.Registry().Has(id) {
			return id
		}
		if fallback == "" {
			fallback = id
		}
	}
	return fallback
}
