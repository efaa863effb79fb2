package theme

import (
	"github.com/marcus/arb/internal/overrides"
	"github.com/marcus/arb/internal/styles"
)

// Source names the precedence level a theme was resolved from.
type Source int

const (
	SourceNone Source = iota
	SourceExplicit
	SourcePersisted
	SourcePerAppearance
	SourcePair
)

func (s Source) String() string {
	switch s {
	case SourceExplicit:
		return "explicit"
	case SourcePersisted:
		return "persisted"
	case SourcePerAppearance:
		return "per-appearance"
	case SourcePair:
		return "pair"
	default:
		return "none"
	}
}

// Inputs is everything resolution depends on. Empty ids mean unset.
type Inputs struct {
	Appearance Appearance
	// Explicit ignores Appearance entirely.
	Explicit string
	// Persisted is the user's last saved selection. It counts as an
	// explicit choice when Explicit is unset.
	Persisted     string
	PerAppearance styles.Pair
	Pair          styles.Pair
}

// Resolution is the outcome of ResolveEffective.
type Resolution struct {
	ID     string
	Source Source
	// Skipped lists non-empty ids that were passed over because the
	// registry does not know them.
	Skipped []string
}

type candidate struct {
	id     string
	source Source
}

func pick(p styles.Pair, a Appearance) string {
	if a == Light {
		return p.Light
	}
	return p.Dark
}

// ResolveEffective picks the effective theme id. Precedence is explicit,
// persisted, per-appearance, then the pair; the first id the registry
// knows wins. Unknown ids fall through to the next level. ok is false
// when no level resolves.
func ResolveEffective(reg *styles.Registry, in Inputs) (Resolution, bool) {
	candidates := []candidate{
		{in.Explicit, SourceExplicit},
		{in.Persisted, SourcePersisted},
		{pick(in.PerAppearance, in.Appearance), SourcePerAppearance},
		{pick(in.Pair, in.Appearance), SourcePair},
	}

	var res Resolution
	for _, c := range candidates {
		if c.id == "" {
			continue
		}
		if reg.Has(c.id) {
			res.ID = c.id
			res.Source = c.source
			return res, true
		}
		res.Skipped = append(res.Skipped, c.id)
	}
	return res, false
}

// Apply records id as the applied theme in st, deriving colors from def.
// If id is already applied st is left untouched and Apply returns false.
func Apply(st *overrides.State, id string, def styles.Definition) bool {
	if st.AppliedTheme == id && st.Colors != nil {
		return false
	}
	d := styles.Derive(def)
	st.AppliedTheme = id
	st.Colors = &d
	return true
}

// Resolver binds ResolveEffective and Apply to one registry.
type Resolver struct {
	reg *styles.Registry
}

// NewResolver returns a resolver over reg.
func NewResolver(reg *styles.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Registry returns the registry the resolver looks ids up in.
func (r *Resolver) Registry() *styles.Registry { return r.reg }

// Reconcile resolves in and applies the result to st. When nothing
// resolves st is not modified and ok is false.
func (r *Resolver) Reconcile(st *overrides.State, in Inputs) (res Resolution, changed, ok bool) {
	res, ok = ResolveEffective(r.reg, in)
	if !ok {
		return res, false, false
	}
	def, _ := r.reg.Lookup(res.ID)
	return res, Apply(st, res.ID, def), true
}
