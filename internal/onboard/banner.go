package onboard

import "github.com/charmbracelet/glamour"

const welcome = `# Welcome to Arb

Arb can set up a few optional extras:

- **Shell enhancements**: zsh plugins, the starship prompt and the ` + "`arb`" + ` command
- **Theme**: a default ` + "`config.json`" + ` with a dark and a light theme
- **delta**: syntax-highlighted git diffs

Existing configuration files are never overwritten.
`

const upgradeNote = `
> This release adds new optional components. Pick the ones you want.
`

// Banner renders the welcome text for stage at width columns. It falls
// back to the raw markdown if rendering fails.
func Banner(stage Stage, width int) string {
	md := welcome
	if stage == Upgrade {
		md += upgradeNote
	}

	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// StageFromEnv parses the stage a launcher passed down, defaulting to
// FirstRun.
func StageFromEnv(v string) Stage {
	for _, s := range []Stage{FirstRun, Upgrade, Normal} {
		if v == s.String() {
			return s
		}
	}
	return FirstRun
}
