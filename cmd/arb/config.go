package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/arb/internal/config"
	"github.com/marcus/arb/internal/engine"
	"github.com/marcus/arb/internal/overrides"
	"github.com/marcus/arb/internal/styles"
	"github.com/marcus/arb/internal/theme"
)

func newConfigCmd() *cobra.Command {
	var (
		ensureOnly bool
		printFile  bool
		plain      bool
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or show the user config (arb.lua)",
		Long: `Creates a minimal arb.lua in the config directory if none exists.
An existing file is never modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			path, err := config.UserConfigPath()
			if err != nil {
				return err
			}
			created, err := config.EnsureUserConfig(path)
			if err != nil {
				return err
			}
			if created {
				a.logger.Info("created user config", "path", path)
			}
			if ensureOnly {
				return nil
			}
			if !printFile {
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			if plain {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			return styles.Highlight(cmd.OutOrStdout(), "lua", string(src), currentTheme(a))
		},
	}
	cmd.Flags().BoolVar(&ensureOnly, "ensure-only", false, "create the file if missing and print nothing")
	cmd.Flags().BoolVar(&printFile, "print", false, "print the file with syntax highlighting")
	cmd.Flags().BoolVar(&plain, "plain", false, "with --print, disable highlighting")
	return cmd
}

// currentTheme resolves the theme a freshly opened window would use.
func currentTheme(a *app) styles.Definition {
	def, _ := resolveCurrent(a)
	return def
}

func resolveCurrent(a *app) (styles.Definition, theme.Resolution) {
	rec := engine.New(engine.Options{
		Registry: a.reg,
		Store:    a.store,
		Config:   a.cfg,
		Logger:   a.logger,
	})
	appearance, _ := theme.DetectAppearance()
	res, ok := theme.ResolveEffective(a.reg, rec.Inputs(overrides.State{}, appearance))
	if !ok {
		def, _ := a.reg.Lookup(styles.ArbDark)
		return def, res
	}
	def, _ := a.reg.Lookup(res.ID)
	return def, res
}
