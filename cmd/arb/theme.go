package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/arb/internal/styles"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "List, select and inspect themes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List built-in themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			current, _ := resolveCurrent(a)
			out := cmd.OutOrStdout()
			for _, id := range a.reg.IDs() {
				def, _ := a.reg.Lookup(id)
				marker := " "
				if id == current.ID {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-20s %s\n", marker, id, styles.RenderSwatch(def))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <id>",
		Short: "Persist a theme selection for every window",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return styles.NewBuiltinRegistry().IDs(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			id := args[0]
			if !a.reg.Has(id) {
				return fmt.Errorf("unknown theme %q (see `arb theme list`)", id)
			}
			if err := a.store.SaveTheme(id); err != nil {
				return fmt.Errorf("save theme: %w", err)
			}
			a.logger.Info("theme selected", "theme", id, "path", a.store.ThemePath())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "current",
		Short: "Show the theme a new window would use and why",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			def, res := resolveCurrent(a)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", def.ID, res.Source)
			for _, id := range res.Skipped {
				fmt.Fprintf(out, "  skipped unknown theme %q\n", id)
			}
			return nil
		},
	})
	return cmd
}
