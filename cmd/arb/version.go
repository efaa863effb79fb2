package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/arb/internal/onboard"
	"github.com/marcus/arb/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build, install and onboarding version details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "arb %s\n", version.Display(effectiveVersion(version.Version)))
			fmt.Fprintf(out, "install method:  %s\n", version.DetectInstallMethod())

			recorded := "none"
			if n, ok, err := a.store.LoadVersion(); err != nil {
				recorded = "unreadable"
			} else if ok {
				recorded = fmt.Sprint(n)
			}
			fmt.Fprintf(out, "config version:  %s (required %d)\n", recorded, version.RequiredConfigVersion)

			stage, err := onboard.Evaluate(a.store, version.RequiredConfigVersion)
			if err != nil {
				a.logger.Debug("config version unreadable", "err", err)
			}
			fmt.Fprintf(out, "onboarding:      %s\n", stage)
			return nil
		},
	}
}
