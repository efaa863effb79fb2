package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/arb/internal/config"
	"github.com/marcus/arb/internal/onboard"
	"github.com/marcus/arb/internal/version"
)

func newOnboardCmd() *cobra.Command {
	var (
		yes     bool
		noShell bool
	)
	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Offer the optional shell, theme and delta setup",
		Long: `Walks through the optional setup components. Each step is optional and
a failed step never blocks the others. The config version is recorded on
exit, so onboarding is offered again only after an upgrade that needs it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}

			interactive := term.IsTerminal(int(os.Stdin.Fd()))
			stageEnv := os.Getenv(onboard.StageEnv)
			width := 80
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}

			wf := &onboard.Workflow{
				Store:      a.store,
				Required:   version.RequiredConfigVersion,
				Paths:      onboard.DefaultPaths(),
				Prompter:   choosePrompter(yes, interactive),
				Runner:     onboard.NewExecRunner(),
				Out:        cmd.OutOrStdout(),
				Logger:     a.logger,
				ConfigPath: config.ConfigPath(),
				Pair:       a.cfg.Appearance.Pair(),
				Banner:     onboard.Banner(onboard.StageFromEnv(stageEnv), width),
			}

			if _, err := wf.Run(cmd.Context()); err != nil {
				return err
			}
			if !onboard.ShouldHandOff(noShell, interactive, stageEnv) {
				return nil
			}
			if err := onboard.HandOff(""); err != nil {
				return fmt.Errorf("start login shell: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "accept every component without prompting")
	cmd.Flags().BoolVar(&noShell, "no-shell", false, "exit instead of starting a login shell when done")
	return cmd
}

func choosePrompter(yes, interactive bool) onboard.Prompter {
	switch {
	case yes:
		return onboard.AcceptAll{}
	case interactive:
		return onboard.HuhPrompter{Theme: huh.ThemeCharm(), Accessible: os.Getenv("ACCESSIBLE") != ""}
	default:
		return &onboard.LinePrompter{In: os.Stdin, Out: os.Stderr}
	}
}
