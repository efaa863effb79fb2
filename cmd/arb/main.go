package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/marcus/arb/internal/onboard"
	"github.com/marcus/arb/internal/version"
)

func main() {
	root := newRootCmd()
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(effectiveVersion(version.Version)),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		if errors.Is(err, onboard.ErrInterrupted) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
