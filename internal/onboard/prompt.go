package onboard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/huh"
)

// ErrInterrupted is returned by prompters when the user aborts.
var ErrInterrupted = errors.New("onboarding interrupted")

// Prompter asks yes/no questions. Every question defaults to yes.
type Prompter interface {
	Confirm(ctx context.Context, title, description string) (bool, error)
}

// HuhPrompter asks with a huh confirm form.
type HuhPrompter struct {
	Theme      *huh.Theme
	Accessible bool
}

func (p HuhPrompter) Confirm(ctx context.Context, title, description string) (bool, error) {
	answer := true
	confirm := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&answer)

	theme := p.Theme
	if theme == nil {
		theme = huh.ThemeCharm()
	}
	form := huh.NewForm(huh.NewGroup(confirm)).
		WithTheme(theme).
		WithAccessible(p.Accessible)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || ctx.Err() != nil {
			return false, ErrInterrupted
		}
		return false, err
	}
	return answer, nil
}

// LinePrompter reads answers line by line. Empty input means yes.
// Reading happens on a separate goroutine so a cancelled context
// interrupts a prompt that is waiting for input.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer

	once  sync.Once
	lines chan lineResult
}

type lineResult struct {
	text string
	err  error
	eof  bool
}

func (p *LinePrompter) readLines() {
	scanner := bufio.NewScanner(p.In)
	for scanner.Scan() {
		p.lines <- lineResult{text: scanner.Text()}
	}
	p.lines <- lineResult{err: scanner.Err(), eof: true}
	close(p.lines)
}

func (p *LinePrompter) Confirm(ctx context.Context, title, description string) (bool, error) {
	if ctx.Err() != nil {
		return false, ErrInterrupted
	}
	p.once.Do(func() {
		p.lines = make(chan lineResult)
		go p.readLines()
	})
	for {
		if description != "" {
			fmt.Fprintf(p.Out, "%s\n  %s\n[Y/n] ", title, description)
		} else {
			fmt.Fprintf(p.Out, "%s [Y/n] ", title)
		}

		var line lineResult
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(p.Out)
			return false, ErrInterrupted
		case line, ok = <-p.lines:
		}
		if !ok || line.eof {
			if line.err != nil {
				return false, line.err
			}
			fmt.Fprintln(p.Out)
			return false, ErrInterrupted
		}

		switch strings.ToLower(strings.TrimSpace(line.text)) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.Out, "Please answer y or n.")
	}
}

// AcceptAll answers yes without asking.
type AcceptAll struct{}

func (AcceptAll) Confirm(context.Context, string, string) (bool, error) { return true, nil }
