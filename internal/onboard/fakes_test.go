package onboard

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"
)

type fakeRunner struct {
	mu      sync.Mutex
	ran     []Cmd
	fail    map[string]error  // keyed by Cmd.String() prefix
	outputs map[string]string // keyed by Cmd.String()
	paths   map[string]string
}

func (r *fakeRunner) failFor(c Cmd) error {
	for prefix, err := range r.fail {
		if strings.HasPrefix(c.String(), prefix) {
			return err
		}
	}
	return nil
}

func (r *fakeRunner) Run(_ context.Context, c Cmd) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ran = append(r.ran, c)
	return r.failFor(c)
}

func (r *fakeRunner) Output(_ context.Context, c Cmd) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ran = append(r.ran, c)
	if err := r.failFor(c); err != nil {
		return "", err
	}
	if out, ok := r.outputs[c.String()]; ok {
		return out, nil
	}
	return "", errors.New("exit status 1")
}

func (r *fakeRunner) LookPath(name string) (string, error) {
	if p, ok := r.paths[name]; ok {
		return p, nil
	}
	return "", exec.ErrNotFound
}

func (r *fakeRunner) commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.ran))
	for i, c := range r.ran {
		out[i] = c.String()
	}
	return out
}

// scriptedPrompter answers from a fixed list and records the titles.
type scriptedPrompter struct {
	answers []bool
	err     error // returned once answers run out
	asked   []string
}

func (p *scriptedPrompter) Confirm(_ context.Context, title, _ string) (bool, error) {
	p.asked = append(p.asked, title)
	if len(p.answers) == 0 {
		if p.err != nil {
			return false, p.err
		}
		return true, nil
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}
