// Package processtest provides a recording process.Runner for tests.
package processtest

import (
	"context"
	"sync"

	"git.home.luguber.info/inful/ppt/internal/process"
)

// Result is the scripted outcome for a command name.
type Result struct {
	Code  int
	Err   error
	Panic any
}

// FakeRunner records every command and answers from Results keyed by command name.
// Unscripted commands exit 0.
type FakeRunner struct {
	mu       sync.Mutex
	Results  map[string]Result
	Commands []process.Command
}

// NewFakeRunner returns a FakeRunner with an empty script.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Results: map[string]Result{}}
}

// Script sets the outcome for name and returns f.
func (f *FakeRunner) Script(name string, r Result) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Results == nil {
		f.Results = map[string]Result{}
	}
	f.Results[name] = r
	return f
}

func (f *FakeRunner) Run(_ context.Context, cmd process.Command) (int, error) {
	f.mu.Lock()
	f.Commands = append(f.Commands, cmd)
	r := f.Results[cmd.Name]
	f.mu.Unlock()

	if r.Panic != nil {
		panic(r.Panic)
	}
	return r.Code, r.Err
}

// Argvs returns the recorded command lines.
func (f *FakeRunner) Argvs() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]string, len(f.Commands))
	for i, c := range f.Commands {
		out[i] = c.Argv()
	}
	return out
}

// FakeOpener records opened paths.
type FakeOpener struct {
	Paths []string
	Err   error
}

func (o *FakeOpener) Open(_ context.Context, path string) error {
	o.Paths = append(o.Paths, path)
	return o.Err
}
