package pipeline

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// progress shows the running step. The zero value does nothing.
type progress struct {
	s *spinner.Spinner
}

// newProgress returns a spinner writing to w when w is a terminal.
func newProgress(w io.Writer) *progress {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return &progress{}
	}
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(f))
	_ = s.Color("yellow")
	return &progress{s: s}
}

func (p *progress) start(description string) {
	if p.s == nil {
		return
	}
	p.s.Suffix = " Running " + description + "..."
	p.s.Start()
}

func (p *progress) stop() {
	if p.s == nil {
		return
	}
	p.s.Stop()
}
