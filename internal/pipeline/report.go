package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"git.home.luguber.info/inful/ppt/internal/git"
)

// Report is the outcome of a CI run.
type Report struct {
	RunID    string
	Head     *git.Head
	Steps    []StepResult
	Passed   bool
	Aborted  bool
	Duration time.Duration
}

// Failed returns the results of steps that did not pass.
func (r *Report) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Status == StatusFailed || s.Status == StatusError {
			failed = append(failed, s)
		}
	}
	return failed
}

// WriteSummary renders the step results as a table.
func (r *Report) WriteSummary(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Local CI " + r.RunID)
	t.AppendHeader(table.Row{"Step", "Description", "Status", "Exit code", "Duration"})

	for _, s := range r.Steps {
		code := fmt.Sprintf("%d", s.ExitCode)
		if s.Status == StatusError || s.Status == StatusSkipped {
			code = "-"
		}
		t.AppendRow(table.Row{s.Step.Name, s.Step.Description, string(s.Status), code, s.Duration.Round(time.Millisecond).String()})
	}

	overall := "PASSED"
	switch {
	case r.Aborted:
		overall = "ABORTED"
	case !r.Passed:
		overall = "FAILED"
	}
	t.AppendFooter(table.Row{"", "", overall, "", r.Duration.Round(time.Millisecond).String()})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
