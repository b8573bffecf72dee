package pipeline

import (
	"time"

	"git.home.luguber.info/inful/ppt/internal/config"
	"git.home.luguber.info/inful/ppt/internal/process"
)

// Step is one CI step.
type Step struct {
	Name        string
	Description string
	Command     process.Command
}

// StepsFromConfig builds steps from the configured commands. Commands run in dir.
func StepsFromConfig(steps []config.StepConfig, dir string) []Step {
	out := make([]Step, 0, len(steps))
	for _, s := range steps {
		desc := s.Description
		if desc == "" {
			desc = s.Name
		}
		out = append(out, Step{
			Name:        s.Name,
			Description: desc,
			Command:     process.Command{Name: s.Command[0], Args: s.Command[1:], Dir: dir},
		})
	}
	return out
}

// Status is the outcome of a step.
type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
	// StatusError means the tool could not be run at all.
	StatusError Status = "error"
	// StatusSkipped marks steps not reached because the run was aborted.
	StatusSkipped Status = "skipped"
)

// StepResult records how a step went.
type StepResult struct {
	Step     Step
	Status   Status
	ExitCode int
	Duration time.Duration
	Err      error
}

// Passed reports whether the step exited 0.
func (r StepResult) Passed() bool { return r.Status == StatusPassed }
