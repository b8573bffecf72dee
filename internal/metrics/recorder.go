package metrics

import "time"

// ResultLabel enumerates step result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
	// ResultError marks a step whose tool could not be run.
	ResultError ResultLabel = "error"
)

// RunOutcomeLabel is the overall CI outcome.
type RunOutcomeLabel string

const (
	RunPassed  RunOutcomeLabel = "passed"
	RunFailed  RunOutcomeLabel = "failed"
	RunAborted RunOutcomeLabel = "aborted"
)

// Recorder defines observability hooks for CI steps and runs.
type Recorder interface {
	ObserveStepDuration(step string, d time.Duration)
	IncStepResult(step string, result ResultLabel)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome RunOutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStepDuration(string, time.Duration) {}
func (NoopRecorder) IncStepResult(string, ResultLabel)         {}
func (NoopRecorder) ObserveRunDuration(time.Duration)          {}
func (NoopRecorder) IncRunOutcome(RunOutcomeLabel)             {}
