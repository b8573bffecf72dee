package metrics

import (
	"time"
)

type testRecorder struct {
	stepDurations map[string]int
	stepResults   map[string]map[ResultLabel]int
	runDurations  int
	runOutcomes   map[RunOutcomeLabel]int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{
		stepDurations: map[string]int{},
		stepResults:   map[string]map[ResultLabel]int{},
		runOutcomes:   map[RunOutcomeLabel]int{},
	}
}

func (t *testRecorder) ObserveStepDuration(step string, _ time.Duration) { t.stepDurations[step]++ }
func (t *testRecorder) IncStepResult(step string, result ResultLabel) {
	m, ok := t.stepResults[step]
	if !ok {
		m = map[ResultLabel]int{}
		t.stepResults[step] = m
	}
	m[result]++
}
func (t *testRecorder) ObserveRunDuration(time.Duration)       { t.runDurations++ }
func (t *testRecorder) IncRunOutcome(outcome RunOutcomeLabel) { t.runOutcomes[outcome]++ }

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
	_ Recorder = (*testRecorder)(nil)
)
