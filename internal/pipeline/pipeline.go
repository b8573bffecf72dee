package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/ppt/internal/git"
	"git.home.luguber.info/inful/ppt/internal/logfields"
	"git.home.luguber.info/inful/ppt/internal/logging"
	"git.home.luguber.info/inful/ppt/internal/metrics"
	"git.home.luguber.info/inful/ppt/internal/process"
)

// FailureMessage is logged when any step fails.
const FailureMessage = "A testing step has failed, please check logs."

// Pipeline runs CI steps in order.
type Pipeline struct {
	steps    []Step
	runner   process.Runner
	recorder metrics.Recorder
	progress io.Writer
	repoDir  string
	newRunID func() string
	now      func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRecorder feeds step timings and outcomes to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(p *Pipeline) {
		if r != nil {
			p.recorder = r
		}
	}
}

// WithProgress shows a spinner on w while a step runs. Nothing is shown unless w is a terminal.
func WithProgress(w io.Writer) Option {
	return func(p *Pipeline) { p.progress = w }
}

// WithRepository logs the HEAD of the git repository containing dir at the start of a run.
func WithRepository(dir string) Option {
	return func(p *Pipeline) { p.repoDir = dir }
}

// WithRunID overrides run ID generation.
func WithRunID(fn func() string) Option {
	return func(p *Pipeline) { p.newRunID = fn }
}

// NewPipeline creates a pipeline over steps.
func NewPipeline(steps []Step, runner process.Runner, options ...Option) *Pipeline {
	p := &Pipeline{
		steps:    steps,
		runner:   runner,
		recorder: metrics.NoopRecorder{},
		newRunID: uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Steps returns the configured steps.
func (p *Pipeline) Steps() []Step { return p.steps }

// Run executes every step and reports the outcome. Output of the tools is discarded.
func (p *Pipeline) Run(ctx context.Context) (report *Report) {
	report = &Report{RunID: p.newRunID(), Passed: true}
	log := logging.Logger("ppt.ci").With(logfields.RunID(report.RunID))
	started := p.now()

	if p.repoDir != "" {
		if head, err := git.ReadHead(p.repoDir); err == nil {
			report.Head = &head
			log.Debug("Repository head", logfields.Commit(head.ShortHash), slog.String("branch", head.Branch))
		} else {
			log.Debug("No git metadata", logfields.Error(err))
		}
	}

	prog := &progress{}
	if p.progress != nil {
		prog = newProgress(p.progress)
	}

	defer func() {
		report.Duration = p.now().Sub(started)
		if r := recover(); r != nil {
			prog.stop()
			log.Error("Exception occurred during testing, exiting early",
				slog.String("panic", fmt.Sprint(r)), slog.String("stack", string(debug.Stack())))
			report.Passed = false
			report.Aborted = true
			p.markSkipped(report)
			p.recorder.ObserveRunDuration(report.Duration)
			p.recorder.IncRunOutcome(metrics.RunAborted)
			return
		}
		p.recorder.ObserveRunDuration(report.Duration)
		switch {
		case report.Aborted:
			p.recorder.IncRunOutcome(metrics.RunAborted)
		case report.Passed:
			p.recorder.IncRunOutcome(metrics.RunPassed)
		default:
			p.recorder.IncRunOutcome(metrics.RunFailed)
		}
	}()

	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			log.Warn("CI cancelled", logfields.Error(err))
			report.Passed = false
			report.Aborted = true
			p.markSkipped(report)
			return report
		}

		stepLog := log.With(logfields.Step(step.Name))
		stepLog.Debug(fmt.Sprintf("Running %s now!", step.Description))

		cmd := step.Command
		cmd.Stdout, cmd.Stderr = nil, nil

		prog.start(step.Description)
		stepStart := p.now()
		code, err := p.runner.Run(ctx, cmd)
		d := p.now().Sub(stepStart)
		prog.stop()

		res := StepResult{Step: step, ExitCode: code, Duration: d, Err: err}
		var label metrics.ResultLabel
		switch {
		case err != nil:
			res.Status, label = StatusError, metrics.ResultError
			stepLog.Debug(fmt.Sprintf("%s failed!", step.Description), logfields.Tool(cmd.Name), logfields.Error(err))
		case code != 0:
			res.Status, label = StatusFailed, metrics.ResultFailed
			stepLog.Debug(fmt.Sprintf("%s failed!", step.Description), logfields.ExitCode(code), logfields.Duration(d))
		default:
			res.Status, label = StatusPassed, metrics.ResultSuccess
			stepLog.Debug(fmt.Sprintf("%s was successful!", step.Description), logfields.Duration(d))
		}
		p.recorder.ObserveStepDuration(step.Name, d)
		p.recorder.IncStepResult(step.Name, label)

		report.Steps = append(report.Steps, res)
		if !res.Passed() {
			report.Passed = false
		}
	}

	if !report.Passed {
		log.Info(FailureMessage)
	}
	return report
}

// markSkipped appends a skipped result for every step without one.
func (p *Pipeline) markSkipped(report *Report) {
	for _, step := range p.steps[len(report.Steps):] {
		report.Steps = append(report.Steps, StepResult{Step: step, Status: StatusSkipped})
	}
}
