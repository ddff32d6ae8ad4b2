package typewriter

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Azure/go-typewriter/graph"
	"github.com/Azure/go-typewriter/internal/logattr"
)

type RunnerState string

const RunnerStateIdle RunnerState = "idle"
const RunnerStateRunning RunnerState = "running"
const RunnerStateLooping RunnerState = "looping"

// Typewriter animates text on a Surface. Steps are queued with the builder
// methods (TypeString, PauseFor, DeleteChars, DeleteAll) and run one at a
// time, in order, by Start.
type Typewriter struct {
	surface Surface
	options *Options
	queue   *stepQueue

	mu      sync.Mutex
	state   RunnerState
	err     error
	seq     int
	lastRun []*StepInstance
}

// New creates a Typewriter drawing on surface.
func New(surface Surface, options ...OptionPreparer) *Typewriter {
	opts, err := newOptions(options...)

	return &Typewriter{
		surface: surface,
		options: opts,
		queue:   &stepQueue{},
		state:   RunnerStateIdle,
		err:     err,
	}
}

// Start runs the queued steps one after the other, each to completion
// before the next begins.
//
// Without loop mode the queue drains once and Start returns nil. In loop
// mode every completed step goes back on the tail, so Start only returns
// when ctx is done. Cancelling ctx stops the runner from advancing but the
// step in flight still runs to its end; until it does, the typewriter
// stays busy and another Start fails with ErrAlreadyRunning.
func (tw *Typewriter) Start(ctx context.Context) error {
	if err := tw.Err(); err != nil {
		return err
	}
	if err := tw.acquire(); err != nil {
		return err
	}

	scheduler := tw.options.Scheduler
	logger := tw.options.Logger.With(logattr.RunID(uuid.New().String()))
	startTime := scheduler.Now()
	logger.Info("typewriter started", slog.Int("steps", tw.queue.len()), slog.Bool("loop", tw.options.Loop))

	index := 0
	step, ok := tw.queue.pop()
	for ok {
		si := newStepInstance(step, index)
		logger.Debug("step started", logattr.StepIndex(index), logattr.Step(step.GetName()), logattr.StepKind(step.Kind()))
		si.start(ctx, tw.surface, scheduler)

		if err := si.Waitable().Wait(ctx); err != nil {
			if tw.options.Loop {
				tw.queue.push(step)
			}
			logger.Warn("typewriter interrupted", logattr.Step(step.GetName()), logattr.Error(err))
			go tw.releaseAfter(si)
			return err
		}

		data := si.ExecutionData()
		logger.Debug("step completed", logattr.StepIndex(index), logattr.Step(step.GetName()), logattr.Duration(data.Duration), slog.Int("ticks", data.Ticks))

		tw.record(si)
		if tw.options.Loop {
			tw.queue.push(step)
			tw.setState(RunnerStateLooping)
		}

		index++
		step, ok = tw.queue.pop()
	}

	logger.Info("typewriter finished", slog.Int("steps", index), logattr.Duration(elapsedSince(scheduler, startTime)))
	tw.setState(RunnerStateIdle)
	return nil
}

// Err returns the first invalid argument given to the builder or options.
func (tw *Typewriter) Err() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.err
}

func (tw *Typewriter) State() RunnerState {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.state
}

func (tw *Typewriter) Options() Options {
	return *tw.options
}

// Steps returns the steps currently queued, front first. A step being
// executed is not in the queue.
func (tw *Typewriter) Steps() []*StepDefinition {
	return tw.queue.snapshot()
}

// LastRun returns the completed step executions of the latest Start. In
// loop mode only the most recent cycle is kept.
func (tw *Typewriter) LastRun() []*StepInstance {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return append([]*StepInstance{}, tw.lastRun...)
}

// Visualize renders the queued steps in graphviz dot format. In loop mode
// the last step links back to the first.
func (tw *Typewriter) Visualize() (string, error) {
	steps := tw.Steps()
	g := graph.NewGraph(connectStepDefinition)
	for i, step := range steps {
		if err := g.AddNode(step); err != nil {
			return "", err
		}
		if i > 0 {
			if err := g.Connect(steps[i-1].GetName(), step.GetName()); err != nil {
				return "", err
			}
		}
	}

	if tw.options.Loop && len(steps) > 0 {
		if err := g.Connect(steps[len(steps)-1].GetName(), steps[0].GetName()); err != nil {
			return "", err
		}
	}

	return g.ToDotGraph()
}

func (tw *Typewriter) acquire() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.state != RunnerStateIdle {
		return ErrAlreadyRunning.WithMessage(fmt.Sprintf(MsgAlreadyRunning, tw.state))
	}

	tw.state = RunnerStateRunning
	tw.lastRun = nil
	tw.options.Logger.Debug("typewriter state changed", logattr.State(RunnerStateRunning))
	return nil
}

func (tw *Typewriter) setState(state RunnerState) {
	tw.mu.Lock()
	changed := tw.state != state
	tw.state = state
	tw.mu.Unlock()

	if changed {
		tw.options.Logger.Debug("typewriter state changed", logattr.State(state))
	}
}

func (tw *Typewriter) releaseAfter(si *StepInstance) {
	_ = si.Waitable().Wait(context.Background())
	tw.setState(RunnerStateIdle)
}

func (tw *Typewriter) record(si *StepInstance) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.lastRun = append(tw.lastRun, si)

	if tw.options.Loop {
		// the step just recorded is not back in the queue yet
		if cycle := tw.queue.len() + 1; len(tw.lastRun) > cycle {
			tw.lastRun = tw.lastRun[len(tw.lastRun)-cycle:]
		}
	}
}
