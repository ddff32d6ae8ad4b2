package typewriter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Azure/go-asynctask"
)

type StepState string

const StepStatePending StepState = "pending"
const StepStateRunning StepState = "running"
const StepStateCompleted StepState = "completed"

// StepInstance is one execution of a StepDefinition.
type StepInstance struct {
	Definition *StepDefinition

	// Index is the position of this execution within its run.
	Index int

	mu            sync.Mutex
	task          *asynctask.Task[interface{}]
	state         StepState
	executionData StepExecutionData
}

func newStepInstance(definition *StepDefinition, index int) *StepInstance {
	return &StepInstance{
		Definition: definition,
		Index:      index,
		state:      StepStatePending,
	}
}

func (si *StepInstance) GetName() string {
	return si.Definition.GetName()
}

func (si *StepInstance) GetState() StepState {
	si.mu.Lock()
	defer si.mu.Unlock()
	return si.state
}

func (si *StepInstance) ExecutionData() StepExecutionData {
	si.mu.Lock()
	defer si.mu.Unlock()
	return si.executionData
}

// Waitable resolves once the step's visible effect is fully applied. It
// never resolves with an error.
func (si *StepInstance) Waitable() asynctask.Waitable {
	return si.task
}

func (si *StepInstance) String() string {
	return fmt.Sprintf("#%d %s", si.Index, si.Definition)
}

// start executes the step. The task is detached from ctx cancellation:
// once started, a step always runs to its own completion condition.
func (si *StepInstance) start(ctx context.Context, surface Surface, scheduler Scheduler) {
	si.mu.Lock()
	si.state = StepStateRunning
	si.executionData.StartTime = scheduler.Now()
	si.mu.Unlock()

	si.task = asynctask.Start[interface{}](context.WithoutCancel(ctx), asynctask.ActionToFunc(func(context.Context) error {
		completed := newCompletion()
		si.Definition.execute(surface, scheduler, si.tick, completed.resolve)
		<-completed.done()

		si.mu.Lock()
		si.executionData.Duration = elapsedSince(scheduler, si.executionData.StartTime)
		si.state = StepStateCompleted
		si.mu.Unlock()
		return nil
	}))
}

func (si *StepInstance) tick() {
	si.mu.Lock()
	si.executionData.Ticks++
	si.mu.Unlock()
}

// completion is a single-fire signal; resolving it twice is harmless.
type completion struct {
	once sync.Once
	ch   chan struct{}
}

func newCompletion() *completion {
	return &completion{ch: make(chan struct{})}
}

func (c *completion) resolve() {
	c.once.Do(func() { close(c.ch) })
}

func (c *completion) done() <-chan struct{} {
	return c.ch
}

func elapsedSince(scheduler Scheduler, start time.Time) time.Duration {
	return scheduler.Now().Sub(start)
}
