package typewriter

import "sync"

// stepQueue is a FIFO of step definitions. Loop mode turns it into a cycle
// by pushing each completed step back onto the tail.
type stepQueue struct {
	mu    sync.Mutex
	steps []*StepDefinition
}

func (q *stepQueue) push(step *StepDefinition) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.steps = append(q.steps, step)
}

func (q *stepQueue) pop() (*StepDefinition, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.steps) == 0 {
		return nil, false
	}

	step := q.steps[0]
	q.steps[0] = nil
	q.steps = q.steps[1:]
	return step, true
}

func (q *stepQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.steps)
}

func (q *stepQueue) snapshot() []*StepDefinition {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]*StepDefinition{}, q.steps...)
}
