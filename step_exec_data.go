package typewriter

import (
	"time"
)

// StepExecutionData measures one execution of a step.
type StepExecutionData struct {
	StartTime time.Time
	Duration  time.Duration

	// Ticks counts scheduler ticks, including ones that changed nothing.
	Ticks int
}
