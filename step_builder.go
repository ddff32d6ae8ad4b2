package typewriter

import (
	"fmt"
	"time"
)

// TypeString queues a step appending the characters of text one per tick
// of the typing speed. An empty text completes at once.
func (tw *Typewriter) TypeString(text string) *Typewriter {
	return tw.addStep(&StepDefinition{
		kind:    StepKindType,
		text:    text,
		cadence: tw.options.TypingSpeed,
	})
}

// PauseFor queues a step that changes nothing and completes after duration.
func (tw *Typewriter) PauseFor(duration time.Duration) *Typewriter {
	if duration < 0 {
		return tw.reject(fmt.Sprintf(MsgNegativeDelay, "PauseFor", duration))
	}

	return tw.addStep(&StepDefinition{
		kind:     StepKindPause,
		duration: duration,
		cadence:  duration,
	})
}

// DeleteChars queues a step removing one trailing character per tick of
// the deleting speed, for exactly count ticks. Ticks on an empty surface
// remove nothing but still count; a zero count completes at once.
func (tw *Typewriter) DeleteChars(count int) *Typewriter {
	if count < 0 {
		return tw.reject(fmt.Sprintf(MsgNegativeCount, "DeleteChars", count))
	}

	return tw.addStep(&StepDefinition{
		kind:    StepKindDeleteChars,
		count:   count,
		cadence: tw.options.DeletingSpeed,
	})
}

// DeleteAll queues a step removing one trailing character every tickDelay
// (the deleting speed when zero) until the surface is empty.
//
// If the surface is already empty when the step starts it never completes
// and the typewriter stalls on it.
func (tw *Typewriter) DeleteAll(tickDelay time.Duration) *Typewriter {
	if tickDelay < 0 {
		return tw.reject(fmt.Sprintf(MsgNegativeDelay, "DeleteAll", tickDelay))
	}

	cadence := tickDelay
	if cadence == 0 {
		cadence = tw.options.DeletingSpeed
	}

	return tw.addStep(&StepDefinition{
		kind:      StepKindDeleteAll,
		tickDelay: tickDelay,
		cadence:   cadence,
	})
}

func (tw *Typewriter) addStep(step *StepDefinition) *Typewriter {
	tw.mu.Lock()
	tw.seq++
	step.name = fmt.Sprintf("%s_%d", step.kind, tw.seq)
	tw.mu.Unlock()

	tw.queue.push(step)
	return tw
}

// reject keeps the first invalid argument; Start reports it.
func (tw *Typewriter) reject(msg string) *Typewriter {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.err == nil {
		tw.err = ErrInvalidArgument.WithMessage(msg)
	}
	return tw
}
