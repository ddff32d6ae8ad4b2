package typewriter

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/Azure/go-typewriter/graph"
)

type StepKind string

const (
	StepKindType        StepKind = "type"
	StepKindPause       StepKind = "pause"
	StepKindDeleteChars StepKind = "delete_chars"
	StepKindDeleteAll   StepKind = "delete_all"
)

// StepDefinition is one queued animation operation. It is plain data: the
// parameters and cadence are captured when the step is built and the
// executor switches on Kind when the step runs.
type StepDefinition struct {
	name      string
	kind      StepKind
	text      string
	duration  time.Duration
	count     int
	tickDelay time.Duration
	cadence   time.Duration
}

func (sd *StepDefinition) GetName() string {
	return sd.name
}

func (sd *StepDefinition) Kind() StepKind {
	return sd.kind
}

func (sd *StepDefinition) Text() string {
	return sd.text
}

func (sd *StepDefinition) Duration() time.Duration {
	return sd.duration
}

func (sd *StepDefinition) Count() int {
	return sd.count
}

// TickDelay is the explicit DeleteAll delay, zero when the deleting speed
// applies.
func (sd *StepDefinition) TickDelay() time.Duration {
	return sd.tickDelay
}

// Cadence is the delay between two mutations of this step.
func (sd *StepDefinition) Cadence() time.Duration {
	return sd.cadence
}

func (sd *StepDefinition) String() string {
	switch sd.kind {
	case StepKindType:
		return fmt.Sprintf("type %q", sd.text)
	case StepKindPause:
		return fmt.Sprintf("pause %s", sd.duration)
	case StepKindDeleteChars:
		return fmt.Sprintf("delete %d", sd.count)
	case StepKindDeleteAll:
		return fmt.Sprintf("delete all every %s", sd.cadence)
	default:
		return string(sd.kind)
	}
}

func (sd *StepDefinition) DotSpec() *graph.DotNodeSpec {
	return &graph.DotNodeSpec{
		ID:        sd.GetName(),
		Name:      sd.String(),
		Shape:     sd.shape(),
		Style:     "filled",
		FillColor: "gray",
		Tooltip:   fmt.Sprintf("Kind: %s\nCadence: %s", sd.kind, sd.cadence),
	}
}

func (sd *StepDefinition) shape() string {
	switch sd.kind {
	case StepKindType:
		return "box"
	case StepKindPause:
		return "ellipse"
	default:
		return "hexagon"
	}
}

func connectStepDefinition(stepFrom, stepTo *StepDefinition) *graph.DotEdgeSpec {
	return &graph.DotEdgeSpec{
		FromNodeID: stepFrom.GetName(),
		ToNodeID:   stepTo.GetName(),
		Color:      "black",
		Style:      "bold",
	}
}

// execute applies the step to the surface. tick is called after every
// scheduler tick and done exactly once when the step's effect is complete.
// Steps with nothing to type or delete call done without ticking. A
// DeleteAll on an empty surface never calls done.
func (sd *StepDefinition) execute(surface Surface, scheduler Scheduler, tick func(), done func()) {
	switch sd.kind {
	case StepKindType:
		units := make([]string, 0, utf8.RuneCountInString(sd.text))
		for _, r := range sd.text {
			units = append(units, string(r))
		}

		if len(units) == 0 {
			done()
			return
		}

		i := 0
		scheduler.Every(sd.cadence, func() bool {
			surface.Append(units[i])
			i++
			tick()

			if i >= len(units) {
				done()
				return false
			}
			return true
		})

	case StepKindPause:
		scheduler.AfterFunc(sd.duration, done)

	case StepKindDeleteChars:
		if sd.count == 0 {
			done()
			return
		}

		i := 0
		scheduler.Every(sd.cadence, func() bool {
			truncateLast(surface)
			i++
			tick()

			if i >= sd.count {
				done()
				return false
			}
			return true
		})

	case StepKindDeleteAll:
		scheduler.Every(sd.cadence, func() bool {
			removed := truncateLast(surface)
			tick()

			// only a removal can complete the step, so an empty surface stalls
			if removed && surface.Len() == 0 {
				done()
				return false
			}
			return true
		})
	}
}
