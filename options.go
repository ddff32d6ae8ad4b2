package typewriter

import (
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultTypingSpeed   = 50 * time.Millisecond
	DefaultDeletingSpeed = 50 * time.Millisecond
)

// Options configures a Typewriter. Unset speeds default to 50ms; a zero
// speed runs as fast as the scheduler permits.
type Options struct {
	// Loop re-runs the full step sequence forever.
	Loop bool

	// TypingSpeed is the delay between appended characters.
	TypingSpeed time.Duration

	// DeletingSpeed is the delay between removed characters.
	DeletingSpeed time.Duration

	Scheduler Scheduler
	Logger    *slog.Logger
}

type OptionPreparer func(*Options) *Options

func WithLoop(enabled bool) OptionPreparer {
	return func(options *Options) *Options {
		options.Loop = enabled
		return options
	}
}

func WithTypingSpeed(speed time.Duration) OptionPreparer {
	return func(options *Options) *Options {
		options.TypingSpeed = speed
		return options
	}
}

func WithDeletingSpeed(speed time.Duration) OptionPreparer {
	return func(options *Options) *Options {
		options.DeletingSpeed = speed
		return options
	}
}

// WithScheduler replaces the wall-clock scheduler, typically with a
// VirtualScheduler in tests.
func WithScheduler(scheduler Scheduler) OptionPreparer {
	return func(options *Options) *Options {
		options.Scheduler = scheduler
		return options
	}
}

func WithLogger(logger *slog.Logger) OptionPreparer {
	return func(options *Options) *Options {
		options.Logger = logger
		return options
	}
}

func newOptions(preparers ...OptionPreparer) (*Options, error) {
	options := &Options{
		TypingSpeed:   DefaultTypingSpeed,
		DeletingSpeed: DefaultDeletingSpeed,
	}
	for _, decorator := range preparers {
		options = decorator(options)
	}

	var err error
	if options.TypingSpeed < 0 {
		err = ErrInvalidArgument.WithMessage(fmt.Sprintf(MsgNegativeDelay, "typing speed", options.TypingSpeed))
	} else if options.DeletingSpeed < 0 {
		err = ErrInvalidArgument.WithMessage(fmt.Sprintf(MsgNegativeDelay, "deleting speed", options.DeletingSpeed))
	}

	if options.Scheduler == nil {
		options.Scheduler = SystemScheduler{}
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	return options, err
}
