package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	typewriter "github.com/Azure/go-typewriter"
	"github.com/Azure/go-typewriter/script"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command line.
type Config struct {
	ScriptPath string
	Text       string
	Loop       bool

	// Zero speeds leave the script's or the library's default in place.
	TypingSpeed   time.Duration
	DeletingSpeed time.Duration

	Vars     map[string]string
	LogLevel slog.Level
	LogFile  string
}

type varsFlag map[string]string

func (v varsFlag) String() string {
	pairs := make([]string, 0, len(v))
	for name, value := range v {
		pairs = append(pairs, name+"="+value)
	}
	return strings.Join(pairs, ",")
}

func (v varsFlag) Set(pair string) error {
	name, value, ok := strings.Cut(pair, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", pair)
	}
	v[name] = value
	return nil
}

// Parse processes command-line arguments. It returns the Config, whether
// the program should exit cleanly right away, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("typewriter", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
typewriter - animate text in the terminal, one character at a time.

Usage:
  typewriter [options] -script FILE
  typewriter [options] TEXT

Options:
`)
		flagSet.PrintDefaults()
	}

	vars := varsFlag{}
	scriptFlag := flagSet.String("script", "", "Path to an .hcl animation script.")
	textFlag := flagSet.String("text", "", "Text to type when no script is given.")
	loopFlag := flagSet.Bool("loop", false, "Repeat the animation until interrupted.")
	typingFlag := flagSet.Duration("typing-speed", 0, "Delay between typed characters (default 50ms).")
	deletingFlag := flagSet.Duration("deleting-speed", 0, "Delay between deleted characters (default 50ms).")
	logLevelFlag := flagSet.String("log-level", "warn", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFileFlag := flagSet.String("log-file", "", "Also write JSON logs to this file.")
	flagSet.Var(vars, "var", "Script variable as name=value, repeatable.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	text := *textFlag
	if text == "" && flagSet.NArg() > 0 {
		text = strings.Join(flagSet.Args(), " ")
	}

	if *scriptFlag == "" && text == "" {
		flagSet.Usage()
		return nil, true, nil
	}
	if *scriptFlag != "" && text != "" {
		return nil, false, &ExitError{Code: 2, Message: "use either -script or text, not both"}
	}
	if *typingFlag < 0 || *deletingFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "speeds must not be negative"}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Config{
		ScriptPath:    *scriptFlag,
		Text:          text,
		Loop:          *loopFlag,
		TypingSpeed:   *typingFlag,
		DeletingSpeed: *deletingFlag,
		Vars:          vars,
		LogLevel:      level,
		LogFile:       *logFileFlag,
	}, false, nil
}

// Typewriter builds the animation the config describes.
func (c *Config) Typewriter(surface typewriter.Surface, options ...typewriter.OptionPreparer) (*typewriter.Typewriter, error) {
	if c.Loop {
		options = append(options, typewriter.WithLoop(true))
	}
	if c.TypingSpeed > 0 {
		options = append(options, typewriter.WithTypingSpeed(c.TypingSpeed))
	}
	if c.DeletingSpeed > 0 {
		options = append(options, typewriter.WithDeletingSpeed(c.DeletingSpeed))
	}

	if c.ScriptPath != "" {
		s, err := script.LoadFile(c.ScriptPath, c.Vars)
		if err != nil {
			return nil, err
		}
		return s.Build(surface, options...), nil
	}

	tw := typewriter.New(surface, options...).TypeString(c.Text)
	if c.Loop {
		tw.PauseFor(time.Second).DeleteAll(0).PauseFor(500 * time.Millisecond)
	}
	return tw, nil
}
