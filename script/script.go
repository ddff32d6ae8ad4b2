// Package script loads typewriter animations from HCL files.
//
//	loop           = true
//	typing_speed   = "80ms"
//	deleting_speed = "40ms"
//
//	step "type"       { text = "Hello, ${var.name}" }
//	step "pause"      { duration = "1s" }
//	step "delete"     { count = 5 }
//	step "delete_all" { tick_delay = "20ms" }
//
// Durations are Go duration strings; a bare number is read as
// milliseconds. Variables given to Parse are reachable as var.<name>.
package script

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	typewriter "github.com/Azure/go-typewriter"
)

type (
	// Script is a decoded animation, ready to be built onto a surface.
	Script struct {
		Loop          bool
		TypingSpeed   time.Duration
		DeletingSpeed time.Duration
		Steps         []Step
	}

	Step struct {
		Kind      typewriter.StepKind
		Text      string
		Duration  time.Duration
		Count     int
		TickDelay time.Duration
	}

	hclScript struct {
		Loop          *bool      `hcl:"loop,optional"`
		TypingSpeed   *string    `hcl:"typing_speed,optional"`
		DeletingSpeed *string    `hcl:"deleting_speed,optional"`
		Steps         []*hclStep `hcl:"step,block"`
	}

	hclStep struct {
		Kind      string  `hcl:"kind,label"`
		Text      *string `hcl:"text,optional"`
		Duration  *string `hcl:"duration,optional"`
		Count     *int    `hcl:"count,optional"`
		TickDelay *string `hcl:"tick_delay,optional"`
	}
)

var stepKinds = map[string]typewriter.StepKind{
	"type":         typewriter.StepKindType,
	"pause":        typewriter.StepKindPause,
	"delete":       typewriter.StepKindDeleteChars,
	"delete_chars": typewriter.StepKindDeleteChars,
	"delete_all":   typewriter.StepKindDeleteAll,
}

// LoadFile reads and parses the script at path.
func LoadFile(path string, vars map[string]string) (*Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return Parse(src, path, vars)
}

// Parse decodes an HCL script. filename is only used in diagnostics.
func Parse(src []byte, filename string, vars map[string]string) (*Script, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse script %s: %w", filename, diags)
	}

	var parsed hclScript
	diags = gohcl.DecodeBody(file.Body, evalContext(vars), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode script %s: %w", filename, diags)
	}

	return newScript(&parsed, filename)
}

func evalContext(vars map[string]string) *hcl.EvalContext {
	values := make(map[string]cty.Value, len(vars))
	for name, value := range vars {
		values[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(values),
		},
	}
}

func newScript(parsed *hclScript, filename string) (*Script, error) {
	s := &Script{
		TypingSpeed:   typewriter.DefaultTypingSpeed,
		DeletingSpeed: typewriter.DefaultDeletingSpeed,
	}
	if parsed.Loop != nil {
		s.Loop = *parsed.Loop
	}

	var err error
	if parsed.TypingSpeed != nil {
		if s.TypingSpeed, err = optionalDuration(parsed.TypingSpeed, filename, "typing_speed"); err != nil {
			return nil, err
		}
	}
	if parsed.DeletingSpeed != nil {
		if s.DeletingSpeed, err = optionalDuration(parsed.DeletingSpeed, filename, "deleting_speed"); err != nil {
			return nil, err
		}
	}

	for i, parsedStep := range parsed.Steps {
		step, err := newStep(parsedStep, fmt.Sprintf("%s: step %d (%q)", filename, i+1, parsedStep.Kind))
		if err != nil {
			return nil, err
		}
		s.Steps = append(s.Steps, step)
	}

	return s, nil
}

func newStep(parsed *hclStep, where string) (Step, error) {
	kind, ok := stepKinds[parsed.Kind]
	if !ok {
		return Step{}, invalid(where, "unknown step kind")
	}

	step := Step{Kind: kind}
	var err error
	switch kind {
	case typewriter.StepKindType:
		if parsed.Text == nil {
			return Step{}, invalid(where, "missing attribute \"text\"")
		}
		step.Text = *parsed.Text

	case typewriter.StepKindPause:
		if parsed.Duration == nil {
			return Step{}, invalid(where, "missing attribute \"duration\"")
		}
		if step.Duration, err = optionalDuration(parsed.Duration, where, "duration"); err != nil {
			return Step{}, err
		}

	case typewriter.StepKindDeleteChars:
		if parsed.Count == nil {
			return Step{}, invalid(where, "missing attribute \"count\"")
		}
		if *parsed.Count < 0 {
			return Step{}, invalid(where, "count must not be negative")
		}
		step.Count = *parsed.Count

	case typewriter.StepKindDeleteAll:
		if step.TickDelay, err = optionalDuration(parsed.TickDelay, where, "tick_delay"); err != nil {
			return Step{}, err
		}
	}

	return step, nil
}

func optionalDuration(value *string, where, attr string) (time.Duration, error) {
	if value == nil {
		return 0, nil
	}

	var d time.Duration
	if ms, err := strconv.ParseInt(*value, 10, 64); err == nil {
		d = time.Duration(ms) * time.Millisecond
	} else if d, err = time.ParseDuration(*value); err != nil {
		return 0, invalid(where, fmt.Sprintf("%s: %s", attr, err))
	}

	if d < 0 {
		return 0, invalid(where, fmt.Sprintf("%s must not be negative", attr))
	}
	return d, nil
}

func invalid(where, msg string) error {
	return typewriter.ErrInvalidScript.WithMessage(where + ": " + msg)
}

// Options returns the typewriter options the script sets.
func (s *Script) Options() []typewriter.OptionPreparer {
	return []typewriter.OptionPreparer{
		typewriter.WithLoop(s.Loop),
		typewriter.WithTypingSpeed(s.TypingSpeed),
		typewriter.WithDeletingSpeed(s.DeletingSpeed),
	}
}

// Build queues the script's steps on a new Typewriter. Options in extra
// are applied after the script's own, so they take precedence.
func (s *Script) Build(surface typewriter.Surface, extra ...typewriter.OptionPreparer) *typewriter.Typewriter {
	tw := typewriter.New(surface, append(s.Options(), extra...)...)
	for _, step := range s.Steps {
		switch step.Kind {
		case typewriter.StepKindType:
			tw.TypeString(step.Text)
		case typewriter.StepKindPause:
			tw.PauseFor(step.Duration)
		case typewriter.StepKindDeleteChars:
			tw.DeleteChars(step.Count)
		case typewriter.StepKindDeleteAll:
			tw.DeleteAll(step.TickDelay)
		}
	}
	return tw
}
