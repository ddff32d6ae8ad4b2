package cli_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	typewriter "github.com/Azure/go-typewriter"
	"github.com/Azure/go-typewriter/internal/cli"
)

func TestParseText(t *testing.T) {
	t.Parallel()

	cfg, exit, err := cli.Parse([]string{"-loop", "-typing-speed", "20ms", "hello", "world"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, "hello world", cfg.Text)
	assert.True(t, cfg.Loop)
	assert.Equal(t, 20*time.Millisecond, cfg.TypingSpeed)
	assert.Equal(t, time.Duration(0), cfg.DeletingSpeed)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestParseScript(t *testing.T) {
	t.Parallel()

	cfg, exit, err := cli.Parse([]string{"-script", "intro.hcl", "-var", "name=Ada", "-var", "greeting=hi=there", "-log-level", "debug"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, "intro.hcl", cfg.ScriptPath)
	assert.Equal(t, map[string]string{"name": "Ada", "greeting": "hi=there"}, cfg.Vars)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseHelpAndUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, exit, err := cli.Parse(nil, out)
	assert.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")

	_, exit, err = cli.Parse([]string{"-h"}, &bytes.Buffer{})
	assert.NoError(t, err)
	assert.True(t, exit)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		{"-script", "a.hcl", "text"},
		{"-typing-speed", "-1s", "text"},
		{"-log-level", "loud", "text"},
		{"-var", "novalue", "text"},
		{"-unknown"},
	}

	for _, args := range tests {
		_, _, err := cli.Parse(args, &bytes.Buffer{})
		var exitErr *cli.ExitError
		require.True(t, errors.As(err, &exitErr), "args %v", args)
		assert.Equal(t, 2, exitErr.Code)
	}
}

func TestConfigTypewriterFromText(t *testing.T) {
	t.Parallel()

	cfg := &cli.Config{Text: "hey", Loop: true, DeletingSpeed: 5 * time.Millisecond}
	tw, err := cfg.Typewriter(typewriter.NewBufferSurface(""))
	require.NoError(t, err)

	options := tw.Options()
	assert.True(t, options.Loop)
	assert.Equal(t, typewriter.DefaultTypingSpeed, options.TypingSpeed)
	assert.Equal(t, 5*time.Millisecond, options.DeletingSpeed)

	var kinds []typewriter.StepKind
	for _, step := range tw.Steps() {
		kinds = append(kinds, step.Kind())
	}
	assert.Equal(t, []typewriter.StepKind{
		typewriter.StepKindType,
		typewriter.StepKindPause,
		typewriter.StepKindDeleteAll,
		typewriter.StepKindPause,
	}, kinds)
}

func TestConfigTypewriterFromScript(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "intro.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
typing_speed = "30ms"
step "type" { text = "hi ${var.name}" }
`), 0o600))

	cfg := &cli.Config{ScriptPath: path, Vars: map[string]string{"name": "Ada"}, TypingSpeed: time.Millisecond}
	scheduler := typewriter.NewVirtualScheduler()
	surface := typewriter.NewBufferSurface("")
	tw, err := cfg.Typewriter(surface, typewriter.WithScheduler(scheduler))
	require.NoError(t, err)

	assert.Equal(t, time.Millisecond, tw.Options().TypingSpeed, "flags override the script")
	require.NoError(t, tw.Start(context.Background()))
	assert.Equal(t, "hi Ada", surface.Text())

	_, err = (&cli.Config{ScriptPath: filepath.Join(t.TempDir(), "missing.hcl")}).Typewriter(surface)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "typewriter.log")
	stderr := &bytes.Buffer{}
	logger, closeLog, err := cli.NewLogger(&cli.Config{LogLevel: slog.LevelInfo, LogFile: path}, stderr)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown", "step", "type_1")
	require.NoError(t, closeLog())

	assert.Contains(t, stderr.String(), "msg=shown step=type_1")
	assert.NotContains(t, stderr.String(), "hidden")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"shown"`)

	_, _, err = cli.NewLogger(&cli.Config{LogFile: filepath.Join(t.TempDir(), "no", "such", "dir.log")}, stderr)
	assert.ErrorContains(t, err, "failed to open log file")
}
