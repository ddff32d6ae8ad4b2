package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	typewriter "github.com/Azure/go-typewriter"
	"github.com/Azure/go-typewriter/internal/cli"
	"github.com/Azure/go-typewriter/internal/logattr"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, exit, err := cli.Parse(args, stderr)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(stderr, exitErr.Message)
			return exitErr.Code
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	if exit {
		return 0
	}

	logger, closeLog, err := cli.NewLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	surface := typewriter.NewWriterSurface(stdout)
	tw, err := cfg.Typewriter(surface, typewriter.WithLogger(logger))
	if err != nil {
		logger.Error("failed to build animation", logattr.Error(err))
		return 1
	}

	err = tw.Start(ctx)
	fmt.Fprintln(stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("animation failed", logattr.Error(err))
		return 1
	}
	if err := surface.Err(); err != nil {
		logger.Error("rendering failed", logattr.Error(err))
		return 1
	}
	return 0
}
