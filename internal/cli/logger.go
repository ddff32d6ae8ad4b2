package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// NewLogger writes text logs to stderr and, when LogFile is set, JSON logs
// to that file as well. The returned func closes the file.
func NewLogger(c *Config, stderr io.Writer) (*slog.Logger, func() error, error) {
	options := &slog.HandlerOptions{Level: c.LogLevel}
	handlers := []slog.Handler{slog.NewTextHandler(stderr, options)}
	closer := func() error { return nil }

	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", c.LogFile, err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, options))
		closer = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}
