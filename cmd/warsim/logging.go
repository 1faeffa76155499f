package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the stderr logger. --verbose wins over --log-level.
func (g *Globals) newLogger() (*log.Logger, error) {
	level := log.WarnLevel
	if g.LogLevel != "" {
		parsed, err := log.ParseLevel(g.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", g.LogLevel, err)
		}
		level = parsed
	}
	if g.Verbose {
		level = log.DebugLevel
	}

	out := g.stderr
	if out == nil {
		out = os.Stderr
	}
	return log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: g.Verbose,
	}), nil
}
