// Package logger builds the structured logger used by the CLI.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration.
type Config struct {
	Verbose bool
	// File, if set, receives a copy of every log line through a rotating
	// writer.
	File string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New creates a logger. Warnings and above are shown unless Verbose is set,
// which enables debug output with caller information.
func New(cfg Config) (*log.Logger, error) {
	var writer io.Writer = os.Stderr
	if cfg.Output != nil {
		writer = cfg.Output
	}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, err
		}
		writer = io.MultiWriter(writer, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	level := log.WarnLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Verbose,
		ReportTimestamp: cfg.Verbose,
		Level:           level,
		Prefix:          "timesheet",
	}), nil
}
