package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-driller/internal/config"
)

// logger is the debug log for interactive commands. The TUI owns the
// terminal, so it writes to a file when --debug is set and nowhere otherwise.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func setupLogging(_ *cobra.Command, _ []string) error {
	if !flagDebug {
		return nil
	}

	path := config.DataPath("driller.log")
	if path == "" {
		return fmt.Errorf("cannot resolve home directory for the debug log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open debug log: %w", err)
	}

	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "driller",
	})
	logger.Debug("debug logging enabled", "pid", os.Getpid())
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// serverLogger logs to stderr for the long-running services.
func serverLogger(prefix string) *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
