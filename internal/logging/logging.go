// Package logging configures the process-wide zerolog logger. The TUI
// owns the terminal, so logs always go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup opens the log file and installs it as the global logger.
// The level parameter can be one of: debug, info, warn, error, fatal.
// The returned closer flushes and closes the file.
func Setup(level string, file string) (func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return closer, err
	}

	logsDir := filepath.Dir(file)
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return closer, fmt.Errorf("create logs dir: %w", err)
	}

	osFile, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return closer, err
	}
	closer = func() { _ = osFile.Close() }

	log.Logger = zerolog.New(osFile).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return closer, nil
}
