// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package shared

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	stdlog "log"

	"github.com/rs/zerolog"
)

var (
	FileLogger       zerolog.Logger
	loggerConfigured atomic.Bool
	fileLevelWriter  zerolog.LevelWriter
)

// ParseLogLevel converts a textual log level into a zerolog.Level, defaulting to info.
func ParseLogLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// CreateFileLogger configures the global loggers to write to logpath only.
// Console output would corrupt the TUI. The returned closer releases the file.
func CreateFileLogger(logpath string, level zerolog.Level) (zerolog.Logger, io.Closer, error) {
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	dir := filepath.Dir(logpath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(logpath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	zerolog.SetGlobalLevel(level)

	fileConsoleWriter := zerolog.ConsoleWriter{
		Out:        logFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	fileLevelWriter = zerolog.MultiLevelWriter(fileConsoleWriter)

	logger := zerolog.New(fileLevelWriter).With().Timestamp().Logger().Level(level)

	// The redis client logs through the standard library logger.
	stdlog.SetOutput(logFile)
	stdlog.SetFlags(stdlog.LstdFlags | stdlog.Lmicroseconds | stdlog.Lshortfile)

	FileLogger = logger
	loggerConfigured.Store(true)

	return logger, logFile, nil
}

// NamedLogger returns a child logger annotated with the given component name.
func NamedLogger(component string) zerolog.Logger {
	component = strings.TrimSpace(component)
	if !loggerConfigured.Load() {
		base := zerolog.New(os.Stderr).With().Timestamp().Logger()
		if component == "" {
			return base
		}
		return base.With().Str("component", component).Logger()
	}
	if component == "" {
		return zerolog.New(fileLevelWriter).With().Timestamp().Logger()
	}
	return zerolog.New(fileLevelWriter).With().Timestamp().Str("component", component).Logger()
}
