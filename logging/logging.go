// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/danielhkuo/exercise-tracker/cliparse"
)

// Rotation settings for the optional log file
const (
	maxSizeMB  = 100
	maxBackups = 3
	maxAgeDays = 28
)

// New builds a text logger writing to w at the given level name.
func New(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// Setup installs the process-wide slog default. Output goes to stdout and,
// when cfg.LogFile is set, to a size-rotated file as well.
// The returned close function flushes and closes the file.
func Setup(cfg cliparse.Config) (func() error, error) {
	var out io.Writer = os.Stdout
	closeFn := func() error { return nil }

	if cfg.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, file)
		closeFn = file.Close
	}

	logger, err := New(out, cfg.LogLevel)
	if err != nil {
		closeFn()
		return nil, err
	}

	slog.SetDefault(logger)
	return closeFn, nil
}
