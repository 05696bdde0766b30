package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse builds Settings from command line arguments. It returns true when the
// program should exit cleanly, as after -help.
func Parse(args []string, output io.Writer) (*Settings, bool, error) {
	flagSet := flag.NewFlagSet("snake", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Snake - the classic grid game.

Usage:
  snake [options]

Keys:
  arrows, wasd, hjkl   steer
  any key              start / restart
  esc, q               quit

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := Defaults()
	configFlag := flagSet.String("config", "", "Path to an HCL settings file.")
	rowsFlag := flagSet.Int("rows", defaults.Rows, "Board rows.")
	colsFlag := flagSet.Int("cols", defaults.Cols, "Board columns.")
	speedFlag := flagSet.Int("speed", int(defaults.Tick/time.Millisecond), "Game speed in milliseconds between steps (lower = faster).")
	countdownFlag := flagSet.Int("countdown", defaults.Countdown, "Countdown length before the first step.")
	seedFlag := flagSet.Uint64("seed", 0, "Food placement seed. 0 picks one per session.")
	frontendFlag := flagSet.String("frontend", defaults.Frontend, "Frontend: 'terminal' or 'window'.")
	soundFlag := flagSet.Bool("sound", defaults.Sound, "Play sound cues.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format: 'text' or 'json'.")
	logFileFlag := flagSet.String("log-file", "", "Write logs to this file. The terminal frontend discards logs without it.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	settings := Defaults()
	if *configFlag != "" {
		if err := settings.LoadFile(*configFlag); err != nil {
			return nil, false, &ExitError{Code: 1, Message: err.Error()}
		}
	}

	// Only flags given explicitly override the file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			settings.Rows = *rowsFlag
		case "cols":
			settings.Cols = *colsFlag
		case "speed":
			settings.Tick = time.Duration(*speedFlag) * time.Millisecond
		case "countdown":
			settings.Countdown = *countdownFlag
		case "seed":
			settings.Seed = *seedFlag
		case "frontend":
			settings.Frontend = *frontendFlag
		case "sound":
			settings.Sound = *soundFlag
		case "log-level":
			settings.LogLevel = *logLevelFlag
		case "log-format":
			settings.LogFormat = *logFormatFlag
		case "log-file":
			settings.LogFile = *logFileFlag
		}
	})

	if err := settings.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return settings, false, nil
}

// NewLogger builds the session logger. Logs go to the settings' log file, or
// to fallback when none is configured. The returned closer releases the file.
func (s *Settings) NewLogger(fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	w := fallback
	closer := func() error { return nil }
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if s.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), closer, nil
}
