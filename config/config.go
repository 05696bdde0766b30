package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"snake-game/game"
)

const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

var (
	ErrBoardTooSmall   = game.ErrBoardTooSmall
	ErrInvalidFrontend = errors.New("unknown frontend")
	ErrInvalidTick     = errors.New("tick must be positive")
)

// Settings is everything needed to run a session.
type Settings struct {
	Rows int
	Cols int

	Tick          time.Duration // time between steps
	Countdown     int           // countdown numbers shown before the first step
	CountdownStep time.Duration
	DeathStep     time.Duration // delay per segment of the death sequence
	DeathPause    time.Duration // pause after the death sequence

	Seed     uint64 // 0 picks a time based seed per session
	Frontend string
	Sound    bool

	LogLevel  string
	LogFormat string
	LogFile   string
}

// Defaults mirrors the classic desktop game: a 25x25 board stepping every 100ms.
func Defaults() *Settings {
	return &Settings{
		Rows:          25,
		Cols:          25,
		Tick:          100 * time.Millisecond,
		Countdown:     3,
		CountdownStep: 500 * time.Millisecond,
		DeathStep:     50 * time.Millisecond,
		DeathPause:    time.Second,
		Frontend:      FrontendTerminal,
		Sound:         false,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Validate checks that the settings can start a session.
func (s *Settings) Validate() error {
	if err := game.Validate(s.Rows, s.Cols); err != nil {
		return err
	}
	if s.Tick <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTick, s.Tick)
	}
	if s.Countdown < 0 {
		return fmt.Errorf("countdown must not be negative: %d", s.Countdown)
	}
	switch s.Frontend {
	case FrontendTerminal, FrontendWindow:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFrontend, s.Frontend)
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return err
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", s.LogFormat)
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}
