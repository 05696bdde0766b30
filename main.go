package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"snake-game/audio"
	"snake-game/audio/beeper"
	"snake-game/config"
	"snake-game/ctxlog"
	"snake-game/driver"
	"snake-game/ui"
	"snake-game/ui/window"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *config.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	settings, shouldExit, err := config.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The terminal frontend owns the screen, so logs only go to a file there.
	logOut := stderr
	if settings.Frontend == config.FrontendTerminal {
		logOut = io.Discard
	}
	logger, closeLog, err := settings.NewLogger(logOut)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = ctxlog.WithLogger(ctx, logger)

	frontend, err := newFrontend(settings)
	if err != nil {
		return fmt.Errorf("failed to start %s frontend: %w", settings.Frontend, err)
	}
	defer frontend.Close()

	var sound audio.Player = audio.Silent{}
	if settings.Sound {
		b, err := beeper.New()
		if err != nil {
			// Non-fatal, game can run without sound
			logger.Warn("Audio initialization failed, continuing without sound.", "error", err)
		} else {
			sound = b
		}
	}
	defer sound.Close()

	logger.Info("Starting snake.",
		"rows", settings.Rows,
		"cols", settings.Cols,
		"tick", settings.Tick,
		"seed", settings.Seed,
		"frontend", settings.Frontend,
	)

	session := driver.NewSession(ctx, settings, frontend, sound, driver.SeededFactory(settings))
	return session.Run(ctx)
}

func newFrontend(settings *config.Settings) (ui.Frontend, error) {
	switch settings.Frontend {
	case config.FrontendWindow:
		r, err := window.NewRenderer(1000, 800, "Snake")
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return ui.NewTerminal()
	}
}
