// Package driver runs game sessions: it paces steps, feeds player input to
// the engine between steps and tells the frontend what to draw.
package driver

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"snake-game/audio"
	"snake-game/config"
	"snake-game/ctxlog"
	"snake-game/game"
	"snake-game/game/manager"
	"snake-game/ui"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	startPrompt   = "PRESS ANY KEY TO START"
)

// EngineFactory builds the engine for a new game.
type EngineFactory func() *game.Engine

// Session owns one engine at a time and drives it. All engine calls happen on
// the goroutine calling Update, so input never overlaps a step.
type Session struct {
	settings  *config.Settings
	frontend  ui.Frontend
	sound     audio.Player
	newEngine EngineFactory
	logger    *slog.Logger

	engine     *game.Engine
	phase      ui.Phase
	phaseStart time.Time
	lastStep   time.Time
	gameStart  time.Time
	stats      *GameStats
}

// NewSession prepares the first game and shows the start prompt.
func NewSession(ctx context.Context, settings *config.Settings, frontend ui.Frontend, sound audio.Player, newEngine EngineFactory) *Session {
	if sound == nil {
		sound = audio.Silent{}
	}
	s := &Session{
		settings:  settings,
		frontend:  frontend,
		sound:     sound,
		newEngine: newEngine,
		logger:    ctxlog.FromContext(ctx),
		phase:     ui.PhaseWaiting,
		stats:     NewGameStats(),
	}
	s.engine = newEngine()
	return s
}

// SeededFactory returns a factory for settings' board. A non-zero seed makes
// the n-th game use seed+n, so a run is reproducible but games differ.
func SeededFactory(settings *config.Settings) EngineFactory {
	games := uint64(0)
	return func() *game.Engine {
		if settings.Seed == 0 {
			return game.New(settings.Rows, settings.Cols)
		}
		seed := settings.Seed + games
		games++
		return game.New(settings.Rows, settings.Cols, game.WithSeed(seed))
	}
}

func (s *Session) Engine() *game.Engine {
	return s.engine
}

func (s *Session) Phase() ui.Phase {
	return s.phase
}

func (s *Session) Stats() *GameStats {
	return s.stats
}

// Run updates and renders until the player quits or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		if quit := s.Update(time.Now()); quit {
			s.logger.Info("Player quit.",
				"games", s.stats.Count(),
				"best", s.stats.Best(),
				"avg", s.stats.AverageScore(),
				"median", s.stats.MedianScore(),
			)
			return nil
		}
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Update consumes input, advances the session to now and renders a frame.
// It reports true when the player asked to quit.
func (s *Session) Update(now time.Time) bool {
	for _, in := range s.frontend.Poll() {
		if in.Kind == ui.InputQuit {
			return true
		}
		s.handleInput(in, now)
	}

	switch s.phase {
	case ui.PhaseCountdown:
		if s.countdownRemaining(now) <= 0 {
			s.startPlaying(now)
		}
	case ui.PhasePlaying:
		if now.Sub(s.lastStep) >= s.settings.Tick {
			s.lastStep = now
			s.step(now)
		}
	case ui.PhaseDying:
		if now.Sub(s.phaseStart) >= s.deathDuration() {
			s.setPhase(ui.PhaseWaiting, now)
		}
	}

	s.frontend.Render(s.frame(now))
	return false
}

func (s *Session) handleInput(in ui.Input, now time.Time) {
	switch s.phase {
	case ui.PhaseWaiting:
		if s.engine.GameOver() {
			s.engine = s.newEngine()
			s.logger.Debug("New game prepared.", "session", s.engine.UUID())
		}
		s.setPhase(ui.PhaseCountdown, now)
		if s.settings.Countdown == 0 {
			s.startPlaying(now)
		}
	case ui.PhasePlaying:
		if in.Kind == ui.InputSteer {
			s.engine.QueueDirection(in.Dir)
		}
	}
}

func (s *Session) startPlaying(now time.Time) {
	s.setPhase(ui.PhasePlaying, now)
	s.lastStep = now
	s.gameStart = now
	s.logger.Info("Game started.",
		"session", s.engine.UUID(),
		"rows", s.engine.Rows(),
		"cols", s.engine.Cols(),
		"tick", s.settings.Tick,
	)
}

func (s *Session) step(now time.Time) {
	res := s.engine.Advance()
	switch res.Outcome {
	case manager.Ate:
		s.sound.Eat()
		s.logger.Debug("Food eaten.", "session", s.engine.UUID(), "score", s.engine.Score(), "head", res.Head.String())
	case manager.Died:
		s.sound.Die()
		record := GameRecord{
			StartTime: s.gameStart,
			EndTime:   now,
			Score:     s.engine.Score(),
			Length:    s.engine.Length(),
			Steps:     s.engine.Steps(),
		}
		s.stats.AddGame(record)
		s.logger.Info("Game over.",
			"session", s.engine.UUID(),
			"score", record.Score,
			"length", record.Length,
			"hit", res.Hit.String(),
			"steps", record.Steps,
			"duration", record.Duration(),
		)
		s.setPhase(ui.PhaseDying, now)
	}
}

func (s *Session) setPhase(p ui.Phase, now time.Time) {
	s.phase = p
	s.phaseStart = now
}

func (s *Session) countdownRemaining(now time.Time) int {
	if s.settings.CountdownStep <= 0 {
		return 0
	}
	elapsed := int(now.Sub(s.phaseStart) / s.settings.CountdownStep)
	return s.settings.Countdown - elapsed
}

func (s *Session) deathDuration() time.Duration {
	return time.Duration(s.engine.Length())*s.settings.DeathStep + s.settings.DeathPause
}

// deadSegments is how much of the body the death sequence has reached.
func (s *Session) deadSegments(now time.Time) int {
	if s.settings.DeathStep <= 0 {
		return s.engine.Length()
	}
	n := int(now.Sub(s.phaseStart)/s.settings.DeathStep) + 1
	return min(n, s.engine.Length())
}

func (s *Session) frame(now time.Time) ui.Frame {
	f := ui.Frame{
		View:  s.engine.Snapshot(),
		Phase: s.phase,
		Best:  s.stats.Best(),
		Games: s.stats.Count(),
	}
	switch s.phase {
	case ui.PhaseWaiting:
		f.Overlay = startPrompt
		if s.engine.GameOver() {
			f.Dead = s.engine.Length()
		}
	case ui.PhaseCountdown:
		f.Overlay = strconv.Itoa(max(s.countdownRemaining(now), 1))
	case ui.PhaseDying:
		f.Dead = s.deadSegments(now)
	}
	return f
}
