package driver

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"snake-game/config"
	"snake-game/ctxlog"
	"snake-game/game"
	"snake-game/game/types"
	"snake-game/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFrontend struct {
	mu      sync.Mutex
	pending []ui.Input
	frames  []ui.Frame
	polls   int
	quitAt  int // quit on this poll when non-zero
}

func (f *fakeFrontend) push(in ...ui.Input) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, in...)
}

func (f *fakeFrontend) Poll() []ui.Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.polls++
	if f.quitAt != 0 && f.polls >= f.quitAt {
		return []ui.Input{{Kind: ui.InputQuit}}
	}
	in := f.pending
	f.pending = nil
	return in
}

func (f *fakeFrontend) Render(frame ui.Frame) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames = append(f.frames, frame)
}

func (f *fakeFrontend) Close() error { return nil }

func (f *fakeFrontend) last() ui.Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames[len(f.frames)-1]
}

type fakeSound struct {
	eats, deaths int
}

func (s *fakeSound) Eat()         { s.eats++ }
func (s *fakeSound) Die()         { s.deaths++ }
func (s *fakeSound) Close() error { return nil }

func testSettings() *config.Settings {
	s := config.Defaults()
	s.Rows = 10
	s.Cols = 10
	s.Seed = 42
	return s
}

func testContext(buf *bytes.Buffer) context.Context {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}

func TestSessionLifecycle(t *testing.T) {
	var logs bytes.Buffer
	settings := testSettings()
	fe := &fakeFrontend{}
	sound := &fakeSound{}
	s := NewSession(testContext(&logs), settings, fe, sound, SeededFactory(settings))
	first := s.Engine()

	t0 := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	// Waiting for a key.
	require.False(t, s.Update(t0))
	assert.Equal(t, ui.PhaseWaiting, s.Phase())
	assert.Equal(t, "PRESS ANY KEY TO START", fe.last().Overlay)

	// Steering is not applied while the countdown runs.
	fe.push(ui.Input{Kind: ui.InputStart})
	s.Update(t0)
	assert.Equal(t, ui.PhaseCountdown, s.Phase())
	assert.Equal(t, "3", fe.last().Overlay)

	fe.push(ui.Steer(types.Up))
	s.Update(t0.Add(600 * time.Millisecond))
	assert.Equal(t, "2", fe.last().Overlay)
	assert.Empty(t, first.PendingDirections())

	s.Update(t0.Add(1500 * time.Millisecond))
	require.Equal(t, ui.PhasePlaying, s.Phase())
	assert.Empty(t, fe.last().Overlay)

	// One step per tick.
	now := t0.Add(1500 * time.Millisecond)
	s.Update(now.Add(50 * time.Millisecond))
	assert.Equal(t, types.Position{Row: 5, Col: 3}, first.HeadPosition())

	now = now.Add(100 * time.Millisecond)
	s.Update(now)
	assert.Equal(t, types.Position{Row: 5, Col: 4}, first.HeadPosition())

	fe.push(ui.Steer(types.Up))
	now = now.Add(100 * time.Millisecond)
	s.Update(now)
	assert.Equal(t, types.Up, first.Direction())
	assert.Equal(t, types.Position{Row: 4, Col: 4}, first.HeadPosition())

	// Run into the top wall.
	for i := 0; i < 20 && s.Phase() == ui.PhasePlaying; i++ {
		now = now.Add(100 * time.Millisecond)
		s.Update(now)
	}
	require.Equal(t, ui.PhaseDying, s.Phase())
	assert.True(t, first.GameOver())
	assert.Equal(t, 1, sound.deaths)
	assert.Equal(t, 1, s.Stats().Count())
	assert.Equal(t, first.Score(), s.Stats().Best())
	assert.Equal(t, first.Score(), sound.eats)
	assert.Equal(t, 1, fe.last().Dead)

	// The death sequence reveals one segment per DeathStep.
	s.Update(now.Add(settings.DeathStep))
	assert.Equal(t, 2, fe.last().Dead)

	// Input during the death sequence is ignored.
	fe.push(ui.Input{Kind: ui.InputStart})
	s.Update(now.Add(2 * settings.DeathStep))
	assert.Equal(t, ui.PhaseDying, s.Phase())

	done := now.Add(time.Duration(first.Length())*settings.DeathStep + settings.DeathPause)
	s.Update(done)
	assert.Equal(t, ui.PhaseWaiting, s.Phase())
	assert.Equal(t, "PRESS ANY KEY TO START", fe.last().Overlay)
	assert.Equal(t, first.Length(), fe.last().Dead)

	// A key starts a fresh engine.
	fe.push(ui.Input{Kind: ui.InputStart})
	s.Update(done.Add(time.Millisecond))
	assert.Equal(t, ui.PhaseCountdown, s.Phase())
	assert.NotSame(t, first, s.Engine())
	assert.NotEqual(t, first.UUID(), s.Engine().UUID())
	assert.False(t, s.Engine().GameOver())
	assert.Equal(t, 0, fe.last().Dead)

	fe.push(ui.Input{Kind: ui.InputQuit})
	assert.True(t, s.Update(done.Add(2*time.Millisecond)))

	assert.Contains(t, logs.String(), "Game over.")
	assert.Contains(t, logs.String(), "duration=")
}

func TestSessionWithoutCountdown(t *testing.T) {
	settings := testSettings()
	settings.Countdown = 0
	fe := &fakeFrontend{}
	s := NewSession(context.Background(), settings, fe, nil, SeededFactory(settings))

	t0 := time.Now()
	fe.push(ui.Input{Kind: ui.InputStart})
	s.Update(t0)
	assert.Equal(t, ui.PhasePlaying, s.Phase())
}

func TestSeededFactory(t *testing.T) {
	settings := testSettings()
	factory := SeededFactory(settings)

	a := factory()
	b := factory()
	want := game.New(settings.Rows, settings.Cols, game.WithSeed(settings.Seed))

	fa, _ := a.FoodPosition()
	fw, _ := want.FoodPosition()
	assert.Equal(t, fw, fa)
	assert.NotSame(t, a, b)

	settings.Seed = 0
	assert.Equal(t, 10, factory().Rows())
}

func TestRunStopsOnQuit(t *testing.T) {
	settings := testSettings()
	fe := &fakeFrontend{quitAt: 3}
	var logs bytes.Buffer
	s := NewSession(testContext(&logs), settings, fe, nil, SeededFactory(settings))
	s.Stats().AddGame(GameRecord{Score: 4})
	s.Stats().AddGame(GameRecord{Score: 1})

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, 3, fe.polls)
	assert.Contains(t, logs.String(), "Player quit.")
	assert.Contains(t, logs.String(), "games=2 best=4 avg=2.5 median=2.5")
}

func TestRunStopsOnCancel(t *testing.T) {
	settings := testSettings()
	fe := &fakeFrontend{}
	s := NewSession(context.Background(), settings, fe, nil, SeededFactory(settings))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := s.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	ctx, cancel = context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, s.Run(ctx))
}
