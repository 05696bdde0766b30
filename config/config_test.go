package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := Defaults()
	require.NoError(t, s.Validate())
	assert.Equal(t, 25, s.Rows)
	assert.Equal(t, 25, s.Cols)
	assert.Equal(t, 100*time.Millisecond, s.Tick)
	assert.Equal(t, 3, s.Countdown)
	assert.Equal(t, FrontendTerminal, s.Frontend)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		want   error
	}{
		{"too few cols", func(s *Settings) { s.Cols = 3 }, ErrBoardTooSmall},
		{"no rows", func(s *Settings) { s.Rows = 0 }, ErrBoardTooSmall},
		{"zero tick", func(s *Settings) { s.Tick = 0 }, ErrInvalidTick},
		{"bad frontend", func(s *Settings) { s.Frontend = "gtk" }, ErrInvalidFrontend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(s)
			assert.ErrorIs(t, s.Validate(), tt.want)
		})
	}

	s := Defaults()
	s.LogLevel = "loud"
	assert.Error(t, s.Validate())
}

func TestLoadBytes(t *testing.T) {
	src := `
game {
  rows = 12
  cols = 30
  seed = 99
}

timing {
  tick      = "80ms"
  countdown = 0
}

ui {
  frontend = "window"
  sound    = true
}

log {
  level = "debug"
}
`
	s := Defaults()
	require.NoError(t, s.LoadBytes([]byte(src), "snake.hcl"))

	assert.Equal(t, 12, s.Rows)
	assert.Equal(t, 30, s.Cols)
	assert.Equal(t, uint64(99), s.Seed)
	assert.Equal(t, 80*time.Millisecond, s.Tick)
	assert.Equal(t, 0, s.Countdown)
	assert.Equal(t, 500*time.Millisecond, s.CountdownStep, "untouched values keep their defaults")
	assert.Equal(t, FrontendWindow, s.Frontend)
	assert.True(t, s.Sound)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "text", s.LogFormat)
}

func TestLoadBytesErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":        `game {`,
		"unknown block": `arena { size = 3 }`,
		"bad duration":  `timing { tick = "fast" }`,
		"negative seed": `game { seed = -1 }`,
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Defaults().LoadBytes([]byte(src), "bad.hcl"))
		})
	}
}

func TestParse(t *testing.T) {
	var out bytes.Buffer
	s, exit, err := Parse([]string{"-rows", "10", "-cols", "12", "-speed", "50", "-seed", "7"}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, 10, s.Rows)
	assert.Equal(t, 12, s.Cols)
	assert.Equal(t, 50*time.Millisecond, s.Tick)
	assert.Equal(t, uint64(7), s.Seed)
}

func TestParseFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.hcl")
	require.NoError(t, os.WriteFile(path, []byte("game {\n  rows = 15\n  cols = 16\n}\n"), 0o644))

	s, _, err := Parse([]string{"-config", path, "-cols", "20"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, 15, s.Rows)
	assert.Equal(t, 20, s.Cols)
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	s, exit, err := Parse([]string{"-help"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, s)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-rows", "abc"},
		{"-cols", "2"},
		{"-frontend", "gtk"},
		{"extra"},
	} {
		_, _, err := Parse(args, &bytes.Buffer{})
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr, "%v", args)
		assert.Equal(t, 2, exitErr.Code)
	}

	_, _, err := Parse([]string{"-config", filepath.Join(t.TempDir(), "missing.hcl")}, &bytes.Buffer{})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	s := Defaults()
	s.LogFormat = "json"
	s.LogLevel = "warn"

	logger, closer, err := s.NewLogger(&buf)
	require.NoError(t, err)
	defer closer()

	logger.Info("dropped")
	logger.Warn("kept", "score", 3)

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"score":3`)
}

func TestNewLoggerToFile(t *testing.T) {
	s := Defaults()
	s.LogFile = filepath.Join(t.TempDir(), "snake.log")

	logger, closer, err := s.NewLogger(&bytes.Buffer{})
	require.NoError(t, err)
	logger.Info("session started")
	require.NoError(t, closer())

	data, err := os.ReadFile(s.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
}

func TestExampleFile(t *testing.T) {
	s := Defaults()
	require.NoError(t, s.LoadFile(filepath.Join("..", "snake.example.hcl")))
	require.NoError(t, s.Validate())
	assert.Equal(t, Defaults(), s)
}
