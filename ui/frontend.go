package ui

import (
	"fmt"

	"snake-game/game"
	"snake-game/game/types"
)

// InputKind classifies a player action.
type InputKind int

const (
	InputSteer InputKind = iota + 1 // change direction
	InputStart                      // any other key
	InputQuit
)

// Input is one translated key press.
type Input struct {
	Kind InputKind
	Dir  types.Direction // set for InputSteer
}

func Steer(dir types.Direction) Input {
	return Input{Kind: InputSteer, Dir: dir}
}

// Phase is the part of the session a frame belongs to.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseCountdown
	PhasePlaying
	PhaseDying
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhaseDying:
		return "dying"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Frame is everything a frontend needs to draw one screen.
type Frame struct {
	View    game.View
	Phase   Phase
	Overlay string // centered message, empty for none
	Dead    int    // body segments, head first, drawn as dead
	Best    int
	Games   int
}

// ScoreText is the score line shown under the board.
func (f Frame) ScoreText() string {
	return fmt.Sprintf("SCORE %d   BEST %d", f.View.Score, f.Best)
}

// Frontend draws frames and collects player input. Poll must not block.
type Frontend interface {
	Poll() []Input
	Render(Frame)
	Close() error
}

// RuneInput maps letter keys shared by all frontends.
func RuneInput(r rune) Input {
	switch r {
	case 'w', 'W', 'k', 'K':
		return Steer(types.Up)
	case 's', 'S', 'j', 'J':
		return Steer(types.Down)
	case 'a', 'A', 'h', 'H':
		return Steer(types.Left)
	case 'd', 'D', 'l', 'L':
		return Steer(types.Right)
	case 'q', 'Q':
		return Input{Kind: InputQuit}
	}
	return Input{Kind: InputStart}
}

// HeadRune returns the glyph for a head facing dir.
func HeadRune(dir types.Direction) rune {
	switch dir {
	case types.Up:
		return '^'
	case types.Down:
		return 'v'
	case types.Left:
		return '<'
	}
	return '>'
}
