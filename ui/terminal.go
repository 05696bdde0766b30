package ui

import (
	"snake-game/game/types"

	"github.com/gdamore/tcell/v2"
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLime)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleDead   = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

const (
	boardX    = 1 // column of the first board cell
	boardY    = 1 // row of the first board cell
	cellWidth = 2 // terminal columns per board cell, keeps cells roughly square
)

// Terminal is the tcell frontend.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
}

var _ Frontend = (*Terminal)(nil)

// NewTerminal takes over the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an initialized screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	screen.HideCursor()
	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
	go t.pollEvents()
	return t
}

func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Poll drains pending events without blocking.
func (t *Terminal) Poll() []Input {
	var inputs []Input
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				inputs = append(inputs, terminalKeyInput(ev))
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return inputs
		}
	}
}

func terminalKeyInput(ev *tcell.EventKey) Input {
	switch ev.Key() {
	case tcell.KeyUp:
		return Steer(types.Up)
	case tcell.KeyDown:
		return Steer(types.Down)
	case tcell.KeyLeft:
		return Steer(types.Left)
	case tcell.KeyRight:
		return Steer(types.Right)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Input{Kind: InputQuit}
	case tcell.KeyRune:
		return RuneInput(ev.Rune())
	}
	return Input{Kind: InputStart}
}

// cellOrigin is the screen coordinate of the left half of a board cell.
func cellOrigin(p types.Position) (int, int) {
	return boardX + p.Col*cellWidth, boardY + p.Row
}

func scoreLine(rows int) int {
	return boardY + rows + 1
}

func bannerLine(rows int) int {
	return scoreLine(rows) + 1
}

func (t *Terminal) setCell(p types.Position, r rune, style tcell.Style) {
	x, y := cellOrigin(p)
	t.screen.SetContent(x, y, r, nil, style)
	t.screen.SetContent(x+1, y, r, nil, style)
}

func (t *Terminal) Render(f Frame) {
	s := t.screen
	s.Clear()

	v := f.View
	width := v.Cols*cellWidth + 2
	height := v.Rows + 2
	t.drawBorder(boardX-1, boardY-1, width, height)

	for row := 0; row < v.Rows; row++ {
		for col := 0; col < v.Cols; col++ {
			p := types.Position{Row: row, Col: col}
			switch v.Cells[row][col] {
			case types.Snake:
				t.setCell(p, '█', styleBody)
			case types.Food:
				x, y := cellOrigin(p)
				s.SetContent(x, y, '(', nil, styleFood)
				s.SetContent(x+1, y, ')', nil, styleFood)
			}
		}
	}

	if len(v.Body) > 0 {
		x, y := cellOrigin(v.Head())
		head := HeadRune(v.Direction)
		s.SetContent(x, y, head, nil, styleHead)
		s.SetContent(x+1, y, head, nil, styleHead)
	}
	for i := 0; i < f.Dead && i < len(v.Body); i++ {
		if i == 0 {
			t.setCell(v.Body[i], 'X', styleDead)
			continue
		}
		t.setCell(v.Body[i], '▓', styleDead)
	}

	t.drawText(boardX, scoreLine(v.Rows), f.ScoreText(), styleText)

	// The banner goes under the score line so it never covers a cell.
	if f.Overlay != "" {
		text := " " + f.Overlay + " "
		x := boardX + (v.Cols*cellWidth-len([]rune(text)))/2
		t.drawText(max(x, 0), bannerLine(v.Rows), text, styleBanner)
	}

	s.Show()
}

func (t *Terminal) drawBorder(x, y, w, h int) {
	s := t.screen
	for i := x + 1; i < x+w-1; i++ {
		s.SetContent(i, y, tcell.RuneHLine, nil, styleBorder)
		s.SetContent(i, y+h-1, tcell.RuneHLine, nil, styleBorder)
	}
	for j := y + 1; j < y+h-1; j++ {
		s.SetContent(x, j, tcell.RuneVLine, nil, styleBorder)
		s.SetContent(x+w-1, j, tcell.RuneVLine, nil, styleBorder)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, styleBorder)
	s.SetContent(x+w-1, y, tcell.RuneURCorner, nil, styleBorder)
	s.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, styleBorder)
	s.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, styleBorder)
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	close(t.done)
	t.screen.Fini()
	return nil
}
