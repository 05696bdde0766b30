// Package window is the raylib desktop frontend.
package window

import (
	"errors"

	"snake-game/game/types"
	"snake-game/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	scoreBand     = 40 // Space under the board for the score line
)

// boardLayout places the board inside the window.
type boardLayout struct {
	cellSize int32
	offsetX  int32
	offsetY  int32
	width    int32
	height   int32
}

func layoutBoard(screenWidth, screenHeight int32, rows, cols int) boardLayout {
	availableWidth := screenWidth - borderPadding*2
	availableHeight := screenHeight - borderPadding*2 - scoreBand

	cellW := availableWidth / int32(cols)
	cellH := availableHeight / int32(rows)
	cellSize := min(cellW, cellH)
	if cellSize < 1 {
		cellSize = 1
	}

	l := boardLayout{
		cellSize: cellSize,
		width:    cellSize * int32(cols),
		height:   cellSize * int32(rows),
	}
	// Center horizontally, keep the score band below.
	l.offsetX = (screenWidth - l.width) / 2
	l.offsetY = borderPadding
	return l
}

func (l boardLayout) cell(p types.Position) (int32, int32) {
	return l.offsetX + int32(p.Col)*l.cellSize, l.offsetY + int32(p.Row)*l.cellSize
}

// ErrWindowInit is returned when raylib could not open a window.
var ErrWindowInit = errors.New("failed to initialize window")

var _ ui.Frontend = (*Renderer)(nil)

// Renderer is the raylib window frontend. Every method must be called from
// the goroutine that created it, raylib is bound to that OS thread.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
}

// NewRenderer opens the game window.
func NewRenderer(width, height int32, title string) (*Renderer, error) {
	rl.InitWindow(width, height, title)
	if !rl.IsWindowReady() {
		return nil, ErrWindowInit
	}
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(60)

	r := &Renderer{}
	r.UpdateDimensions()
	return r, nil
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Poll drains raylib's key queue in press order.
func (r *Renderer) Poll() []ui.Input {
	var inputs []ui.Input
	if rl.WindowShouldClose() {
		return append(inputs, ui.Input{Kind: ui.InputQuit})
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		inputs = append(inputs, windowKeyInput(key))
	}
	return inputs
}

func windowKeyInput(key int32) ui.Input {
	switch key {
	case rl.KeyUp:
		return ui.Steer(types.Up)
	case rl.KeyDown:
		return ui.Steer(types.Down)
	case rl.KeyLeft:
		return ui.Steer(types.Left)
	case rl.KeyRight:
		return ui.Steer(types.Right)
	}
	// raylib reports letters as upper case key codes.
	if key >= rl.KeyA && key <= rl.KeyZ {
		return ui.RuneInput(rune(key))
	}
	return ui.Input{Kind: ui.InputStart}
}

func (r *Renderer) Render(f ui.Frame) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	v := f.View
	l := layoutBoard(r.screenWidth, r.screenHeight, v.Rows, v.Cols)
	fontSize := max(r.screenHeight/30, 10)

	// Draw grid background
	rl.DrawRectangle(l.offsetX-1, l.offsetY-1, l.width+2, l.height+2, rl.DarkGray)
	for row := 0; row < v.Rows; row++ {
		for col := 0; col < v.Cols; col++ {
			x, y := l.cell(types.Position{Row: row, Col: col})
			switch v.Cells[row][col] {
			case types.Snake:
				rl.DrawRectangle(x, y, l.cellSize, l.cellSize, rl.Green)
			case types.Food:
				rl.DrawCircle(x+l.cellSize/2, y+l.cellSize/2, float32(l.cellSize)/2.5, rl.Red)
			default:
				rl.DrawRectangle(x, y, l.cellSize, l.cellSize, rl.Black)
			}
			rl.DrawRectangleLines(x, y, l.cellSize, l.cellSize, rl.Color{R: 30, G: 30, B: 30, A: 255})
		}
	}

	if len(v.Body) > 0 {
		r.drawHead(l, v.Head(), v.Direction)
	}
	for i := 0; i < f.Dead && i < len(v.Body); i++ {
		x, y := l.cell(v.Body[i])
		color := rl.Maroon
		if i == 0 {
			color = rl.Red
		}
		rl.DrawRectangle(x, y, l.cellSize, l.cellSize, color)
	}

	rl.DrawText(f.ScoreText(), l.offsetX, l.offsetY+l.height+borderPadding, fontSize, rl.White)

	if f.Overlay != "" {
		rl.DrawRectangle(l.offsetX, l.offsetY, l.width, l.height, rl.Color{R: 0, G: 0, B: 0, A: 170})
		size := fontSize * 2
		if len(f.Overlay) > 3 {
			size = fontSize
		}
		textWidth := rl.MeasureText(f.Overlay, size)
		rl.DrawText(f.Overlay, l.offsetX+(l.width-textWidth)/2, l.offsetY+(l.height-size)/2, size, rl.White)
	}
}

// drawHead paints the head cell with a triangle pointing where the snake faces.
func (r *Renderer) drawHead(l boardLayout, head types.Position, dir types.Direction) {
	headX, headY := l.cell(head)
	cellSize := l.cellSize
	halfCell := cellSize / 2
	rl.DrawRectangle(headX, headY, cellSize, cellSize, rl.Lime)

	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + cellSize)},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + cellSize)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + cellSize)},
			rl.Vector2{X: float32(headX + cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Yellow)
	default:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) Close() error {
	rl.CloseWindow()
	return nil
}
