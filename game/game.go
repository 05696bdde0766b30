package game

import (
	"errors"
	"fmt"
	"time"

	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// ErrBoardTooSmall is returned by Validate when the initial snake does not fit.
var ErrBoardTooSmall = errors.New("board too small for the initial snake")

// StepResult reports what one Advance call did.
type StepResult struct {
	Outcome manager.Outcome
	Head    types.Position
	Hit     types.Cell
}

// Engine is the state of one game session: the board, the snake, pending
// input, score and the terminal flag. It performs no locking; the driver must
// serialize QueueDirection and Advance.
type Engine struct {
	uuid string
	rows int
	cols int
	grid *types.Grid
	dir  types.Direction

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	inputMgr     *manager.InputManager
	stateMgr     *manager.StateManager
}

type options struct {
	rng *rand.Rand
}

// Option configures an Engine.
type Option func(*options)

// WithRand injects the random source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed seeds a private random source for food placement.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// Validate checks that a rows x cols board can hold the initial snake.
func Validate(rows, cols int) error {
	if rows < types.MinRows || cols < types.MinCols {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrBoardTooSmall, rows, cols, types.MinRows, types.MinCols)
	}
	return nil
}

// New starts a session on a rows x cols board: a 3 segment snake on the middle
// row facing Right with its head at column 3, and one food cell. It panics if
// the board is too small; use Validate to check first.
func New(rows, cols int, opts ...Option) *Engine {
	if err := Validate(rows, cols); err != nil {
		panic("game: " + err.Error())
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	grid := types.NewGrid(rows, cols)
	e := &Engine{
		uuid:         uuid.New().String(),
		rows:         rows,
		cols:         cols,
		grid:         grid,
		dir:          types.Right,
		snake:        entity.NewSnake(rows/2, types.InitialCol, types.InitialLength),
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, o.rng),
		inputMgr:     manager.NewInputManager(),
		stateMgr:     manager.NewStateManager(),
	}

	for _, p := range e.snake.Body {
		grid.Set(p, types.Snake)
	}
	e.foodMgr.GenerateFood()

	return e
}

func (e *Engine) UUID() string {
	return e.uuid
}

func (e *Engine) Rows() int {
	return e.rows
}

func (e *Engine) Cols() int {
	return e.cols
}

// Cell returns the content at p, or Outside for positions off the board.
func (e *Engine) Cell(p types.Position) types.Cell {
	return e.grid.At(p)
}

// Grid returns a copy of the board, indexed [row][col].
func (e *Engine) Grid() [][]types.Cell {
	return e.grid.Rows2D()
}

func (e *Engine) Direction() types.Direction {
	return e.dir
}

func (e *Engine) Score() int {
	return e.stateMgr.GetScore()
}

func (e *Engine) GameOver() bool {
	return e.stateMgr.IsGameOver()
}

// Steps counts Advance calls that changed the session, the fatal one included.
func (e *Engine) Steps() int {
	return e.stateMgr.GetSteps()
}

func (e *Engine) HeadPosition() types.Position {
	return e.snake.GetHead()
}

func (e *Engine) TailPosition() types.Position {
	return e.snake.GetTail()
}

// SnakePositions returns the body head to tail. The slice is a copy.
func (e *Engine) SnakePositions() []types.Position {
	return e.snake.Positions()
}

func (e *Engine) Length() int {
	return e.snake.Len()
}

// FoodPosition returns the food cell; false once the board is full.
func (e *Engine) FoodPosition() (types.Position, bool) {
	return e.foodMgr.GetFood()
}

// PendingDirections returns the queued, not yet applied, direction changes.
func (e *Engine) PendingDirections() []types.Direction {
	return e.inputMgr.Pending()
}

// QueueDirection buffers a direction change for a later step. Requests that
// repeat or reverse the last effective direction, or exceed the queue depth,
// are dropped; the return value reports whether dir was accepted.
func (e *Engine) QueueDirection(dir types.Direction) bool {
	return e.inputMgr.Queue(dir, e.dir)
}

// Advance runs one step. After the game is over it does nothing.
func (e *Engine) Advance() StepResult {
	if e.stateMgr.IsGameOver() {
		return StepResult{Outcome: manager.Idle, Head: e.snake.GetHead()}
	}

	if dir, ok := e.inputMgr.Next(); ok {
		e.dir = dir
	}

	newHead := e.snake.GetHead().Translate(e.dir)
	hit := e.collisionMgr.WillHit(newHead, e.snake.GetTail())

	var outcome manager.Outcome
	switch {
	case e.collisionMgr.IsFatal(hit):
		outcome = manager.Died
	case hit == types.Food:
		e.addHead(newHead)
		e.foodMgr.Eat(newHead)
		outcome = manager.Ate
	default:
		e.removeTail()
		e.addHead(newHead)
		outcome = manager.Moved
	}

	e.stateMgr.Record(outcome)
	if outcome == manager.Ate {
		e.foodMgr.GenerateFood()
	}

	result := StepResult{Outcome: outcome, Head: e.snake.GetHead(), Hit: hit}
	if outcome == manager.Died {
		result.Head = newHead
	}
	return result
}

func (e *Engine) addHead(p types.Position) {
	e.snake.Move(p)
	e.grid.Set(p, types.Snake)
}

func (e *Engine) removeTail() {
	tail := e.snake.RemoveTail()
	e.grid.Set(tail, types.Empty)
}
