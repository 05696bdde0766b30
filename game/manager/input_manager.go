package manager

import (
	"snake-game/game/types"
)

// InputManager buffers validated direction changes until the engine applies
// them, one per step.
type InputManager struct {
	pending []types.Direction
}

func NewInputManager() *InputManager {
	return &InputManager{
		pending: make([]types.Direction, 0, types.MaxQueuedDirections),
	}
}

// lastDirection is the most recently queued direction, or current when the
// queue is empty.
func (im *InputManager) lastDirection(current types.Direction) types.Direction {
	if len(im.pending) == 0 {
		return current
	}
	return im.pending[len(im.pending)-1]
}

// CanChangeDirection validates dir against the last effective direction, not
// the one currently applied. This rejects a queued Right then Left even though
// neither has been applied yet.
func (im *InputManager) CanChangeDirection(dir, current types.Direction) bool {
	if len(im.pending) == types.MaxQueuedDirections {
		return false
	}

	last := im.lastDirection(current)
	return dir != last && dir != last.Opposite()
}

// Queue appends dir if it is a valid change and reports whether it was accepted.
func (im *InputManager) Queue(dir, current types.Direction) bool {
	if !im.CanChangeDirection(dir, current) {
		return false
	}
	im.pending = append(im.pending, dir)
	return true
}

// Next pops the oldest pending direction.
func (im *InputManager) Next() (types.Direction, bool) {
	if len(im.pending) == 0 {
		return types.Direction{}, false
	}
	dir := im.pending[0]
	im.pending = append(im.pending[:0], im.pending[1:]...)
	return dir, true
}

func (im *InputManager) Len() int {
	return len(im.pending)
}

// Pending returns a copy of the queue, oldest first.
func (im *InputManager) Pending() []types.Direction {
	out := make([]types.Direction, len(im.pending))
	copy(out, im.pending)
	return out
}
