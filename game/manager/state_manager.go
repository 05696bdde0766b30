package manager

// Outcome describes what a single step did.
type Outcome int

const (
	Idle  Outcome = iota // nothing happened, the game was already over
	Moved                // head advanced, tail followed
	Ate                  // head advanced onto food, body grew
	Died                 // head hit a wall or the body
)

func (o Outcome) String() string {
	switch o {
	case Idle:
		return "idle"
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case Died:
		return "died"
	}
	return "unknown"
}

// StateManager holds the score and terminal flag of a session. Score only
// increases and GameOver only goes from false to true.
type StateManager struct {
	score    int
	gameOver bool
	steps    int
}

func NewStateManager() *StateManager {
	return &StateManager{}
}

// Record applies the outcome of one step.
func (sm *StateManager) Record(o Outcome) {
	if o == Idle {
		return
	}
	sm.steps++
	switch o {
	case Ate:
		sm.score++
	case Died:
		sm.gameOver = true
	}
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) IsGameOver() bool {
	return sm.gameOver
}

// GetSteps counts the steps that changed state, including the fatal one.
func (sm *StateManager) GetSteps() int {
	return sm.steps
}
