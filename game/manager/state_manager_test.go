package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateManagerRecord(t *testing.T) {
	sm := NewStateManager()

	sm.Record(Moved)
	sm.Record(Ate)
	sm.Record(Ate)
	assert.Equal(t, 2, sm.GetScore())
	assert.Equal(t, 3, sm.GetSteps())
	assert.False(t, sm.IsGameOver())

	sm.Record(Died)
	assert.True(t, sm.IsGameOver())

	sm.Record(Idle)
	assert.True(t, sm.IsGameOver())
	assert.Equal(t, 2, sm.GetScore())
	assert.Equal(t, 4, sm.GetSteps())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "ate", Ate.String())
	assert.Equal(t, "died", Died.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
