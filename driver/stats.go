package driver

import (
	"sort"
	"time"
)

// GameRecord is the result of one finished game.
type GameRecord struct {
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Length    int
	Steps     int
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// GameStats keeps the games played during this process. Nothing is written to disk.
type GameStats struct {
	Games []GameRecord
}

func NewGameStats() *GameStats {
	return &GameStats{
		Games: make([]GameRecord, 0),
	}
}

// AddGame records a finished game.
func (s *GameStats) AddGame(r GameRecord) {
	s.Games = append(s.Games, r)
}

func (s *GameStats) Count() int {
	return len(s.Games)
}

// Best returns the highest score so far, 0 before any game ends.
func (s *GameStats) Best() int {
	best := 0
	for _, g := range s.Games {
		if g.Score > best {
			best = g.Score
		}
	}
	return best
}

func (s *GameStats) AverageScore() float64 {
	if len(s.Games) == 0 {
		return 0
	}
	total := 0
	for _, g := range s.Games {
		total += g.Score
	}
	return float64(total) / float64(len(s.Games))
}

func (s *GameStats) MedianScore() float64 {
	if len(s.Games) == 0 {
		return 0
	}
	scores := make([]int, len(s.Games))
	for i, g := range s.Games {
		scores[i] = g.Score
	}
	sort.Ints(scores)

	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}
