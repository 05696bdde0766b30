// Package audio describes the sound cues for game events. It has no device
// dependency; audio/beeper plays the cues through the system speaker.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every cue is rendered at.
const SampleRate = beep.SampleRate(44100)

// Player reacts to game events with sound.
type Player interface {
	Eat()
	Die()
	Close() error
}

// Silent is a Player that does nothing.
type Silent struct{}

func (Silent) Eat()         {}
func (Silent) Die()         {}
func (Silent) Close() error { return nil }

// Note is one tone of a cue; a zero frequency is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// EatCue is a short high blip.
func EatCue() []Note {
	return []Note{{Freq: 880, Duration: 40 * time.Millisecond}, {Freq: 1320, Duration: 40 * time.Millisecond}}
}

// DeathCue is a falling sequence.
func DeathCue() []Note {
	return []Note{
		{Freq: 440, Duration: 120 * time.Millisecond},
		{Freq: 330, Duration: 120 * time.Millisecond},
		{Freq: 0, Duration: 30 * time.Millisecond},
		{Freq: 220, Duration: 250 * time.Millisecond},
	}
}

// Sequence chains the notes into one streamer.
func Sequence(notes []Note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := SampleRate.N(n.Duration)
		if n.Freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(SampleRate, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0fHz: %w", n.Freq, err)
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	return beep.Seq(parts...), nil
}

// Render buffers a cue so it can be replayed.
func Render(notes []Note) (*beep.Buffer, error) {
	s, err := Sequence(notes)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}
