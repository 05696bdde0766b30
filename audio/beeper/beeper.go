// Package beeper plays audio cues through the system speaker.
package beeper

import (
	"fmt"
	"time"

	"snake-game/audio"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

var _ audio.Player = (*Beeper)(nil)

// Beeper synthesizes tones through the system speaker.
type Beeper struct {
	eat *beep.Buffer
	die *beep.Buffer
}

// New initializes the speaker and prepares the cues.
func New() (*Beeper, error) {
	eat, err := audio.Render(audio.EatCue())
	if err != nil {
		return nil, err
	}
	die, err := audio.Render(audio.DeathCue())
	if err != nil {
		return nil, err
	}
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &Beeper{eat: eat, die: die}, nil
}

func (b *Beeper) Eat() {
	b.play(b.eat)
}

func (b *Beeper) Die() {
	b.play(b.die)
}

// play starts a fresh streamer over the buffer so overlapping cues do not
// share a read position.
func (b *Beeper) play(buf *beep.Buffer) {
	speaker.Play(buf.Streamer(0, buf.Len()))
}

func (b *Beeper) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}
