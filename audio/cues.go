package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cues plays short sine cues for game events. When no audio device is
// available the cues run in silent mode: every method is a no-op, the
// game is unaffected.
type Cues struct {
	ready bool
	muted atomic.Bool
}

// NewCues initializes the speaker. Failure is not fatal and is not
// reported; the returned Cues simply stays silent.
func NewCues(muted bool) *Cues {
	c := &Cues{}
	c.muted.Store(muted)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
		c.ready = true
	}
	return c
}

func (c *Cues) Close() {
	if c.ready {
		speaker.Close()
	}
}

// Toggle flips the mute state.
func (c *Cues) Toggle() {
	c.muted.Store(!c.muted.Load())
}

func (c *Cues) Muted() bool {
	return c.muted.Load()
}

// Win plays a short two-note ascent on reaching the goal.
func (c *Cues) Win() {
	c.play(beep.Seq(
		tone(523.25, 80*time.Millisecond),
		tone(783.99, 160*time.Millisecond),
	))
}

// Regen plays a single low blip on maze regeneration.
func (c *Cues) Regen() {
	c.play(tone(329.63, 60*time.Millisecond))
}

func (c *Cues) play(s beep.Streamer) {
	if !c.ready || c.muted.Load() {
		return
	}
	speaker.Play(s)
}

func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), sine)
}
