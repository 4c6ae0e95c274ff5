package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tcell-maze/audio"
	"github.com/lixenwraith/tcell-maze/game"
	"github.com/lixenwraith/tcell-maze/input"
	"github.com/lixenwraith/tcell-maze/render"
)

var (
	muteFlag = flag.Bool("mute", false, "start with audio muted")
	seedFlag = flag.Int64("seed", 0, "maze seed (0 = wall clock)")
)

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before any crash output so the stack trace
	// is readable after the alternate screen is gone
	defer func() {
		screen.Fini()
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "tcell-maze crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	// Seeded once; consecutive regenerations advance the same stream
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().Unix()
	}
	rng := rand.New(rand.NewSource(seed))

	cues := audio.NewCues(*muteFlag)
	defer cues.Close()

	canvas := render.NewCanvas(screen)
	session := game.NewSession(game.DefaultWidth, game.DefaultHeight, rng, canvas, cues)
	keys := input.DefaultKeyTable()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			events <- ev
			if ev == nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			in := keys.Translate(ev)
			if in.Type == input.IntentResize {
				screen.Sync()
				continue
			}
			if !session.Apply(in) {
				return
			}
		case <-ticker.C:
			render.Frame(canvas, session.Grid(), session.Player(), session.Path())
		}
	}
}
