package game

import (
	"github.com/lixenwraith/tcell-maze/input"
	"github.com/lixenwraith/tcell-maze/maze"
)

// Reference grid configuration
const (
	DefaultWidth  = 21
	DefaultHeight = 15
)

// Window titles for the two session states
const (
	TitlePlaying = "Maze - Reach the green goal (R to regenerate)"
	TitleWon     = "You win! Press R to regenerate, Esc to quit"
)

// Notifier receives window-title updates for the playing/won states.
type Notifier interface {
	SetTitle(title string)
}

// Cues receives audio triggers. All methods must be safe to call from the
// game loop and must not block.
type Cues interface {
	Win()
	Regen()
	Toggle()
}

// Session owns the grid, the player cell and the won latch, and drives
// regeneration, move attempts and win detection. The grid is allocated
// once and reused across regenerations.
type Session struct {
	grid   *maze.Grid
	rng    maze.Rand
	player maze.Point
	won    bool

	// Solution overlay, recomputed on demand
	showPath bool
	path     []maze.Point

	titles Notifier
	cues   Cues
}

// NewSession allocates the grid and performs the first regeneration.
// titles and cues may be nil.
func NewSession(width, height int, rng maze.Rand, titles Notifier, cues Cues) *Session {
	s := &Session{
		grid:   maze.New(width, height),
		rng:    rng,
		titles: titles,
		cues:   cues,
	}
	s.Regenerate()
	return s
}

func (s *Session) Grid() *maze.Grid   { return s.grid }
func (s *Session) Player() maze.Point { return s.player }
func (s *Session) Won() bool          { return s.won }
func (s *Session) Path() []maze.Point { return s.path }

func (s *Session) goal() maze.Point {
	return maze.Point{X: s.grid.Width() - 1, Y: s.grid.Height() - 1}
}

// Regenerate rebuilds a fresh maze in place: player back to the origin,
// won latch cleared, playing title pushed. Consecutive regenerations
// advance the same random stream; seeding is the caller's concern.
func (s *Session) Regenerate() {
	s.grid.Reset()
	maze.Generate(s.grid, 0, 0, s.rng)
	s.player = maze.Point{}
	s.won = false
	s.refreshPath()
	if s.titles != nil {
		s.titles.SetTitle(TitlePlaying)
	}
	if s.cues != nil {
		s.cues.Regen()
	}
}

// Apply dispatches one input intent. Returns false when the session
// should end. Movement is ignored while the won latch is set; regenerate
// and quit are always honored.
func (s *Session) Apply(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentRegenerate:
		s.Regenerate()
	case input.IntentMove:
		if !s.won {
			s.TryMove(in.DX, in.DY)
		}
	case input.IntentToggleSound:
		if s.cues != nil {
			s.cues.Toggle()
		}
	case input.IntentToggleSolution:
		s.showPath = !s.showPath
		s.refreshPath()
	}
	return true
}

// TryMove attempts a unit step. Walking into a wall or off the grid is
// not an error: the player stays put and false is returned. A successful
// move onto the goal cell sets the won latch.
func (s *Session) TryMove(dx, dy int) bool {
	if !s.grid.CanMove(s.player.X, s.player.Y, dx, dy) {
		return false
	}
	s.player.X += dx
	s.player.Y += dy
	s.refreshPath()
	if s.player == s.goal() {
		s.won = true
		if s.titles != nil {
			s.titles.SetTitle(TitleWon)
		}
		if s.cues != nil {
			s.cues.Win()
		}
	}
	return true
}

func (s *Session) refreshPath() {
	if !s.showPath {
		s.path = nil
		return
	}
	s.path = maze.Solve(s.grid, s.player, s.goal())
}
