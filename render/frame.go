package render

import "github.com/lixenwraith/tcell-maze/maze"

// Cell pitch and border padding, in pixel units
const (
	CellPx = 32
	PadPx  = 16

	goalInset   = 6
	playerInset = 8
	pathDot     = 4
)

// WindowSize returns the pixel dimensions required for a w×h grid.
func WindowSize(w, h int) (int, int) {
	return 2*PadPx + w*CellPx, 2*PadPx + h*CellPx
}

// Frame draws one complete frame: background, wall lines, optional
// solution path, goal, player, then presents. The goal is painted
// beneath the player so a player standing on the goal stays visible.
func Frame(s Surface, g *maze.Grid, player maze.Point, path []maze.Point) {
	s.Clear(ColorBackground)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			x0 := PadPx + x*CellPx
			y0 := PadPx + y*CellPx
			x1 := x0 + CellPx
			y1 := y0 + CellPx

			w := g.Walls(x, y)
			if w&maze.WallN != 0 {
				s.DrawLine(x0, y0, x1, y0, ColorWall)
			}
			if w&maze.WallE != 0 {
				s.DrawLine(x1, y0, x1, y1, ColorWall)
			}
			if w&maze.WallS != 0 {
				s.DrawLine(x0, y1, x1, y1, ColorWall)
			}
			if w&maze.WallW != 0 {
				s.DrawLine(x0, y0, x0, y1, ColorWall)
			}
		}
	}

	for _, p := range path {
		cx := PadPx + p.X*CellPx + CellPx/2
		cy := PadPx + p.Y*CellPx + CellPx/2
		s.FillRect(cx-pathDot/2, cy-pathDot/2, pathDot, pathDot, ColorPath)
	}

	gx, gy := g.Width()-1, g.Height()-1
	s.FillRect(
		PadPx+gx*CellPx+goalInset,
		PadPx+gy*CellPx+goalInset,
		CellPx-2*goalInset,
		CellPx-2*goalInset,
		ColorGoal,
	)
	s.FillRect(
		PadPx+player.X*CellPx+playerInset,
		PadPx+player.Y*CellPx+playerInset,
		CellPx-2*playerInset,
		CellPx-2*playerInset,
		ColorPlayer,
	)

	s.Present()
}
