package maze

// Wall bits for a single cell side
const (
	WallN uint8 = 1
	WallE uint8 = 2
	WallS uint8 = 4
	WallW uint8 = 8

	WallAll = WallN | WallE | WallS | WallW
)

type Point struct {
	X, Y int
}

// Cell carries the wall mask plus the carve-time visited flag.
// visited is transient: Generate clears it before returning.
type Cell struct {
	walls   uint8
	visited bool
}

// deltas enumerates the 4-neighborhood in N, E, S, W order.
// sideBit/otherBit are the wall bits on the near and far side of each edge.
var (
	deltas   = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	sideBit  = [4]uint8{WallN, WallE, WallS, WallW}
	otherBit = [4]uint8{WallS, WallW, WallN, WallE}
)

// Grid is a fixed-size rectangular cell array, row-major.
// It is allocated once and reinitialized in place via Reset.
type Grid struct {
	width, height int
	cells         []Cell
}

func New(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	g.Reset()
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) idx(x, y int) int { return y*g.width + x }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Reset raises every wall and clears every visited flag.
// Postcondition: no passages exist.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].walls = WallAll
		g.cells[i].visited = false
	}
}

// Knock removes the wall between two 4-adjacent cells, clearing the bit on
// both sides so reciprocity holds. A non-adjacent pair is a programmer
// error and is silently ignored.
func (g *Grid) Knock(x, y, nx, ny int) {
	if !g.InBounds(x, y) || !g.InBounds(nx, ny) {
		return
	}
	for i, d := range deltas {
		if nx == x+d.X && ny == y+d.Y {
			g.cells[g.idx(x, y)].walls &^= sideBit[i]
			g.cells[g.idx(nx, ny)].walls &^= otherBit[i]
			return
		}
	}
}

// Wall reports whether the given wall bit is set on cell (x, y).
func (g *Grid) Wall(x, y int, bit uint8) bool {
	return g.cells[g.idx(x, y)].walls&bit != 0
}

// Walls returns the full wall mask of cell (x, y).
func (g *Grid) Walls(x, y int) uint8 {
	return g.cells[g.idx(x, y)].walls
}

// CanMove reports whether a unit step from (x, y) by (dx, dy) is legal:
// the target is in bounds and the source-side wall is down. Reciprocity
// makes checking the source side sufficient. Non-unit deltas are illegal.
func (g *Grid) CanMove(x, y, dx, dy int) bool {
	if !g.InBounds(x, y) || !g.InBounds(x+dx, y+dy) {
		return false
	}
	for i, d := range deltas {
		if dx == d.X && dy == d.Y {
			return !g.Wall(x, y, sideBit[i])
		}
	}
	return false
}
