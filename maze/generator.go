package maze

// Rand supplies uniform integers in [0, n).
// *math/rand.Rand satisfies it; tests inject fixed streams.
type Rand interface {
	Intn(n int) int
}

// Generate carves a perfect maze into a Reset-state grid using the
// iterative recursive backtracker: walk to a random unvisited neighbor,
// knocking the shared wall, and pop back when stuck. The passage graph is
// a spanning tree of the grid, so exactly one path exists between any two
// cells. Visited flags are cleared before returning.
func Generate(g *Grid, sx, sy int, rng Rand) {
	// Stack depth is bounded by the cell count.
	stack := make([]Point, 0, g.width*g.height)

	g.cells[g.idx(sx, sy)].visited = true
	stack = append(stack, Point{sx, sy})

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var neigh [4]Point
		n := 0
		for _, d := range deltas {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if g.InBounds(nx, ny) && !g.cells[g.idx(nx, ny)].visited {
				neigh[n] = Point{nx, ny}
				n++
			}
		}

		if n == 0 {
			// Dead end, backtrack
			stack = stack[:len(stack)-1]
			continue
		}

		next := neigh[rng.Intn(n)]
		g.Knock(cur.X, cur.Y, next.X, next.Y)
		g.cells[g.idx(next.X, next.Y)].visited = true
		stack = append(stack, next)
	}

	for i := range g.cells {
		g.cells[i].visited = false
	}
}
