package maze

// Solve returns the shortest passage path from one cell to another via
// BFS, endpoints included, or nil when no path exists. On a generated
// grid the path is unique since the passage graph is a tree.
func Solve(g *Grid, from, to Point) []Point {
	if !g.InBounds(from.X, from.Y) || !g.InBounds(to.X, to.Y) {
		return nil
	}

	queue := []Point{from}
	cameFrom := make(map[Point]Point)
	seen := make([]bool, len(g.cells))
	seen[g.idx(from.X, from.Y)] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == to {
			path := []Point{cur}
			for cur != from {
				cur = cameFrom[cur]
				path = append(path, cur)
			}
			// Reverse into from→to order
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range deltas {
			if !g.CanMove(cur.X, cur.Y, d.X, d.Y) {
				continue
			}
			next := Point{cur.X + d.X, cur.Y + d.Y}
			if seen[g.idx(next.X, next.Y)] {
				continue
			}
			seen[g.idx(next.X, next.Y)] = true
			cameFrom[next] = cur
			queue = append(queue, next)
		}
	}
	return nil
}
