package world

import "github.com/zyedidia/generic/mapset"

// Reachable returns every floor position connected to from by 4-directional
// steps over non-blocked tiles. The set is empty when from is blocked.
func Reachable(g *Grid, from Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if g.IsBlocked(from.X, from.Y) {
		return visited
	}

	queue := []Point{from}
	visited.Put(from)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		neighbors := [4]Point{
			{X: current.X, Y: current.Y - 1},
			{X: current.X + 1, Y: current.Y},
			{X: current.X, Y: current.Y + 1},
			{X: current.X - 1, Y: current.Y},
		}
		for _, n := range neighbors {
			if g.IsBlocked(n.X, n.Y) || visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}

	return visited
}
