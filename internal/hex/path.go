package hex

// Line returns the straight run of hexes from `from` to `to`, inclusive.
// It has Distance(from, to)+1 elements; equal endpoints give one element.
func Line(from, to Coord) []Coord {
	n := Distance(from, to)
	path := make([]Coord, 0, n+1)
	for i := 0; i <= n; i++ {
		t := 0.0
		if n > 0 {
			t = float64(i) / float64(n)
		}
		q := float64(from.Q) + t*float64(to.Q-from.Q)
		r := float64(from.R) + t*float64(to.R-from.R)
		path = append(path, Round(q, r))
	}
	return path
}

// PathOptions tunes FindPath.
type PathOptions struct {
	// Blocked cells cannot be entered. The destination may not be blocked.
	Blocked map[Coord]bool
	// Bounded limits the search to cells within Radius of Center.
	Bounded bool
	Center  Coord
	Radius  int
}

// FindPath returns a walkable path from `from` to `to`.
//
// Without blocked cells the result is Line(from, to). Otherwise a
// breadth-first search over Neighbors order yields a shortest path that
// avoids blocked cells, or nil when the destination cannot be reached.
func FindPath(from, to Coord, opts PathOptions) []Coord {
	if len(opts.Blocked) == 0 {
		return Line(from, to)
	}
	if from == to {
		return []Coord{from}
	}
	if opts.Blocked[to] || !opts.allows(to) {
		return nil
	}

	cameFrom := map[Coord]Coord{from: from}
	queue := []Coord{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range Neighbors(current) {
			if _, seen := cameFrom[next]; seen {
				continue
			}
			if opts.Blocked[next] || !opts.allows(next) {
				continue
			}
			cameFrom[next] = current
			if next == to {
				return reconstruct(cameFrom, from, to)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

func (o PathOptions) allows(c Coord) bool {
	return !o.Bounded || InRange(c, o.Center, o.Radius)
}

func reconstruct(cameFrom map[Coord]Coord, from, to Coord) []Coord {
	var rev []Coord
	for c := to; c != from; c = cameFrom[c] {
		rev = append(rev, c)
	}
	rev = append(rev, from)

	path := make([]Coord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}
