package circuit

import (
	"sort"

	"github.com/vovakirdan/voltkid/internal/hex"
)

// Board holds the state of one level attempt: the placed components, which
// of them are activated, where the player stands and the path walked so far.
//
// Invariants:
//   - every activated coordinate holds a component
//   - after a move the player stands on the last hex of Path, or on Start
//     when Path is empty; Engine.Undo rebuilds Path lossily and only
//     guarantees the first invariant
type Board struct {
	radius     int
	start      hex.Coord
	player     hex.Coord
	components map[hex.Coord]Component
	activated  map[hex.Coord]bool
	path       []hex.Coord
}

// NewBoard creates a board with the player standing on start.
// When two components share a coordinate the later one wins.
func NewBoard(radius int, start hex.Coord, components []Component) *Board {
	b := &Board{
		radius:     radius,
		start:      start,
		player:     start,
		components: make(map[hex.Coord]Component, len(components)),
		activated:  make(map[hex.Coord]bool),
	}
	for _, c := range components {
		b.components[c.At] = c
	}
	return b
}

// Radius returns the grid radius.
func (b *Board) Radius() int {
	return b.radius
}

// Start returns the starting hex.
func (b *Board) Start() hex.Coord {
	return b.start
}

// Player returns the player's current hex.
func (b *Board) Player() hex.Coord {
	return b.player
}

// Contains reports whether c lies on the grid.
func (b *Board) Contains(c hex.Coord) bool {
	return hex.InRange(c, hex.C(0, 0), b.radius)
}

// Cells returns every grid coordinate in deterministic order.
func (b *Board) Cells() []hex.Coord {
	return hex.Range(hex.C(0, 0), b.radius)
}

// ComponentAt returns the component placed at c, if any.
func (b *Board) ComponentAt(c hex.Coord) (Component, bool) {
	comp, ok := b.components[c]
	return comp, ok
}

// Components returns all components sorted by coordinate.
func (b *Board) Components() []Component {
	out := make([]Component, 0, len(b.components))
	for _, c := range b.components {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].At.Less(out[j].At)
	})
	return out
}

// ComponentCount returns the number of placed components.
func (b *Board) ComponentCount() int {
	return len(b.components)
}

// IsActivated reports whether the component at c has been visited.
func (b *Board) IsActivated(c hex.Coord) bool {
	return b.activated[c]
}

// Activated returns the activated coordinates sorted.
func (b *Board) Activated() []hex.Coord {
	return sortedKeys(b.activated)
}

// ActivatedCount returns how many components are activated.
func (b *Board) ActivatedCount() int {
	return len(b.activated)
}

// Path returns a copy of the traversed path.
func (b *Board) Path() []hex.Coord {
	out := make([]hex.Coord, len(b.path))
	copy(out, b.path)
	return out
}

// Steps returns the length of the traversed path.
func (b *Board) Steps() int {
	return len(b.path)
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{
		radius:     b.radius,
		start:      b.start,
		player:     b.player,
		components: make(map[hex.Coord]Component, len(b.components)),
		activated:  copySet(b.activated),
		path:       b.Path(),
	}
	for k, v := range b.components {
		clone.components[k] = v
	}
	return clone
}

// activate marks every component on path as visited.
func (b *Board) activate(path []hex.Coord) {
	for _, c := range path {
		if _, ok := b.components[c]; ok {
			b.activated[c] = true
		}
	}
}

func copySet(s map[hex.Coord]bool) map[hex.Coord]bool {
	out := make(map[hex.Coord]bool, len(s))
	for k, v := range s {
		if v {
			out[k] = true
		}
	}
	return out
}

func sortedKeys(s map[hex.Coord]bool) []hex.Coord {
	out := make([]hex.Coord, 0, len(s))
	for k, v := range s {
		if v {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}
