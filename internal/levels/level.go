// Package levels loads and validates puzzle level definitions.
// This package depends on circuit but circuit does not depend on levels.
package levels

import (
	"github.com/vovakirdan/voltkid/internal/circuit"
	"github.com/vovakirdan/voltkid/internal/hex"
	"github.com/vovakirdan/voltkid/internal/levels/formats"
)

// Level represents a complete level definition.
type Level struct {
	ID         int
	Title      string
	Star       int
	Radius     int
	Start      hex.Coord
	Components []circuit.Component
	Metadata   map[string]string
	FilePath   string
}

// fromParsed converts a format-level record into a Level.
func fromParsed(p formats.Level, path string) Level {
	comps := make([]circuit.Component, 0, len(p.Components))
	for _, c := range p.Components {
		comps = append(comps, circuit.Component{
			Type: circuit.ParseComponentType(c.Type),
			At:   hex.C(c.Q, c.R),
		})
	}
	return Level{
		ID:         p.ID,
		Title:      p.Title,
		Star:       p.Star,
		Radius:     p.Radius,
		Start:      hex.C(p.Start.Q, p.Start.R),
		Components: comps,
		Metadata:   p.Metadata,
		FilePath:   path,
	}
}

// Puzzle converts the level into the engine's puzzle description.
func (l *Level) Puzzle() circuit.Puzzle {
	comps := make([]circuit.Component, len(l.Components))
	copy(comps, l.Components)
	return circuit.Puzzle{
		ID:         l.ID,
		Title:      l.Title,
		Radius:     l.Radius,
		Start:      l.Start,
		Components: comps,
	}
}

// NewSession starts a play session for this level.
func (l *Level) NewSession(opts ...circuit.SessionOption) *circuit.Session {
	return circuit.NewSession(l.Puzzle(), opts...)
}

// OptimalSteps is the step count that earns three stars.
func (l *Level) OptimalSteps() int {
	return len(l.Components) + 1
}

// NextID returns the id that follows id in lvls, which must be sorted by id.
// The last level returns id+1.
func NextID(lvls []Level, id int) int {
	for _, l := range lvls {
		if l.ID > id {
			return l.ID
		}
	}
	return id + 1
}
