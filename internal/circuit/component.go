// Package circuit implements the hex circuit puzzle rules: the board model,
// move/undo handling and victory evaluation.
// This package is UI-agnostic and deterministic.
package circuit

import (
	"strings"

	"github.com/vovakirdan/voltkid/internal/hex"
)

// ComponentType identifies what a placed component is.
type ComponentType uint8

const (
	// Generic components have no special role in evaluation.
	Generic ComponentType = iota
	Battery
	Bulb
	Switch
	Connector
)

// ParseComponentType maps a level-file name to a type.
// Unknown names decode to Generic.
func ParseComponentType(s string) ComponentType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "battery":
		return Battery
	case "bulb":
		return Bulb
	case "switch":
		return Switch
	case "connector":
		return Connector
	default:
		return Generic
	}
}

// String returns the level-file name of the type.
func (t ComponentType) String() string {
	switch t {
	case Battery:
		return "battery"
	case Bulb:
		return "bulb"
	case Switch:
		return "switch"
	case Connector:
		return "connector"
	default:
		return "generic"
	}
}

// Symbol returns a single-rune glyph for text renderers.
func (t ComponentType) Symbol() rune {
	switch t {
	case Battery:
		return 'B'
	case Bulb:
		return 'L'
	case Switch:
		return 'S'
	case Connector:
		return 'C'
	default:
		return '?'
	}
}

// Component is a circuit element placed on the grid.
type Component struct {
	Type ComponentType
	At   hex.Coord
}
