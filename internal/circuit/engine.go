package circuit

import "github.com/vovakirdan/voltkid/internal/hex"

// MoveStatus is the outcome of a move request.
type MoveStatus uint8

const (
	// MoveApplied means the board changed and Path holds the walked hexes.
	MoveApplied MoveStatus = iota
	// MoveNotArmed means the engine was idle; nothing changed.
	MoveNotArmed
	// MoveNoOp means the destination is the current position.
	MoveNoOp
	// MoveOutOfBounds means the destination lies off the grid.
	MoveOutOfBounds
)

// String returns the status name.
func (s MoveStatus) String() string {
	switch s {
	case MoveApplied:
		return "applied"
	case MoveNotArmed:
		return "not armed"
	case MoveNoOp:
		return "no-op"
	case MoveOutOfBounds:
		return "out of bounds"
	default:
		return "unknown"
	}
}

// MoveResult is returned by Engine.Move.
type MoveResult struct {
	Status MoveStatus
	// Path runs from the previous position to the destination, inclusive.
	// Only set when Status is MoveApplied.
	Path []hex.Coord
}

// Applied reports whether the move changed the board.
func (r MoveResult) Applied() bool {
	return r.Status == MoveApplied
}

// UndoStatus is the outcome of an undo request.
type UndoStatus uint8

const (
	UndoApplied UndoStatus = iota
	UndoNothing
)

// String returns the status name.
func (s UndoStatus) String() string {
	if s == UndoApplied {
		return "applied"
	}
	return "nothing to undo"
}

// UndoResult is returned by Engine.Undo.
type UndoResult struct {
	Status UndoStatus
	// Position is the restored player position when Status is UndoApplied.
	Position hex.Coord
}

// HistoryEntry is the board state captured just before a move.
type HistoryEntry struct {
	Position  hex.Coord
	Activated map[hex.Coord]bool
}

// Engine applies player moves to a Board and keeps the undo stack.
// A move must be armed first; each applied move disarms the engine.
type Engine struct {
	armed   bool
	history []HistoryEntry
}

// NewEngine creates an idle engine with empty history.
func NewEngine() *Engine {
	return &Engine{}
}

// Arm allows the next move.
func (e *Engine) Arm() {
	e.armed = true
}

// Disarm cancels a pending arm.
func (e *Engine) Disarm() {
	e.armed = false
}

// Toggle flips the armed state and returns the new value.
func (e *Engine) Toggle() bool {
	e.armed = !e.armed
	return e.armed
}

// Armed reports whether the next move will be accepted.
func (e *Engine) Armed() bool {
	return e.armed
}

// HistoryLen returns the number of undoable moves.
func (e *Engine) HistoryLen() int {
	return len(e.history)
}

// Reset clears history and disarms.
func (e *Engine) Reset() {
	e.armed = false
	e.history = nil
}

// Move walks the player in a straight line to dest.
// Every component on the line, both endpoints included, is activated and the
// line minus its first hex is appended to the board path.
func (e *Engine) Move(b *Board, dest hex.Coord) MoveResult {
	if !e.armed {
		return MoveResult{Status: MoveNotArmed}
	}
	if !b.Contains(dest) {
		return MoveResult{Status: MoveOutOfBounds}
	}

	path := hex.Line(b.player, dest)
	if len(path) <= 1 {
		return MoveResult{Status: MoveNoOp}
	}

	e.history = append(e.history, HistoryEntry{
		Position:  b.player,
		Activated: copySet(b.activated),
	})

	b.player = dest
	b.activate(path)
	b.path = append(b.path, path[1:]...)

	e.armed = false
	return MoveResult{Status: MoveApplied, Path: path}
}

// Undo restores the state captured before the most recent move.
//
// The path is rebuilt from the restored activated set rather than truncated:
// order and repeated hexes are lost, and the player may not lie on it.
func (e *Engine) Undo(b *Board) UndoResult {
	if len(e.history) == 0 {
		return UndoResult{Status: UndoNothing}
	}

	last := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]

	b.player = last.Position
	b.activated = make(map[hex.Coord]bool, len(last.Activated))
	for c := range last.Activated {
		if _, ok := b.components[c]; ok {
			b.activated[c] = true
		}
	}
	b.path = sortedKeys(b.activated)

	return UndoResult{Status: UndoApplied, Position: b.player}
}
