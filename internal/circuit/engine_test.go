package circuit

import (
	"testing"

	"github.com/vovakirdan/voltkid/internal/hex"
)

// twoPiece is the smallest solvable board: battery on the start hex and a
// bulb next to it.
func twoPiece() *Board {
	return NewBoard(1, hex.C(0, 0), []Component{
		{Type: Battery, At: hex.C(0, 0)},
		{Type: Bulb, At: hex.C(1, -1)},
	})
}

// play arms the engine and moves through each destination in turn,
// failing the test if any move is not applied.
func play(t *testing.T, e *Engine, b *Board, dests ...hex.Coord) {
	t.Helper()
	for _, d := range dests {
		e.Arm()
		if res := e.Move(b, d); !res.Applied() {
			t.Fatalf("move to %v: %v", d, res.Status)
		}
	}
}

func TestMoveRequiresArm(t *testing.T) {
	b := twoPiece()
	e := NewEngine()

	res := e.Move(b, hex.C(1, -1))
	if res.Status != MoveNotArmed {
		t.Fatalf("expected MoveNotArmed, got %v", res.Status)
	}
	if b.Player() != hex.C(0, 0) || b.ActivatedCount() != 0 || b.Steps() != 0 {
		t.Error("board changed on a rejected move")
	}
	if e.HistoryLen() != 0 {
		t.Error("history recorded on a rejected move")
	}
}

func TestMoveNoOp(t *testing.T) {
	b := twoPiece()
	e := NewEngine()
	e.Arm()

	res := e.Move(b, hex.C(0, 0))
	if res.Status != MoveNoOp {
		t.Fatalf("expected MoveNoOp, got %v", res.Status)
	}
	if !e.Armed() {
		t.Error("no-op should keep the engine armed")
	}
	if e.HistoryLen() != 0 || b.ActivatedCount() != 0 {
		t.Error("no-op changed state")
	}
}

func TestMoveOutOfBounds(t *testing.T) {
	b := twoPiece()
	e := NewEngine()
	e.Arm()

	res := e.Move(b, hex.C(2, 0))
	if res.Status != MoveOutOfBounds {
		t.Fatalf("expected MoveOutOfBounds, got %v", res.Status)
	}
	if b.Player() != hex.C(0, 0) || e.HistoryLen() != 0 {
		t.Error("out-of-bounds move changed state")
	}
}

func TestMoveActivatesPath(t *testing.T) {
	b := NewBoard(3, hex.C(0, 0), []Component{
		{Type: Battery, At: hex.C(0, 0)},
		{Type: Switch, At: hex.C(1, 0)},
		{Type: Bulb, At: hex.C(3, 0)},
		{Type: Connector, At: hex.C(0, 2)},
	})
	e := NewEngine()
	e.Arm()

	res := e.Move(b, hex.C(3, 0))
	if !res.Applied() {
		t.Fatalf("expected applied, got %v", res.Status)
	}
	if len(res.Path) != 4 || res.Path[0] != hex.C(0, 0) || res.Path[3] != hex.C(3, 0) {
		t.Fatalf("unexpected path %v", res.Path)
	}
	if e.Armed() {
		t.Error("engine should disarm after an applied move")
	}

	for _, c := range []hex.Coord{hex.C(0, 0), hex.C(1, 0), hex.C(3, 0)} {
		if !b.IsActivated(c) {
			t.Errorf("%v should be activated", c)
		}
	}
	if b.IsActivated(hex.C(0, 2)) {
		t.Error("connector off the path should stay inactive")
	}
	if b.Player() != hex.C(3, 0) {
		t.Errorf("player at %v, want (3,0)", b.Player())
	}
	if got := b.Path(); len(got) != 3 || got[0] != hex.C(1, 0) || got[2] != hex.C(3, 0) {
		t.Errorf("path = %v, want the line minus its first hex", got)
	}
}

func TestMoveMonotonic(t *testing.T) {
	b := NewBoard(2, hex.C(0, 0), []Component{
		{Type: Battery, At: hex.C(1, 0)},
		{Type: Bulb, At: hex.C(-1, 0)},
		{Type: Connector, At: hex.C(0, 2)},
	})
	e := NewEngine()

	prev := map[hex.Coord]bool{}
	for _, d := range []hex.Coord{hex.C(1, 0), hex.C(-1, 0), hex.C(0, 2), hex.C(0, 0)} {
		e.Arm()
		res := e.Move(b, d)
		if !res.Applied() {
			t.Fatalf("move to %v: %v", d, res.Status)
		}
		for c := range prev {
			if !b.IsActivated(c) {
				t.Errorf("%v deactivated by a move", c)
			}
		}
		for _, c := range res.Path {
			if _, ok := b.ComponentAt(c); ok && !b.IsActivated(c) {
				t.Errorf("component %v on path not activated", c)
			}
		}
		prev = make(map[hex.Coord]bool)
		for _, c := range b.Activated() {
			prev[c] = true
		}
	}
}

func TestUndoEmpty(t *testing.T) {
	b := twoPiece()
	e := NewEngine()

	res := e.Undo(b)
	if res.Status != UndoNothing {
		t.Fatalf("expected UndoNothing, got %v", res.Status)
	}
	if b.Player() != hex.C(0, 0) || b.ActivatedCount() != 0 || b.Steps() != 0 {
		t.Error("empty undo mutated the board")
	}
}

func TestUndoRestoresSnapshot(t *testing.T) {
	b := NewBoard(2, hex.C(0, 0), []Component{
		{Type: Battery, At: hex.C(1, 0)},
		{Type: Bulb, At: hex.C(2, 0)},
		{Type: Connector, At: hex.C(-1, 1)},
	})
	e := NewEngine()
	play(t, e, b, hex.C(1, 0))

	beforePos := b.Player()
	beforeActive := b.Activated()

	play(t, e, b, hex.C(-1, 1))

	res := e.Undo(b)
	if res.Status != UndoApplied {
		t.Fatalf("expected UndoApplied, got %v", res.Status)
	}
	if b.Player() != beforePos || res.Position != beforePos {
		t.Errorf("player at %v, want %v", b.Player(), beforePos)
	}
	after := b.Activated()
	if len(after) != len(beforeActive) {
		t.Fatalf("activated = %v, want %v", after, beforeActive)
	}
	for i := range after {
		if after[i] != beforeActive[i] {
			t.Errorf("activated = %v, want %v", after, beforeActive)
		}
	}
}

func TestUndoRebuildsPathFromActivated(t *testing.T) {
	b := NewBoard(2, hex.C(0, 0), []Component{
		{Type: Battery, At: hex.C(2, 0)},
		{Type: Bulb, At: hex.C(-2, 0)},
	})
	e := NewEngine()
	play(t, e, b, hex.C(2, 0), hex.C(-2, 0))

	e.Undo(b)

	path := b.Path()
	if len(path) != 1 || path[0] != hex.C(2, 0) {
		t.Errorf("path after undo = %v, want the activated set [(2,0)]", path)
	}
}

func TestUndoUntilExhausted(t *testing.T) {
	b := twoPiece()
	e := NewEngine()
	play(t, e, b, hex.C(1, -1), hex.C(0, 1), hex.C(-1, 0))

	for i := 0; i < 3; i++ {
		if res := e.Undo(b); res.Status != UndoApplied {
			t.Fatalf("undo %d: %v", i, res.Status)
		}
		for _, c := range b.Activated() {
			if _, ok := b.ComponentAt(c); !ok {
				t.Errorf("activated %v holds no component", c)
			}
		}
	}
	if res := e.Undo(b); res.Status != UndoNothing {
		t.Errorf("expected history exhausted, got %v", res.Status)
	}
	if b.Player() != hex.C(0, 0) || b.ActivatedCount() != 0 || b.Steps() != 0 {
		t.Errorf("board not back at start: player %v, active %d, steps %d",
			b.Player(), b.ActivatedCount(), b.Steps())
	}
}

func TestToggle(t *testing.T) {
	e := NewEngine()
	if !e.Toggle() || !e.Armed() {
		t.Error("first toggle should arm")
	}
	if e.Toggle() || e.Armed() {
		t.Error("second toggle should disarm")
	}
	e.Arm()
	e.Reset()
	if e.Armed() {
		t.Error("Reset should disarm")
	}
}

func TestBoardDuplicateComponentLastWins(t *testing.T) {
	b := NewBoard(1, hex.C(0, 0), []Component{
		{Type: Switch, At: hex.C(1, 0)},
		{Type: Bulb, At: hex.C(1, 0)},
	})
	if b.ComponentCount() != 1 {
		t.Fatalf("expected 1 component, got %d", b.ComponentCount())
	}
	if c, _ := b.ComponentAt(hex.C(1, 0)); c.Type != Bulb {
		t.Errorf("expected bulb to win, got %v", c.Type)
	}
}

func TestBoardClone(t *testing.T) {
	b := twoPiece()
	e := NewEngine()
	play(t, e, b, hex.C(1, -1))

	clone := b.Clone()
	play(t, e, b, hex.C(0, 1))

	if clone.Player() != hex.C(1, -1) || clone.Steps() != 1 {
		t.Errorf("clone changed with the original: player %v steps %d", clone.Player(), clone.Steps())
	}
}
