package circuit

import (
	"sort"

	"github.com/vovakirdan/voltkid/internal/hex"
)

// Puzzle is the static description a session is built from.
type Puzzle struct {
	ID         int
	Title      string
	Radius     int
	Start      hex.Coord
	Components []Component
}

// NewBoard builds a fresh board for the puzzle.
func (p Puzzle) NewBoard() *Board {
	return NewBoard(p.Radius, p.Start, p.Components)
}

// EventKind classifies session events.
type EventKind uint8

const (
	EventArmed EventKind = iota
	EventDisarmed
	EventMoved
	EventUndone
	EventRestarted
	EventVictory
	EventRejected
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventArmed:
		return "armed"
	case EventDisarmed:
		return "disarmed"
	case EventMoved:
		return "moved"
	case EventUndone:
		return "undone"
	case EventRestarted:
		return "restarted"
	case EventVictory:
		return "victory"
	case EventRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Reason explains a rejected request.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonNotArmed
	ReasonNoOp
	ReasonOutOfBounds
	ReasonNothingToUndo
	ReasonFinished
)

// String returns the reason text.
func (r Reason) String() string {
	switch r {
	case ReasonNotArmed:
		return "not armed"
	case ReasonNoOp:
		return "already there"
	case ReasonOutOfBounds:
		return "off the grid"
	case ReasonNothingToUndo:
		return "nothing to undo"
	case ReasonFinished:
		return "level finished"
	default:
		return ""
	}
}

// Event is what the presentation layer reacts to after each request.
type Event struct {
	Kind   EventKind
	Reason Reason      // EventRejected
	Path   []hex.Coord // EventMoved
	At     hex.Coord   // player position after the event
	Stars  int         // EventVictory
}

// Session drives one attempt at a puzzle.
// It is not safe for concurrent use.
type Session struct {
	puzzle     Puzzle
	board      *Board
	engine     *Engine
	rule       Rule
	thresholds StarThresholds
	moves      int
	won        bool
	stars      int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRule selects the victory rule.
func WithRule(r Rule) SessionOption {
	return func(s *Session) { s.rule = r }
}

// WithThresholds overrides the star bands.
func WithThresholds(th StarThresholds) SessionOption {
	return func(s *Session) { s.thresholds = th }
}

// NewSession starts an attempt at p.
func NewSession(p Puzzle, opts ...SessionOption) *Session {
	s := &Session{
		puzzle:     p,
		board:      p.NewBoard(),
		engine:     NewEngine(),
		thresholds: DefaultThresholds,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Puzzle returns the puzzle being played.
func (s *Session) Puzzle() Puzzle { return s.puzzle }

// Board returns the live board. Callers must not mutate it.
func (s *Session) Board() *Board { return s.board }

// Rule returns the active victory rule.
func (s *Session) Rule() Rule { return s.rule }

// Armed reports whether the next move will be accepted.
func (s *Session) Armed() bool { return s.engine.Armed() }

// Moves returns the number of applied moves, undone ones excluded.
func (s *Session) Moves() int { return s.moves }

// CanUndo reports whether there is history to undo.
func (s *Session) CanUndo() bool { return s.engine.HistoryLen() > 0 }

// Won reports whether the puzzle has been solved.
func (s *Session) Won() bool { return s.won }

// Stars returns the rating earned on victory, or 0.
func (s *Session) Stars() int { return s.stars }

// Verdict evaluates the current board.
func (s *Session) Verdict() Verdict {
	return EvaluateWith(s.board, s.rule)
}

// Toggle flips move mode.
func (s *Session) Toggle() Event {
	if s.engine.Toggle() {
		return s.event(EventArmed)
	}
	return s.event(EventDisarmed)
}

// Arm enables move mode.
func (s *Session) Arm() Event {
	s.engine.Arm()
	return s.event(EventArmed)
}

// Disarm leaves move mode.
func (s *Session) Disarm() Event {
	s.engine.Disarm()
	return s.event(EventDisarmed)
}

// MoveTo requests a move. An applied move yields EventMoved, followed by
// EventVictory when it solves the puzzle.
func (s *Session) MoveTo(dest hex.Coord) []Event {
	if s.won {
		return []Event{s.reject(ReasonFinished)}
	}

	res := s.engine.Move(s.board, dest)
	switch res.Status {
	case MoveNotArmed:
		return []Event{s.reject(ReasonNotArmed)}
	case MoveNoOp:
		return []Event{s.reject(ReasonNoOp)}
	case MoveOutOfBounds:
		return []Event{s.reject(ReasonOutOfBounds)}
	}

	s.moves++
	moved := s.event(EventMoved)
	moved.Path = res.Path
	events := []Event{moved}

	if s.Verdict() == VerdictVictory {
		s.won = true
		s.stars = StarsWith(s.board, s.board.ComponentCount(), s.thresholds)
		victory := s.event(EventVictory)
		victory.Stars = s.stars
		events = append(events, victory)
	}
	return events
}

// Undo reverts the last move.
func (s *Session) Undo() Event {
	if s.won {
		return s.reject(ReasonFinished)
	}
	if s.engine.Undo(s.board).Status == UndoNothing {
		return s.reject(ReasonNothingToUndo)
	}
	s.moves--
	return s.event(EventUndone)
}

// Restart discards the board and history and starts over.
func (s *Session) Restart() Event {
	s.board = s.puzzle.NewBoard()
	s.engine.Reset()
	s.moves = 0
	s.won = false
	s.stars = 0
	return s.event(EventRestarted)
}

// Hint suggests where to go next: the closest component not yet activated,
// or the start hex once all are lit but the player is away from it.
// When the loop is closed but current cannot flow, it returns the nearest
// hex whose move wins. ok is false when the puzzle is already solved or
// no single move can win.
func (s *Session) Hint() (target hex.Coord, ok bool) {
	if s.won {
		return hex.Coord{}, false
	}

	best := -1
	for _, c := range s.board.Components() {
		if s.board.IsActivated(c.At) {
			continue
		}
		d := hex.Distance(s.board.player, c.At)
		if best < 0 || d < best {
			best = d
			target = c.At
		}
	}
	if best >= 0 {
		return target, true
	}

	switch EvaluateWith(s.board, s.rule) {
	case VerdictNotClosed:
		if s.board.player != s.board.start {
			return s.board.start, true
		}
	case VerdictOpenCircuit:
		return s.winningMove()
	}
	return hex.Coord{}, false
}

// winningMove tries every hex on a copy of the board, nearest first.
func (s *Session) winningMove() (hex.Coord, bool) {
	cells := s.board.Cells()
	player := s.board.player
	sort.SliceStable(cells, func(i, j int) bool {
		return hex.Distance(player, cells[i]) < hex.Distance(player, cells[j])
	})

	for _, c := range cells {
		if c == player {
			continue
		}
		trial := s.board.Clone()
		e := NewEngine()
		e.Arm()
		if !e.Move(trial, c).Applied() {
			continue
		}
		if EvaluateWith(trial, s.rule) == VerdictVictory {
			return c, true
		}
	}
	return hex.Coord{}, false
}

func (s *Session) event(kind EventKind) Event {
	return Event{Kind: kind, At: s.board.player}
}

func (s *Session) reject(reason Reason) Event {
	e := s.event(EventRejected)
	e.Reason = reason
	return e
}

// Replay plays a move list on a fresh session, arming before each move.
// It stops early once the puzzle is solved.
func Replay(p Puzzle, moves []hex.Coord, opts ...SessionOption) (*Session, []Event) {
	s := NewSession(p, opts...)
	var events []Event
	for _, dest := range moves {
		if s.Won() {
			break
		}
		s.Arm()
		events = append(events, s.MoveTo(dest)...)
	}
	return s, events
}
