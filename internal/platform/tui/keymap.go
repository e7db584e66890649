package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/voltkid/internal/hex"
)

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionCursor         // move the cursor one hex
	ActionArm            // Space - toggle the armed state
	ActionConfirm        // Enter - move to the cursor
	ActionUndo           // U - undo the last move
	ActionRestart        // R - restart the level
	ActionHint           // H - show where to go next
	ActionHelp           // ? - toggle full help
	ActionBack           // Esc/B - back to the level map
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCursor:
		return "Cursor"
	case ActionArm:
		return "Arm"
	case ActionConfirm:
		return "Confirm"
	case ActionUndo:
		return "Undo"
	case ActionRestart:
		return "Restart"
	case ActionHint:
		return "Hint"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// GameKeyMap defines the key bindings while playing a level.
// The six cursor keys follow the flat-top neighbor directions.
type GameKeyMap struct {
	North     key.Binding
	NorthEast key.Binding
	SouthEast key.Binding
	South     key.Binding
	SouthWest key.Binding
	NorthWest key.Binding
	Arm       key.Binding
	Confirm   key.Binding
	Undo      key.Binding
	Restart   key.Binding
	Hint      key.Binding
	Help      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Arm, k.Confirm, k.Undo, k.Hint, k.Help, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.NorthEast, k.SouthEast},
		{k.South, k.SouthWest, k.NorthWest},
		{k.Arm, k.Confirm, k.Undo},
		{k.Restart, k.Hint, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		North: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/w", "north"),
		),
		NorthEast: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "north-east"),
		),
		SouthEast: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "south-east"),
		),
		South: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/s", "south"),
		),
		SouthWest: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "south-west"),
		),
		NorthWest: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "north-west"),
		),
		Arm: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "arm"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "move"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "backspace"),
			key.WithHelp("u", "undo"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Hint: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hint"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "levels"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Map translates a key message to an action.
// For ActionCursor the returned direction is the axial step to apply.
func (k GameKeyMap) Map(msg tea.KeyMsg) (Action, hex.Coord) {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit, hex.Coord{}
	case key.Matches(msg, k.Back):
		return ActionBack, hex.Coord{}
	case key.Matches(msg, k.SouthEast):
		return ActionCursor, hex.Directions[0]
	case key.Matches(msg, k.NorthEast):
		return ActionCursor, hex.Directions[1]
	case key.Matches(msg, k.North):
		return ActionCursor, hex.Directions[2]
	case key.Matches(msg, k.NorthWest):
		return ActionCursor, hex.Directions[3]
	case key.Matches(msg, k.SouthWest):
		return ActionCursor, hex.Directions[4]
	case key.Matches(msg, k.South):
		return ActionCursor, hex.Directions[5]
	case key.Matches(msg, k.Arm):
		return ActionArm, hex.Coord{}
	case key.Matches(msg, k.Confirm):
		return ActionConfirm, hex.Coord{}
	case key.Matches(msg, k.Undo):
		return ActionUndo, hex.Coord{}
	case key.Matches(msg, k.Restart):
		return ActionRestart, hex.Coord{}
	case key.Matches(msg, k.Hint):
		return ActionHint, hex.Coord{}
	case key.Matches(msg, k.Help):
		return ActionHelp, hex.Coord{}
	}
	return ActionNone, hex.Coord{}
}

// MenuKeyMap defines the key bindings for the level map and progress screens.
type MenuKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Progress key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Progress, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Progress, k.Back, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Progress: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "progress"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
