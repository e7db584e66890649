package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/voltkid/internal/canvas"
	"github.com/vovakirdan/voltkid/internal/circuit"
	"github.com/vovakirdan/voltkid/internal/config"
	"github.com/vovakirdan/voltkid/internal/hex"
	"github.com/vovakirdan/voltkid/internal/levels"
	"github.com/vovakirdan/voltkid/internal/storage"
)

// Board placement inside the game view.
const (
	boardTop  = 2
	boardLeft = 2
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	armedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// GameModel is the Bubble Tea model for playing one level.
type GameModel struct {
	level    levels.Level
	session  *circuit.Session
	view     BoardView
	canvas   *canvas.Canvas
	cfg      config.Config
	store    *storage.Store
	player   string
	logger   *log.Logger
	keys     GameKeyMap
	help     help.Model
	cursor   hex.Coord
	hint     hex.Coord
	showHint bool
	status   string
	statusID int
	width    int
	height   int
	recorded bool // attempt for the current board already stored
	nextID   int  // level unlocked by solving this one
	newBest  bool

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model for a level.
// store may be nil, in which case progress is not saved.
func NewGameModel(lvl levels.Level, cfg config.Config, store *storage.Store, player string, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.Default()
	}
	view := NewBoardView(cfg.Board.HexSize, cfg.Board.CellWidth, lvl.Radius)
	w, h := view.Size()
	session := lvl.NewSession(cfg.SessionOptions()...)

	keys := DefaultGameKeyMap()
	hm := help.New()
	hm.ShowAll = false

	return GameModel{
		level:   lvl,
		session: session,
		view:    view,
		canvas:  canvas.New(w, h),
		cfg:     cfg,
		store:   store,
		player:  player,
		logger:  logger,
		keys:    keys,
		help:    hm,
		cursor:  session.Board().Player(),
		nextID:  lvl.ID + 1,
	}
}

// Init initializes the game model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case StatusExpiredMsg:
		if msg.ID == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, dir := m.keys.Map(msg)

	switch action {
	case ActionQuit:
		m.recordAbandoned()
		m.quitting = true
		return m, tea.Quit

	case ActionBack:
		m.recordAbandoned()
		m.backToMenu = true
		return m, nil

	case ActionCursor:
		if next := m.cursor.Add(dir); m.session.Board().Contains(next) {
			m.cursor = next
		}
		return m, nil

	case ActionArm:
		return m.apply(m.session.Toggle())

	case ActionConfirm:
		return m.moveTo(m.cursor)

	case ActionUndo:
		ev := m.session.Undo()
		if ev.Kind == circuit.EventUndone {
			m.cursor = ev.At
			m.showHint = false
		}
		return m.apply(ev)

	case ActionRestart:
		m.recordAbandoned()
		m.recorded = false
		m.newBest = false
		m.showHint = false
		m.cursor = m.level.Start
		return m.apply(m.session.Restart())

	case ActionHint:
		target, ok := m.session.Hint()
		m.hint, m.showHint = target, ok
		if ok {
			return m.flash(fmt.Sprintf("Try %s", target))
		}
		if !m.session.Won() {
			return m.flash("No single move closes this circuit: undo or restart")
		}
		return m, nil

	case ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// handleMouse moves the cursor to a clicked hex, and moves there when armed.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	target := m.view.FromScreen(msg.X-boardLeft, msg.Y-boardTop)
	if !m.session.Board().Contains(target) {
		return m, nil
	}
	m.cursor = target
	if m.session.Armed() {
		return m.moveTo(target)
	}
	return m, nil
}

func (m GameModel) moveTo(dest hex.Coord) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var model tea.Model = m
	for _, ev := range m.session.MoveTo(dest) {
		if ev.Kind == circuit.EventMoved {
			m.showHint = false
		}
		if ev.Kind == circuit.EventVictory {
			m.recordVictory(ev.Stars)
		}
		model, cmd = m.apply(ev)
		m = model.(GameModel)
	}
	return m, cmd
}

// apply turns a session event into a status message.
func (m GameModel) apply(ev circuit.Event) (tea.Model, tea.Cmd) {
	switch ev.Kind {
	case circuit.EventArmed:
		return m.flash("Armed: pick a hex and press enter")
	case circuit.EventDisarmed:
		return m.flash("Disarmed")
	case circuit.EventMoved:
		return m.flash(fmt.Sprintf("Moved to %s", ev.At))
	case circuit.EventUndone:
		return m.flash(fmt.Sprintf("Undone, back at %s", ev.At))
	case circuit.EventRestarted:
		return m.flash("Level restarted")
	case circuit.EventVictory:
		m.status = fmt.Sprintf("Circuit closed! %s", starString(ev.Stars))
		if m.newBest {
			m.status += "  New best!"
		}
		return m, nil
	case circuit.EventRejected:
		return m.flash(rejectMessage(ev.Reason))
	}
	return m, nil
}

func (m GameModel) flash(text string) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = text
	return m, expireStatusCmd(m.statusID, statusTTL)
}

func rejectMessage(r circuit.Reason) string {
	switch r {
	case circuit.ReasonNotArmed:
		return "Press space to arm before moving"
	case circuit.ReasonNoOp:
		return "You are already there"
	case circuit.ReasonOutOfBounds:
		return "That hex is off the board"
	case circuit.ReasonNothingToUndo:
		return "Nothing to undo"
	case circuit.ReasonFinished:
		return "Level complete: press r to replay or esc for levels"
	default:
		return r.String()
	}
}

// recordVictory stores the solved attempt and unlocks the next level.
func (m *GameModel) recordVictory(stars int) {
	if m.store == nil || m.recorded {
		return
	}
	m.recorded = true
	steps := m.session.Board().Steps()

	prev, err := m.store.BestStars(m.player, m.level.ID)
	switch {
	case errors.Is(err, storage.ErrNoProgress):
		m.newBest = true
	case err != nil:
		m.logger.Warn("could not read best result", "level", m.level.ID, "error", err)
	default:
		m.newBest = stars > prev
	}

	if err := m.store.CompleteLevel(m.player, m.level.ID, m.nextID, stars, steps); err != nil {
		m.logger.Error("could not save progress", "level", m.level.ID, "error", err)
	}
	if _, err := m.store.RecordAttempt(storage.Attempt{
		Player:  m.player,
		LevelID: m.level.ID,
		Steps:   steps,
		Stars:   stars,
		Solved:  true,
	}); err != nil {
		m.logger.Error("could not save attempt", "level", m.level.ID, "error", err)
	}
	m.logger.Info("level solved", "player", m.player, "level", m.level.ID, "stars", stars, "steps", steps)
}

// recordAbandoned stores an unsolved attempt if any move was made.
func (m *GameModel) recordAbandoned() {
	if m.store == nil || m.recorded || m.session.Won() || m.session.Moves() == 0 {
		return
	}
	m.recorded = true
	if _, err := m.store.RecordAttempt(storage.Attempt{
		Player:  m.player,
		LevelID: m.level.ID,
		Steps:   m.session.Board().Steps(),
	}); err != nil {
		m.logger.Error("could not save attempt", "level", m.level.ID, "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Level %d: %s", m.level.ID, m.level.Title)))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(m.targetLine()))
	b.WriteString("\n\n")

	m.canvas.Clear()
	m.view.Draw(m.canvas, m.session.Board(), Marks{
		Cursor:    m.cursor,
		HasCursor: !m.session.Won(),
		Hint:      m.hint,
		HasHint:   m.showHint,
		Armed:     m.session.Armed(),
	})
	pad := strings.Repeat(" ", boardLeft)
	for _, line := range strings.Split(RenderCanvas(m.canvas), "\n") {
		b.WriteString(pad)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statsLine())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m GameModel) targetLine() string {
	th := m.cfg.Thresholds()
	optimal := m.level.OptimalSteps()
	return fmt.Sprintf("★★★ ≤ %d steps  ★★ ≤ %d steps",
		config.StepBudget(th, optimal, 3), config.StepBudget(th, optimal, 2))
}

func (m GameModel) statsLine() string {
	board := m.session.Board()
	parts := []string{
		fmt.Sprintf("Steps %d", board.Steps()),
		fmt.Sprintf("Moves %d", m.session.Moves()),
		fmt.Sprintf("Lit %d/%d", board.ActivatedCount(), board.ComponentCount()),
	}
	line := strings.Join(parts, " · ")

	switch {
	case m.session.Won():
		line += "  " + winStyle.Render(starString(m.session.Stars()))
	case m.session.Armed():
		line += "  " + armedStyle.Render("ARMED")
	}
	return line
}

// starString renders a 0-3 star rating.
func starString(n int) string {
	n = canvas.Clamp(n, 0, 3)
	return strings.Repeat("★", n) + strings.Repeat("☆", 3-n)
}

// Session returns the underlying play session.
func (m GameModel) Session() *circuit.Session {
	return m.session
}

// Cursor returns the hex under the cursor.
func (m GameModel) Cursor() hex.Coord {
	return m.cursor
}

// Status returns the current status message.
func (m GameModel) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level map.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
