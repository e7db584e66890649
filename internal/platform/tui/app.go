package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/voltkid/internal/config"
	"github.com/vovakirdan/voltkid/internal/levels"
	"github.com/vovakirdan/voltkid/internal/storage"
)

type screen int

const (
	screenMap screen = iota
	screenGame
	screenProgress
)

// AppModel manages the full flow: level map -> game -> level map.
// It is the top-level model for both local and SSH sessions.
type AppModel struct {
	levels     []levels.Level
	cfg        config.Config
	store      *storage.Store
	player     string
	logger     *log.Logger
	width      int
	height     int
	screen     screen
	levelMap   LevelMapModel
	game       *GameModel
	progress   *ProgressModel
	exitOnBack bool // leaving the game ends the program
	quitting   bool
}

// NewAppModel creates the top-level model.
// store may be nil, in which case every level is unlocked and nothing is saved.
func NewAppModel(lvls []levels.Level, cfg config.Config, store *storage.Store, player string, logger *log.Logger, width, height int) AppModel {
	if logger == nil {
		logger = log.Default()
	}
	m := AppModel{
		levels: lvls,
		cfg:    cfg,
		store:  store,
		player: player,
		logger: logger,
		width:  width,
		height: height,
	}
	m.levelMap = m.newLevelMap()
	return m
}

// StartAt opens a level directly. Leaving it ends the program.
func (m AppModel) StartAt(lvl levels.Level) AppModel {
	m.openGame(lvl)
	m.exitOnBack = true
	return m
}

func (m *AppModel) newLevelMap() LevelMapModel {
	entries, err := BuildLevelMap(m.levels, m.store, m.player)
	if err != nil {
		m.logger.Error("could not load progress", "player", m.player, "error", err)
		entries, _ = BuildLevelMap(m.levels, nil, m.player)
	}
	return NewLevelMapModel(entries, m.width, m.height)
}

func (m *AppModel) openGame(lvl levels.Level) {
	g := NewGameModel(lvl, m.cfg, m.store, m.player, m.logger)
	g.nextID = levels.NextID(m.levels, lvl.ID)
	next, _ := g.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	g = next.(GameModel)
	m.game = &g
	m.screen = screenGame
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the current screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenProgress:
		return m.updateProgress(msg)
	default:
		return m.updateMap(msg)
	}
}

func (m AppModel) updateMap(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.levelMap.Update(msg)
	m.levelMap = next.(LevelMapModel)

	switch {
	case m.levelMap.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.levelMap.Selected() != nil:
		m.openGame(*m.levelMap.Selected())
		m.levelMap = m.newLevelMap()
		return m, m.game.Init()

	case m.levelMap.WantsProgress():
		rows, err := BuildProgressRows(m.levels, m.store, m.player)
		if err != nil {
			m.logger.Error("could not load progress", "player", m.player, "error", err)
		}
		p := NewProgressModel(rows, m.width, m.height)
		m.progress = &p
		m.screen = screenProgress
		m.levelMap = m.newLevelMap()
		return m, nil
	}

	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	g := next.(GameModel)
	m.game = &g

	switch {
	case g.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case g.BackToMenu():
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.game = nil
		m.screen = screenMap
		m.levelMap = m.newLevelMap()
		return m, m.levelMap.Init()
	}

	return m, cmd
}

func (m AppModel) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.progress.Update(msg)
	p := next.(ProgressModel)
	m.progress = &p

	switch {
	case p.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case p.IsGoingBack():
		m.progress = nil
		m.screen = screenMap
		return m, nil
	}

	return m, cmd
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenProgress:
		return m.progress.View()
	default:
		return m.levelMap.View()
	}
}

// Run starts the interactive program on the local terminal.
func Run(app AppModel) error {
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click a hex to move the cursor
	)

	_, err := p.Run()
	return err
}
