package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/voltkid/internal/levels"
	"github.com/vovakirdan/voltkid/internal/storage"
)

// LevelEntry is one row of the level map.
type LevelEntry struct {
	Level    levels.Level
	Unlocked bool
	Stars    int // best stars, 0 when never solved
}

// BuildLevelMap pairs levels with the player's progress.
// Without a store every level is playable.
func BuildLevelMap(lvls []levels.Level, store *storage.Store, player string) ([]LevelEntry, error) {
	entries := make([]LevelEntry, len(lvls))
	if store == nil {
		for i, l := range lvls {
			entries[i] = LevelEntry{Level: l, Unlocked: true}
		}
		return entries, nil
	}

	unlocked, err := store.UnlockedLevel(player)
	if err != nil {
		return nil, err
	}
	progress, err := store.AllProgress(player)
	if err != nil {
		return nil, err
	}
	for i, l := range lvls {
		entries[i] = LevelEntry{
			Level:    l,
			Unlocked: l.ID <= unlocked,
			Stars:    progress[l.ID].BestStars,
		}
	}
	return entries, nil
}

var (
	lockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	starStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// LevelMapModel is the Bubble Tea model for the level picker.
type LevelMapModel struct {
	entries       []LevelEntry
	cursor        int
	width         int
	height        int
	keys          MenuKeyMap
	help          help.Model
	status        string
	quitting      bool
	selected      *levels.Level // Set when user selects a level
	wantsProgress bool          // True if user pressed Tab for progress
}

// NewLevelMapModel creates a level map. The cursor starts on the first
// unsolved unlocked level.
func NewLevelMapModel(entries []LevelEntry, width, height int) LevelMapModel {
	m := LevelMapModel{
		entries: entries,
		width:   width,
		height:  height,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
	}
	for i, e := range entries {
		if e.Unlocked {
			m.cursor = i
			if e.Stars == 0 {
				break
			}
		}
	}
	return m
}

// Init initializes the level map.
func (m LevelMapModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the level map.
func (m LevelMapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for level navigation.
func (m LevelMapModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.entries) == 0 {
			return m, nil
		}
		e := m.entries[m.cursor]
		if !e.Unlocked {
			m.status = fmt.Sprintf("Level %d is locked: solve the previous level first", e.Level.ID)
			return m, nil
		}
		lvl := e.Level
		m.selected = &lvl

	case key.Matches(msg, m.keys.Progress):
		m.wantsProgress = true
	}

	return m, nil
}

// View renders the level map.
func (m LevelMapModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("V O L T K I D", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Close every circuit", m.width))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(mutedStyle.Render(centerText("No levels found.", m.width)))
		b.WriteString("\n")
	}

	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		var line string
		switch {
		case !e.Unlocked:
			line = lockedStyle.Render(fmt.Sprintf("%s%2d  %-22s  locked", cursor, e.Level.ID, truncate(e.Level.Title, 22)))
		default:
			text := fmt.Sprintf("%s%2d  %-22s  ", cursor, e.Level.ID, truncate(e.Level.Title, 22))
			if i == m.cursor {
				text = selectedStyle.Render(text)
			}
			line = text + starStyle.Render(starString(e.Stars))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(centerText(m.status, m.width))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected level, or nil if none selected.
func (m LevelMapModel) Selected() *levels.Level {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m LevelMapModel) IsQuitting() bool {
	return m.quitting
}

// WantsProgress returns true if user requested the progress screen.
func (m LevelMapModel) WantsProgress() bool {
	return m.wantsProgress
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}
