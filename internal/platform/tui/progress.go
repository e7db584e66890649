package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/voltkid/internal/levels"
	"github.com/vovakirdan/voltkid/internal/storage"
)

// ProgressRow is one level's summary on the progress screen.
type ProgressRow struct {
	LevelID   int
	Title     string
	Stars     int
	BestSteps int // 0 when never solved
	Optimal   int
	Solves    int
	Unlocked  bool
}

// BuildProgressRows summarizes the player's progress over all levels.
func BuildProgressRows(lvls []levels.Level, store *storage.Store, player string) ([]ProgressRow, error) {
	rows := make([]ProgressRow, len(lvls))
	progress := map[int]storage.LevelProgress{}
	unlocked := len(lvls) + 1
	if store != nil {
		var err error
		if progress, err = store.AllProgress(player); err != nil {
			return nil, err
		}
		if unlocked, err = store.UnlockedLevel(player); err != nil {
			return nil, err
		}
	}

	for i, l := range lvls {
		p := progress[l.ID]
		rows[i] = ProgressRow{
			LevelID:   l.ID,
			Title:     l.Title,
			Stars:     p.BestStars,
			BestSteps: p.BestSteps,
			Optimal:   l.OptimalSteps(),
			Solves:    p.Completions,
			Unlocked:  l.ID <= unlocked,
		}
	}
	return rows, nil
}

// ProgressModel is the Bubble Tea model for the progress screen.
type ProgressModel struct {
	rows      []ProgressRow
	table     table.Model
	help      help.Model
	keys      MenuKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewProgressModel creates a new progress model.
func NewProgressModel(rows []ProgressRow, width, height int) ProgressModel {
	h := help.New()
	h.ShowAll = false

	m := ProgressModel{
		rows:   rows,
		keys:   DefaultMenuKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ProgressModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Title", Width: 22},
		{Title: "Stars", Width: 6},
		{Title: "Best", Width: 6},
		{Title: "Par", Width: 5},
		{Title: "Solves", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the progress rows.
func (m *ProgressModel) updateTableRows() {
	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		best := "-"
		if r.BestSteps > 0 {
			best = fmt.Sprintf("%d", r.BestSteps)
		}
		stars := starString(r.Stars)
		if !r.Unlocked {
			stars = "lock"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.LevelID),
			truncate(r.Title, 22),
			stars,
			best,
			fmt.Sprintf("%d", r.Optimal),
			fmt.Sprintf("%d", r.Solves),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the progress model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress screen.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Progress):
			m.goingBack = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the progress screen.
func (m ProgressModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	total, solved := 0, 0
	for _, r := range m.rows {
		total += r.Stars
		if r.Stars > 0 {
			solved++
		}
	}

	b.WriteString(titleStyle.MarginBottom(1).Render(
		centerText(fmt.Sprintf("PROGRESS - %d/%d solved, %d stars", solved, len(m.rows), total), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No levels loaded."))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to the level map.
func (m ProgressModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ProgressModel) IsQuitting() bool {
	return m.quitting
}
