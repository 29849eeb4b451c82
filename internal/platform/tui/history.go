package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/storage"
)

// History layout constants
const (
	maxHistoryRows = 100 // Max games to load per view
	historyChrome  = 9   // Lines used by title, tabs, stats and help
)

// HistoryView selects which games the history screen lists.
type HistoryView int

const (
	HistoryBest HistoryView = iota
	HistoryRecent
)

var historyViews = []HistoryView{HistoryBest, HistoryRecent}

// String returns the tab label.
func (v HistoryView) String() string {
	if v == HistoryRecent {
		return "Recent"
	}
	return "Best"
}

// HistoryModel is the Bubble Tea model for browsing past games.
type HistoryModel struct {
	store    *storage.Store
	size     int // Board size filter, 0 = all
	view     HistoryView
	games    []storage.GameRecord
	stats    *storage.Stats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history model filtered to one board size
// (0 shows every size).
func NewHistoryModel(store *storage.Store, size, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		size:   size,
		view:   HistoryBest,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Board", Width: 7},
		{Title: "Result", Width: 10},
		{Title: "Attempts", Width: 9},
		{Title: "Date", Width: 14},
	}

	height := core.Clamp(m.height-historyChrome, 3, maxHistoryRows)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// load fetches games and stats for the current view.
func (m *HistoryModel) load() {
	m.games, m.stats, m.loadErr = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	var err error
	switch m.view {
	case HistoryRecent:
		m.games, err = m.store.RecentGames(m.size, maxHistoryRows)
	default:
		m.games, err = m.store.BestGames(m.size, maxHistoryRows)
	}
	if err != nil {
		m.loadErr = err
	}

	if stats, err := m.store.Stats(m.size); err == nil {
		m.stats = stats
	} else if m.loadErr == nil {
		m.loadErr = err
	}

	m.updateTableRows()
}

// updateTableRows updates the table with current games.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%dx%d", g.Size, g.Size),
			g.Result(),
			fmt.Sprintf("%d/%d", g.Attempts, g.MaxAttempts),
			g.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.view = historyViews[(int(m.view)+1)%len(historyViews)]
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.view = historyViews[(int(m.view)+len(historyViews)-1)%len(historyViews)]
			m.load()
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

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "GAME HISTORY"
	if m.size > 0 {
		title = fmt.Sprintf("GAME HISTORY - %dx%d", m.size, m.size)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	b.WriteString(statusStyle.Render(m.renderStats()))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m HistoryModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(historyViews))
	for i, v := range historyViews {
		if v == m.view {
			tabs[i] = activeTabStyle.Render(v.String())
		} else {
			tabs[i] = tabStyle.Render(v.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if m.loadErr != nil {
		return errorStyle.Render(fmt.Sprintf("Could not load history: %v", m.loadErr))
	}
	if len(m.games) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games recorded yet.\nRun 'treasure play' to start digging!")
	}
	return m.table.View()
}

func (m HistoryModel) renderStats() string {
	if m.stats == nil || m.stats.Played == 0 {
		return ""
	}
	line := fmt.Sprintf("Played %d  ·  Won %d  ·  Lost %d  ·  Abandoned %d",
		m.stats.Played, m.stats.Won, m.stats.Lost, m.stats.Abandoned)
	if m.stats.BestAttempts > 0 {
		line += fmt.Sprintf("  ·  Best %d", m.stats.BestAttempts)
	}
	return line
}

// RunHistory runs the history screen.
func RunHistory(store *storage.Store, size, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, size, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
