package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tileblast/internal/storage"
)

// maxResults is the number of rows loaded into the results table.
const maxResults = 50

// ResultSource reads stored results.
type ResultSource interface {
	Results(levelNumber int, limit int) ([]storage.Result, error)
	BestResult(levelNumber int) (*storage.Result, error)
}

// ResultsModel is the Bubble Tea model for the results screen of one level.
type ResultsModel struct {
	levelNumber int
	results     []storage.Result
	best        *storage.Result
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ResultsKeyMap
	width       int
	height      int
	quitting    bool
}

// NewResultsModel creates a results screen and loads its rows from src.
func NewResultsModel(src ResultSource, levelNumber, width, height int) ResultsModel {
	m := ResultsModel{
		levelNumber: levelNumber,
		help:        help.New(),
		keys:        DefaultResultsKeyMap(),
		width:       width,
		height:      height,
	}

	if src != nil {
		m.results, m.loadErr = src.Results(levelNumber, maxResults)
		if m.loadErr == nil {
			m.best, m.loadErr = src.BestResult(levelNumber)
		}
	}

	m.table = m.createTable()
	m.table.SetRows(ResultRows(m.results))
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Outcome", Width: 8},
		{Title: "Moves", Width: 8},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 5)), // Leave room for header, help, and margins
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

// ResultRows converts stored results to table rows.
func ResultRows(results []storage.Result) []table.Row {
	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Outcome,
			fmt.Sprintf("%d/%d", r.MovesUsed, r.MoveBudget),
			orDash(r.Player),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(ResultRows(m.results))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results screen.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("RESULTS - LEVEL %d", m.levelNumber)))
	b.WriteString("\n")

	if m.best != nil {
		b.WriteString(fmt.Sprintf("Best: %d moves by %s\n", m.best.MovesUsed, orDash(m.best.Player)))
	}
	b.WriteString("\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case m.loadErr != nil:
		b.WriteString(boxStyle.Render("Could not load results: " + m.loadErr.Error()))
	case len(m.results) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No results recorded yet.")))
	default:
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// RunResults runs the results screen for a level.
func RunResults(src ResultSource, levelNumber, width, height int) error {
	p := tea.NewProgram(
		NewResultsModel(src, levelNumber, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
