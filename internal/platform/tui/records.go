package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2040/internal/storage"
)

// DefaultRecordsLimit is how many rounds the records screen lists.
const DefaultRecordsLimit = 10

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// RecordsModel is the Bubble Tea model for the records screen.
type RecordsModel struct {
	rounds   []storage.Round
	stats    *storage.Stats
	table    table.Model
	help     help.Model
	keys     RecordsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRecordsModel creates a records screen showing the given rounds.
// stats may be nil.
func NewRecordsModel(rounds []storage.Round, stats *storage.Stats, width, height int) RecordsModel {
	m := RecordsModel{
		rounds: rounds,
		stats:  stats,
		keys:   DefaultRecordsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized for the current window.
func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Tile", Width: 7},
		{Title: "Moves", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "End", Width: 10},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, help, and margins
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

// RecordRows formats rounds as table rows.
func RecordRows(rounds []storage.Round) []table.Row {
	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		date := "-"
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.LargestTile),
			fmt.Sprintf("%d", r.Moves),
			formatDuration(r.Duration),
			reasonLabel(r.Reason),
			date,
		}
	}
	return rows
}

func (m *RecordsModel) updateTableRows() {
	m.table.SetRows(RecordRows(m.rounds))
	m.table.GotoTop()
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func reasonLabel(r storage.EndReason) string {
	switch r {
	case storage.EndBoardFull:
		return "full"
	case storage.EndNoMoves:
		return "stuck"
	case storage.EndQuit:
		return "left"
	default:
		return string(r)
	}
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records screen.
func (m RecordsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("2040 RECORDS"), m.width))
	b.WriteString("\n")

	if m.stats != nil && m.stats.Rounds > 0 {
		summary := fmt.Sprintf("Best tile %d  ·  %d rounds  ·  %d moves",
			m.stats.BestTile, m.stats.Rounds, m.stats.TotalMoves)
		b.WriteString(centerText(helpStyle.Render(summary), m.width))
	}
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m RecordsModel) renderTableContent() string {
	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rounds recorded yet.\nPlay a round to set a record!")
	}

	return m.table.View()
}

// centerText centers each line of a block within width.
func centerText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunRecords loads the best rounds from store and shows them.
func RunRecords(store *storage.Store, limit, width, height int) error {
	rounds, err := store.TopRounds(limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewRecordsModel(rounds, stats, width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
