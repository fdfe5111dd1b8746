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

	"github.com/vovakirdan/blightgrid/internal/storage"
)

const maxRuns = 100

// runTab selects which slice of the run log the board shows.
type runTab int

const (
	tabTop runTab = iota
	tabSeed
)

var runTabTitles = []string{"Top runs", "This seed"}

// RunBoardKeyMap defines the key bindings for the run board.
type RunBoardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunBoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunBoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextTab, k.Quit}}
}

// DefaultRunBoardKeyMap returns default key bindings.
func DefaultRunBoardKeyMap() RunBoardKeyMap {
	return RunBoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "switch view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunBoardModel lists recorded runs in a table.
type RunBoardModel struct {
	store    *storage.Store
	seed     uint32
	tab      runTab
	runs     []storage.RunRecord
	loadErr  error
	table    table.Model
	help     help.Model
	keys     RunBoardKeyMap
	width    int
	height   int
	quitting bool
}

// NewRunBoardModel creates a board showing the best runs overall and the
// runs recorded for seed.
func NewRunBoardModel(store *storage.Store, seed uint32, width, height int) RunBoardModel {
	m := RunBoardModel{
		store:  store,
		seed:   seed,
		keys:   DefaultRunBoardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *RunBoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Seed", Width: 11},
		{Title: "Revealed", Width: 9},
		{Title: "Grown", Width: 7},
		{Title: "Corrupt", Width: 8},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches the rows for the current tab.
func (m *RunBoardModel) load() {
	m.runs, m.loadErr = nil, nil
	if m.store != nil {
		switch m.tab {
		case tabTop:
			m.runs, m.loadErr = m.store.TopRuns(maxRuns)
		case tabSeed:
			m.runs, m.loadErr = m.store.RunsForSeed(m.seed)
		}
	}
	m.table.SetRows(RunRows(m.runs))
	m.table.GotoTop()
}

// RunRows formats run records as table rows.
func RunRows(runs []storage.RunRecord) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = r.Source
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.Revealed),
			fmt.Sprintf("%d", r.Grown),
			fmt.Sprintf("%d", r.Corrupted),
			player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the run board.
func (m RunBoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run board.
func (m RunBoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % runTab(len(runTabTitles))
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(RunRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run board.
func (m RunBoardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("RUN LOG"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m RunBoardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Padding(0, 1)

	tabs := make([]string, len(runTabTitles))
	for i, title := range runTabTitles {
		if runTab(i) == tabSeed {
			title = fmt.Sprintf("%s %d", title, m.seed)
		}
		if runTab(i) == m.tab {
			tabs[i] = activeStyle.Render(title)
		} else {
			tabs[i] = tabStyle.Render(title)
		}
	}
	return strings.Join(tabs, " ")
}

func (m RunBoardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	switch {
	case m.store == nil:
		return emptyStyle.Render("Run log unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read runs: " + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nExplore a world to log one!")
	}
	return m.table.View()
}

// centerText pads each line of text so it sits in the middle of width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunRunBoard shows the run board until the user quits.
func RunRunBoard(store *storage.Store, seed uint32, width, height int) error {
	p := tea.NewProgram(
		NewRunBoardModel(store, seed, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// FormatDuration renders a run length for the text board.
func FormatDuration(d time.Duration) string {
	return d.Round(time.Second).String()
}
