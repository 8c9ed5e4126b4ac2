package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// maxBrowserEntries limits how many replays the browser loads at once.
const maxBrowserEntries = 200

// BrowserKeyMap defines the key bindings for the replay browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Watch  key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Watch, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Watch, k.Delete, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Watch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for the saved-replay list.
type BrowserModel struct {
	store   *storage.Store
	entries []storage.ReplayEntry
	table   table.Model
	help    help.Model
	keys    BrowserKeyMap
	width   int
	height  int

	loadErr  error
	selected int64 // replay chosen for watching, 0 if none
	quitting bool
}

// NewBrowserModel creates a replay browser backed by the given store.
func NewBrowserModel(store *storage.Store, width, height int) BrowserModel {
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		store:  store,
		keys:   DefaultBrowserKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// createTable creates the replay table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "End", Width: 10},
		{Title: "Board", Width: 8},
		{Title: "Moves", Width: 7},
		{Title: "Size", Width: 7},
		{Title: "Date", Width: 16},
	}

	height := core.Max(m.height-6, 3)

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

// reload refreshes the entry list from the store.
func (m *BrowserModel) reload() {
	entries, err := m.store.ListReplays(maxBrowserEntries)
	if err != nil {
		m.loadErr = err
		m.entries = nil
	} else {
		m.loadErr = nil
		m.entries = entries
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.ID),
			fmt.Sprintf("%d", e.Score),
			e.Reason.String(),
			fmt.Sprintf("%dx%d", e.Width, e.Height),
			fmt.Sprintf("%d", e.Moves),
			fmt.Sprintf("%dB", e.Size),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
}

// cursorEntry returns the entry under the cursor, or nil when empty.
func (m BrowserModel) cursorEntry() *storage.ReplayEntry {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return nil
	}
	return &m.entries[i]
}

// Init is a no-op; the list is loaded up front.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Watch):
			if e := m.cursorEntry(); e != nil {
				m.selected = e.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if e := m.cursorEntry(); e != nil {
				//nolint:errcheck // reload below shows the real state
				m.store.DeleteReplay(e.ID)
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.reload()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the replay list.
func (m BrowserModel) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("SAVED REPLAYS"))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(errStyle.Render("failed to load replays: " + m.loadErr.Error()))
	case len(m.entries) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(emptyStyle.Render("No replays saved yet.\nFinish a game to record one."))
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// SelectedID returns the replay the user picked for watching, or 0.
func (m BrowserModel) SelectedID() int64 {
	return m.selected
}

// RunBrowser runs the replay browser and returns the chosen replay ID.
// A zero ID means the user quit without picking one.
func RunBrowser(store *storage.Store, width, height int) (int64, error) {
	model := NewBrowserModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(BrowserModel)
	if !ok {
		return 0, nil
	}
	return m.SelectedID(), nil
}
