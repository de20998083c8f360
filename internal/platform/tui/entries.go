package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/consolekit/internal/storage"
)

// Entries browser layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the window list sidebar
	sidebarWidth       = 20  // Width of the window list sidebar
	maxEntries         = 100 // Max entries to load per window
)

// EntrySource is the read side of the entry store.
type EntrySource interface {
	Windows() ([]storage.WindowSummary, error)
	Recent(window string, limit int) ([]storage.Entry, error)
}

// EntriesKeyMap defines the key bindings for the entries browser.
type EntriesKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextWindow key.Binding
	PrevWindow key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k EntriesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextWindow, k.PrevWindow, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k EntriesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextWindow, k.PrevWindow},
		{k.Quit},
	}
}

// DefaultEntriesKeyMap returns default key bindings.
func DefaultEntriesKeyMap() EntriesKeyMap {
	return EntriesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextWindow: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next window"),
		),
		PrevWindow: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev window"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// EntriesModel browses the values edit boxes committed to the store,
// one sink window at a time.
type EntriesModel struct {
	source      EntrySource
	windows     []storage.WindowSummary
	cursor      int
	entries     []storage.Entry
	loadErr     error
	table       table.Model
	help        help.Model
	keys        EntriesKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewEntriesModel creates a new entries browser.
func NewEntriesModel(source EntrySource, width, height int) EntriesModel {
	h := help.New()
	h.ShowAll = false

	m := EntriesModel{
		source:      source,
		keys:        DefaultEntriesKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()

	if source != nil {
		m.windows, m.loadErr = source.Windows()
	}
	m.loadEntries()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *EntriesModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 6},
		{Title: "Type", Width: 7},
		{Title: "Value", Width: 24},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	if spare := tableWidth - 6 - 7 - 14 - 8; spare > columns[2].Width {
		columns[2].Width = spare
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// current returns the selected window name.
func (m EntriesModel) current() string {
	if len(m.windows) == 0 {
		return ""
	}
	return m.windows[m.cursor].Window
}

// loadEntries loads the entries of the selected window.
func (m *EntriesModel) loadEntries() {
	m.entries = nil
	if m.source != nil && len(m.windows) > 0 {
		m.entries, m.loadErr = m.source.Recent(m.current(), maxEntries)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current entries.
func (m *EntriesModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.ID),
			e.Type.String(),
			e.Value().String(),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the entries browser.
func (m EntriesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the entries browser.
func (m EntriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextWindow):
			if len(m.windows) > 0 {
				m.cursor = (m.cursor + 1) % len(m.windows)
				m.loadEntries()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevWindow):
			if len(m.windows) > 0 {
				m.cursor = (m.cursor - 1 + len(m.windows)) % len(m.windows)
				m.loadEntries()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the entries browser.
func (m EntriesModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "ENTRIES"
	if w := m.current(); w != "" {
		title = fmt.Sprintf("ENTRIES - %s", w)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// renderWideLayout renders the window list beside the table.
func (m EntriesModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Windows\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, w := range m.windows {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := fmt.Sprintf("%s (%d)", w.Window, w.Count)
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	left := boxStyle.Width(sidebarWidth).Render(sidebar.String())
	right := boxStyle.Render(m.renderTableContent())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// renderNarrowLayout renders the selected window name above the table.
func (m EntriesModel) renderNarrowLayout() string {
	var b strings.Builder
	if w := m.current(); w != "" {
		b.WriteString(centerText(fmt.Sprintf("< %s >", w), m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m EntriesModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Cannot read entries:\n" + m.loadErr.Error())
	}
	if len(m.entries) == 0 {
		return emptyStyle.Render("No entries recorded yet.\nConfirm an edit box to save one!")
	}
	return m.table.View()
}

// IsQuitting returns true if the user closed the browser.
func (m EntriesModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunEntries runs the entries browser.
func RunEntries(source EntrySource, width, height int) error {
	p := tea.NewProgram(
		NewEntriesModel(source, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
