package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/consolekit/internal/registry"
)

// MenuKeyMap defines the key bindings for the program picker.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Entries key.Binding
	Quit    key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:    key.NewBinding(key.WithKeys("down", "j", "s")),
		Select:  key.NewBinding(key.WithKeys("enter", " ")),
		Entries: key.NewBinding(key.WithKeys("tab")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for the program picker.
type MenuModel struct {
	items       []registry.Program
	cursor      int
	width       int
	height      int
	keys        MenuKeyMap
	quitting    bool
	selected    *registry.Program
	openEntries bool
}

// NewMenuModel creates a picker over the registered programs.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		items:  registry.List(),
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Entries):
		m.openEntries = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  C O N S O L E K I T  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a program", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		kind := ""
		if item.Info {
			kind = " (picker)"
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s%s", cursor, item.Title, kind), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Run  |  Tab: Entries  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected program, or nil if none was selected.
func (m MenuModel) Selected() *registry.Program {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsEntries returns true if user asked for the entries browser.
func (m MenuModel) WantsEntries() bool {
	return m.openEntries
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ProgramID    string
	WantsEntries bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	switch {
	case m.WantsEntries():
		return MenuResult{WantsEntries: true}, nil
	case m.Selected() != nil:
		return MenuResult{ProgramID: m.Selected().ID}, nil
	}
	return MenuResult{Quit: true}, nil
}
