package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/consolekit/internal/input"
)

// KeyMap holds the bindings the driver handles itself. Every other key
// goes to the engine.
type KeyMap struct {
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default driver bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

var teaKeys = map[tea.KeyType]input.Key{
	tea.KeyTab:       input.KeyTab,
	tea.KeyEnter:     input.KeyEnter,
	tea.KeyEsc:       input.KeyEscape,
	tea.KeyBackspace: input.KeyBackspace,
	tea.KeyDelete:    input.KeyDelete,
	tea.KeyUp:        input.KeyUp,
	tea.KeyDown:      input.KeyDown,
	tea.KeyLeft:      input.KeyLeft,
	tea.KeyRight:     input.KeyRight,
	tea.KeyHome:      input.KeyHome,
	tea.KeyEnd:       input.KeyEnd,
	tea.KeyPgUp:      input.KeyPageUp,
	tea.KeyPgDown:    input.KeyPageDown,
}

// pushKey translates a key message into buffer events. Pasted runes
// become one event each.
func pushKey(buf *input.Buffer, msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			buf.PushRune(r)
		}
		return
	case tea.KeySpace:
		buf.PushKey(input.KeySpace, ' ')
		return
	}
	if k, ok := teaKeys[msg.Type]; ok {
		buf.PushKey(k, 0)
	}
}

// mouseTracker turns Bubble Tea mouse events into absolute mouse states.
type mouseTracker struct {
	left, right bool
}

func (t *mouseTracker) state(msg tea.MouseMsg) input.MouseState {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			t.left = true
		case tea.MouseButtonRight:
			t.right = true
		}
	case tea.MouseActionRelease:
		t.left, t.right = false, false
	}

	m := input.MouseState{X: msg.X, Y: msg.Y, Left: t.left, Right: t.right}
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.Wheel = -1
		case tea.MouseButtonWheelDown:
			m.Wheel = 1
		}
	}
	return m
}
