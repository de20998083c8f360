package ui

import (
	"fmt"

	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/input"
)

// MenuItem is one selectable item. It shows Entries[Entry] at Location
// and cycles through its entries when toggled.
type MenuItem struct {
	Location  core.Point
	W, H      int
	Entry     int
	Entries   []string
	Params    []int
	Highlight core.Attr
}

// Text returns the current entry.
func (it *MenuItem) Text() string {
	if it.Entry < 0 || it.Entry >= len(it.Entries) {
		return ""
	}
	return it.Entries[it.Entry]
}

// Param returns the parameter bound to the current entry, or the entry
// index when no parameters are set.
func (it *MenuItem) Param() int {
	if it.Entry >= 0 && it.Entry < len(it.Params) {
		return it.Params[it.Entry]
	}
	return it.Entry
}

// MenuHandler reacts to a key bound in a menu and returns a status code.
type MenuHandler interface {
	Invoke(m *Menu, w *Window) int
}

// MenuHandlerFunc adapts a function to MenuHandler.
type MenuHandlerFunc func(m *Menu, w *Window) int

// Invoke calls f.
func (f MenuHandlerFunc) Invoke(m *Menu, w *Window) int { return f(m, w) }

// MenuAction is one of the built-in handlers.
type MenuAction int

const (
	ActionPrevious MenuAction = iota
	ActionNext
	ActionToggleLeft
	ActionToggleRight
)

var menuActionNames = [...]string{"previous", "next", "toggle_left", "toggle_right"}

func (a MenuAction) String() string { return name(menuActionNames[:], int(a), "MenuAction") }

// ParseMenuAction converts a built-in handler name.
func ParseMenuAction(s string) (MenuAction, error) {
	for i, n := range menuActionNames {
		if n == s {
			return MenuAction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: menu action %q", ErrUnsupported, s)
}

// Invoke runs the built-in handler.
func (a MenuAction) Invoke(m *Menu, w *Window) int {
	switch a {
	case ActionPrevious:
		return MoveToPreviousItem(m, w)
	case ActionNext:
		return MoveToNextItem(m, w)
	case ActionToggleLeft:
		return ToggleMenuItemLeft(m, w)
	case ActionToggleRight:
		return ToggleMenuItemRight(m, w)
	}
	return -1
}

// KeyBinding binds a key to a handler within one menu.
type KeyBinding struct {
	Key     input.Key
	Handler MenuHandler
}

// Menu is the content of a menu window.
type Menu struct {
	Chosen int
	Items  []*MenuItem
	Keys   []KeyBinding
}

// ChosenItem returns the selected item.
func (m *Menu) ChosenItem() *MenuItem {
	return m.Items[m.Chosen]
}

// handlerFor returns the first handler bound to k.
func (m *Menu) handlerFor(k input.Key) MenuHandler {
	for _, b := range m.Keys {
		if b.Key == k {
			return b.Handler
		}
	}
	return nil
}

func (m *Menu) validate() error {
	if len(m.Items) == 0 {
		return fmt.Errorf("%w: menu has no items", ErrGeometry)
	}
	if m.Chosen < 0 || m.Chosen >= len(m.Items) {
		return fmt.Errorf("%w: chosen item %d", ErrIndexOutOfRange, m.Chosen)
	}
	for i, it := range m.Items {
		if it == nil || len(it.Entries) == 0 {
			return fmt.Errorf("%w: menu item %d has no entries", ErrGeometry, i)
		}
		if it.Entry < 0 || it.Entry >= len(it.Entries) {
			return fmt.Errorf("%w: menu item %d entry %d", ErrIndexOutOfRange, i, it.Entry)
		}
		if it.W <= 0 || it.H <= 0 {
			return fmt.Errorf("%w: menu item %d is %dx%d", ErrGeometry, i, it.W, it.H)
		}
	}
	for i, b := range m.Keys {
		if b.Handler == nil {
			return fmt.Errorf("%w: menu key %d has no handler", ErrUnsupported, i)
		}
	}
	return nil
}

// paintItem sets the attribute of an item's rectangle.
func paintItem(w *Window, it *MenuItem, attr core.Attr) {
	r := core.NewRect(it.Location.X, it.Location.Y, it.W, it.H).Intersect(w.display.Bounds())
	cells := w.display.Cells()
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			cells[w.display.Index(x, y)].Attr = attr
		}
	}
}

func highlightItem(w *Window, m *Menu, i int) {
	paintItem(w, m.Items[i], m.Items[i].Highlight)
}

func removeHighlight(w *Window, m *Menu, i int) {
	paintItem(w, m.Items[i], w.Background)
}

// initMenu writes every item's current entry and highlights the chosen one.
func initMenu(w *Window, m *Menu) {
	for _, it := range m.Items {
		w.display.WriteText(w.display.Index(it.Location.X, it.Location.Y), it.Text())
	}
	highlightItem(w, m, m.Chosen)
}

// MoveToPreviousItem selects the previous item, wrapping to the last.
func MoveToPreviousItem(m *Menu, w *Window) int {
	removeHighlight(w, m, m.Chosen)
	m.Chosen = cycle(m.Chosen, -1, len(m.Items))
	highlightItem(w, m, m.Chosen)
	return 0
}

// MoveToNextItem selects the next item, wrapping to the first.
func MoveToNextItem(m *Menu, w *Window) int {
	removeHighlight(w, m, m.Chosen)
	m.Chosen = cycle(m.Chosen, 1, len(m.Items))
	highlightItem(w, m, m.Chosen)
	return 0
}

func toggleItem(w *Window, it *MenuItem, delta int) {
	offset := w.display.Index(it.Location.X, it.Location.Y)
	w.display.ClearText(offset, len([]rune(it.Text())))
	it.Entry = cycle(it.Entry, delta, len(it.Entries))
	w.display.WriteText(offset, it.Text())
}

// ToggleMenuItemLeft steps the chosen item to its next entry.
func ToggleMenuItemLeft(m *Menu, w *Window) int {
	toggleItem(w, m.ChosenItem(), 1)
	return 0
}

// ToggleMenuItemRight steps the chosen item to its previous entry.
func ToggleMenuItemRight(m *Menu, w *Window) int {
	toggleItem(w, m.ChosenItem(), -1)
	return 0
}
