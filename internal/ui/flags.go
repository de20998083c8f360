package ui

import "fmt"

// Mode is the fixed behavior of a window, derived from its content.
type Mode int

const (
	ModeBasic Mode = iota
	ModeEditBox
	ModeMenu
	ModeMessageBox
)

var modeNames = [...]string{"basic", "edit", "menu", "message"}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts the String form back to a Mode.
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: mode %q", ErrUnsupported, s)
}

// StateFlags are the per-window state bits.
type StateFlags uint8

const (
	HasFocus StateFlags = 1 << iota
	ActiveWithoutFocus
	SaveWithoutFocus
	CanReceiveFocus
	XScrollable
	YScrollable
)

var stateNames = []struct {
	flag StateFlags
	name string
}{
	{HasFocus, "focus"},
	{ActiveWithoutFocus, "active_without_focus"},
	{SaveWithoutFocus, "save_without_focus"},
	{CanReceiveFocus, "can_receive_focus"},
	{XScrollable, "x_scrollable"},
	{YScrollable, "y_scrollable"},
}

// ParseStateFlag converts a flag name used in layout files.
func ParseStateFlag(s string) (StateFlags, error) {
	for _, n := range stateNames {
		if n.name == s {
			return n.flag, nil
		}
	}
	return 0, fmt.Errorf("%w: window flag %q", ErrUnsupported, s)
}

// ParentState are the parent window state bits.
type ParentState uint8

const (
	WindowsActive ParentState = 1 << iota
	Grabbed
	Fixed
)

// HorzScroll is a horizontal scroll request.
type HorzScroll int

const (
	HorzFix HorzScroll = iota
	ScrollLeft
	ScrollRight
)

// VertScroll is a vertical scroll request.
type VertScroll int

const (
	VertFix VertScroll = iota
	ScrollUp
	ScrollDown
)
