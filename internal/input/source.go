package input

// Mode selects how Poll waits for an event.
type Mode int

const (
	// Sync blocks until an event is available.
	Sync Mode = iota
	// Async returns KeyNone immediately when no event is pending.
	Async
)

// MouseState is the mouse as of the last poll.
type MouseState struct {
	X, Y   int
	Left   bool
	Right  bool
	Double bool
	// Moved is set only for the poll that consumed a motion event.
	Moved bool
	// Wheel is -1, 0 or 1.
	Wheel int
}

// Source yields discrete key events and exposes the last key, the last
// character and the mouse state. A poll that produces no key event resets
// LastKey and LastChar.
type Source interface {
	Poll(mode Mode) Key
	LastKey() Key
	LastChar() rune
	Mouse() MouseState
}
