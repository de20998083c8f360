package ui

import "errors"

var (
	// ErrNoWindows is returned when a parent window is built without children.
	ErrNoWindows = errors.New("ui: parent window has no windows")
	// ErrFocusIneligible is returned when the initial focus cannot receive focus.
	ErrFocusIneligible = errors.New("ui: window cannot receive focus")
	// ErrIndexOutOfRange is returned for a window, item or receiver index
	// outside its collection.
	ErrIndexOutOfRange = errors.New("ui: index out of range")
	// ErrModeMismatch is returned when an instruction or operation does not
	// apply to the window's mode.
	ErrModeMismatch = errors.New("ui: instruction does not match window mode")
	// ErrUnsupported is returned for an enumerant no handler knows.
	ErrUnsupported = errors.New("ui: unsupported value")
	// ErrNoSink is returned by SaveMessage on an edit box without a sink.
	ErrNoSink = errors.New("ui: edit box has no data sink")
	// ErrGeometry is returned for non-positive or inconsistent sizes.
	ErrGeometry = errors.New("ui: invalid geometry")
	// ErrClosed is returned when using a parent window after Close.
	ErrClosed = errors.New("ui: parent window is closed")
)
