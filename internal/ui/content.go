package ui

import "github.com/vovakirdan/consolekit/internal/visual"

// Content is what a window shows. Exactly one of the four content types
// is attached to a window, and it fixes the window's Mode.
type Content interface {
	Mode() Mode
	content()
}

// BasicContent draws visuals. Nil Visuals leaves the display to the caller.
type BasicContent struct {
	Visuals *visual.Visuals
}

// EditBoxContent reads typed characters into IO.
type EditBoxContent struct {
	IO *TextIO
}

// MenuContent presents a menu.
type MenuContent struct {
	Menu *Menu
}

// MessageBoxContent reveals IO's messages.
type MessageBoxContent struct {
	IO *TextIO
}

func (*BasicContent) Mode() Mode      { return ModeBasic }
func (*EditBoxContent) Mode() Mode    { return ModeEditBox }
func (*MenuContent) Mode() Mode       { return ModeMenu }
func (*MessageBoxContent) Mode() Mode { return ModeMessageBox }

func (*BasicContent) content()      {}
func (*EditBoxContent) content()    {}
func (*MenuContent) content()       {}
func (*MessageBoxContent) content() {}
