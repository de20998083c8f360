package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/consolekit/internal/adt"
	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/visual"
)

// Receiver binds another window of the same parent to an instruction.
type Receiver struct {
	Window      int
	Instruction Instruction
}

// WindowSpec describes a window to build.
type WindowSpec struct {
	// Coord is the position relative to the parent's top-left corner.
	Coord core.Point
	// ViewW and ViewH are the visible viewport; zero means the full size.
	ViewW, ViewH int
	// Width and Height are the full scrollable content size.
	Width, Height int
	Content       Content
	Receivers     []Receiver
	State         StateFlags
	Background    core.Attr
	// Data selects the info slot hotkey clicks in this window write to.
	Data int
	// Sink receives committed edit box text.
	Sink adt.Sink
	// Display, when set, is a shared buffer of exactly Width x Height cells.
	Display *core.Surface
}

// Window is a scrollable content pane of a ParentWindow.
type Window struct {
	Coord            core.Point
	ViewW, ViewH     int
	Width, Height    int
	XOffset, YOffset int
	Receivers        []Receiver
	State            StateFlags
	Background       core.Attr
	Data             int
	Sink             adt.Sink

	display *core.Surface
	shared  bool
	content Content
}

// NewWindow validates spec and builds the window.
func NewWindow(spec WindowSpec) (*Window, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("%w: window size %dx%d", ErrGeometry, spec.Width, spec.Height)
	}
	if spec.ViewW == 0 {
		spec.ViewW = spec.Width
	}
	if spec.ViewH == 0 {
		spec.ViewH = spec.Height
	}
	if spec.ViewW < 0 || spec.ViewH < 0 || spec.ViewW > spec.Width || spec.ViewH > spec.Height {
		return nil, fmt.Errorf("%w: viewport %dx%d for content %dx%d", ErrGeometry, spec.ViewW, spec.ViewH, spec.Width, spec.Height)
	}
	if spec.Content == nil {
		return nil, fmt.Errorf("%w: window has no content", ErrUnsupported)
	}

	area := spec.Width * spec.Height
	switch c := spec.Content.(type) {
	case *BasicContent:
	case *EditBoxContent:
		if err := checkIO(c.IO, area); err != nil {
			return nil, err
		}
	case *MessageBoxContent:
		if err := checkIO(c.IO, area); err != nil {
			return nil, err
		}
	case *MenuContent:
		if c.Menu == nil {
			return nil, fmt.Errorf("%w: menu window without menu", ErrUnsupported)
		}
		if err := c.Menu.validate(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: content %T", ErrUnsupported, spec.Content)
	}

	w := &Window{
		Coord:      spec.Coord,
		ViewW:      spec.ViewW,
		ViewH:      spec.ViewH,
		Width:      spec.Width,
		Height:     spec.Height,
		Receivers:  spec.Receivers,
		State:      spec.State &^ HasFocus,
		Background: spec.Background,
		Data:       spec.Data,
		Sink:       spec.Sink,
		content:    spec.Content,
	}
	if spec.Display != nil {
		if spec.Display.Width() != spec.Width || spec.Display.Height() != spec.Height {
			return nil, fmt.Errorf("%w: shared display is %dx%d, window is %dx%d", ErrGeometry,
				spec.Display.Width(), spec.Display.Height(), spec.Width, spec.Height)
		}
		w.display = spec.Display
		w.shared = true
	} else {
		w.display = core.NewSurface(spec.Width, spec.Height)
		w.display.Clear(core.BlankWith(spec.Background))
	}

	if io := w.IO(); io != nil && io.limit == 0 {
		io.setLimit(area)
	}
	return w, nil
}

func checkIO(io *TextIO, area int) error {
	if io == nil {
		return fmt.Errorf("%w: text window without IO", ErrUnsupported)
	}
	if io.limit < 0 || io.limit > area {
		return fmt.Errorf("%w: text limit %d exceeds display area %d", ErrGeometry, io.limit, area)
	}
	return nil
}

// Mode returns the mode fixed by the window's content.
func (w *Window) Mode() Mode { return w.content.Mode() }

// Content returns the attached content.
func (w *Window) Content() Content { return w.content }

// Visuals returns the visuals of a basic window, or nil.
func (w *Window) Visuals() *visual.Visuals {
	if c, ok := w.content.(*BasicContent); ok {
		return c.Visuals
	}
	return nil
}

// IO returns the text model of an edit box or message box, or nil.
func (w *Window) IO() *TextIO {
	switch c := w.content.(type) {
	case *EditBoxContent:
		return c.IO
	case *MessageBoxContent:
		return c.IO
	}
	return nil
}

// Menu returns the menu of a menu window, or nil.
func (w *Window) Menu() *Menu {
	if c, ok := w.content.(*MenuContent); ok {
		return c.Menu
	}
	return nil
}

// Has reports whether all bits of f are set.
func (w *Window) Has(f StateFlags) bool { return w.State&f == f }

// HasFocus reports whether the window holds its parent's focus.
func (w *Window) HasFocus() bool { return w.Has(HasFocus) }

// Display returns the content buffer.
func (w *Window) Display() *core.Surface { return w.display }

// Offset returns the scroll position.
func (w *Window) Offset() (int, int) { return w.XOffset, w.YOffset }

// Viewport returns the visible size.
func (w *Window) Viewport() (int, int) { return w.ViewW, w.ViewH }

// BackgroundAttr returns the fill attribute of cleared cells.
func (w *Window) BackgroundAttr() core.Attr { return w.Background }

// Bounds returns the footprint relative to the parent.
func (w *Window) Bounds() core.Rect {
	return core.NewRect(w.Coord.X, w.Coord.Y, w.ViewW, w.ViewH)
}

// Scroll shifts the viewport one cell. Offsets stay within
// [0, Width-ViewW] and [0, Height-ViewH].
func (w *Window) Scroll(h HorzScroll, v VertScroll) {
	switch h {
	case ScrollLeft:
		if w.Has(XScrollable) && w.XOffset > 0 {
			w.XOffset--
		}
	case ScrollRight:
		if w.Has(XScrollable) && w.XOffset+w.ViewW < w.Width {
			w.XOffset++
		}
	}
	switch v {
	case ScrollUp:
		if w.Has(YScrollable) && w.YOffset > 0 {
			w.YOffset--
		}
	case ScrollDown:
		if w.Has(YScrollable) && w.YOffset+w.ViewH < w.Height {
			w.YOffset++
		}
	}
}

// BlitTo copies the visible part of the display to dst at origin.
func (w *Window) BlitTo(dst *core.Surface, origin core.Point) {
	dst.Blit(w.display, core.NewRect(w.XOffset, w.YOffset, w.ViewW, w.ViewH), origin.X, origin.Y)
}

// SaveMessage commits an edit box's text to its sink. Numeric edit boxes
// commit an integer; every other read mode commits the text. Windows of
// other modes are ignored.
func (w *Window) SaveMessage() error {
	c, ok := w.content.(*EditBoxContent)
	if !ok {
		return nil
	}
	if w.Sink == nil {
		return ErrNoSink
	}
	text := c.IO.Text()
	v := adt.StringValue(text)
	if c.IO.Read == Numeric {
		v = adt.IntValue(atoi(text))
	}
	if err := w.Sink.Put(v); err != nil {
		return fmt.Errorf("ui: save message: %w", err)
	}
	return nil
}

// atoi converts the leading integer of s, after blanks and an optional
// sign. Text without one yields 0; out of range values saturate.
func atoi(s string) int {
	s = strings.TrimLeft(s, " \t")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return n
}
