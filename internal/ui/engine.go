package ui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/input"
)

// DefaultInfoSlots is the size of the info buffer hotkey clicks write to.
const DefaultInfoSlots = 16

// Display flushes the composed output surface to the screen.
type Display interface {
	Show(s *core.Surface) error
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithDisplay sets the screen the output surface is flushed to each step.
func WithDisplay(d Display) EngineOption {
	return func(e *Engine) { e.display = d }
}

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(l *log.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSleep replaces the end-of-step pause. Drivers that pace steps with
// their own timer pass a no-op.
func WithSleep(fn func(time.Duration)) EngineOption {
	return func(e *Engine) {
		if fn != nil {
			e.sleep = fn
		}
	}
}

// WithInfo sets the info buffer hotkey clicks are copied into.
func WithInfo(info []byte) EngineOption {
	return func(e *Engine) { e.info = info }
}

// Engine drives parent windows: it polls input, routes it to the focused
// window, composes every window into the output surface and flushes it.
// An Engine is not safe for concurrent use.
type Engine struct {
	src     input.Source
	out     *core.Surface
	display Display
	logger  *log.Logger
	sleep   func(time.Duration)
	info    []byte
}

// NewEngine creates an engine reading src and composing into out, whose
// size is the screen size used for drag clamping.
func NewEngine(src input.Source, out *core.Surface, opts ...EngineOption) *Engine {
	e := &Engine{
		src:    src,
		out:    out,
		logger: log.New(io.Discard),
		sleep:  time.Sleep,
		info:   make([]byte, DefaultInfoSlots),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Output returns the composed surface.
func (e *Engine) Output() *core.Surface { return e.out }

// Info returns the info buffer.
func (e *Engine) Info() []byte { return e.info }

// Source returns the input source.
func (e *Engine) Source() input.Source { return e.src }

// Activate marks pw running and draws it.
func (e *Engine) Activate(pw *ParentWindow) {
	if pw.closed || !pw.made {
		e.logger.Warn("activate: parent window not made", "closed", pw.closed)
		return
	}
	pw.state |= WindowsActive
	e.Redraw(pw)
}

// Deactivate stops pw's loop.
func (e *Engine) Deactivate(pw *ParentWindow) {
	pw.state &^= WindowsActive
}

// IsActive reports whether pw's loop should keep running.
func (e *Engine) IsActive(pw *ParentWindow) bool {
	return pw.Active()
}

// Run steps pw until it is deactivated.
func (e *Engine) Run(pw *ParentWindow) error {
	for e.IsActive(pw) {
		if err := e.Step(pw); err != nil {
			return err
		}
	}
	return nil
}

// Step performs one iteration of pw's loop. It returns an error only when
// the display flush fails; a parent that is not active is left untouched.
func (e *Engine) Step(pw *ParentWindow) error {
	if !pw.Active() {
		return nil
	}

	if pw.Grabbed() && e.src.Mouse().Moved {
		e.out.Clear(core.Blank)
		if back := pw.back.Surface(); back != nil {
			e.out.CopyFrom(back)
		}
		e.reposition(pw)
		e.Redraw(pw)
	}

	key := e.src.Poll(input.Async)

	for _, w := range pw.windows {
		if w.Has(ActiveWithoutFocus) && !w.HasFocus() {
			e.updateContents(w)
			e.drawWindow(pw, w)
		}
	}

	e.sendInformation(pw)
	focused := pw.Focused()
	e.updateContents(focused)
	e.drawWindow(pw, focused)

	if e.src.Mouse().Left {
		e.grab(pw)
	} else {
		pw.state &^= Grabbed
	}

	if key != input.KeyNone {
		if key == pw.FocusKey {
			pw.SwitchFocus()
		}
		if key == pw.CloseKey {
			e.Deactivate(pw)
		}
		if key == pw.ConfirmKey {
			e.confirm(pw)
		}
	}

	if e.display != nil {
		if err := e.display.Show(e.out); err != nil {
			return err
		}
	}
	if pw.Delay > 0 {
		e.sleep(pw.Delay)
	}
	return nil
}

// confirm commits every focused or save-without-focus edit box.
func (e *Engine) confirm(pw *ParentWindow) {
	for i, w := range pw.windows {
		if !w.HasFocus() && !w.Has(SaveWithoutFocus) {
			continue
		}
		if w.Mode() != ModeEditBox || w.Sink == nil {
			continue
		}
		if err := w.SaveMessage(); err != nil {
			e.logger.Error("confirm: save message failed", "window", i, "err", err)
		}
	}
}

// sendInformation applies the last input to the focused window.
func (e *Engine) sendInformation(pw *ParentWindow) {
	w := pw.Focused()
	key := e.src.LastKey()

	switch c := w.content.(type) {
	case *BasicContent:
		w.Scroll(scrollFor(key))
	case *EditBoxContent:
		w.Scroll(scrollFor(key))
		if key == pw.FocusKey || key == pw.CloseKey || key == pw.ConfirmKey {
			return
		}
		if key == input.KeyBackspace {
			w.backspace(c.IO)
			return
		}
		if ch := e.src.LastChar(); ch != 0 {
			w.typeRune(c.IO, ch)
		}
	case *MenuContent:
		h := c.Menu.handlerFor(key)
		if h == nil || key == input.KeyNone {
			return
		}
		h.Invoke(c.Menu, w)
		for _, r := range w.Receivers {
			target := pw.Window(r.Window)
			if target == nil {
				e.logger.Warn("broadcast: receiver out of range", "window", r.Window)
				continue
			}
			if err := target.Broadcast(r.Instruction, c.Menu.Chosen); err != nil {
				e.logger.Warn("broadcast failed", "window", r.Window, "instruction", r.Instruction, "err", err)
			}
		}
	case *MessageBoxContent:
		w.Scroll(scrollFor(key))
		if key != input.KeyNone {
			c.IO.Write = WriteAll
		}
	default:
		e.logger.Warn("send information: unsupported content", "content", w.content)
	}
}

// updateContents advances a window's own content by one tick.
func (e *Engine) updateContents(w *Window) {
	switch c := w.content.(type) {
	case *BasicContent:
		c.Visuals.Render(w)
	case *EditBoxContent:
		w.blinkCaret(c.IO)
	case *MenuContent:
	case *MessageBoxContent:
		w.reveal(c.IO)
	default:
		e.logger.Warn("update contents: unsupported content", "content", w.content)
	}
}

// Redraw draws pw's border skin and every window at pw's location.
func (e *Engine) Redraw(pw *ParentWindow) {
	for y := 0; y < pw.Height; y++ {
		for x := 0; x < pw.Width; x++ {
			code := pw.backData[y*pw.Width+x]
			attr := pw.Background
			if code != SkinBackground {
				attr = pw.Border
			}
			e.out.Set(pw.Location.X+x, pw.Location.Y+y, core.Cell{Glyph: code.Glyph(), Attr: attr})
		}
	}
	for _, w := range pw.windows {
		e.drawWindow(pw, w)
	}
}

func (e *Engine) drawWindow(pw *ParentWindow, w *Window) {
	w.BlitTo(e.out, pw.Location.Add(w.Coord))
}

// grab starts a drag when the press lands on the border skin of a movable
// parent, and otherwise reads a hotkey.
func (e *Engine) grab(pw *ParentWindow) {
	m := e.src.Mouse()
	if !pw.Bounds().Contains(m.X, m.Y) {
		return
	}
	local := core.Point{X: m.X, Y: m.Y}.Sub(pw.Location)
	if pw.backData[local.Y*pw.Width+local.X] != SkinBackground && !pw.Fixed() {
		if !pw.Grabbed() {
			pw.state |= Grabbed
			pw.grab = local
		}
		return
	}
	e.loadHotKey(pw, m)
}

// reposition follows the mouse from the grab point, keeping the parent
// entirely on the output surface.
func (e *Engine) reposition(pw *ParentWindow) {
	m := e.src.Mouse()
	x := m.X - pw.grab.X
	y := m.Y - pw.grab.Y
	pw.Location.X = core.Clamp(x, 0, core.Max(e.out.Width()-pw.Width, 0))
	pw.Location.Y = core.Clamp(y, 0, core.Max(e.out.Height()-pw.Height, 0))
}

// loadHotKey copies the data of a hotkey cell under the mouse into the
// info slot of the window that shows it.
func (e *Engine) loadHotKey(pw *ParentWindow, m input.MouseState) {
	for _, w := range pw.windows {
		r := w.Bounds()
		r.X += pw.Location.X
		r.Y += pw.Location.Y
		if !r.Contains(m.X, m.Y) {
			continue
		}
		c := w.display.Get(m.X-r.X+w.XOffset, m.Y-r.Y+w.YOffset)
		if c.Flags.Has(core.FlagHotkey) && w.Data >= 0 && w.Data < len(e.info) {
			e.info[w.Data] = c.Data
		}
		return
	}
}
