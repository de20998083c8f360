// Package tcelldrv runs parent windows directly on a tcell screen. The
// driver is both the engine's input source and its display.
package tcelldrv

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/input"
	"github.com/vovakirdan/consolekit/internal/ui"
)

// minFrame paces parents that ask for no delay.
const minFrame = 16 * time.Millisecond

var styles = func() [256]tcell.Style {
	var s [256]tcell.Style
	for i := range s {
		a := core.Attr(i)
		s[i] = tcell.StyleDefault.
			Foreground(tcell.PaletteColor(a.Fg().ANSI())).
			Background(tcell.PaletteColor(a.Bg().ANSI()))
	}
	return s
}()

var tcellKeys = map[tcell.Key]input.Key{
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
}

// Driver feeds tcell events into an input buffer and flushes composed
// surfaces to the screen. The screen must already be initialised.
type Driver struct {
	*input.Buffer
	screen      tcell.Screen
	logger      *log.Logger
	interrupted atomic.Bool
}

// New wraps screen.
func New(screen tcell.Screen, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &Driver{
		Buffer: input.NewBuffer(),
		screen: screen,
		logger: logger,
	}
}

// Show copies s to the screen and shows it.
func (d *Driver) Show(s *core.Surface) error {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.Get(x, y)
			if c.Flags.Has(core.FlagContinuation) {
				continue
			}
			r := c.Glyph
			if r == 0 {
				r = ' '
			}
			d.screen.SetContent(x, y, r, nil, styles[c.Attr])
		}
	}
	d.screen.Show()
	return nil
}

// Interrupted reports whether the user pressed ctrl+c.
func (d *Driver) Interrupted() bool { return d.interrupted.Load() }

// handle translates one tcell event. It returns false once the screen
// has been finalised.
func (d *Driver) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return false
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			d.interrupted.Store(true)
		case tcell.KeyRune:
			d.PushRune(ev.Rune())
		default:
			if k, ok := tcellKeys[ev.Key()]; ok {
				d.PushKey(k, 0)
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		b := ev.Buttons()
		m := input.MouseState{
			X:     x,
			Y:     y,
			Left:  b&tcell.Button1 != 0,
			Right: b&tcell.Button2 != 0,
		}
		switch {
		case b&tcell.WheelUp != 0:
			m.Wheel = -1
		case b&tcell.WheelDown != 0:
			m.Wheel = 1
		}
		d.PushMouse(m)
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return true
}

// pollEvents reads screen events until stop is closed or the screen is
// finalised.
func (d *Driver) pollEvents(stop <-chan struct{}) {
	for {
		ev := d.screen.PollEvent()
		select {
		case <-stop:
			return
		default:
		}
		if !d.handle(ev) {
			return
		}
	}
}

// fit follows a screen resize. A borrowed backdrop belongs to the caller
// and keeps its size.
func (d *Driver) fit(engine *ui.Engine, pw *ui.ParentWindow) {
	out := engine.Output()
	sw, sh := d.screen.Size()
	if sw == out.Width() && sh == out.Height() {
		return
	}
	d.logger.Debug("screen resized", "width", sw, "height", sh)
	out.Resize(sw, sh)
	if back := pw.Back(); back.Owned() && back.Surface() != nil {
		back.Surface().Resize(sw, sh)
	}
	engine.Redraw(pw)
}

// Run activates pw and steps it until it closes, ctrl+c is pressed or
// ctx is cancelled. It returns the engine's info buffer.
func (d *Driver) Run(ctx context.Context, pw *ui.ParentWindow, opts ...ui.EngineOption) ([]byte, error) {
	w, h := d.screen.Size()
	out := core.NewSurface(w, h)
	if back := pw.Back().Surface(); back != nil {
		out.CopyFrom(back)
	}
	opts = append([]ui.EngineOption{ui.WithDisplay(d), ui.WithLogger(d.logger)}, opts...)
	engine := ui.NewEngine(d, out, opts...)

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.pollEvents(stop)
	}()
	defer func() {
		close(stop)
		// Wake the poller.
		_ = d.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-done
	}()

	engine.Activate(pw)
	for engine.IsActive(pw) {
		if d.Interrupted() || ctx.Err() != nil {
			engine.Deactivate(pw)
			break
		}
		d.fit(engine, pw)
		if err := engine.Step(pw); err != nil {
			return engine.Info(), err
		}
		if pw.Delay <= 0 {
			time.Sleep(minFrame)
		}
	}
	return engine.Info(), ctx.Err()
}
