package ui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/input"
)

// Backdrop is the surface restored behind a parent window while it is
// dragged. An owned backdrop belongs to the parent window and is released
// by Close; a borrowed one is a view of a caller's surface and is only
// dropped.
type Backdrop struct {
	surface *core.Surface
	owned   bool
}

// OwnedBackdrop hands s over to the parent window.
func OwnedBackdrop(s *core.Surface) Backdrop {
	return Backdrop{surface: s, owned: true}
}

// BorrowedBackdrop lets the parent window read s without owning it.
func BorrowedBackdrop(s *core.Surface) Backdrop {
	return Backdrop{surface: s}
}

// Surface returns the backdrop surface, or nil.
func (b Backdrop) Surface() *core.Surface { return b.surface }

// Owned reports whether the parent window owns the surface.
func (b Backdrop) Owned() bool { return b.owned }

// ParentSpec describes a parent window to build.
type ParentSpec struct {
	Width, Height int
	Separators    Separators
	Windows       []*Window
	Back          Backdrop
	Delay         time.Duration
	FocusKey      input.Key
	CloseKey      input.Key
	ConfirmKey    input.Key
	Border        core.Attr
	Background    core.Attr
	Fixed         bool
}

// ParentWindow owns a fixed set of windows drawn over a bordered backdrop.
type ParentWindow struct {
	Location      core.Point
	Width, Height int
	Delay         time.Duration
	FocusKey      input.Key
	CloseKey      input.Key
	ConfirmKey    input.Key
	Border        core.Attr
	Background    core.Attr

	back       Backdrop
	backData   []SkinCode
	separators Separators
	windows    []*Window
	focus      int
	state      ParentState
	grab       core.Point
	made       bool
	closed     bool
}

// NewParentWindow validates spec. The result is not drawable until Make.
func NewParentWindow(spec ParentSpec) (*ParentWindow, error) {
	if spec.Width < 2 || spec.Height < 2 {
		return nil, fmt.Errorf("%w: parent window %dx%d", ErrGeometry, spec.Width, spec.Height)
	}
	if len(spec.Windows) == 0 {
		return nil, ErrNoWindows
	}
	for i, w := range spec.Windows {
		if w == nil {
			return nil, fmt.Errorf("%w: window %d is nil", ErrUnsupported, i)
		}
		if w.Coord.X < 0 || w.Coord.Y < 0 || w.Coord.X+w.ViewW > spec.Width || w.Coord.Y+w.ViewH > spec.Height {
			return nil, fmt.Errorf("%w: window %d at %v (%dx%d) leaves the %dx%d parent",
				ErrGeometry, i, w.Coord, w.ViewW, w.ViewH, spec.Width, spec.Height)
		}
		for j, r := range w.Receivers {
			if r.Window < 0 || r.Window >= len(spec.Windows) {
				return nil, fmt.Errorf("%w: window %d receiver %d targets window %d", ErrIndexOutOfRange, i, j, r.Window)
			}
			if r.Instruction == nil {
				return nil, fmt.Errorf("%w: window %d receiver %d has no instruction", ErrUnsupported, i, j)
			}
			if target := spec.Windows[r.Window].Mode(); r.Instruction.Target() != target {
				return nil, fmt.Errorf("%w: window %d receiver %d sends %s to a %s window",
					ErrModeMismatch, i, j, r.Instruction, target)
			}
		}
	}

	pw := &ParentWindow{
		Width:      spec.Width,
		Height:     spec.Height,
		Delay:      spec.Delay,
		FocusKey:   spec.FocusKey,
		CloseKey:   spec.CloseKey,
		ConfirmKey: spec.ConfirmKey,
		Border:     spec.Border,
		Background: spec.Background,
		back:       spec.Back,
		separators: spec.Separators,
		windows:    append([]*Window(nil), spec.Windows...),
	}
	if spec.Fixed {
		pw.state |= Fixed
	}
	return pw, nil
}

// Make computes the border skin, draws every menu's entries, places the
// parent at (x, y) and gives focus to window focus. Nothing changes when
// it returns an error.
func (pw *ParentWindow) Make(x, y, focus int) error {
	if pw.closed {
		return ErrClosed
	}
	if focus < 0 || focus >= len(pw.windows) {
		return fmt.Errorf("%w: focus %d of %d windows", ErrIndexOutOfRange, focus, len(pw.windows))
	}
	if !pw.windows[focus].Has(CanReceiveFocus) {
		return fmt.Errorf("%w: window %d", ErrFocusIneligible, focus)
	}

	pw.backData = ComputeBackData(pw.Width, pw.Height, pw.separators)
	for _, w := range pw.windows {
		if m := w.Menu(); m != nil {
			initMenu(w, m)
		}
		w.State &^= HasFocus
	}
	pw.Location = core.Point{X: x, Y: y}
	pw.assignFocus(focus)
	pw.made = true
	return nil
}

// Build is NewParentWindow followed by Make.
func Build(spec ParentSpec, x, y, focus int) (*ParentWindow, error) {
	pw, err := NewParentWindow(spec)
	if err != nil {
		return nil, err
	}
	if err := pw.Make(x, y, focus); err != nil {
		return nil, err
	}
	return pw, nil
}

func (pw *ParentWindow) assignFocus(i int) {
	pw.windows[i].State |= HasFocus
	pw.focus = i
}

// SwitchFocus moves focus to the next window that can receive it,
// wrapping around. Focus stays put when no other window is eligible.
func (pw *ParentWindow) SwitchFocus() {
	n := len(pw.windows)
	for step := 1; step < n; step++ {
		i := (pw.focus + step) % n
		if pw.windows[i].Has(CanReceiveFocus) {
			pw.windows[pw.focus].State &^= HasFocus
			pw.assignFocus(i)
			return
		}
	}
}

// Focus returns the index of the focused window.
func (pw *ParentWindow) Focus() int { return pw.focus }

// Focused returns the focused window.
func (pw *ParentWindow) Focused() *Window { return pw.windows[pw.focus] }

// Windows returns the child windows in index order.
func (pw *ParentWindow) Windows() []*Window { return pw.windows }

// Window returns child i, or nil when out of range.
func (pw *ParentWindow) Window(i int) *Window {
	if i < 0 || i >= len(pw.windows) {
		return nil
	}
	return pw.windows[i]
}

// BackData returns the precomputed skin, row-major.
func (pw *ParentWindow) BackData() []SkinCode { return pw.backData }

// Back returns the backdrop.
func (pw *ParentWindow) Back() Backdrop { return pw.back }

// Bounds returns the screen footprint.
func (pw *ParentWindow) Bounds() core.Rect {
	return core.NewRect(pw.Location.X, pw.Location.Y, pw.Width, pw.Height)
}

// Active reports whether the engine loop should keep running.
func (pw *ParentWindow) Active() bool { return pw.state&WindowsActive != 0 }

// Grabbed reports whether the parent is being dragged.
func (pw *ParentWindow) Grabbed() bool { return pw.state&Grabbed != 0 }

// Fixed reports whether the parent is immovable.
func (pw *ParentWindow) Fixed() bool { return pw.state&Fixed != 0 }

// Close deactivates the parent window, releases an owned backdrop and
// every unshared window display, and drops a borrowed backdrop.
func (pw *ParentWindow) Close() {
	if pw.closed {
		return
	}
	pw.state = 0
	if pw.back.owned && pw.back.surface != nil {
		pw.back.surface.Resize(0, 0)
	}
	pw.back = Backdrop{}
	for _, w := range pw.windows {
		if !w.shared && w.display != nil {
			w.display.Resize(0, 0)
		}
		w.display = nil
	}
	pw.backData = nil
	pw.closed = true
}

// Closed reports whether Close has been called.
func (pw *ParentWindow) Closed() bool { return pw.closed }
