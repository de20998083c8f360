package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/consolekit/internal/adt"
	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/input"
	"github.com/vovakirdan/consolekit/internal/layout"
	"github.com/vovakirdan/consolekit/internal/registry"
	"github.com/vovakirdan/consolekit/internal/storage"
	"github.com/vovakirdan/consolekit/internal/ui"
)

func init() {
	registry.Register(registry.Program{ID: "tui-tiny", Title: "Tiny"}, func(env layout.Env) (*ui.ParentWindow, error) {
		return tinyParent(env.Backdrop)
	})
}

func tinyParent(back ui.Backdrop) (*ui.ParentWindow, error) {
	w, err := ui.NewWindow(ui.WindowSpec{
		Coord:   core.Point{X: 1, Y: 1},
		Width:   2,
		Height:  1,
		Content: &ui.BasicContent{},
		State:   ui.CanReceiveFocus,
	})
	if err != nil {
		return nil, err
	}
	return ui.Build(ui.ParentSpec{
		Width: 4, Height: 3, Windows: []*ui.Window{w}, Back: back,
		Delay: 20 * time.Millisecond, FocusKey: input.KeyTab, CloseKey: input.KeyEscape,
	}, 0, 0, 0)
}

func mustTiny(t *testing.T) *ui.ParentWindow {
	t.Helper()
	pw, err := tinyParent(ui.Backdrop{})
	if err != nil {
		t.Fatalf("tinyParent() error: %v", err)
	}
	return pw
}

func TestRenderSurfacePlainText(t *testing.T) {
	s := core.NewSurface(3, 2)
	s.DrawText(0, 0, "abc", core.DefaultAttr)
	s.DrawText(0, 1, "d", core.MakeAttr(core.Yellow, core.Blue))

	got := RenderSurface(s)
	// Tests run without a terminal, so lipgloss drops the colours.
	if got != "abc\nd  " {
		t.Errorf("RenderSurface() = %q", got)
	}
}

func TestPushKey(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.KeyMsg
		keys  []input.Key
		chars []rune
	}{
		{"runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a1")}, []input.Key{input.KeyA, input.Key('1')}, []rune("a1")},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, []input.Key{input.KeySpace}, []rune(" ")},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []input.Key{input.KeyTab}, []rune{0}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []input.Key{input.KeyEnter}, []rune{0}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, []input.Key{input.KeyEscape}, []rune{0}},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, []input.Key{input.KeyLeft}, []rune{0}},
		{"unmapped", tea.KeyMsg{Type: tea.KeyF1}, nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := input.NewBuffer()
			pushKey(buf, tc.msg)
			if buf.Len() != len(tc.keys) {
				t.Fatalf("queued %d events, expected %d", buf.Len(), len(tc.keys))
			}
			for i, want := range tc.keys {
				if got := buf.Poll(input.Async); got != want {
					t.Errorf("event %d key = %v, expected %v", i, got, want)
				}
				if got := buf.LastChar(); got != tc.chars[i] {
					t.Errorf("event %d char = %q, expected %q", i, got, tc.chars[i])
				}
			}
		})
	}
}

func TestMouseTracker(t *testing.T) {
	var tr mouseTracker

	m := tr.state(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Left || m.X != 3 || m.Y != 4 {
		t.Errorf("press = %+v", m)
	}
	m = tr.state(tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if !m.Left || m.X != 5 {
		t.Errorf("drag should keep the button down: %+v", m)
	}
	m = tr.state(tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionRelease})
	if m.Left {
		t.Errorf("release = %+v", m)
	}
	m = tr.state(tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.Wheel != 1 || m.Left {
		t.Errorf("wheel = %+v", m)
	}
}

func TestModelStepsUntilClosed(t *testing.T) {
	pw := mustTiny(t)
	m := NewModel(pw, Options{Name: "tiny", Width: 10, Height: 5})

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start ticking")
	}
	if !pw.Active() {
		t.Fatal("Init() should activate the parent")
	}
	if m.View() == "" {
		t.Error("View() should render the surface")
	}

	next, cmd := m.Update(TickMsg{Run: m.run})
	m = next.(Model)
	if cmd == nil || m.Done() {
		t.Fatal("tick on an active parent should schedule the next one")
	}

	if _, cmd := m.Update(TickMsg{Run: m.run + 1}); cmd != nil {
		t.Error("ticks of another run should be ignored")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	next, _ = m.Update(TickMsg{Run: m.run})
	m = next.(Model)
	if !m.Done() || m.Interrupted() {
		t.Errorf("close key: done %v interrupted %v", m.Done(), m.Interrupted())
	}
	if m.View() != "" {
		t.Error("View() should be empty once done")
	}
}

func TestModelQuitKeyInterrupts(t *testing.T) {
	pw := mustTiny(t)
	m := NewModel(pw, Options{Width: 10, Height: 5})
	m.Init()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	if cmd == nil || !m.Interrupted() || pw.Active() {
		t.Errorf("ctrl+c: interrupted %v active %v", m.Interrupted(), pw.Active())
	}
}

func TestModelResize(t *testing.T) {
	pw := mustTiny(t)
	back := core.NewSurface(10, 5)
	m := NewModel(pw, Options{Width: 10, Height: 5, Back: back})
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 8})
	m = next.(Model)
	if out := m.engine.Output(); out.Width() != 20 || out.Height() != 8 {
		t.Errorf("output = %dx%d", out.Width(), out.Height())
	}
	if back.Width() != 20 {
		t.Errorf("backdrop width = %d", back.Width())
	}
	if strings.Count(m.View(), "\n") != 7 {
		t.Error("view should have 8 rows")
	}
}

func TestMenuModelSelects(t *testing.T) {
	m := NewMenuModel(80, 24)
	idx := -1
	for i, p := range m.items {
		if p.ID == "tui-tiny" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatal("registered program missing from the menu")
	}

	var next tea.Model = m
	for i := 0; i < idx; i++ {
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if cmd == nil || m.Selected() == nil || m.Selected().ID != "tui-tiny" {
		t.Errorf("Selected() = %v", m.Selected())
	}
	if !strings.Contains(m.View(), "Tiny") {
		t.Error("menu should list program titles")
	}
}

type fakeEntries struct {
	windows []storage.WindowSummary
	entries map[string][]storage.Entry
	err     error
}

func (f fakeEntries) Windows() ([]storage.WindowSummary, error) { return f.windows, f.err }

func (f fakeEntries) Recent(window string, limit int) ([]storage.Entry, error) {
	return f.entries[window], f.err
}

func TestEntriesModel(t *testing.T) {
	src := fakeEntries{
		windows: []storage.WindowSummary{{Window: "name", Count: 1}, {Window: "notes", Count: 2}},
		entries: map[string][]storage.Entry{
			"name":  {{ID: 1, Window: "name", Type: adt.TypeString, Text: "ada"}},
			"notes": {{ID: 3, Window: "notes", Type: adt.TypeInt, Number: 7}, {ID: 2, Window: "notes", Type: adt.TypeString, Text: "x"}},
		},
	}

	m := NewEntriesModel(src, 100, 30)
	if m.current() != "name" || len(m.entries) != 1 {
		t.Fatalf("initial window %q with %d entries", m.current(), len(m.entries))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(EntriesModel)
	if m.current() != "notes" || len(m.table.Rows()) != 2 || m.table.Rows()[0][2] != "7" {
		t.Errorf("after tab: %q rows %v", m.current(), m.table.Rows())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(EntriesModel)
	if m.current() != "name" {
		t.Errorf("shift+tab should go back, got %q", m.current())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || !next.(EntriesModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestEntriesModelShowsErrors(t *testing.T) {
	m := NewEntriesModel(fakeEntries{err: errors.New("disk gone")}, 60, 20)
	if !strings.Contains(m.View(), "disk gone") {
		t.Error("load error should be shown")
	}
	if v := NewEntriesModel(nil, 60, 20).View(); !strings.Contains(v, "No entries") {
		t.Error("nil source should show the empty message")
	}
}

func TestSessionRunsFixedProgram(t *testing.T) {
	var s tea.Model = NewSessionModel(SessionConfig{Width: 20, Height: 10, Program: "tui-tiny"})

	msg := s.Init()()
	s, cmd := s.Update(msg)
	sm := s.(SessionModel)
	if sm.program == nil || cmd == nil {
		t.Fatal("session should start the fixed program")
	}
	run := sm.program.run

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s, cmd = s.Update(TickMsg{Run: run})
	if !s.(SessionModel).quitting || cmd == nil {
		t.Error("closing a fixed program should end the session")
	}
}

func TestSessionReturnsToMenu(t *testing.T) {
	var s tea.Model = NewSessionModel(SessionConfig{Width: 20, Height: 10})

	s, _ = s.Update(startMsg("missing"))
	if sm := s.(SessionModel); sm.status == "" || sm.quitting {
		t.Error("unknown program should report a status and stay in the menu")
	}

	s, _ = s.Update(startMsg("tui-tiny"))
	run := s.(SessionModel).program.run
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s, _ = s.Update(TickMsg{Run: run})

	sm := s.(SessionModel)
	if sm.program != nil || sm.quitting {
		t.Error("closing a picked program should return to the menu")
	}

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	if s.(SessionModel).entries == nil {
		t.Error("tab should open the entries browser")
	}
}
