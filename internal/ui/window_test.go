package ui

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/consolekit/internal/adt"
	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/visual"
)

func TestScrollClamping(t *testing.T) {
	w, err := NewWindow(WindowSpec{
		ViewW: 4, ViewH: 2,
		Width: 10, Height: 5,
		Content: &BasicContent{},
		State:   XScrollable | YScrollable,
	})
	if err != nil {
		t.Fatalf("NewWindow() error: %v", err)
	}

	for i := 0; i < 20; i++ {
		w.Scroll(ScrollRight, ScrollDown)
		if w.XOffset+w.ViewW > w.Width || w.YOffset+w.ViewH > w.Height {
			t.Fatalf("scrolled past content: offset (%d,%d)", w.XOffset, w.YOffset)
		}
	}
	if w.XOffset != 6 || w.YOffset != 3 {
		t.Errorf("offset after scrolling right/down = (%d,%d), expected (6,3)", w.XOffset, w.YOffset)
	}

	for i := 0; i < 20; i++ {
		w.Scroll(ScrollLeft, ScrollUp)
	}
	if w.XOffset != 0 || w.YOffset != 0 {
		t.Errorf("offset after scrolling left/up = (%d,%d), expected (0,0)", w.XOffset, w.YOffset)
	}

	w.State = XScrollable
	w.Scroll(ScrollRight, ScrollDown)
	if w.XOffset != 1 || w.YOffset != 0 {
		t.Errorf("only the x axis should scroll, got (%d,%d)", w.XOffset, w.YOffset)
	}
}

func TestNewWindowValidation(t *testing.T) {
	tests := []struct {
		name string
		spec WindowSpec
		err  error
	}{
		{"zero size", WindowSpec{Content: &BasicContent{}}, ErrGeometry},
		{"viewport too big", WindowSpec{Width: 2, Height: 2, ViewW: 3, Content: &BasicContent{}}, ErrGeometry},
		{"no content", WindowSpec{Width: 2, Height: 2}, ErrUnsupported},
		{"limit too big", WindowSpec{Width: 2, Height: 2, Content: &EditBoxContent{IO: NewTextIO(5)}}, ErrGeometry},
		{"negative limit", WindowSpec{Width: 2, Height: 2, Content: &EditBoxContent{IO: NewTextIO(-5)}}, ErrGeometry},
		{"menu without items", WindowSpec{Width: 2, Height: 2, Content: &MenuContent{Menu: &Menu{}}}, ErrGeometry},
		{"shared display size", WindowSpec{Width: 2, Height: 2, Content: &BasicContent{}, Display: core.NewSurface(3, 3)}, ErrGeometry},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewWindow(tc.spec); !errors.Is(err, tc.err) {
				t.Errorf("NewWindow() error = %v, expected %v", err, tc.err)
			}
		})
	}
}

func TestTextIOCursorClamping(t *testing.T) {
	io := NewTextIO(10)
	if !io.Advance(9) || io.Cursor() != 9 {
		t.Fatalf("Advance(9) -> %d", io.Cursor())
	}
	if io.Advance(2) {
		t.Error("Advance(2) from 9 with limit 10 should not move")
	}
	if io.Cursor() != 9 {
		t.Errorf("cursor = %d, expected 9", io.Cursor())
	}
	if io.Advance(1) {
		t.Error("Advance(1) from 9 would reach the limit")
	}
	if !io.Regress(9) || io.Cursor() != 0 {
		t.Errorf("Regress(9) -> %d", io.Cursor())
	}
	if io.Regress(1) || io.Cursor() != 0 {
		t.Error("Regress past zero should not move")
	}
}

func editBox(t *testing.T, limit int, read ReadMode, sink adt.Sink) *Window {
	t.Helper()
	io := NewTextIO(limit)
	io.Read = read
	w, err := NewWindow(WindowSpec{
		Width:   limit,
		Height:  1,
		Content: &EditBoxContent{IO: io},
		State:   CanReceiveFocus,
		Sink:    sink,
	})
	if err != nil {
		t.Fatalf("NewWindow() error: %v", err)
	}
	return w
}

func TestEditBoxTyping(t *testing.T) {
	w := editBox(t, 4, ReadAll, nil)
	io := w.IO()
	for _, r := range "abcdef" {
		w.typeRune(io, r)
	}
	if io.Text() != "abcf" {
		t.Errorf("Text() = %q, expected %q (last cell is overwritten at the limit)", io.Text(), "abcf")
	}
	if w.Display().Row(0) != "abcf" {
		t.Errorf("display = %q", w.Display().Row(0))
	}

	w.backspace(io)
	if io.Text() != "abc" || io.Cursor() != 3 {
		t.Errorf("after backspace at limit: text %q cursor %d", io.Text(), io.Cursor())
	}
	w.backspace(io)
	if io.Text() != "ab" || io.Cursor() != 2 {
		t.Errorf("after second backspace: text %q cursor %d", io.Text(), io.Cursor())
	}
	w.backspace(io)
	w.backspace(io)
	w.backspace(io)
	if io.Text() != "" || io.Cursor() != 0 {
		t.Errorf("after clearing: text %q cursor %d", io.Text(), io.Cursor())
	}
}

func TestReadModeFilters(t *testing.T) {
	tests := []struct {
		mode     ReadMode
		input    string
		expected string
	}{
		{ReadAll, "a1 !", "a1 !"},
		{AlphaOnly, "a1 b!", "ab"},
		{Numeric, "a1 2!", "12"},
		{PrintOnly, "a\x01b", "ab"},
	}

	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			w := editBox(t, 10, tc.mode, nil)
			for _, r := range tc.input {
				w.typeRune(w.IO(), r)
			}
			if got := w.IO().Text(); got != tc.expected {
				t.Errorf("Text() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestSaveMessage(t *testing.T) {
	var l adt.List[adt.Value]

	w := editBox(t, 8, ReadAll, adt.ListSink{L: &l})
	for _, r := range "hello" {
		w.typeRune(w.IO(), r)
	}
	if err := w.SaveMessage(); err != nil {
		t.Fatalf("SaveMessage() error: %v", err)
	}

	n := editBox(t, 8, Numeric, adt.ListSink{L: &l})
	for _, r := range "42" {
		n.typeRune(n.IO(), r)
	}
	if err := n.SaveMessage(); err != nil {
		t.Fatalf("SaveMessage() error: %v", err)
	}

	got := l.Slice()
	if len(got) != 2 {
		t.Fatalf("sink has %d values, expected 2", len(got))
	}
	if got[0].Type != adt.TypeString || got[0].Data != "hello" {
		t.Errorf("first value = %+v", got[0])
	}
	if got[1].Type != adt.TypeInt || got[1].Data != 42 {
		t.Errorf("second value = %+v", got[1])
	}

	if err := editBox(t, 4, ReadAll, nil).SaveMessage(); !errors.Is(err, ErrNoSink) {
		t.Errorf("SaveMessage without sink error = %v, expected ErrNoSink", err)
	}
}

func TestAtoi(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{"  -12x", -12},
		{"+7", 7},
		{"abc", 0},
		{"-", 0},
		{"", 0},
		{"99999999999999999999999", math.MaxInt},
		{"-99999999999999999999999", math.MinInt},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := atoi(tc.in); got != tc.want {
				t.Errorf("atoi(%q) = %d, expected %d", tc.in, got, tc.want)
			}
		})
	}
}

func messageBox(t *testing.T, w, h int, mode WriteMode, text string) *Window {
	t.Helper()
	io := NewTextIO(0)
	io.Write = mode
	io.Load(text)
	win, err := NewWindow(WindowSpec{Width: w, Height: h, Content: &MessageBoxContent{IO: io}})
	if err != nil {
		t.Fatalf("NewWindow() error: %v", err)
	}
	return win
}

func TestMessageBoxWriteWordWraps(t *testing.T) {
	w := messageBox(t, 5, 2, WriteWord, "hi there")
	io := w.IO()

	w.reveal(io)
	if w.Display().Row(0) != "hi   " || w.Display().Row(1) != "     " {
		t.Errorf("after first word: %q / %q", w.Display().Row(0), w.Display().Row(1))
	}

	w.reveal(io)
	if w.Display().Row(0) != "hi   " || w.Display().Row(1) != "there" {
		t.Errorf("after second word: %q / %q", w.Display().Row(0), w.Display().Row(1))
	}
	if !io.Done() {
		t.Error("message should be fully revealed")
	}
}

func TestMessageBoxWriteCharacter(t *testing.T) {
	w := messageBox(t, 5, 2, WriteCharacter, "hi there")
	io := w.IO()

	for i := 0; i < 3; i++ {
		w.reveal(io)
	}
	if w.Display().Row(0) != "hi   " {
		t.Errorf("after three characters: %q", w.Display().Row(0))
	}
	// The first character of "there" wraps the whole word.
	w.reveal(io)
	if w.Display().Row(1) != "t    " {
		t.Errorf("after wrap: %q", w.Display().Row(1))
	}
	for !io.Done() {
		w.reveal(io)
	}
	if w.Display().Row(1) != "there" {
		t.Errorf("final row = %q", w.Display().Row(1))
	}
}

func TestMessageBoxWriteAllAndLongWord(t *testing.T) {
	w := messageBox(t, 4, 3, WriteAll, "a verylongword b")
	w.reveal(w.IO())
	if !w.IO().Done() {
		t.Fatal("WriteAll should drain the message in one tick")
	}
	if w.Display().Row(0) != "a   " {
		t.Errorf("row 0 = %q", w.Display().Row(0))
	}
}

func TestBroadcastBasic(t *testing.T) {
	frames := make([]*visual.Image, 5)
	for i := range frames {
		frames[i] = visual.NewImage(1, 1)
	}
	anim := &visual.Animation{States: []visual.AnimationState{{Frames: frames}}}
	pat := visual.NewPattern(visual.NewImage(2, 1))
	w, err := NewWindow(WindowSpec{
		Width: 5, Height: 1,
		Content: &BasicContent{Visuals: &visual.Visuals{
			Animations: []*visual.Animation{anim},
			Patterns:   []*visual.Pattern{pat},
		}},
	})
	if err != nil {
		t.Fatalf("NewWindow() error: %v", err)
	}

	if err := w.Broadcast(IndexFrame, 3); err != nil {
		t.Fatalf("Broadcast() error: %v", err)
	}
	if anim.Frame() != 3 {
		t.Errorf("frame = %d, expected 3", anim.Frame())
	}
	_ = w.Broadcast(IndexFrame, 12)
	if anim.Frame() != 4 {
		t.Errorf("frame = %d, expected clamp to 4", anim.Frame())
	}
	_ = w.Broadcast(IncFrame, 0)
	if anim.Frame() != 0 {
		t.Errorf("frame past the end = %d, expected 0", anim.Frame())
	}
	_ = w.Broadcast(SwitchPatternLock, 0)
	if !pat.Locked {
		t.Error("pattern should be locked")
	}

	if err := w.Broadcast(NextItem, 0); !errors.Is(err, ErrModeMismatch) {
		t.Errorf("menu instruction error = %v, expected ErrModeMismatch", err)
	}
}

func TestBroadcastModeCycling(t *testing.T) {
	e := editBox(t, 4, ReadAll, nil)
	_ = e.Broadcast(DecReadMode, 0)
	if e.IO().Read != PrintOnly {
		t.Errorf("read mode = %v, expected wrap to print", e.IO().Read)
	}
	_ = e.Broadcast(IndexReadMode, 6)
	if e.IO().Read != Numeric {
		t.Errorf("read mode = %v, expected numeric", e.IO().Read)
	}
	io := e.IO()
	io.Read = ReadAll
	e.typeRune(io, 'x')
	if err := e.Broadcast(AddCharacter, '7'); err != nil || io.Text() != "x" {
		t.Errorf("AddCharacter: err %v text %q", err, io.Text())
	}
	if err := e.Broadcast(RemoveCharacter, 0); err != nil || io.Text() != "x" {
		t.Errorf("RemoveCharacter: err %v text %q", err, io.Text())
	}

	m := messageBox(t, 4, 1, WriteAll, "x")
	_ = m.Broadcast(IncWriteMode, 0)
	_ = m.Broadcast(IncWriteMode, 0)
	_ = m.Broadcast(IncWriteMode, 0)
	if m.IO().Write != WriteAll {
		t.Errorf("write mode = %v, expected wrap to all", m.IO().Write)
	}
}

func TestBroadcastMessageSelection(t *testing.T) {
	w := messageBox(t, 6, 1, WriteAll, "")
	w.IO().Load("first", "second")
	w.reveal(w.IO())
	if w.Display().Row(0) != "first " {
		t.Fatalf("row = %q", w.Display().Row(0))
	}
	_ = w.Broadcast(NextMessage, 0)
	w.reveal(w.IO())
	if w.Display().Row(0) != "second" || w.IO().Message() != 1 {
		t.Errorf("after next: %q message %d", w.Display().Row(0), w.IO().Message())
	}
	_ = w.Broadcast(NextMessage, 0)
	if w.IO().Message() != 0 {
		t.Errorf("next past the end should wrap, got %d", w.IO().Message())
	}
}
