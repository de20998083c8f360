package input

import (
	"testing"
	"time"
)

func TestBufferAsyncEmpty(t *testing.T) {
	b := NewBuffer()
	if k := b.Poll(Async); k != KeyNone {
		t.Errorf("Poll(Async) on empty buffer = %v, expected none", k)
	}
}

func TestBufferFIFO(t *testing.T) {
	b := NewBuffer()
	b.PushRune('h')
	b.PushKey(KeyTab, '\t')
	b.PushMouse(MouseState{X: 3, Y: 4, Left: true})

	if b.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", b.Len())
	}

	if k := b.Poll(Async); k != Key('H') {
		t.Errorf("first Poll = %v, expected H", k)
	}
	if b.LastChar() != 'h' {
		t.Errorf("LastChar() = %q, expected 'h'", b.LastChar())
	}

	if k := b.Poll(Async); k != KeyTab || b.LastKey() != KeyTab {
		t.Errorf("second Poll = %v, expected tab", k)
	}

	if k := b.Poll(Async); k != KeyNone {
		t.Errorf("mouse Poll = %v, expected none", k)
	}
	m := b.Mouse()
	if !m.Left || m.X != 3 || m.Y != 4 || !m.Moved {
		t.Errorf("Mouse() = %+v", m)
	}
	if b.LastKey() != KeyNone || b.LastChar() != 0 {
		t.Error("mouse event should reset last key and char")
	}

	// A poll with no event clears the moved bit but keeps the position.
	b.Poll(Async)
	m = b.Mouse()
	if m.Moved {
		t.Error("Moved should be reset by an empty poll")
	}
	if !m.Left || m.X != 3 {
		t.Error("button and position should persist across polls")
	}
}

func TestBufferMouseSamePositionNotMoved(t *testing.T) {
	b := NewBuffer()
	b.PushMouse(MouseState{X: 1, Y: 1})
	b.PushMouse(MouseState{X: 1, Y: 1, Left: true})
	b.Poll(Async)
	b.Poll(Async)
	if b.Mouse().Moved {
		t.Error("a press at the same position is not a move")
	}
}

func TestBufferSyncBlocks(t *testing.T) {
	b := NewBuffer()
	got := make(chan Key, 1)
	go func() {
		got <- b.Poll(Sync)
	}()

	select {
	case k := <-got:
		t.Fatalf("Poll(Sync) returned %v before any event", k)
	case <-time.After(20 * time.Millisecond):
	}

	b.PushKey(KeyEnter, '\r')
	select {
	case k := <-got:
		if k != KeyEnter {
			t.Errorf("Poll(Sync) = %v, expected enter", k)
		}
	case <-time.After(time.Second):
		t.Fatal("Poll(Sync) did not wake up")
	}
}

func TestBufferCloseWakesSync(t *testing.T) {
	b := NewBuffer()
	done := make(chan Key, 1)
	go func() {
		done <- b.Poll(Sync)
	}()
	b.Close()

	select {
	case k := <-done:
		if k != KeyNone {
			t.Errorf("Poll after Close = %v, expected none", k)
		}
	case <-time.After(time.Second):
		t.Fatal("Close did not wake Poll(Sync)")
	}

	b.PushKey(KeyEnter, 0)
	if b.Len() != 0 {
		t.Error("push after Close should be dropped")
	}
}
