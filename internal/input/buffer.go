package input

import "sync"

type event struct {
	key   Key
	char  rune
	mouse *MouseState
}

// Buffer is a FIFO Source. Drivers push events from their own goroutine;
// the engine polls from its loop. The zero value is not usable; call
// NewBuffer.
type Buffer struct {
	mu      sync.Mutex
	queue   []event
	notify  chan struct{}
	closed  bool
	lastKey Key
	lastCh  rune
	mouse   MouseState
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{notify: make(chan struct{}, 1)}
}

// PushKey queues a key event. ch is the character the key produced, or 0.
func (b *Buffer) PushKey(k Key, ch rune) {
	b.push(event{key: k, char: ch})
}

// PushRune queues the key event a typed character produces.
func (b *Buffer) PushRune(r rune) {
	k, ok := KeyForRune(r)
	if !ok {
		return
	}
	b.PushKey(k, r)
}

// PushMouse queues a mouse state change.
func (b *Buffer) PushMouse(m MouseState) {
	b.push(event{mouse: &m})
}

func (b *Buffer) push(e event) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.queue = append(b.queue, e)
	select {
	case b.notify <- struct{}{}:
	default:
	}
	b.mu.Unlock()
}

// Len returns the number of queued events.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Close wakes any blocked Sync poll; later polls return KeyNone.
func (b *Buffer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.notify)
	}
}

// Poll consumes one event.
func (b *Buffer) Poll(mode Mode) Key {
	for {
		b.mu.Lock()
		if len(b.queue) > 0 {
			e := b.queue[0]
			b.queue = b.queue[1:]
			k := b.apply(e)
			b.mu.Unlock()
			return k
		}
		if mode == Async || b.closed {
			b.apply(event{})
			b.mu.Unlock()
			return KeyNone
		}
		b.mu.Unlock()
		<-b.notify
	}
}

// apply updates the last-event state. Caller holds mu.
func (b *Buffer) apply(e event) Key {
	b.mouse.Moved = false
	b.mouse.Wheel = 0
	b.mouse.Double = false
	if e.mouse != nil {
		m := *e.mouse
		m.Moved = m.X != b.mouse.X || m.Y != b.mouse.Y || m.Moved
		b.mouse = m
		b.lastKey, b.lastCh = KeyNone, 0
		return KeyNone
	}
	b.lastKey, b.lastCh = e.key, e.char
	return e.key
}

// LastKey returns the key of the last polled event.
func (b *Buffer) LastKey() Key {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastKey
}

// LastChar returns the character of the last polled event.
func (b *Buffer) LastChar() rune {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastCh
}

// Mouse returns the mouse state as of the last poll.
func (b *Buffer) Mouse() MouseState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mouse
}
