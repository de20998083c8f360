package ui

import (
	"fmt"
	"unicode"

	"github.com/vovakirdan/consolekit/internal/core"
)

// ReadMode filters the characters an edit box accepts.
type ReadMode int

const (
	ReadAll ReadMode = iota
	AlphaOnly
	Numeric
	PrintOnly
	readModeCount
)

var readModeNames = [...]string{"all", "alpha", "numeric", "print"}

func (m ReadMode) String() string { return name(readModeNames[:], int(m), "ReadMode") }

// ParseReadMode converts a read mode name.
func ParseReadMode(s string) (ReadMode, error) {
	for i, n := range readModeNames {
		if n == s {
			return ReadMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: read mode %q", ErrUnsupported, s)
}

// Accept applies the filter, returning 0 for a rejected character.
func (m ReadMode) Accept(r rune) rune {
	switch m {
	case ReadAll:
		return r
	case AlphaOnly:
		if unicode.IsLetter(r) {
			return r
		}
	case Numeric:
		if unicode.IsDigit(r) {
			return r
		}
	case PrintOnly:
		if unicode.IsPrint(r) {
			return r
		}
	}
	return 0
}

// WriteMode controls how much of a message box's text appears per tick.
type WriteMode int

const (
	WriteAll WriteMode = iota
	WriteWord
	WriteCharacter
	writeModeCount
)

var writeModeNames = [...]string{"all", "word", "character"}

func (m WriteMode) String() string { return name(writeModeNames[:], int(m), "WriteMode") }

// ParseWriteMode converts a write mode name.
func ParseWriteMode(s string) (WriteMode, error) {
	for i, n := range writeModeNames {
		if n == s {
			return WriteMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: write mode %q", ErrUnsupported, s)
}

// cycle steps v by delta through [0, n).
func cycle(v, delta, n int) int {
	return ((v+delta)%n + n) % n
}

// TextIO is the cursor and text buffer behind edit boxes and message
// boxes. The cursor indexes the window's display, not the text.
type TextIO struct {
	Read  ReadMode
	Write WriteMode

	cursor int
	limit  int

	// edit buffer, indexed by cursor and terminated by 0
	buf []rune

	// message source
	messages []string
	current  int
	src      []rune
	position int
	wordLeft int
}

// NewTextIO creates a TextIO whose cursor stays below limit. A limit of
// zero is replaced by the window's display area when the window is built;
// a negative limit is rejected then.
func NewTextIO(limit int) *TextIO {
	io := &TextIO{}
	io.setLimit(limit)
	return io
}

func (io *TextIO) setLimit(limit int) {
	io.limit = limit
	io.buf = make([]rune, core.Max(limit, 0)+1)
	if io.cursor >= limit {
		io.cursor = 0
	}
}

// Limit returns the exclusive upper bound of the cursor.
func (io *TextIO) Limit() int { return io.limit }

// Cursor returns the display index the next character goes to.
func (io *TextIO) Cursor() int { return io.cursor }

// Advance moves the cursor forward by n unless that would reach the limit.
func (io *TextIO) Advance(n int) bool {
	if io.cursor+n < io.limit {
		io.cursor += n
		return true
	}
	return false
}

// Regress moves the cursor back by n unless that would pass zero.
func (io *TextIO) Regress(n int) bool {
	if io.cursor-n >= 0 {
		io.cursor -= n
		return true
	}
	return false
}

// Text returns the edit buffer up to its terminator.
func (io *TextIO) Text() string {
	for i, r := range io.buf {
		if r == 0 {
			return string(io.buf[:i])
		}
	}
	return string(io.buf)
}

// Load replaces the messages of a message box and selects the first one.
func (io *TextIO) Load(messages ...string) {
	io.messages = append([]string(nil), messages...)
	io.current = 0
	io.rewind()
}

// Message returns the index of the selected message.
func (io *TextIO) Message() int { return io.current }

// Messages returns the number of loaded messages.
func (io *TextIO) Messages() int { return len(io.messages) }

// Done reports whether the selected message is fully revealed.
func (io *TextIO) Done() bool { return io.position >= len(io.src) }

func (io *TextIO) rewind() {
	io.cursor, io.position, io.wordLeft = 0, 0, 0
	io.src = nil
	if io.current < len(io.messages) {
		io.src = []rune(io.messages[io.current])
	}
}
