package ui

import (
	"unicode"

	"github.com/vovakirdan/consolekit/internal/input"
)

// scrollFor maps an arrow key to a scroll request.
func scrollFor(k input.Key) (HorzScroll, VertScroll) {
	switch k {
	case input.KeyLeft:
		return ScrollLeft, VertFix
	case input.KeyRight:
		return ScrollRight, VertFix
	case input.KeyUp:
		return HorzFix, ScrollUp
	case input.KeyDown:
		return HorzFix, ScrollDown
	}
	return HorzFix, VertFix
}

// typeRune writes an accepted character at the cursor and advances.
func (w *Window) typeRune(io *TextIO, r rune) {
	r = io.Read.Accept(r)
	if r == 0 {
		return
	}
	w.display.SetGlyphAt(io.cursor, r)
	io.buf[io.cursor] = r
	if io.Advance(1) {
		io.buf[io.cursor] = 0
	}
}

// backspace blanks the cursor cell, steps back and terminates the text
// there. A character parked at the limit is removed without stepping back.
func (w *Window) backspace(io *TextIO) {
	w.display.SetGlyphAt(io.cursor, ' ')
	if io.buf[io.cursor] != 0 {
		io.buf[io.cursor] = 0
		return
	}
	io.Regress(1)
	w.display.SetGlyphAt(io.cursor, ' ')
	io.buf[io.cursor] = 0
}

// blinkCaret toggles the cursor cell between underscore and space. A
// cursor parked on a typed character at the limit does not blink.
func (w *Window) blinkCaret(io *TextIO) {
	if io.buf[io.cursor] != 0 {
		return
	}
	c := w.display.At(io.cursor)
	if c.Glyph == '_' {
		w.display.SetGlyphAt(io.cursor, ' ')
	} else {
		w.display.SetGlyphAt(io.cursor, '_')
	}
}

// reveal advances a message box by its write mode.
func (w *Window) reveal(io *TextIO) {
	if io.Done() {
		return
	}
	switch io.Write {
	case WriteAll:
		for !io.Done() {
			w.writeWord(io)
		}
	case WriteWord:
		w.writeWord(io)
	case WriteCharacter:
		w.writeCharacter(io)
	}
}

// wrapFor moves the cursor to the next line when a word of n characters
// would reach the right edge. Words at the start of a line never wrap.
func (w *Window) wrapFor(io *TextIO, n int) {
	col := io.cursor % w.Width
	if col > 0 && col+n >= w.Width {
		io.Advance(w.Width - col)
	}
}

func (w *Window) writeWord(io *TextIO) {
	for !io.Done() && unicode.IsSpace(io.src[io.position]) {
		w.display.SetGlyphAt(io.cursor, ' ')
		io.Advance(1)
		io.position++
	}
	start := io.position
	for !io.Done() && !unicode.IsSpace(io.src[io.position]) {
		io.position++
	}
	word := io.src[start:io.position]
	if len(word) == 0 {
		return
	}
	w.wrapFor(io, len(word))
	w.display.WriteText(io.cursor, string(word))
	io.Advance(len(word))
	io.wordLeft = 0
}

func (w *Window) writeCharacter(io *TextIO) {
	r := io.src[io.position]
	if unicode.IsSpace(r) {
		w.display.SetGlyphAt(io.cursor, ' ')
		io.Advance(1)
		io.position++
		io.wordLeft = 0
		return
	}
	if io.wordLeft == 0 {
		n := 0
		for p := io.position; p < len(io.src) && !unicode.IsSpace(io.src[p]); p++ {
			n++
		}
		io.wordLeft = n
		w.wrapFor(io, n)
	}
	w.display.SetGlyphAt(io.cursor, r)
	io.Advance(1)
	io.position++
	io.wordLeft--
}

// selectMessage clears the display and restarts the reveal at message i.
func (w *Window) selectMessage(io *TextIO, i int) {
	if len(io.messages) == 0 {
		return
	}
	io.current = cycle(i, 0, len(io.messages))
	io.rewind()
	w.display.ClearText(0, w.display.Len())
}
