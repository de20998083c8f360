package ui

import "github.com/vovakirdan/consolekit/internal/core"

// SkinCode identifies the border glyph drawn at a backdrop cell.
type SkinCode uint8

const (
	SkinBackground SkinCode = iota
	SkinTopLeft
	SkinTopRight
	SkinBottomLeft
	SkinBottomRight
	SkinLeftSeparator
	SkinRightSeparator
	SkinHighSeparator
	SkinLowSeparator
	SkinJoined
	SkinHorizontal
	SkinVertical
)

var skinGlyphs = [...]rune{
	SkinBackground:     ' ',
	SkinTopLeft:        '╔',
	SkinTopRight:       '╗',
	SkinBottomLeft:     '╚',
	SkinBottomRight:    '╝',
	SkinLeftSeparator:  '╠',
	SkinRightSeparator: '╣',
	SkinHighSeparator:  '╦',
	SkinLowSeparator:   '╩',
	SkinJoined:         '╬',
	SkinHorizontal:     '═',
	SkinVertical:       '║',
}

// Glyph returns the double-line box drawing character for c.
func (c SkinCode) Glyph() rune {
	if int(c) < len(skinGlyphs) {
		return skinGlyphs[c]
	}
	return ' '
}

// SeparatorEntry is one separator line. A horizontal separator occupies
// row Offset.Y+1 from column Offset.X; a vertical one occupies column
// Offset.X+1 from row Offset.Y. Extent is its length in cells.
type SeparatorEntry struct {
	Offset core.Point
	Extent int
}

// Separators are the lines baked into a parent window's backdrop.
type Separators struct {
	Horizontal []SeparatorEntry
	Vertical   []SeparatorEntry
}

type edgeMarks uint8

const (
	markTop edgeMarks = 1 << iota
	markBottom
	markLeft
	markRight
	markHorz
	markVert
)

func (m edgeMarks) has(a, b edgeMarks) bool { return m&a != 0 && m&b != 0 }

// ComputeBackData returns the skin code of every cell of a w x h footprint,
// row-major. Separator cells falling outside the footprint are dropped.
func ComputeBackData(w, h int, seps Separators) []SkinCode {
	if w <= 0 || h <= 0 {
		return nil
	}
	marks := make([]edgeMarks, w*h)
	mark := func(x, y int, m edgeMarks) {
		if x >= 0 && x < w && y >= 0 && y < h {
			marks[y*w+x] |= m
		}
	}

	for x := 0; x < w; x++ {
		mark(x, 0, markTop)
		mark(x, h-1, markBottom)
	}
	for y := 0; y < h; y++ {
		mark(0, y, markLeft)
		mark(w-1, y, markRight)
	}
	for _, s := range seps.Horizontal {
		for i := 0; i < s.Extent; i++ {
			mark(s.Offset.X+i, s.Offset.Y+1, markHorz)
		}
	}
	for _, s := range seps.Vertical {
		for i := 0; i < s.Extent; i++ {
			mark(s.Offset.X+1, s.Offset.Y+i, markVert)
		}
	}

	codes := make([]SkinCode, len(marks))
	for i, m := range marks {
		codes[i] = collapse(m)
	}
	return codes
}

// collapse picks one skin code for a cell: corners, then junctions, then
// crossings, then straight runs.
func collapse(m edgeMarks) SkinCode {
	switch {
	case m.has(markTop, markLeft):
		return SkinTopLeft
	case m.has(markTop, markRight):
		return SkinTopRight
	case m.has(markBottom, markLeft):
		return SkinBottomLeft
	case m.has(markBottom, markRight):
		return SkinBottomRight
	case m.has(markLeft, markHorz):
		return SkinLeftSeparator
	case m.has(markRight, markHorz):
		return SkinRightSeparator
	case m.has(markTop, markVert):
		return SkinHighSeparator
	case m.has(markBottom, markVert):
		return SkinLowSeparator
	case m.has(markHorz, markVert):
		return SkinJoined
	case m&(markTop|markBottom|markHorz) != 0:
		return SkinHorizontal
	case m&(markLeft|markRight|markVert) != 0:
		return SkinVertical
	}
	return SkinBackground
}
