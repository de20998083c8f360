package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Surface is a 2D grid of cells stored row-major. Window displays, the
// parent backdrop and the engine's output buffer are all surfaces.
type Surface struct {
	width  int
	height int
	cells  []Cell
}

// NewSurface creates a surface filled with Blank.
func NewSurface(width, height int) *Surface {
	s := &Surface{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.cells = make([]Cell, s.width*s.height)
	s.Clear(Blank)
	return s
}

// Width returns the surface width in cells.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in cells.
func (s *Surface) Height() int {
	return s.height
}

// Len returns the number of cells.
func (s *Surface) Len() int {
	return len(s.cells)
}

// Bounds returns the surface rectangle anchored at the origin.
func (s *Surface) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// InBounds reports whether (x, y) addresses a cell.
func (s *Surface) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Index converts a coordinate to a linear cell index.
func (s *Surface) Index(x, y int) int {
	return y*s.width + x
}

// Cells exposes the backing slice for in-place updates.
func (s *Surface) Cells() []Cell {
	return s.cells
}

// Get returns the cell at (x, y); Blank when out of bounds.
func (s *Surface) Get(x, y int) Cell {
	if !s.InBounds(x, y) {
		return Blank
	}
	return s.cells[s.Index(x, y)]
}

// Set stores a cell at (x, y). Out-of-bounds coordinates are ignored.
func (s *Surface) Set(x, y int, c Cell) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[s.Index(x, y)] = c
}

// At returns the cell at a linear index; Blank when out of range.
func (s *Surface) At(i int) Cell {
	if i < 0 || i >= len(s.cells) {
		return Blank
	}
	return s.cells[i]
}

// SetAt stores a cell at a linear index. Out-of-range indices are ignored.
func (s *Surface) SetAt(i int, c Cell) {
	if i < 0 || i >= len(s.cells) {
		return
	}
	s.cells[i] = c
}

// SetGlyphAt replaces only the glyph at a linear index.
func (s *Surface) SetGlyphAt(i int, r rune) {
	if i < 0 || i >= len(s.cells) {
		return
	}
	s.cells[i].Glyph = r
}

// Clear fills the whole surface with c.
func (s *Surface) Clear(c Cell) {
	for i := range s.cells {
		s.cells[i] = c
	}
}

// Fill fills the part of r that lies on the surface with c.
func (s *Surface) Fill(r Rect, c Cell) {
	r = r.Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		row := s.cells[y*s.width : (y+1)*s.width]
		for x := r.X; x < r.Right(); x++ {
			row[x] = c
		}
	}
}

// Blit copies the srcRect region of src to (dstX, dstY), clipped to both
// surfaces. Source and destination keep their own pitch.
func (s *Surface) Blit(src *Surface, srcRect Rect, dstX, dstY int) {
	srcRect = srcRect.Intersect(src.Bounds())
	if srcRect.Empty() {
		return
	}
	dst := NewRect(dstX, dstY, srcRect.W, srcRect.H).Intersect(s.Bounds())
	if dst.Empty() {
		return
	}
	sx := srcRect.X + (dst.X - dstX)
	sy := srcRect.Y + (dst.Y - dstY)
	for row := 0; row < dst.H; row++ {
		from := src.cells[(sy+row)*src.width+sx:]
		to := s.cells[(dst.Y+row)*s.width+dst.X:]
		copy(to[:dst.W], from[:dst.W])
	}
}

// CopyFrom replaces the contents of s with src, clipped to the smaller
// of the two.
func (s *Surface) CopyFrom(src *Surface) {
	if src == nil {
		return
	}
	if src.width == s.width && src.height == s.height {
		copy(s.cells, src.cells)
		return
	}
	s.Blit(src, src.Bounds(), 0, 0)
}

// Resize changes the surface dimensions, preserving content where possible.
func (s *Surface) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	old := &Surface{width: s.width, height: s.height, cells: s.cells}
	s.width, s.height = Max(width, 0), Max(height, 0)
	s.cells = make([]Cell, s.width*s.height)
	s.Clear(Blank)
	s.Blit(old, old.Bounds(), 0, 0)
}

// DrawText writes text horizontally at (x, y) with attr. Double-width
// glyphs take two cells, the second flagged FlagContinuation. It returns
// the number of columns consumed.
func (s *Surface) DrawText(x, y int, text string, attr Attr) int {
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.Set(col, y, Cell{Glyph: r, Attr: attr})
		if w == 2 {
			s.Set(col+1, y, Cell{Glyph: ' ', Attr: attr, Flags: FlagContinuation})
		}
		col += w
	}
	return col - x
}

// WriteText writes the glyphs of text starting at linear index i without
// touching attributes, flags or data. Writing stops at the end of the surface.
func (s *Surface) WriteText(i int, text string) int {
	n := 0
	for _, r := range text {
		if i+n >= len(s.cells) {
			break
		}
		s.SetGlyphAt(i+n, r)
		n++
	}
	return n
}

// ClearText blanks the glyphs of extent cells starting at linear index i.
func (s *Surface) ClearText(i, extent int) {
	for k := 0; k < extent; k++ {
		s.SetGlyphAt(i+k, ' ')
	}
}

// Row returns the glyphs of row y as a string.
func (s *Surface) Row(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		if c.Flags.Has(FlagContinuation) {
			continue
		}
		if c.Glyph == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Glyph)
	}
	return sb.String()
}

// String renders the glyphs as newline-separated rows. Useful for tests.
func (s *Surface) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
