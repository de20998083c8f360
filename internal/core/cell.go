package core

// Color is one of the 16 console colors.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	BrightBlue
	BrightGreen
	BrightCyan
	BrightRed
	BrightMagenta
	Yellow
	BrightWhite
)

// NumColors is the size of the console palette.
const NumColors = 16

var colorNames = [NumColors]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "lightgray",
	"darkgray", "brightblue", "brightgreen", "brightcyan", "brightred",
	"brightmagenta", "yellow", "brightwhite",
}

// String returns the lower-case color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// ParseColor looks up a color by the name String returns.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return 0, false
}

// ansiIndex maps console palette order to the ANSI 16-color order.
var ansiIndex = [NumColors]uint8{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}

// ANSI returns the color's index in the ANSI 16-color palette.
func (c Color) ANSI() int { return int(ansiIndex[c&0x0F]) }

// Attr packs a foreground color in the low nibble and a background
// color in the high nibble.
type Attr uint8

// DefaultAttr is light gray on black.
const DefaultAttr = Attr(LightGray)

// MakeAttr builds an attribute from a foreground and background color.
func MakeAttr(fg, bg Color) Attr {
	return Attr(fg&0x0F) | Attr(bg&0x0F)<<4
}

// Fg returns the foreground color.
func (a Attr) Fg() Color { return Color(a & 0x0F) }

// Bg returns the background color.
func (a Attr) Bg() Color { return Color(a >> 4) }

// CellFlags carries per-cell behavior bits.
type CellFlags uint8

const (
	// FlagHotkey marks a cell whose Data is returned to the caller when clicked.
	FlagHotkey CellFlags = 1 << iota
	// FlagNonVisible cells are skipped when an image is drawn.
	FlagNonVisible
	// FlagFlash toggles FlagShowSecondary on every draw.
	FlagFlash
	// FlagShowSecondary draws the cell using Data as its attribute.
	FlagShowSecondary
	// FlagContinuation marks the trailing half of a double-width glyph.
	FlagContinuation
)

// Has reports whether all bits in f are set.
func (c CellFlags) Has(f CellFlags) bool { return c&f == f }

// Cell is one character position of a surface.
type Cell struct {
	Glyph rune
	Attr  Attr
	Flags CellFlags
	Data  byte
}

// Blank is the cell a new surface is filled with.
var Blank = Cell{Glyph: ' ', Attr: DefaultAttr}

// BlankWith returns a space cell with the given attribute.
func BlankWith(attr Attr) Cell {
	return Cell{Glyph: ' ', Attr: attr}
}
