// Package palette builds the editor's picker windows: characters and
// colours, map and image flags, raw data bytes and compression modes.
// Each picker is a fixed grid of hotkey cells; clicking one copies its
// data byte into the picker's info slot, and Selection decodes the slots.
package palette

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/input"
	"github.com/vovakirdan/consolekit/internal/ui"
)

// Info slots written by the pickers.
const (
	SlotChar = iota
	SlotFore
	SlotBack
	SlotFlags
	SlotData
	SlotCompression
	NumSlots
)

// shadeGlyph is the block the colour and data pickers fill cells with.
const shadeGlyph = 0xB2

var (
	border     = core.MakeAttr(core.LightGray, core.Black)
	background = core.MakeAttr(core.Black, core.Black)
	itemAttr   = core.MakeAttr(core.LightGray, core.Black)
)

// MapFlagNames labels the rows of the map flags picker; row r sets bit r.
var MapFlagNames = [8]string{"NONVISIBLE", "SOLID", "OBSCURE", "OCCUPIED", "TRIGGER", "DANGER", "SHIMMER", "EXIT"}

// ImageFlagNames labels the rows of the image flags picker.
var ImageFlagNames = [8]string{"NONVISIBLE", "", "HIGH", "SHOWSECONDARY", "FLASH", "", "", ""}

// CompressionMode is a map compression scheme.
type CompressionMode byte

const (
	Merge CompressionMode = iota
	CompressZeroes
	NotZero
	ConstantValue
)

var compressionNames = [...]string{"Merge", "CompressZeroes", "NotZero", "ConstantValue"}

func (m CompressionMode) String() string {
	if int(m) < len(compressionNames) {
		return compressionNames[m]
	}
	return fmt.Sprintf("CompressionMode(%d)", byte(m))
}

// cp437 control-range glyphs, as the console font draws them.
var lowGlyphs = []rune(" ☺☻♥♦♣♠•◘○◙♂♀♪♫☼►◄↕‼¶§▬↨↑↓→←∟↔▲▼")

// Glyph returns the console glyph of byte b.
func Glyph(b byte) rune {
	switch {
	case int(b) < len(lowGlyphs):
		return lowGlyphs[b]
	case b == 0x7F:
		return '⌂'
	}
	return charmap.CodePage437.DecodeByte(b)
}

// grid fills a w x h hotkey window. cell returns the glyph, attribute and
// data of the cell at index i.
func grid(x, y, w, h, slot int, state ui.StateFlags, cell func(i int) (rune, core.Attr, byte)) (*ui.Window, error) {
	win, err := ui.NewWindow(ui.WindowSpec{
		Coord:      core.Point{X: x, Y: y},
		Width:      w,
		Height:     h,
		Content:    &ui.BasicContent{},
		State:      state,
		Background: background,
		Data:       slot,
	})
	if err != nil {
		return nil, err
	}
	d := win.Display()
	for i := 0; i < d.Len(); i++ {
		g, attr, data := cell(i)
		d.SetAt(i, core.Cell{Glyph: g, Attr: attr, Flags: core.FlagHotkey, Data: data})
	}
	return win, nil
}

// rows builds a picker whose row r carries data(r) and the label labels[r].
func rows(w int, labels []string, slot int, data func(r int) byte) (*ui.Window, error) {
	win, err := grid(1, 1, w, len(labels), slot, ui.CanReceiveFocus, func(i int) (rune, core.Attr, byte) {
		return ' ', itemAttr, data(i / w)
	})
	if err != nil {
		return nil, err
	}
	for r, l := range labels {
		win.Display().WriteText(r*w, l)
	}
	return win, nil
}

func parent(w, h int, seps ui.Separators, back ui.Backdrop, windows ...*ui.Window) (*ui.ParentWindow, error) {
	return ui.Build(ui.ParentSpec{
		Width:      w,
		Height:     h,
		Separators: seps,
		Windows:    windows,
		Back:       back,
		FocusKey:   input.KeyTab,
		CloseKey:   input.KeySpace,
		ConfirmKey: input.KeyEnter,
		Border:     border,
		Background: background,
	}, 0, 0, 0)
}

// CharactersAndColors builds the glyph grid with the foreground and
// background colour strips below it.
func CharactersAndColors(back ui.Backdrop) (*ui.ParentWindow, error) {
	chars, err := grid(1, 1, 16, 16, SlotChar, ui.CanReceiveFocus, func(i int) (rune, core.Attr, byte) {
		return Glyph(byte(i)), core.MakeAttr(core.BrightWhite, core.Black), byte(i)
	})
	if err != nil {
		return nil, err
	}
	fore, err := grid(1, 18, 16, 1, SlotFore, 0, func(i int) (rune, core.Attr, byte) {
		return Glyph(shadeGlyph), core.MakeAttr(core.Color(i), core.Black), byte(i)
	})
	if err != nil {
		return nil, err
	}
	bg, err := grid(1, 20, 16, 1, SlotBack, 0, func(i int) (rune, core.Attr, byte) {
		return Glyph(shadeGlyph), core.MakeAttr(core.Black, core.Color(i)), byte(i)
	})
	if err != nil {
		return nil, err
	}
	seps := ui.Separators{Horizontal: []ui.SeparatorEntry{
		{Offset: core.Point{Y: 16}, Extent: 18},
		{Offset: core.Point{Y: 18}, Extent: 18},
	}}
	return parent(18, 22, seps, back, chars, fore, bg)
}

func flagLabels(names [8]string) []string {
	labels := make([]string, len(names))
	for i, n := range names {
		labels[i] = fmt.Sprintf(" %d - %s", i, n)
	}
	return labels
}

// MapFlags builds the map cell flag picker.
func MapFlags(back ui.Backdrop) (*ui.ParentWindow, error) {
	win, err := rows(23, flagLabels(MapFlagNames), SlotFlags, func(r int) byte { return 1 << r })
	if err != nil {
		return nil, err
	}
	return parent(25, 10, ui.Separators{}, back, win)
}

// ImageFlags builds the image cell flag picker.
func ImageFlags(back ui.Backdrop) (*ui.ParentWindow, error) {
	win, err := rows(23, flagLabels(ImageFlagNames), SlotFlags, func(r int) byte { return 1 << r })
	if err != nil {
		return nil, err
	}
	return parent(25, 10, ui.Separators{}, back, win)
}

// Data builds the raw byte picker. Every cell shows its own value as an
// attribute.
func Data(back ui.Backdrop) (*ui.ParentWindow, error) {
	win, err := grid(1, 1, 16, 16, SlotData, ui.CanReceiveFocus, func(i int) (rune, core.Attr, byte) {
		return Glyph(shadeGlyph), core.Attr(i), byte(i)
	})
	if err != nil {
		return nil, err
	}
	return parent(18, 18, ui.Separators{}, back, win)
}

// Compression builds the compression mode picker.
func Compression(back ui.Backdrop) (*ui.ParentWindow, error) {
	labels := make([]string, len(compressionNames))
	for i, n := range compressionNames {
		labels[i] = fmt.Sprintf(" %d - %s", i+1, n)
	}
	win, err := rows(19, labels, SlotCompression, func(r int) byte { return byte(r) })
	if err != nil {
		return nil, err
	}
	return parent(21, 6, ui.Separators{}, back, win)
}

// Selection is what the pickers have chosen so far. Flags holds the map or
// image flag bits, which are not engine cell flags.
type Selection struct {
	Cell        core.Cell
	Flags       byte
	Compression CompressionMode
}

// Decode reads a selection from an info buffer filled by the pickers.
// Missing slots read as zero.
func Decode(info []byte) Selection {
	slot := func(i int) byte {
		if i < len(info) {
			return info[i]
		}
		return 0
	}
	return Selection{
		Cell: core.Cell{
			Glyph: Glyph(slot(SlotChar)),
			Attr:  core.MakeAttr(core.Color(slot(SlotFore)&0x0F), core.Color(slot(SlotBack)&0x0F)),
			Data:  slot(SlotData),
		},
		Flags:       slot(SlotFlags),
		Compression: CompressionMode(slot(SlotCompression)),
	}
}

func (s Selection) String() string {
	return fmt.Sprintf("glyph %q fg %s bg %s flags %08b data %d compression %s",
		s.Cell.Glyph, s.Cell.Attr.Fg(), s.Cell.Attr.Bg(), s.Flags, s.Cell.Data, s.Compression)
}
