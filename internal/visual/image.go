// Package visual draws images, scrolling patterns and path-following
// animations into the content buffer of a window.
package visual

import (
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/consolekit/internal/core"
)

// Target is what visuals draw into: a content buffer plus the visible
// viewport within it.
type Target interface {
	Display() *core.Surface
	Offset() (x, y int)
	Viewport() (w, h int)
	BackgroundAttr() core.Attr
}

// visibleRect returns the part of t's content that is currently shown.
func visibleRect(t Target) core.Rect {
	x, y := t.Offset()
	w, h := t.Viewport()
	return core.NewRect(x, y, w, h).Intersect(t.Display().Bounds())
}

// Image is a rectangular block of cells placed at Location in window
// content coordinates.
type Image struct {
	Location core.Point
	W, H     int
	Cells    []core.Cell
}

// NewImage creates a blank image.
func NewImage(w, h int) *Image {
	img := &Image{W: w, H: h, Cells: make([]core.Cell, w*h)}
	for i := range img.Cells {
		img.Cells[i] = core.Blank
	}
	return img
}

// ImageFromText builds an image from text lines. The image is as wide as
// the widest line; short lines are padded with non-visible cells so that
// whatever lies beneath shows through.
func ImageFromText(lines []string, attr core.Attr) *Image {
	w := 0
	for _, l := range lines {
		w = core.Max(w, runewidth.StringWidth(l))
	}
	img := NewImage(w, len(lines))
	for i := range img.Cells {
		img.Cells[i].Flags = core.FlagNonVisible
	}
	for y, l := range lines {
		x := 0
		for _, r := range l {
			rw := runewidth.RuneWidth(r)
			if rw == 0 {
				continue
			}
			img.Cells[y*w+x] = core.Cell{Glyph: r, Attr: attr}
			if rw == 2 && x+1 < w {
				img.Cells[y*w+x+1] = core.Cell{Glyph: ' ', Attr: attr, Flags: core.FlagContinuation}
			}
			x += rw
		}
	}
	return img
}

// Bounds returns the image rectangle in content coordinates.
func (img *Image) Bounds() core.Rect {
	return core.NewRect(img.Location.X, img.Location.Y, img.W, img.H)
}

// Draw copies the visible part of the image into t. Non-visible cells are
// skipped; flashing cells alternate between their own attribute and the
// attribute held in their Data byte.
func (img *Image) Draw(t Target) {
	clip := img.Bounds().Intersect(visibleRect(t))
	if clip.Empty() {
		return
	}
	dst := t.Display()
	for y := clip.Y; y < clip.Bottom(); y++ {
		for x := clip.X; x < clip.Right(); x++ {
			src := &img.Cells[(y-img.Location.Y)*img.W+(x-img.Location.X)]
			if src.Flags.Has(core.FlagFlash) {
				src.Flags ^= core.FlagShowSecondary
			}
			if src.Flags.Has(core.FlagNonVisible) {
				continue
			}
			out := dst.Get(x, y)
			out.Glyph = src.Glyph
			out.Flags = src.Flags &^ (core.FlagFlash | core.FlagShowSecondary)
			out.Data = src.Data
			if src.Flags.Has(core.FlagShowSecondary) {
				out.Attr = core.Attr(src.Data)
			} else {
				out.Attr = src.Attr
			}
			dst.Set(x, y, out)
		}
	}
}
