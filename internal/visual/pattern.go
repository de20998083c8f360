package visual

import "github.com/vovakirdan/consolekit/internal/core"

// Pattern is a tile repeated across a footprint of FootW x FootH cells.
// Unless Locked, the tile scrolls by (XScroll, YScroll) on every draw and
// wraps around its own size.
type Pattern struct {
	Location         core.Point
	FootW, FootH     int
	W, H             int
	Cells            []core.Cell
	XScroll, YScroll int
	XOffset, YOffset int
	Locked           bool
}

// NewPattern creates a pattern whose footprint equals the tile size.
func NewPattern(tile *Image) *Pattern {
	return &Pattern{
		Location: tile.Location,
		FootW:    tile.W,
		FootH:    tile.H,
		W:        tile.W,
		H:        tile.H,
		Cells:    tile.Cells,
	}
}

// ToggleLock flips the scroll lock.
func (p *Pattern) ToggleLock() {
	p.Locked = !p.Locked
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Draw fills the visible part of the footprint with the tile.
func (p *Pattern) Draw(t Target) {
	if p.W <= 0 || p.H <= 0 {
		return
	}
	if !p.Locked {
		p.XOffset = wrap(p.XOffset+p.XScroll, p.W)
		p.YOffset = wrap(p.YOffset+p.YScroll, p.H)
	}
	foot := core.NewRect(p.Location.X, p.Location.Y, p.FootW, p.FootH)
	clip := foot.Intersect(visibleRect(t))
	if clip.Empty() {
		return
	}
	dst := t.Display()
	for y := clip.Y; y < clip.Bottom(); y++ {
		ty := wrap(y-p.Location.Y+p.YOffset, p.H)
		for x := clip.X; x < clip.Right(); x++ {
			tx := wrap(x-p.Location.X+p.XOffset, p.W)
			src := p.Cells[ty*p.W+tx]
			if src.Flags.Has(core.FlagNonVisible) {
				continue
			}
			dst.Set(x, y, src)
		}
	}
}
