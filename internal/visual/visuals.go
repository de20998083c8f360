package visual

import "github.com/vovakirdan/consolekit/internal/core"

// Visuals is the content of a basic window.
type Visuals struct {
	Images     []*Image
	Patterns   []*Pattern
	Animations []*Animation
}

// Render clears the visible part of t to its background and draws
// patterns, then images, then animations. A nil Visuals leaves t alone so
// content written directly into the display survives.
func (v *Visuals) Render(t Target) {
	if v == nil {
		return
	}
	t.Display().Fill(visibleRect(t), core.BlankWith(t.BackgroundAttr()))
	for _, p := range v.Patterns {
		p.Draw(t)
	}
	for _, img := range v.Images {
		img.Draw(t)
	}
	for _, a := range v.Animations {
		a.Draw(t)
	}
}
