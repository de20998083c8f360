// Package programs registers the built-in programs: the window demo and
// the editor pickers. Import it for its side effects.
package programs

import (
	"github.com/vovakirdan/consolekit/internal/layout"
	"github.com/vovakirdan/consolekit/internal/palette"
	"github.com/vovakirdan/consolekit/internal/registry"
	"github.com/vovakirdan/consolekit/internal/ui"
)

func init() {
	registry.Register(registry.Program{ID: "demo", Title: "Window demo"}, Demo)

	pickers := []struct {
		id, title string
		build     func(ui.Backdrop) (*ui.ParentWindow, error)
	}{
		{"charset", "Characters and colours", palette.CharactersAndColors},
		{"flags", "Map flags", palette.MapFlags},
		{"imageflags", "Image flags", palette.ImageFlags},
		{"data", "Data bytes", palette.Data},
		{"compression", "Compression mode", palette.Compression},
	}
	for _, p := range pickers {
		build := p.build
		registry.Register(registry.Program{ID: p.id, Title: p.title, Info: true}, func(env layout.Env) (*ui.ParentWindow, error) {
			return build(env.Backdrop)
		})
	}
}

// Demo builds the embedded demo layout.
func Demo(env layout.Env) (*ui.ParentWindow, error) {
	def, err := layout.Builtin("demo")
	if err != nil {
		return nil, err
	}
	return layout.Build(def, env)
}
