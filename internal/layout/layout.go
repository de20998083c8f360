// Package layout reads parent window definitions from YAML and builds
// them into ready-to-run ui.ParentWindows.
package layout

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var builtinFS embed.FS

// Def is a complete parent window definition.
type Def struct {
	Name    string      `yaml:"name"`
	Title   string      `yaml:"title,omitempty"`
	Parent  ParentDef   `yaml:"parent"`
	Windows []WindowDef `yaml:"windows"`
}

// ParentDef describes the parent window frame.
type ParentDef struct {
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	X          int           `yaml:"x"`
	Y          int           `yaml:"y"`
	Focus      int           `yaml:"focus"`
	DelayMS    int           `yaml:"delay_ms"`
	Fixed      bool          `yaml:"fixed,omitempty"`
	Keys       KeysDef       `yaml:"keys"`
	Border     AttrDef       `yaml:"border"`
	Background AttrDef       `yaml:"background"`
	Separators SeparatorsDef `yaml:"separators,omitempty"`
}

// KeysDef names the parent's focus, close and confirm keys.
type KeysDef struct {
	Focus   string `yaml:"focus"`
	Close   string `yaml:"close"`
	Confirm string `yaml:"confirm"`
}

// AttrDef is a foreground/background colour pair by name. Missing colours
// are black.
type AttrDef struct {
	Fg string `yaml:"fg,omitempty"`
	Bg string `yaml:"bg,omitempty"`
}

// SeparatorsDef lists the parent's inner separators.
type SeparatorsDef struct {
	Horizontal []SeparatorDef `yaml:"horizontal,omitempty"`
	Vertical   []SeparatorDef `yaml:"vertical,omitempty"`
}

// SeparatorDef is one separator line.
type SeparatorDef struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Extent int `yaml:"extent"`
}

// PointDef is a position in cells.
type PointDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WindowDef describes one child window. Exactly one of the mode-specific
// blocks is read, selected by Mode.
type WindowDef struct {
	X          int           `yaml:"x"`
	Y          int           `yaml:"y"`
	ViewW      int           `yaml:"view_w,omitempty"`
	ViewH      int           `yaml:"view_h,omitempty"`
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Mode       string        `yaml:"mode"`
	Flags      []string      `yaml:"flags,omitempty"`
	Background AttrDef       `yaml:"background"`
	Data       int           `yaml:"data,omitempty"`
	Receivers  []ReceiverDef `yaml:"receivers,omitempty"`

	Visuals *VisualsDef `yaml:"visuals,omitempty"`
	Edit    *EditDef    `yaml:"edit,omitempty"`
	Menu    *MenuDef    `yaml:"menu,omitempty"`
	Message *MessageDef `yaml:"message,omitempty"`
}

// ReceiverDef binds a window index to an instruction name.
type ReceiverDef struct {
	Window      int    `yaml:"window"`
	Instruction string `yaml:"instruction"`
}

// EditDef configures an edit box.
type EditDef struct {
	Read  string `yaml:"read,omitempty"`
	Limit int    `yaml:"limit,omitempty"`
	Sink  string `yaml:"sink,omitempty"`
}

// MessageDef configures a message box.
type MessageDef struct {
	Write    string   `yaml:"write,omitempty"`
	Text     string   `yaml:"text,omitempty"`
	Messages []string `yaml:"messages,omitempty"`
	Limit    int      `yaml:"limit,omitempty"`
}

// MenuDef configures a menu.
type MenuDef struct {
	Chosen int          `yaml:"chosen,omitempty"`
	Items  []ItemDef    `yaml:"items"`
	Keys   []BindingDef `yaml:"keys"`
}

// ItemDef is one menu item.
type ItemDef struct {
	X         int      `yaml:"x"`
	Y         int      `yaml:"y"`
	W         int      `yaml:"w"`
	H         int      `yaml:"h"`
	Highlight AttrDef  `yaml:"highlight"`
	Entries   []string `yaml:"entries"`
	Params    []int    `yaml:"params,omitempty"`
}

// BindingDef binds a key name to a menu action name.
type BindingDef struct {
	Key    string `yaml:"key"`
	Action string `yaml:"action"`
}

// VisualsDef configures the visuals of a basic window.
type VisualsDef struct {
	Images     []ImageDef     `yaml:"images,omitempty"`
	Patterns   []PatternDef   `yaml:"patterns,omitempty"`
	Animations []AnimationDef `yaml:"animations,omitempty"`
}

// ImageDef is an image drawn from text lines. Spaces at the end of short
// lines are transparent.
type ImageDef struct {
	X     int      `yaml:"x"`
	Y     int      `yaml:"y"`
	Attr  AttrDef  `yaml:"attr"`
	Lines []string `yaml:"lines"`
}

// PatternDef tiles an image over a footprint.
type PatternDef struct {
	ImageDef `yaml:",inline"`
	W        int  `yaml:"w,omitempty"`
	H        int  `yaml:"h,omitempty"`
	XScroll  int  `yaml:"x_scroll,omitempty"`
	YScroll  int  `yaml:"y_scroll,omitempty"`
	Locked   bool `yaml:"locked,omitempty"`
}

// AnimationDef is a multi-state animation moving along a path.
type AnimationDef struct {
	FrameRate float64    `yaml:"frame_rate"`
	StepSize  float64    `yaml:"step_size"`
	Path      string     `yaml:"path,omitempty"`
	At        PointDef   `yaml:"at,omitempty"`
	From      PointDef   `yaml:"from,omitempty"`
	To        PointDef   `yaml:"to,omitempty"`
	Curve     []PointDef `yaml:"curve,omitempty"`
	States    []StateDef `yaml:"states"`
}

// StateDef is one animation state.
type StateDef struct {
	Frames []ImageDef `yaml:"frames"`
}

// Parse decodes a layout definition.
func Parse(data []byte) (*Def, error) {
	var def Def
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("layout: parse: %w", err)
	}
	return &def, nil
}

// Load reads and decodes a layout file.
func Load(file string) (*Def, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("layout: read %s: %w", file, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if def.Name == "" {
		base := filepath.Base(file)
		def.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return def, nil
}

// Builtin returns the embedded layout with the given name.
func Builtin(name string) (*Def, error) {
	data, err := builtinFS.ReadFile(path.Join("defaults", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("layout: no built-in layout %q", name)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if def.Name == "" {
		def.Name = name
	}
	return def, nil
}

// Builtins lists the embedded layout names, sorted.
func Builtins() []string {
	entries, err := builtinFS.ReadDir("defaults")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if n, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
