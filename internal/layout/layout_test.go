package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/consolekit/internal/adt"
	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/input"
	"github.com/vovakirdan/consolekit/internal/ui"
)

const smallYAML = `
name: small
parent:
  width: 20
  height: 8
  border: { fg: brightwhite, bg: blue }
  background: { bg: blue }
windows:
  - x: 1
    y: 1
    width: 8
    height: 2
    mode: edit
    flags: [can_receive_focus]
    edit: { read: numeric, sink: count }
  - x: 10
    y: 1
    width: 8
    height: 4
    mode: basic
    visuals:
      images:
        - { x: 0, y: 0, attr: { fg: yellow }, lines: ["ab", "c"] }
`

func parseSmall(t *testing.T) *Def {
	t.Helper()
	def, err := Parse([]byte(smallYAML))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return def
}

func TestBuildSmall(t *testing.T) {
	var asked []string
	sink := adt.ListSink{L: &adt.List[adt.Value]{}}
	pw, err := Build(parseSmall(t), Env{Sink: func(name string) adt.Sink {
		asked = append(asked, name)
		return sink
	}})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if pw.FocusKey != input.KeyTab || pw.CloseKey != input.KeyEscape || pw.ConfirmKey != input.KeyEnter {
		t.Errorf("keys = %v %v %v, expected tab esc enter defaults", pw.FocusKey, pw.CloseKey, pw.ConfirmKey)
	}
	if pw.Border != core.MakeAttr(core.BrightWhite, core.Blue) {
		t.Errorf("border = %#x", pw.Border)
	}
	if len(asked) != 1 || asked[0] != "count" {
		t.Errorf("sink names asked = %v", asked)
	}

	edit := pw.Window(0)
	if edit.Mode() != ui.ModeEditBox || edit.IO().Read != ui.Numeric {
		t.Errorf("window 0: mode %v read %v", edit.Mode(), edit.IO().Read)
	}
	if edit.IO().Limit() != 16 {
		t.Errorf("limit = %d, expected the display area 16", edit.IO().Limit())
	}
	if edit.Sink == nil {
		t.Error("edit box should have the resolved sink")
	}

	v := pw.Window(1).Visuals()
	if v == nil || len(v.Images) != 1 {
		t.Fatal("basic window should carry one image")
	}
	img := v.Images[0]
	if img.W != 2 || img.H != 2 || img.Cells[0].Glyph != 'a' || img.Cells[0].Attr != core.MakeAttr(core.Yellow, core.Black) {
		t.Errorf("image = %dx%d first cell %+v", img.W, img.H, img.Cells[0])
	}
	if !img.Cells[3].Flags.Has(core.FlagNonVisible) {
		t.Error("padding of a short line should be non-visible")
	}
}

func TestBuildRejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(d *Def)
		expected error
	}{
		{
			name: "receiver out of range",
			mutate: func(d *Def) {
				d.Windows[0].Receivers = []ReceiverDef{{Window: 5, Instruction: "index_frame"}}
			},
			expected: ui.ErrIndexOutOfRange,
		},
		{
			name: "instruction for another mode",
			mutate: func(d *Def) {
				d.Windows[1].Receivers = []ReceiverDef{{Window: 0, Instruction: "index_frame"}}
			},
			expected: ui.ErrUnsupported,
		},
		{
			name:     "unknown colour",
			mutate:   func(d *Def) { d.Windows[1].Background.Bg = "mauve" },
			expected: ui.ErrUnsupported,
		},
		{
			name:     "unknown flag",
			mutate:   func(d *Def) { d.Windows[0].Flags = append(d.Windows[0].Flags, "sticky") },
			expected: ui.ErrUnsupported,
		},
		{
			name:     "unknown mode",
			mutate:   func(d *Def) { d.Windows[1].Mode = "canvas" },
			expected: ui.ErrUnsupported,
		},
		{
			name:     "focus on ineligible window",
			mutate:   func(d *Def) { d.Parent.Focus = 1 },
			expected: ui.ErrFocusIneligible,
		},
		{
			name:     "window leaves parent",
			mutate:   func(d *Def) { d.Windows[1].X = 15 },
			expected: ui.ErrGeometry,
		},
		{
			name: "short bezier",
			mutate: func(d *Def) {
				d.Windows[1].Visuals.Animations = []AnimationDef{{
					Path:  "bezier",
					Curve: []PointDef{{}, {}, {}},
				}}
			},
			expected: ui.ErrGeometry,
		},
		{
			name:     "menu without block",
			mutate:   func(d *Def) { d.Windows[1].Mode = "menu" },
			expected: ui.ErrUnsupported,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def := parseSmall(t)
			tc.mutate(def)
			pw, err := Build(def, Env{})
			if !errors.Is(err, tc.expected) {
				t.Errorf("Build() error = %v, expected %v", err, tc.expected)
			}
			if pw != nil {
				t.Error("a failed Build should not return a parent window")
			}
		})
	}
}

func TestBuiltinDemo(t *testing.T) {
	def, err := Builtin("demo")
	if err != nil {
		t.Fatalf("Builtin() error: %v", err)
	}
	sinks := map[string]adt.Sink{}
	pw, err := Build(def, Env{Sink: func(name string) adt.Sink {
		s := adt.QueueSink{Q: &adt.Queue[adt.Value]{}}
		sinks[name] = s
		return s
	}})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if pw.Width != 55 || pw.Height != 25 || pw.Delay != 50*time.Millisecond {
		t.Errorf("parent %dx%d delay %v", pw.Width, pw.Height, pw.Delay)
	}
	if pw.Location != (core.Point{X: 5, Y: 10}) || pw.Focus() != 2 {
		t.Errorf("location %v focus %d", pw.Location, pw.Focus())
	}

	modes := []ui.Mode{ui.ModeEditBox, ui.ModeBasic, ui.ModeEditBox, ui.ModeMessageBox, ui.ModeMenu}
	if len(pw.Windows()) != len(modes) {
		t.Fatalf("%d windows, expected %d", len(pw.Windows()), len(modes))
	}
	for i, m := range modes {
		if pw.Window(i).Mode() != m {
			t.Errorf("window %d mode %v, expected %v", i, pw.Window(i).Mode(), m)
		}
	}

	menu := pw.Window(4)
	if len(menu.Receivers) != 1 || menu.Receivers[0] != (ui.Receiver{Window: 1, Instruction: ui.IndexFrame}) {
		t.Errorf("menu receivers = %v", menu.Receivers)
	}
	if got := menu.Display().Row(3); got != "   M1    " {
		t.Errorf("menu row 3 = %q", got)
	}

	msg := pw.Window(3).IO()
	if msg.Write != ui.WriteCharacter || msg.Messages() != 1 {
		t.Errorf("message box write %v messages %d", msg.Write, msg.Messages())
	}
	if pw.Window(0).IO().Read != ui.PrintOnly || pw.Window(0).IO().Limit() != 80 {
		t.Errorf("notes box read %v limit %d", pw.Window(0).IO().Read, pw.Window(0).IO().Limit())
	}
	if _, ok := sinks["notes"]; !ok {
		t.Error("notes sink not requested")
	}
	if _, ok := sinks["name"]; !ok {
		t.Error("name sink not requested")
	}

	anim := pw.Window(1).Visuals().Animations[0]
	if len(anim.States) != 1 || len(anim.States[0].Frames) != 2 {
		t.Errorf("animation states/frames wrong: %+v", anim.States)
	}

	seps := pw.BackData()
	if seps[5*55+10] != ui.SkinJoined {
		t.Errorf("separators should cross at (10,5), got %v", seps[5*55+10])
	}
}

func TestBuiltinsAndLoad(t *testing.T) {
	names := Builtins()
	found := false
	for _, n := range names {
		if n == "demo" {
			found = true
		}
	}
	if !found {
		t.Errorf("Builtins() = %v, expected demo", names)
	}
	if _, err := Builtin("nope"); err == nil {
		t.Error("unknown built-in should fail")
	}

	path := filepath.Join(t.TempDir(), "mine.yaml")
	if err := os.WriteFile(path, []byte(smallYAML[len("\nname: small"):]), 0o644); err != nil {
		t.Fatal(err)
	}
	def, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if def.Name != "mine" || len(def.Windows) != 2 {
		t.Errorf("loaded %q with %d windows", def.Name, len(def.Windows))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
	if _, err := Parse([]byte("parent: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
}
