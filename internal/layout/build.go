package layout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/consolekit/internal/adt"
	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/input"
	"github.com/vovakirdan/consolekit/internal/mathx"
	"github.com/vovakirdan/consolekit/internal/ui"
	"github.com/vovakirdan/consolekit/internal/visual"
)

// Env supplies the runtime resources a definition refers to by name.
type Env struct {
	// Sink resolves an edit box sink name. A nil func, or a nil result,
	// leaves the edit box without a sink.
	Sink func(name string) adt.Sink
	// Backdrop is restored behind the parent while it is dragged.
	Backdrop ui.Backdrop
}

// Build turns def into a made parent window. Every reference in def is
// checked before the parent is created; on error nothing is returned.
func Build(def *Def, env Env) (*ui.ParentWindow, error) {
	spec, err := Spec(def, env)
	if err != nil {
		return nil, err
	}
	pw, err := ui.Build(spec, def.Parent.X, def.Parent.Y, def.Parent.Focus)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", def.Name, err)
	}
	return pw, nil
}

// Spec resolves def into a parent spec without making it.
func Spec(def *Def, env Env) (ui.ParentSpec, error) {
	p := def.Parent
	fail := func(err error) (ui.ParentSpec, error) {
		return ui.ParentSpec{}, fmt.Errorf("layout %s: %w", def.Name, err)
	}

	border, err := p.Border.attr()
	if err != nil {
		return fail(fmt.Errorf("border: %w", err))
	}
	background, err := p.Background.attr()
	if err != nil {
		return fail(fmt.Errorf("background: %w", err))
	}
	focusKey, err := keyOr(p.Keys.Focus, input.KeyTab)
	if err != nil {
		return fail(err)
	}
	closeKey, err := keyOr(p.Keys.Close, input.KeyEscape)
	if err != nil {
		return fail(err)
	}
	confirmKey, err := keyOr(p.Keys.Confirm, input.KeyEnter)
	if err != nil {
		return fail(err)
	}
	if p.DelayMS < 0 {
		return fail(fmt.Errorf("%w: delay %dms", ui.ErrGeometry, p.DelayMS))
	}

	modes := make([]ui.Mode, len(def.Windows))
	for i, wd := range def.Windows {
		if modes[i], err = ui.ParseMode(wd.Mode); err != nil {
			return fail(fmt.Errorf("window %d: %w", i, err))
		}
	}

	windows := make([]*ui.Window, 0, len(def.Windows))
	for i, wd := range def.Windows {
		w, err := buildWindow(wd, modes[i], modes, env)
		if err != nil {
			return fail(fmt.Errorf("window %d: %w", i, err))
		}
		windows = append(windows, w)
	}

	return ui.ParentSpec{
		Width:      p.Width,
		Height:     p.Height,
		Separators: p.Separators.separators(),
		Windows:    windows,
		Back:       env.Backdrop,
		Delay:      time.Duration(p.DelayMS) * time.Millisecond,
		FocusKey:   focusKey,
		CloseKey:   closeKey,
		ConfirmKey: confirmKey,
		Border:     border,
		Background: background,
		Fixed:      p.Fixed,
	}, nil
}

func buildWindow(wd WindowDef, mode ui.Mode, modes []ui.Mode, env Env) (*ui.Window, error) {
	var state ui.StateFlags
	for _, f := range wd.Flags {
		flag, err := ui.ParseStateFlag(f)
		if err != nil {
			return nil, err
		}
		state |= flag
	}
	bg, err := wd.Background.attr()
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	receivers := make([]ui.Receiver, 0, len(wd.Receivers))
	for j, r := range wd.Receivers {
		if r.Window < 0 || r.Window >= len(modes) {
			return nil, fmt.Errorf("%w: receiver %d targets window %d", ui.ErrIndexOutOfRange, j, r.Window)
		}
		inst, err := ui.ParseInstruction(modes[r.Window], r.Instruction)
		if err != nil {
			return nil, fmt.Errorf("receiver %d: %w", j, err)
		}
		receivers = append(receivers, ui.Receiver{Window: r.Window, Instruction: inst})
	}

	spec := ui.WindowSpec{
		Coord:      core.Point{X: wd.X, Y: wd.Y},
		ViewW:      wd.ViewW,
		ViewH:      wd.ViewH,
		Width:      wd.Width,
		Height:     wd.Height,
		Receivers:  receivers,
		State:      state,
		Background: bg,
		Data:       wd.Data,
	}

	switch mode {
	case ui.ModeBasic:
		v, err := buildVisuals(wd.Visuals)
		if err != nil {
			return nil, err
		}
		spec.Content = &ui.BasicContent{Visuals: v}
	case ui.ModeEditBox:
		ed := wd.Edit
		if ed == nil {
			ed = &EditDef{}
		}
		io := ui.NewTextIO(ed.Limit)
		if ed.Read != "" {
			if io.Read, err = ui.ParseReadMode(ed.Read); err != nil {
				return nil, err
			}
		}
		if ed.Sink != "" && env.Sink != nil {
			spec.Sink = env.Sink(ed.Sink)
		}
		spec.Content = &ui.EditBoxContent{IO: io}
	case ui.ModeMessageBox:
		md := wd.Message
		if md == nil {
			md = &MessageDef{}
		}
		io := ui.NewTextIO(md.Limit)
		if md.Write != "" {
			if io.Write, err = ui.ParseWriteMode(md.Write); err != nil {
				return nil, err
			}
		}
		messages := md.Messages
		if md.Text != "" {
			messages = append([]string{md.Text}, messages...)
		}
		io.Load(messages...)
		spec.Content = &ui.MessageBoxContent{IO: io}
	case ui.ModeMenu:
		m, err := buildMenu(wd.Menu)
		if err != nil {
			return nil, err
		}
		spec.Content = &ui.MenuContent{Menu: m}
	}

	return ui.NewWindow(spec)
}

func buildMenu(md *MenuDef) (*ui.Menu, error) {
	if md == nil {
		return nil, fmt.Errorf("%w: menu window without menu block", ui.ErrUnsupported)
	}
	m := &ui.Menu{Chosen: md.Chosen}
	for i, it := range md.Items {
		hl, err := it.Highlight.attr()
		if err != nil {
			return nil, fmt.Errorf("item %d highlight: %w", i, err)
		}
		m.Items = append(m.Items, &ui.MenuItem{
			Location:  core.Point{X: it.X, Y: it.Y},
			W:         it.W,
			H:         it.H,
			Entries:   it.Entries,
			Params:    it.Params,
			Highlight: hl,
		})
	}
	for _, b := range md.Keys {
		k, err := input.ParseKey(b.Key)
		if err != nil {
			return nil, err
		}
		a, err := ui.ParseMenuAction(b.Action)
		if err != nil {
			return nil, err
		}
		m.Keys = append(m.Keys, ui.KeyBinding{Key: k, Handler: a})
	}
	return m, nil
}

func buildVisuals(vd *VisualsDef) (*visual.Visuals, error) {
	if vd == nil {
		return nil, nil
	}
	v := &visual.Visuals{}
	for _, id := range vd.Images {
		img, err := id.image()
		if err != nil {
			return nil, err
		}
		v.Images = append(v.Images, img)
	}
	for _, pd := range vd.Patterns {
		tile, err := pd.image()
		if err != nil {
			return nil, err
		}
		p := visual.NewPattern(tile)
		if pd.W > 0 {
			p.FootW = pd.W
		}
		if pd.H > 0 {
			p.FootH = pd.H
		}
		p.XScroll, p.YScroll, p.Locked = pd.XScroll, pd.YScroll, pd.Locked
		v.Patterns = append(v.Patterns, p)
	}
	for i, ad := range vd.Animations {
		a, err := ad.animation()
		if err != nil {
			return nil, fmt.Errorf("animation %d: %w", i, err)
		}
		v.Animations = append(v.Animations, a)
	}
	return v, nil
}

func (ad AnimationDef) animation() (*visual.Animation, error) {
	a := &visual.Animation{
		FrameRate: ad.FrameRate,
		StepSize:  ad.StepSize,
		Global:    ad.At.point(),
	}
	switch ad.Path {
	case "", "stationary":
		a.Path = visual.Stationary
	case "linear":
		a.Path = visual.Linear
		from, to := ad.From.point(), ad.To.point()
		a.Line = mathx.Vector2{Tail: from, DX: to.X - from.X, DY: to.Y - from.Y}
		a.Global = from
	case "bezier":
		if len(ad.Curve) != 4 {
			return nil, fmt.Errorf("%w: bezier path needs 4 points, got %d", ui.ErrGeometry, len(ad.Curve))
		}
		a.Path = visual.Bezier
		a.Curve = mathx.Curve2{P0: ad.Curve[0].point(), P1: ad.Curve[1].point(), P2: ad.Curve[2].point(), P3: ad.Curve[3].point()}
		a.Global = a.Curve.P0
	default:
		return nil, fmt.Errorf("%w: path %q", ui.ErrUnsupported, ad.Path)
	}
	for _, sd := range ad.States {
		var st visual.AnimationState
		for _, fd := range sd.Frames {
			img, err := fd.image()
			if err != nil {
				return nil, err
			}
			st.Frames = append(st.Frames, img)
		}
		a.States = append(a.States, st)
	}
	return a, nil
}

func (id ImageDef) image() (*visual.Image, error) {
	attr, err := id.Attr.attr()
	if err != nil {
		return nil, err
	}
	if len(id.Lines) == 0 {
		return nil, fmt.Errorf("%w: image without lines", ui.ErrGeometry)
	}
	img := visual.ImageFromText(id.Lines, attr)
	img.Location = core.Point{X: id.X, Y: id.Y}
	return img, nil
}

func (p PointDef) point() mathx.Point2 {
	return mathx.Point2{X: p.X, Y: p.Y}
}

func (s SeparatorsDef) separators() ui.Separators {
	var seps ui.Separators
	for _, h := range s.Horizontal {
		seps.Horizontal = append(seps.Horizontal, ui.SeparatorEntry{Offset: core.Point{X: h.X, Y: h.Y}, Extent: h.Extent})
	}
	for _, v := range s.Vertical {
		seps.Vertical = append(seps.Vertical, ui.SeparatorEntry{Offset: core.Point{X: v.X, Y: v.Y}, Extent: v.Extent})
	}
	return seps
}

func (a AttrDef) attr() (core.Attr, error) {
	fg, err := color(a.Fg)
	if err != nil {
		return 0, err
	}
	bg, err := color(a.Bg)
	if err != nil {
		return 0, err
	}
	return core.MakeAttr(fg, bg), nil
}

func color(name string) (core.Color, error) {
	if name == "" {
		return core.Black, nil
	}
	c, ok := core.ParseColor(name)
	if !ok {
		return 0, fmt.Errorf("%w: colour %q", ui.ErrUnsupported, name)
	}
	return c, nil
}

func keyOr(name string, def input.Key) (input.Key, error) {
	if name == "" {
		return def, nil
	}
	return input.ParseKey(name)
}
