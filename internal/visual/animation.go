package visual

import (
	"math"

	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/mathx"
)

// PathKind selects how an animation moves.
type PathKind int

const (
	Stationary PathKind = iota
	Linear
	Bezier
)

// AnimationState is one sequence of frames. Cur is fractional so frame
// rates below one frame per tick work.
type AnimationState struct {
	Frames []*Image
	Cur    float64
}

// Animation cycles the frames of its current state and moves along a path
// parameterised by T in [0, 1].
type Animation struct {
	States    []AnimationState
	CurState  int
	FrameRate float64
	T         float64
	StepSize  float64
	Global    mathx.Point2
	Path      PathKind
	Line      mathx.Vector2
	Curve     mathx.Curve2
}

// State returns the current state, or nil when the animation has none.
func (a *Animation) State() *AnimationState {
	if a.CurState < 0 || a.CurState >= len(a.States) {
		return nil
	}
	return &a.States[a.CurState]
}

// SetState selects a state. Indices outside the state list select state 0.
func (a *Animation) SetState(i int) {
	if i < 0 || i >= len(a.States) {
		i = 0
	}
	a.CurState = i
}

// SetFrame selects a frame of the current state. Values outside the frame
// list select frame 0.
func (a *Animation) SetFrame(f float64) {
	st := a.State()
	if st == nil {
		return
	}
	if f < 0 || f >= float64(len(st.Frames)) {
		f = 0
	}
	st.Cur = f
}

// IndexFrame selects frame i of the current state, clamped to the last frame.
func (a *Animation) IndexFrame(i int) {
	st := a.State()
	if st == nil || len(st.Frames) == 0 {
		return
	}
	st.Cur = float64(core.Clamp(i, 0, len(st.Frames)-1))
}

// Frame returns the integer index of the current frame.
func (a *Animation) Frame() int {
	st := a.State()
	if st == nil {
		return 0
	}
	return int(math.Floor(st.Cur))
}

// ActiveImage returns the frame to draw.
func (a *Animation) ActiveImage() *Image {
	st := a.State()
	if st == nil || len(st.Frames) == 0 {
		return nil
	}
	return st.Frames[a.Frame()]
}

// Update advances the path parameter and the frame counter one tick.
func (a *Animation) Update() {
	a.T += a.StepSize
	if a.T > 1 {
		a.T = 0
	}
	if st := a.State(); st != nil {
		a.SetFrame(st.Cur + a.FrameRate)
	}
	switch a.Path {
	case Linear:
		a.Global = mathx.Along(a.Line, a.T)
	case Bezier:
		a.Global = mathx.Bezier(a.Curve, a.T)
	}
}

// Draw updates the animation and draws its active frame at its position.
func (a *Animation) Draw(t Target) {
	a.Update()
	img := a.ActiveImage()
	if img == nil {
		return
	}
	img.Location = core.Point{X: int(a.Global.X), Y: int(a.Global.Y)}
	img.Draw(t)
}
