package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/input"
	"github.com/vovakirdan/consolekit/internal/ui"
)

// Options configures a Model.
type Options struct {
	// Name labels screenshots.
	Name string
	// Width and Height size the output surface.
	Width, Height int
	// Back is the backdrop the parent was built with. It is resized along
	// with the output surface; nil means none.
	Back   *core.Surface
	Logger *log.Logger
	// Info is the buffer hotkey clicks write to; nil allocates the
	// engine's default.
	Info []byte
}

// Model is the Bubble Tea model that runs one parent window. Ticks step
// the engine; key and mouse messages are queued for it to poll.
type Model struct {
	run         uint64
	name        string
	engine      *ui.Engine
	parent      *ui.ParentWindow
	buf         *input.Buffer
	back        *core.Surface
	keys        KeyMap
	mouse       *mouseTracker
	quitting    bool
	interrupted bool
	err         error
}

// NewModel creates a model driving pw.
func NewModel(pw *ui.ParentWindow, opts Options) Model {
	buf := input.NewBuffer()
	engineOpts := []ui.EngineOption{
		ui.WithLogger(opts.Logger),
		// Bubble Tea paces steps with ticks.
		ui.WithSleep(func(time.Duration) {}),
	}
	if opts.Info != nil {
		engineOpts = append(engineOpts, ui.WithInfo(opts.Info))
	}
	out := core.NewSurface(opts.Width, opts.Height)
	if opts.Back != nil {
		out.CopyFrom(opts.Back)
	}

	return Model{
		run:    nextRun(),
		name:   opts.Name,
		engine: ui.NewEngine(buf, out, engineOpts...),
		parent: pw,
		buf:    buf,
		back:   opts.Back,
		keys:   DefaultKeyMap(),
		mouse:  &mouseTracker{},
	}
}

// Init activates the parent window and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.engine.Activate(m.parent)
	return tickCmd(m.run, m.parent.Delay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.buf.PushMouse(m.mouse.state(msg))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Run != m.run {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.engine.Deactivate(m.parent)
		m.quitting = true
		m.interrupted = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	pushKey(m.buf, msg)
	return m, nil
}

// handleResize resizes the output surface and redraws the parent on it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	out := m.engine.Output()
	out.Resize(msg.Width, msg.Height)
	out.Clear(core.Blank)
	if m.back != nil {
		m.back.Resize(msg.Width, msg.Height)
		out.CopyFrom(m.back)
	}
	if m.engine.IsActive(m.parent) {
		m.engine.Redraw(m.parent)
	}
	return m, nil
}

// handleTick runs one engine step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.engine.Step(m.parent); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if !m.engine.IsActive(m.parent) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.run, m.parent.Delay)
}

// saveScreenshot saves the composed surface to a file.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".consolekit", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.name, timestamp))

	//nolint:errcheck // Best-effort save, the program continues regardless
	os.WriteFile(path, []byte(m.engine.Output().String()), 0o600)
}

// View renders the composed surface.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderSurface(m.engine.Output())
}

// Done reports whether the parent window closed or the user quit.
func (m Model) Done() bool { return m.quitting }

// Interrupted reports whether the user quit with the driver's quit key
// rather than the parent's close key.
func (m Model) Interrupted() bool { return m.interrupted }

// Info returns the info buffer hotkey clicks were copied into.
func (m Model) Info() []byte { return m.engine.Info() }

// Err returns the error that stopped the model, if any.
func (m Model) Err() error { return m.err }

// Run runs pw in the terminal until it closes and returns the info buffer.
func Run(pw *ui.ParentWindow, opts Options) ([]byte, error) {
	model := NewModel(pw, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	fm, ok := final.(Model)
	if !ok {
		return model.Info(), nil
	}
	return fm.Info(), fm.Err()
}
