package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/consolekit/internal/adt"
	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/layout"
	"github.com/vovakirdan/consolekit/internal/registry"
	"github.com/vovakirdan/consolekit/internal/storage"
	"github.com/vovakirdan/consolekit/internal/ui"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.consolekit/host_key.
	HostKeyPath string

	// DBPath is the path to the entries database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Program, when set, is run directly instead of showing the picker;
	// closing it ends the session.
	Program string

	// Configure is applied to every parent window before it runs.
	Configure func(pw *ui.ParentWindow)
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.consolekit/entries.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server that serves consolekit programs.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "consolekit-ssh",
	})

	if cfg.Program != "" && !registry.Exists(cfg.Program) {
		return nil, fmt.Errorf("unknown program %q", cfg.Program)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open entries database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".consolekit", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session. Every
// session gets its own engine, input buffer and parent windows.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model := NewSessionModel(SessionConfig{
		Width:     pty.Window.Width,
		Height:    pty.Window.Height,
		Program:   s.config.Program,
		Sink:      s.sink,
		Configure: s.config.Configure,
		Entries:   s.entries(),
		Logger:    s.logger.With("user", sshSession.User()),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// sink resolves edit box sinks to the entries store.
func (s *SSHServer) sink(name string) adt.Sink {
	if s.store == nil {
		return nil
	}
	return s.store.Sink(name)
}

func (s *SSHServer) entries() EntrySource {
	if s.store == nil {
		return nil
	}
	return s.store
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionConfig configures a SessionModel.
type SessionConfig struct {
	Width, Height int
	// Program skips the picker; closing it ends the session.
	Program   string
	Sink      func(name string) adt.Sink
	Configure func(pw *ui.ParentWindow)
	Entries   EntrySource
	Logger    *log.Logger
}

// SessionModel manages a full session: picker -> program -> picker.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	config   SessionConfig
	menu     MenuModel
	entries  *EntriesModel
	program  *Model
	status   string
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg SessionConfig) SessionModel {
	if cfg.Logger == nil {
		cfg.Logger = log.New(os.Stderr)
	}
	return SessionModel{
		config: cfg,
		menu:   NewMenuModel(cfg.Width, cfg.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.config.Program != "" {
		return func() tea.Msg { return startMsg(m.config.Program) }
	}
	return m.menu.Init()
}

// startMsg asks the session to run a program.
type startMsg string

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.Width = wsm.Width
		m.config.Height = wsm.Height
	}
	if id, ok := msg.(startMsg); ok {
		return m.start(string(id))
	}

	switch {
	case m.program != nil:
		return m.updateProgram(msg)
	case m.entries != nil:
		return m.updateEntries(msg)
	}
	return m.updateMenu(msg)
}

// start builds a fresh parent window for id and runs it.
func (m SessionModel) start(id string) (tea.Model, tea.Cmd) {
	back := core.NewSurface(m.config.Width, m.config.Height)
	pw, err := registry.Create(id, layout.Env{
		Sink:     m.config.Sink,
		Backdrop: ui.BorrowedBackdrop(back),
	})
	if err != nil {
		m.config.Logger.Error("cannot build program", "program", id, "error", err)
		if m.config.Program != "" {
			m.quitting = true
			return m, tea.Quit
		}
		m.status = err.Error()
		m.menu = NewMenuModel(m.config.Width, m.config.Height)
		return m, nil
	}
	if m.config.Configure != nil {
		m.config.Configure(pw)
	}

	program := NewModel(pw, Options{
		Name:   id,
		Width:  m.config.Width,
		Height: m.config.Height,
		Back:   back,
		Logger: m.config.Logger,
	})
	m.program = &program
	m.status = ""
	return m, m.program.Init()
}

// updateMenu handles updates while the picker is shown.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsEntries():
		entries := NewEntriesModel(m.config.Entries, m.config.Width, m.config.Height)
		m.entries = &entries
		return m, nil

	case m.menu.Selected() != nil:
		return m.start(m.menu.Selected().ID)
	}

	return m, cmd
}

// updateEntries handles updates while the entries browser is shown.
func (m SessionModel) updateEntries(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.entries.Update(msg)
	if entries, ok := newModel.(EntriesModel); ok {
		m.entries = &entries
	}
	if m.entries.IsQuitting() {
		m.entries = nil
		m.menu = NewMenuModel(m.config.Width, m.config.Height)
		return m, nil
	}
	return m, cmd
}

// updateProgram handles updates while a parent window runs.
func (m SessionModel) updateProgram(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.program.Update(msg)
	if program, ok := newModel.(Model); ok {
		m.program = &program
	}
	if !m.program.Done() {
		return m, cmd
	}

	program := m.program
	m.program = nil
	program.parent.Close()
	if err := program.Err(); err != nil {
		m.config.Logger.Error("program stopped", "error", err)
	}
	if program.Interrupted() || m.config.Program != "" {
		m.quitting = true
		return m, tea.Quit
	}
	m.menu = NewMenuModel(m.config.Width, m.config.Height)
	return m, nil
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch {
	case m.program != nil:
		return m.program.View()
	case m.entries != nil:
		return m.entries.View()
	}
	if m.status != "" {
		return m.menu.View() + "\n" + centerText(m.status, m.config.Width)
	}
	return m.menu.View()
}
