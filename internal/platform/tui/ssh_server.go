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

	"github.com/playform/playform/internal/catalog"
	"github.com/playform/playform/internal/config"
	"github.com/playform/playform/internal/core"
)

// SSHServer serves the full platform over SSH via Wish. Every
// connection gets its own session model against the shared catalog.
type SSHServer struct {
	cfg    config.Config
	server *ssh.Server
	store  *catalog.Store
	logger *log.Logger
}

// NewSSHServer creates an SSH server around an open catalog store.
func NewSSHServer(store *catalog.Store, cfg config.Config) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "playform-ssh",
	})

	srv := &SSHServer{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.SSH.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".playform", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	idle := time.Duration(cfg.SSH.IdleMinutes) * time.Minute

	server, err := wish.NewServer(
		wish.WithAddress(cfg.SSH.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(idle),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(session ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := session.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", session.User())
		return nil, nil
	}

	// Each session gets its own canvas sized to the remote terminal.
	cfg := s.cfg
	cfg.Canvas.Width = core.Clamp(pty.Window.Width-4, 20, cfg.Canvas.Width)
	cfg.Canvas.Height = core.Clamp(pty.Window.Height-10, 10, cfg.Canvas.Height)

	return NewSession(s.store, cfg), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs session lifecycle events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(session ssh.Session) {
		s.logger.Info("session started",
			"user", session.User(),
			"remote", session.RemoteAddr().String(),
		)
		next(session)
		s.logger.Info("session ended",
			"user", session.User(),
			"remote", session.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until a shutdown
// signal arrives.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.cfg.SSH.Address)

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
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.SSH.Address
}
