package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/oskolkov/snaketui/internal/audio"
	"github.com/oskolkov/snaketui/internal/config"
	"github.com/oskolkov/snaketui/internal/core"
	"github.com/oskolkov/snaketui/internal/game"
	"github.com/oskolkov/snaketui/internal/persist"
	"github.com/oskolkov/snaketui/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at <DataDir>/host_key.
	HostKeyPath string

	// DataDir is the server data directory. Per-user save slots live
	// under <DataDir>/users/<name>.
	DataDir string

	// DBPath is the path to the run history database.
	DBPath string

	// FPS is the frame rate for remote sessions.
	FPS int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DataDir:     "~/.snaketui",
		DBPath:      "~/.snaketui/runs.db",
		FPS:         30,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the game over SSH via Wish. All connected players share
// one run history database; save slots are kept per SSH user.
type SSHServer struct {
	config   SSHServerConfig
	gameConf config.Config
	server   *ssh.Server
	store    *storage.Store
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, gameConf config.Config) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snaketui-ssh",
	})

	dataDir, err := expandHome(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	cfg.DataDir = dataDir

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open run history database", "error", err)
		// Continue without run recording
	}

	srv := &SSHServer{
		config:   cfg,
		gameConf: gameConf,
		store:    store,
		logger:   logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath = filepath.Join(dataDir, "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
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

// teaHandler creates a Bubble Tea program for each SSH session. Remote
// sessions run muted; audio only makes sense on a local terminal.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		FPS:     s.config.FPS,
		Seed:    time.Now().UnixNano(),
	}

	session := game.NewSession(
		s.gameConf.GameGrid(),
		s.gameConf.LevelTable(),
		s.gameConf.Scoring.FoodPoints,
		cfg.Seed,
	)

	saves := persist.New(s.userDir(sshSession.User()), s.logger)
	session.SetHighScore(saves.LoadHighScore())

	model := NewGameModel(session, audio.NopSink{}, saves, s.store, s.logger, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// userDir returns the per-user save directory, with the SSH username
// reduced to a safe path component.
func (s *SSHServer) userDir(user string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, user)
	if name == "" || name == "." || name == ".." {
		name = "anonymous"
	}
	return filepath.Join(s.config.DataDir, "users", name)
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

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
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

// expandHome resolves a leading ~ in path against the user home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
