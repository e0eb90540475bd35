package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/five82/forager/internal/config"
	"github.com/five82/forager/internal/explorer"
	"github.com/five82/forager/internal/logging"
	"github.com/five82/forager/internal/mealdb"
	"github.com/five82/forager/internal/prefs"
	"github.com/five82/forager/internal/state"
	"github.com/five82/forager/internal/ui"
)

// Options configure the forager application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/forager/prefs.toml
	// LogPath overrides the configured log file ("stderr" for CLI runs).
	LogPath string
}

// Services is the wired object graph shared by the TUI and CLI commands.
type Services struct {
	Config      config.Config
	Logger      *slog.Logger
	Client      *mealdb.Client
	Store       *state.Store
	Coordinator *explorer.Coordinator

	logPath string
	closer  io.Closer
}

// Setup loads configuration and builds the logger, client, store and
// coordinator. Callers must Close the result.
func Setup(opts Options) (*Services, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logPath := cfg.LogFile
	if opts.LogPath != "" {
		logPath = opts.LogPath
	}
	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Path:   logPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	client, err := mealdb.NewClient(cfg.APIBase, mealdb.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("init recipe client: %w", err)
	}

	store := &state.Store{}
	coord, err := explorer.New(explorer.Options{
		Fetcher:           client,
		Store:             store,
		Logger:            logger,
		DefaultIngredient: cfg.DefaultIngredient,
	})
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("init explorer: %w", err)
	}

	logger.Debug("forager configured",
		"api_base", client.BaseURL(),
		"default_ingredient", cfg.DefaultIngredient,
		"request_timeout", cfg.RequestTimeout,
	)

	return &Services{
		Config:      cfg,
		Logger:      logger,
		Client:      client,
		Store:       store,
		Coordinator: coord,
		logPath:     logPath,
		closer:      closer,
	}, nil
}

// Close releases the log file.
func (s *Services) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// LogFile returns the path the logger writes to, or "" when logs go to a
// terminal stream or nowhere.
func (s *Services) LogFile() string {
	switch s.logPath {
	case "", "stdout", "stderr":
		return ""
	}
	return s.logPath
}

// Run boots the forager TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	svc, err := Setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	svc.Logger.Info("forager started", "config", opts.ConfigPath)
	err = ui.Run(ui.Options{
		Context:     ctx,
		Coordinator: svc.Coordinator,
		Logger:      svc.Logger,
		LogPath:     svc.LogFile(),
		Prefs:       prefs.Load(opts.PrefsPath),
		PrefsPath:   opts.PrefsPath,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		svc.Logger.Error("tui exited", "error", err)
		return fmt.Errorf("run tui: %w", err)
	}
	svc.Logger.Info("forager stopped")
	return nil
}
