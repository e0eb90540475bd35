package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/forager/internal/explorer"
	"github.com/five82/forager/internal/mealdb"
)

// Config captures forager's settings.
type Config struct {
	APIBase           string
	DefaultIngredient string
	RequestTimeout    time.Duration
	LogFile           string
	LogLevel          string
	LogFormat         string
}

// Environment variables that override the config file.
const (
	EnvAPIBase  = "FORAGER_API_BASE"
	EnvLogLevel = "FORAGER_LOG_LEVEL"
)

const (
	defaultConfigPath     = "~/.config/forager/config.toml"
	defaultLogFile        = "~/.local/state/forager/forager.log"
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
	defaultRequestTimeout = 15 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBase:           mealdb.DefaultBaseURL,
		DefaultIngredient: explorer.DefaultIngredient,
		RequestTimeout:    defaultRequestTimeout,
		LogFile:           mustExpand(defaultLogFile),
		LogLevel:          defaultLogLevel,
		LogFormat:         defaultLogFormat,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
// Environment overrides are applied last.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase           string `toml:"api_base"`
		DefaultIngredient string `toml:"default_ingredient"`
		RequestTimeout    string `toml:"request_timeout"`
		LogFile           string `toml:"log_file"`
		LogLevel          string `toml:"log_level"`
		LogFormat         string `toml:"log_format"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBase); v != "" {
		cfg.APIBase = v
	}
	if v := strings.ToLower(strings.TrimSpace(raw.DefaultIngredient)); v != "" {
		if !explorer.IsKnownIngredient(v) {
			return Config{}, fmt.Errorf("parse config: default_ingredient %q is not one of %s",
				raw.DefaultIngredient, strings.Join(explorer.Ingredients(), ", "))
		}
		cfg.DefaultIngredient = v
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("parse config: request_timeout %q is not a positive duration", raw.RequestTimeout)
		}
		cfg.RequestTimeout = d
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(raw.LogFormat); v != "" {
		cfg.LogFormat = v
	}

	applyEnv(&cfg)
	return cfg, nil
}

// DefaultPath returns the default config file location (unexpanded).
func DefaultPath() string {
	return defaultConfigPath
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIBase)); v != "" {
		cfg.APIBase = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
