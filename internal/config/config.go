package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvDataDir  = "BG3_DATA_DIR"
	EnvLogLevel = "BG3_LOG_LEVEL"
	EnvNoColor  = "BG3_NO_COLOR"
)

// StateDir is the per-data-directory folder holding config, logs and history.
const StateDir = ".bg3"

// Config represents the flat planner configuration
type Config struct {
	Version  string `json:"version"`
	LogLevel string `json:"log_level,omitempty"` // debug, info, warn, error
	NoColor  bool   `json:"no_color,omitempty"`
	History  *bool  `json:"history,omitempty"` // audit log; nil means enabled

	// DataDir is resolved at load time and never persisted.
	DataDir string `json:"-"`
}

// Default returns the configuration used when no config file exists.
func Default(dataDir string) *Config {
	return &Config{
		Version:  "1.0",
		LogLevel: "info",
		DataDir:  dataDir,
	}
}

// Load resolves the data directory and reads its configuration.
// Resolution order for the data directory: dataDirFlag, $BG3_DATA_DIR
// (a .env file in the working directory is honoured), then the working
// directory. Environment variables override the config file.
func Load(dataDirFlag string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	dataDir, err := resolveDataDir(dataDirFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(dataDir)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default(dataDir)
	} else if err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveDataDir(flag string) (string, error) {
	dir := flag
	if dir == "" {
		dir = os.Getenv(EnvDataDir)
	}
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = cwd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve data directory: %w", err)
	}
	return abs, nil
}

func applyEnv(cfg *Config) error {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}
	if v := os.Getenv(EnvNoColor); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvNoColor, v, err)
		}
		cfg.NoColor = noColor
	}
	return nil
}

// LoadConfig reads .bg3/config.json from the specified data directory.
// The returned error wraps os.ErrNotExist when there is no config file.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, StateDir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default(dir)
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.DataDir = dir

	return cfg, nil
}

// SaveConfig writes .bg3/config.json to the data directory
func SaveConfig(dir string, cfg *Config) error {
	stateDir := filepath.Join(dir, StateDir)
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", StateDir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(stateDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// HistoryEnabled reports whether mutations are recorded in the audit log.
func (c *Config) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

// HistoryPath returns the audit database path.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.DataDir, StateDir, "history.db")
}

// LogPath returns the rotating log file path.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, StateDir, "logs", "bg3.log")
}
