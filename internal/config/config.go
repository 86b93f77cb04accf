// Package config handles configuration loading and defaults.
//
// Values are layered, later sources overriding earlier ones:
//
//  1. Defaults
//  2. User config file (os config dir, taskwell/taskwell.toml)
//  3. Project config file (taskwell.toml or .taskwell.toml in the cwd)
//  4. Environment variables (TASKWELL_*)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultDataDir          = "~/.taskwell"
	DefaultBackend          = "file"
	DefaultTheme            = "plain"
	DefaultUrgentWithinDays = 2
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
)

// Backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds the full configuration for taskwell.
type Config struct {
	// DataDir is where the task store lives. The file name inside it is
	// chosen by the backend (tasks.json or tasks.db).
	DataDir string `toml:"data_dir"`

	// DataFile overrides the full store path; empty means derive from
	// DataDir and Backend.
	DataFile string `toml:"data_file"`

	// Backend selects the repository: "file", "sqlite", or "memory".
	Backend string `toml:"backend"`

	// Theme selects the TUI skin: "plain" or "slate".
	Theme string `toml:"theme"`

	// UrgentWithinDays flags a pending task as urgent when it is due in
	// this many days or fewer (overdue included).
	UrgentWithinDays int `toml:"urgent_within_days"`

	// Logging configuration
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Load builds the configuration from all sources.
func Load() (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path := findUserConfigFile(); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}
	if path := findProjectConfigFile(); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DataPath returns the resolved store path for the configured backend.
func (c *Config) DataPath() string {
	if c.DataFile != "" {
		return c.DataFile
	}
	name := "tasks.json"
	if c.Backend == BackendSQLite {
		name = "tasks.db"
	}
	return filepath.Join(c.DataDir, name)
}

func setDefaults(cfg *Config) {
	cfg.DataDir = DefaultDataDir
	cfg.Backend = DefaultBackend
	cfg.Theme = DefaultTheme
	cfg.UrgentWithinDays = DefaultUrgentWithinDays
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKWELL_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TASKWELL_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("TASKWELL_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("TASKWELL_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TASKWELL_URGENT_WITHIN_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.UrgentWithinDays = n
		}
	}
	if v := os.Getenv("TASKWELL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKWELL_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// finalize expands paths and validates enumerated values.
func finalize(cfg *Config) error {
	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.DataFile = expandPath(cfg.DataFile)

	switch cfg.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q (expected file, sqlite, or memory)", cfg.Backend)
	}
	return nil
}

// findUserConfigFile returns the user-level config path, or "".
func findUserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "taskwell", "taskwell.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// findProjectConfigFile returns the project-level config path, or "".
func findProjectConfigFile() string {
	for _, name := range []string{"taskwell.toml", ".taskwell.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}
