package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	PollInterval         int    `yaml:"pollIntervalMs"`
	DisableNotifications bool   `yaml:"disableNotifications"`
	NotifyThreshold      int    `yaml:"notifyThreshold"`
	OutlineCollapsed     bool   `yaml:"outlineCollapsed"`
	LogLevel             string `yaml:"logLevel"`
	LogFile              string `yaml:"logFile"`

	// path is where the config was loaded from, so Save writes back to
	// the same file.
	path string
}

// Defaults
const (
	DefaultPollIntervalMs  = 60000
	DefaultNotifyThreshold = 3
	DefaultLogLevel        = "info"
)

// DefaultConfigDir returns the platform-appropriate config directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "ghthread")
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, ".config", "ghthread")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "ghthread")
		}
		return filepath.Join(home, ".config", "ghthread")
	default: // linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "ghthread")
		}
		return filepath.Join(home, ".config", "ghthread")
	}
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yml")
}

// Load reads the config file, returning defaults for missing fields.
// An empty path loads from the default location.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := defaults()
			cfg.path = path
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)
	cfg.path = path
	return &cfg, nil
}

// Save writes the config back to the file it was loaded from, or the
// default location for a config built in memory.
func Save(cfg *Config) error {
	configPath := cfg.path
	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpPath := configPath + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename config: %w", err)
	}

	return nil
}

// DefaultLogFile returns the default log file location.
func DefaultLogFile() string {
	return filepath.Join(DefaultConfigDir(), "ghthread.log")
}

// PollIntervalDuration returns the poll interval as a time.Duration.
func (c *Config) PollIntervalDuration() time.Duration {
	return time.Duration(c.PollInterval) * time.Millisecond
}

func defaults() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollIntervalMs
	}
	if cfg.NotifyThreshold <= 0 {
		cfg.NotifyThreshold = DefaultNotifyThreshold
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile()
	}
}
