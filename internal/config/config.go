package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds the watchhound settings.
type Config struct {
	// Git settings
	GitBin string `json:"git_bin"`

	// Refresh settings
	DebounceSeconds int      `json:"debounce_seconds"`
	IgnoreDirs      []string `json:"ignore_dirs"`

	// Logging
	LogFile string `json:"log_file"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		GitBin:          "git",
		DebounceSeconds: 5,
		IgnoreDirs: []string{
			"node_modules",
			"vendor",
			"dist",
			"build",
			"target",
			".cache",
			".idea",
			".vscode",
		},
	}
}

// Debounce returns the quiet window as a duration.
func (c *Config) Debounce() time.Duration {
	if c.DebounceSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.DebounceSeconds) * time.Second
}

// Manager handles configuration loading and saving.
type Manager struct {
	configPath string
	config     *Config
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "watchhound", "config.json"), nil
}

// NewManager creates a configuration manager for the given file path.
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		config:     DefaultConfig(),
	}
}

// Load reads the configuration from disk, creating defaults if needed.
func (m *Manager) Load() error {
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return m.Save()
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse config JSON: %w", err)
	}

	m.config = config
	return nil
}

// Save writes the current configuration to disk.
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	return m.config
}
