// Package config holds the appsweep configuration: the well-known search
// roots, the application directories and logging settings. Search roots
// are configuration, not derived by the scan core.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// SearchRoots are the well-known locations scanned for leftovers.
	SearchRoots []string `yaml:"search_roots"`
	// ExtraRoots are user-supplied additions to SearchRoots.
	ExtraRoots []string `yaml:"extra_roots"`
	// ApplicationDirs are where installed .app bundles live; they feed the
	// exclusion set and the app catalog.
	ApplicationDirs []string `yaml:"application_dirs"`
	// TrashDir is where removed entries are moved to.
	TrashDir string `yaml:"trash_dir"`
	Log      Log    `yaml:"log"`
}

// Log holds logging settings.
type Log struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Roots returns the search roots plus any extra roots, in order.
func (c *Config) Roots() []string {
	roots := make([]string, 0, len(c.SearchRoots)+len(c.ExtraRoots))
	roots = append(roots, c.SearchRoots...)
	roots = append(roots, c.ExtraRoots...)
	return roots
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyFallbacks()
	return &cfg, nil
}

// LoadOrDefault loads the config at path, the config at DefaultPath, or
// the built-in defaults, in that order of preference.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if p, err := DefaultPath(); err == nil {
		if _, statErr := os.Stat(p); statErr == nil {
			return Load(p)
		}
	}
	return Default()
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "appsweep", "config.yaml"), nil
}

// applyFallbacks fills fields a hand-edited config may have left empty.
func (c *Config) applyFallbacks() {
	def, err := Default()
	if err != nil {
		return
	}
	if len(c.SearchRoots) == 0 {
		c.SearchRoots = def.SearchRoots
	}
	if len(c.ApplicationDirs) == 0 {
		c.ApplicationDirs = def.ApplicationDirs
	}
	if c.TrashDir == "" {
		c.TrashDir = def.TrashDir
	}
	if c.Log.File == "" {
		c.Log = def.Log
	}
}
