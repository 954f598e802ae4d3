package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default returns the built-in configuration for the current user.
func Default() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return defaultForHome(homeDir), nil
}

// defaultForHome builds the default config rooted at homeDir. Split out
// so tests can use a fixture home.
func defaultForHome(homeDir string) *Config {
	lib := func(parts ...string) string {
		return filepath.Join(append([]string{homeDir, "Library"}, parts...)...)
	}

	return &Config{
		SearchRoots: []string{
			homeDir,
			"/Applications",
			filepath.Join(homeDir, "Applications"),
			lib("Application Support"),
			lib("Application Support", "CrashReporter"),
			lib("Application Scripts"),
			lib("Caches"),
			"/Library/Caches",
			lib("Preferences"),
			"/Library/Preferences",
			lib("Logs"),
			"/Library/Logs",
			lib("Logs", "DiagnosticReports"),
			"/Library/Logs/DiagnosticReports",
			lib("Containers"),
			lib("Group Containers"),
			lib("LaunchAgents"),
			"/Library/LaunchAgents",
			"/Library/LaunchDaemons",
			lib("Saved Application State"),
			lib("WebKit"),
			lib("HTTPStorages"),
			lib("Cookies"),
			"/Library/Application Support",
			"/private/var/db/receipts",
			"/Users/Shared",
		},
		ApplicationDirs: []string{
			"/Applications",
			filepath.Join(homeDir, "Applications"),
		},
		TrashDir: filepath.Join(homeDir, ".Trash"),
		Log: Log{
			File:       filepath.Join(homeDir, ".config", "appsweep", "appsweep.log"),
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}
