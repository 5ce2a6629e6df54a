package config

import (
	"os"
	"path/filepath"
)

// DefaultStorePath returns the default store file location based on the
// host OS. It prefers standard locations when available and falls back to a
// dotdir in the user's home directory.
func DefaultStorePath() string {
	return filepath.Join(defaultDataDir(), "store.json")
}

func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return "./data"
	}

	// XDG (Linux) override
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "tierlog")
	}

	// Common Linux/Unix system dir
	if isDir("/var/lib") {
		return "/var/lib/tierlog"
	}

	// macOS: ~/Library/Application Support/Tierlog
	if isDir(filepath.Join(homeDir, "Library")) {
		return filepath.Join(homeDir, "Library", "Application Support", "Tierlog")
	}

	// Windows: %USERPROFILE%/AppData/Local/Tierlog
	if isDir(filepath.Join(homeDir, "AppData")) {
		return filepath.Join(homeDir, "AppData", "Local", "Tierlog")
	}

	// Fallback: ~/.tierlog
	return filepath.Join(homeDir, ".tierlog")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
