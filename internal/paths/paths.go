// Package paths resolves the OS-appropriate directories for strata's
// configuration and data.
package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "strata"

// ConfigDir returns the directory holding the config file.
//   - Linux: $XDG_CONFIG_HOME/strata or ~/.config/strata
//   - macOS: ~/Library/Application Support/strata
//   - Windows: %AppData%\strata
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)
	return path
}

// DataDir returns the directory holding the registry database and the
// log file. Honors $XDG_DATA_HOME on Unix.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		path := filepath.Join(xdg, appDirName)
		_ = os.MkdirAll(path, 0700)
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	path := filepath.Join(home, ".local", "share", appDirName)
	_ = os.MkdirAll(path, 0700)
	return path
}

// DatabasePath returns the default registry database location.
func DatabasePath() string {
	return filepath.Join(DataDir(), "strata.db")
}

// LogPath returns the default log file location.
func LogPath() string {
	return filepath.Join(DataDir(), "strata.log")
}
