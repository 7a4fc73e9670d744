package xdg

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppConfigDir returns the per-user config directory of app.
func AppConfigDir(app string) (string, error) {
	cfgHome, err := ConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgHome, app), nil
}

// ConfigHome returns $XDG_CONFIG_HOME, falling back to ~/.config.
// On Windows the OS config directory is used instead.
func ConfigHome() (string, error) {
	if runtime.GOOS == "windows" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Clean(dir), nil
	}

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Clean(configHome), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}
