// Package storage persists this application's own small state: the settings
// document and the library document (favorites and play history). Both are
// single JSON files written atomically. The ScummVM configuration itself is
// never written from here.
package storage

import (
	"os"
	"path/filepath"
)

const appDirName = "scummvm-front"

// ConfigDir returns (and creates) the per-user directory for settings and
// the library file.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// CacheDir returns (and creates) the per-user cache directory used for
// downloaded icons and description snippets.
func CacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func SettingsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

func LibraryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "library.json"), nil
}

func IconsDir() (string, error) {
	dir, err := CacheDir()
	if err != nil {
		return "", err
	}
	icons := filepath.Join(dir, "icons")
	if err := os.MkdirAll(icons, 0o755); err != nil {
		return "", err
	}
	return icons, nil
}

func SummariesDir() (string, error) {
	dir, err := CacheDir()
	if err != nil {
		return "", err
	}
	summaries := filepath.Join(dir, "summaries")
	if err := os.MkdirAll(summaries, 0o755); err != nil {
		return "", err
	}
	return summaries, nil
}
